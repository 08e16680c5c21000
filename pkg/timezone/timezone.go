// Package timezone validates IANA timezone identifiers against the host tz database.
package timezone

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

var (
	ErrInvalidTimezone         = errors.New("invalid timezone")
	ErrInvalidTimezoneOverride = errors.New("invalid timezone override")
)

// localtimePath is the symlink most Unix hosts use to select the system zone.
var localtimePath = "/etc/localtime"

// Handle is a validated IANA timezone. The zero value is not usable; obtain one
// through Resolve or ResolveLocal.
type Handle struct {
	name string
	loc  *time.Location
}

// Name returns the identifier the handle was resolved from.
func (h Handle) Name() string {
	return h.name
}

// Location returns the zone rules for the handle.
func (h Handle) Location() *time.Location {
	return h.loc
}

func (h Handle) String() string {
	return h.name
}

// Resolve looks name up in the host tz database.
func Resolve(name string) (Handle, error) {
	// LoadLocation maps "" to UTC and "Local" to the process zone; neither is an
	// IANA identifier.
	if name == "" || name == "Local" {
		return Handle{}, fmt.Errorf("%w: unknown time zone %q", ErrInvalidTimezone, name)
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return Handle{}, fmt.Errorf("%w: %v", ErrInvalidTimezone, err)
	}

	return Handle{name: name, loc: loc}, nil
}

// ResolveLocal returns the override zone when one is given, otherwise the
// zone the host is configured with.
func ResolveLocal(override string) (Handle, error) {
	if override != "" {
		h, err := Resolve(override)
		if err != nil {
			return Handle{}, fmt.Errorf("%w: %v", ErrInvalidTimezoneOverride, err)
		}
		return h, nil
	}

	return hostZone(), nil
}

func hostZone() Handle {
	if tz, found := os.LookupEnv("TZ"); found {
		// TZ set but empty means UTC.
		tz = strings.TrimPrefix(tz, ":")
		if tz == "" {
			return Handle{name: "UTC", loc: time.UTC}
		}
		if h, err := Resolve(tz); err == nil {
			return h
		}
	}

	if name, ok := zoneFromLink(localtimePath); ok {
		if h, err := Resolve(name); err == nil {
			return h
		}
	}

	return Handle{name: "UTC", loc: time.UTC}
}

// zoneFromLink derives "Area/City" from a link such as
// /usr/share/zoneinfo/Area/City.
func zoneFromLink(path string) (string, bool) {
	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", false
	}

	target = filepath.ToSlash(target)
	idx := strings.LastIndex(target, "zoneinfo/")
	if idx < 0 {
		return "", false
	}

	name := strings.TrimPrefix(target[idx+len("zoneinfo/"):], "posix/")
	return name, name != ""
}
