package timezone

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestResolve(t *testing.T) {
	Convey("Given an IANA identifier", t, func() {
		Convey("When it exists in the tz database", func() {
			h, err := Resolve("Europe/London")

			Convey("It should return a handle with the same name", func() {
				So(err, ShouldBeNil)
				So(h.Name(), ShouldEqual, "Europe/London")
				So(h.Location(), ShouldNotBeNil)
				So(h.String(), ShouldEqual, "Europe/London")
			})
		})

		Convey("When it does not exist", func() {
			_, err := Resolve("Invalid/Timezone")

			Convey("It should fail with ErrInvalidTimezone", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, ErrInvalidTimezone), ShouldBeTrue)
				So(err.Error(), ShouldStartWith, "invalid timezone")
			})
		})

		Convey("When it is empty or the Go pseudo zone", func() {
			for _, name := range []string{"", "Local"} {
				_, err := Resolve(name)
				So(errors.Is(err, ErrInvalidTimezone), ShouldBeTrue)
			}
		})
	})
}

func TestResolveLocal(t *testing.T) {
	Convey("Given an override", t, func() {
		Convey("When the override is valid", func() {
			h, err := ResolveLocal("Asia/Kathmandu")

			Convey("It should win over the host zone", func() {
				So(err, ShouldBeNil)
				So(h.Name(), ShouldEqual, "Asia/Kathmandu")
			})
		})

		Convey("When the override is invalid", func() {
			_, err := ResolveLocal("Mars/Olympus_Mons")

			Convey("It should fail with the override error", func() {
				So(errors.Is(err, ErrInvalidTimezoneOverride), ShouldBeTrue)
				So(err.Error(), ShouldStartWith, "invalid timezone override")
			})
		})
	})
}

func TestHostZone(t *testing.T) {
	Convey("Given no override", t, func() {
		Convey("When TZ names a zone", func() {
			t.Setenv("TZ", ":Asia/Tokyo")
			h, err := ResolveLocal("")

			So(err, ShouldBeNil)
			So(h.Name(), ShouldEqual, "Asia/Tokyo")
		})

		Convey("When TZ is set but empty", func() {
			t.Setenv("TZ", "")
			h, err := ResolveLocal("")

			So(err, ShouldBeNil)
			So(h.Name(), ShouldEqual, "UTC")
		})

		Convey("When TZ is unset and /etc/localtime points into zoneinfo", func() {
			t.Setenv("TZ", "")
			So(os.Unsetenv("TZ"), ShouldBeNil)

			dir := t.TempDir()
			zoneFile := filepath.Join(dir, "zoneinfo", "Europe", "Paris")
			So(os.MkdirAll(filepath.Dir(zoneFile), 0o755), ShouldBeNil)
			So(os.WriteFile(zoneFile, []byte("TZif"), 0o644), ShouldBeNil)

			link := filepath.Join(dir, "localtime")
			So(os.Symlink(zoneFile, link), ShouldBeNil)

			prev := localtimePath
			localtimePath = link
			Reset(func() { localtimePath = prev })

			h, err := ResolveLocal("")
			So(err, ShouldBeNil)
			So(h.Name(), ShouldEqual, "Europe/Paris")
		})

		Convey("When nothing identifies the host zone", func() {
			t.Setenv("TZ", "")
			So(os.Unsetenv("TZ"), ShouldBeNil)

			prev := localtimePath
			localtimePath = filepath.Join(t.TempDir(), "missing")
			Reset(func() { localtimePath = prev })

			h, err := ResolveLocal("")
			So(err, ShouldBeNil)
			So(h.Name(), ShouldEqual, "UTC")
		})
	})
}

func TestZoneFromLink(t *testing.T) {
	Convey("Given a path outside any zoneinfo tree", t, func() {
		path := filepath.Join(t.TempDir(), "plain")
		So(os.WriteFile(path, nil, 0o644), ShouldBeNil)

		_, ok := zoneFromLink(path)
		So(ok, ShouldBeFalse)
	})
}
