/*
Package timecalc computes current times and clock-time conversions between
IANA timezones.

ConvertTime anchors the given HH:MM to today's calendar date in the source
zone. The same call made on different days can therefore land on different
sides of a DST transition and report a different time_difference.
*/
package timecalc

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/theapemachine/mcp-server-time/pkg/timezone"
)

// DateTimeLayout is ISO-8601 with a numeric UTC offset. RFC3339 would render
// UTC as "Z".
const DateTimeLayout = "2006-01-02T15:04:05-07:00"

var ErrInvalidTimeFormat = errors.New("invalid time format, expected HH:MM [24-hour format]")

var clockPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):([0-5][0-9])$`)

// TimeResult is a moment rendered in a single zone.
type TimeResult struct {
	Timezone string `json:"timezone"`
	Datetime string `json:"datetime"`
	IsDST    bool   `json:"is_dst"`
}

// TimeConversionResult pairs the source and target renderings of one instant.
type TimeConversionResult struct {
	Source         TimeResult `json:"source"`
	Target         TimeResult `json:"target"`
	TimeDifference string     `json:"time_difference"`
}

// Calculator performs the time computations. It holds no state besides the
// clock and is safe for concurrent use.
type Calculator struct {
	now func() time.Time
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithClock replaces the system clock.
func WithClock(now func() time.Time) Option {
	return func(c *Calculator) {
		if now != nil {
			c.now = now
		}
	}
}

// New creates a Calculator reading the system clock unless WithClock is given.
func New(opts ...Option) *Calculator {
	c := &Calculator{now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetCurrentTime returns the current instant in the named zone.
func (c *Calculator) GetCurrentTime(timezoneName string) (TimeResult, error) {
	tz, err := timezone.Resolve(timezoneName)
	if err != nil {
		return TimeResult{}, err
	}

	return newTimeResult(timezoneName, c.now().In(tz.Location())), nil
}

// ConvertTime interprets timeStr as a wall clock time in sourceTz on today's
// date there, and renders the same instant in targetTz.
func (c *Calculator) ConvertTime(sourceTz, timeStr, targetTz string) (TimeConversionResult, error) {
	source, err := timezone.Resolve(sourceTz)
	if err != nil {
		return TimeConversionResult{}, err
	}

	target, err := timezone.Resolve(targetTz)
	if err != nil {
		return TimeConversionResult{}, err
	}

	m := clockPattern.FindStringSubmatch(timeStr)
	if m == nil {
		return TimeConversionResult{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, timeStr)
	}

	// The pattern guarantees both groups are two decimal digits.
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])

	today := c.now().In(source.Location())
	sourceTime := time.Date(today.Year(), today.Month(), today.Day(), hour, minute, 0, 0, source.Location())
	targetTime := sourceTime.In(target.Location())

	_, sourceOffset := sourceTime.Zone()
	_, targetOffset := targetTime.Zone()
	hours := float64(targetOffset-sourceOffset) / 3600

	return TimeConversionResult{
		Source:         newTimeResult(sourceTz, sourceTime),
		Target:         newTimeResult(targetTz, targetTime),
		TimeDifference: FormatDifference(hours),
	}, nil
}

// FormatDifference renders an hour offset with an explicit sign and an "h"
// suffix: 5 -> "+5h", -3.5 -> "-3.5h", 5.75 -> "+5.75h".
func FormatDifference(hours float64) string {
	if hours == math.Trunc(hours) {
		return fmt.Sprintf("%+dh", int(hours))
	}

	s := fmt.Sprintf("%+.2f", hours)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	return s + "h"
}

func newTimeResult(name string, t time.Time) TimeResult {
	return TimeResult{
		Timezone: name,
		Datetime: t.Format(DateTimeLayout),
		IsDST:    t.IsDST(),
	}
}
