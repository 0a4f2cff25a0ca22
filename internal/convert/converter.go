// Package convert turns timestamps relative to a base time into date-time
// text and back.
package convert

import (
	"strings"
	"time"
)

const (
	// DefaultBaseTime is the Unix epoch as written by a datetime-local input.
	DefaultBaseTime = "1970-01-01T00:00:00"
	// DefaultDisplayLayout renders year/month/day and a 24-hour clock with
	// fixed field widths.
	DefaultDisplayLayout = "2006/01/02 15:04:05"

	// maxMillis bounds instants to ±100,000,000 days around the Unix epoch.
	maxMillis = 8_640_000_000_000_000
)

// Layouts accepted for date-time input. Layouts without a zone are read in
// the converter's location.
var inputLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	DefaultDisplayLayout,
	"2006-01-02",
	"20060102150405",
}

// Converter holds the location and display layout used by conversions.
// The zero value reads and renders in time.Local with DefaultDisplayLayout.
type Converter struct {
	Location      *time.Location
	DisplayLayout string
}

// New returns a Converter. A nil loc means time.Local and an empty layout
// means DefaultDisplayLayout.
func New(loc *time.Location, layout string) *Converter {
	return &Converter{Location: loc, DisplayLayout: layout}
}

// Default converts in host local time.
var Default = New(time.Local, DefaultDisplayLayout)

// ToDate converts with Default.
func ToDate(timestampText string, format NumberFormat, baseTime string) (string, error) {
	return Default.ToDate(timestampText, format, baseTime)
}

// ToTimestamp converts with Default.
func ToTimestamp(dateTimeText, baseTime string, format NumberFormat) (string, error) {
	return Default.ToTimestamp(dateTimeText, baseTime, format)
}

func (c *Converter) location() *time.Location {
	if c == nil || c.Location == nil {
		return time.Local
	}
	return c.Location
}

func (c *Converter) layout() string {
	if c == nil || c.DisplayLayout == "" {
		return DefaultDisplayLayout
	}
	return c.DisplayLayout
}

// ParseDateTime parses text with the accepted input layouts or RFC 3339.
// Empty text and instants outside the supported range return ErrInvalidDate.
func (c *Converter) ParseDateTime(text string) (time.Time, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return time.Time{}, ErrInvalidDate
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return checkRange(t)
	}
	for _, layout := range inputLayouts {
		if t, err := time.ParseInLocation(layout, s, c.location()); err == nil {
			return checkRange(t)
		}
	}
	return time.Time{}, ErrInvalidDate
}

func checkRange(t time.Time) (time.Time, error) {
	if ms := t.UnixMilli(); ms > maxMillis || ms < -maxMillis {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// ToDate adds the timestamp to baseTime and renders the resulting instant.
//
// An unparsable timestamp returns ErrInvalidTimestamp. A bad base time, or a
// result outside the supported range, returns ErrConversion.
func (c *Converter) ToDate(timestampText string, format NumberFormat, baseTime string) (out string, err error) {
	defer recoverConversion(&out, &err)

	secs, err := ParseTimestamp(timestampText, format)
	if err != nil {
		return "", err
	}
	base, err := c.ParseDateTime(baseTime)
	if err != nil {
		return "", ErrConversion
	}
	ms, ok := addSeconds(base.UnixMilli(), secs)
	if !ok {
		return "", ErrConversion
	}
	return time.UnixMilli(ms).In(c.location()).Format(c.layout()), nil
}

// ToTimestamp returns the whole seconds from baseTime to dateTimeText,
// rounded toward negative infinity and rendered in format.
func (c *Converter) ToTimestamp(dateTimeText, baseTime string, format NumberFormat) (out string, err error) {
	defer recoverConversion(&out, &err)

	target, terr := c.ParseDateTime(dateTimeText)
	base, berr := c.ParseDateTime(baseTime)
	if terr != nil || berr != nil {
		return "", ErrInvalidDate
	}
	diff := target.UnixMilli() - base.UnixMilli()
	return FormatTimestamp(floorDiv(diff, 1000), format), nil
}

// addSeconds returns baseMillis + secs*1000 when the result stays in range.
func addSeconds(baseMillis, secs int64) (int64, bool) {
	if secs > maxMillis/1000 || secs < -maxMillis/1000 {
		return 0, false
	}
	ms := baseMillis + secs*1000
	if ms > maxMillis || ms < -maxMillis {
		return 0, false
	}
	return ms, true
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
