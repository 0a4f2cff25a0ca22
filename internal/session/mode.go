package session

import (
	"fmt"
	"strings"
)

// Mode is the conversion direction.
type Mode int

const (
	// ToDate converts a timestamp into date-time text.
	ToDate Mode = iota
	// ToTimestamp converts date-time text into a timestamp.
	ToTimestamp
)

func (m Mode) String() string {
	if m == ToTimestamp {
		return "toTimestamp"
	}
	return "toDate"
}

// Other returns the opposite direction.
func (m Mode) Other() Mode {
	if m == ToTimestamp {
		return ToDate
	}
	return ToTimestamp
}

// Title describes the direction for display.
func (m Mode) Title() string {
	if m == ToTimestamp {
		return "date-time -> timestamp"
	}
	return "timestamp -> date-time"
}

// ParseMode accepts toDate/date and toTimestamp/timestamp in any case.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "todate", "date":
		return ToDate, nil
	case "totimestamp", "timestamp":
		return ToTimestamp, nil
	}
	return ToDate, fmt.Errorf("unknown mode %q (want toDate or toTimestamp)", s)
}

// UnmarshalText implements encoding.TextUnmarshaler. Empty keeps ToDate.
func (m *Mode) UnmarshalText(b []byte) error {
	if strings.TrimSpace(string(b)) == "" {
		*m = ToDate
		return nil
	}
	v, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}
