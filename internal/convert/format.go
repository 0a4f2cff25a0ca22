package convert

import (
	"fmt"
	"strings"
)

// NumberFormat selects the textual base of a timestamp.
type NumberFormat int

const (
	Decimal NumberFormat = iota
	Hexadecimal
)

// String returns the canonical settings name of f.
func (f NumberFormat) String() string {
	if f == Hexadecimal {
		return "hexadecimal"
	}
	return "decimal"
}

// Short returns the label shown next to timestamp inputs.
func (f NumberFormat) Short() string {
	if f == Hexadecimal {
		return "HEX"
	}
	return "DEC"
}

// ParseNumberFormat accepts dec, decimal, hex and hexadecimal in any case.
func ParseNumberFormat(s string) (NumberFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dec", "decimal":
		return Decimal, nil
	case "hex", "hexadecimal":
		return Hexadecimal, nil
	}
	return Decimal, fmt.Errorf("unknown number format %q (want dec or hex)", s)
}

// UnmarshalText lets settings decoders read a NumberFormat by name.
// An empty value keeps the decimal default.
func (f *NumberFormat) UnmarshalText(b []byte) error {
	if strings.TrimSpace(string(b)) == "" {
		*f = Decimal
		return nil
	}
	v, err := ParseNumberFormat(string(b))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (f NumberFormat) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}
