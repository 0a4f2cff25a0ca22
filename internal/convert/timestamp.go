package convert

import (
	"math"
	"strconv"
	"strings"
)

// ParseTimestamp reads a timestamp written in format.
//
// Decimal input is a signed base-10 integer. Hexadecimal input is an optional
// 0x/0X prefix followed by base-16 digits; a leading "-" before the prefix
// negates the value, matching what FormatTimestamp emits for negatives.
// Surrounding whitespace is ignored, anything else returns ErrInvalidTimestamp.
func ParseTimestamp(text string, format NumberFormat) (int64, error) {
	s := strings.TrimSpace(text)
	if format != Hexadecimal {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, ErrInvalidTimestamp
		}
		return v, nil
	}

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	if s == "" {
		return 0, ErrInvalidTimestamp
	}
	u, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, ErrInvalidTimestamp
	}
	if neg {
		if u > 1<<63 {
			return 0, ErrInvalidTimestamp
		}
		// -(1<<63) wraps back onto math.MinInt64, which is the wanted value.
		return -int64(u), nil
	}
	if u > math.MaxInt64 {
		return 0, ErrInvalidTimestamp
	}
	return int64(u), nil
}

// FormatTimestamp renders v in format.
//
// Hexadecimal output is "0x" plus upper-case digits. Negative values use
// sign-magnitude ("-0x64"), never a two's-complement rendering.
func FormatTimestamp(v int64, format NumberFormat) string {
	if format != Hexadecimal {
		return strconv.FormatInt(v, 10)
	}
	if v < 0 {
		return "-0x" + strings.ToUpper(strconv.FormatUint(uint64(-v), 16))
	}
	return "0x" + strings.ToUpper(strconv.FormatUint(uint64(v), 16))
}
