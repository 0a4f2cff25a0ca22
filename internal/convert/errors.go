package convert

import "errors"

// Conversion failures. Their messages are the texts shown in place of a
// result.
var (
	ErrInvalidTimestamp = errors.New("Invalid timestamp")
	ErrInvalidDate      = errors.New("Invalid date")
	ErrConversion       = errors.New("Conversion error")
)

// Display returns text on success, otherwise the message of the matching
// conversion failure. Unknown errors collapse to ErrConversion.
func Display(text string, err error) string {
	switch {
	case err == nil:
		return text
	case errors.Is(err, ErrInvalidTimestamp):
		return ErrInvalidTimestamp.Error()
	case errors.Is(err, ErrInvalidDate):
		return ErrInvalidDate.Error()
	default:
		return ErrConversion.Error()
	}
}

func recoverConversion(out *string, err *error) {
	if r := recover(); r != nil {
		*out = ""
		*err = ErrConversion
	}
}
