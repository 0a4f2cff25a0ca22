// Package session holds the state of an interactive conversion session and
// the line-oriented shell that drives it.
package session

import (
	"tsconv/internal/convert"
)

// Converter is the conversion core a session calls into.
type Converter interface {
	ToDate(timestampText string, format convert.NumberFormat, baseTime string) (string, error)
	ToTimestamp(dateTimeText, baseTime string, format convert.NumberFormat) (string, error)
}

// State is a snapshot of the session. Transitions return a new State and
// leave the receiver untouched.
type State struct {
	Mode           Mode
	Format         convert.NumberFormat
	BaseTime       string
	TimestampInput string
	DateTimeInput  string
	// Result is the last displayed conversion output, empty when nothing
	// has been converted in the current mode.
	Result string
}

// NewState returns the initial session: ToDate, decimal, epoch base time.
func NewState() State {
	return State{BaseTime: convert.DefaultBaseTime}
}

// Toggle switches direction and clears the previous result so it is never
// shown against the other input.
func (s State) Toggle() State {
	s.Mode = s.Mode.Other()
	s.Result = ""
	return s
}

func (s State) WithFormat(f convert.NumberFormat) State {
	s.Format = f
	return s
}

// WithBaseTime replaces the base time. The current result is kept as is.
func (s State) WithBaseTime(base string) State {
	s.BaseTime = base
	return s
}

func (s State) ResetBaseTime() State {
	return s.WithBaseTime(convert.DefaultBaseTime)
}

// WithInput sets the input field of the current mode.
func (s State) WithInput(text string) State {
	if s.Mode == ToTimestamp {
		s.DateTimeInput = text
	} else {
		s.TimestampInput = text
	}
	return s
}

// Input returns the input field of the current mode.
func (s State) Input() string {
	if s.Mode == ToTimestamp {
		return s.DateTimeInput
	}
	return s.TimestampInput
}

// Convert runs the conversion for the current mode and stores its display
// text in Result. The conversion error, if any, is returned alongside.
func (s State) Convert(c Converter) (State, error) {
	var (
		out string
		err error
	)
	if s.Mode == ToTimestamp {
		out, err = c.ToTimestamp(s.DateTimeInput, s.BaseTime, s.Format)
	} else {
		out, err = c.ToDate(s.TimestampInput, s.Format, s.BaseTime)
	}
	s.Result = convert.Display(out, err)
	return s, err
}
