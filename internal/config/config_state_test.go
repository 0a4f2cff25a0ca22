package config

import (
	"testing"
	"time"

	"tsconv/internal/convert"
	"tsconv/internal/session"
)

func TestDefaultLocationIsLocal(t *testing.T) {
	loc, err := Default().LoadLocation()
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	if loc != time.Local {
		t.Fatalf("want time.Local, got %v", loc)
	}
}

func TestStateFromConfig(t *testing.T) {
	c := Default()
	c.Format = convert.Hexadecimal
	c.Mode = session.ToTimestamp
	c.BaseTime = "2000-01-01T00:00:00"
	s := c.State()
	if s.Format != convert.Hexadecimal || s.Mode != session.ToTimestamp || s.BaseTime != "2000-01-01T00:00:00" {
		t.Fatalf("unexpected state: %+v", s)
	}
	if s.Result != "" || s.Input() != "" {
		t.Fatalf("state should start empty: %+v", s)
	}
}

func TestConverterUsesLayout(t *testing.T) {
	c := Default()
	c.Location = "UTC"
	c.DisplayLayout = "2006-01-02 15:04:05"
	conv, err := c.Converter()
	if err != nil {
		t.Fatalf("converter: %v", err)
	}
	got, err := conv.ToDate("100", convert.Decimal, c.BaseTime)
	if err != nil || got != "1970-01-01 00:01:40" {
		t.Fatalf("want 1970-01-01 00:01:40, got %s (%v)", got, err)
	}
}
