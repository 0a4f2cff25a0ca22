package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"tsconv/internal/convert"
	"tsconv/internal/session"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "tsconv.yaml")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return p
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("want not-exist error, got %v", err)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "conversions: ["))
	if err == nil {
		t.Fatal("expected yaml error")
	}
}

func TestLoadEmptyFileUsesDefaults(t *testing.T) {
	c, err := Load(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	d := Default()
	if c.BaseTime != d.BaseTime || c.Format != d.Format || c.Mode != d.Mode || c.DisplayLayout != d.DisplayLayout {
		t.Fatalf("unexpected config: %+v", c)
	}
}

func TestLoadCustomSettings(t *testing.T) {
	body := "baseTime: \"2000-01-01T00:00:00\"\n" +
		"format: hex\n" +
		"mode: toTimestamp\n" +
		"displayLayout: \"2006-01-02 15:04:05\"\n" +
		"location: UTC\n" +
		"conversions:\n  - \"2000-01-01T00:01:40\"\n"
	c, err := Load(writeConfig(t, body))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.BaseTime != "2000-01-01T00:00:00" || c.Format != convert.Hexadecimal || c.Mode != session.ToTimestamp {
		t.Fatalf("unexpected config: %+v", c)
	}
	if len(c.Conversions) != 1 || c.Conversions[0] != "2000-01-01T00:01:40" {
		t.Fatalf("unexpected conversions: %v", c.Conversions)
	}
	loc, err := c.LoadLocation()
	if err != nil || loc != time.UTC {
		t.Fatalf("want UTC, got %v (%v)", loc, err)
	}
}

func TestLoadRejectsUnknownFormat(t *testing.T) {
	if _, err := Load(writeConfig(t, "format: octal\n")); err == nil {
		t.Fatal("expected format error")
	}
}

func TestLoadRejectsUnknownMode(t *testing.T) {
	if _, err := Load(writeConfig(t, "mode: sideways\n")); err == nil {
		t.Fatal("expected mode error")
	}
}

func TestLoadRejectsBadBaseTime(t *testing.T) {
	if _, err := Load(writeConfig(t, "baseTime: yesterday\n")); err == nil {
		t.Fatal("expected base time error")
	}
}

func TestLoadRejectsBadLocation(t *testing.T) {
	if _, err := Load(writeConfig(t, "location: Nowhere/Atlantis\n")); err == nil {
		t.Fatal("expected location error")
	}
}

func TestBlankBaseTimeFallsBack(t *testing.T) {
	c, err := Load(writeConfig(t, "baseTime: \"  \"\n"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.BaseTime != convert.DefaultBaseTime {
		t.Fatalf("want default base, got %q", c.BaseTime)
	}
}
