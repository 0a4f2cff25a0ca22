package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"tsconv/internal/convert"
	"tsconv/internal/session"
)

// DefaultPath is read when no config file is named on the command line.
const DefaultPath = "tsconv.yaml"

// Config defines runtime settings loaded from YAML.
type Config struct {
	// BaseTime is the zero point of timestamps.
	BaseTime string `yaml:"baseTime"`
	// Format selects decimal or hexadecimal timestamps.
	Format convert.NumberFormat `yaml:"format"`
	// Mode is the starting conversion direction.
	Mode session.Mode `yaml:"mode"`
	// DisplayLayout is the Go time layout used to render dates.
	DisplayLayout string `yaml:"displayLayout"`
	// Location names the IANA zone dates are read and shown in. Empty means
	// the host's local zone.
	Location string `yaml:"location"`
	// Conversions lists inputs converted in batch with Mode.
	Conversions []string `yaml:"conversions"`
}

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{
		BaseTime:      convert.DefaultBaseTime,
		Format:        convert.Decimal,
		Mode:          session.ToDate,
		DisplayLayout: convert.DefaultDisplayLayout,
	}
}

// Load reads, validates, and normalizes config from a YAML file path.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	c := Default()
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	c.normalize()
	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func (c *Config) normalize() {
	c.BaseTime = strings.TrimSpace(c.BaseTime)
	c.Location = strings.TrimSpace(c.Location)
	if c.BaseTime == "" {
		c.BaseTime = convert.DefaultBaseTime
	}
	if c.DisplayLayout == "" {
		c.DisplayLayout = convert.DefaultDisplayLayout
	}
}

// Validate checks that the location exists and the base time parses in it.
func (c Config) Validate() error {
	conv, err := c.Converter()
	if err != nil {
		return err
	}
	if _, err := conv.ParseDateTime(c.BaseTime); err != nil {
		return fmt.Errorf("baseTime %q is not a valid date-time", c.BaseTime)
	}
	return nil
}

// LoadLocation resolves Location; empty and "Local" mean time.Local.
func (c Config) LoadLocation() (*time.Location, error) {
	if c.Location == "" || c.Location == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Location)
	if err != nil {
		return nil, fmt.Errorf("location %q: %w", c.Location, err)
	}
	return loc, nil
}

// Converter builds the conversion core for these settings.
func (c Config) Converter() (*convert.Converter, error) {
	loc, err := c.LoadLocation()
	if err != nil {
		return nil, err
	}
	return convert.New(loc, c.DisplayLayout), nil
}

// State returns the initial session state for these settings.
func (c Config) State() session.State {
	s := session.NewState().WithBaseTime(c.BaseTime).WithFormat(c.Format)
	s.Mode = c.Mode
	return s
}
