// Package config loads the YAML configuration of the week view.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"honnef.co/go/weekview/gioview"
	"honnef.co/go/weekview/log"

	"gioui.org/unit"
	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// Calendars are paths of ICS files.
	Calendars []string `yaml:"calendars"`
	// Timezone is the IANA zone events are displayed in. Empty means the local zone.
	Timezone string `yaml:"timezone"`

	VisibleDays           int     `yaml:"visible_days"`
	HourHeight            float32 `yaml:"hour_height"`
	ColumnGap             float32 `yaml:"column_gap"`
	EventMarginHorizontal float32 `yaml:"event_margin_horizontal"`
	EventMarginVertical   float32 `yaml:"event_margin_vertical"`
	EventPadding          float32 `yaml:"event_padding"`
	OverlappingEventGap   float32 `yaml:"overlapping_event_gap"`
	AllDayRowHeight       float32 `yaml:"all_day_row_height"`
	TextSize              float32 `yaml:"text_size"`
	EventTextSize         float32 `yaml:"event_text_size"`

	// Reload is a cron schedule for reloading calendars.
	Reload string `yaml:"reload"`
	// LogLevel is one of debug, info and error.
	LogLevel string `yaml:"log_level"`
	// Font optionally names a TrueType or OpenType file used in place of the Go fonts.
	Font string `yaml:"font,omitempty"`
}

func Default() *Config {
	view := gioview.DefaultConfig()
	return &Config{
		Calendars:             []string{},
		VisibleDays:           view.VisibleDays,
		HourHeight:            float32(view.HourHeight),
		ColumnGap:             float32(view.ColumnGap),
		EventMarginHorizontal: float32(view.EventMarginHorizontal),
		EventMarginVertical:   float32(view.EventMarginVertical),
		EventPadding:          float32(view.EventPadding),
		OverlappingEventGap:   float32(view.OverlappingEventGap),
		AllDayRowHeight:       float32(view.AllDayRowHeight),
		TextSize:              12,
		EventTextSize:         12,
		Reload:                "*/15 * * * *",
		LogLevel:              "info",
	}
}

// Normalize replaces missing or negative values with defaults.
func (c *Config) Normalize() {
	def := Default()
	if c.Calendars == nil {
		c.Calendars = def.Calendars
	}
	if c.VisibleDays <= 0 {
		c.VisibleDays = def.VisibleDays
	}
	positive := func(v *float32, d float32) {
		if *v <= 0 {
			*v = d
		}
	}
	nonNegative := func(v *float32, d float32) {
		if *v < 0 {
			*v = d
		}
	}
	positive(&c.HourHeight, def.HourHeight)
	positive(&c.TextSize, def.TextSize)
	positive(&c.EventTextSize, def.EventTextSize)
	positive(&c.AllDayRowHeight, def.AllDayRowHeight)
	nonNegative(&c.ColumnGap, def.ColumnGap)
	nonNegative(&c.EventMarginHorizontal, def.EventMarginHorizontal)
	nonNegative(&c.EventMarginVertical, def.EventMarginVertical)
	nonNegative(&c.EventPadding, def.EventPadding)
	nonNegative(&c.OverlappingEventGap, def.OverlappingEventGap)
	if c.Reload == "" {
		c.Reload = def.Reload
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
}

// Validate reports values that Normalize can't repair.
func (c *Config) Validate() error {
	var errs []error
	if _, err := c.Location(); err != nil {
		errs = append(errs, err)
	}
	if _, err := cron.ParseStandard(c.Reload); err != nil {
		errs = append(errs, fmt.Errorf("invalid reload schedule %q: %w", c.Reload, err))
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (c *Config) Location() (*time.Location, error) {
	switch c.Timezone {
	case "", "Local":
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// View returns the sizes used by the week view widget.
func (c *Config) View() gioview.Config {
	view := gioview.DefaultConfig()
	view.VisibleDays = c.VisibleDays
	view.HourHeight = unit.Dp(c.HourHeight)
	view.ColumnGap = unit.Dp(c.ColumnGap)
	view.EventMarginHorizontal = unit.Dp(c.EventMarginHorizontal)
	view.EventMarginVertical = unit.Dp(c.EventMarginVertical)
	view.EventPadding = unit.Dp(c.EventPadding)
	view.OverlappingEventGap = unit.Dp(c.OverlappingEventGap)
	view.AllDayRowHeight = unit.Dp(c.AllDayRowHeight)
	return view
}

// Load reads the configuration at path. If the file doesn't exist, a default configuration is written to it and
// returned.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := Default()
			return cfg, Save(path, cfg)
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("couldn't parse %s: %w", path, err)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration in %s: %w", path, err)
	}
	return &cfg, nil
}

// Save atomically writes cfg to path.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".weekview-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
