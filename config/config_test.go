package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "weekview.yaml")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.VisibleDays != Default().VisibleDays {
		t.Errorf("got %d visible days, want %d", cfg.VisibleDays, Default().VisibleDays)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("default config wasn't written: %s", err)
	}

	again, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if again.Reload != cfg.Reload || again.HourHeight != cfg.HourHeight {
		t.Errorf("reloaded config %+v differs from %+v", again, cfg)
	}
}

func TestLoadNormalizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weekview.yaml")
	data := `
calendars: [work.ics, home.ics]
timezone: UTC
visible_days: 1
hour_height: -3
event_padding: 6
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	def := Default()
	if len(cfg.Calendars) != 2 || cfg.VisibleDays != 1 || cfg.EventPadding != 6 {
		t.Errorf("explicit values lost: %+v", cfg)
	}
	if cfg.HourHeight != def.HourHeight || cfg.Reload != def.Reload || cfg.LogLevel != def.LogLevel {
		t.Errorf("defaults not applied: %+v", cfg)
	}
	loc, err := cfg.Location()
	if err != nil || loc != time.UTC {
		t.Errorf("Location() = %v, %v, want UTC", loc, err)
	}
	if view := cfg.View(); view.VisibleDays != 1 || float32(view.EventPadding) != 6 {
		t.Errorf("View() = %+v", view)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"timezone": "timezone: Mars/Olympus_Mons\n",
		"reload":   "reload: every tuesday\n",
		"level":    "log_level: loud\n",
		"yaml":     "calendars: [unterminated\n",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "weekview.yaml")
			if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Errorf("Load succeeded")
			}
		})
	}
}
