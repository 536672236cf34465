package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"honnef.co/go/weekview/calendar"
	"honnef.co/go/weekview/config"
	ourfont "honnef.co/go/weekview/font"
	"honnef.co/go/weekview/geometry"
	"honnef.co/go/weekview/gioview"
	"honnef.co/go/weekview/ics"
	"honnef.co/go/weekview/log"
	"honnef.co/go/weekview/mysync"

	"gioui.org/app"
	"gioui.org/font"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"github.com/robfig/cron/v3"
)

// Calendars are loaded this many days around today.
const (
	daysBefore = 60
	daysAfter  = 120
)

// chips are the arranged chips of all calendars.
type chips struct {
	timed  []*calendar.Chip
	allDay []*calendar.Chip
}

func loadChips(paths []string, today calendar.Day, loc *time.Location) (chips, error) {
	from := today.AddDays(-daysBefore).Start(loc)
	to := today.AddDays(daysAfter).Start(loc)

	var events []*calendar.Event
	var errs []error
	for _, path := range paths {
		evs, err := ics.LoadFile(path, from, to, loc)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		events = append(events, evs...)
	}

	timed, allDay := calendar.Split(events, loc)
	geometry.Arrange(timed)
	geometry.Arrange(allDay)
	log.Info("loaded calendars", "calendars", len(paths), "events", len(events), "chips", len(timed)+len(allDay))
	return chips{timed: timed, allDay: allDay}, errors.Join(errs...)
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "weekview.yaml"
	}
	return filepath.Join(dir, "weekview", "config.yaml")
}

func main() {
	configPath := flag.String("config", defaultConfigPath(), "path of the configuration file")
	days := flag.Int("days", 0, "number of visible days, overriding the configuration")
	logLevel := flag.String("log-level", "", "log level, overriding the configuration")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("couldn't load configuration", err, "path", *configPath)
	}
	if *days > 0 {
		cfg.VisibleDays = *days
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal("invalid log level", err)
	}
	log.SetLevel(level)

	loc, err := cfg.Location()
	if err != nil {
		log.Fatal("invalid timezone", err)
	}

	fonts := ourfont.Collection()
	if cfg.Font != "" {
		fonts, err = ourfont.WithFile(cfg.Font)
		if err != nil {
			log.Fatal("couldn't load font", err, "path", cfg.Font)
		}
	}

	go func() {
		w := app.NewWindow(app.Title("weekview"), app.Size(unit.Dp(1000), unit.Dp(800)))
		if err := run(w, cfg, loc, fonts); err != nil {
			log.Fatal("exiting", err)
		}
		os.Exit(0)
	}()
	app.Main()
}

func run(w *app.Window, cfg *config.Config, loc *time.Location, fonts []font.FontFace) error {
	store := mysync.NewMutex(chips{})
	reload := func() {
		c, err := loadChips(cfg.Calendars, calendar.DayOf(time.Now().In(loc)), loc)
		if err != nil {
			log.Error("couldn't load all calendars", err)
		}
		store.Store(c)
		w.Invalidate()
	}
	go reload()

	sched := cron.New(cron.WithLocation(loc))
	if _, err := sched.AddFunc(cfg.Reload, reload); err != nil {
		return fmt.Errorf("invalid reload schedule: %w", err)
	}
	sched.Start()
	defer sched.Stop()

	th := gioview.NewTheme(fonts)
	th.TextSize = unit.Sp(cfg.TextSize)
	th.EventTextSize = unit.Sp(cfg.EventTextSize)
	today := calendar.DayOf(time.Now().In(loc))
	wv := gioview.NewWeekView(th, cfg.View(), today, loc)
	wv.ScrollToHour(8)

	var ops op.Ops
	for e := range w.Events() {
		switch ev := e.(type) {
		case system.DestroyEvent:
			return ev.Err
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, ev)
			gtx.Constraints.Min = image.Point{}

			c := store.Load()
			if _, err := wv.Layout(gtx, c.timed, c.allDay); err != nil {
				return err
			}
			for _, chip := range wv.Clicked() {
				event := chip.Event
				log.Info("event clicked",
					"id", event.ID,
					"title", event.Title.GetOr(""),
					"location", event.Location.GetOr(""),
					"start", event.Start.Format(time.RFC3339),
					"end", event.End.Format(time.RFC3339))
			}

			ev.Frame(&ops)
		}
	}
	return nil
}
