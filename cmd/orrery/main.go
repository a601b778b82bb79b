// Command orrery is an animated, interactive terminal view of the solar
// system, driven by a Keplerian ephemeris engine.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/litescript/orrery/internal/camera"
	"github.com/litescript/orrery/internal/ephemeris"
	"github.com/litescript/orrery/internal/logging"
	"github.com/litescript/orrery/internal/sim"
	"github.com/litescript/orrery/internal/ui"
	"github.com/litescript/orrery/internal/version"
)

const (
	defaultFPS = 30
	minFPS     = 5
	maxFPS     = 60
)

func main() {
	dateStr := flag.String("date", "", "Starting simulated date (RFC3339 or 2006-01-02, default now)")
	fps := flag.Int("fps", defaultFPS, "Animation frame rate")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	summaryMode := flag.Bool("summary", false, "Print a position table instead of the TUI")
	watchInterval := flag.Duration("watch", 0, "With -summary, repeat at interval (e.g. 30s)")
	durationMS := flag.Int("transition-ms", 1600, "Camera fly-to duration in milliseconds")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("orrery v" + version.Version)
		return
	}

	if *fps < minFPS {
		*fps = minFPS
	} else if *fps > maxFPS {
		*fps = maxFPS
	}

	logger := logging.New(logging.ParseLevel(*logLevel))

	startDate, err := parseDate(*dateStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	engine := ephemeris.NewEngine()

	// Headless mode: print the table and leave. Also the fallback when
	// stdout is not a terminal.
	if *summaryMode || !term.IsTerminal(int(os.Stdout.Fd())) {
		runSummary(engine, startDate, *watchInterval)
		return
	}

	camCfg := camera.DefaultConfig()
	camCfg.Duration = time.Duration(*durationMS) * time.Millisecond

	model := ui.New(ui.Config{
		Engine: engine,
		Clock:  sim.NewClock(startDate),
		Camera: camera.NewController(camCfg),
		Logger: logger,
		FPS:    *fps,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// parseDate accepts RFC3339 or a bare calendar date; empty means now.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Now().UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// runSummary prints position tables, once or on an interval.
func runSummary(engine *ephemeris.Engine, date time.Time, watch time.Duration) {
	ephemeris.WriteSummaryTable(os.Stdout, engine, date)

	if watch <= 0 {
		return
	}

	ticker := time.NewTicker(watch)
	defer ticker.Stop()

	for range ticker.C {
		date = date.Add(watch)
		fmt.Println()
		ephemeris.WriteSummaryTable(os.Stdout, engine, date)
	}
}
