// Package main is the entry point for the chartwire command.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/chartwire/internal/definition"
	"github.com/dshills/chartwire/internal/engine"
	"github.com/dshills/chartwire/internal/logging"
	"github.com/dshills/chartwire/internal/native"
	"github.com/dshills/chartwire/internal/script"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// errHelp reports that usage or version output was requested.
var errHelp = errors.New("help requested")

type cliOptions struct {
	DefPath    string
	ScriptPath string
	Settings   definition.Settings
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	settings, err := definition.SettingsFromEnv()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	opts, err := parseFlags(args, settings, stdout, stderr)
	if err != nil {
		if errors.Is(err, errHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	logCfg := opts.Settings.LoggingConfig()
	logCfg.Output = stderr
	logger := logging.New(logCfg)
	logging.SetDefault(logger)

	s := &session{
		opts:   opts,
		out:    stdout,
		logger: logger,
		engine: engine.New(opts.Settings.EngineConfig(), engine.WithLogger(logger.WithComponent("engine"))),
	}
	def, err := s.render()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if !opts.Settings.Watch {
		return 0
	}
	if err := s.watch(def); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags(args []string, settings definition.Settings, stdout, stderr io.Writer) (cliOptions, error) {
	opts := cliOptions{Settings: settings}
	var showVersion bool

	fs := flag.NewFlagSet("chartwire", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.DefPath, "def", "", "Chart definition file (.toml, .yaml, .yml, .json)")
	fs.StringVar(&opts.ScriptPath, "script", "", "Lua callback script (overrides the definition's script)")
	fs.BoolVar(&opts.Settings.Watch, "watch", settings.Watch, "Re-render when the definition or script changes")
	fs.StringVar(&opts.Settings.LogLevel, "log-level", settings.LogLevel, "Log level (debug, info, warn, error)")
	fs.BoolVar(&opts.Settings.LogJSON, "log-json", settings.LogJSON, "Write logs as JSON lines")
	fs.BoolVar(&opts.Settings.Compact, "compact", settings.Compact, "Print the snapshot on a single line")
	fs.IntVar(&opts.Settings.TickCount, "ticks", settings.TickCount, "Intervals per value scale without a step size")
	fs.BoolVar(&opts.Settings.Metrics, "metrics", settings.Metrics, "Log resolution statistics")
	fs.DurationVar(&opts.Settings.CallTimeout, "call-timeout", settings.CallTimeout, "Time limit for one Lua callback")
	fs.BoolVar(&showVersion, "version", false, "Show version information")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "chartwire - resolve chart configurations with scripted callbacks\n\n")
		fmt.Fprintf(stderr, "Usage: chartwire -def chart.toml [options]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nEnvironment:\n")
		fmt.Fprintf(stderr, "  %sLOG_LEVEL, %sCOMPACT, %sTICK_COUNT, ... set the defaults above\n",
			definition.EnvPrefix, definition.EnvPrefix, definition.EnvPrefix)
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  chartwire -def sales.toml                  Print the resolved snapshot\n")
		fmt.Fprintf(stderr, "  chartwire -def sales.yaml -script cb.lua   Bind callbacks from cb.lua\n")
		fmt.Fprintf(stderr, "  chartwire -def sales.json -watch           Re-render on every save\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return opts, errHelp
		}
		return opts, err
	}

	if showVersion {
		fmt.Fprintf(stdout, "chartwire %s\n", version)
		fmt.Fprintf(stdout, "Commit: %s\n", commit)
		fmt.Fprintf(stdout, "Built: %s\n", date)
		return opts, errHelp
	}

	switch opts.Settings.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return opts, fmt.Errorf("invalid log level %q (must be debug, info, warn, or error)", opts.Settings.LogLevel)
	}
	if opts.Settings.TickCount <= 0 {
		return opts, fmt.Errorf("invalid tick count %d", opts.Settings.TickCount)
	}
	if opts.DefPath == "" {
		if fs.NArg() != 1 {
			fs.Usage()
			return opts, errors.New("a definition file is required")
		}
		opts.DefPath = fs.Arg(0)
	}
	return opts, nil
}

// session renders one definition, possibly repeatedly.
type session struct {
	opts   cliOptions
	out    io.Writer
	logger *logging.Logger
	engine *engine.Engine
	last   *native.Object
}

// render loads, builds and prints the definition. The built chart is
// released before returning.
func (s *session) render() (*definition.Definition, error) {
	def, err := definition.Load(s.opts.DefPath)
	if err != nil {
		return nil, err
	}
	if s.opts.ScriptPath != "" {
		def.Script = s.opts.ScriptPath
	}

	built, err := definition.Build(def,
		definition.WithLogger(s.logger.WithComponent("chart")),
		definition.WithScriptOptions(script.WithCallTimeout(s.opts.Settings.CallTimeout)),
	)
	if err != nil {
		return nil, err
	}
	defer built.Close()

	snap, err := s.engine.Snapshot(built.Chart)
	if err != nil {
		return nil, err
	}
	if s.last != nil {
		s.logChanges(s.last, snap)
	}
	s.last = snap
	if err := engine.Write(s.out, snap, s.opts.Settings.Compact); err != nil {
		return nil, err
	}
	if m := s.engine.Metrics(); m != nil {
		s.logger.Info("resolved %d values (%d errors, avg %s) over %d paths",
			m.TotalResolves(), m.TotalErrors(), m.AverageDuration(), len(m.Paths()))
		m.Reset()
	}
	return def, nil
}

// logChanges reports which snapshot paths a reload changed.
func (s *session) logChanges(prev, next *native.Object) {
	added, modified, removed := native.Diff(prev, next)
	s.logger.Info("snapshot: %s", changeSummary(added, modified, removed))
	for _, p := range added {
		s.logger.Debug("added %s", p)
	}
	for _, p := range modified {
		s.logger.Debug("modified %s", p)
	}
	for _, p := range removed {
		s.logger.Debug("removed %s", p)
	}
}

func changeSummary(added, modified, removed []string) string {
	if len(added)+len(modified)+len(removed) == 0 {
		return "unchanged"
	}
	return fmt.Sprintf("%d added, %d modified, %d removed", len(added), len(modified), len(removed))
}

// watch re-renders on every change to the definition or its script until
// interrupted. Failed renders are logged and the previous watch set kept.
func (s *session) watch(def *definition.Definition) error {
	w, err := definition.NewWatcher(definition.WithWatcherLogger(s.logger.WithComponent("watcher")))
	if err != nil {
		return err
	}
	defer w.Close()

	scriptPath := def.Script
	if err := w.Watch(s.opts.DefPath); err != nil {
		return err
	}
	if scriptPath != "" {
		if err := w.Watch(scriptPath); err != nil {
			return err
		}
	}

	changes := make(chan definition.Event, 1)
	w.OnChange(func(e definition.Event) {
		select {
		case changes <- e:
		default:
		}
	})
	if err := w.Start(); err != nil {
		return err
	}
	s.logger.Info("watching %v", w.Watched())

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	for {
		select {
		case <-signals:
			return nil
		case e := <-changes:
			s.logger.Debug("%s %s, re-rendering", e.Op, e.Path)
			next, err := s.render()
			if err != nil {
				s.logger.Error("render: %v", err)
				continue
			}
			if next.Script != scriptPath {
				if scriptPath != "" {
					_ = w.Unwatch(scriptPath)
				}
				if next.Script != "" {
					if err := w.Watch(next.Script); err != nil {
						s.logger.Warn("watch %s: %v", next.Script, err)
					}
				}
				scriptPath = next.Script
			}
		}
	}
}
