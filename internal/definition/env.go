package definition

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/dshills/chartwire/internal/engine"
	"github.com/dshills/chartwire/internal/logging"
)

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "CHARTWIRE_"

// Settings are the run settings of the command line tool.
type Settings struct {
	LogLevel    string
	LogJSON     bool
	Compact     bool
	Watch       bool
	TickCount   int
	MaxTicks    int
	Segments    bool
	Metrics     bool
	CallTimeout time.Duration
}

// DefaultSettings returns the built-in settings.
func DefaultSettings() Settings {
	cfg := engine.DefaultConfig()
	return Settings{
		LogLevel:    "info",
		TickCount:   cfg.TickCount,
		MaxTicks:    cfg.MaxTicks,
		Segments:    cfg.Segments,
		CallTimeout: 250 * time.Millisecond,
	}
}

// EngineConfig returns the engine configuration for s.
func (s Settings) EngineConfig() engine.Config {
	cfg := engine.DefaultConfig().
		WithTickCount(s.TickCount).
		WithMaxTicks(s.MaxTicks).
		WithSegments(s.Segments)
	if s.Metrics {
		cfg = cfg.WithMetrics()
	}
	return cfg
}

// LoggingConfig returns the logger configuration for s.
func (s Settings) LoggingConfig() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = logging.ParseLevel(s.LogLevel)
	cfg.JSON = s.LogJSON
	return cfg
}

// Apply sets the named settings from their string form. Names are the
// camelCase forms produced by EnvLoader, e.g. "tickCount". Unknown names
// are ignored.
func (s *Settings) Apply(values map[string]string) error {
	names := lo.Keys(values)
	sort.Strings(names)
	for _, name := range names {
		raw := values[name]
		var err error
		switch name {
		case "logLevel":
			switch strings.ToLower(raw) {
			case "debug", "info", "warn", "error":
				s.LogLevel = strings.ToLower(raw)
			default:
				err = fmt.Errorf("unknown level %q", raw)
			}
		case "logJson":
			s.LogJSON, err = strconv.ParseBool(raw)
		case "compact":
			s.Compact, err = strconv.ParseBool(raw)
		case "watch":
			s.Watch, err = strconv.ParseBool(raw)
		case "tickCount":
			s.TickCount, err = positive(raw)
		case "maxTicks":
			s.MaxTicks, err = positive(raw)
		case "segments":
			s.Segments, err = strconv.ParseBool(raw)
		case "metrics":
			s.Metrics, err = strconv.ParseBool(raw)
		case "callTimeout":
			s.CallTimeout, err = time.ParseDuration(raw)
		}
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidSetting, name, raw, err)
		}
	}
	return nil
}

func positive(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("must be positive")
	}
	return n, nil
}

// EnvLoader reads prefixed environment variables.
type EnvLoader struct {
	prefix  string
	environ func() []string
}

// NewEnvLoader creates a loader for variables starting with prefix. The
// prefix should include the trailing underscore.
func NewEnvLoader(prefix string) *EnvLoader {
	return &EnvLoader{prefix: prefix, environ: os.Environ}
}

// Load returns every prefixed variable keyed by its setting name:
// CHARTWIRE_TICK_COUNT becomes "tickCount". Empty values are kept.
func (l *EnvLoader) Load() map[string]string {
	values := make(map[string]string)
	for _, env := range l.environ() {
		name, value, ok := strings.Cut(env, "=")
		if !ok || !strings.HasPrefix(name, l.prefix) {
			continue
		}
		values[l.envToName(name)] = value
	}
	return values
}

// envToName converts CHARTWIRE_LOG_LEVEL to logLevel.
func (l *EnvLoader) envToName(env string) string {
	parts := strings.Split(strings.TrimPrefix(env, l.prefix), "_")
	name := strings.ToLower(parts[0])
	for _, part := range parts[1:] {
		if part != "" {
			name += strings.ToUpper(part[:1]) + strings.ToLower(part[1:])
		}
	}
	return name
}

// SettingsFromEnv returns the default settings with CHARTWIRE_* overrides
// applied.
func SettingsFromEnv() (Settings, error) {
	s := DefaultSettings()
	err := s.Apply(NewEnvLoader(EnvPrefix).Load())
	return s, err
}
