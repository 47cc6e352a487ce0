package engine

// Config holds engine configuration options.
type Config struct {
	// TickCount is the number of intervals a value scale is divided into
	// when no step size is set.
	TickCount int

	// MaxTicks bounds the ticks generated for one scale.
	MaxTicks int

	// EnableMetrics enables per-path resolution statistics.
	EnableMetrics bool

	// Segments enables per-segment evaluation of line datasets.
	Segments bool
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		TickCount:     5,
		MaxTicks:      100,
		EnableMetrics: false,
		Segments:      true,
	}
}

// WithTickCount returns a copy of the config with the tick count set.
func (c Config) WithTickCount(n int) Config {
	if n > 0 {
		c.TickCount = n
	}
	return c
}

// WithMaxTicks returns a copy of the config with the tick limit set.
func (c Config) WithMaxTicks(n int) Config {
	if n > 0 {
		c.MaxTicks = n
	}
	return c
}

// WithMetrics returns a copy of the config with metrics enabled.
func (c Config) WithMetrics() Config {
	c.EnableMetrics = true
	return c
}

// WithSegments returns a copy of the config with segment evaluation set.
func (c Config) WithSegments(enabled bool) Config {
	c.Segments = enabled
	return c
}
