package engine

import (
	"io"

	"github.com/dshills/chartwire/internal/chart"
	"github.com/dshills/chartwire/internal/logging"
	"github.com/dshills/chartwire/internal/native"
)

// Engine resolves chart options the way the charting engine does.
type Engine struct {
	config  Config
	logger  *logging.Logger
	metrics *Metrics
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger.
func WithLogger(l *logging.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates an engine with the given configuration.
func New(config Config, opts ...Option) *Engine {
	e := &Engine{
		config: config,
		logger: logging.Component("engine"),
	}
	if e.config.TickCount <= 0 {
		e.config.TickCount = DefaultConfig().TickCount
	}
	if e.config.MaxTicks <= 0 {
		e.config.MaxTicks = DefaultConfig().MaxTicks
	}
	if config.EnableMetrics {
		e.metrics = NewMetrics()
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewWithDefaults creates an engine with default configuration.
func NewWithDefaults() *Engine {
	return New(DefaultConfig())
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.config
}

// Metrics returns the resolution metrics, or nil when disabled.
func (e *Engine) Metrics() *Metrics {
	return e.metrics
}

// Fire delivers an interaction to the chart's native listener for f, as the
// engine does on pointer input. item is the legend item for legend families.
// It reports whether a listener was attached.
func (e *Engine) Fire(c *chart.Chart, f chart.EventFamily, eventType string, x, y float64, item *native.Object) (bool, error) {
	path, key := f.Location()
	if key == nil {
		return false, nil
	}
	node := c.Options().Node(path)
	if node == nil {
		return false, nil
	}
	fn := node.GetFunction(key)
	if fn == nil {
		e.logger.Debug("no %s listener on chart %s", f, c.ID())
		return false, nil
	}
	args := []any{EventRecord(c, eventType, x, y)}
	if item != nil {
		args = append(args, item)
	}
	if _, err := fn.Call(args...); err != nil {
		return true, err
	}
	return true, nil
}

// Render writes the snapshot of c as JSON.
func (e *Engine) Render(w io.Writer, c *chart.Chart, compact bool) error {
	snap, err := e.Snapshot(c)
	if err != nil {
		return err
	}
	return Write(w, snap, compact)
}

// Write writes a snapshot as indented JSON, or as one line when compact.
func Write(w io.Writer, snap *native.Object, compact bool) error {
	var (
		data []byte
		err  error
	)
	if compact {
		data, err = snap.MarshalJSON()
	} else {
		data, err = native.Pretty(snap)
	}
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	if compact {
		_, err = w.Write([]byte("\n"))
	}
	return err
}
