package chart

import (
	"sync"

	"github.com/google/uuid"

	"github.com/dshills/chartwire/internal/callback"
	"github.com/dshills/chartwire/internal/logging"
	"github.com/dshills/chartwire/internal/native"
)

type recordKey uint8

const (
	keyID recordKey = iota
	keyType
	keyOptions
	keyData
	keyDatasets
	keyLabels
)

// Value implements native.Key.
func (k recordKey) Value() string {
	switch k {
	case keyID:
		return "id"
	case keyType:
		return "type"
	case keyOptions:
		return "options"
	case keyData:
		return "data"
	case keyDatasets:
		return "datasets"
	case keyLabels:
		return "labels"
	default:
		return ""
	}
}

// Chart is one chart instance: its native record and the state shared by
// every configuration wrapper built on it.
type Chart struct {
	mu       sync.RWMutex
	id       string
	kind     Type
	record   *native.Object
	defaults *Defaults
	resolved *native.Object
	version  uint64

	registry  *Registry
	logger    *logging.Logger
	listeners *Listeners
}

// Option configures a chart.
type Option func(*Chart)

// WithType sets the chart type. Line is the default.
func WithType(t Type) Option {
	return func(c *Chart) {
		c.kind = t
	}
}

// WithID sets the chart id instead of generating one.
func WithID(id string) Option {
	return func(c *Chart) {
		c.id = id
	}
}

// WithDefaults sets the defaults the chart resolves against.
func WithDefaults(d *Defaults) Option {
	return func(c *Chart) {
		c.defaults = d
	}
}

// WithRegistry registers the chart in r on creation.
func WithRegistry(r *Registry) Option {
	return func(c *Chart) {
		c.registry = r
	}
}

// WithLogger sets the chart logger.
func WithLogger(l *logging.Logger) Option {
	return func(c *Chart) {
		c.logger = l
	}
}

// New creates a chart. It fails when the type is unknown or the id is
// already registered.
func New(opts ...Option) (*Chart, error) {
	c := &Chart{kind: TypeLine}
	for _, opt := range opts {
		opt(c)
	}
	if c.kind.Token() == "" {
		return nil, configError("new", "", ErrUnknownType)
	}
	if c.id == "" {
		c.id = uuid.NewString()
	}
	if c.defaults == nil {
		c.defaults = NewDefaults()
	}
	if c.logger == nil {
		c.logger = logging.Component("chart")
	}
	c.logger = c.logger.WithField("chart", c.id)

	c.record = native.NewObject()
	c.record.SetString(keyID, c.id)
	c.record.SetString(keyType, c.kind.Token())
	c.record.Child(keyOptions)
	data := c.record.Child(keyData)
	data.SetArray(keyDatasets, native.Array{})
	c.listeners = newListeners(c)

	if c.registry != nil {
		if err := c.registry.Register(c); err != nil {
			return nil, err
		}
	}
	c.logger.Debug("created %s chart", c.kind)
	return c, nil
}

// ID returns the chart id.
func (c *Chart) ID() string {
	return c.id
}

// Type returns the native type token.
func (c *Chart) Type() string {
	return c.kind.Token()
}

// Kind returns the chart type.
func (c *Chart) Kind() Type {
	return c.kind
}

// Record returns the native chart record.
func (c *Chart) Record() *native.Object {
	return c.record
}

// Options returns the native options node.
func (c *Chart) Options() *native.Object {
	return c.record.Child(keyOptions)
}

// Data returns the native data node.
func (c *Chart) Data() *native.Object {
	return c.record.Child(keyData)
}

// Datasets returns the native dataset records.
func (c *Chart) Datasets() native.Array {
	return c.Data().GetArray(keyDatasets)
}

// AddDataset appends a dataset record and returns its index.
func (c *Chart) AddDataset(ds *native.Object) int {
	data := c.Data()
	datasets := append(data.GetArray(keyDatasets), ds)
	data.SetArray(keyDatasets, datasets)
	return len(datasets) - 1
}

// Dataset returns the dataset record at index, or nil.
func (c *Chart) Dataset(index int) *native.Object {
	datasets := c.Datasets()
	if index < 0 || index >= len(datasets) {
		return nil
	}
	ds, _ := datasets[index].(*native.Object)
	return ds
}

// SetLabels replaces the category labels.
func (c *Chart) SetLabels(labels []string) {
	if err := c.Data().Set(keyLabels, labels); err != nil {
		c.logger.Warn("set labels: %v", err)
	}
}

// Labels returns the category labels.
func (c *Chart) Labels() []string {
	var out []string
	for _, v := range c.Data().GetArray(keyLabels) {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// DefaultsSource returns the layered defaults the chart resolves against.
func (c *Chart) DefaultsSource() *Defaults {
	return c.defaults
}

// Defaults returns the resolved defaults for the chart's type. The tree is
// rebuilt when the layered defaults change and must not be modified.
func (c *Chart) Defaults() *native.Object {
	v := c.defaults.Version()
	c.mu.RLock()
	if c.resolved != nil && c.version == v {
		r := c.resolved
		c.mu.RUnlock()
		return r
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.resolved = c.defaults.Resolve(c.kind)
	c.version = v
	return c.resolved
}

// Resolved returns the default at a dot-separated path.
func (c *Chart) Resolved(path string) (any, bool) {
	return c.Defaults().Lookup(native.ParsePath(path))
}

// Charts returns the lookup the callback bridge resolves records through.
// Unregistered charts resolve only themselves.
func (c *Chart) Charts() callback.Charts {
	if c.registry != nil {
		return c.registry
	}
	return self{c}
}

// Registry returns the registry the chart belongs to, or nil.
func (c *Chart) Registry() *Registry {
	return c.registry
}

// Logger returns the chart logger.
func (c *Chart) Logger() *logging.Logger {
	return c.logger
}

// Listeners returns the chart's event listener gates.
func (c *Chart) Listeners() *Listeners {
	return c.listeners
}

// Ref returns a native chart back-reference for call-site records.
func (c *Chart) Ref() *native.Object {
	ref := native.NewObject()
	ref.SetString(keyID, c.id)
	ref.SetString(keyType, c.kind.Token())
	return ref
}

// CheckOwner fails when configuration owned by owner is bound to c.
func (c *Chart) CheckOwner(owner callback.Chart) error {
	if c == nil || owner == nil {
		return configError("bind", "", ErrNilChart)
	}
	if owner.ID() != c.id {
		return configError("bind", owner.ID(), ErrChartMismatch)
	}
	return nil
}

// Destroy removes the chart from its registry and detaches every listener.
func (c *Chart) Destroy() {
	c.listeners.reset()
	if c.registry != nil {
		c.registry.Destroy(c.id)
	}
	c.logger.Debug("destroyed")
}

type self struct {
	c *Chart
}

func (s self) Lookup(id string) (callback.Chart, bool) {
	if id != s.c.id {
		return nil, false
	}
	return s.c, true
}
