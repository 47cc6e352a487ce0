package definition

import (
	"errors"
	"fmt"
	"sort"

	"github.com/samber/lo"

	"github.com/dshills/chartwire/internal/callback"
	"github.com/dshills/chartwire/internal/chart"
	"github.com/dshills/chartwire/internal/logging"
	"github.com/dshills/chartwire/internal/native"
	"github.com/dshills/chartwire/internal/options"
	"github.com/dshills/chartwire/internal/script"
)

// Built is a chart configured from a definition.
type Built struct {
	Chart   *chart.Chart
	Options *options.Options
	// Binder is nil when the definition has no script.
	Binder *script.Binder
}

// Close releases the script state and unregisters the chart.
func (b *Built) Close() error {
	var err error
	if b.Binder != nil {
		err = b.Binder.Close()
	}
	b.Chart.Destroy()
	return err
}

type buildConfig struct {
	registry   *chart.Registry
	logger     *logging.Logger
	scriptOpts []script.StateOption
}

// BuildOption configures Build.
type BuildOption func(*buildConfig)

// WithRegistry registers the chart in r.
func WithRegistry(r *chart.Registry) BuildOption {
	return func(c *buildConfig) {
		c.registry = r
	}
}

// WithLogger sets the logger of the chart and its script.
func WithLogger(l *logging.Logger) BuildOption {
	return func(c *buildConfig) {
		c.logger = l
	}
}

// WithScriptOptions configures the Lua state of the script.
func WithScriptOptions(opts ...script.StateOption) BuildOption {
	return func(c *buildConfig) {
		c.scriptOpts = append(c.scriptOpts, opts...)
	}
}

// Build creates the chart described by def. Defaults overrides are
// validated and applied first so option literals and callbacks observe
// them, then labels, datasets, options and finally the script.
func Build(def *Definition, opts ...BuildOption) (*Built, error) {
	if def == nil {
		return nil, &callback.ConfigurationError{Op: "build", Err: ErrInvalidDefinition}
	}
	cfg := buildConfig{logger: logging.Component("definition")}
	for _, opt := range opts {
		opt(&cfg)
	}

	typ, err := def.ChartType()
	if err != nil {
		return nil, def.wrap(err)
	}
	chartOpts := []chart.Option{chart.WithType(typ), chart.WithLogger(cfg.logger)}
	if def.ID != "" {
		chartOpts = append(chartOpts, chart.WithID(def.ID))
	}
	if cfg.registry != nil {
		chartOpts = append(chartOpts, chart.WithRegistry(cfg.registry))
	}
	c, err := chart.New(chartOpts...)
	if err != nil {
		return nil, def.wrap(err)
	}

	built := &Built{Chart: c, Options: options.New(c)}
	if err := built.configure(def, cfg); err != nil {
		_ = built.Close()
		return nil, def.wrap(err)
	}
	cfg.logger.Debug("built %s chart %s from %s", c.Type(), c.ID(), def.Source)
	return built, nil
}

func (b *Built) configure(def *Definition, cfg buildConfig) error {
	if len(def.Defaults) > 0 {
		overrides, err := native.FromMap(def.Defaults)
		if err != nil {
			return &callback.ConfigurationError{Op: "defaults", Err: err}
		}
		if err := b.Chart.DefaultsSource().Apply(overrides); err != nil {
			return &callback.ConfigurationError{Op: "defaults", Err: err}
		}
	}

	if def.Labels != nil {
		b.Chart.SetLabels(def.Labels)
	}

	for i, ds := range def.Datasets {
		if err := b.addDataset(i, ds); err != nil {
			return err
		}
	}

	if err := setTree(b.Options, "", def.Options); err != nil {
		return err
	}

	if def.Script == "" {
		return nil
	}
	stateOpts := append([]script.StateOption{script.WithLogger(cfg.logger.WithComponent("script"))}, cfg.scriptOpts...)
	b.Binder = script.NewBinder(script.NewState(stateOpts...), b.Options)
	return b.Binder.LoadFile(def.Script)
}

func (b *Built) addDataset(index int, fields map[string]any) error {
	label, _ := fields["label"].(string)
	b.Options.Datasets().Add(label)
	rest := lo.OmitByKeys(fields, []string{"label"})
	return setTree(b.Options, fmt.Sprintf("datasets.%d.", index), rest)
}

// setTree applies every leaf of tree as an option literal under prefix, in
// path order.
func setTree(o *options.Options, prefix string, tree map[string]any) error {
	if len(tree) == 0 {
		return nil
	}
	obj, err := native.FromMap(tree)
	if err != nil {
		return &callback.ConfigurationError{Op: "set", Key: prefix, Err: err}
	}
	flat := native.Flatten(obj)
	paths := lo.Keys(flat)
	sort.Strings(paths)
	for _, p := range paths {
		if err := o.Set(prefix+p, flat[p]); err != nil {
			return err
		}
	}
	return nil
}

func (d *Definition) wrap(err error) error {
	if d.Source == "" {
		return err
	}
	var perr *ParseError
	if errors.As(err, &perr) {
		return err
	}
	return fmt.Errorf("%s: %w", d.Source, err)
}
