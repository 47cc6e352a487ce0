package options

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/dshills/chartwire/internal/callback"
	"github.com/dshills/chartwire/internal/native"
)

// ErrUnknownPath indicates a path that names no scriptable property.
var ErrUnknownPath = errors.New("no scriptable property at path")

// wildcard stands for a scale id or a dataset index in catalog paths.
const wildcard = "*"

type resolver func(o *Options, arg string) (*callback.Slot, error)

// Catalog maps the dotted paths of scriptable properties, such as
// "elements.point.radius" or "scales.*.ticks.callback", to their slots.
type Catalog struct {
	entries map[string]resolver
}

func add[P native.Key](c *Catalog, prefix string, props []P, slot func(o *Options, arg string, p P) (*callback.Slot, error)) {
	for _, p := range props {
		p := p
		c.entries[prefix+"."+p.Value()] = func(o *Options, arg string) (*callback.Slot, error) {
			return slot(o, arg, p)
		}
	}
}

// NewCatalog returns the catalog of every scriptable property.
func NewCatalog() *Catalog {
	c := &Catalog{entries: make(map[string]resolver)}

	add(c, "font", fontScriptable, func(o *Options, _ string, p fontProperty) (*callback.Slot, error) {
		return o.Font().slot(p), nil
	})
	add(c, "animation", animationScriptable, func(o *Options, _ string, p animationProperty) (*callback.Slot, error) {
		return o.Animation().slot(p), nil
	})
	for _, key := range []pluginKey{pluginTitle, pluginSubtitle} {
		key := key
		prefix := "plugins." + key.Value()
		title := func(o *Options) *Title { return &Title{o.plugin(key)} }
		add(c, prefix, titleScriptable, func(o *Options, _ string, p titleProperty) (*callback.Slot, error) {
			return title(o).slot(p), nil
		})
		add(c, prefix+".font", fontScriptable, func(o *Options, _ string, p fontProperty) (*callback.Slot, error) {
			return title(o).Font().slot(p), nil
		})
	}
	add(c, "plugins.legend.labels", labelsScriptable, func(o *Options, _ string, p labelsProperty) (*callback.Slot, error) {
		return o.Legend().Labels().slot(p), nil
	})
	add(c, "plugins.legend.labels.font", fontScriptable, func(o *Options, _ string, p fontProperty) (*callback.Slot, error) {
		return o.Legend().Labels().Font().slot(p), nil
	})
	add(c, "plugins.tooltip", tooltipScriptable, func(o *Options, _ string, p tooltipProperty) (*callback.Slot, error) {
		return o.Tooltip().slot(p), nil
	})
	add(c, "plugins.tooltip.callbacks", tooltipCallbackKeys, func(o *Options, _ string, p tooltipCallback) (*callback.Slot, error) {
		return o.Tooltip().Callbacks().slot(p), nil
	})

	add(c, "elements.arc", arcScriptable, func(o *Options, _ string, p arcProperty) (*callback.Slot, error) {
		return o.Elements().Arc().slot(p), nil
	})
	add(c, "elements.bar", barScriptable, func(o *Options, _ string, p barProperty) (*callback.Slot, error) {
		return o.Elements().Bar().slot(p), nil
	})
	add(c, "elements.line", lineScriptable, func(o *Options, _ string, p lineProperty) (*callback.Slot, error) {
		return o.Elements().Line().slot(p), nil
	})
	add(c, "elements.point", pointScriptable, func(o *Options, _ string, p pointProperty) (*callback.Slot, error) {
		return o.Elements().Point().slot(p), nil
	})

	scale := func(o *Options, id string) *Scale { return o.Scales().Scale(id) }
	add(c, "scales.*", scaleScriptable, func(o *Options, id string, p scaleProperty) (*callback.Slot, error) {
		return scale(o, id).slot(p), nil
	})
	add(c, "scales.*.grid", gridScriptable, func(o *Options, id string, p gridProperty) (*callback.Slot, error) {
		return scale(o, id).Grid().slot(p), nil
	})
	add(c, "scales.*.border", borderScriptable, func(o *Options, id string, p borderProperty) (*callback.Slot, error) {
		return scale(o, id).Border().slot(p), nil
	})
	add(c, "scales.*.ticks", ticksScriptable, func(o *Options, id string, p ticksProperty) (*callback.Slot, error) {
		return scale(o, id).Ticks().slot(p), nil
	})
	add(c, "scales.*.ticks.font", fontScriptable, func(o *Options, id string, p fontProperty) (*callback.Slot, error) {
		return scale(o, id).Ticks().Font().slot(p), nil
	})

	add(c, "datasets.*", datasetScriptable, func(o *Options, index string, p datasetProperty) (*callback.Slot, error) {
		ds, err := datasetAt(o, index)
		if err != nil {
			return nil, err
		}
		return ds.slot(p), nil
	})
	add(c, "datasets.*.segment", segmentScriptable, func(o *Options, index string, p segmentProperty) (*callback.Slot, error) {
		ds, err := datasetAt(o, index)
		if err != nil {
			return nil, err
		}
		return ds.Segment().slot(p), nil
	})
	return c
}

func datasetAt(o *Options, index string) (*Dataset, error) {
	i, err := strconv.Atoi(index)
	if err != nil {
		return nil, &callback.ConfigurationError{Op: "lookup", Key: "datasets." + index, Err: fmt.Errorf("dataset index: %w", err)}
	}
	ds := o.Datasets().At(i)
	if ds == nil {
		return nil, &callback.ConfigurationError{Op: "lookup", Key: "datasets." + index, Err: fmt.Errorf("no dataset at index %d", i)}
	}
	return ds, nil
}

// Pattern returns the catalog pattern for path and the value its wildcard
// stands for, e.g. "scales.y.min" gives "scales.*.min" and "y".
func Pattern(path string) (pattern, arg string) {
	segs := strings.Split(path, ".")
	if len(segs) >= 3 && (segs[0] == "scales" || segs[0] == "datasets") {
		arg = segs[1]
		segs[1] = wildcard
	}
	return strings.Join(segs, "."), arg
}

// Has reports whether path names a scriptable property.
func (c *Catalog) Has(path string) bool {
	pattern, _ := Pattern(path)
	_, ok := c.entries[pattern]
	return ok
}

// Slot returns the slot of the scriptable property at path in o.
func (c *Catalog) Slot(o *Options, path string) (*callback.Slot, error) {
	pattern, arg := Pattern(path)
	resolve, ok := c.entries[pattern]
	if !ok {
		return nil, &callback.ConfigurationError{Op: "lookup", Key: path, Err: ErrUnknownPath}
	}
	return resolve(o, arg)
}

// Paths returns every catalog pattern, sorted.
func (c *Catalog) Paths() []string {
	paths := lo.Keys(c.entries)
	sort.Strings(paths)
	return paths
}

var defaultCatalog = NewCatalog()

// DefaultCatalog returns the shared catalog.
func DefaultCatalog() *Catalog {
	return defaultCatalog
}

// Slot returns the slot of the scriptable property at path.
func (o *Options) Slot(path string) (*callback.Slot, error) {
	return defaultCatalog.Slot(o, path)
}
