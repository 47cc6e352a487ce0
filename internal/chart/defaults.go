package chart

import (
	"sort"
	"sync"

	"github.com/samber/lo"

	"github.com/dshills/chartwire/internal/native"
)

// Defaults holds the layered default options: a global tree built from the
// setting catalog plus per-type overrides. A chart's resolved defaults are
// the global tree deep-merged with the overrides for its type.
type Defaults struct {
	mu        sync.RWMutex
	settings  *Settings
	global    *native.Object
	overrides map[Type]*native.Object
	version   uint64
}

// NewDefaults creates defaults from the built-in catalog and type overrides.
func NewDefaults() *Defaults {
	return NewDefaultsFrom(NewBuiltinSettings())
}

// NewDefaultsFrom creates defaults from a custom catalog.
func NewDefaultsFrom(settings *Settings) *Defaults {
	d := &Defaults{
		settings:  settings,
		global:    settings.Tree(),
		overrides: make(map[Type]*native.Object),
	}
	d.registerTypeOverrides()
	return d
}

func (d *Defaults) registerTypeOverrides() {
	set := func(t Type, path string, v any) {
		p := native.ParsePath(path)
		node := d.overrideNode(t).Ensure(p.Parent())
		if err := node.Set(p.Last(), v); err != nil {
			panic(err)
		}
	}
	set(TypeDoughnut, "cutout", "50%")
	set(TypeDoughnut, "aspectRatio", 1.0)
	set(TypePie, "aspectRatio", 1.0)
	set(TypePolarArea, "aspectRatio", 1.0)
	set(TypeRadar, "aspectRatio", 1.0)
	set(TypeRadar, "elements.line.borderWidth", 2.0)
	set(TypeScatter, "showLine", false)
	set(TypeBubble, "showLine", false)
	set(TypeBar, "scale.offset", true)
}

func (d *Defaults) overrideNode(t Type) *native.Object {
	o, ok := d.overrides[t]
	if !ok {
		o = native.NewObject()
		d.overrides[t] = o
	}
	return o
}

// Settings returns the setting catalog overrides are validated against.
func (d *Defaults) Settings() *Settings {
	return d.settings
}

// Version increases on every successful override.
func (d *Defaults) Version() uint64 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.version
}

// Set overrides a global default after validating it.
func (d *Defaults) Set(path string, value any) error {
	return d.set(nil, path, value)
}

// SetForType overrides a default for one chart type after validating it.
func (d *Defaults) SetForType(t Type, path string, value any) error {
	return d.set(&t, path, value)
}

func (d *Defaults) set(t *Type, path string, value any) error {
	if err := d.settings.Validate(path, value); err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	root := d.global
	if t != nil {
		root = d.overrideNode(*t)
	}
	p := native.ParsePath(path)
	if err := root.Ensure(p.Parent()).Set(p.Last(), value); err != nil {
		return &ValidationError{Path: path, Message: err.Error(), Value: value}
	}
	d.version++
	return nil
}

// Apply validates and applies every leaf of overrides as a global default.
// Valid leaves are applied even when others fail; all failures are returned
// together.
func (d *Defaults) Apply(overrides *native.Object) error {
	return d.apply(nil, overrides)
}

// ApplyForType is Apply for one chart type.
func (d *Defaults) ApplyForType(t Type, overrides *native.Object) error {
	return d.apply(&t, overrides)
}

func (d *Defaults) apply(t *Type, overrides *native.Object) error {
	if overrides == nil {
		return nil
	}
	flat := native.Flatten(overrides)
	paths := lo.Keys(flat)
	sort.Strings(paths)

	errs := &ValidationErrors{}
	for _, p := range paths {
		if err := d.set(t, p, flat[p]); err != nil {
			if ve, ok := err.(*ValidationError); ok {
				errs.Errors = append(errs.Errors, ve)
			} else {
				errs.Add(p, err.Error(), flat[p])
			}
		}
	}
	return errs.errOrNil()
}

// Resolve returns the merged defaults for a chart type. The result is a
// fresh copy.
func (d *Defaults) Resolve(t Type) *native.Object {
	d.mu.RLock()
	defer d.mu.RUnlock()

	resolved := d.global.Clone()
	if o, ok := d.overrides[t]; ok {
		native.Merge(resolved, o)
	}
	return resolved
}

// Global returns a copy of the global defaults tree.
func (d *Defaults) Global() *native.Object {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.global.Clone()
}
