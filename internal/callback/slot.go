package callback

import (
	"fmt"

	"github.com/dshills/chartwire/internal/logging"
	"github.com/dshills/chartwire/internal/native"
)

// State is the registration state of a slot.
type State uint8

const (
	// StateUnset means the engine uses its built-in default.
	StateUnset State = iota
	// StateLiteral means a static value is stored.
	StateLiteral
	// StateCallback means a thunk is stored.
	StateCallback
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateUnset:
		return "unset"
	case StateLiteral:
		return "literal"
	case StateCallback:
		return "callback"
	default:
		return "unknown"
	}
}

// Slot binds one property of one native node to a literal or a callback.
//
// A slot holds no state of its own: the registration lives in the node, so
// any number of slots built over the same node and key observe the same
// value and the last write wins.
type Slot struct {
	charts   Charts
	node     *native.Object
	key      native.Key
	defaults native.Path
	coerce   Coercer
	family   Family
}

// NewSlot creates a slot for node[key]. defaults is the path of the
// property inside the chart's resolved defaults.
func NewSlot(charts Charts, node *native.Object, key native.Key, defaults native.Path, c Coercer) (*Slot, error) {
	if node == nil {
		name := ""
		if key != nil {
			name = key.Value()
		}
		return nil, configError("slot", name, ErrNilNode)
	}
	if key == nil || key.Value() == "" {
		return nil, configError("slot", "", fmt.Errorf("empty property key"))
	}
	return &Slot{
		charts:   charts,
		node:     node,
		key:      key,
		defaults: defaults,
		coerce:   c,
		family:   FamilyAuto,
	}, nil
}

// MustSlot is like NewSlot but panics on error.
func MustSlot(charts Charts, node *native.Object, key native.Key, defaults native.Path, c Coercer) *Slot {
	s, err := NewSlot(charts, node, key, defaults, c)
	if err != nil {
		panic(err)
	}
	return s
}

// WithFamily returns a copy of s whose thunk marshals records as family f.
func (s *Slot) WithFamily(f Family) *Slot {
	cp := *s
	cp.family = f
	return &cp
}

// Key returns the property key.
func (s *Slot) Key() native.Key {
	return s.key
}

// DefaultsPath returns the path of the property in the chart defaults.
func (s *Slot) DefaultsPath() native.Path {
	return s.defaults
}

// Coercer returns the slot's value family.
func (s *Slot) Coercer() Coercer {
	return s.coerce
}

// State returns the current registration state.
func (s *Slot) State() State {
	v, ok := s.node.Get(s.key)
	if !ok {
		return StateUnset
	}
	if _, isFn := v.(*native.Function); isFn {
		return StateCallback
	}
	return StateLiteral
}

// Literal returns the stored literal. ok is false when the slot is unset or
// holds a callback.
func (s *Slot) Literal() (v any, ok bool) {
	v, ok = s.node.Get(s.key)
	if !ok {
		return nil, false
	}
	if _, isFn := v.(*native.Function); isFn {
		return nil, false
	}
	return v, true
}

// SetLiteral stores v after validating it against the value family. Any
// previously registered callback is removed. A nil v clears the slot.
func (s *Slot) SetLiteral(v any) error {
	if v == nil {
		s.Clear()
		return nil
	}
	wire, ok := s.coerce.Accept(v)
	if !ok {
		return configError("set", s.key.Value(), fmt.Errorf("%w: %v is not a valid %s", ErrInvalidValue, v, s.coerce.Name()))
	}
	if err := s.node.Set(s.key, wire); err != nil {
		return configError("set", s.key.Value(), err)
	}
	return nil
}

// SetCallback registers fn, replacing any previous literal or callback. A
// nil fn deregisters the callback and leaves the slot unset.
func (s *Slot) SetCallback(fn Func) {
	if fn == nil {
		if s.State() == StateCallback {
			s.node.Remove(s.key)
			logging.Component("callback").Debug("deregistered callback %s", s.key.Value())
		}
		return
	}
	s.node.SetFunction(s.key, native.NewFunction(fn, s.thunk(fn)))
	logging.Component("callback").Debug("registered callback %s (%s)", s.key.Value(), s.coerce.Name())
}

// Callback returns the registered callback, or nil.
func (s *Slot) Callback() Func {
	fn, _ := s.node.GetFunction(s.key).Host().(Func)
	return fn
}

// Function returns the native thunk stored in the slot, or nil.
func (s *Slot) Function() *native.Function {
	return s.node.GetFunction(s.key)
}

// Clear removes any literal or callback.
func (s *Slot) Clear() {
	s.node.Remove(s.key)
}

// Default returns the resolved default for ctx's chart, or the family
// fallback when the chart defaults hold nothing acceptable.
func (s *Slot) Default(ctx *Context) any {
	if ctx == nil {
		return s.coerce.Fallback()
	}
	return s.DefaultFor(ctx.Chart())
}

// DefaultFor returns the resolved default for chart.
func (s *Slot) DefaultFor(chart Chart) any {
	if chart != nil && len(s.defaults) > 0 {
		if defaults := chart.Defaults(); defaults != nil {
			if v, ok := defaults.Lookup(s.defaults); ok {
				if wire, ok := s.coerce.Accept(v); ok {
					return wire
				}
			}
		}
	}
	return s.coerce.Fallback()
}

// Value returns the literal, or the resolved default for chart when the
// slot is unset or holds a callback.
func (s *Slot) Value(chart Chart) any {
	if v, ok := s.Literal(); ok {
		return v
	}
	return s.DefaultFor(chart)
}

// Evaluate resolves the property for one call site: the callback result,
// the literal, or the default.
func (s *Slot) Evaluate(record *native.Object) (any, error) {
	v, ok := s.node.Get(s.key)
	if ok {
		if fn, isFn := v.(*native.Function); isFn {
			return fn.Call(record)
		}
		return v, nil
	}
	ctx, err := MarshalAs(s.charts, s.family, record)
	if err != nil {
		return nil, err
	}
	return s.Default(ctx), nil
}

func (s *Slot) thunk(fn Func) native.CallFunc {
	return func(args ...any) (any, error) {
		var record *native.Object
		if len(args) > 0 {
			record, _ = args[0].(*native.Object)
		}
		ctx, err := MarshalAs(s.charts, s.family, record)
		if err != nil {
			return nil, err
		}
		return s.coerce.Coerce(ctx, fn, s.Default(ctx)), nil
	}
}
