package callback

import (
	"math"

	"github.com/samber/lo"

	"github.com/dshills/chartwire/internal/color"
	"github.com/dshills/chartwire/internal/logging"
	"github.com/dshills/chartwire/internal/native"
)

// Func is a host callback computing a property value for one call site.
type Func func(ctx *Context) any

// Typed adapts a typed callback to Func. A nil fn yields a nil Func.
func Typed[T any](fn func(ctx *Context) T) Func {
	if fn == nil {
		return nil
	}
	return func(ctx *Context) any {
		return fn(ctx)
	}
}

// Token is implemented by enumerations with a native string form.
type Token interface {
	Token() string
}

// Coercer converts raw callback results into the wire shape of one value
// family.
type Coercer struct {
	name     string
	accept   func(raw any) (any, bool)
	fallback any
}

// NewCoercer builds a coercer. accept returns the wire value and true for
// acceptable input. fallback is used when neither the callback nor the
// chart defaults provide an acceptable value.
func NewCoercer(name string, fallback any, accept func(raw any) (any, bool)) Coercer {
	return Coercer{name: name, accept: accept, fallback: fallback}
}

// Name returns the value family name.
func (c Coercer) Name() string {
	return c.name
}

// Fallback returns the last-resort value for the family.
func (c Coercer) Fallback() any {
	return c.fallback
}

// WithFallback returns a copy of c with a different fallback.
func (c Coercer) WithFallback(v any) Coercer {
	c.fallback = v
	return c
}

// Accept converts raw into its wire form.
func (c Coercer) Accept(raw any) (any, bool) {
	if c.accept == nil || raw == nil {
		return nil, false
	}
	return c.accept(raw)
}

// Coerce runs fn with ctx and returns its normalized result, or def when fn
// is nil, panics, or returns an unacceptable value.
func (c Coercer) Coerce(ctx *Context, fn Func, def any) any {
	if fn == nil {
		return def
	}
	raw, ok := safeCall(ctx, fn)
	if !ok {
		return def
	}
	if wire, ok := c.Accept(raw); ok {
		return wire
	}
	logging.Component("callback").Debug("%s callback returned %v (%T), using default %v", c.name, raw, raw, def)
	return def
}

func safeCall(ctx *Context, fn Func) (raw any, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			logging.Component("callback").Warn("callback panic: %v", r)
			raw, ok = nil, false
		}
	}()
	return fn(ctx), true
}

// toFloat converts any Go numeric value to a finite float64.
func toFloat(raw any) (float64, bool) {
	var f float64
	switch v := raw.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int8:
		f = float64(v)
	case int16:
		f = float64(v)
	case int32:
		f = float64(v)
	case int64:
		f = float64(v)
	case uint:
		f = float64(v)
	case uint8:
		f = float64(v)
	case uint16:
		f = float64(v)
	case uint32:
		f = float64(v)
	case uint64:
		f = float64(v)
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func toInt(raw any) (float64, bool) {
	f, ok := toFloat(raw)
	if !ok || f != math.Trunc(f) {
		return 0, false
	}
	return f, true
}

// Value families.
var (
	// Bool accepts booleans.
	Bool = NewCoercer("boolean", false, func(raw any) (any, bool) {
		b, ok := raw.(bool)
		return b, ok
	})

	// Number accepts finite numbers.
	Number = NewCoercer("number", 0.0, func(raw any) (any, bool) {
		f, ok := toFloat(raw)
		return f, ok
	})

	// NonNegativeNumber accepts finite numbers >= 0.
	NonNegativeNumber = NewCoercer("non-negative number", 0.0, func(raw any) (any, bool) {
		f, ok := toFloat(raw)
		return f, ok && f >= 0
	})

	// PositiveNumber accepts finite numbers > 0.
	PositiveNumber = NewCoercer("positive number", 1.0, func(raw any) (any, bool) {
		f, ok := toFloat(raw)
		return f, ok && f > 0
	})

	// Int accepts integral numbers.
	Int = NewCoercer("integer", 0.0, func(raw any) (any, bool) {
		f, ok := toInt(raw)
		return f, ok
	})

	// NonNegativeInt accepts integral numbers >= 0.
	NonNegativeInt = NewCoercer("non-negative integer", 0.0, func(raw any) (any, bool) {
		f, ok := toInt(raw)
		return f, ok && f >= 0
	})

	// String accepts non-empty strings.
	String = NewCoercer("string", "", func(raw any) (any, bool) {
		s, ok := raw.(string)
		return s, ok && s != ""
	})

	// Color accepts CSS color strings and parsed colors.
	Color = NewCoercer("color", "rgba(0,0,0,0.1)", func(raw any) (any, bool) {
		switch v := raw.(type) {
		case string:
			return v, color.Valid(v)
		case color.RGBA:
			return v.String(), true
		default:
			return nil, false
		}
	})

	// IntArray accepts arrays of non-negative integers.
	IntArray = NewCoercer("integer array", native.Array{}, acceptIntArray)

	// StringOrLines accepts a string (possibly empty) or a list of strings.
	StringOrLines = NewCoercer("string or lines", "", acceptStringOrLines)
)

func acceptIntArray(raw any) (any, bool) {
	var elems []any
	switch v := raw.(type) {
	case []int:
		elems = lo.Map(v, func(n int, _ int) any { return n })
	case []float64:
		elems = lo.Map(v, func(f float64, _ int) any { return f })
	case []any:
		elems = v
	case native.Array:
		elems = v
	default:
		return nil, false
	}
	out := make(native.Array, len(elems))
	for i, e := range elems {
		f, ok := toInt(e)
		if !ok || f < 0 {
			return nil, false
		}
		out[i] = f
	}
	return out, true
}

func acceptStringOrLines(raw any) (any, bool) {
	switch v := raw.(type) {
	case string:
		return v, true
	case []string:
		if v == nil {
			return nil, false
		}
		out := make(native.Array, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out, true
	case []any:
		return stringArray(v)
	case native.Array:
		return stringArray(v)
	default:
		return nil, false
	}
}

func stringArray(elems []any) (any, bool) {
	out := make(native.Array, len(elems))
	for i, e := range elems {
		s, ok := e.(string)
		if !ok {
			return nil, false
		}
		out[i] = s
	}
	return out, true
}

// Enum accepts one of a closed set of tokens, given either as a string or as
// a Token implementation.
func Enum(name string, tokens ...string) Coercer {
	fallback := ""
	if len(tokens) > 0 {
		fallback = tokens[0]
	}
	return NewCoercer(name, fallback, func(raw any) (any, bool) {
		var s string
		switch v := raw.(type) {
		case string:
			s = v
		case Token:
			s = v.Token()
		default:
			return nil, false
		}
		return s, lo.Contains(tokens, s)
	})
}
