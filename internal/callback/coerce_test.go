package callback

import (
	"math"
	"reflect"
	"testing"

	"github.com/dshills/chartwire/internal/color"
	"github.com/dshills/chartwire/internal/native"
)

func TestCoercersAccept(t *testing.T) {
	tests := []struct {
		name  string
		c     Coercer
		raw   any
		want  any
		valid bool
	}{
		{"bool true", Bool, true, true, true},
		{"bool from string", Bool, "true", nil, false},
		{"number int", Number, 3, 3.0, true},
		{"number negative", Number, -2.5, -2.5, true},
		{"number NaN", Number, math.NaN(), nil, false},
		{"number Inf", Number, math.Inf(1), nil, false},
		{"number string", Number, "3", nil, false},
		{"non-negative zero", NonNegativeNumber, 0, 0.0, true},
		{"non-negative negative", NonNegativeNumber, -0.1, nil, false},
		{"positive zero", PositiveNumber, 0, nil, false},
		{"positive", PositiveNumber, float32(0.5), 0.5, true},
		{"int integral float", Int, 4.0, 4.0, true},
		{"int fractional", Int, 4.5, nil, false},
		{"non-negative int", NonNegativeInt, uint8(7), 7.0, true},
		{"non-negative int negative", NonNegativeInt, -5, nil, false},
		{"non-negative int fractional", NonNegativeInt, 1.5, nil, false},
		{"string", String, "x", "x", true},
		{"string empty", String, "", nil, false},
		{"color hex", Color, "#ff0000", "#ff0000", true},
		{"color name", Color, "red", "red", true},
		{"color invalid", Color, "not-a-color", nil, false},
		{"color value", Color, color.RGBA{Alpha: 1}, "rgba(0,0,0,1)", true},
		{"int array", IntArray, []int{5, 2}, native.Array{5.0, 2.0}, true},
		{"int array any", IntArray, []any{1, 2.0}, native.Array{1.0, 2.0}, true},
		{"int array negative", IntArray, []int{1, -1}, nil, false},
		{"int array fractional", IntArray, []float64{1.5}, nil, false},
		{"lines string", StringOrLines, "", "", true},
		{"lines slice", StringOrLines, []string{"a", "b"}, native.Array{"a", "b"}, true},
		{"lines mixed", StringOrLines, []any{"a", 1}, nil, false},
		{"nil", Number, nil, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.c.Accept(tt.raw)
			if ok != tt.valid {
				t.Fatalf("Accept(%v) ok = %v, want %v", tt.raw, ok, tt.valid)
			}
			if ok && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Accept(%v) = %#v, want %#v", tt.raw, got, tt.want)
			}
		})
	}
}

type position int

func (p position) Token() string {
	return [...]string{"top", "bottom"}[p]
}

func TestEnum(t *testing.T) {
	c := Enum("position", "top", "bottom")
	if c.Fallback() != "top" {
		t.Errorf("Fallback() = %v, want top", c.Fallback())
	}
	if got, ok := c.Accept("bottom"); !ok || got != "bottom" {
		t.Errorf("Accept(bottom) = %v, %v", got, ok)
	}
	if got, ok := c.Accept(position(1)); !ok || got != "bottom" {
		t.Errorf("Accept(position) = %v, %v", got, ok)
	}
	if _, ok := c.Accept("left"); ok {
		t.Error("Accept(left) should fail")
	}
	if _, ok := c.Accept(1); ok {
		t.Error("Accept(1) should fail")
	}
}

func TestCoerce(t *testing.T) {
	ctx, err := Marshal(newTestCharts(), record("c1", TypeData, map[string]any{"dataIndex": 3}))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	t.Run("nil callback yields default", func(t *testing.T) {
		if got := NonNegativeInt.Coerce(ctx, nil, 3.0); got != 3.0 {
			t.Errorf("Coerce = %v, want 3", got)
		}
	})

	t.Run("accepted value is preserved", func(t *testing.T) {
		fn := Typed(func(c *Context) int { return c.DataIndex() * 2 })
		if got := NonNegativeInt.Coerce(ctx, fn, 3.0); got != 6.0 {
			t.Errorf("Coerce = %v, want 6", got)
		}
	})

	t.Run("out of range yields default", func(t *testing.T) {
		fn := Typed(func(*Context) int { return -5 })
		if got := NonNegativeInt.Coerce(ctx, fn, 3.0); got != 3.0 {
			t.Errorf("Coerce = %v, want 3", got)
		}
	})

	t.Run("wrong type yields default", func(t *testing.T) {
		fn := Typed(func(*Context) string { return "big" })
		if got := NonNegativeInt.Coerce(ctx, fn, 3.0); got != 3.0 {
			t.Errorf("Coerce = %v, want 3", got)
		}
	})

	t.Run("nil result yields default", func(t *testing.T) {
		fn := Func(func(*Context) any { return nil })
		if got := Color.Coerce(ctx, fn, "red"); got != "red" {
			t.Errorf("Coerce = %v, want red", got)
		}
	})

	t.Run("panic yields default", func(t *testing.T) {
		fn := Func(func(*Context) any { panic("boom") })
		if got := Number.Coerce(ctx, fn, 1.0); got != 1.0 {
			t.Errorf("Coerce = %v, want 1", got)
		}
	})
}

func TestTypedNil(t *testing.T) {
	var fn func(*Context) int
	if Typed(fn) != nil {
		t.Error("Typed(nil) should be nil")
	}
}
