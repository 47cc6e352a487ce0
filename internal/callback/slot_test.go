package callback

import (
	"errors"
	"testing"

	"github.com/dshills/chartwire/internal/native"
)

var (
	radiusKey   = native.StringKey("radius")
	radiusPath  = native.ParsePath("elements.point.radius")
	bgKey       = native.StringKey("backgroundColor")
	bgPath      = native.ParsePath("elements.point.backgroundColor")
	skippedKey  = native.StringKey("borderSkipped")
	skippedPath = native.ParsePath("elements.bar.borderSkipped")
)

func newRadiusSlot(t *testing.T, charts Charts, node *native.Object) *Slot {
	t.Helper()
	s, err := NewSlot(charts, node, radiusKey, radiusPath, NonNegativeInt)
	if err != nil {
		t.Fatalf("NewSlot: %v", err)
	}
	return s
}

func invoke(t *testing.T, node *native.Object, key native.Key, r *native.Object) any {
	t.Helper()
	fn := node.GetFunction(key)
	if fn == nil {
		t.Fatalf("no thunk stored at %s", key.Value())
	}
	v, err := fn.Call(r)
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	return v
}

func TestNewSlotErrors(t *testing.T) {
	_, err := NewSlot(nil, nil, radiusKey, nil, Number)
	if !errors.Is(err, ErrNilNode) || !errors.Is(err, ErrConfiguration) {
		t.Errorf("nil node error = %v", err)
	}
	_, err = NewSlot(nil, native.NewObject(), native.StringKey(""), nil, Number)
	if !errors.Is(err, ErrConfiguration) {
		t.Errorf("empty key error = %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustSlot should panic on nil node")
		}
	}()
	MustSlot(nil, nil, radiusKey, nil, Number)
}

func TestSlotLiteralRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		c    Coercer
		in   any
		want any
	}{
		{"number", Number, 2.5, 2.5},
		{"int", NonNegativeInt, 4, 4.0},
		{"bool", Bool, true, true},
		{"color", Color, "#00ff00", "#00ff00"},
		{"dash", IntArray, []int{5, 5}, native.Array{5.0, 5.0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := MustSlot(nil, native.NewObject(), native.StringKey("p"), nil, tt.c)
			if err := s.SetLiteral(tt.in); err != nil {
				t.Fatalf("SetLiteral: %v", err)
			}
			got, ok := s.Literal()
			if !ok {
				t.Fatal("Literal() not set")
			}
			if !valueEqual(got, tt.want) {
				t.Errorf("Literal() = %#v, want %#v", got, tt.want)
			}
			if s.State() != StateLiteral {
				t.Errorf("State() = %v, want literal", s.State())
			}
		})
	}
}

func valueEqual(a, b any) bool {
	aa, aok := a.(native.Array)
	ba, bok := b.(native.Array)
	if aok && bok {
		if len(aa) != len(ba) {
			return false
		}
		for i := range aa {
			if aa[i] != ba[i] {
				return false
			}
		}
		return true
	}
	return a == b
}

func TestSlotLiteralValidation(t *testing.T) {
	node := native.NewObject()
	s := newRadiusSlot(t, nil, node)

	err := s.SetLiteral(-1)
	if err == nil {
		t.Fatal("expected error for negative radius")
	}
	if !errors.Is(err, ErrInvalidValue) || !errors.Is(err, ErrConfiguration) {
		t.Errorf("error = %v", err)
	}
	if s.State() != StateUnset {
		t.Errorf("State() = %v after rejected literal, want unset", s.State())
	}

	if err := s.SetLiteral(2); err != nil {
		t.Fatalf("SetLiteral: %v", err)
	}
	if err := s.SetLiteral(nil); err != nil {
		t.Fatalf("SetLiteral(nil): %v", err)
	}
	if s.State() != StateUnset {
		t.Errorf("State() = %v after nil literal, want unset", s.State())
	}
}

func TestSlotLiteralClearsCallback(t *testing.T) {
	charts := newTestCharts()
	node := native.NewObject()
	s := newRadiusSlot(t, charts, node)

	called := false
	s.SetCallback(Typed(func(*Context) int {
		called = true
		return 9
	}))
	if s.State() != StateCallback {
		t.Fatalf("State() = %v, want callback", s.State())
	}

	if err := s.SetLiteral(4); err != nil {
		t.Fatalf("SetLiteral: %v", err)
	}
	if s.State() != StateLiteral {
		t.Errorf("State() = %v, want literal", s.State())
	}
	if s.Callback() != nil {
		t.Error("Callback() should be nil after literal")
	}
	if node.GetFunction(radiusKey) != nil {
		t.Error("thunk still stored in node")
	}

	got, err := s.Evaluate(record("c1", TypeData, nil))
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if got != 4.0 {
		t.Errorf("Evaluate() = %v, want 4", got)
	}
	if called {
		t.Error("old callback invoked after literal was set")
	}
}

func TestSlotCallbackReplaces(t *testing.T) {
	charts := newTestCharts()
	node := native.NewObject()
	s := newRadiusSlot(t, charts, node)

	aCalled := false
	s.SetCallback(Typed(func(*Context) int {
		aCalled = true
		return 1
	}))
	s.SetCallback(Typed(func(*Context) int { return 2 }))

	got := invoke(t, node, radiusKey, record("c1", TypeData, nil))
	if got != 2.0 {
		t.Errorf("invoke = %v, want 2", got)
	}
	if aCalled {
		t.Error("callback A invoked after B was registered")
	}
}

func TestSlotCallbackNegativeYieldsDefault(t *testing.T) {
	charts := newTestCharts()
	node := native.NewObject()
	s := newRadiusSlot(t, charts, node)
	s.SetCallback(Typed(func(*Context) int { return -5 }))

	got := invoke(t, node, radiusKey, record("c1", TypeData, map[string]any{"dataIndex": 0}))
	if got != 3.0 {
		t.Errorf("invoke = %v, want resolved default 3", got)
	}
}

func TestSlotNoCallbackColorDefault(t *testing.T) {
	charts := newTestCharts()
	s := MustSlot(charts, native.NewObject(), bgKey, bgPath, Color)

	got, err := s.Evaluate(record("c1", TypeData, nil))
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if got != "rgba(0,0,0,0.1)" {
		t.Errorf("Evaluate() = %v, want default color", got)
	}
}

func TestSlotDefaultFallback(t *testing.T) {
	charts := newTestCharts()
	s := MustSlot(charts, native.NewObject(), native.StringKey("hoverRadius"),
		native.ParsePath("elements.point.hoverRadius"), NonNegativeInt.WithFallback(4.0))

	got, err := s.Evaluate(record("c1", TypeData, nil))
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if got != 4.0 {
		t.Errorf("Evaluate() = %v, want fallback 4", got)
	}
}

func TestSlotThunkMarshalFailure(t *testing.T) {
	node := native.NewObject()
	s := newRadiusSlot(t, newTestCharts(), node)
	s.SetCallback(Typed(func(*Context) int { return 1 }))

	_, err := node.GetFunction(radiusKey).Call(record("", TypeData, nil))
	if !errors.Is(err, ErrMissingChart) {
		t.Errorf("error = %v, want ErrMissingChart", err)
	}
	_, err = node.GetFunction(radiusKey).Call()
	if !errors.Is(err, ErrMissingRecord) {
		t.Errorf("error = %v, want ErrMissingRecord", err)
	}
}

func TestSlotSharedNode(t *testing.T) {
	charts := newTestCharts()
	node := native.NewObject()
	a := newRadiusSlot(t, charts, node)
	b := newRadiusSlot(t, charts, node)

	a.SetCallback(Typed(func(*Context) int { return 7 }))
	if b.State() != StateCallback || b.Callback() == nil {
		t.Fatal("registration not visible through second slot")
	}

	if err := b.SetLiteral(5); err != nil {
		t.Fatalf("SetLiteral: %v", err)
	}
	if a.State() != StateLiteral {
		t.Errorf("State() = %v through first slot, want literal", a.State())
	}
}

func TestSlotSetCallbackNil(t *testing.T) {
	node := native.NewObject()
	s := newRadiusSlot(t, newTestCharts(), node)

	if err := s.SetLiteral(2); err != nil {
		t.Fatalf("SetLiteral: %v", err)
	}
	s.SetCallback(nil)
	if s.State() != StateLiteral {
		t.Errorf("nil callback removed a literal: state %v", s.State())
	}

	s.SetCallback(Typed(func(*Context) int { return 1 }))
	s.SetCallback(nil)
	if s.State() != StateUnset {
		t.Errorf("State() = %v, want unset", s.State())
	}
}

func TestSlotBorderSkippedCallback(t *testing.T) {
	charts := newTestCharts()
	node := native.NewObject()
	s := MustSlot(charts, node, skippedKey, skippedPath, BorderSkippedPolicy)

	tests := []struct {
		ret  BorderSkipped
		want any
	}{
		{BorderSkippedOff, false},
		{BorderSkippedAll, true},
		{BorderSkippedTop, "top"},
		{BorderSkipped("bogus"), "start"},
	}
	for _, tt := range tests {
		ret := tt.ret
		s.SetCallback(Typed(func(*Context) BorderSkipped { return ret }))
		got := invoke(t, node, skippedKey, record("c1", TypeData, nil))
		if got != tt.want {
			t.Errorf("callback %q: got %#v, want %#v", tt.ret, got, tt.want)
		}
	}
}

func TestSlotWithFamily(t *testing.T) {
	node := native.NewObject()
	s := newRadiusSlot(t, newTestCharts(), node).WithFamily(FamilySegment)

	var family Family
	s.SetCallback(Typed(func(ctx *Context) int {
		family = ctx.Family()
		return 1
	}))
	invoke(t, node, radiusKey, record("c1", "", nil))
	if family != FamilySegment {
		t.Errorf("Family() = %v, want segment", family)
	}
}

func TestSlotValue(t *testing.T) {
	charts := newTestCharts()
	chart, _ := charts.Lookup("c1")
	s := newRadiusSlot(t, charts, native.NewObject())

	if got := s.Value(chart); got != 3.0 {
		t.Errorf("Value() unset = %v, want default 3", got)
	}
	s.SetCallback(Typed(func(*Context) int { return 8 }))
	if got := s.Value(chart); got != 3.0 {
		t.Errorf("Value() with callback = %v, want default 3", got)
	}
	if err := s.SetLiteral(5); err != nil {
		t.Fatalf("SetLiteral: %v", err)
	}
	if got := s.Value(chart); got != 5.0 {
		t.Errorf("Value() literal = %v, want 5", got)
	}
	if got := s.Value(nil); got != 5.0 {
		t.Errorf("Value(nil) literal = %v, want 5", got)
	}
}
