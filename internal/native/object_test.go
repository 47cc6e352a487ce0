package native

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestTypeString(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{TypeUndefined, "undefined"},
		{TypeBoolean, "boolean"},
		{TypeNumber, "number"},
		{TypeString, "string"},
		{TypeObject, "object"},
		{TypeArray, "array"},
		{TypeFunction, "function"},
		{Type(200), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("Type(%d).String() = %q, want %q", tt.typ, got, tt.want)
		}
	}
}

func TestObjectSetGetRoundTrip(t *testing.T) {
	o := NewObject()

	o.SetBool(StringKey("display"), true)
	o.SetInt(StringKey("padding"), 10)
	o.SetNumber(StringKey("tension"), 0.4)
	o.SetString(StringKey("color"), "#ff0000")
	o.SetArray(StringKey("dash"), Array{5.0, 5.0})

	if got := o.GetBool(StringKey("display"), false); !got {
		t.Errorf("GetBool(display) = %v, want true", got)
	}
	if got := o.GetInt(StringKey("padding"), 0); got != 10 {
		t.Errorf("GetInt(padding) = %d, want 10", got)
	}
	if got := o.GetNumber(StringKey("tension"), 0); got != 0.4 {
		t.Errorf("GetNumber(tension) = %v, want 0.4", got)
	}
	if got := o.GetString(StringKey("color"), ""); got != "#ff0000" {
		t.Errorf("GetString(color) = %q, want #ff0000", got)
	}
	if got := o.GetArray(StringKey("dash")); !reflect.DeepEqual(got, Array{5.0, 5.0}) {
		t.Errorf("GetArray(dash) = %v, want [5 5]", got)
	}

	wantKeys := []string{"display", "padding", "tension", "color", "dash"}
	if got := o.Keys(); !reflect.DeepEqual(got, wantKeys) {
		t.Errorf("Keys() = %v, want %v", got, wantKeys)
	}
}

func TestObjectGetDefaultsOnTypeMismatch(t *testing.T) {
	o := NewObject()
	o.SetString(StringKey("width"), "wide")

	if got := o.GetNumber(StringKey("width"), 3); got != 3 {
		t.Errorf("GetNumber on string = %v, want default 3", got)
	}
	if got := o.GetBool(StringKey("missing"), true); !got {
		t.Errorf("GetBool on missing = %v, want default true", got)
	}
	if o.GetObject(StringKey("width")) != nil {
		t.Error("GetObject on string should return nil")
	}
}

func TestObjectSetNilRemoves(t *testing.T) {
	o := NewObject()
	key := StringKey("color")
	o.SetString(key, "red")

	if err := o.Set(key, nil); err != nil {
		t.Fatalf("Set(nil) error = %v", err)
	}
	if o.Has(key) {
		t.Error("property should be removed after Set(nil)")
	}
	if o.TypeOf(key) != TypeUndefined {
		t.Errorf("TypeOf = %v, want undefined", o.TypeOf(key))
	}

	o.SetNumber(key, math.NaN())
	if o.Has(key) {
		t.Error("SetNumber(NaN) should leave the property absent")
	}
}

func TestObjectSetNormalizes(t *testing.T) {
	o := NewObject()

	tests := []struct {
		name  string
		input any
		want  any
	}{
		{"int", 5, 5.0},
		{"int64", int64(7), 7.0},
		{"uint8", uint8(3), 3.0},
		{"float32", float32(1.5), 1.5},
		{"ints", []int{1, 2}, Array{1.0, 2.0}},
		{"strings", []string{"a"}, Array{"a"}},
		{"any", []any{1, "x", true}, Array{1.0, "x", true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := StringKey(tt.name)
			if err := o.Set(key, tt.input); err != nil {
				t.Fatalf("Set error = %v", err)
			}
			got, _ := o.Get(key)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Set(%v) stored %v (%T), want %v (%T)", tt.input, got, got, tt.want, tt.want)
			}
		})
	}
}

func TestObjectSetUnsupported(t *testing.T) {
	o := NewObject()
	err := o.Set(StringKey("ch"), make(chan int))
	if !errors.Is(err, ErrUnsupportedValue) {
		t.Errorf("Set(chan) error = %v, want ErrUnsupportedValue", err)
	}
}

func TestObjectChildAndLookup(t *testing.T) {
	root := NewObject()
	path := ParsePath("scales.y.ticks.color")

	root.Ensure(path.Parent()).SetString(path.Last(), "blue")

	got, ok := root.Lookup(path)
	if !ok || got != "blue" {
		t.Errorf("Lookup(%s) = %v, %v; want blue, true", path, got, ok)
	}

	ticks := root.Node(path.Parent())
	if ticks == nil {
		t.Fatal("Node(scales.y.ticks) = nil")
	}

	// Child returns the same node, writes are shared.
	same := root.Child(StringKey("scales")).Child(StringKey("y")).Child(StringKey("ticks"))
	same.SetInt(StringKey("padding"), 4)
	if ticks.GetInt(StringKey("padding"), 0) != 4 {
		t.Error("write through one view should be visible through the other")
	}

	if _, ok := root.Lookup(ParsePath("scales.x.ticks")); ok {
		t.Error("Lookup of missing path should fail")
	}
}

func TestObjectClone(t *testing.T) {
	o := NewObject()
	o.Child(StringKey("font")).SetInt(StringKey("size"), 12)
	o.SetArray(StringKey("dash"), Array{1.0})

	c := o.Clone()
	c.Child(StringKey("font")).SetInt(StringKey("size"), 20)
	c.GetArray(StringKey("dash"))[0] = 9.0

	if o.Child(StringKey("font")).GetInt(StringKey("size"), 0) != 12 {
		t.Error("Clone shares nested objects")
	}
	if o.GetArray(StringKey("dash"))[0] != 1.0 {
		t.Error("Clone shares arrays")
	}
}

func TestFunctionCall(t *testing.T) {
	host := "callback"
	f := NewFunction(host, func(args ...any) (any, error) {
		return len(args), nil
	})

	got, err := f.Call(1, 2, 3)
	if err != nil || got != 3 {
		t.Errorf("Call = %v, %v; want 3, nil", got, err)
	}
	if f.Host() != host {
		t.Errorf("Host() = %v, want %v", f.Host(), host)
	}

	var nilFn *Function
	if _, err := nilFn.Call(); !errors.Is(err, ErrNotCallable) {
		t.Errorf("nil Call error = %v, want ErrNotCallable", err)
	}
}

func TestObjectToMapSkipsFunctions(t *testing.T) {
	o := NewObject()
	o.SetString(StringKey("label"), "a")
	o.SetFunction(StringKey("color"), NewFunction(nil, func(...any) (any, error) { return nil, nil }))

	m := o.ToMap()
	if _, ok := m["color"]; ok {
		t.Error("ToMap should omit functions")
	}
	if m["label"] != "a" {
		t.Errorf("ToMap[label] = %v, want a", m["label"])
	}
}

func TestPath(t *testing.T) {
	p := ParsePath("a.b.c")
	if p.String() != "a.b.c" {
		t.Errorf("String() = %q", p.String())
	}
	if p.Last().Value() != "c" {
		t.Errorf("Last() = %q", p.Last().Value())
	}
	q := p.Append(StringKey("d"))
	if q.String() != "a.b.c.d" || p.String() != "a.b.c" {
		t.Errorf("Append modified receiver or produced %q", q.String())
	}
	if ParsePath("") != nil {
		t.Error("ParsePath(\"\") should be nil")
	}
}

func TestZeroObject(t *testing.T) {
	var o Object
	o.SetNumber(StringKey("size"), 12)
	if got := o.GetNumber(StringKey("size"), 0); got != 12 {
		t.Errorf("GetNumber = %v, want 12", got)
	}
	o.Child(StringKey("font")).SetString(StringKey("family"), "serif")
	if got := o.Keys(); len(got) != 2 || got[1] != "font" {
		t.Errorf("Keys() = %v", got)
	}

	empty := new(Object)
	if empty.Has(StringKey("x")) || empty.Len() != 0 {
		t.Error("zero object not empty")
	}
	if empty.Remove(StringKey("x")) {
		t.Error("Remove on zero object reported a property")
	}
}
