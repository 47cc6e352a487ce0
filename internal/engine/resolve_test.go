package engine

import (
	"errors"
	"testing"

	"github.com/dshills/chartwire/internal/chart"
	"github.com/dshills/chartwire/internal/native"
)

func TestResolve(t *testing.T) {
	c, _ := newChart(t, chart.TypeLine)
	key := native.StringKey("color")

	node := native.NewObject()
	if _, ok, err := Resolve(node, key, ChartRecord(c)); ok || err != nil {
		t.Errorf("absent: ok = %v, err = %v", ok, err)
	}
	if _, ok, _ := Resolve(nil, key, nil); ok {
		t.Error("nil node resolved")
	}

	node.SetString(key, "red")
	if v, ok, err := Resolve(node, key, ChartRecord(c)); !ok || err != nil || v != "red" {
		t.Errorf("literal = %v, %v, %v", v, ok, err)
	}

	var got *native.Object
	node.SetFunction(key, native.NewFunction(nil, func(args ...any) (any, error) {
		got, _ = args[0].(*native.Object)
		return "blue", nil
	}))
	rec := ChartRecord(c)
	if v, ok, err := Resolve(node, key, rec); !ok || err != nil || v != "blue" {
		t.Errorf("callback = %v, %v, %v", v, ok, err)
	}
	if got != rec {
		t.Error("thunk did not receive the record")
	}

	boom := errors.New("boom")
	node.SetFunction(key, native.NewFunction(nil, func(args ...any) (any, error) { return nil, boom }))
	if _, _, err := Resolve(node, key, rec); !errors.Is(err, boom) {
		t.Errorf("err = %v, want boom", err)
	}
}

func TestValueChain(t *testing.T) {
	c, _ := newChart(t, chart.TypeLine)
	e := New(DefaultConfig().WithMetrics())
	rec := ChartRecord(c)

	specific := native.NewObject()
	general := native.NewObject()
	general.SetNumber(native.StringKey("radius"), 7)

	tests := []struct {
		name   string
		lookup Lookup
		want   any
		src    Source
	}{
		{"first node wins", Chain("radius", "elements.point.radius", general, specific), 7.0, SourceLiteral},
		{"falls through nodes", Chain("radius", "elements.point.radius", specific, general), 7.0, SourceLiteral},
		{"nil node skipped", Chain("radius", "elements.point.radius", nil, general), 7.0, SourceLiteral},
		{"defaults", Chain("radius", "elements.point.radius", specific), 3.0, SourceDefault},
		{"absent", Chain("radius", "", specific), nil, SourceAbsent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, src, err := e.value(c, tt.lookup, rec)
			if err != nil {
				t.Fatalf("value: %v", err)
			}
			if v != tt.want || src != tt.src {
				t.Errorf("value = %v (%v), want %v (%v)", v, src, tt.want, tt.src)
			}
		})
	}

	stats := e.Metrics().PathStats("elements.point.radius")
	if stats == nil || stats.ResolveCount != 4 || stats.BySource[SourceDefault] != 1 {
		t.Errorf("PathStats = %+v", stats)
	}
}

func TestSourceString(t *testing.T) {
	tests := map[Source]string{
		SourceAbsent:   "absent",
		SourceCallback: "callback",
		SourceLiteral:  "literal",
		SourceDefault:  "default",
	}
	for src, want := range tests {
		if got := src.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", src, got, want)
		}
	}
}
