package engine

import (
	"testing"

	"github.com/dshills/chartwire/internal/chart"
	"github.com/dshills/chartwire/internal/native"
	"github.com/dshills/chartwire/internal/options"
)

func newChart(t *testing.T, typ chart.Type) (*chart.Chart, *options.Options) {
	t.Helper()
	c, err := chart.New(chart.WithType(typ), chart.WithRegistry(chart.NewRegistry()))
	if err != nil {
		t.Fatalf("chart.New: %v", err)
	}
	return c, options.New(c)
}

func snapshot(t *testing.T, e *Engine, c *chart.Chart) *native.Object {
	t.Helper()
	snap, err := e.Snapshot(c)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	return snap
}

func object(t *testing.T, a native.Array, i int) *native.Object {
	t.Helper()
	if i >= len(a) {
		t.Fatalf("index %d out of range (len %d)", i, len(a))
	}
	o, ok := a[i].(*native.Object)
	if !ok {
		t.Fatalf("element %d is %T, want object", i, a[i])
	}
	return o
}
