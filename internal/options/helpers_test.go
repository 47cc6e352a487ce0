package options

import (
	"testing"

	"github.com/dshills/chartwire/internal/callback"
	"github.com/dshills/chartwire/internal/chart"
	"github.com/dshills/chartwire/internal/native"
)

func newOptions(t *testing.T, typ chart.Type) *Options {
	t.Helper()
	c, err := chart.New(chart.WithType(typ), chart.WithRegistry(chart.NewRegistry()))
	if err != nil {
		t.Fatalf("chart.New: %v", err)
	}
	return New(c)
}

// record builds a call-site record pointing back to o's chart.
func record(o *Options, typ string, fields map[string]any) *native.Object {
	r := native.NewObject()
	r.SetObject(callback.RecordChart, o.Chart().Ref())
	r.SetString(callback.RecordType, typ)
	for k, v := range fields {
		if err := r.Set(native.StringKey(k), v); err != nil {
			panic(err)
		}
	}
	return r
}

func evaluate(t *testing.T, sl *callback.Slot, rec *native.Object) any {
	t.Helper()
	v, err := sl.Evaluate(rec)
	if err != nil {
		t.Fatalf("Evaluate(%s): %v", sl.Key().Value(), err)
	}
	return v
}
