package callback

import (
	"github.com/dshills/chartwire/internal/native"
)

type testChart struct {
	id       string
	typ      string
	defaults *native.Object
}

func (c *testChart) ID() string               { return c.id }
func (c *testChart) Type() string             { return c.typ }
func (c *testChart) Defaults() *native.Object { return c.defaults }

type testCharts map[string]*testChart

func (r testCharts) Lookup(id string) (Chart, bool) {
	c, ok := r[id]
	if !ok {
		return nil, false
	}
	return c, true
}

func newTestCharts() testCharts {
	defaults := native.NewObject()
	point := defaults.Ensure(native.ParsePath("elements.point"))
	point.SetNumber(native.StringKey("radius"), 3)
	point.SetString(native.StringKey("backgroundColor"), "rgba(0,0,0,0.1)")
	bar := defaults.Ensure(native.ParsePath("elements.bar"))
	bar.SetString(native.StringKey("borderSkipped"), "start")
	return testCharts{"c1": {id: "c1", typ: "line", defaults: defaults}}
}

func record(chartID, typ string, fields map[string]any) *native.Object {
	r := native.NewObject()
	if chartID != "" {
		r.Child(RecordChart).SetString(RecordID, chartID)
	}
	if typ != "" {
		r.SetString(RecordType, typ)
	}
	for k, v := range fields {
		if err := r.Set(native.StringKey(k), v); err != nil {
			panic(err)
		}
	}
	return r
}
