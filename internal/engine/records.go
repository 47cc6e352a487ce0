package engine

import (
	"github.com/dshills/chartwire/internal/callback"
	"github.com/dshills/chartwire/internal/chart"
	"github.com/dshills/chartwire/internal/native"
)

// Record property names the engine writes besides callback.RecordKey.
const (
	keyDataset        = native.StringKey("dataset")
	keyFormattedValue = native.StringKey("formattedValue")
	keyX              = native.StringKey("x")
	keyY              = native.StringKey("y")
)

func newRecord(c *chart.Chart, typ string) *native.Object {
	r := native.NewObject()
	r.SetObject(callback.RecordChart, c.Ref())
	r.SetString(callback.RecordType, typ)
	return r
}

// ChartRecord returns the record for chart-wide options.
func ChartRecord(c *chart.Chart) *native.Object {
	return newRecord(c, callback.TypeChart)
}

// DatasetRecord returns the record for dataset-wide options.
func DatasetRecord(c *chart.Chart, datasetIndex int) *native.Object {
	r := newRecord(c, callback.TypeDataset)
	r.SetInt(callback.RecordDatasetIndex, datasetIndex)
	r.SetInt(callback.RecordIndex, datasetIndex)
	if ds := c.Dataset(datasetIndex); ds != nil {
		r.SetObject(keyDataset, ds)
	}
	return r
}

// DataRecord returns the record for one data point.
func DataRecord(c *chart.Chart, datasetIndex, dataIndex int, raw any, active bool) *native.Object {
	r := DatasetRecord(c, datasetIndex)
	r.SetString(callback.RecordType, callback.TypeData)
	r.SetInt(callback.RecordDataIndex, dataIndex)
	r.SetInt(callback.RecordIndex, dataIndex)
	r.SetBool(callback.RecordActive, active)
	if raw != nil {
		if err := r.Set(callback.RecordRaw, raw); err != nil {
			c.Logger().Debug("data record raw: %v", err)
		}
	}
	return r
}

// ScaleRecord returns the record for scale-wide options.
func ScaleRecord(c *chart.Chart, scaleID string) *native.Object {
	r := newRecord(c, callback.TypeScale)
	scale := native.NewObject()
	scale.SetString(callback.RecordID, scaleID)
	r.SetObject(callback.RecordScale, scale)
	return r
}

// TickRecord returns the record for one tick of a scale.
func TickRecord(c *chart.Chart, scaleID string, index int, value float64, label string) *native.Object {
	r := ScaleRecord(c, scaleID)
	r.SetString(callback.RecordType, callback.TypeTick)
	r.SetInt(callback.RecordIndex, index)
	tick := native.NewObject()
	tick.SetNumber(callback.RecordValue, value)
	tick.SetString(callback.RecordLabel, label)
	r.SetObject(callback.RecordTick, tick)
	return r
}

// SegmentRecord returns the record for the line segment between two
// consecutive points of a dataset.
func SegmentRecord(c *chart.Chart, datasetIndex, p0, p1 int) *native.Object {
	r := DatasetRecord(c, datasetIndex)
	r.SetString(callback.RecordType, callback.TypeSegment)
	r.SetInt(callback.RecordP0DataIndex, p0)
	r.SetInt(callback.RecordP1DataIndex, p1)
	return r
}

// EventRecord returns the record passed to event listeners.
func EventRecord(c *chart.Chart, eventType string, x, y float64) *native.Object {
	r := newRecord(c, eventType)
	r.SetNumber(keyX, x)
	r.SetNumber(keyY, y)
	return r
}
