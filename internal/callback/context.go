package callback

import (
	"math"

	"github.com/dshills/chartwire/internal/native"
)

// Undefined is returned by integer accessors for fields the record lacks.
const Undefined = math.MinInt32

// Chart is the chart a call-site record points back to.
type Chart interface {
	// ID returns the chart id carried by native records.
	ID() string
	// Type returns the chart type token (e.g. "line").
	Type() string
	// Defaults returns the chart's resolved default options.
	Defaults() *native.Object
}

// Charts resolves chart back-references.
type Charts interface {
	// Lookup returns the chart registered under id.
	Lookup(id string) (Chart, bool)
}

// Family is the category of call-site information a record carries.
type Family uint8

const (
	// FamilyAuto derives the family from the record's type token.
	FamilyAuto Family = iota
	// FamilyChart is chart-wide context.
	FamilyChart
	// FamilyDataset is per dataset or per data point context.
	FamilyDataset
	// FamilyScale is per scale or per tick context.
	FamilyScale
	// FamilySegment is per line segment context.
	FamilySegment
)

// String returns the family name.
func (f Family) String() string {
	switch f {
	case FamilyAuto:
		return "auto"
	case FamilyChart:
		return "chart"
	case FamilyDataset:
		return "dataset"
	case FamilyScale:
		return "scale"
	case FamilySegment:
		return "segment"
	default:
		return "unknown"
	}
}

// RecordKey is a property of a native call-site record.
type RecordKey uint8

const (
	// RecordChart is the chart back-reference (an object carrying "id").
	RecordChart RecordKey = iota
	// RecordType is the context type token.
	RecordType
	// RecordDatasetIndex is the dataset index.
	RecordDatasetIndex
	// RecordDataIndex is the data point index.
	RecordDataIndex
	// RecordIndex is the tick index for scale contexts.
	RecordIndex
	// RecordScale is the scale reference (an object carrying "id").
	RecordScale
	// RecordActive reports whether the element is hovered.
	RecordActive
	// RecordRaw is the raw data value.
	RecordRaw
	// RecordTick is the tick object (carrying "value" and "label").
	RecordTick
	// RecordP0DataIndex is the start point index of a segment.
	RecordP0DataIndex
	// RecordP1DataIndex is the end point index of a segment.
	RecordP1DataIndex
	// RecordMode is the animation/update mode.
	RecordMode
	// RecordID is the id property of chart and scale references.
	RecordID
	// RecordValue is the value property of tick objects.
	RecordValue
	// RecordLabel is the label property of tick and tooltip records.
	RecordLabel
)

// Value implements native.Key.
func (k RecordKey) Value() string {
	switch k {
	case RecordChart:
		return "chart"
	case RecordType:
		return "type"
	case RecordDatasetIndex:
		return "datasetIndex"
	case RecordDataIndex:
		return "dataIndex"
	case RecordIndex:
		return "index"
	case RecordScale:
		return "scale"
	case RecordActive:
		return "active"
	case RecordRaw:
		return "raw"
	case RecordTick:
		return "tick"
	case RecordP0DataIndex:
		return "p0DataIndex"
	case RecordP1DataIndex:
		return "p1DataIndex"
	case RecordMode:
		return "mode"
	case RecordID:
		return "id"
	case RecordValue:
		return "value"
	case RecordLabel:
		return "label"
	default:
		return ""
	}
}

// Context type tokens the engine writes into records.
const (
	TypeChart   = "chart"
	TypeDataset = "dataset"
	TypeData    = "data"
	TypeScale   = "scale"
	TypeTick    = "tick"
	TypeSegment = "segment"
)

// Context is an immutable snapshot of one native invocation. It must not be
// retained after the callback returns.
type Context struct {
	chart   Chart
	family  Family
	typ     string
	record  *native.Object
	scaleID string
}

// Marshal converts a native record into a Context, deriving the family from
// the record's type token.
func Marshal(charts Charts, record *native.Object) (*Context, error) {
	return MarshalAs(charts, FamilyAuto, record)
}

// MarshalAs converts a native record into a Context of the given family.
// It fails fast with a *ConfigurationError when the record is nil or its chart
// back-reference is missing or unknown.
func MarshalAs(charts Charts, family Family, record *native.Object) (*Context, error) {
	if record == nil {
		return nil, configError("marshal", "", ErrMissingRecord)
	}
	ref := record.GetObject(RecordChart)
	if ref == nil {
		return nil, configError("marshal", RecordChart.Value(), ErrMissingChart)
	}
	id := ref.GetString(RecordID, "")
	if id == "" {
		return nil, configError("marshal", RecordChart.Value(), ErrMissingChart)
	}
	if charts == nil {
		return nil, configError("marshal", id, ErrUnknownChart)
	}
	chart, ok := charts.Lookup(id)
	if !ok {
		return nil, configError("marshal", id, ErrUnknownChart)
	}

	typ := record.GetString(RecordType, "")
	if family == FamilyAuto {
		family = familyOf(typ)
	}
	if typ == "" {
		typ = defaultType(family)
	}

	ctx := &Context{
		chart:  chart,
		family: family,
		typ:    typ,
		record: record.Clone(),
	}
	if scale := record.GetObject(RecordScale); scale != nil {
		ctx.scaleID = scale.GetString(RecordID, "")
	} else {
		ctx.scaleID = record.GetString(RecordScale, "")
	}
	return ctx, nil
}

func familyOf(typ string) Family {
	switch typ {
	case TypeDataset, TypeData:
		return FamilyDataset
	case TypeScale, TypeTick:
		return FamilyScale
	case TypeSegment:
		return FamilySegment
	default:
		return FamilyChart
	}
}

func defaultType(f Family) string {
	switch f {
	case FamilyDataset:
		return TypeDataset
	case FamilyScale:
		return TypeScale
	case FamilySegment:
		return TypeSegment
	default:
		return TypeChart
	}
}

// Chart returns the chart the record points back to.
func (c *Context) Chart() Chart {
	return c.chart
}

// ChartID returns the id of the chart.
func (c *Context) ChartID() string {
	return c.chart.ID()
}

// Family returns the context family.
func (c *Context) Family() Family {
	return c.family
}

// Type returns the context type token.
func (c *Context) Type() string {
	return c.typ
}

// DatasetIndex returns the dataset index, or Undefined.
func (c *Context) DatasetIndex() int {
	return c.intField(RecordDatasetIndex)
}

// DataIndex returns the data point index, or Undefined.
func (c *Context) DataIndex() int {
	return c.intField(RecordDataIndex)
}

// Index returns the tick index, or Undefined.
func (c *Context) Index() int {
	return c.intField(RecordIndex)
}

// P0DataIndex returns the start point index of a segment, or Undefined.
func (c *Context) P0DataIndex() int {
	return c.intField(RecordP0DataIndex)
}

// P1DataIndex returns the end point index of a segment, or Undefined.
func (c *Context) P1DataIndex() int {
	return c.intField(RecordP1DataIndex)
}

// ScaleID returns the id of the scale, or "".
func (c *Context) ScaleID() string {
	return c.scaleID
}

// Active reports whether the element is hovered.
func (c *Context) Active() bool {
	return c.record.GetBool(RecordActive, false)
}

// Mode returns the update mode, or "".
func (c *Context) Mode() string {
	return c.record.GetString(RecordMode, "")
}

// Raw returns the raw data value, or nil.
func (c *Context) Raw() any {
	v, _ := c.record.Get(RecordRaw)
	return v
}

// TickValue returns the tick value, or NaN.
func (c *Context) TickValue() float64 {
	tick := c.record.GetObject(RecordTick)
	if tick == nil {
		return math.NaN()
	}
	return tick.GetNumber(RecordValue, math.NaN())
}

// TickLabel returns the tick label, or "".
func (c *Context) TickLabel() string {
	tick := c.record.GetObject(RecordTick)
	if tick == nil {
		return c.record.GetString(RecordLabel, "")
	}
	return tick.GetString(RecordLabel, "")
}

// Attribute returns any other record property by name.
func (c *Context) Attribute(name string) (any, bool) {
	return c.record.Get(native.StringKey(name))
}

// ToMap returns the record as nested Go maps, with the chart reference
// reduced to its id. Used by script bridges.
func (c *Context) ToMap() map[string]any {
	m := c.record.ToMap()
	m[RecordChart.Value()] = c.chart.ID()
	m[RecordType.Value()] = c.typ
	return m
}

func (c *Context) intField(k RecordKey) int {
	v, ok := c.record.Get(k)
	if !ok {
		return Undefined
	}
	f, ok := v.(float64)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return Undefined
	}
	return int(f)
}
