package options

import (
	"github.com/samber/lo"

	"github.com/dshills/chartwire/internal/callback"
	"github.com/dshills/chartwire/internal/chart"
	"github.com/dshills/chartwire/internal/native"
)

// Datasets is the list of datasets of a chart.
type Datasets struct {
	chart *chart.Chart
}

// Add appends an empty dataset with the given label.
func (d *Datasets) Add(label string) *Dataset {
	node := native.NewObject()
	if label != "" {
		node.SetString(datasetLabel, label)
	}
	return d.wrap(d.chart.AddDataset(node), node)
}

// At returns the dataset at index, or nil.
func (d *Datasets) At(index int) *Dataset {
	node := d.chart.Dataset(index)
	if node == nil {
		return nil
	}
	return d.wrap(index, node)
}

// Len returns the number of datasets.
func (d *Datasets) Len() int {
	return len(d.chart.Datasets())
}

// All returns every dataset in order.
func (d *Datasets) All() []*Dataset {
	return lo.FilterMap(d.chart.Datasets(), func(v any, i int) (*Dataset, bool) {
		node, ok := v.(*native.Object)
		if !ok {
			return nil, false
		}
		return d.wrap(i, node), true
	})
}

func (d *Datasets) wrap(index int, node *native.Object) *Dataset {
	return &Dataset{
		scope: newScope(d.chart, node, nil).withFamily(callback.FamilyDataset),
		index: index,
	}
}

type datasetProperty uint8

const (
	datasetLabel datasetProperty = iota
	datasetData
	datasetHidden
	datasetOrder
	datasetType
	datasetStack
	datasetXAxisID
	datasetYAxisID
	datasetBackgroundColor
	datasetBorderColor
	datasetBorderWidth
	datasetBorderSkipped
	datasetFill
	datasetStepped
	datasetTension
	datasetSegment
)

func (p datasetProperty) Value() string {
	switch p {
	case datasetLabel:
		return "label"
	case datasetData:
		return "data"
	case datasetHidden:
		return "hidden"
	case datasetOrder:
		return "order"
	case datasetType:
		return "type"
	case datasetStack:
		return "stack"
	case datasetXAxisID:
		return "xAxisID"
	case datasetYAxisID:
		return "yAxisID"
	case datasetBackgroundColor:
		return "backgroundColor"
	case datasetBorderColor:
		return "borderColor"
	case datasetBorderWidth:
		return "borderWidth"
	case datasetBorderSkipped:
		return "borderSkipped"
	case datasetFill:
		return "fill"
	case datasetStepped:
		return "stepped"
	case datasetTension:
		return "tension"
	case datasetSegment:
		return "segment"
	default:
		return ""
	}
}

func (p datasetProperty) coercer() callback.Coercer {
	switch p {
	case datasetLabel, datasetStack, datasetXAxisID, datasetYAxisID:
		return callback.String
	case datasetHidden:
		return callback.Bool
	case datasetOrder:
		return callback.Int
	case datasetType:
		return callback.Enum("chart type", chart.Tokens()...).WithFallback("")
	case datasetBackgroundColor, datasetBorderColor:
		return callback.Color
	case datasetBorderWidth, datasetTension:
		return callback.NonNegativeNumber
	case datasetBorderSkipped:
		return callback.BorderSkippedPolicy
	case datasetFill:
		return callback.FillPolicy
	case datasetStepped:
		return callback.SteppedPolicy
	default:
		return callback.Coercer{}
	}
}

var datasetScriptable = []datasetProperty{
	datasetBackgroundColor, datasetBorderColor, datasetBorderWidth, datasetBorderSkipped,
	datasetFill, datasetStepped,
}

// Dataset configures one dataset. Its style properties override the element
// defaults of the chart type and their callbacks receive dataset contexts.
type Dataset struct {
	scope
	index int
}

// Index returns the dataset position in the chart.
func (d *Dataset) Index() int {
	return d.index
}

func (d *Dataset) slot(p datasetProperty) *callback.Slot {
	sl := callback.MustSlot(d.chart.Charts(), d.node, p, d.defaultsPath(p), p.coercer())
	return sl.WithFamily(callback.FamilyDataset)
}

// defaultsPath maps style properties to the defaults of the element the
// dataset draws with, which follows its own type in mixed charts.
// Structural properties have no defaults.
func (d *Dataset) defaultsPath(p datasetProperty) native.Path {
	if lo.Contains(datasetScriptable, p) || p == datasetTension {
		return native.Path{rootElements, native.StringKey(d.Type().Element()), p}
	}
	return nil
}

func (d *Dataset) value(p datasetProperty) any {
	return d.slot(p).Value(d.chart)
}

// SetLabel sets the dataset label.
func (d *Dataset) SetLabel(label string) error {
	return d.slot(datasetLabel).SetLiteral(label)
}

// Label returns the dataset label.
func (d *Dataset) Label() string {
	s, _ := d.value(datasetLabel).(string)
	return s
}

// SetData replaces the data values.
func (d *Dataset) SetData(values ...float64) {
	d.node.SetArray(datasetData, lo.Map(values, func(v float64, _ int) any { return v }))
}

// SetPoints replaces the data with {x, y} points.
func (d *Dataset) SetPoints(points ...[2]float64) {
	d.node.SetArray(datasetData, lo.Map(points, func(p [2]float64, _ int) any {
		pt := native.NewObject()
		pt.SetNumber(native.StringKey("x"), p[0])
		pt.SetNumber(native.StringKey("y"), p[1])
		return pt
	}))
}

// Data returns the raw data array.
func (d *Dataset) Data() native.Array {
	return d.node.GetArray(datasetData)
}

// Values returns the numeric data values, skipping points and gaps.
func (d *Dataset) Values() []float64 {
	return lo.FilterMap(d.Data(), func(v any, _ int) (float64, bool) {
		f, ok := v.(float64)
		return f, ok
	})
}

// SetHidden hides the dataset.
func (d *Dataset) SetHidden(hidden bool) error {
	return d.slot(datasetHidden).SetLiteral(hidden)
}

// Hidden reports whether the dataset is hidden.
func (d *Dataset) Hidden() bool {
	b, _ := d.value(datasetHidden).(bool)
	return b
}

// SetOrder sets the drawing order (lower is drawn last).
func (d *Dataset) SetOrder(order int) error {
	return d.slot(datasetOrder).SetLiteral(order)
}

// Order returns the drawing order.
func (d *Dataset) Order() int {
	f, _ := d.value(datasetOrder).(float64)
	return int(f)
}

// SetType draws this dataset as another chart type (mixed charts).
// Registered style callbacks are rebound to the new element defaults.
func (d *Dataset) SetType(t chart.Type) error {
	callbacks := make(map[datasetProperty]callback.Func)
	for _, p := range append(datasetScriptable, datasetTension) {
		if fn := d.slot(p).Callback(); fn != nil {
			callbacks[p] = fn
		}
	}
	if err := d.slot(datasetType).SetLiteral(t); err != nil {
		return err
	}
	for p, fn := range callbacks {
		d.slot(p).SetCallback(fn)
	}
	return nil
}

// Type returns the dataset's own type, or the chart type.
func (d *Dataset) Type() chart.Type {
	if s, ok := d.value(datasetType).(string); ok && s != "" {
		if t, err := chart.ParseType(s); err == nil {
			return t
		}
	}
	return d.chart.Kind()
}

// SetStack assigns the dataset to a stack group.
func (d *Dataset) SetStack(stack string) error {
	return d.slot(datasetStack).SetLiteral(stack)
}

// Stack returns the stack group.
func (d *Dataset) Stack() string {
	s, _ := d.value(datasetStack).(string)
	return s
}

// SetXAxisID binds the dataset to an x scale.
func (d *Dataset) SetXAxisID(id string) error {
	return d.slot(datasetXAxisID).SetLiteral(id)
}

// XAxisID returns the bound x scale id, or "".
func (d *Dataset) XAxisID() string {
	s, _ := d.value(datasetXAxisID).(string)
	return s
}

// SetYAxisID binds the dataset to a y scale.
func (d *Dataset) SetYAxisID(id string) error {
	return d.slot(datasetYAxisID).SetLiteral(id)
}

// YAxisID returns the bound y scale id, or "".
func (d *Dataset) YAxisID() string {
	s, _ := d.value(datasetYAxisID).(string)
	return s
}

// SetBackgroundColor sets the fill color.
func (d *Dataset) SetBackgroundColor(color string) error {
	return d.slot(datasetBackgroundColor).SetLiteral(color)
}

// SetBackgroundColorCallback computes the fill color per data point.
func (d *Dataset) SetBackgroundColorCallback(fn func(*callback.Context) string) {
	d.slot(datasetBackgroundColor).SetCallback(callback.Typed(fn))
}

// BackgroundColor returns the fill color.
func (d *Dataset) BackgroundColor() string {
	s, _ := d.value(datasetBackgroundColor).(string)
	return s
}

// SetBorderColor sets the stroke color.
func (d *Dataset) SetBorderColor(color string) error {
	return d.slot(datasetBorderColor).SetLiteral(color)
}

// SetBorderColorCallback computes the stroke color per data point.
func (d *Dataset) SetBorderColorCallback(fn func(*callback.Context) string) {
	d.slot(datasetBorderColor).SetCallback(callback.Typed(fn))
}

// BorderColor returns the stroke color.
func (d *Dataset) BorderColor() string {
	s, _ := d.value(datasetBorderColor).(string)
	return s
}

// SetBorderWidth sets the stroke width.
func (d *Dataset) SetBorderWidth(w float64) error {
	return d.slot(datasetBorderWidth).SetLiteral(w)
}

// SetBorderWidthCallback computes the stroke width per data point.
func (d *Dataset) SetBorderWidthCallback(fn func(*callback.Context) float64) {
	d.slot(datasetBorderWidth).SetCallback(callback.Typed(fn))
}

// BorderWidth returns the stroke width.
func (d *Dataset) BorderWidth() float64 {
	f, _ := d.value(datasetBorderWidth).(float64)
	return f
}

// SetBorderSkipped sets which bar edge has no border.
func (d *Dataset) SetBorderSkipped(s callback.BorderSkipped) error {
	return d.slot(datasetBorderSkipped).SetLiteral(s)
}

// SetBorderSkippedCallback computes the skipped edge per bar.
func (d *Dataset) SetBorderSkippedCallback(fn func(*callback.Context) callback.BorderSkipped) {
	d.slot(datasetBorderSkipped).SetCallback(callback.Typed(fn))
}

// BorderSkipped returns the skipped edge.
func (d *Dataset) BorderSkipped() callback.BorderSkipped {
	s, _ := callback.BorderSkippedFromWire(d.value(datasetBorderSkipped))
	return s
}

// SetFill sets the area fill target.
func (d *Dataset) SetFill(f callback.Fill) error {
	if !f.Valid() {
		return &callback.ConfigurationError{Op: "set", Key: datasetFill.Value(), Err: callback.ErrInvalidValue}
	}
	return d.slot(datasetFill).SetLiteral(f)
}

// SetFillCallback computes the fill target.
func (d *Dataset) SetFillCallback(fn func(*callback.Context) callback.Fill) {
	d.slot(datasetFill).SetCallback(callback.Typed(fn))
}

// Fill returns the area fill target.
func (d *Dataset) Fill() callback.Fill {
	f, _ := callback.FillFromWire(d.value(datasetFill))
	return f
}

// SetStepped sets the stepped interpolation.
func (d *Dataset) SetStepped(s callback.Stepped) error {
	return d.slot(datasetStepped).SetLiteral(s)
}

// SetSteppedCallback computes the stepped interpolation.
func (d *Dataset) SetSteppedCallback(fn func(*callback.Context) callback.Stepped) {
	d.slot(datasetStepped).SetCallback(callback.Typed(fn))
}

// Stepped returns the stepped interpolation.
func (d *Dataset) Stepped() callback.Stepped {
	s, _ := callback.SteppedFromWire(d.value(datasetStepped))
	return s
}

// SetTension sets the bezier curve tension.
func (d *Dataset) SetTension(t float64) error {
	return d.slot(datasetTension).SetLiteral(t)
}

// Tension returns the bezier curve tension.
func (d *Dataset) Tension() float64 {
	f, _ := d.value(datasetTension).(float64)
	return f
}

// Segment returns the per-segment style options of a line dataset.
func (d *Dataset) Segment() *Segment {
	sc := scope{
		chart:    d.chart,
		node:     d.node.Child(datasetSegment),
		defaults: native.Path{rootElements, elementLine},
		family:   callback.FamilySegment,
	}
	return &Segment{sc}
}

type segmentProperty uint8

const (
	segmentBackgroundColor segmentProperty = iota
	segmentBorderColor
	segmentBorderWidth
	segmentBorderDash
)

func (p segmentProperty) Value() string {
	switch p {
	case segmentBackgroundColor:
		return "backgroundColor"
	case segmentBorderColor:
		return "borderColor"
	case segmentBorderWidth:
		return "borderWidth"
	case segmentBorderDash:
		return "borderDash"
	default:
		return ""
	}
}

func (p segmentProperty) coercer() callback.Coercer {
	switch p {
	case segmentBackgroundColor, segmentBorderColor:
		return callback.Color
	case segmentBorderWidth:
		return callback.NonNegativeNumber
	case segmentBorderDash:
		return callback.IntArray
	default:
		return callback.Coercer{}
	}
}

var segmentScriptable = []segmentProperty{
	segmentBackgroundColor, segmentBorderColor, segmentBorderWidth, segmentBorderDash,
}

// Segment styles the line between two consecutive points. Segment options
// only take callbacks; the context carries p0DataIndex and p1DataIndex.
type Segment struct {
	scope
}

func (s *Segment) slot(p segmentProperty) *callback.Slot {
	return s.scope.slot(p, p.coercer())
}

// SetBackgroundColor computes the area color below each segment.
func (s *Segment) SetBackgroundColor(fn func(*callback.Context) string) {
	s.slot(segmentBackgroundColor).SetCallback(callback.Typed(fn))
}

// SetBorderColor computes the color of each segment.
func (s *Segment) SetBorderColor(fn func(*callback.Context) string) {
	s.slot(segmentBorderColor).SetCallback(callback.Typed(fn))
}

// SetBorderWidth computes the width of each segment.
func (s *Segment) SetBorderWidth(fn func(*callback.Context) float64) {
	s.slot(segmentBorderWidth).SetCallback(callback.Typed(fn))
}

// SetBorderDash computes the dash pattern of each segment.
func (s *Segment) SetBorderDash(fn func(*callback.Context) []int) {
	s.slot(segmentBorderDash).SetCallback(callback.Typed(fn))
}

// Slot returns the slot of a segment property by name, for evaluation.
func (s *Segment) Slot(name string) (*callback.Slot, bool) {
	p, ok := lo.Find(segmentScriptable, func(p segmentProperty) bool { return p.Value() == name })
	if !ok {
		return nil, false
	}
	return s.slot(p), true
}
