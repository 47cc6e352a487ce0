package options

import (
	"github.com/dshills/chartwire/internal/callback"
	"github.com/dshills/chartwire/internal/chart"
	"github.com/dshills/chartwire/internal/native"
)

type legendProperty uint8

const (
	legendDisplay legendProperty = iota
	legendPosition
	legendAlign
	legendReverse
	legendLabels
)

func (p legendProperty) Value() string {
	switch p {
	case legendDisplay:
		return "display"
	case legendPosition:
		return "position"
	case legendAlign:
		return "align"
	case legendReverse:
		return "reverse"
	case legendLabels:
		return "labels"
	default:
		return ""
	}
}

func (p legendProperty) coercer() callback.Coercer {
	switch p {
	case legendDisplay, legendReverse:
		return callback.Bool
	case legendPosition:
		return callback.Enum("legend position", append(chart.PositionTokens, "chartArea")...)
	case legendAlign:
		return callback.Enum("align", chart.AlignTokens...)
	default:
		return callback.Coercer{}
	}
}

// Legend configures the chart legend.
type Legend struct {
	scope
}

func (l *Legend) slot(p legendProperty) *callback.Slot {
	return l.scope.slot(p, p.coercer())
}

// SetDisplay shows or hides the legend.
func (l *Legend) SetDisplay(display bool) error {
	return l.slot(legendDisplay).SetLiteral(display)
}

// Display reports whether the legend is shown.
func (l *Legend) Display() bool {
	return l.boolean(legendDisplay)
}

// SetPosition sets the legend position.
func (l *Legend) SetPosition(position string) error {
	return l.slot(legendPosition).SetLiteral(position)
}

// Position returns the legend position.
func (l *Legend) Position() string {
	return l.text(legendPosition, legendPosition.coercer())
}

// SetAlign sets the legend alignment.
func (l *Legend) SetAlign(align string) error {
	return l.slot(legendAlign).SetLiteral(align)
}

// Align returns the legend alignment.
func (l *Legend) Align() string {
	return l.text(legendAlign, legendAlign.coercer())
}

// SetReverse reverses the legend item order.
func (l *Legend) SetReverse(reverse bool) error {
	return l.slot(legendReverse).SetLiteral(reverse)
}

// Reverse reports whether the legend order is reversed.
func (l *Legend) Reverse() bool {
	return l.boolean(legendReverse)
}

// Labels returns the legend label options.
func (l *Legend) Labels() *LegendLabels {
	return &LegendLabels{l.nested(legendLabels)}
}

// OnClick adds a legend item click handler.
func (l *Legend) OnClick(h chart.Handler) (chart.HandlerID, error) {
	return l.chart.Listeners().Add(chart.EventLegendClick, h)
}

// OnEnter adds a handler for the pointer entering a legend item.
func (l *Legend) OnEnter(h chart.Handler) (chart.HandlerID, error) {
	return l.chart.Listeners().Add(chart.EventLegendEnter, h)
}

// OnLeave adds a handler for the pointer leaving a legend item.
func (l *Legend) OnLeave(h chart.Handler) (chart.HandlerID, error) {
	return l.chart.Listeners().Add(chart.EventLegendLeave, h)
}

// RemoveHandler removes a handler added through OnClick, OnEnter or OnLeave.
func (l *Legend) RemoveHandler(id chart.HandlerID) bool {
	return l.chart.Listeners().Remove(id)
}

type labelsProperty uint8

const (
	labelsBoxWidth labelsProperty = iota
	labelsColor
	labelsPadding
	labelsUsePointStyle
	labelsGenerateLabels
	labelsFont
)

func (p labelsProperty) Value() string {
	switch p {
	case labelsBoxWidth:
		return "boxWidth"
	case labelsColor:
		return "color"
	case labelsPadding:
		return "padding"
	case labelsUsePointStyle:
		return "usePointStyle"
	case labelsGenerateLabels:
		return "generateLabels"
	case labelsFont:
		return "font"
	default:
		return ""
	}
}

func (p labelsProperty) coercer() callback.Coercer {
	switch p {
	case labelsBoxWidth, labelsPadding:
		return callback.NonNegativeInt
	case labelsColor:
		return callback.Color
	case labelsUsePointStyle:
		return callback.Bool
	case labelsGenerateLabels:
		return LegendItems
	default:
		return callback.Coercer{}
	}
}

var labelsScriptable = []labelsProperty{labelsColor, labelsGenerateLabels}

// LegendLabels configures legend items.
type LegendLabels struct {
	scope
}

func (l *LegendLabels) slot(p labelsProperty) *callback.Slot {
	s := l.scope.slot(p, p.coercer())
	if p == labelsGenerateLabels {
		return s.WithFamily(callback.FamilyChart)
	}
	return s
}

// SetBoxWidth sets the width of the color box.
func (l *LegendLabels) SetBoxWidth(w int) error {
	return l.slot(labelsBoxWidth).SetLiteral(w)
}

// BoxWidth returns the width of the color box.
func (l *LegendLabels) BoxWidth() int {
	return l.integer(labelsBoxWidth, callback.NonNegativeInt)
}

// SetColor sets the label color.
func (l *LegendLabels) SetColor(color string) error {
	return l.slot(labelsColor).SetLiteral(color)
}

// SetColorCallback computes the label color.
func (l *LegendLabels) SetColorCallback(fn func(*callback.Context) string) {
	l.slot(labelsColor).SetCallback(callback.Typed(fn))
}

// Color returns the label color.
func (l *LegendLabels) Color() string {
	return l.text(labelsColor, callback.Color)
}

// SetPadding sets the padding between items.
func (l *LegendLabels) SetPadding(p int) error {
	return l.slot(labelsPadding).SetLiteral(p)
}

// Padding returns the padding between items.
func (l *LegendLabels) Padding() int {
	return l.integer(labelsPadding, callback.NonNegativeInt)
}

// SetUsePointStyle draws items with the dataset point style.
func (l *LegendLabels) SetUsePointStyle(use bool) error {
	return l.slot(labelsUsePointStyle).SetLiteral(use)
}

// UsePointStyle reports whether items use the point style.
func (l *LegendLabels) UsePointStyle() bool {
	return l.boolean(labelsUsePointStyle)
}

// SetGenerateLabels replaces the default legend item generation.
func (l *LegendLabels) SetGenerateLabels(fn func(*callback.Context) []LegendItem) {
	l.slot(labelsGenerateLabels).SetCallback(callback.Typed(fn))
}

// HasGenerateLabels reports whether a generator is registered.
func (l *LegendLabels) HasGenerateLabels() bool {
	return l.slot(labelsGenerateLabels).State() == callback.StateCallback
}

// Font returns the label font.
func (l *LegendLabels) Font() *Font {
	return &Font{l.child(labelsFont, native.ParsePath("font"))}
}

// LegendItem is one entry of the legend.
type LegendItem struct {
	Text         string
	FillStyle    string
	StrokeStyle  string
	LineWidth    float64
	Hidden       bool
	DatasetIndex int
	PointStyle   string
}

type legendItemKey uint8

const (
	itemText legendItemKey = iota
	itemFillStyle
	itemStrokeStyle
	itemLineWidth
	itemHidden
	itemDatasetIndex
	itemPointStyle
)

func (k legendItemKey) Value() string {
	switch k {
	case itemText:
		return "text"
	case itemFillStyle:
		return "fillStyle"
	case itemStrokeStyle:
		return "strokeStyle"
	case itemLineWidth:
		return "lineWidth"
	case itemHidden:
		return "hidden"
	case itemDatasetIndex:
		return "datasetIndex"
	case itemPointStyle:
		return "pointStyle"
	default:
		return ""
	}
}

// Native returns the item as a native object.
func (i LegendItem) Native() *native.Object {
	o := native.NewObject()
	o.SetString(itemText, i.Text)
	if i.FillStyle != "" {
		o.SetString(itemFillStyle, i.FillStyle)
	}
	if i.StrokeStyle != "" {
		o.SetString(itemStrokeStyle, i.StrokeStyle)
	}
	if i.LineWidth > 0 {
		o.SetNumber(itemLineWidth, i.LineWidth)
	}
	o.SetBool(itemHidden, i.Hidden)
	o.SetInt(itemDatasetIndex, i.DatasetIndex)
	if i.PointStyle != "" {
		o.SetString(itemPointStyle, i.PointStyle)
	}
	return o
}

// LegendItemFromNative reads an item back from its native form.
func LegendItemFromNative(o *native.Object) LegendItem {
	return LegendItem{
		Text:         o.GetString(itemText, ""),
		FillStyle:    o.GetString(itemFillStyle, ""),
		StrokeStyle:  o.GetString(itemStrokeStyle, ""),
		LineWidth:    o.GetNumber(itemLineWidth, 0),
		Hidden:       o.GetBool(itemHidden, false),
		DatasetIndex: o.GetInt(itemDatasetIndex, 0),
		PointStyle:   o.GetString(itemPointStyle, ""),
	}
}

// LegendItems accepts generated legend items: a []LegendItem or a list of
// objects carrying at least a text.
var LegendItems = callback.NewCoercer("legend items", nil, func(raw any) (any, bool) {
	switch v := raw.(type) {
	case []LegendItem:
		out := make(native.Array, len(v))
		for i, item := range v {
			out[i] = item.Native()
		}
		return out, true
	case []any:
		return legendItemsFromList(v)
	case native.Array:
		return legendItemsFromList(v)
	}
	return nil, false
})

func legendItemsFromList(list []any) (any, bool) {
	out := make(native.Array, len(list))
	for i, e := range list {
		var o *native.Object
		switch item := e.(type) {
		case *native.Object:
			o = item
		case map[string]any:
			var err error
			if o, err = native.FromMap(item); err != nil {
				return nil, false
			}
		default:
			return nil, false
		}
		if _, ok := o.Get(itemText); !ok {
			return nil, false
		}
		out[i] = o
	}
	return out, true
}
