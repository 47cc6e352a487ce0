package options

import (
	"github.com/dshills/chartwire/internal/callback"
	"github.com/dshills/chartwire/internal/chart"
	"github.com/dshills/chartwire/internal/native"
)

type rootProperty uint8

const (
	rootResponsive rootProperty = iota
	rootMaintainAspectRatio
	rootAspectRatio
	rootDevicePixelRatio
	rootIndexAxis
	rootLocale
	rootColor
	rootBorderColor
	rootBackgroundColor
	rootShowLine
	rootFont
	rootPlugins
	rootAnimation
	rootScales
	rootElements
)

func (p rootProperty) Value() string {
	switch p {
	case rootResponsive:
		return "responsive"
	case rootMaintainAspectRatio:
		return "maintainAspectRatio"
	case rootAspectRatio:
		return "aspectRatio"
	case rootDevicePixelRatio:
		return "devicePixelRatio"
	case rootIndexAxis:
		return "indexAxis"
	case rootLocale:
		return "locale"
	case rootColor:
		return "color"
	case rootBorderColor:
		return "borderColor"
	case rootBackgroundColor:
		return "backgroundColor"
	case rootShowLine:
		return "showLine"
	case rootFont:
		return "font"
	case rootPlugins:
		return "plugins"
	case rootAnimation:
		return "animation"
	case rootScales:
		return "scales"
	case rootElements:
		return "elements"
	default:
		return ""
	}
}

func (p rootProperty) coercer() callback.Coercer {
	switch p {
	case rootResponsive, rootMaintainAspectRatio, rootShowLine:
		return callback.Bool
	case rootAspectRatio:
		return callback.PositiveNumber
	case rootDevicePixelRatio:
		return callback.PositiveNumber.WithFallback(nil)
	case rootIndexAxis:
		return callback.Enum("index axis", chart.IndexAxisTokens...)
	case rootLocale:
		return callback.String
	case rootColor, rootBorderColor, rootBackgroundColor:
		return callback.Color
	default:
		return callback.Coercer{}
	}
}

type pluginKey uint8

const (
	pluginTitle pluginKey = iota
	pluginSubtitle
	pluginLegend
	pluginTooltip
)

func (p pluginKey) Value() string {
	switch p {
	case pluginTitle:
		return "title"
	case pluginSubtitle:
		return "subtitle"
	case pluginLegend:
		return "legend"
	case pluginTooltip:
		return "tooltip"
	default:
		return ""
	}
}

// Options is the root of a chart's options tree.
type Options struct {
	scope
}

// New returns the options of c.
func New(c *chart.Chart) *Options {
	return &Options{newScope(c, c.Options(), nil)}
}

func (o *Options) slot(p rootProperty) *callback.Slot {
	return o.scope.slot(p, p.coercer())
}

// SetResponsive resizes the chart with its container.
func (o *Options) SetResponsive(responsive bool) error {
	return o.slot(rootResponsive).SetLiteral(responsive)
}

// Responsive reports whether the chart resizes with its container.
func (o *Options) Responsive() bool {
	return o.boolean(rootResponsive)
}

// SetMaintainAspectRatio keeps the aspect ratio when resizing.
func (o *Options) SetMaintainAspectRatio(maintain bool) error {
	return o.slot(rootMaintainAspectRatio).SetLiteral(maintain)
}

// MaintainAspectRatio reports whether the aspect ratio is kept.
func (o *Options) MaintainAspectRatio() bool {
	return o.boolean(rootMaintainAspectRatio)
}

// SetAspectRatio sets width / height. It must be positive.
func (o *Options) SetAspectRatio(ratio float64) error {
	return o.slot(rootAspectRatio).SetLiteral(ratio)
}

// AspectRatio returns width / height.
func (o *Options) AspectRatio() float64 {
	return o.number(rootAspectRatio, callback.PositiveNumber)
}

// SetDevicePixelRatio overrides the display pixel ratio.
func (o *Options) SetDevicePixelRatio(ratio float64) error {
	return o.slot(rootDevicePixelRatio).SetLiteral(ratio)
}

// DevicePixelRatio returns the pixel ratio override. ok is false when the
// display ratio is used.
func (o *Options) DevicePixelRatio() (ratio float64, ok bool) {
	ratio, ok = o.value(rootDevicePixelRatio, rootDevicePixelRatio.coercer()).(float64)
	return ratio, ok
}

// SetIndexAxis sets the base axis ("x" or "y"); "y" draws horizontal bars.
func (o *Options) SetIndexAxis(axis string) error {
	return o.slot(rootIndexAxis).SetLiteral(axis)
}

// IndexAxis returns the base axis.
func (o *Options) IndexAxis() string {
	return o.text(rootIndexAxis, rootIndexAxis.coercer())
}

// SetLocale sets the locale used to format numbers.
func (o *Options) SetLocale(locale string) error {
	return o.slot(rootLocale).SetLiteral(locale)
}

// Locale returns the number formatting locale.
func (o *Options) Locale() string {
	return o.text(rootLocale, callback.String)
}

// SetColor sets the default text color.
func (o *Options) SetColor(color string) error {
	return o.slot(rootColor).SetLiteral(color)
}

// Color returns the default text color.
func (o *Options) Color() string {
	return o.text(rootColor, callback.Color)
}

// SetBorderColor sets the default border color.
func (o *Options) SetBorderColor(color string) error {
	return o.slot(rootBorderColor).SetLiteral(color)
}

// BorderColor returns the default border color.
func (o *Options) BorderColor() string {
	return o.text(rootBorderColor, callback.Color)
}

// SetBackgroundColor sets the default fill color.
func (o *Options) SetBackgroundColor(color string) error {
	return o.slot(rootBackgroundColor).SetLiteral(color)
}

// BackgroundColor returns the default fill color.
func (o *Options) BackgroundColor() string {
	return o.text(rootBackgroundColor, callback.Color)
}

// SetShowLine draws lines between points.
func (o *Options) SetShowLine(show bool) error {
	return o.slot(rootShowLine).SetLiteral(show)
}

// ShowLine reports whether lines are drawn between points.
func (o *Options) ShowLine() bool {
	return o.boolean(rootShowLine)
}

// Font returns the chart-wide font.
func (o *Options) Font() *Font {
	return &Font{o.nested(rootFont)}
}

func (o *Options) plugin(p pluginKey) scope {
	return o.nested(rootPlugins).nested(p)
}

// Title returns the title options.
func (o *Options) Title() *Title {
	return &Title{o.plugin(pluginTitle)}
}

// Subtitle returns the subtitle options. It has the same shape as the title.
func (o *Options) Subtitle() *Title {
	return &Title{o.plugin(pluginSubtitle)}
}

// Legend returns the legend options.
func (o *Options) Legend() *Legend {
	return &Legend{o.plugin(pluginLegend)}
}

// Tooltip returns the tooltip options.
func (o *Options) Tooltip() *Tooltip {
	return &Tooltip{o.plugin(pluginTooltip)}
}

// Animation returns the animation options.
func (o *Options) Animation() *Animation {
	return &Animation{o.nested(rootAnimation)}
}

// Scales returns the scale map.
func (o *Options) Scales() *Scales {
	return &Scales{o.child(rootScales, nil)}
}

// ScalesView returns the scales over a copy of their nodes. Reading nested
// sections through it never adds nodes to the configuration and writes
// through it are discarded. Callbacks stay shared with the configuration.
func (o *Options) ScalesView() *Scales {
	node := o.node.GetObject(rootScales).Clone()
	if node == nil {
		node = native.NewObject()
	}
	return &Scales{newScope(o.chart, node, nil)}
}

// Elements returns the element style defaults.
func (o *Options) Elements() *Elements {
	return &Elements{o.nested(rootElements)}
}

// Datasets returns the datasets of the chart.
func (o *Options) Datasets() *Datasets {
	return &Datasets{chart: o.chart}
}

// OnClick adds a chart click handler.
func (o *Options) OnClick(h chart.Handler) (chart.HandlerID, error) {
	return o.chart.Listeners().Add(chart.EventClick, h)
}

// OnHover adds a chart hover handler.
func (o *Options) OnHover(h chart.Handler) (chart.HandlerID, error) {
	return o.chart.Listeners().Add(chart.EventHover, h)
}

// RemoveHandler removes a handler added through OnClick or OnHover.
func (o *Options) RemoveHandler(id chart.HandlerID) bool {
	return o.chart.Listeners().Remove(id)
}
