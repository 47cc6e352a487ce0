package chart

import (
	"github.com/dshills/chartwire/internal/callback"
	"github.com/dshills/chartwire/internal/native"
)

// Shared token sets.
var (
	PositionTokens  = []string{"top", "left", "bottom", "right"}
	AlignTokens     = []string{"start", "center", "end"}
	FontStyleTokens = []string{"normal", "italic", "oblique", "initial", "inherit"}
	EasingTokens    = []string{
		"linear", "easeInQuad", "easeOutQuad", "easeInOutQuad",
		"easeInCubic", "easeOutCubic", "easeInOutCubic",
		"easeInQuart", "easeOutQuart", "easeInOutQuart",
	}
	PointStyleTokens = []string{
		"circle", "cross", "crossRot", "dash", "line", "rect",
		"rectRounded", "rectRot", "star", "triangle",
	}
	InteractionModeTokens = []string{"point", "nearest", "index", "dataset", "x", "y"}
	TooltipPositionTokens = []string{"average", "nearest"}
	IndexAxisTokens       = []string{"x", "y"}
	CapStyleTokens        = []string{"butt", "round", "square"}
	JoinStyleTokens       = []string{"bevel", "round", "miter"}
	BorderAlignTokens     = []string{"center", "inner"}
	InterpolationTokens   = []string{"default", "monotone"}
	ScaleTypeTokens       = []string{"linear", "logarithmic", "category", "time", "timeseries", "radialLinear"}
)

const (
	defaultFontColor   = "#666"
	defaultBorderColor = "rgba(0,0,0,0.1)"
	defaultFillColor   = "rgba(0,0,0,0.1)"
)

// RegisterBuiltins registers the built-in default options.
func (r *Settings) RegisterBuiltins() {
	r.registerChart()
	r.registerFont("font", "normal")
	r.registerAnimation()
	r.registerElements()
	r.registerPlugins()
	r.registerScale()
	r.registerDatasets()
}

// NewBuiltinSettings returns a catalog holding the built-in defaults.
func NewBuiltinSettings() *Settings {
	r := NewSettings()
	r.RegisterBuiltins()
	return r
}

func (r *Settings) boolean(path string, def bool, desc string) {
	r.MustRegister(Setting{Path: path, Type: TypeBool, Default: def, Description: desc})
}

func (r *Settings) number(path string, def any, min *float64, scriptable bool, desc string) {
	r.MustRegister(Setting{Path: path, Type: TypeNumber, Default: def, Minimum: min, Scriptable: scriptable, Description: desc})
}

func (r *Settings) integer(path string, def any, min *float64, scriptable bool, desc string) {
	r.MustRegister(Setting{Path: path, Type: TypeInteger, Default: def, Minimum: min, Scriptable: scriptable, Description: desc})
}

func (r *Settings) colour(path, def string, scriptable bool, desc string) {
	r.MustRegister(Setting{Path: path, Type: TypeColor, Default: def, Scriptable: scriptable, Description: desc})
}

func (r *Settings) enum(path, def string, tokens []string, scriptable bool, desc string) {
	r.MustRegister(Setting{Path: path, Type: TypeEnum, Default: def, Enum: tokens, Scriptable: scriptable, Description: desc})
}

func (r *Settings) policy(path string, def any, p callback.Coercer, desc string) {
	r.MustRegister(Setting{Path: path, Type: TypePolicy, Default: def, Policy: p, Scriptable: true, Description: desc})
}

func (r *Settings) registerChart() {
	r.boolean("responsive", true, "Resize the chart with its container")
	r.boolean("maintainAspectRatio", true, "Keep the aspect ratio when resizing")
	r.number("aspectRatio", 2.0, MinValue(0.01), false, "Width / height ratio")
	r.number("devicePixelRatio", nil, MinValue(0.01), false, "Override the window's pixel ratio")
	r.enum("indexAxis", "x", IndexAxisTokens, false, "Base axis of the dataset")
	r.MustRegister(Setting{Path: "locale", Type: TypeString, Default: "en-US", Description: "Number formatting locale"})
	r.colour("color", defaultFontColor, true, "Default font color")
	r.colour("borderColor", defaultBorderColor, true, "Default border color")
	r.colour("backgroundColor", defaultFillColor, true, "Default fill color")
	r.boolean("showLine", true, "Draw lines between points")
	r.MustRegister(Setting{Path: "cutout", Type: TypeAny, Default: 0.0, Description: "Doughnut cutout as pixels or percentage"})
}

func (r *Settings) registerFont(prefix, weight string) {
	r.MustRegister(Setting{
		Path:        prefix + ".family",
		Type:        TypeString,
		Default:     "'Helvetica Neue', 'Helvetica', 'Arial', sans-serif",
		Description: "Font family",
	})
	r.integer(prefix+".size", 12.0, MinValue(0), true, "Font size in pixels")
	r.enum(prefix+".style", "normal", FontStyleTokens, false, "Font style")
	r.MustRegister(Setting{Path: prefix + ".weight", Type: TypeString, Default: weight, Description: "Font weight"})
	r.number(prefix+".lineHeight", 1.2, MinValue(0), false, "Line height multiplier")
}

func (r *Settings) registerAnimation() {
	r.integer("animation.duration", 1000.0, MinValue(0), true, "Animation length in milliseconds")
	r.integer("animation.delay", 0.0, MinValue(0), true, "Delay before starting in milliseconds")
	r.enum("animation.easing", "easeOutQuart", EasingTokens, false, "Easing function")
	r.boolean("animation.loop", false, "Loop the animation")
}

func (r *Settings) registerElements() {
	r.colour("elements.arc.backgroundColor", defaultFillColor, true, "Arc fill color")
	r.colour("elements.arc.borderColor", "#fff", true, "Arc stroke color")
	r.number("elements.arc.borderWidth", 2.0, MinValue(0), true, "Arc stroke width")
	r.enum("elements.arc.borderAlign", "center", BorderAlignTokens, true, "Arc stroke alignment")
	r.number("elements.arc.offset", 0.0, nil, true, "Arc offset in pixels")
	r.number("elements.arc.spacing", 0.0, MinValue(0), true, "Spacing between arcs")
	r.boolean("elements.arc.circular", true, "Render arcs as circles")

	r.colour("elements.bar.backgroundColor", defaultFillColor, true, "Bar fill color")
	r.colour("elements.bar.borderColor", defaultBorderColor, true, "Bar stroke color")
	r.number("elements.bar.borderWidth", 0.0, MinValue(0), true, "Bar stroke width")
	r.policy("elements.bar.borderSkipped", string(callback.BorderSkippedStart), callback.BorderSkippedPolicy, "Skipped bar edge")
	r.number("elements.bar.borderRadius", 0.0, MinValue(0), true, "Bar corner radius")
	r.number("elements.bar.inflateAmount", nil, MinValue(0), true, "Pixels added to each bar side")

	r.number("elements.line.tension", 0.0, MinValue(0), false, "Bezier curve tension")
	r.colour("elements.line.backgroundColor", defaultFillColor, true, "Line fill color")
	r.colour("elements.line.borderColor", defaultBorderColor, true, "Line color")
	r.number("elements.line.borderWidth", 3.0, MinValue(0), true, "Line width")
	r.MustRegister(Setting{Path: "elements.line.borderDash", Type: TypeArray, Default: native.Array{}, Scriptable: true, Description: "Line dash pattern"})
	r.number("elements.line.borderDashOffset", 0.0, nil, true, "Line dash offset")
	r.enum("elements.line.borderCapStyle", "butt", CapStyleTokens, true, "Line cap style")
	r.enum("elements.line.borderJoinStyle", "miter", JoinStyleTokens, true, "Line join style")
	r.policy("elements.line.fill", false, callback.FillPolicy, "Area fill target")
	r.policy("elements.line.stepped", false, callback.SteppedPolicy, "Stepped interpolation")
	r.boolean("elements.line.capBezierPoints", true, "Keep control points inside the chart")
	r.enum("elements.line.cubicInterpolationMode", "default", InterpolationTokens, false, "Curve interpolation")

	r.number("elements.point.radius", 3.0, MinValue(0), true, "Point radius")
	r.number("elements.point.hoverRadius", 4.0, MinValue(0), true, "Point radius when hovered")
	r.number("elements.point.hitRadius", 1.0, MinValue(0), true, "Extra radius for hit detection")
	r.enum("elements.point.pointStyle", "circle", PointStyleTokens, true, "Point shape")
	r.number("elements.point.rotation", 0.0, nil, true, "Point rotation in degrees")
	r.colour("elements.point.backgroundColor", defaultFillColor, true, "Point fill color")
	r.colour("elements.point.borderColor", defaultBorderColor, true, "Point stroke color")
	r.number("elements.point.borderWidth", 1.0, MinValue(0), true, "Point stroke width")
	r.number("elements.point.hoverBorderWidth", 1.0, MinValue(0), true, "Point stroke width when hovered")
}

func (r *Settings) registerTitle(prefix string, padding float64) {
	r.boolean(prefix+".display", false, "Show the title")
	r.MustRegister(Setting{Path: prefix + ".text", Type: TypePolicy, Default: "", Policy: callback.StringOrLines, Description: "Title text or lines"})
	r.colour(prefix+".color", defaultFontColor, true, "Title color")
	r.integer(prefix+".padding", padding, MinValue(0), true, "Padding around the title")
	r.enum(prefix+".align", "center", AlignTokens, false, "Title alignment")
	r.enum(prefix+".position", "top", PositionTokens, false, "Title position")
	r.boolean(prefix+".fullSize", true, "Take the full canvas width")
	r.registerFont(prefix+".font", "bold")
}

func (r *Settings) registerPlugins() {
	r.registerTitle("plugins.title", 10)
	r.registerTitle("plugins.subtitle", 0)

	r.boolean("plugins.legend.display", true, "Show the legend")
	r.enum("plugins.legend.position", "top", append(PositionTokens, "chartArea"), false, "Legend position")
	r.enum("plugins.legend.align", "center", AlignTokens, false, "Legend alignment")
	r.boolean("plugins.legend.reverse", false, "Reverse legend order")
	r.integer("plugins.legend.labels.boxWidth", 40.0, MinValue(0), false, "Legend color box width")
	r.integer("plugins.legend.labels.padding", 10.0, MinValue(0), false, "Padding between legend items")
	r.boolean("plugins.legend.labels.usePointStyle", false, "Use the point style for legend boxes")
	r.colour("plugins.legend.labels.color", defaultFontColor, true, "Legend label color")

	r.boolean("plugins.tooltip.enabled", true, "Show tooltips")
	r.enum("plugins.tooltip.mode", "nearest", InteractionModeTokens, false, "Tooltip interaction mode")
	r.boolean("plugins.tooltip.intersect", true, "Only show when intersecting an item")
	r.enum("plugins.tooltip.position", "average", TooltipPositionTokens, false, "Tooltip positioner")
	r.colour("plugins.tooltip.backgroundColor", "rgba(0,0,0,0.8)", true, "Tooltip background")
	r.colour("plugins.tooltip.titleColor", "#fff", true, "Tooltip title color")
	r.colour("plugins.tooltip.bodyColor", "#fff", true, "Tooltip body color")
	r.integer("plugins.tooltip.padding", 6.0, MinValue(0), true, "Tooltip padding")
	r.integer("plugins.tooltip.cornerRadius", 6.0, MinValue(0), true, "Tooltip corner radius")
	r.boolean("plugins.tooltip.displayColors", true, "Show color boxes in the tooltip")
}

func (r *Settings) registerScale() {
	r.enum("scale.type", "linear", ScaleTypeTokens, false, "Scale type")
	r.boolean("scale.display", true, "Show the scale")
	r.MustRegister(Setting{Path: "scale.position", Type: TypeEnum, Enum: append(PositionTokens, "center"), Description: "Axis position"})
	r.number("scale.min", nil, nil, true, "Fixed scale minimum")
	r.number("scale.max", nil, nil, true, "Fixed scale maximum")
	r.number("scale.suggestedMin", nil, nil, false, "Minimum the data may extend beyond")
	r.number("scale.suggestedMax", nil, nil, false, "Maximum the data may extend beyond")
	r.boolean("scale.reverse", false, "Reverse the scale")
	r.boolean("scale.beginAtZero", false, "Include zero in the range")
	r.boolean("scale.stacked", false, "Stack datasets on this scale")
	r.boolean("scale.offset", false, "Add space at both scale edges")

	r.boolean("scale.grid.display", true, "Show grid lines")
	r.colour("scale.grid.color", defaultBorderColor, true, "Grid line color")
	r.number("scale.grid.lineWidth", 1.0, MinValue(0), true, "Grid line width")
	r.boolean("scale.grid.drawOnChartArea", true, "Draw grid lines inside the chart area")
	r.integer("scale.grid.tickLength", 8.0, MinValue(0), false, "Tick mark length")

	r.boolean("scale.border.display", true, "Show the axis border")
	r.colour("scale.border.color", defaultBorderColor, false, "Axis border color")
	r.number("scale.border.width", 1.0, MinValue(0), false, "Axis border width")
	r.MustRegister(Setting{Path: "scale.border.dash", Type: TypeArray, Default: native.Array{}, Scriptable: true, Description: "Axis border dash"})

	r.boolean("scale.ticks.display", true, "Show tick labels")
	r.colour("scale.ticks.color", defaultFontColor, true, "Tick label color")
	r.integer("scale.ticks.padding", 3.0, MinValue(0), false, "Tick label padding")
	r.integer("scale.ticks.minRotation", 0.0, MinValue(0), false, "Minimum label rotation")
	r.integer("scale.ticks.maxRotation", 50.0, MinValue(0), false, "Maximum label rotation")
	r.boolean("scale.ticks.autoSkip", true, "Skip labels that would overlap")
	r.number("scale.ticks.stepSize", nil, MinValue(0), false, "Fixed step between ticks")
	r.integer("scale.ticks.precision", nil, MinValue(0), false, "Decimal places of generated ticks")
	r.registerFont("scale.ticks.font", "normal")
}

func (r *Settings) registerDatasets() {
	r.number("datasets.bar.barPercentage", 0.9, MinValue(0), false, "Bar width within its category")
	r.number("datasets.bar.categoryPercentage", 0.8, MinValue(0), false, "Category width within the sample")
	r.boolean("datasets.line.spanGaps", false, "Draw lines across null values")
}
