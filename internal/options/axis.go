package options

import (
	"github.com/dshills/chartwire/internal/callback"
)

type gridProperty uint8

const (
	gridDisplay gridProperty = iota
	gridColor
	gridLineWidth
	gridDrawOnChartArea
	gridTickLength
)

func (p gridProperty) Value() string {
	switch p {
	case gridDisplay:
		return "display"
	case gridColor:
		return "color"
	case gridLineWidth:
		return "lineWidth"
	case gridDrawOnChartArea:
		return "drawOnChartArea"
	case gridTickLength:
		return "tickLength"
	default:
		return ""
	}
}

func (p gridProperty) coercer() callback.Coercer {
	switch p {
	case gridDisplay, gridDrawOnChartArea:
		return callback.Bool
	case gridColor:
		return callback.Color
	case gridLineWidth:
		return callback.NonNegativeNumber
	case gridTickLength:
		return callback.NonNegativeInt
	default:
		return callback.Coercer{}
	}
}

var gridScriptable = []gridProperty{gridColor, gridLineWidth}

// Grid configures the grid lines of a scale.
type Grid struct {
	scope
}

func (g *Grid) slot(p gridProperty) *callback.Slot {
	return g.scope.slot(p, p.coercer())
}

// SetDisplay shows or hides grid lines.
func (g *Grid) SetDisplay(display bool) error {
	return g.slot(gridDisplay).SetLiteral(display)
}

// Display reports whether grid lines are shown.
func (g *Grid) Display() bool {
	return g.boolean(gridDisplay)
}

// SetColor sets the grid line color.
func (g *Grid) SetColor(color string) error {
	return g.slot(gridColor).SetLiteral(color)
}

// SetColorCallback computes the color of each grid line.
func (g *Grid) SetColorCallback(fn func(*callback.Context) string) {
	g.slot(gridColor).SetCallback(callback.Typed(fn))
}

// Color returns the grid line color.
func (g *Grid) Color() string {
	return g.text(gridColor, callback.Color)
}

// SetLineWidth sets the grid line width.
func (g *Grid) SetLineWidth(w float64) error {
	return g.slot(gridLineWidth).SetLiteral(w)
}

// SetLineWidthCallback computes the width of each grid line.
func (g *Grid) SetLineWidthCallback(fn func(*callback.Context) float64) {
	g.slot(gridLineWidth).SetCallback(callback.Typed(fn))
}

// LineWidth returns the grid line width.
func (g *Grid) LineWidth() float64 {
	return g.number(gridLineWidth, callback.NonNegativeNumber)
}

// SetDrawOnChartArea draws lines inside the chart area.
func (g *Grid) SetDrawOnChartArea(draw bool) error {
	return g.slot(gridDrawOnChartArea).SetLiteral(draw)
}

// DrawOnChartArea reports whether lines are drawn inside the chart area.
func (g *Grid) DrawOnChartArea() bool {
	return g.boolean(gridDrawOnChartArea)
}

// SetTickLength sets the tick mark length.
func (g *Grid) SetTickLength(l int) error {
	return g.slot(gridTickLength).SetLiteral(l)
}

// TickLength returns the tick mark length.
func (g *Grid) TickLength() int {
	return g.integer(gridTickLength, callback.NonNegativeInt)
}

type borderProperty uint8

const (
	borderDisplay borderProperty = iota
	borderColor
	borderWidth
	borderDash
)

func (p borderProperty) Value() string {
	switch p {
	case borderDisplay:
		return "display"
	case borderColor:
		return "color"
	case borderWidth:
		return "width"
	case borderDash:
		return "dash"
	default:
		return ""
	}
}

func (p borderProperty) coercer() callback.Coercer {
	switch p {
	case borderDisplay:
		return callback.Bool
	case borderColor:
		return callback.Color
	case borderWidth:
		return callback.NonNegativeNumber
	case borderDash:
		return callback.IntArray
	default:
		return callback.Coercer{}
	}
}

var borderScriptable = []borderProperty{borderDash}

// Border configures the axis border line.
type Border struct {
	scope
}

func (b *Border) slot(p borderProperty) *callback.Slot {
	return b.scope.slot(p, p.coercer())
}

// SetDisplay shows or hides the border.
func (b *Border) SetDisplay(display bool) error {
	return b.slot(borderDisplay).SetLiteral(display)
}

// Display reports whether the border is shown.
func (b *Border) Display() bool {
	return b.boolean(borderDisplay)
}

// SetColor sets the border color.
func (b *Border) SetColor(color string) error {
	return b.slot(borderColor).SetLiteral(color)
}

// Color returns the border color.
func (b *Border) Color() string {
	return b.text(borderColor, callback.Color)
}

// SetWidth sets the border width.
func (b *Border) SetWidth(w float64) error {
	return b.slot(borderWidth).SetLiteral(w)
}

// Width returns the border width.
func (b *Border) Width() float64 {
	return b.number(borderWidth, callback.NonNegativeNumber)
}

// SetDash sets the dash pattern as alternating segment and gap lengths.
func (b *Border) SetDash(dash ...int) error {
	return b.slot(borderDash).SetLiteral(dash)
}

// SetDashCallback computes the dash pattern.
func (b *Border) SetDashCallback(fn func(*callback.Context) []int) {
	b.slot(borderDash).SetCallback(callback.Typed(fn))
}

// Dash returns the dash pattern.
func (b *Border) Dash() []int {
	return b.ints(borderDash)
}

type ticksProperty uint8

const (
	ticksDisplay ticksProperty = iota
	ticksColor
	ticksPadding
	ticksCallback
	ticksMinRotation
	ticksMaxRotation
	ticksAutoSkip
	ticksStepSize
	ticksPrecision
	ticksFont
)

func (p ticksProperty) Value() string {
	switch p {
	case ticksDisplay:
		return "display"
	case ticksColor:
		return "color"
	case ticksPadding:
		return "padding"
	case ticksCallback:
		return "callback"
	case ticksMinRotation:
		return "minRotation"
	case ticksMaxRotation:
		return "maxRotation"
	case ticksAutoSkip:
		return "autoSkip"
	case ticksStepSize:
		return "stepSize"
	case ticksPrecision:
		return "precision"
	case ticksFont:
		return "font"
	default:
		return ""
	}
}

func (p ticksProperty) coercer() callback.Coercer {
	switch p {
	case ticksDisplay, ticksAutoSkip:
		return callback.Bool
	case ticksColor:
		return callback.Color
	case ticksPadding, ticksMinRotation, ticksMaxRotation:
		return callback.NonNegativeInt
	case ticksCallback:
		return callback.StringOrLines.WithFallback(nil)
	case ticksStepSize:
		return callback.PositiveNumber.WithFallback(nil)
	case ticksPrecision:
		return callback.NonNegativeInt.WithFallback(nil)
	default:
		return callback.Coercer{}
	}
}

var ticksScriptable = []ticksProperty{ticksColor, ticksCallback}

// Ticks configures the tick labels of a scale.
type Ticks struct {
	scope
}

func (t *Ticks) slot(p ticksProperty) *callback.Slot {
	return t.scope.slot(p, p.coercer())
}

// SetDisplay shows or hides tick labels.
func (t *Ticks) SetDisplay(display bool) error {
	return t.slot(ticksDisplay).SetLiteral(display)
}

// Display reports whether tick labels are shown.
func (t *Ticks) Display() bool {
	return t.boolean(ticksDisplay)
}

// SetColor sets the label color.
func (t *Ticks) SetColor(color string) error {
	return t.slot(ticksColor).SetLiteral(color)
}

// SetColorCallback computes the color of each tick label.
func (t *Ticks) SetColorCallback(fn func(*callback.Context) string) {
	t.slot(ticksColor).SetCallback(callback.Typed(fn))
}

// Color returns the label color.
func (t *Ticks) Color() string {
	return t.text(ticksColor, callback.Color)
}

// SetPadding sets the label padding.
func (t *Ticks) SetPadding(p int) error {
	return t.slot(ticksPadding).SetLiteral(p)
}

// Padding returns the label padding.
func (t *Ticks) Padding() int {
	return t.integer(ticksPadding, callback.NonNegativeInt)
}

// SetCallback formats tick labels. The context carries the tick value,
// index and default label.
func (t *Ticks) SetCallback(fn func(*callback.Context) string) {
	t.slot(ticksCallback).SetCallback(callback.Typed(fn))
}

// HasCallback reports whether a label formatter is registered.
func (t *Ticks) HasCallback() bool {
	return t.slot(ticksCallback).State() == callback.StateCallback
}

// SetMinRotation sets the minimum label rotation in degrees.
func (t *Ticks) SetMinRotation(deg int) error {
	return t.slot(ticksMinRotation).SetLiteral(deg)
}

// MinRotation returns the minimum label rotation.
func (t *Ticks) MinRotation() int {
	return t.integer(ticksMinRotation, callback.NonNegativeInt)
}

// SetMaxRotation sets the maximum label rotation in degrees.
func (t *Ticks) SetMaxRotation(deg int) error {
	return t.slot(ticksMaxRotation).SetLiteral(deg)
}

// MaxRotation returns the maximum label rotation.
func (t *Ticks) MaxRotation() int {
	return t.integer(ticksMaxRotation, callback.NonNegativeInt)
}

// SetAutoSkip skips labels that would overlap.
func (t *Ticks) SetAutoSkip(skip bool) error {
	return t.slot(ticksAutoSkip).SetLiteral(skip)
}

// AutoSkip reports whether overlapping labels are skipped.
func (t *Ticks) AutoSkip() bool {
	return t.boolean(ticksAutoSkip)
}

// SetStepSize fixes the step between generated ticks.
func (t *Ticks) SetStepSize(step float64) error {
	return t.slot(ticksStepSize).SetLiteral(step)
}

// StepSize returns the fixed step. ok is false when the engine computes it.
func (t *Ticks) StepSize() (step float64, ok bool) {
	step, ok = t.value(ticksStepSize, ticksStepSize.coercer()).(float64)
	return step, ok
}

// SetPrecision fixes the decimal places of generated ticks.
func (t *Ticks) SetPrecision(digits int) error {
	return t.slot(ticksPrecision).SetLiteral(digits)
}

// Precision returns the decimal places. ok is false when unset.
func (t *Ticks) Precision() (digits int, ok bool) {
	f, ok := t.value(ticksPrecision, ticksPrecision.coercer()).(float64)
	return int(f), ok
}

// Font returns the label font.
func (t *Ticks) Font() *Font {
	return &Font{t.nested(ticksFont)}
}
