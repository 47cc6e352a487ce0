package options

import (
	"github.com/dshills/chartwire/internal/callback"
	"github.com/dshills/chartwire/internal/chart"
)

type elementKind uint8

const (
	elementArc elementKind = iota
	elementBar
	elementLine
	elementPoint
)

func (k elementKind) Value() string {
	switch k {
	case elementArc:
		return "arc"
	case elementBar:
		return "bar"
	case elementLine:
		return "line"
	case elementPoint:
		return "point"
	default:
		return ""
	}
}

// Elements holds the per-element style defaults of the chart.
type Elements struct {
	scope
}

// Arc returns the arc element options (pie, doughnut, polar area).
func (e *Elements) Arc() *Arc {
	return &Arc{e.nested(elementArc)}
}

// Bar returns the bar element options.
func (e *Elements) Bar() *Bar {
	return &Bar{e.nested(elementBar)}
}

// Line returns the line element options.
func (e *Elements) Line() *Line {
	return &Line{e.nested(elementLine)}
}

// Point returns the point element options.
func (e *Elements) Point() *Point {
	return &Point{e.nested(elementPoint)}
}

type arcProperty uint8

const (
	arcBackgroundColor arcProperty = iota
	arcBorderColor
	arcBorderWidth
	arcBorderAlign
	arcOffset
	arcSpacing
	arcCircular
)

func (p arcProperty) Value() string {
	switch p {
	case arcBackgroundColor:
		return "backgroundColor"
	case arcBorderColor:
		return "borderColor"
	case arcBorderWidth:
		return "borderWidth"
	case arcBorderAlign:
		return "borderAlign"
	case arcOffset:
		return "offset"
	case arcSpacing:
		return "spacing"
	case arcCircular:
		return "circular"
	default:
		return ""
	}
}

func (p arcProperty) coercer() callback.Coercer {
	switch p {
	case arcBackgroundColor, arcBorderColor:
		return callback.Color
	case arcBorderWidth, arcSpacing:
		return callback.NonNegativeNumber
	case arcBorderAlign:
		return callback.Enum("border align", chart.BorderAlignTokens...)
	case arcOffset:
		return callback.Number
	case arcCircular:
		return callback.Bool
	default:
		return callback.Coercer{}
	}
}

var arcScriptable = []arcProperty{
	arcBackgroundColor, arcBorderColor, arcBorderWidth, arcBorderAlign, arcOffset, arcSpacing, arcCircular,
}

// Arc styles arcs.
type Arc struct {
	scope
}

func (a *Arc) slot(p arcProperty) *callback.Slot {
	return a.scope.slot(p, p.coercer())
}

// SetBackgroundColor sets the fill color.
func (a *Arc) SetBackgroundColor(color string) error {
	return a.slot(arcBackgroundColor).SetLiteral(color)
}

// SetBackgroundColorCallback computes the fill color per arc.
func (a *Arc) SetBackgroundColorCallback(fn func(*callback.Context) string) {
	a.slot(arcBackgroundColor).SetCallback(callback.Typed(fn))
}

// BackgroundColor returns the fill color.
func (a *Arc) BackgroundColor() string {
	return a.text(arcBackgroundColor, callback.Color)
}

// SetBorderColor sets the stroke color.
func (a *Arc) SetBorderColor(color string) error {
	return a.slot(arcBorderColor).SetLiteral(color)
}

// SetBorderColorCallback computes the stroke color per arc.
func (a *Arc) SetBorderColorCallback(fn func(*callback.Context) string) {
	a.slot(arcBorderColor).SetCallback(callback.Typed(fn))
}

// BorderColor returns the stroke color.
func (a *Arc) BorderColor() string {
	return a.text(arcBorderColor, callback.Color)
}

// SetBorderWidth sets the stroke width.
func (a *Arc) SetBorderWidth(w float64) error {
	return a.slot(arcBorderWidth).SetLiteral(w)
}

// SetBorderWidthCallback computes the stroke width per arc.
func (a *Arc) SetBorderWidthCallback(fn func(*callback.Context) float64) {
	a.slot(arcBorderWidth).SetCallback(callback.Typed(fn))
}

// BorderWidth returns the stroke width.
func (a *Arc) BorderWidth() float64 {
	return a.number(arcBorderWidth, callback.NonNegativeNumber)
}

// SetBorderAlign sets the stroke alignment (center, inner).
func (a *Arc) SetBorderAlign(align string) error {
	return a.slot(arcBorderAlign).SetLiteral(align)
}

// BorderAlign returns the stroke alignment.
func (a *Arc) BorderAlign() string {
	return a.text(arcBorderAlign, arcBorderAlign.coercer())
}

// SetOffset sets the arc offset in pixels.
func (a *Arc) SetOffset(offset float64) error {
	return a.slot(arcOffset).SetLiteral(offset)
}

// SetOffsetCallback computes the offset per arc, e.g. to explode a slice.
func (a *Arc) SetOffsetCallback(fn func(*callback.Context) float64) {
	a.slot(arcOffset).SetCallback(callback.Typed(fn))
}

// Offset returns the arc offset.
func (a *Arc) Offset() float64 {
	return a.number(arcOffset, callback.Number)
}

// SetSpacing sets the spacing between arcs.
func (a *Arc) SetSpacing(s float64) error {
	return a.slot(arcSpacing).SetLiteral(s)
}

// Spacing returns the spacing between arcs.
func (a *Arc) Spacing() float64 {
	return a.number(arcSpacing, callback.NonNegativeNumber)
}

// SetCircular renders arcs as circle segments.
func (a *Arc) SetCircular(c bool) error {
	return a.slot(arcCircular).SetLiteral(c)
}

// Circular reports whether arcs are circle segments.
func (a *Arc) Circular() bool {
	return a.boolean(arcCircular)
}

type barProperty uint8

const (
	barBackgroundColor barProperty = iota
	barBorderColor
	barBorderWidth
	barBorderSkipped
	barBorderRadius
	barInflateAmount
)

func (p barProperty) Value() string {
	switch p {
	case barBackgroundColor:
		return "backgroundColor"
	case barBorderColor:
		return "borderColor"
	case barBorderWidth:
		return "borderWidth"
	case barBorderSkipped:
		return "borderSkipped"
	case barBorderRadius:
		return "borderRadius"
	case barInflateAmount:
		return "inflateAmount"
	default:
		return ""
	}
}

func (p barProperty) coercer() callback.Coercer {
	switch p {
	case barBackgroundColor, barBorderColor:
		return callback.Color
	case barBorderWidth, barBorderRadius:
		return callback.NonNegativeNumber
	case barBorderSkipped:
		return callback.BorderSkippedPolicy
	case barInflateAmount:
		return callback.NonNegativeNumber.WithFallback(nil)
	default:
		return callback.Coercer{}
	}
}

var barScriptable = []barProperty{
	barBackgroundColor, barBorderColor, barBorderWidth, barBorderSkipped, barBorderRadius, barInflateAmount,
}

// Bar styles bars.
type Bar struct {
	scope
}

func (b *Bar) slot(p barProperty) *callback.Slot {
	return b.scope.slot(p, p.coercer())
}

// SetBackgroundColor sets the fill color.
func (b *Bar) SetBackgroundColor(color string) error {
	return b.slot(barBackgroundColor).SetLiteral(color)
}

// SetBackgroundColorCallback computes the fill color per bar.
func (b *Bar) SetBackgroundColorCallback(fn func(*callback.Context) string) {
	b.slot(barBackgroundColor).SetCallback(callback.Typed(fn))
}

// BackgroundColor returns the fill color.
func (b *Bar) BackgroundColor() string {
	return b.text(barBackgroundColor, callback.Color)
}

// SetBorderColor sets the stroke color.
func (b *Bar) SetBorderColor(color string) error {
	return b.slot(barBorderColor).SetLiteral(color)
}

// SetBorderColorCallback computes the stroke color per bar.
func (b *Bar) SetBorderColorCallback(fn func(*callback.Context) string) {
	b.slot(barBorderColor).SetCallback(callback.Typed(fn))
}

// BorderColor returns the stroke color.
func (b *Bar) BorderColor() string {
	return b.text(barBorderColor, callback.Color)
}

// SetBorderWidth sets the stroke width.
func (b *Bar) SetBorderWidth(w float64) error {
	return b.slot(barBorderWidth).SetLiteral(w)
}

// SetBorderWidthCallback computes the stroke width per bar.
func (b *Bar) SetBorderWidthCallback(fn func(*callback.Context) float64) {
	b.slot(barBorderWidth).SetCallback(callback.Typed(fn))
}

// BorderWidth returns the stroke width.
func (b *Bar) BorderWidth() float64 {
	return b.number(barBorderWidth, callback.NonNegativeNumber)
}

// SetBorderSkipped sets which edge has no border.
func (b *Bar) SetBorderSkipped(s callback.BorderSkipped) error {
	return b.slot(barBorderSkipped).SetLiteral(s)
}

// SetBorderSkippedCallback computes the skipped edge per bar.
func (b *Bar) SetBorderSkippedCallback(fn func(*callback.Context) callback.BorderSkipped) {
	b.slot(barBorderSkipped).SetCallback(callback.Typed(fn))
}

// BorderSkipped returns the skipped edge.
func (b *Bar) BorderSkipped() callback.BorderSkipped {
	s, _ := callback.BorderSkippedFromWire(b.value(barBorderSkipped, callback.BorderSkippedPolicy))
	return s
}

// SetBorderRadius sets the corner radius.
func (b *Bar) SetBorderRadius(r float64) error {
	return b.slot(barBorderRadius).SetLiteral(r)
}

// SetBorderRadiusCallback computes the corner radius per bar.
func (b *Bar) SetBorderRadiusCallback(fn func(*callback.Context) float64) {
	b.slot(barBorderRadius).SetCallback(callback.Typed(fn))
}

// BorderRadius returns the corner radius.
func (b *Bar) BorderRadius() float64 {
	return b.number(barBorderRadius, callback.NonNegativeNumber)
}

// SetInflateAmount sets the pixels added to each bar side.
func (b *Bar) SetInflateAmount(px float64) error {
	return b.slot(barInflateAmount).SetLiteral(px)
}

// InflateAmount returns the inflate amount. ok is false when automatic.
func (b *Bar) InflateAmount() (px float64, ok bool) {
	px, ok = b.value(barInflateAmount, barInflateAmount.coercer()).(float64)
	return px, ok
}

type lineProperty uint8

const (
	lineTension lineProperty = iota
	lineBackgroundColor
	lineBorderColor
	lineBorderWidth
	lineBorderDash
	lineBorderDashOffset
	lineBorderCapStyle
	lineBorderJoinStyle
	lineFill
	lineStepped
	lineCapBezierPoints
	lineCubicInterpolationMode
)

func (p lineProperty) Value() string {
	switch p {
	case lineTension:
		return "tension"
	case lineBackgroundColor:
		return "backgroundColor"
	case lineBorderColor:
		return "borderColor"
	case lineBorderWidth:
		return "borderWidth"
	case lineBorderDash:
		return "borderDash"
	case lineBorderDashOffset:
		return "borderDashOffset"
	case lineBorderCapStyle:
		return "borderCapStyle"
	case lineBorderJoinStyle:
		return "borderJoinStyle"
	case lineFill:
		return "fill"
	case lineStepped:
		return "stepped"
	case lineCapBezierPoints:
		return "capBezierPoints"
	case lineCubicInterpolationMode:
		return "cubicInterpolationMode"
	default:
		return ""
	}
}

func (p lineProperty) coercer() callback.Coercer {
	switch p {
	case lineTension, lineBorderWidth:
		return callback.NonNegativeNumber
	case lineBackgroundColor, lineBorderColor:
		return callback.Color
	case lineBorderDash:
		return callback.IntArray
	case lineBorderDashOffset:
		return callback.Number
	case lineBorderCapStyle:
		return callback.Enum("cap style", chart.CapStyleTokens...)
	case lineBorderJoinStyle:
		return callback.Enum("join style", chart.JoinStyleTokens...)
	case lineFill:
		return callback.FillPolicy
	case lineStepped:
		return callback.SteppedPolicy
	case lineCapBezierPoints:
		return callback.Bool
	case lineCubicInterpolationMode:
		return callback.Enum("interpolation mode", chart.InterpolationTokens...)
	default:
		return callback.Coercer{}
	}
}

var lineScriptable = []lineProperty{
	lineBackgroundColor, lineBorderColor, lineBorderWidth, lineBorderDash, lineBorderDashOffset,
	lineBorderCapStyle, lineBorderJoinStyle, lineFill, lineStepped,
}

// Line styles lines.
type Line struct {
	scope
}

func (l *Line) slot(p lineProperty) *callback.Slot {
	return l.scope.slot(p, p.coercer())
}

// SetTension sets the bezier curve tension (0 draws straight lines).
func (l *Line) SetTension(t float64) error {
	return l.slot(lineTension).SetLiteral(t)
}

// Tension returns the bezier curve tension.
func (l *Line) Tension() float64 {
	return l.number(lineTension, callback.NonNegativeNumber)
}

// SetBackgroundColor sets the area fill color.
func (l *Line) SetBackgroundColor(color string) error {
	return l.slot(lineBackgroundColor).SetLiteral(color)
}

// SetBackgroundColorCallback computes the area fill color.
func (l *Line) SetBackgroundColorCallback(fn func(*callback.Context) string) {
	l.slot(lineBackgroundColor).SetCallback(callback.Typed(fn))
}

// BackgroundColor returns the area fill color.
func (l *Line) BackgroundColor() string {
	return l.text(lineBackgroundColor, callback.Color)
}

// SetBorderColor sets the line color.
func (l *Line) SetBorderColor(color string) error {
	return l.slot(lineBorderColor).SetLiteral(color)
}

// SetBorderColorCallback computes the line color.
func (l *Line) SetBorderColorCallback(fn func(*callback.Context) string) {
	l.slot(lineBorderColor).SetCallback(callback.Typed(fn))
}

// BorderColor returns the line color.
func (l *Line) BorderColor() string {
	return l.text(lineBorderColor, callback.Color)
}

// SetBorderWidth sets the line width.
func (l *Line) SetBorderWidth(w float64) error {
	return l.slot(lineBorderWidth).SetLiteral(w)
}

// SetBorderWidthCallback computes the line width.
func (l *Line) SetBorderWidthCallback(fn func(*callback.Context) float64) {
	l.slot(lineBorderWidth).SetCallback(callback.Typed(fn))
}

// BorderWidth returns the line width.
func (l *Line) BorderWidth() float64 {
	return l.number(lineBorderWidth, callback.NonNegativeNumber)
}

// SetBorderDash sets the dash pattern.
func (l *Line) SetBorderDash(dash ...int) error {
	return l.slot(lineBorderDash).SetLiteral(dash)
}

// SetBorderDashCallback computes the dash pattern.
func (l *Line) SetBorderDashCallback(fn func(*callback.Context) []int) {
	l.slot(lineBorderDash).SetCallback(callback.Typed(fn))
}

// BorderDash returns the dash pattern.
func (l *Line) BorderDash() []int {
	return l.ints(lineBorderDash)
}

// SetBorderDashOffset sets the dash offset.
func (l *Line) SetBorderDashOffset(offset float64) error {
	return l.slot(lineBorderDashOffset).SetLiteral(offset)
}

// BorderDashOffset returns the dash offset.
func (l *Line) BorderDashOffset() float64 {
	return l.number(lineBorderDashOffset, callback.Number)
}

// SetBorderCapStyle sets the line cap style.
func (l *Line) SetBorderCapStyle(style string) error {
	return l.slot(lineBorderCapStyle).SetLiteral(style)
}

// BorderCapStyle returns the line cap style.
func (l *Line) BorderCapStyle() string {
	return l.text(lineBorderCapStyle, lineBorderCapStyle.coercer())
}

// SetBorderJoinStyle sets the line join style.
func (l *Line) SetBorderJoinStyle(style string) error {
	return l.slot(lineBorderJoinStyle).SetLiteral(style)
}

// BorderJoinStyle returns the line join style.
func (l *Line) BorderJoinStyle() string {
	return l.text(lineBorderJoinStyle, lineBorderJoinStyle.coercer())
}

// SetFill sets the area fill target.
func (l *Line) SetFill(f callback.Fill) error {
	if !f.Valid() {
		return &callback.ConfigurationError{Op: "set", Key: lineFill.Value(), Err: callback.ErrInvalidValue}
	}
	return l.slot(lineFill).SetLiteral(f)
}

// SetFillCallback computes the fill target.
func (l *Line) SetFillCallback(fn func(*callback.Context) callback.Fill) {
	l.slot(lineFill).SetCallback(callback.Typed(fn))
}

// Fill returns the area fill target.
func (l *Line) Fill() callback.Fill {
	f, _ := callback.FillFromWire(l.value(lineFill, callback.FillPolicy))
	return f
}

// SetStepped sets the stepped interpolation.
func (l *Line) SetStepped(s callback.Stepped) error {
	return l.slot(lineStepped).SetLiteral(s)
}

// SetSteppedCallback computes the stepped interpolation.
func (l *Line) SetSteppedCallback(fn func(*callback.Context) callback.Stepped) {
	l.slot(lineStepped).SetCallback(callback.Typed(fn))
}

// Stepped returns the stepped interpolation.
func (l *Line) Stepped() callback.Stepped {
	s, _ := callback.SteppedFromWire(l.value(lineStepped, callback.SteppedPolicy))
	return s
}

// SetCapBezierPoints keeps control points inside the chart area.
func (l *Line) SetCapBezierPoints(c bool) error {
	return l.slot(lineCapBezierPoints).SetLiteral(c)
}

// CapBezierPoints reports whether control points are capped.
func (l *Line) CapBezierPoints() bool {
	return l.boolean(lineCapBezierPoints)
}

// SetCubicInterpolationMode sets the curve interpolation (default, monotone).
func (l *Line) SetCubicInterpolationMode(mode string) error {
	return l.slot(lineCubicInterpolationMode).SetLiteral(mode)
}

// CubicInterpolationMode returns the curve interpolation.
func (l *Line) CubicInterpolationMode() string {
	return l.text(lineCubicInterpolationMode, lineCubicInterpolationMode.coercer())
}

type pointProperty uint8

const (
	pointRadius pointProperty = iota
	pointHoverRadius
	pointHitRadius
	pointStyle
	pointRotation
	pointBackgroundColor
	pointBorderColor
	pointBorderWidth
	pointHoverBorderWidth
)

func (p pointProperty) Value() string {
	switch p {
	case pointRadius:
		return "radius"
	case pointHoverRadius:
		return "hoverRadius"
	case pointHitRadius:
		return "hitRadius"
	case pointStyle:
		return "pointStyle"
	case pointRotation:
		return "rotation"
	case pointBackgroundColor:
		return "backgroundColor"
	case pointBorderColor:
		return "borderColor"
	case pointBorderWidth:
		return "borderWidth"
	case pointHoverBorderWidth:
		return "hoverBorderWidth"
	default:
		return ""
	}
}

func (p pointProperty) coercer() callback.Coercer {
	switch p {
	case pointRadius, pointHoverRadius, pointHitRadius, pointBorderWidth, pointHoverBorderWidth:
		return callback.NonNegativeNumber
	case pointStyle:
		return callback.Enum("point style", chart.PointStyleTokens...)
	case pointRotation:
		return callback.Number
	case pointBackgroundColor, pointBorderColor:
		return callback.Color
	default:
		return callback.Coercer{}
	}
}

var pointScriptable = []pointProperty{
	pointRadius, pointHoverRadius, pointHitRadius, pointStyle, pointRotation,
	pointBackgroundColor, pointBorderColor, pointBorderWidth, pointHoverBorderWidth,
}

// Point styles data points.
type Point struct {
	scope
}

func (p *Point) slot(prop pointProperty) *callback.Slot {
	return p.scope.slot(prop, prop.coercer())
}

// SetRadius sets the point radius.
func (p *Point) SetRadius(r float64) error {
	return p.slot(pointRadius).SetLiteral(r)
}

// SetRadiusCallback computes the radius per data point.
func (p *Point) SetRadiusCallback(fn func(*callback.Context) float64) {
	p.slot(pointRadius).SetCallback(callback.Typed(fn))
}

// Radius returns the point radius.
func (p *Point) Radius() float64 {
	return p.number(pointRadius, callback.NonNegativeNumber)
}

// SetHoverRadius sets the radius when hovered.
func (p *Point) SetHoverRadius(r float64) error {
	return p.slot(pointHoverRadius).SetLiteral(r)
}

// SetHoverRadiusCallback computes the hovered radius per data point.
func (p *Point) SetHoverRadiusCallback(fn func(*callback.Context) float64) {
	p.slot(pointHoverRadius).SetCallback(callback.Typed(fn))
}

// HoverRadius returns the hovered radius.
func (p *Point) HoverRadius() float64 {
	return p.number(pointHoverRadius, callback.NonNegativeNumber)
}

// SetHitRadius sets the extra radius used for hit detection.
func (p *Point) SetHitRadius(r float64) error {
	return p.slot(pointHitRadius).SetLiteral(r)
}

// HitRadius returns the hit detection radius.
func (p *Point) HitRadius() float64 {
	return p.number(pointHitRadius, callback.NonNegativeNumber)
}

// SetPointStyle sets the point shape.
func (p *Point) SetPointStyle(style string) error {
	return p.slot(pointStyle).SetLiteral(style)
}

// SetPointStyleCallback computes the shape per data point.
func (p *Point) SetPointStyleCallback(fn func(*callback.Context) string) {
	p.slot(pointStyle).SetCallback(callback.Typed(fn))
}

// PointStyle returns the point shape.
func (p *Point) PointStyle() string {
	return p.text(pointStyle, pointStyle.coercer())
}

// SetRotation sets the rotation in degrees.
func (p *Point) SetRotation(deg float64) error {
	return p.slot(pointRotation).SetLiteral(deg)
}

// SetRotationCallback computes the rotation per data point.
func (p *Point) SetRotationCallback(fn func(*callback.Context) float64) {
	p.slot(pointRotation).SetCallback(callback.Typed(fn))
}

// Rotation returns the rotation in degrees.
func (p *Point) Rotation() float64 {
	return p.number(pointRotation, callback.Number)
}

// SetBackgroundColor sets the fill color.
func (p *Point) SetBackgroundColor(color string) error {
	return p.slot(pointBackgroundColor).SetLiteral(color)
}

// SetBackgroundColorCallback computes the fill color per data point.
func (p *Point) SetBackgroundColorCallback(fn func(*callback.Context) string) {
	p.slot(pointBackgroundColor).SetCallback(callback.Typed(fn))
}

// BackgroundColor returns the fill color.
func (p *Point) BackgroundColor() string {
	return p.text(pointBackgroundColor, callback.Color)
}

// SetBorderColor sets the stroke color.
func (p *Point) SetBorderColor(color string) error {
	return p.slot(pointBorderColor).SetLiteral(color)
}

// SetBorderColorCallback computes the stroke color per data point.
func (p *Point) SetBorderColorCallback(fn func(*callback.Context) string) {
	p.slot(pointBorderColor).SetCallback(callback.Typed(fn))
}

// BorderColor returns the stroke color.
func (p *Point) BorderColor() string {
	return p.text(pointBorderColor, callback.Color)
}

// SetBorderWidth sets the stroke width.
func (p *Point) SetBorderWidth(w float64) error {
	return p.slot(pointBorderWidth).SetLiteral(w)
}

// SetBorderWidthCallback computes the stroke width per data point.
func (p *Point) SetBorderWidthCallback(fn func(*callback.Context) float64) {
	p.slot(pointBorderWidth).SetCallback(callback.Typed(fn))
}

// BorderWidth returns the stroke width.
func (p *Point) BorderWidth() float64 {
	return p.number(pointBorderWidth, callback.NonNegativeNumber)
}

// SetHoverBorderWidth sets the stroke width when hovered.
func (p *Point) SetHoverBorderWidth(w float64) error {
	return p.slot(pointHoverBorderWidth).SetLiteral(w)
}

// HoverBorderWidth returns the hovered stroke width.
func (p *Point) HoverBorderWidth() float64 {
	return p.number(pointHoverBorderWidth, callback.NonNegativeNumber)
}
