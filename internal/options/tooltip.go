package options

import (
	"github.com/dshills/chartwire/internal/callback"
	"github.com/dshills/chartwire/internal/chart"
)

type tooltipProperty uint8

const (
	tooltipEnabled tooltipProperty = iota
	tooltipMode
	tooltipIntersect
	tooltipPosition
	tooltipBackgroundColor
	tooltipTitleColor
	tooltipBodyColor
	tooltipPadding
	tooltipCornerRadius
	tooltipDisplayColors
	tooltipCallbacks
)

func (p tooltipProperty) Value() string {
	switch p {
	case tooltipEnabled:
		return "enabled"
	case tooltipMode:
		return "mode"
	case tooltipIntersect:
		return "intersect"
	case tooltipPosition:
		return "position"
	case tooltipBackgroundColor:
		return "backgroundColor"
	case tooltipTitleColor:
		return "titleColor"
	case tooltipBodyColor:
		return "bodyColor"
	case tooltipPadding:
		return "padding"
	case tooltipCornerRadius:
		return "cornerRadius"
	case tooltipDisplayColors:
		return "displayColors"
	case tooltipCallbacks:
		return "callbacks"
	default:
		return ""
	}
}

func (p tooltipProperty) coercer() callback.Coercer {
	switch p {
	case tooltipEnabled, tooltipIntersect, tooltipDisplayColors:
		return callback.Bool
	case tooltipMode:
		return callback.Enum("interaction mode", chart.InteractionModeTokens...)
	case tooltipPosition:
		return callback.Enum("tooltip position", chart.TooltipPositionTokens...)
	case tooltipBackgroundColor, tooltipTitleColor, tooltipBodyColor:
		return callback.Color
	case tooltipPadding, tooltipCornerRadius:
		return callback.NonNegativeInt
	default:
		return callback.Coercer{}
	}
}

var tooltipScriptable = []tooltipProperty{
	tooltipBackgroundColor, tooltipTitleColor, tooltipBodyColor, tooltipPadding, tooltipCornerRadius,
}

// Tooltip configures tooltips.
type Tooltip struct {
	scope
}

func (t *Tooltip) slot(p tooltipProperty) *callback.Slot {
	return t.scope.slot(p, p.coercer())
}

// SetEnabled enables or disables tooltips.
func (t *Tooltip) SetEnabled(enabled bool) error {
	return t.slot(tooltipEnabled).SetLiteral(enabled)
}

// Enabled reports whether tooltips are enabled.
func (t *Tooltip) Enabled() bool {
	return t.boolean(tooltipEnabled)
}

// SetMode sets the interaction mode.
func (t *Tooltip) SetMode(mode string) error {
	return t.slot(tooltipMode).SetLiteral(mode)
}

// Mode returns the interaction mode.
func (t *Tooltip) Mode() string {
	return t.text(tooltipMode, tooltipMode.coercer())
}

// SetIntersect requires the pointer to intersect an item.
func (t *Tooltip) SetIntersect(intersect bool) error {
	return t.slot(tooltipIntersect).SetLiteral(intersect)
}

// Intersect reports whether intersection is required.
func (t *Tooltip) Intersect() bool {
	return t.boolean(tooltipIntersect)
}

// SetPosition sets the positioner.
func (t *Tooltip) SetPosition(position string) error {
	return t.slot(tooltipPosition).SetLiteral(position)
}

// Position returns the positioner.
func (t *Tooltip) Position() string {
	return t.text(tooltipPosition, tooltipPosition.coercer())
}

// SetBackgroundColor sets the background color.
func (t *Tooltip) SetBackgroundColor(color string) error {
	return t.slot(tooltipBackgroundColor).SetLiteral(color)
}

// SetBackgroundColorCallback computes the background color.
func (t *Tooltip) SetBackgroundColorCallback(fn func(*callback.Context) string) {
	t.slot(tooltipBackgroundColor).SetCallback(callback.Typed(fn))
}

// BackgroundColor returns the background color.
func (t *Tooltip) BackgroundColor() string {
	return t.text(tooltipBackgroundColor, callback.Color)
}

// SetTitleColor sets the title color.
func (t *Tooltip) SetTitleColor(color string) error {
	return t.slot(tooltipTitleColor).SetLiteral(color)
}

// SetTitleColorCallback computes the title color.
func (t *Tooltip) SetTitleColorCallback(fn func(*callback.Context) string) {
	t.slot(tooltipTitleColor).SetCallback(callback.Typed(fn))
}

// TitleColor returns the title color.
func (t *Tooltip) TitleColor() string {
	return t.text(tooltipTitleColor, callback.Color)
}

// SetBodyColor sets the body color.
func (t *Tooltip) SetBodyColor(color string) error {
	return t.slot(tooltipBodyColor).SetLiteral(color)
}

// SetBodyColorCallback computes the body color.
func (t *Tooltip) SetBodyColorCallback(fn func(*callback.Context) string) {
	t.slot(tooltipBodyColor).SetCallback(callback.Typed(fn))
}

// BodyColor returns the body color.
func (t *Tooltip) BodyColor() string {
	return t.text(tooltipBodyColor, callback.Color)
}

// SetPadding sets the padding.
func (t *Tooltip) SetPadding(p int) error {
	return t.slot(tooltipPadding).SetLiteral(p)
}

// SetPaddingCallback computes the padding.
func (t *Tooltip) SetPaddingCallback(fn func(*callback.Context) int) {
	t.slot(tooltipPadding).SetCallback(callback.Typed(fn))
}

// Padding returns the padding.
func (t *Tooltip) Padding() int {
	return t.integer(tooltipPadding, callback.NonNegativeInt)
}

// SetCornerRadius sets the corner radius.
func (t *Tooltip) SetCornerRadius(r int) error {
	return t.slot(tooltipCornerRadius).SetLiteral(r)
}

// SetCornerRadiusCallback computes the corner radius.
func (t *Tooltip) SetCornerRadiusCallback(fn func(*callback.Context) int) {
	t.slot(tooltipCornerRadius).SetCallback(callback.Typed(fn))
}

// CornerRadius returns the corner radius.
func (t *Tooltip) CornerRadius() int {
	return t.integer(tooltipCornerRadius, callback.NonNegativeInt)
}

// SetDisplayColors shows color boxes next to items.
func (t *Tooltip) SetDisplayColors(display bool) error {
	return t.slot(tooltipDisplayColors).SetLiteral(display)
}

// DisplayColors reports whether color boxes are shown.
func (t *Tooltip) DisplayColors() bool {
	return t.boolean(tooltipDisplayColors)
}

// Callbacks returns the text formatting callbacks.
func (t *Tooltip) Callbacks() *TooltipCallbacks {
	return &TooltipCallbacks{t.child(tooltipCallbacks, nil).withFamily(callback.FamilyDataset)}
}

type tooltipCallback uint8

const (
	tooltipTitle tooltipCallback = iota
	tooltipLabel
	tooltipFooter
)

func (p tooltipCallback) Value() string {
	switch p {
	case tooltipTitle:
		return "title"
	case tooltipLabel:
		return "label"
	case tooltipFooter:
		return "footer"
	default:
		return ""
	}
}

var tooltipCallbackKeys = []tooltipCallback{tooltipTitle, tooltipLabel, tooltipFooter}

// TooltipCallbacks formats tooltip text. Each callback receives the context
// of the hovered item and returns one or more lines; a nil result keeps
// the engine's own text.
type TooltipCallbacks struct {
	scope
}

func (t *TooltipCallbacks) slot(p tooltipCallback) *callback.Slot {
	return t.scope.slot(p, callback.StringOrLines.WithFallback(nil))
}

// SetTitle formats the tooltip title.
func (t *TooltipCallbacks) SetTitle(fn func(*callback.Context) []string) {
	t.slot(tooltipTitle).SetCallback(callback.Typed(fn))
}

// SetLabel formats the label of each item.
func (t *TooltipCallbacks) SetLabel(fn func(*callback.Context) string) {
	t.slot(tooltipLabel).SetCallback(callback.Typed(fn))
}

// SetFooter formats the tooltip footer.
func (t *TooltipCallbacks) SetFooter(fn func(*callback.Context) []string) {
	t.slot(tooltipFooter).SetCallback(callback.Typed(fn))
}
