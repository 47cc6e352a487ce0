package options

import (
	"github.com/dshills/chartwire/internal/callback"
	"github.com/dshills/chartwire/internal/chart"
)

type titleProperty uint8

const (
	titleDisplay titleProperty = iota
	titleText
	titleColor
	titlePadding
	titleAlign
	titlePosition
	titleFullSize
	titleFont
)

func (p titleProperty) Value() string {
	switch p {
	case titleDisplay:
		return "display"
	case titleText:
		return "text"
	case titleColor:
		return "color"
	case titlePadding:
		return "padding"
	case titleAlign:
		return "align"
	case titlePosition:
		return "position"
	case titleFullSize:
		return "fullSize"
	case titleFont:
		return "font"
	default:
		return ""
	}
}

func (p titleProperty) coercer() callback.Coercer {
	switch p {
	case titleDisplay, titleFullSize:
		return callback.Bool
	case titleText:
		return callback.StringOrLines
	case titleColor:
		return callback.Color
	case titlePadding:
		return callback.NonNegativeInt
	case titleAlign:
		return callback.Enum("align", chart.AlignTokens...)
	case titlePosition:
		return callback.Enum("position", chart.PositionTokens...)
	default:
		return callback.Coercer{}
	}
}

var titleScriptable = []titleProperty{titleColor, titlePadding}

// Title configures the chart title or subtitle.
type Title struct {
	scope
}

func (t *Title) slot(p titleProperty) *callback.Slot {
	return t.scope.slot(p, p.coercer())
}

// SetDisplay shows or hides the title.
func (t *Title) SetDisplay(display bool) error {
	return t.slot(titleDisplay).SetLiteral(display)
}

// Display reports whether the title is shown.
func (t *Title) Display() bool {
	return t.boolean(titleDisplay)
}

// SetText sets a single-line title.
func (t *Title) SetText(text string) error {
	return t.slot(titleText).SetLiteral(text)
}

// SetLines sets a multi-line title.
func (t *Title) SetLines(lines ...string) error {
	return t.slot(titleText).SetLiteral(lines)
}

// Text returns the title lines.
func (t *Title) Text() []string {
	return t.lines(titleText)
}

// SetColor sets the title color.
func (t *Title) SetColor(color string) error {
	return t.slot(titleColor).SetLiteral(color)
}

// SetColorCallback computes the title color.
func (t *Title) SetColorCallback(fn func(*callback.Context) string) {
	t.slot(titleColor).SetCallback(callback.Typed(fn))
}

// Color returns the title color.
func (t *Title) Color() string {
	return t.text(titleColor, callback.Color)
}

// SetPadding sets the padding around the title.
func (t *Title) SetPadding(padding int) error {
	return t.slot(titlePadding).SetLiteral(padding)
}

// SetPaddingCallback computes the padding.
func (t *Title) SetPaddingCallback(fn func(*callback.Context) int) {
	t.slot(titlePadding).SetCallback(callback.Typed(fn))
}

// Padding returns the padding around the title.
func (t *Title) Padding() int {
	return t.integer(titlePadding, callback.NonNegativeInt)
}

// SetAlign sets the alignment (start, center, end).
func (t *Title) SetAlign(align string) error {
	return t.slot(titleAlign).SetLiteral(align)
}

// Align returns the alignment.
func (t *Title) Align() string {
	return t.text(titleAlign, titleAlign.coercer())
}

// SetPosition sets the position (top, left, bottom, right).
func (t *Title) SetPosition(position string) error {
	return t.slot(titlePosition).SetLiteral(position)
}

// Position returns the position.
func (t *Title) Position() string {
	return t.text(titlePosition, titlePosition.coercer())
}

// SetFullSize makes the title take the full canvas width.
func (t *Title) SetFullSize(full bool) error {
	return t.slot(titleFullSize).SetLiteral(full)
}

// FullSize reports whether the title takes the full canvas width.
func (t *Title) FullSize() bool {
	return t.boolean(titleFullSize)
}

// Font returns the title font.
func (t *Title) Font() *Font {
	return &Font{t.nested(titleFont)}
}
