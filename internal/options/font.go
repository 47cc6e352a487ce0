package options

import (
	"github.com/dshills/chartwire/internal/callback"
	"github.com/dshills/chartwire/internal/chart"
)

type fontProperty uint8

const (
	fontFamily fontProperty = iota
	fontSize
	fontStyle
	fontWeight
	fontLineHeight
)

func (p fontProperty) Value() string {
	switch p {
	case fontFamily:
		return "family"
	case fontSize:
		return "size"
	case fontStyle:
		return "style"
	case fontWeight:
		return "weight"
	case fontLineHeight:
		return "lineHeight"
	default:
		return ""
	}
}

func (p fontProperty) coercer() callback.Coercer {
	switch p {
	case fontSize:
		return callback.NonNegativeInt.WithFallback(12.0)
	case fontStyle:
		return callback.Enum("font style", chart.FontStyleTokens...)
	case fontLineHeight:
		return callback.PositiveNumber.WithFallback(1.2)
	default:
		return callback.String
	}
}

// Font is a font specification.
type Font struct {
	scope
}

func (f *Font) slot(p fontProperty) *callback.Slot {
	return f.scope.slot(p, p.coercer())
}

// SetFamily sets the font family.
func (f *Font) SetFamily(family string) error {
	return f.slot(fontFamily).SetLiteral(family)
}

// Family returns the font family.
func (f *Font) Family() string {
	return f.text(fontFamily, fontFamily.coercer())
}

// SetSize sets the font size in pixels.
func (f *Font) SetSize(size int) error {
	return f.slot(fontSize).SetLiteral(size)
}

// SetSizeCallback computes the font size per call site.
func (f *Font) SetSizeCallback(fn func(*callback.Context) int) {
	f.slot(fontSize).SetCallback(callback.Typed(fn))
}

// Size returns the font size.
func (f *Font) Size() int {
	return f.integer(fontSize, fontSize.coercer())
}

// SetStyle sets the font style (normal, italic, oblique...).
func (f *Font) SetStyle(style string) error {
	return f.slot(fontStyle).SetLiteral(style)
}

// Style returns the font style.
func (f *Font) Style() string {
	return f.text(fontStyle, fontStyle.coercer())
}

// SetWeight sets the font weight (e.g. "bold", "600").
func (f *Font) SetWeight(weight string) error {
	return f.slot(fontWeight).SetLiteral(weight)
}

// Weight returns the font weight.
func (f *Font) Weight() string {
	return f.text(fontWeight, fontWeight.coercer())
}

// SetLineHeight sets the line height multiplier.
func (f *Font) SetLineHeight(h float64) error {
	return f.slot(fontLineHeight).SetLiteral(h)
}

// LineHeight returns the line height multiplier.
func (f *Font) LineHeight() float64 {
	return f.number(fontLineHeight, fontLineHeight.coercer())
}

var fontScriptable = []fontProperty{fontSize}
