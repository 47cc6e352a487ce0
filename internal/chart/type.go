package chart

import (
	"github.com/samber/lo"
)

// Type is a chart type.
type Type uint8

const (
	// TypeLine is a line chart.
	TypeLine Type = iota
	// TypeBar is a bar chart.
	TypeBar
	// TypePie is a pie chart.
	TypePie
	// TypeDoughnut is a doughnut chart.
	TypeDoughnut
	// TypePolarArea is a polar area chart.
	TypePolarArea
	// TypeRadar is a radar chart.
	TypeRadar
	// TypeScatter is a scatter chart.
	TypeScatter
	// TypeBubble is a bubble chart.
	TypeBubble
)

var allTypes = []Type{
	TypeLine, TypeBar, TypePie, TypeDoughnut, TypePolarArea, TypeRadar, TypeScatter, TypeBubble,
}

// Token returns the native type token.
func (t Type) Token() string {
	switch t {
	case TypeLine:
		return "line"
	case TypeBar:
		return "bar"
	case TypePie:
		return "pie"
	case TypeDoughnut:
		return "doughnut"
	case TypePolarArea:
		return "polarArea"
	case TypeRadar:
		return "radar"
	case TypeScatter:
		return "scatter"
	case TypeBubble:
		return "bubble"
	default:
		return ""
	}
}

// String returns the native type token.
func (t Type) String() string {
	return t.Token()
}

// ParseType returns the type for a native token.
func ParseType(token string) (Type, error) {
	t, ok := lo.Find(allTypes, func(t Type) bool { return t.Token() == token })
	if !ok {
		return 0, configError("type", token, ErrUnknownType)
	}
	return t, nil
}

// Types returns every chart type.
func Types() []Type {
	return append([]Type(nil), allTypes...)
}

// Tokens returns the native tokens of every chart type.
func Tokens() []string {
	return lo.Map(allTypes, func(t Type, _ int) string { return t.Token() })
}

// Radial reports whether the type has no cartesian axes.
func (t Type) Radial() bool {
	return t == TypePie || t == TypeDoughnut || t == TypePolarArea || t == TypeRadar
}

// Element returns the element type datasets of t are drawn with, which is
// also the defaults section their style properties resolve against.
func (t Type) Element() string {
	switch t {
	case TypeBar:
		return "bar"
	case TypePie, TypeDoughnut, TypePolarArea:
		return "arc"
	case TypeScatter, TypeBubble:
		return "point"
	default:
		return "line"
	}
}
