package options

import (
	"github.com/samber/lo"

	"github.com/dshills/chartwire/internal/callback"
	"github.com/dshills/chartwire/internal/chart"
	"github.com/dshills/chartwire/internal/native"
)

// Scales is the map of scales keyed by id (e.g. "x", "y", "r").
type Scales struct {
	scope
}

// Scale returns the scale with the given id, creating its node.
func (s *Scales) Scale(id string) *Scale {
	sc := scope{
		chart:    s.chart,
		node:     s.node.Child(native.StringKey(id)),
		defaults: native.ParsePath("scale"),
		family:   callback.FamilyScale,
	}
	return &Scale{scope: sc, id: id}
}

// X returns the "x" scale.
func (s *Scales) X() *Scale {
	return s.Scale("x")
}

// Y returns the "y" scale.
func (s *Scales) Y() *Scale {
	return s.Scale("y")
}

// IDs returns the ids of every configured scale.
func (s *Scales) IDs() []string {
	return lo.Filter(s.node.Keys(), func(k string, _ int) bool {
		return s.node.GetObject(native.StringKey(k)) != nil
	})
}

// Attach stores a copy of scale's configuration under id. The scale must
// belong to the same chart as these options.
func (s *Scales) Attach(id string, scale *Scale) error {
	if scale == nil {
		return &callback.ConfigurationError{Op: "attach", Key: id, Err: callback.ErrNilNode}
	}
	if err := s.chart.CheckOwner(scale.chart); err != nil {
		return err
	}
	s.node.SetObject(native.StringKey(id), scale.node.Clone())
	return nil
}

// Remove deletes the scale with the given id.
func (s *Scales) Remove(id string) bool {
	return s.node.Remove(native.StringKey(id))
}

type scaleProperty uint8

const (
	scaleType scaleProperty = iota
	scaleDisplay
	scalePosition
	scaleMin
	scaleMax
	scaleSuggestedMin
	scaleSuggestedMax
	scaleBeginAtZero
	scaleReverse
	scaleStacked
	scaleOffset
	scaleGrid
	scaleBorder
	scaleTicks
)

func (p scaleProperty) Value() string {
	switch p {
	case scaleType:
		return "type"
	case scaleDisplay:
		return "display"
	case scalePosition:
		return "position"
	case scaleMin:
		return "min"
	case scaleMax:
		return "max"
	case scaleSuggestedMin:
		return "suggestedMin"
	case scaleSuggestedMax:
		return "suggestedMax"
	case scaleBeginAtZero:
		return "beginAtZero"
	case scaleReverse:
		return "reverse"
	case scaleStacked:
		return "stacked"
	case scaleOffset:
		return "offset"
	case scaleGrid:
		return "grid"
	case scaleBorder:
		return "border"
	case scaleTicks:
		return "ticks"
	default:
		return ""
	}
}

// bound is the coercer of min/max style limits: any finite number, and no
// fallback so the engine computes the limit from the data.
var bound = callback.Number.WithFallback(nil)

func (p scaleProperty) coercer() callback.Coercer {
	switch p {
	case scaleType:
		return callback.Enum("scale type", chart.ScaleTypeTokens...)
	case scaleDisplay, scaleBeginAtZero, scaleReverse, scaleStacked, scaleOffset:
		return callback.Bool
	case scalePosition:
		return callback.Enum("scale position", append(chart.PositionTokens, "center")...)
	case scaleMin, scaleMax, scaleSuggestedMin, scaleSuggestedMax:
		return bound
	default:
		return callback.Coercer{}
	}
}

var scaleScriptable = []scaleProperty{scaleMin, scaleMax}

// Scale configures one axis.
type Scale struct {
	scope
	id string
}

// ID returns the scale id.
func (s *Scale) ID() string {
	return s.id
}

func (s *Scale) slot(p scaleProperty) *callback.Slot {
	return s.scope.slot(p, p.coercer())
}

// SetType sets the scale type (linear, logarithmic, category, ...).
func (s *Scale) SetType(t string) error {
	return s.slot(scaleType).SetLiteral(t)
}

// Type returns the scale type.
func (s *Scale) Type() string {
	return s.text(scaleType, scaleType.coercer())
}

// SetDisplay shows or hides the scale.
func (s *Scale) SetDisplay(display bool) error {
	return s.slot(scaleDisplay).SetLiteral(display)
}

// Display reports whether the scale is shown.
func (s *Scale) Display() bool {
	return s.boolean(scaleDisplay)
}

// SetPosition sets the axis position.
func (s *Scale) SetPosition(position string) error {
	return s.slot(scalePosition).SetLiteral(position)
}

// Position returns the axis position, or "" when the engine decides.
func (s *Scale) Position() string {
	return s.text(scalePosition, scalePosition.coercer().WithFallback(""))
}

// SetMin fixes the scale minimum.
func (s *Scale) SetMin(min float64) error {
	return s.slot(scaleMin).SetLiteral(min)
}

// SetMinCallback computes the scale minimum.
func (s *Scale) SetMinCallback(fn func(*callback.Context) float64) {
	s.slot(scaleMin).SetCallback(callback.Typed(fn))
}

// Min returns the fixed minimum. ok is false when the minimum is computed.
func (s *Scale) Min() (min float64, ok bool) {
	min, ok = s.value(scaleMin, bound).(float64)
	return min, ok
}

// SetMax fixes the scale maximum.
func (s *Scale) SetMax(max float64) error {
	return s.slot(scaleMax).SetLiteral(max)
}

// SetMaxCallback computes the scale maximum.
func (s *Scale) SetMaxCallback(fn func(*callback.Context) float64) {
	s.slot(scaleMax).SetCallback(callback.Typed(fn))
}

// Max returns the fixed maximum. ok is false when the maximum is computed.
func (s *Scale) Max() (max float64, ok bool) {
	max, ok = s.value(scaleMax, bound).(float64)
	return max, ok
}

// ClearMin lets the engine compute the minimum.
func (s *Scale) ClearMin() {
	s.slot(scaleMin).Clear()
}

// ClearMax lets the engine compute the maximum.
func (s *Scale) ClearMax() {
	s.slot(scaleMax).Clear()
}

// SetSuggestedMin sets a minimum the data may extend beyond.
func (s *Scale) SetSuggestedMin(min float64) error {
	return s.slot(scaleSuggestedMin).SetLiteral(min)
}

// SuggestedMin returns the suggested minimum.
func (s *Scale) SuggestedMin() (float64, bool) {
	v, ok := s.value(scaleSuggestedMin, bound).(float64)
	return v, ok
}

// SetSuggestedMax sets a maximum the data may extend beyond.
func (s *Scale) SetSuggestedMax(max float64) error {
	return s.slot(scaleSuggestedMax).SetLiteral(max)
}

// SuggestedMax returns the suggested maximum.
func (s *Scale) SuggestedMax() (float64, bool) {
	v, ok := s.value(scaleSuggestedMax, bound).(float64)
	return v, ok
}

// SetBeginAtZero includes zero in the range.
func (s *Scale) SetBeginAtZero(b bool) error {
	return s.slot(scaleBeginAtZero).SetLiteral(b)
}

// BeginAtZero reports whether zero is included in the range.
func (s *Scale) BeginAtZero() bool {
	return s.boolean(scaleBeginAtZero)
}

// SetReverse reverses the scale.
func (s *Scale) SetReverse(b bool) error {
	return s.slot(scaleReverse).SetLiteral(b)
}

// Reverse reports whether the scale is reversed.
func (s *Scale) Reverse() bool {
	return s.boolean(scaleReverse)
}

// SetStacked stacks datasets on this scale.
func (s *Scale) SetStacked(b bool) error {
	return s.slot(scaleStacked).SetLiteral(b)
}

// Stacked reports whether datasets are stacked.
func (s *Scale) Stacked() bool {
	return s.boolean(scaleStacked)
}

// SetOffset adds space at both edges.
func (s *Scale) SetOffset(b bool) error {
	return s.slot(scaleOffset).SetLiteral(b)
}

// Offset reports whether space is added at both edges.
func (s *Scale) Offset() bool {
	return s.boolean(scaleOffset)
}

// Grid returns the grid line options.
func (s *Scale) Grid() *Grid {
	return &Grid{s.nested(scaleGrid)}
}

// Border returns the axis border options.
func (s *Scale) Border() *Border {
	return &Border{s.nested(scaleBorder)}
}

// Ticks returns the tick options.
func (s *Scale) Ticks() *Ticks {
	return &Ticks{s.nested(scaleTicks)}
}
