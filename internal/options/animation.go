package options

import (
	"github.com/dshills/chartwire/internal/callback"
	"github.com/dshills/chartwire/internal/chart"
)

type animationProperty uint8

const (
	animationDuration animationProperty = iota
	animationDelay
	animationEasing
	animationLoop
)

func (p animationProperty) Value() string {
	switch p {
	case animationDuration:
		return "duration"
	case animationDelay:
		return "delay"
	case animationEasing:
		return "easing"
	case animationLoop:
		return "loop"
	default:
		return ""
	}
}

func (p animationProperty) coercer() callback.Coercer {
	switch p {
	case animationDuration, animationDelay:
		return callback.NonNegativeInt
	case animationEasing:
		return callback.Enum("easing", chart.EasingTokens...)
	case animationLoop:
		return callback.Bool
	default:
		return callback.Coercer{}
	}
}

var animationScriptable = []animationProperty{animationDuration, animationDelay}

// Animation configures chart animations.
type Animation struct {
	scope
}

func (a *Animation) slot(p animationProperty) *callback.Slot {
	return a.scope.slot(p, p.coercer())
}

// SetDuration sets the animation length in milliseconds.
func (a *Animation) SetDuration(ms int) error {
	return a.slot(animationDuration).SetLiteral(ms)
}

// SetDurationCallback computes the duration per element.
func (a *Animation) SetDurationCallback(fn func(*callback.Context) int) {
	a.slot(animationDuration).SetCallback(callback.Typed(fn))
}

// Duration returns the animation length in milliseconds.
func (a *Animation) Duration() int {
	return a.integer(animationDuration, callback.NonNegativeInt)
}

// SetDelay sets the delay before the animation starts.
func (a *Animation) SetDelay(ms int) error {
	return a.slot(animationDelay).SetLiteral(ms)
}

// SetDelayCallback computes the delay per element, e.g. for staggered
// entry animations.
func (a *Animation) SetDelayCallback(fn func(*callback.Context) int) {
	a.slot(animationDelay).SetCallback(callback.Typed(fn))
}

// Delay returns the delay in milliseconds.
func (a *Animation) Delay() int {
	return a.integer(animationDelay, callback.NonNegativeInt)
}

// SetEasing sets the easing function.
func (a *Animation) SetEasing(easing string) error {
	return a.slot(animationEasing).SetLiteral(easing)
}

// Easing returns the easing function.
func (a *Animation) Easing() string {
	return a.text(animationEasing, animationEasing.coercer())
}

// SetLoop loops the animation.
func (a *Animation) SetLoop(loop bool) error {
	return a.slot(animationLoop).SetLiteral(loop)
}

// Loop reports whether the animation loops.
func (a *Animation) Loop() bool {
	return a.boolean(animationLoop)
}
