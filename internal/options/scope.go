package options

import (
	"github.com/dshills/chartwire/internal/callback"
	"github.com/dshills/chartwire/internal/chart"
	"github.com/dshills/chartwire/internal/native"
)

// scope is what every wrapper is composed from: the chart, the native node
// the wrapper writes into and the path of the matching defaults.
type scope struct {
	chart    *chart.Chart
	node     *native.Object
	defaults native.Path
	family   callback.Family
}

func newScope(c *chart.Chart, node *native.Object, defaults native.Path) scope {
	return scope{chart: c, node: node, defaults: defaults}
}

// child returns the scope of a nested section, creating its node.
func (s scope) child(key native.Key, defaults native.Path) scope {
	return scope{
		chart:    s.chart,
		node:     s.node.Child(key),
		defaults: defaults,
		family:   s.family,
	}
}

// nested is child with the defaults path extended by the same key.
func (s scope) nested(key native.Key) scope {
	return s.child(key, s.defaults.Append(key))
}

func (s scope) withFamily(f callback.Family) scope {
	s.family = f
	return s
}

// Chart returns the chart the wrapper belongs to.
func (s scope) Chart() *chart.Chart {
	return s.chart
}

// Node returns the native node the wrapper writes into.
func (s scope) Node() *native.Object {
	return s.node
}

func (s scope) slot(key native.Key, c callback.Coercer) *callback.Slot {
	sl := callback.MustSlot(s.chart.Charts(), s.node, key, s.defaults.Append(key), c)
	if s.family != callback.FamilyAuto {
		sl = sl.WithFamily(s.family)
	}
	return sl
}

func (s scope) set(key native.Key, c callback.Coercer, v any) error {
	return s.slot(key, c).SetLiteral(v)
}

func (s scope) register(key native.Key, c callback.Coercer, fn callback.Func) {
	s.slot(key, c).SetCallback(fn)
}

func (s scope) value(key native.Key, c callback.Coercer) any {
	return s.slot(key, c).Value(s.chart)
}

func (s scope) boolean(key native.Key) bool {
	b, _ := s.value(key, callback.Bool).(bool)
	return b
}

func (s scope) number(key native.Key, c callback.Coercer) float64 {
	f, _ := s.value(key, c).(float64)
	return f
}

func (s scope) integer(key native.Key, c callback.Coercer) int {
	return int(s.number(key, c))
}

func (s scope) text(key native.Key, c callback.Coercer) string {
	str, _ := s.value(key, c).(string)
	return str
}

func (s scope) ints(key native.Key) []int {
	arr, _ := s.value(key, callback.IntArray).(native.Array)
	out := make([]int, 0, len(arr))
	for _, v := range arr {
		if f, ok := v.(float64); ok {
			out = append(out, int(f))
		}
	}
	return out
}

func (s scope) lines(key native.Key) []string {
	switch v := s.value(key, callback.StringOrLines).(type) {
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	case native.Array:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if str, ok := e.(string); ok {
				out = append(out, str)
			}
		}
		return out
	}
	return nil
}

func (s scope) isSet(key native.Key) bool {
	return s.node.Has(key)
}
