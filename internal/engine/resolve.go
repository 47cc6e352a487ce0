package engine

import (
	"time"

	"github.com/dshills/chartwire/internal/chart"
	"github.com/dshills/chartwire/internal/native"
)

// Source tells where a resolved value came from.
type Source uint8

const (
	// SourceAbsent means no node and no default held a value.
	SourceAbsent Source = iota
	// SourceCallback means a registered thunk computed the value.
	SourceCallback
	// SourceLiteral means a static value was stored in a node.
	SourceLiteral
	// SourceDefault means the chart's resolved defaults supplied the value.
	SourceDefault
)

// String returns the source name.
func (s Source) String() string {
	switch s {
	case SourceCallback:
		return "callback"
	case SourceLiteral:
		return "literal"
	case SourceDefault:
		return "default"
	default:
		return "absent"
	}
}

// Resolve reads node[key] for one call site: a thunk is called with record,
// a literal is returned as is. ok is false when the node has no value.
func Resolve(node *native.Object, key native.Key, record *native.Object) (v any, ok bool, err error) {
	v, src, err := resolve(node, key, record)
	return v, src != SourceAbsent, err
}

func resolve(node *native.Object, key native.Key, record *native.Object) (any, Source, error) {
	if node == nil {
		return nil, SourceAbsent, nil
	}
	v, ok := node.Get(key)
	if !ok {
		return nil, SourceAbsent, nil
	}
	fn, isFn := v.(*native.Function)
	if !isFn {
		return v, SourceLiteral, nil
	}
	out, err := fn.Call(record)
	if err != nil {
		return nil, SourceCallback, err
	}
	return out, SourceCallback, nil
}

// Lookup is a property looked up along a chain of nodes, most specific first,
// before falling back to the chart's resolved defaults.
type Lookup struct {
	Key      native.Key
	Defaults native.Path
	Nodes    []*native.Object
}

// Chain builds a Lookup. defaults is a dotted path into the chart defaults;
// nil nodes are skipped.
func Chain(key string, defaults string, nodes ...*native.Object) Lookup {
	l := Lookup{Key: native.StringKey(key), Nodes: nodes}
	if defaults != "" {
		l.Defaults = native.ParsePath(defaults)
	}
	return l
}

// Value resolves l for the call site described by record. A thunk returning
// nil defers to the next node.
func (e *Engine) Value(c *chart.Chart, l Lookup, record *native.Object) (any, error) {
	v, _, err := e.value(c, l, record)
	return v, err
}

func (e *Engine) value(c *chart.Chart, l Lookup, record *native.Object) (any, Source, error) {
	start := time.Now()
	name := l.Key.Value()
	if len(l.Defaults) > 0 {
		name = l.Defaults.String()
	}

	for _, node := range l.Nodes {
		v, src, err := resolve(node, l.Key, record)
		if err != nil {
			e.record(name, src, time.Since(start), err)
			return nil, src, err
		}
		if src != SourceAbsent && v != nil {
			e.record(name, src, time.Since(start), nil)
			return v, src, nil
		}
	}

	if len(l.Defaults) > 0 {
		if defaults := c.Defaults(); defaults != nil {
			if v, ok := defaults.Lookup(l.Defaults); ok {
				e.record(name, SourceDefault, time.Since(start), nil)
				return v, SourceDefault, nil
			}
		}
	}
	e.record(name, SourceAbsent, time.Since(start), nil)
	return nil, SourceAbsent, nil
}

func (e *Engine) record(name string, src Source, d time.Duration, err error) {
	if e.metrics != nil {
		e.metrics.RecordResolve(name, src, d, err)
	}
}
