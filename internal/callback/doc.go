// Package callback bridges host functions into the native configuration tree.
//
// The charting engine resolves many options lazily: when it needs a point
// radius, a tick color or a tooltip label it calls whatever function is stored
// at that property, passing a call-site record. This package provides the
// three pieces that make that work for Go (and Lua) callbacks:
//
//   - Context marshalling: Marshal turns the engine's record into an
//     immutable *Context (chart, dataset, scale or segment family). A record
//     without its chart back-reference is rejected with a ConfigurationError.
//
//   - Slots: a Slot binds one property of one node to either a literal value
//     or a callback. The two are exclusive; the last write wins. Setting a
//     callback stores a native thunk in the node, so every wrapper viewing
//     the same node sees the registration.
//
//   - Coercion: a Coercer normalizes the callback result into the exact wire
//     shape the engine expects. Missing callbacks, wrong types and
//     out-of-range values all resolve to the chart's default for that
//     property; they are never reported as errors.
//
// # Usage
//
//	slot := callback.MustSlot(charts, node, key, defaultsPath, callback.NonNegativeInt)
//	slot.SetCallback(callback.Typed(func(ctx *callback.Context) int {
//	    return ctx.DataIndex() * 2
//	}))
//
// The engine later calls the thunk stored at node[key] with a record and
// receives a non-negative integer, or the default radius.
package callback
