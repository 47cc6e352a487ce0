// Package options provides typed wrappers over a chart's native options
// tree.
//
// Every wrapper is a view: it holds the owning chart, the native node it
// writes to and the path of its defaults, and keeps no other state. Two
// wrappers over the same node see each other's writes. Scriptable
// properties have three methods:
//
//	p.SetRadius(4)                          // literal, clears any callback
//	p.SetRadiusCallback(func(ctx *callback.Context) float64 { ... })
//	p.Radius()                              // literal or resolved default
//
// Literals are validated on write and rejected with a
// *callback.ConfigurationError. Callback results are never rejected; values
// the engine cannot use resolve to the chart default at call time.
package options
