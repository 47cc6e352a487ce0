// Package engine stands in for the charting engine that consumes a chart's
// native options tree.
//
// It does what the engine does at the boundary of the callback bridge and
// nothing more: it builds the call-site records the engine passes to
// scriptable options, resolves each option for each call site (thunk,
// literal, or resolved default, in that order), fires interaction events
// through the chart's listener gates, and renders the result as a JSON
// snapshot. Layout and drawing are never computed; ticks are spread evenly
// over the resolved range.
//
// # Resolution
//
// A property is looked up along a chain of nodes, most specific first. For a
// bar dataset's backgroundColor the chain is the dataset record, then
// options.elements.bar, then the chart's resolved defaults at
// elements.bar.backgroundColor:
//
//	v, err := e.Value(c, engine.Chain("backgroundColor", "elements.bar.backgroundColor", ds, bar), rec)
//
// # Snapshot
//
// Snapshot evaluates every scriptable option once per call site: chart-wide
// options with a chart record, data points with data records, scale bounds
// with scale records, ticks with tick records and line segments with segment
// records.
package engine
