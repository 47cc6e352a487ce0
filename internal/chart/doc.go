// Package chart owns chart instances and everything shared across their
// configuration: identity, the chart registry the callback bridge resolves
// back-references through, the layered default options, and the reference
// counted event listener gates.
//
// A chart's native record has the shape the engine expects:
//
//	{ "id": "...", "type": "line", "options": {...}, "data": {"datasets": [...]} }
//
// Options wrappers write into the "options" node; defaults are never written
// into the record, they are consulted at call time through Defaults().
package chart
