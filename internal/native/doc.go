// Package native provides the in-memory configuration tree handed to the
// charting engine.
//
// The tree mirrors the engine's JSON option schema. Every node is an
// *Object holding an ordered set of properties whose values are one of:
//
//   - bool
//   - float64 (all numeric inputs are normalized)
//   - string
//   - *Object
//   - Array
//   - *Function (a thunk the engine calls while it resolves options)
//
// Setting a property to nil removes it, so "absent" and "undefined" are the
// same state for the engine.
//
// # Keys
//
// Properties are addressed by Key values. Wrapper packages declare their own
// closed key enumerations; StringKey covers keys that only exist at runtime
// (scale ids, for example).
//
// # JSON
//
// Object implements json.Marshaler on top of sjson and Parse builds a tree
// from JSON using gjson. Functions have no JSON form and are skipped.
//
// # Concurrency
//
// An Object is not safe for concurrent use. The engine reads and writes the
// tree from a single goroutine; callers sharing a tree across goroutines must
// synchronize externally.
package native
