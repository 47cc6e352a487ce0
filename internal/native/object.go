package native

import (
	"fmt"
	"math"
)

// Type is the engine-visible type of a property.
type Type uint8

const (
	// TypeUndefined means the property is absent.
	TypeUndefined Type = iota
	// TypeBoolean is a bool property.
	TypeBoolean
	// TypeNumber is a numeric property.
	TypeNumber
	// TypeString is a string property.
	TypeString
	// TypeObject is a nested object.
	TypeObject
	// TypeArray is an array property.
	TypeArray
	// TypeFunction is a registered thunk.
	TypeFunction
)

// String returns the type name.
func (t Type) String() string {
	switch t {
	case TypeUndefined:
		return "undefined"
	case TypeBoolean:
		return "boolean"
	case TypeNumber:
		return "number"
	case TypeString:
		return "string"
	case TypeObject:
		return "object"
	case TypeArray:
		return "array"
	case TypeFunction:
		return "function"
	default:
		return "unknown"
	}
}

// Array is a native array. Elements follow the same normalization rules as
// object properties.
type Array []any

// Object is a node of the native configuration tree.
type Object struct {
	keys   []string
	values map[string]any
}

// NewObject creates an empty object.
func NewObject() *Object {
	return &Object{values: make(map[string]any)}
}

// Len returns the number of properties.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Keys returns the property names in insertion order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

// Has reports whether the property is present.
func (o *Object) Has(k Key) bool {
	if o == nil {
		return false
	}
	_, ok := o.values[k.Value()]
	return ok
}

// TypeOf returns the type of the property.
func (o *Object) TypeOf(k Key) Type {
	v, ok := o.Get(k)
	if !ok {
		return TypeUndefined
	}
	return typeOfValue(v)
}

// Get returns the raw property value.
func (o *Object) Get(k Key) (any, bool) {
	return o.get(k.Value())
}

func (o *Object) get(name string) (any, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.values[name]
	return v, ok
}

// Set stores a value after normalizing it. A nil value removes the property.
func (o *Object) Set(k Key, v any) error {
	nv, err := Normalize(v)
	if err != nil {
		return fmt.Errorf("%s: %w", k.Value(), err)
	}
	o.put(k.Value(), nv)
	return nil
}

// Remove deletes the property. It reports whether the property existed.
func (o *Object) Remove(k Key) bool {
	return o.remove(k.Value())
}

func (o *Object) put(name string, v any) {
	if v == nil {
		o.remove(name)
		return
	}
	if o.values == nil {
		o.values = make(map[string]any)
	}
	if _, exists := o.values[name]; !exists {
		o.keys = append(o.keys, name)
	}
	o.values[name] = v
}

func (o *Object) remove(name string) bool {
	if _, exists := o.values[name]; !exists {
		return false
	}
	delete(o.values, name)
	for i, k := range o.keys {
		if k == name {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
	return true
}

// SetBool stores a boolean.
func (o *Object) SetBool(k Key, v bool) {
	o.put(k.Value(), v)
}

// SetNumber stores a number. NaN removes the property.
func (o *Object) SetNumber(k Key, v float64) {
	if math.IsNaN(v) {
		o.remove(k.Value())
		return
	}
	o.put(k.Value(), v)
}

// SetInt stores an integer as a number.
func (o *Object) SetInt(k Key, v int) {
	o.put(k.Value(), float64(v))
}

// SetString stores a string.
func (o *Object) SetString(k Key, v string) {
	o.put(k.Value(), v)
}

// SetObject stores a nested object. A nil object removes the property.
func (o *Object) SetObject(k Key, v *Object) {
	if v == nil {
		o.remove(k.Value())
		return
	}
	o.put(k.Value(), v)
}

// SetArray stores an array. A nil array removes the property.
func (o *Object) SetArray(k Key, v Array) {
	if v == nil {
		o.remove(k.Value())
		return
	}
	o.put(k.Value(), v)
}

// SetFunction stores a thunk. A nil function removes the property.
func (o *Object) SetFunction(k Key, f *Function) {
	if f == nil {
		o.remove(k.Value())
		return
	}
	o.put(k.Value(), f)
}

// GetBool returns a boolean property or def.
func (o *Object) GetBool(k Key, def bool) bool {
	if v, ok := o.Get(k); ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return def
}

// GetNumber returns a numeric property or def.
func (o *Object) GetNumber(k Key, def float64) float64 {
	if v, ok := o.Get(k); ok {
		if f, ok := v.(float64); ok {
			return f
		}
	}
	return def
}

// GetInt returns a numeric property truncated to int, or def.
func (o *Object) GetInt(k Key, def int) int {
	if v, ok := o.Get(k); ok {
		if f, ok := v.(float64); ok {
			return int(f)
		}
	}
	return def
}

// GetString returns a string property or def.
func (o *Object) GetString(k Key, def string) string {
	if v, ok := o.Get(k); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return def
}

// GetObject returns a nested object, or nil if absent or not an object.
func (o *Object) GetObject(k Key) *Object {
	if v, ok := o.Get(k); ok {
		if obj, ok := v.(*Object); ok {
			return obj
		}
	}
	return nil
}

// GetArray returns an array property, or nil.
func (o *Object) GetArray(k Key) Array {
	if v, ok := o.Get(k); ok {
		if a, ok := v.(Array); ok {
			return a
		}
	}
	return nil
}

// GetFunction returns a registered thunk, or nil.
func (o *Object) GetFunction(k Key) *Function {
	if v, ok := o.Get(k); ok {
		if f, ok := v.(*Function); ok {
			return f
		}
	}
	return nil
}

// Child returns the nested object at k, creating it when absent. An existing
// non-object value is replaced.
func (o *Object) Child(k Key) *Object {
	if child := o.GetObject(k); child != nil {
		return child
	}
	child := NewObject()
	o.put(k.Value(), child)
	return child
}

// Lookup follows path from o and returns the value at its end.
func (o *Object) Lookup(path Path) (any, bool) {
	if len(path) == 0 {
		return nil, false
	}
	current := o
	for _, k := range path.Parent() {
		current = current.GetObject(k)
		if current == nil {
			return nil, false
		}
	}
	return current.Get(path.Last())
}

// Node follows path from o and returns the object at its end, or nil.
func (o *Object) Node(path Path) *Object {
	current := o
	for _, k := range path {
		current = current.GetObject(k)
		if current == nil {
			return nil
		}
	}
	return current
}

// Ensure follows path from o, creating intermediate objects as needed.
func (o *Object) Ensure(path Path) *Object {
	current := o
	for _, k := range path {
		current = current.Child(k)
	}
	return current
}

// Clone returns a deep copy. Functions are shared by reference.
func (o *Object) Clone() *Object {
	if o == nil {
		return nil
	}
	out := &Object{
		keys:   make([]string, len(o.keys)),
		values: make(map[string]any, len(o.values)),
	}
	copy(out.keys, o.keys)
	for k, v := range o.values {
		out.values[k] = cloneValue(v)
	}
	return out
}

// ToMap converts the tree into nested Go maps. Functions are omitted.
func (o *Object) ToMap() map[string]any {
	if o == nil {
		return nil
	}
	m := make(map[string]any, len(o.keys))
	for _, k := range o.keys {
		if v := exportValue(o.values[k]); v != nil {
			m[k] = v
		}
	}
	return m
}

func exportValue(v any) any {
	switch val := v.(type) {
	case *Object:
		return val.ToMap()
	case Array:
		out := make([]any, len(val))
		for i, e := range val {
			out[i] = exportValue(e)
		}
		return out
	case *Function:
		return nil
	default:
		return val
	}
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case *Object:
		return val.Clone()
	case Array:
		out := make(Array, len(val))
		for i, e := range val {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return val
	}
}

func typeOfValue(v any) Type {
	switch v.(type) {
	case bool:
		return TypeBoolean
	case float64:
		return TypeNumber
	case string:
		return TypeString
	case *Object:
		return TypeObject
	case Array:
		return TypeArray
	case *Function:
		return TypeFunction
	default:
		return TypeUndefined
	}
}

// Normalize converts a Go value into its native representation.
func Normalize(v any) (any, error) {
	switch val := v.(type) {
	case nil:
		return nil, nil
	case bool, string, float64:
		return val, nil
	case float32:
		return float64(val), nil
	case int:
		return float64(val), nil
	case int8:
		return float64(val), nil
	case int16:
		return float64(val), nil
	case int32:
		return float64(val), nil
	case int64:
		return float64(val), nil
	case uint:
		return float64(val), nil
	case uint8:
		return float64(val), nil
	case uint16:
		return float64(val), nil
	case uint32:
		return float64(val), nil
	case uint64:
		return float64(val), nil
	case *Object:
		if val == nil {
			return nil, nil
		}
		return val, nil
	case *Function:
		if val == nil {
			return nil, nil
		}
		return val, nil
	case Array:
		return normalizeSlice(val)
	case []any:
		return normalizeSlice(val)
	case []float64:
		out := make(Array, len(val))
		for i, f := range val {
			out[i] = f
		}
		return out, nil
	case []int:
		out := make(Array, len(val))
		for i, n := range val {
			out[i] = float64(n)
		}
		return out, nil
	case []string:
		out := make(Array, len(val))
		for i, s := range val {
			out[i] = s
		}
		return out, nil
	case map[string]any:
		return FromMap(val)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	}
}

func normalizeSlice(s []any) (Array, error) {
	out := make(Array, len(s))
	for i, e := range s {
		nv, err := Normalize(e)
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		out[i] = nv
	}
	return out, nil
}

// FromMap builds an object from nested Go maps, as produced by TOML, YAML
// and JSON decoders. Keys are inserted in sorted order for determinism.
func FromMap(m map[string]any) (*Object, error) {
	o := NewObject()
	for _, k := range sortedKeys(m) {
		nv, err := Normalize(m[k])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", k, err)
		}
		o.put(k, nv)
	}
	return o, nil
}
