package native

import (
	"fmt"
	"math"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// MarshalJSON encodes the tree. Functions are skipped in objects and encoded
// as null inside arrays so element positions are preserved.
func (o *Object) MarshalJSON() ([]byte, error) {
	out := []byte("{}")
	if o == nil {
		return out, nil
	}
	var err error
	for _, name := range o.keys {
		path := escapeKey(name)
		switch v := o.values[name].(type) {
		case *Function:
			continue
		case *Object:
			raw, mErr := v.MarshalJSON()
			if mErr != nil {
				return nil, mErr
			}
			out, err = sjson.SetRawBytes(out, path, raw)
		case Array:
			raw, mErr := marshalArray(v)
			if mErr != nil {
				return nil, mErr
			}
			out, err = sjson.SetRawBytes(out, path, raw)
		case float64:
			if math.IsInf(v, 0) || math.IsNaN(v) {
				continue
			}
			out, err = sjson.SetBytes(out, path, v)
		default:
			out, err = sjson.SetBytes(out, path, v)
		}
		if err != nil {
			return nil, fmt.Errorf("encoding %s: %w", name, err)
		}
	}
	return out, nil
}

func marshalArray(a Array) ([]byte, error) {
	out := []byte("[]")
	var err error
	for _, e := range a {
		switch v := e.(type) {
		case *Object:
			raw, mErr := v.MarshalJSON()
			if mErr != nil {
				return nil, mErr
			}
			out, err = sjson.SetRawBytes(out, "-1", raw)
		case Array:
			raw, mErr := marshalArray(v)
			if mErr != nil {
				return nil, mErr
			}
			out, err = sjson.SetRawBytes(out, "-1", raw)
		case *Function, nil:
			out, err = sjson.SetRawBytes(out, "-1", []byte("null"))
		case float64:
			if math.IsInf(v, 0) || math.IsNaN(v) {
				out, err = sjson.SetRawBytes(out, "-1", []byte("null"))
				break
			}
			out, err = sjson.SetBytes(out, "-1", v)
		default:
			out, err = sjson.SetBytes(out, "-1", v)
		}
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// escapeKey escapes sjson path metacharacters so name is taken literally.
func escapeKey(name string) string {
	if !strings.ContainsAny(name, `.*?|#@\:!=<>%`) {
		return name
	}
	var b strings.Builder
	for _, r := range name {
		if strings.ContainsRune(`.*?|#@\:!=<>%`, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Parse builds a tree from a JSON object document.
func Parse(data []byte) (*Object, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, ErrNotObject
	}
	return objectFromResult(root), nil
}

func objectFromResult(r gjson.Result) *Object {
	o := NewObject()
	r.ForEach(func(key, value gjson.Result) bool {
		o.put(key.String(), valueFromResult(value))
		return true
	})
	return o
}

func valueFromResult(r gjson.Result) any {
	switch r.Type {
	case gjson.True:
		return true
	case gjson.False:
		return false
	case gjson.Number:
		return r.Num
	case gjson.String:
		return r.Str
	case gjson.JSON:
		if r.IsArray() {
			elems := r.Array()
			out := make(Array, len(elems))
			for i, e := range elems {
				out[i] = valueFromResult(e)
			}
			return out
		}
		return objectFromResult(r)
	default:
		return nil
	}
}

// Query evaluates a gjson path against the encoded tree.
func (o *Object) Query(path string) gjson.Result {
	data, err := o.MarshalJSON()
	if err != nil {
		return gjson.Result{}
	}
	return gjson.GetBytes(data, path)
}

// Pretty encodes the tree as indented JSON.
func Pretty(o *Object) ([]byte, error) {
	data, err := o.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return pretty.Pretty(data), nil
}
