package native

import "strings"

// Key identifies a property of a native object.
type Key interface {
	// Value returns the property name used by the engine.
	Value() string
}

// StringKey is a Key whose name is only known at runtime.
type StringKey string

// Value implements Key.
func (k StringKey) Value() string {
	return string(k)
}

// Path is an ordered list of keys from a root object to a property.
type Path []Key

// ParsePath splits a dot-separated path into string keys.
func ParsePath(s string) Path {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ".")
	p := make(Path, 0, len(parts))
	for _, part := range parts {
		p = append(p, StringKey(part))
	}
	return p
}

// Append returns a new path with keys appended. The receiver is not modified.
func (p Path) Append(keys ...Key) Path {
	out := make(Path, 0, len(p)+len(keys))
	out = append(out, p...)
	return append(out, keys...)
}

// Last returns the final key of the path, or nil for an empty path.
func (p Path) Last() Key {
	if len(p) == 0 {
		return nil
	}
	return p[len(p)-1]
}

// Parent returns the path without its final key.
func (p Path) Parent() Path {
	if len(p) == 0 {
		return nil
	}
	return p[:len(p)-1]
}

// String returns the dot-separated form of the path.
func (p Path) String() string {
	names := make([]string, len(p))
	for i, k := range p {
		names[i] = k.Value()
	}
	return strings.Join(names, ".")
}
