package chart

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/samber/lo"

	"github.com/dshills/chartwire/internal/callback"
	"github.com/dshills/chartwire/internal/color"
	"github.com/dshills/chartwire/internal/native"
)

// Setting describes one default option: its path in the defaults tree, its
// type and the constraints an override must satisfy.
type Setting struct {
	// Path is the dot-separated path (e.g., "elements.point.radius").
	Path string

	// Type is the setting's value type.
	Type SettingType

	// Default is the built-in default. A nil default leaves the path out of
	// the defaults tree.
	Default any

	// Description is human-readable documentation.
	Description string

	// Enum lists allowed tokens for TypeEnum.
	Enum []string

	// Minimum for numeric types (nil means no minimum).
	Minimum *float64

	// Maximum for numeric types (nil means no maximum).
	Maximum *float64

	// Policy validates TypePolicy values.
	Policy callback.Coercer

	// Scriptable marks options that accept callbacks.
	Scriptable bool
}

// Validate checks if a value is valid for this setting. The value is
// normalized first so decoder output (int64, []any) is accepted.
func (s *Setting) Validate(value any) error {
	v, err := native.Normalize(value)
	if err != nil {
		return &ValidationError{Path: s.Path, Message: err.Error(), Value: value}
	}
	if v == nil {
		return &ValidationError{Path: s.Path, Message: "value is null", Value: value}
	}
	if msg := s.check(v); msg != "" {
		return &ValidationError{Path: s.Path, Message: msg, Value: value}
	}
	return nil
}

func (s *Setting) check(v any) string {
	switch s.Type {
	case TypeNumber, TypeInteger:
		f, ok := v.(float64)
		if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Sprintf("expected %s, got %T", s.Type, v)
		}
		if s.Type == TypeInteger && f != math.Trunc(f) {
			return fmt.Sprintf("expected integer, got %v", f)
		}
		if s.Minimum != nil && f < *s.Minimum {
			return fmt.Sprintf("value %v is less than minimum %v", f, *s.Minimum)
		}
		if s.Maximum != nil && f > *s.Maximum {
			return fmt.Sprintf("value %v is greater than maximum %v", f, *s.Maximum)
		}
	case TypeBool:
		if _, ok := v.(bool); !ok {
			return fmt.Sprintf("expected boolean, got %T", v)
		}
	case TypeString:
		if _, ok := v.(string); !ok {
			return fmt.Sprintf("expected string, got %T", v)
		}
	case TypeColor:
		str, ok := v.(string)
		if !ok || !color.Valid(str) {
			return fmt.Sprintf("expected color, got %v", v)
		}
	case TypeEnum:
		str, ok := v.(string)
		if !ok || !lo.Contains(s.Enum, str) {
			return fmt.Sprintf("value must be one of: %s", strings.Join(s.Enum, ", "))
		}
	case TypeArray:
		if _, ok := v.(native.Array); !ok {
			return fmt.Sprintf("expected array, got %T", v)
		}
	case TypePolicy:
		if _, ok := s.Policy.Accept(v); !ok {
			return fmt.Sprintf("expected %s, got %v", s.Policy.Name(), v)
		}
	case TypeAny:
	}
	return ""
}

// SettingType represents the value type of a setting.
type SettingType uint8

const (
	// TypeNumber is a finite number.
	TypeNumber SettingType = iota
	// TypeInteger is an integral number.
	TypeInteger
	// TypeBool is a boolean.
	TypeBool
	// TypeString is a string.
	TypeString
	// TypeColor is a CSS color string.
	TypeColor
	// TypeEnum is one of a fixed set of tokens.
	TypeEnum
	// TypeArray is an array.
	TypeArray
	// TypePolicy is validated by a callback coercer (fill, stepped, ...).
	TypePolicy
	// TypeAny accepts any non-null value.
	TypeAny
)

// String returns the type name.
func (t SettingType) String() string {
	switch t {
	case TypeNumber:
		return "number"
	case TypeInteger:
		return "integer"
	case TypeBool:
		return "boolean"
	case TypeString:
		return "string"
	case TypeColor:
		return "color"
	case TypeEnum:
		return "enum"
	case TypeArray:
		return "array"
	case TypePolicy:
		return "policy"
	case TypeAny:
		return "any"
	default:
		return "unknown"
	}
}

// MinValue creates a pointer to a float64 for use as Minimum.
func MinValue(v float64) *float64 {
	return &v
}

// MaxValue creates a pointer to a float64 for use as Maximum.
func MaxValue(v float64) *float64 {
	return &v
}

// Settings is the catalog of known default options.
type Settings struct {
	mu       sync.RWMutex
	settings map[string]*Setting
	sections map[string][]*Setting
}

// NewSettings creates an empty catalog.
func NewSettings() *Settings {
	return &Settings{
		settings: make(map[string]*Setting),
		sections: make(map[string][]*Setting),
	}
}

// Register adds a setting. It fails if the path is already registered.
func (r *Settings) Register(setting Setting) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.settings[setting.Path]; exists {
		return fmt.Errorf("setting already registered: %s", setting.Path)
	}
	s := &setting
	r.settings[setting.Path] = s
	section := extractSection(setting.Path)
	r.sections[section] = append(r.sections[section], s)
	return nil
}

// MustRegister registers a setting and panics on error.
func (r *Settings) MustRegister(setting Setting) {
	if err := r.Register(setting); err != nil {
		panic(err)
	}
}

// Get returns the setting for path, or nil.
func (r *Settings) Get(path string) *Setting {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.settings[path]
}

// Has reports whether path is registered.
func (r *Settings) Has(path string) bool {
	return r.Get(path) != nil
}

// All returns every setting sorted by path.
func (r *Settings) All() []*Setting {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := lo.Values(r.settings)
	sort.Slice(result, func(i, j int) bool {
		return result[i].Path < result[j].Path
	})
	return result
}

// Section returns the settings under a top-level section (e.g. "elements").
func (r *Settings) Section(name string) []*Setting {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*Setting(nil), r.sections[name]...)
}

// Sections returns all section names, sorted.
func (r *Settings) Sections() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := lo.Keys(r.sections)
	sort.Strings(names)
	return names
}

// Validate checks value against the setting at path.
func (r *Settings) Validate(path string, value any) error {
	s := r.Get(path)
	if s == nil {
		return &ValidationError{Path: path, Message: ErrUnknownSetting.Error(), Value: value}
	}
	return s.Validate(value)
}

// Tree builds the defaults tree from every setting with a non-nil default.
func (r *Settings) Tree() *native.Object {
	root := native.NewObject()
	for _, s := range r.All() {
		if s.Default == nil {
			continue
		}
		path := native.ParsePath(s.Path)
		if err := root.Ensure(path.Parent()).Set(path.Last(), s.Default); err != nil {
			panic(fmt.Sprintf("default for %s: %v", s.Path, err))
		}
	}
	return root
}

func extractSection(path string) string {
	if idx := strings.Index(path, "."); idx >= 0 {
		return path[:idx]
	}
	return path
}
