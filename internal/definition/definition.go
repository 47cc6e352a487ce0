package definition

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/dshills/chartwire/internal/chart"
)

// Definition is a chart described in a definition file.
type Definition struct {
	// ID is the chart id. Empty means generated.
	ID string
	// Type is the chart type token. Empty means line.
	Type string
	// Labels are the category labels.
	Labels []string
	// Datasets holds one map per dataset: "data" plus any dataset option.
	Datasets []map[string]any
	// Options holds option literals as a nested tree.
	Options map[string]any
	// Defaults holds per-chart defaults overrides as a nested tree.
	Defaults map[string]any
	// Script is the Lua script binding callbacks. Relative paths resolve
	// against the definition file's directory.
	Script string
	// Source is the file the definition was read from.
	Source string
}

// Definition file keys.
const (
	keyID       = "id"
	keyType     = "type"
	keyLabels   = "labels"
	keyDatasets = "datasets"
	keyOptions  = "options"
	keyDefaults = "defaults"
	keyScript   = "script"
)

// ChartType returns the parsed chart type.
func (d *Definition) ChartType() (chart.Type, error) {
	if d.Type == "" {
		return chart.TypeLine, nil
	}
	return chart.ParseType(d.Type)
}

// fromMap builds a definition from a decoded document.
func fromMap(source string, m map[string]any) (*Definition, error) {
	def := &Definition{Source: source}

	keys := lo.Keys(m)
	sort.Strings(keys)
	for _, key := range keys {
		v := m[key]
		switch key {
		case keyID, keyType, keyScript:
			s, ok := v.(string)
			if !ok {
				return nil, invalid(source, "%s: expected string, got %T", key, v)
			}
			switch key {
			case keyID:
				def.ID = s
			case keyType:
				def.Type = s
			default:
				def.Script = s
			}
		case keyLabels:
			labels, err := toLabels(source, v)
			if err != nil {
				return nil, err
			}
			def.Labels = labels
		case keyDatasets:
			datasets, err := toDatasets(source, v)
			if err != nil {
				return nil, err
			}
			def.Datasets = datasets
		case keyOptions, keyDefaults:
			tree, err := toTree(source, key, v)
			if err != nil {
				return nil, err
			}
			if key == keyOptions {
				def.Options = tree
			} else {
				def.Defaults = tree
			}
		default:
			return nil, invalid(source, "unknown key %q", key)
		}
	}

	if _, err := def.ChartType(); err != nil {
		return nil, &ParseError{Path: source, Message: err.Error(), Err: err}
	}
	return def, nil
}

func toLabels(source string, v any) ([]string, error) {
	list, ok := v.([]any)
	if !ok {
		return nil, invalid(source, "labels: expected list, got %T", v)
	}
	labels := make([]string, len(list))
	for i, e := range list {
		switch l := e.(type) {
		case string:
			labels[i] = l
		case int, int64, float64:
			labels[i] = fmt.Sprint(l)
		default:
			return nil, invalid(source, "labels[%d]: expected string, got %T", i, e)
		}
	}
	return labels, nil
}

func toDatasets(source string, v any) ([]map[string]any, error) {
	list, ok := v.([]any)
	if !ok {
		return nil, invalid(source, "datasets: expected list, got %T", v)
	}
	datasets := make([]map[string]any, len(list))
	for i, e := range list {
		ds, err := toTree(source, fmt.Sprintf("datasets[%d]", i), e)
		if err != nil {
			return nil, err
		}
		datasets[i] = ds
	}
	return datasets, nil
}

// toTree checks that v is a string-keyed tree. yaml.v3 decodes mappings
// with non-string keys as map[any]any, which is rejected.
func toTree(source, name string, v any) (map[string]any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, invalid(source, "%s: expected table, got %T", name, v)
	}
	for key, child := range m {
		if strings.TrimSpace(key) == "" {
			return nil, invalid(source, "%s: empty key", name)
		}
		if _, bad := child.(map[any]any); bad {
			return nil, invalid(source, "%s.%s: keys must be strings", name, key)
		}
		if nested, ok := child.(map[string]any); ok {
			if _, err := toTree(source, name+"."+key, nested); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}
