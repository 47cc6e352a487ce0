package options

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/dshills/chartwire/internal/callback"
	"github.com/dshills/chartwire/internal/chart"
	"github.com/dshills/chartwire/internal/native"
)

var datasetFields = []datasetProperty{
	datasetLabel, datasetHidden, datasetOrder, datasetType, datasetStack,
	datasetXAxisID, datasetYAxisID, datasetTension,
}

// Set stores a literal at a dotted path such as "plugins.title.text",
// "scales.y.max" or "datasets.0.label". Scriptable paths go through their
// slot; other option paths are validated against the chart's settings.
func (o *Options) Set(path string, v any) error {
	if defaultCatalog.Has(path) {
		sl, err := defaultCatalog.Slot(o, path)
		if err != nil {
			return err
		}
		return sl.SetLiteral(v)
	}

	pattern, arg := Pattern(path)
	if rest, ok := strings.CutPrefix(pattern, "datasets.*."); ok {
		return o.setDatasetField(arg, rest, v)
	}

	setting := pattern
	if rest, ok := strings.CutPrefix(pattern, "scales.*."); ok {
		setting = "scale." + rest
	}
	if err := o.chart.DefaultsSource().Settings().Validate(setting, v); err != nil {
		return &callback.ConfigurationError{Op: "set", Key: path, Err: err}
	}
	normalized, err := native.Normalize(v)
	if err != nil {
		return &callback.ConfigurationError{Op: "set", Key: path, Err: err}
	}
	if s := o.chart.DefaultsSource().Settings().Get(setting); s.Type == chart.TypePolicy {
		normalized, _ = s.Policy.Accept(normalized)
	}
	p := native.ParsePath(path)
	return o.node.Ensure(p.Parent()).Set(p.Last(), normalized)
}

func (o *Options) setDatasetField(index, field string, v any) error {
	ds, err := datasetAt(o, index)
	if err != nil {
		return err
	}
	if field == datasetData.Value() {
		normalized, err := native.Normalize(v)
		if err != nil {
			return &callback.ConfigurationError{Op: "set", Key: "datasets." + index + ".data", Err: err}
		}
		arr, ok := normalized.(native.Array)
		if !ok {
			return &callback.ConfigurationError{Op: "set", Key: "datasets." + index + ".data", Err: fmt.Errorf("%w: data must be an array", callback.ErrInvalidValue)}
		}
		ds.node.SetArray(datasetData, arr)
		return nil
	}
	p, ok := lo.Find(datasetFields, func(p datasetProperty) bool { return p.Value() == field })
	if !ok {
		return &callback.ConfigurationError{Op: "set", Key: "datasets." + index + "." + field, Err: chart.ErrUnknownSetting}
	}
	if p == datasetType {
		if s, isStr := v.(string); isStr {
			t, err := chart.ParseType(s)
			if err != nil {
				return err
			}
			v = t
		}
	}
	return ds.slot(p).SetLiteral(v)
}
