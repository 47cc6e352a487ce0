package definition

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/chartwire/internal/callback"
	"github.com/dshills/chartwire/internal/chart"
	"github.com/dshills/chartwire/internal/engine"
	"github.com/dshills/chartwire/internal/logging"
	"github.com/dshills/chartwire/internal/script"
)

const salesScript = `
chart.callback("elements.bar.backgroundColor", function(ctx)
  if ctx.raw > 5 then
    return "#00ff00"
  end
end)
`

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, data := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestBuild(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"sales.toml": tomlDefinition,
		"sales.lua":  salesScript,
	})
	def, err := Load(filepath.Join(dir, "sales.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	reg := chart.NewRegistry()
	built, err := Build(def, WithRegistry(reg), WithLogger(logging.Nop()))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	c := built.Chart
	if c.ID() != "sales" || c.Kind() != chart.TypeBar {
		t.Errorf("chart = %s/%s", c.ID(), c.Type())
	}
	if got := c.Labels(); len(got) != 3 || got[0] != "jan" {
		t.Errorf("labels = %v", got)
	}
	if v, _ := c.Resolved("elements.bar.borderWidth"); v != 2.0 {
		t.Errorf("defaults override = %v, want 2", v)
	}
	if got := built.Options.Title().Text(); len(got) != 1 || got[0] != "Revenue" {
		t.Errorf("title = %v", got)
	}
	if !built.Options.Title().Display() {
		t.Error("title display not applied")
	}

	ds := built.Options.Datasets()
	if ds.Len() != 2 {
		t.Fatalf("datasets = %d, want 2", ds.Len())
	}
	if ds.At(1).Label() != "south" || len(ds.At(1).Data()) != 3 {
		t.Errorf("dataset 1 = %q %v", ds.At(1).Label(), ds.At(1).Data())
	}

	if built.Binder == nil {
		t.Fatal("script not bound")
	}
	if got := built.Binder.Bound(); len(got) != 1 || got[0] != "elements.bar.backgroundColor" {
		t.Errorf("Bound() = %v", got)
	}
	sl, err := built.Options.Slot("elements.bar.backgroundColor")
	if err != nil {
		t.Fatalf("Slot: %v", err)
	}
	v, err := sl.Evaluate(engine.DataRecord(c, 0, 1, 7.0, false))
	if err != nil || v != "#00ff00" {
		t.Errorf("scripted color = %v, %v", v, err)
	}

	if err := built.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
	if _, ok := reg.Lookup("sales"); ok {
		t.Error("chart still registered after Close")
	}
}

func TestBuildWithoutScript(t *testing.T) {
	def := &Definition{
		Type:   "line",
		Labels: []string{"a", "b"},
		Options: map[string]any{
			"scales": map[string]any{"y": map[string]any{"min": int64(0), "max": 10}},
		},
		Datasets: []map[string]any{
			{"label": "points", "data": []any{map[string]any{"x": 1, "y": 2}}},
		},
	}
	built, err := Build(def, WithLogger(logging.Nop()))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	t.Cleanup(func() { _ = built.Close() })

	if built.Binder != nil {
		t.Error("unexpected binder")
	}
	if built.Chart.ID() == "" {
		t.Error("expected generated id")
	}
	y := built.Options.Scales().Y()
	if min, ok := y.Min(); !ok || min != 0 {
		t.Errorf("y min = %v, %v", min, ok)
	}
	if max, ok := y.Max(); !ok || max != 10 {
		t.Errorf("y max = %v, %v", max, ok)
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name  string
		def   *Definition
		files map[string]string
		check func(t *testing.T, err error)
	}{
		{
			name: "nil definition",
			check: func(t *testing.T, err error) {
				if !errors.Is(err, ErrInvalidDefinition) {
					t.Errorf("error = %v", err)
				}
			},
		},
		{
			name: "invalid defaults",
			def: &Definition{Defaults: map[string]any{
				"elements": map[string]any{"bar": map[string]any{"borderWidth": -1}},
			}},
			check: func(t *testing.T, err error) {
				var cerr *callback.ConfigurationError
				if !errors.As(err, &cerr) || cerr.Op != "defaults" {
					t.Errorf("error = %v, want defaults configuration error", err)
				}
			},
		},
		{
			name: "unknown option",
			def: &Definition{Options: map[string]any{
				"plugins": map[string]any{"title": map[string]any{"sparkle": true}},
			}},
			check: func(t *testing.T, err error) {
				var verr *chart.ValidationError
				if !errors.As(err, &verr) {
					t.Errorf("error = %v, want *chart.ValidationError", err)
				}
			},
		},
		{
			name: "invalid dataset field",
			def: &Definition{Datasets: []map[string]any{
				{"label": "a", "data": "not a list"},
			}},
			check: func(t *testing.T, err error) {
				if !errors.Is(err, callback.ErrInvalidValue) {
					t.Errorf("error = %v, want ErrInvalidValue", err)
				}
			},
		},
		{
			name:  "script syntax error",
			def:   &Definition{Script: "bad.lua"},
			files: map[string]string{"bad.lua": "chart.callback(("},
			check: func(t *testing.T, err error) {
				var serr *script.ScriptError
				if !errors.As(err, &serr) {
					t.Errorf("error = %v, want *script.ScriptError", err)
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.files != nil {
				dir := writeFiles(t, tt.files)
				tt.def.Script = filepath.Join(dir, tt.def.Script)
			}
			reg := chart.NewRegistry()
			built, err := Build(tt.def, WithRegistry(reg), WithLogger(logging.Nop()))
			if err == nil {
				_ = built.Close()
				t.Fatal("expected error")
			}
			tt.check(t, err)
			if reg.Len() != 0 {
				t.Errorf("failed build left %d charts registered", reg.Len())
			}
		})
	}
}

func TestBuildDuplicateID(t *testing.T) {
	reg := chart.NewRegistry()
	first, err := Build(&Definition{ID: "dup"}, WithRegistry(reg), WithLogger(logging.Nop()))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	defer first.Close()

	_, err = Build(&Definition{ID: "dup", Source: "second.toml"}, WithRegistry(reg), WithLogger(logging.Nop()))
	if !errors.Is(err, chart.ErrAlreadyRegistered) {
		t.Errorf("error = %v, want ErrAlreadyRegistered", err)
	}
	if got, ok := reg.Get("dup"); !ok || got != first.Chart {
		t.Error("duplicate build replaced the registered chart")
	}
}
