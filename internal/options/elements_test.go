package options

import (
	"testing"

	"github.com/dshills/chartwire/internal/callback"
	"github.com/dshills/chartwire/internal/chart"
)

func TestPointRadiusCallback(t *testing.T) {
	o := newOptions(t, chart.TypeLine)
	point := o.Elements().Point()
	if got := point.Radius(); got != 3 {
		t.Fatalf("default Radius() = %v, want 3", got)
	}

	point.SetRadiusCallback(func(ctx *callback.Context) float64 {
		if ctx.DataIndex() == 2 {
			return -5
		}
		return float64(ctx.DataIndex() + 1)
	})
	sl := point.slot(pointRadius)
	if sl.State() != callback.StateCallback {
		t.Fatalf("State() = %v, want callback", sl.State())
	}

	tests := []struct {
		index int
		want  float64
	}{
		{0, 1},
		{1, 2},
		{2, 3}, // negative result falls back to the default
	}
	for _, tt := range tests {
		rec := record(o, callback.TypeData, map[string]any{"datasetIndex": 0, "dataIndex": tt.index})
		if got := evaluate(t, sl, rec); got != tt.want {
			t.Errorf("radius at %d = %v, want %v", tt.index, got, tt.want)
		}
	}

	if err := point.SetRadius(6); err != nil {
		t.Fatalf("SetRadius: %v", err)
	}
	if sl.State() != callback.StateLiteral || point.Radius() != 6 {
		t.Errorf("literal did not replace callback: state=%v radius=%v", sl.State(), point.Radius())
	}
}

func TestPointCallbackPanicUsesDefault(t *testing.T) {
	o := newOptions(t, chart.TypeScatter)
	point := o.Elements().Point()
	point.SetHoverRadiusCallback(func(*callback.Context) float64 { panic("boom") })
	got := evaluate(t, point.slot(pointHoverRadius), record(o, callback.TypeData, nil))
	if got != 4.0 {
		t.Errorf("hoverRadius = %v, want default 4", got)
	}
}

func TestBarBorderSkipped(t *testing.T) {
	o := newOptions(t, chart.TypeBar)
	bar := o.Elements().Bar()
	if got := bar.BorderSkipped(); got != callback.BorderSkippedStart {
		t.Errorf("default BorderSkipped() = %q, want start", got)
	}

	tests := []struct {
		value callback.BorderSkipped
		wire  any
	}{
		{callback.BorderSkippedOff, false},
		{callback.BorderSkippedAll, true},
		{callback.BorderSkippedBottom, "bottom"},
	}
	for _, tt := range tests {
		t.Run(string(tt.value), func(t *testing.T) {
			if err := bar.SetBorderSkipped(tt.value); err != nil {
				t.Fatalf("SetBorderSkipped: %v", err)
			}
			if got, _ := bar.Node().Get(barBorderSkipped); got != tt.wire {
				t.Errorf("native = %v (%T), want %v", got, got, tt.wire)
			}
			if got := bar.BorderSkipped(); got != tt.value {
				t.Errorf("BorderSkipped() = %q, want %q", got, tt.value)
			}
		})
	}

	if err := bar.SetBorderSkipped("diagonal"); err == nil {
		t.Error("SetBorderSkipped(diagonal) succeeded")
	}

	bar.SetBorderSkippedCallback(func(ctx *callback.Context) callback.BorderSkipped {
		if ctx.DataIndex()%2 == 0 {
			return callback.BorderSkippedAll
		}
		return callback.BorderSkippedOff
	})
	sl := bar.slot(barBorderSkipped)
	if got := evaluate(t, sl, record(o, callback.TypeData, map[string]any{"dataIndex": 0})); got != true {
		t.Errorf("even bar = %v, want true", got)
	}
	if got := evaluate(t, sl, record(o, callback.TypeData, map[string]any{"dataIndex": 1})); got != false {
		t.Errorf("odd bar = %v, want false", got)
	}
}

func TestLineFillAndStepped(t *testing.T) {
	o := newOptions(t, chart.TypeLine)
	line := o.Elements().Line()

	tests := []struct {
		name string
		fill callback.Fill
		wire any
	}{
		{"bool", callback.FillBool(true), true},
		{"absolute", callback.FillDataset(2), 2.0},
		{"relative", callback.FillRelative(-1), "-1"},
		{"forward", callback.FillRelative(1), "+1"},
		{"named", callback.FillNamed(callback.FillOrigin), "origin"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := line.SetFill(tt.fill); err != nil {
				t.Fatalf("SetFill: %v", err)
			}
			if got, _ := line.Node().Get(lineFill); got != tt.wire {
				t.Errorf("native fill = %v (%T), want %v", got, got, tt.wire)
			}
			if got := line.Fill(); got != tt.fill {
				t.Errorf("Fill() = %+v, want %+v", got, tt.fill)
			}
		})
	}
	if err := line.SetFill(callback.FillRelative(0)); err == nil {
		t.Error("SetFill(relative 0) succeeded")
	}

	if got := line.Stepped(); got != callback.SteppedOff {
		t.Errorf("default Stepped() = %q", got)
	}
	line.SetSteppedCallback(func(*callback.Context) callback.Stepped { return callback.SteppedMiddle })
	if got := evaluate(t, line.slot(lineStepped), record(o, callback.TypeDataset, nil)); got != "middle" {
		t.Errorf("stepped = %v, want middle", got)
	}
}

func TestLineBorderDash(t *testing.T) {
	o := newOptions(t, chart.TypeLine)
	line := o.Elements().Line()
	if got := line.BorderDash(); len(got) != 0 {
		t.Errorf("default BorderDash() = %v", got)
	}
	if err := line.SetBorderDash(4, 2); err != nil {
		t.Fatalf("SetBorderDash: %v", err)
	}
	if got := line.BorderDash(); len(got) != 2 || got[0] != 4 || got[1] != 2 {
		t.Errorf("BorderDash() = %v", got)
	}
	if err := line.SetBorderDash(-1); err == nil {
		t.Error("SetBorderDash(-1) succeeded")
	}
}

func TestArcDefaults(t *testing.T) {
	o := newOptions(t, chart.TypePie)
	arc := o.Elements().Arc()
	if got := arc.BorderColor(); got != "#fff" {
		t.Errorf("BorderColor() = %q, want #fff", got)
	}
	if got := arc.BorderAlign(); got != "center" {
		t.Errorf("BorderAlign() = %q, want center", got)
	}
	arc.SetOffsetCallback(func(ctx *callback.Context) float64 {
		if ctx.Active() {
			return 10
		}
		return 0
	})
	got := evaluate(t, arc.slot(arcOffset), record(o, callback.TypeData, map[string]any{"active": true}))
	if got != 10.0 {
		t.Errorf("active offset = %v, want 10", got)
	}
}
