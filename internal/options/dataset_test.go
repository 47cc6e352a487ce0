package options

import (
	"testing"

	"github.com/dshills/chartwire/internal/callback"
	"github.com/dshills/chartwire/internal/chart"
)

func TestDatasetsAdd(t *testing.T) {
	o := newOptions(t, chart.TypeBar)
	ds := o.Datasets()
	a := ds.Add("Revenue")
	b := ds.Add("Cost")
	if a.Index() != 0 || b.Index() != 1 || ds.Len() != 2 {
		t.Fatalf("indexes = %d, %d; len = %d", a.Index(), b.Index(), ds.Len())
	}
	b.SetData(1, 2, 3)
	if got := ds.At(1).Values(); len(got) != 3 || got[2] != 3 {
		t.Errorf("Values() = %v", got)
	}
	if got := ds.At(0).Label(); got != "Revenue" {
		t.Errorf("Label() = %q", got)
	}
	if ds.At(5) != nil {
		t.Error("At(5) != nil")
	}
	if got := len(ds.All()); got != 2 {
		t.Errorf("len(All()) = %d", got)
	}
}

func TestDatasetElementDefaults(t *testing.T) {
	tests := []struct {
		typ   chart.Type
		width float64
	}{
		{chart.TypeLine, 3},
		{chart.TypeBar, 0},
		{chart.TypePie, 2},
		{chart.TypeScatter, 1},
	}
	for _, tt := range tests {
		t.Run(tt.typ.Token(), func(t *testing.T) {
			o := newOptions(t, tt.typ)
			d := o.Datasets().Add("a")
			if got := d.BorderWidth(); got != tt.width {
				t.Errorf("BorderWidth() = %v, want %v", got, tt.width)
			}
		})
	}

	bar := newOptions(t, chart.TypeBar).Datasets().Add("bars")
	if got := bar.BorderSkipped(); got != callback.BorderSkippedStart {
		t.Errorf("bar dataset BorderSkipped() = %q, want start", got)
	}

	t.Run("mixed", func(t *testing.T) {
		o := newOptions(t, chart.TypeLine)
		d := o.Datasets().Add("bars")
		d.SetData(4)
		d.SetBorderWidthCallback(func(*callback.Context) float64 { return -5 })
		if err := d.SetType(chart.TypeBar); err != nil {
			t.Fatalf("SetType: %v", err)
		}
		if d.slot(datasetBorderWidth).Callback() == nil {
			t.Fatal("callback lost on SetType")
		}
		sl, err := o.Slot("datasets.0.borderWidth")
		if err != nil {
			t.Fatalf("Slot: %v", err)
		}
		rec := record(o, callback.TypeData, map[string]any{"datasetIndex": 0, "dataIndex": 0, "raw": 4})
		if got := evaluate(t, sl, rec); got != 0.0 {
			t.Errorf("invalid result = %v, want bar default 0", got)
		}
		d.SetBorderWidthCallback(nil)
		if got := d.BorderWidth(); got != 0 {
			t.Errorf("BorderWidth() = %v, want bar default 0", got)
		}
	})
}

func TestDatasetCallbackContext(t *testing.T) {
	o := newOptions(t, chart.TypeBar)
	d := o.Datasets().Add("bars")
	d.SetData(5, -3, 8)

	var seen []callback.Family
	d.SetBackgroundColorCallback(func(ctx *callback.Context) string {
		seen = append(seen, ctx.Family())
		raw, _ := ctx.Raw().(float64)
		if raw < 0 {
			return "red"
		}
		return "green"
	})
	sl, err := o.Slot("datasets.0.backgroundColor")
	if err != nil {
		t.Fatalf("Slot: %v", err)
	}
	rec := record(o, callback.TypeData, map[string]any{"datasetIndex": 0, "dataIndex": 1, "raw": -3})
	if got := evaluate(t, sl, rec); got != "red" {
		t.Errorf("color = %v, want red", got)
	}
	if len(seen) != 1 || seen[0] != callback.FamilyDataset {
		t.Errorf("families = %v", seen)
	}
}

func TestDatasetLiterals(t *testing.T) {
	o := newOptions(t, chart.TypeLine)
	d := o.Datasets().Add("")
	if err := d.SetType(chart.TypeBar); err != nil {
		t.Fatalf("SetType: %v", err)
	}
	if d.Type() != chart.TypeBar {
		t.Errorf("Type() = %v, want bar", d.Type())
	}
	if other := o.Datasets().Add(""); other.Type() != chart.TypeLine {
		t.Errorf("unset Type() = %v, want chart type", other.Type())
	}
	if err := d.SetOrder(2); err != nil || d.Order() != 2 {
		t.Errorf("Order() = %d, %v", d.Order(), err)
	}
	if err := d.SetHidden(true); err != nil || !d.Hidden() {
		t.Errorf("Hidden() = %v, %v", d.Hidden(), err)
	}
	if err := d.SetYAxisID("right"); err != nil || d.YAxisID() != "right" {
		t.Errorf("YAxisID() = %q, %v", d.YAxisID(), err)
	}
	if err := d.SetFill(callback.FillNamed("sideways")); err == nil {
		t.Error("SetFill(invalid) succeeded")
	}
}

func TestSegmentCallback(t *testing.T) {
	o := newOptions(t, chart.TypeLine)
	d := o.Datasets().Add("trend")
	d.SetData(1, 3, 2)
	d.Segment().SetBorderColor(func(ctx *callback.Context) string {
		if ctx.Family() != callback.FamilySegment {
			return ""
		}
		if ctx.P1DataIndex() > ctx.P0DataIndex() && ctx.P0DataIndex() == 1 {
			return "red"
		}
		return "blue"
	})
	sl, ok := d.Segment().Slot("borderColor")
	if !ok {
		t.Fatal("Slot(borderColor) not found")
	}
	rec := record(o, callback.TypeSegment, map[string]any{"datasetIndex": 0, "p0DataIndex": 1, "p1DataIndex": 2})
	if got := evaluate(t, sl, rec); got != "red" {
		t.Errorf("segment color = %v, want red", got)
	}

	// Unset segment properties resolve to the line element default.
	width, _ := d.Segment().Slot("borderWidth")
	if got := evaluate(t, width, rec); got != 3.0 {
		t.Errorf("segment width = %v, want 3", got)
	}
	if _, ok := d.Segment().Slot("tension"); ok {
		t.Error("Slot(tension) found on segment")
	}
}
