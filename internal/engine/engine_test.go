package engine

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/dshills/chartwire/internal/callback"
	"github.com/dshills/chartwire/internal/chart"
	"github.com/dshills/chartwire/internal/native"
	"github.com/dshills/chartwire/internal/options"
)

func TestNewFixesConfig(t *testing.T) {
	e := New(Config{})
	if e.Config().TickCount != DefaultConfig().TickCount || e.Config().MaxTicks != DefaultConfig().MaxTicks {
		t.Errorf("Config() = %+v", e.Config())
	}
	if e.Metrics() != nil {
		t.Error("metrics enabled without EnableMetrics")
	}
	if NewWithDefaults().Metrics() != nil {
		t.Error("default engine collects metrics")
	}
}

func TestSnapshotNilChart(t *testing.T) {
	_, err := NewWithDefaults().Snapshot(nil)
	if !errors.Is(err, chart.ErrNilChart) || !errors.Is(err, callback.ErrConfiguration) {
		t.Errorf("Snapshot(nil) = %v", err)
	}
}

func TestSnapshotPointCallbacks(t *testing.T) {
	c, o := newChart(t, chart.TypeLine)
	ds := o.Datasets().Add("sales")
	ds.SetData(1, 2, 3)
	ds.SetBackgroundColorCallback(func(ctx *callback.Context) string {
		if v, ok := ctx.Raw().(float64); ok && v > 2 {
			return "red"
		}
		return "blue"
	})

	snap := snapshot(t, NewWithDefaults(), c)
	entry := object(t, snap.GetArray(snapDatasets), 0)
	if entry.GetString(snapLabel, "") != "sales" || entry.GetString(snapType, "") != "line" {
		t.Errorf("dataset entry = %v", entry.ToMap())
	}

	points := entry.GetArray(snapPoints)
	if len(points) != 3 {
		t.Fatalf("points = %d, want 3", len(points))
	}
	tests := []struct {
		index int
		bg    string
	}{
		{0, "blue"},
		{1, "blue"},
		{2, "red"},
	}
	for _, tt := range tests {
		p := object(t, points, tt.index)
		if got := p.GetString(native.StringKey("backgroundColor"), ""); got != tt.bg {
			t.Errorf("point %d backgroundColor = %q, want %q", tt.index, got, tt.bg)
		}
		if got := p.GetNumber(native.StringKey("radius"), 0); got != 3 {
			t.Errorf("point %d radius = %v, want 3", tt.index, got)
		}
	}

	style := entry.GetObject(snapStyle)
	if got := style.GetString(native.StringKey("backgroundColor"), ""); got != "blue" {
		t.Errorf("dataset backgroundColor = %q, want blue", got)
	}
	if got := style.GetNumber(native.StringKey("borderWidth"), 0); got != 3 {
		t.Errorf("dataset borderWidth = %v, want 3", got)
	}
}

func TestSnapshotSegments(t *testing.T) {
	c, o := newChart(t, chart.TypeLine)
	ds := o.Datasets().Add("trend")
	ds.SetData(4, 5, 6)
	ds.Segment().SetBorderColor(func(ctx *callback.Context) string {
		if ctx.P0DataIndex() == 1 {
			return "green"
		}
		return ""
	})

	snap := snapshot(t, NewWithDefaults(), c)
	segments := object(t, snap.GetArray(snapDatasets), 0).GetArray(snapSegments)
	if len(segments) != 2 {
		t.Fatalf("segments = %d, want 2", len(segments))
	}
	want, _ := c.Resolved("elements.line.borderColor")
	if got := object(t, segments, 0).GetString(native.StringKey("borderColor"), ""); got != want {
		t.Errorf("segment 0 borderColor = %q, want default %v", got, want)
	}
	second := object(t, segments, 1)
	if got := second.GetString(native.StringKey("borderColor"), ""); got != "green" {
		t.Errorf("segment 1 borderColor = %q, want green", got)
	}
	if second.GetInt(snapP0, -1) != 1 || second.GetInt(snapP1, -1) != 2 {
		t.Errorf("segment 1 = %v", second.ToMap())
	}

	off := snapshot(t, New(DefaultConfig().WithSegments(false)), c)
	if object(t, off.GetArray(snapDatasets), 0).Has(snapSegments) {
		t.Error("segments resolved with segments disabled")
	}
}

func TestSnapshotScales(t *testing.T) {
	c, o := newChart(t, chart.TypeLine)
	c.SetLabels([]string{"a", "b", "c"})
	o.Datasets().Add("sales").SetData(1, 2, 3)
	y := o.Scales().Y()
	if err := y.SetMin(0); err != nil {
		t.Fatalf("SetMin: %v", err)
	}
	y.SetMaxCallback(func(ctx *callback.Context) float64 {
		if ctx.ScaleID() == "y" {
			return 10
		}
		return 1
	})
	y.Ticks().SetCallback(func(ctx *callback.Context) string {
		return "$" + ctx.TickLabel()
	})

	snap := snapshot(t, NewWithDefaults(), c)
	scales := snap.GetObject(snapScales)

	x := scales.GetObject(native.StringKey("x"))
	if x.GetString(snapType, "") != "category" {
		t.Errorf("x type = %q, want category", x.GetString(snapType, ""))
	}
	xTicks := x.GetArray(snapTicks)
	if len(xTicks) != 3 || object(t, xTicks, 1).GetString(snapLabel, "") != "b" {
		t.Errorf("x ticks = %v", xTicks)
	}

	ys := scales.GetObject(native.StringKey("y"))
	if ys.GetNumber(snapMin, -1) != 0 || ys.GetNumber(snapMax, -1) != 10 {
		t.Errorf("y range = [%v, %v], want [0, 10]", ys.GetNumber(snapMin, -1), ys.GetNumber(snapMax, -1))
	}
	ticks := ys.GetArray(snapTicks)
	if len(ticks) != 6 {
		t.Fatalf("y ticks = %d, want 6", len(ticks))
	}
	if got := object(t, ticks, 0).GetString(snapLabel, ""); got != "$0" {
		t.Errorf("first tick = %q, want $0", got)
	}
	if got := object(t, ticks, 5).GetString(snapLabel, ""); got != "$10" {
		t.Errorf("last tick = %q, want $10", got)
	}
	if got := object(t, ticks, 0).GetObject(snapGrid).GetNumber(native.StringKey("lineWidth"), 0); got != 1 {
		t.Errorf("grid lineWidth = %v, want 1", got)
	}
}

func TestSnapshotKeepsScaleNodes(t *testing.T) {
	c, o := newChart(t, chart.TypeLine)
	o.Datasets().Add("a").SetData(1, 4)
	y := o.Scales().Y()
	e := NewWithDefaults()

	snapshot(t, e, c)
	if err := y.SetMin(-50); err != nil {
		t.Fatalf("SetMin: %v", err)
	}
	if got, ok := o.Scales().Y().Min(); !ok || got != -50 {
		t.Errorf("Min() through a fresh wrapper = %v, %v; want -50", got, ok)
	}
	ys := snapshot(t, e, c).GetObject(snapScales).GetObject(native.StringKey("y"))
	if got := ys.GetNumber(snapMin, 0); got != -50 {
		t.Errorf("snapshot y min = %v, want -50", got)
	}
	if _, ok := c.Options().Lookup(native.ParsePath("scales.x")); ok {
		t.Error("snapshot added scales.x to the configuration")
	}
}

func TestSnapshotTickPrecision(t *testing.T) {
	c, o := newChart(t, chart.TypeScatter)
	o.Datasets().Add("a").SetPoints([2]float64{0, 0.25}, [2]float64{1, 0.75})
	if err := o.Scales().Y().Ticks().SetPrecision(400); err != nil {
		t.Fatalf("SetPrecision: %v", err)
	}

	ys := snapshot(t, NewWithDefaults(), c).GetObject(snapScales).GetObject(native.StringKey("y"))
	for i, v := range ys.GetArray(snapTicks) {
		tick, _ := v.(*native.Object)
		if f := tick.GetNumber(snapValue, math.NaN()); math.IsNaN(f) || math.IsInf(f, 0) {
			t.Errorf("tick %d value = %v", i, f)
		}
	}
}

func TestSnapshotScaleExtent(t *testing.T) {
	c, o := newChart(t, chart.TypeBar)
	o.Datasets().Add("a").SetData(3, 8)
	hidden := o.Datasets().Add("b")
	hidden.SetData(100)
	if err := hidden.SetHidden(true); err != nil {
		t.Fatalf("SetHidden: %v", err)
	}
	if err := o.Scales().Y().SetBeginAtZero(true); err != nil {
		t.Fatalf("SetBeginAtZero: %v", err)
	}

	e := New(DefaultConfig().WithMaxTicks(3))
	ys := snapshot(t, e, c).GetObject(snapScales).GetObject(native.StringKey("y"))
	if ys.GetNumber(snapMin, -1) != 0 || ys.GetNumber(snapMax, -1) != 8 {
		t.Errorf("y range = [%v, %v], want [0, 8]", ys.GetNumber(snapMin, -1), ys.GetNumber(snapMax, -1))
	}
	if got := len(ys.GetArray(snapTicks)); got != 3 {
		t.Errorf("ticks = %d, want MaxTicks 3", got)
	}
}

func TestSnapshotChartOptions(t *testing.T) {
	c, o := newChart(t, chart.TypeBar)
	o.Title().SetColorCallback(func(ctx *callback.Context) string {
		if ctx.Family() == callback.FamilyChart {
			return "#123456"
		}
		return "#000"
	})
	if _, err := o.Legend().OnClick(func(*chart.Event) {}); err != nil {
		t.Fatalf("OnClick: %v", err)
	}

	opts := snapshot(t, NewWithDefaults(), c).GetObject(snapOptions)
	if v, _ := opts.Lookup(native.ParsePath("plugins.title.color")); v != "#123456" {
		t.Errorf("title color = %v, want #123456", v)
	}
	if v, ok := opts.Lookup(native.ParsePath("plugins.legend.onClick")); ok {
		t.Errorf("listener leaked into snapshot: %v", v)
	}
	if v, _ := opts.Lookup(native.ParsePath("plugins.legend.display")); v != true {
		t.Errorf("legend display = %v, want true", v)
	}
	if c.Options().GetObject(native.StringKey("plugins")).GetObject(native.StringKey("legend")).GetFunction(native.StringKey("onClick")) == nil {
		t.Error("snapshot removed the listener from the chart")
	}
}

func TestSnapshotLegend(t *testing.T) {
	t.Run("per dataset", func(t *testing.T) {
		c, o := newChart(t, chart.TypeBar)
		a := o.Datasets().Add("a")
		if err := a.SetBackgroundColor("red"); err != nil {
			t.Fatalf("SetBackgroundColor: %v", err)
		}
		o.Datasets().Add("b")

		items := snapshot(t, NewWithDefaults(), c).GetObject(snapLegend).GetArray(snapItems)
		if len(items) != 2 {
			t.Fatalf("items = %d, want 2", len(items))
		}
		first := options.LegendItemFromNative(object(t, items, 0))
		if first.Text != "a" || first.FillStyle != "red" {
			t.Errorf("first item = %+v", first)
		}
		if second := options.LegendItemFromNative(object(t, items, 1)); second.DatasetIndex != 1 {
			t.Errorf("second item = %+v", second)
		}
	})

	t.Run("per label", func(t *testing.T) {
		c, o := newChart(t, chart.TypePie)
		c.SetLabels([]string{"red", "blue"})
		ds := o.Datasets().Add("votes")
		ds.SetData(12, 19)
		ds.SetBackgroundColorCallback(func(ctx *callback.Context) string {
			return []string{"#f00", "#00f"}[ctx.DataIndex()]
		})

		items := snapshot(t, NewWithDefaults(), c).GetObject(snapLegend).GetArray(snapItems)
		if len(items) != 2 {
			t.Fatalf("items = %d, want 2", len(items))
		}
		second := options.LegendItemFromNative(object(t, items, 1))
		if second.Text != "blue" || second.FillStyle != "#00f" || second.StrokeStyle != "#fff" {
			t.Errorf("second item = %+v", second)
		}
	})

	t.Run("generated", func(t *testing.T) {
		c, o := newChart(t, chart.TypeLine)
		o.Datasets().Add("a")
		o.Legend().Labels().SetGenerateLabels(func(ctx *callback.Context) []options.LegendItem {
			return []options.LegendItem{{Text: "custom " + ctx.ChartID()}}
		})

		items := snapshot(t, NewWithDefaults(), c).GetObject(snapLegend).GetArray(snapItems)
		if len(items) != 1 {
			t.Fatalf("items = %d, want 1", len(items))
		}
		if got := options.LegendItemFromNative(object(t, items, 0)).Text; got != "custom "+c.ID() {
			t.Errorf("text = %q", got)
		}
	})
}

func TestSnapshotTooltipLabels(t *testing.T) {
	c, o := newChart(t, chart.TypeBar)
	o.Datasets().Add("sales").SetData(5, 7)
	o.Tooltip().Callbacks().SetLabel(func(ctx *callback.Context) string {
		return "value " + ctx.TickLabel()
	})

	points := object(t, snapshot(t, NewWithDefaults(), c).GetArray(snapDatasets), 0).GetArray(snapPoints)
	if got := object(t, points, 1).GetString(snapTooltip, ""); got != "value sales" {
		t.Errorf("tooltip = %q, want %q", got, "value sales")
	}
}

func TestFire(t *testing.T) {
	c, o := newChart(t, chart.TypeLine)
	e := NewWithDefaults()

	if fired, err := e.Fire(c, chart.EventClick, "click", 1, 2, nil); fired || err != nil {
		t.Errorf("Fire without listener = %v, %v", fired, err)
	}

	var got *chart.Event
	if _, err := o.OnClick(func(ev *chart.Event) { got = ev }); err != nil {
		t.Fatalf("OnClick: %v", err)
	}
	fired, err := e.Fire(c, chart.EventClick, "click", 5, 6, nil)
	if !fired || err != nil {
		t.Fatalf("Fire = %v, %v", fired, err)
	}
	if got == nil || got.X != 5 || got.Y != 6 || got.Type != "click" || got.Context.ChartID() != c.ID() {
		t.Errorf("event = %+v", got)
	}

	var item *native.Object
	if _, err := o.Legend().OnClick(func(ev *chart.Event) { item = ev.Item }); err != nil {
		t.Fatalf("Legend OnClick: %v", err)
	}
	legendItem := options.LegendItem{Text: "sales"}.Native()
	if fired, err := e.Fire(c, chart.EventLegendClick, "click", 0, 0, legendItem); !fired || err != nil {
		t.Fatalf("Fire legend = %v, %v", fired, err)
	}
	if item == nil || item.GetString(native.StringKey("text"), "") != "sales" {
		t.Errorf("legend item = %v", item)
	}
}

func TestRender(t *testing.T) {
	c, o := newChart(t, chart.TypeBar)
	o.Datasets().Add("sales").SetData(1, 2)
	e := NewWithDefaults()

	var compact bytes.Buffer
	if err := e.Render(&compact, c, true); err != nil {
		t.Fatalf("Render compact: %v", err)
	}
	if !strings.HasSuffix(compact.String(), "\n") || strings.Count(compact.String(), "\n") != 1 {
		t.Errorf("compact output spans lines: %q", compact.String())
	}

	var pretty bytes.Buffer
	if err := e.Render(&pretty, c, false); err != nil {
		t.Fatalf("Render pretty: %v", err)
	}
	parsed, err := native.Parse(pretty.Bytes())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if parsed.GetString(snapID, "") != c.ID() {
		t.Errorf("id = %q, want %q", parsed.GetString(snapID, ""), c.ID())
	}
	if got := parsed.Query("datasets.0.points.1.raw").Float(); got != 2 {
		t.Errorf("datasets.0.points.1.raw = %v, want 2", got)
	}
}

func TestSnapshotMetrics(t *testing.T) {
	c, o := newChart(t, chart.TypeScatter)
	o.Datasets().Add("pts").SetPoints([2]float64{1, 2}, [2]float64{3, 4})

	e := New(DefaultConfig().WithMetrics())
	snapshot(t, e, c)
	m := e.Metrics()
	if m.TotalResolves() == 0 {
		t.Fatal("no resolutions recorded")
	}
	stats := m.PathStats("elements.point.radius")
	if stats == nil || stats.BySource[SourceDefault] != 2 {
		t.Errorf("radius stats = %+v", stats)
	}
	m.Reset()
	if m.TotalResolves() != 0 || len(m.Paths()) != 0 {
		t.Error("Reset kept data")
	}
}
