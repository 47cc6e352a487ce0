package engine

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/dshills/chartwire/internal/callback"
	"github.com/dshills/chartwire/internal/chart"
	"github.com/dshills/chartwire/internal/native"
	"github.com/dshills/chartwire/internal/options"
)

// Snapshot property names.
const (
	snapID       = native.StringKey("id")
	snapType     = native.StringKey("type")
	snapOptions  = native.StringKey("options")
	snapLabels   = native.StringKey("labels")
	snapScales   = native.StringKey("scales")
	snapDatasets = native.StringKey("datasets")
	snapLegend   = native.StringKey("legend")
	snapItems    = native.StringKey("items")
	snapIndex    = native.StringKey("index")
	snapLabel    = native.StringKey("label")
	snapHidden   = native.StringKey("hidden")
	snapStyle    = native.StringKey("style")
	snapPoints   = native.StringKey("points")
	snapSegments = native.StringKey("segments")
	snapRaw      = native.StringKey("raw")
	snapTooltip  = native.StringKey("tooltip")
	snapAxis     = native.StringKey("axis")
	snapMin      = native.StringKey("min")
	snapMax      = native.StringKey("max")
	snapTicks    = native.StringKey("ticks")
	snapValue    = native.StringKey("value")
	snapColor    = native.StringKey("color")
	snapGrid     = native.StringKey("grid")
	snapBorder   = native.StringKey("border")
	snapP0       = native.StringKey("p0")
	snapP1       = native.StringKey("p1")
)

var (
	pathPlugins  = native.StringKey("plugins")
	pathLegend   = native.StringKey("legend")
	pathTooltip  = native.StringKey("tooltip")
	pathElements = native.StringKey("elements")
	pathSegment  = native.StringKey("segment")
)

// pointKeys are the per data point style properties of each element type.
var pointKeys = map[string][]string{
	"arc":   {"backgroundColor", "borderColor", "borderWidth", "offset"},
	"bar":   {"backgroundColor", "borderColor", "borderWidth", "borderSkipped", "borderRadius"},
	"line":  {"radius", "pointStyle", "backgroundColor", "borderColor", "borderWidth", "rotation"},
	"point": {"radius", "pointStyle", "backgroundColor", "borderColor", "borderWidth", "rotation"},
}

// styleKeys are the dataset-wide style properties of each element type.
var styleKeys = map[string][]string{
	"arc":   {"backgroundColor", "borderColor", "borderWidth"},
	"bar":   {"backgroundColor", "borderColor", "borderWidth"},
	"line":  {"backgroundColor", "borderColor", "borderWidth", "borderDash", "fill", "stepped", "tension"},
	"point": {"backgroundColor", "borderColor", "borderWidth"},
}

var segmentKeys = []string{"backgroundColor", "borderColor", "borderWidth", "borderDash"}

// Snapshot resolves every option of c for every call site and returns the
// result as a native tree.
func (e *Engine) Snapshot(c *chart.Chart) (*native.Object, error) {
	if c == nil {
		return nil, &callback.ConfigurationError{Op: "snapshot", Err: chart.ErrNilChart}
	}
	snap := native.NewObject()
	snap.SetString(snapID, c.ID())
	snap.SetString(snapType, c.Type())
	if labels := c.Labels(); len(labels) > 0 {
		if err := snap.Set(snapLabels, labels); err != nil {
			return nil, err
		}
	}

	opts, err := e.chartOptions(c)
	if err != nil {
		return nil, err
	}
	snap.SetObject(snapOptions, opts)

	datasets, err := e.datasets(c)
	if err != nil {
		return nil, err
	}
	snap.SetArray(snapDatasets, datasets)

	scales, err := e.scales(c)
	if err != nil {
		return nil, err
	}
	if scales.Len() > 0 {
		snap.SetObject(snapScales, scales)
	}

	legend, err := e.legend(c, datasets)
	if err != nil {
		return nil, err
	}
	snap.SetObject(snapLegend, legend)

	e.logger.Debug("snapshot of chart %s: %d datasets, %d scales", c.ID(), len(datasets), scales.Len())
	return snap, nil
}

// chartOptions merges the options over the chart defaults and evaluates
// chart-wide callbacks with a chart record. Callbacks evaluated elsewhere
// are replaced by their defaults.
func (e *Engine) chartOptions(c *chart.Chart) (*native.Object, error) {
	defaults := c.Defaults()
	merged := native.Merge(defaults.Clone(), c.Options())
	record := ChartRecord(c)

	for _, pattern := range options.DefaultCatalog().Paths() {
		if !chartWide(pattern) {
			continue
		}
		path := native.ParsePath(pattern)
		l := Lookup{Key: path.Last(), Defaults: path, Nodes: []*native.Object{c.Options().Node(path.Parent())}}
		v, src, err := e.value(c, l, record)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", pattern, err)
		}
		if src == SourceCallback && v != nil {
			if err := merged.Ensure(path.Parent()).Set(path.Last(), v); err != nil {
				return nil, err
			}
		}
	}
	settle(merged, defaults, nil)
	return merged, nil
}

func chartWide(pattern string) bool {
	for _, prefix := range []string{"scales.", "datasets.", "elements.", "plugins.tooltip.callbacks.", "plugins.legend.labels.generateLabels"} {
		if strings.HasPrefix(pattern, prefix) {
			return false
		}
	}
	return true
}

// settle replaces the functions left in o by the defaults at their path.
func settle(o, defaults *native.Object, path native.Path) {
	for _, name := range o.Keys() {
		key := native.StringKey(name)
		v, _ := o.Get(key)
		switch val := v.(type) {
		case *native.Function:
			if d, ok := defaults.Lookup(path.Append(key)); ok {
				_ = o.Set(key, d)
			} else {
				o.Remove(key)
			}
		case *native.Object:
			settle(val, defaults, path.Append(key))
		}
	}
}

func (e *Engine) datasets(c *chart.Chart) (native.Array, error) {
	elements := c.Options().GetObject(pathElements)
	tooltipCallbacks := c.Options().Node(native.Path{pathPlugins, pathTooltip, native.StringKey("callbacks")})
	wrapped := options.New(c).Datasets().All()

	out := make(native.Array, 0, len(wrapped))
	for _, ds := range wrapped {
		i := ds.Index()
		node := ds.Node()
		element := ds.Type().Element()
		elementNode := elements.GetObject(native.StringKey(element))

		entry := native.NewObject()
		entry.SetInt(snapIndex, i)
		entry.SetString(snapType, ds.Type().Token())
		entry.SetString(snapLabel, ds.Label())
		entry.SetBool(snapHidden, ds.Hidden())

		style, err := e.evaluate(c, styleKeys[element], "elements."+element, DatasetRecord(c, i), node, elementNode)
		if err != nil {
			return nil, err
		}
		entry.SetObject(snapStyle, style)

		pointNode := elementNode
		pointSection := element
		if element == "line" {
			pointNode = elements.GetObject(native.StringKey("point"))
			pointSection = "point"
		}
		data := ds.Data()
		points := make(native.Array, 0, len(data))
		for j, raw := range data {
			rec := DataRecord(c, i, j, raw, false)
			point, err := e.evaluate(c, pointKeys[element], "elements."+pointSection, rec, node, pointNode)
			if err != nil {
				return nil, err
			}
			point.SetInt(snapIndex, j)
			if raw != nil {
				_ = point.Set(snapRaw, raw)
			}
			if tooltipCallbacks.GetFunction(snapLabel) != nil {
				rec.SetString(callback.RecordLabel, ds.Label())
				rec.SetString(keyFormattedValue, formatRaw(raw))
				v, _, err := resolve(tooltipCallbacks, snapLabel, rec)
				if err != nil {
					return nil, err
				}
				if v != nil {
					_ = point.Set(snapTooltip, v)
				} else {
					point.SetString(snapTooltip, ds.Label()+": "+formatRaw(raw))
				}
			}
			points = append(points, point)
		}
		entry.SetArray(snapPoints, points)

		if e.config.Segments && element == "line" {
			segments, err := e.segments(c, i, node.GetObject(pathSegment), style, len(data))
			if err != nil {
				return nil, err
			}
			if len(segments) > 0 {
				entry.SetArray(snapSegments, segments)
			}
		}
		out = append(out, entry)
	}
	return out, nil
}

// evaluate resolves keys along the chain for one record.
func (e *Engine) evaluate(c *chart.Chart, keys []string, section string, record *native.Object, nodes ...*native.Object) (*native.Object, error) {
	out := native.NewObject()
	for _, k := range keys {
		v, err := e.Value(c, Chain(k, section+"."+k, nodes...), record)
		if err != nil {
			return nil, fmt.Errorf("resolve %s.%s: %w", section, k, err)
		}
		if v != nil {
			if err := out.Set(native.StringKey(k), v); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

func (e *Engine) segments(c *chart.Chart, datasetIndex int, node, style *native.Object, points int) (native.Array, error) {
	if node == nil || node.Len() == 0 {
		return nil, nil
	}
	out := make(native.Array, 0, max(points-1, 0))
	for p0 := 0; p0+1 < points; p0++ {
		rec := SegmentRecord(c, datasetIndex, p0, p0+1)
		seg := native.NewObject()
		seg.SetInt(snapP0, p0)
		seg.SetInt(snapP1, p0+1)
		for _, k := range segmentKeys {
			key := native.StringKey(k)
			v, _, err := e.value(c, Lookup{Key: key, Nodes: []*native.Object{node}}, rec)
			if err != nil {
				return nil, fmt.Errorf("resolve segment.%s: %w", k, err)
			}
			if v == nil {
				v, _ = style.Get(key)
			}
			if v != nil {
				_ = seg.Set(key, v)
			}
		}
		out = append(out, seg)
	}
	return out, nil
}

func (e *Engine) legend(c *chart.Chart, datasets native.Array) (*native.Object, error) {
	o := options.New(c)
	legend := native.NewObject()
	legend.SetBool(native.StringKey("display"), o.Legend().Display())
	legend.SetString(native.StringKey("position"), o.Legend().Position())

	labels := c.Options().Node(native.Path{pathPlugins, pathLegend, native.StringKey("labels")})
	generated, src, err := e.value(c, Lookup{Key: native.StringKey("generateLabels"), Nodes: []*native.Object{labels}}, ChartRecord(c))
	if err != nil {
		return nil, fmt.Errorf("resolve generateLabels: %w", err)
	}
	if items, ok := generated.(native.Array); ok && src == SourceCallback {
		legend.SetArray(snapItems, items)
		return legend, nil
	}

	var items native.Array
	if c.Kind().Element() == "arc" && len(datasets) > 0 {
		first, _ := datasets[0].(*native.Object)
		for i, label := range c.Labels() {
			item := options.LegendItem{Text: label, DatasetIndex: i}
			if points := first.GetArray(snapPoints); i < len(points) {
				if p, ok := points[i].(*native.Object); ok {
					item.FillStyle = p.GetString(native.StringKey("backgroundColor"), "")
					item.StrokeStyle = p.GetString(native.StringKey("borderColor"), "")
					item.LineWidth = p.GetNumber(native.StringKey("borderWidth"), 0)
				}
			}
			items = append(items, item.Native())
		}
	} else {
		for _, v := range datasets {
			ds, ok := v.(*native.Object)
			if !ok {
				continue
			}
			style := ds.GetObject(snapStyle)
			items = append(items, options.LegendItem{
				Text:         ds.GetString(snapLabel, ""),
				FillStyle:    style.GetString(native.StringKey("backgroundColor"), ""),
				StrokeStyle:  style.GetString(native.StringKey("borderColor"), ""),
				LineWidth:    style.GetNumber(native.StringKey("borderWidth"), 0),
				Hidden:       ds.GetBool(snapHidden, false),
				DatasetIndex: ds.GetInt(snapIndex, 0),
			}.Native())
		}
	}
	if items == nil {
		items = native.Array{}
	}
	legend.SetArray(snapItems, items)
	return legend, nil
}

func (e *Engine) scales(c *chart.Chart) (*native.Object, error) {
	scales := options.New(c).ScalesView()
	ids := scales.IDs()
	if !c.Kind().Radial() {
		for _, id := range []string{"x", "y"} {
			if !lo.Contains(ids, id) {
				ids = append(ids, id)
			}
		}
	}

	out := native.NewObject()
	for _, id := range ids {
		scale, err := e.scale(c, scales.Scale(id), id)
		if err != nil {
			return nil, err
		}
		out.SetObject(native.StringKey(id), scale)
	}
	return out, nil
}

func (e *Engine) scale(c *chart.Chart, sc *options.Scale, id string) (*native.Object, error) {
	node := sc.Node()
	ticksNode := node.GetObject(native.StringKey("ticks"))
	gridNode := node.GetObject(native.StringKey("grid"))
	borderNode := node.GetObject(native.StringKey("border"))
	axis := axisOf(id)

	entry := native.NewObject()
	entry.SetString(snapID, id)
	entry.SetString(snapAxis, axis)

	labels := c.Labels()
	category := axis == options.New(c).IndexAxis() && len(labels) > 0 && !c.Kind().Radial() && c.Kind() != chart.TypeScatter && c.Kind() != chart.TypeBubble
	if category {
		entry.SetString(snapType, "category")
	} else {
		entry.SetString(snapType, sc.Type())
	}

	rec := ScaleRecord(c, id)
	border, err := e.evaluate(c, []string{"dash"}, "scale.border", rec, borderNode)
	if err != nil {
		return nil, err
	}
	entry.SetObject(snapBorder, border)

	type tick struct {
		value float64
		label string
	}
	var ticks []tick
	if category {
		for i, l := range labels {
			ticks = append(ticks, tick{float64(i), l})
		}
		entry.SetNumber(snapMin, 0)
		entry.SetNumber(snapMax, float64(len(labels)-1))
	} else {
		low, high, err := e.bounds(c, sc, id, axis, rec)
		if err != nil {
			return nil, err
		}
		entry.SetNumber(snapMin, low)
		entry.SetNumber(snapMax, high)
		for _, v := range e.tickValues(sc, low, high) {
			ticks = append(ticks, tick{v, formatNumber(v)})
		}
	}

	out := make(native.Array, 0, len(ticks))
	for i, t := range ticks {
		trec := TickRecord(c, id, i, t.value, t.label)
		entryTick := native.NewObject()
		entryTick.SetNumber(snapValue, t.value)

		label, _, err := e.value(c, Lookup{Key: native.StringKey("callback"), Nodes: []*native.Object{ticksNode}}, trec)
		if err != nil {
			return nil, fmt.Errorf("resolve scales.%s.ticks.callback: %w", id, err)
		}
		if label == nil {
			label = t.label
		}
		if err := entryTick.Set(snapLabel, label); err != nil {
			return nil, err
		}

		color, err := e.Value(c, Chain("color", "scale.ticks.color", ticksNode), trec)
		if err != nil {
			return nil, err
		}
		if color != nil {
			_ = entryTick.Set(snapColor, color)
		}
		grid, err := e.evaluate(c, []string{"color", "lineWidth"}, "scale.grid", trec, gridNode)
		if err != nil {
			return nil, err
		}
		entryTick.SetObject(snapGrid, grid)
		out = append(out, entryTick)
	}
	entry.SetArray(snapTicks, out)
	return entry, nil
}

// axisOf returns the axis a scale id measures: ids starting with x are
// horizontal, everything else vertical.
func axisOf(id string) string {
	if strings.HasPrefix(id, "x") {
		return "x"
	}
	return "y"
}

// bounds resolves the scale range: min and max (literal or callback) win,
// otherwise the data extent widened by suggestedMin/Max and beginAtZero.
func (e *Engine) bounds(c *chart.Chart, sc *options.Scale, id, axis string, rec *native.Object) (float64, float64, error) {
	dataMin, dataMax, found := extent(c, id, axis)
	if !found {
		dataMin, dataMax = 0, 1
	}
	if v, ok := sc.SuggestedMin(); ok {
		dataMin = math.Min(dataMin, v)
	}
	if v, ok := sc.SuggestedMax(); ok {
		dataMax = math.Max(dataMax, v)
	}
	if sc.BeginAtZero() {
		dataMin = math.Min(dataMin, 0)
		dataMax = math.Max(dataMax, 0)
	}

	low, high := dataMin, dataMax
	minV, err := e.Value(c, Chain("min", "", sc.Node()), rec)
	if err != nil {
		return 0, 0, fmt.Errorf("resolve scales.%s.min: %w", id, err)
	}
	if f, ok := minV.(float64); ok {
		low = f
	}
	maxV, err := e.Value(c, Chain("max", "", sc.Node()), rec)
	if err != nil {
		return 0, 0, fmt.Errorf("resolve scales.%s.max: %w", id, err)
	}
	if f, ok := maxV.(float64); ok {
		high = f
	}
	if high <= low {
		high = low + 1
	}
	return low, high, nil
}

// extent returns the range of the visible data bound to scale id.
func extent(c *chart.Chart, id, axis string) (low, high float64, found bool) {
	low, high = math.Inf(1), math.Inf(-1)
	o := options.New(c)
	indexAxis := o.IndexAxis()
	radial := c.Kind().Radial()
	for _, ds := range o.Datasets().All() {
		if ds.Hidden() {
			continue
		}
		bound := ds.YAxisID()
		if axis == "x" {
			bound = ds.XAxisID()
		}
		if bound == "" {
			bound = axis
		}
		if radial {
			bound = id
		}
		if bound != id {
			continue
		}
		for _, raw := range ds.Data() {
			var v float64
			switch r := raw.(type) {
			case float64:
				if axis == indexAxis && !radial {
					continue
				}
				v = r
			case *native.Object:
				f, ok := r.Get(native.StringKey(axis))
				if !ok {
					continue
				}
				if v, ok = f.(float64); !ok {
					continue
				}
			default:
				continue
			}
			low, high = math.Min(low, v), math.Max(high, v)
			found = true
		}
	}
	return low, high, found
}

// maxTickPrecision is the most decimal places a float64 tick can keep.
const maxTickPrecision = 15

func (e *Engine) tickValues(sc *options.Scale, low, high float64) []float64 {
	step, ok := sc.Ticks().StepSize()
	if !ok || step <= 0 {
		step = (high - low) / float64(e.config.TickCount)
	}
	precision, hasPrecision := sc.Ticks().Precision()
	precision = max(0, min(precision, maxTickPrecision))

	var values []float64
	for i := 0; i < e.config.MaxTicks; i++ {
		v := low + float64(i)*step
		if v > high+step*1e-9 {
			break
		}
		if hasPrecision {
			p := math.Pow(10, float64(precision))
			v = math.Round(v*p) / p
		}
		values = append(values, v)
	}
	return values
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(math.Round(v*1e9)/1e9, 'f', -1, 64)
}

func formatRaw(raw any) string {
	switch r := raw.(type) {
	case float64:
		return formatNumber(r)
	case *native.Object:
		return "(" + formatNumber(r.GetNumber(keyX, 0)) + ", " + formatNumber(r.GetNumber(keyY, 0)) + ")"
	case nil:
		return ""
	default:
		return fmt.Sprint(r)
	}
}
