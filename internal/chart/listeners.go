package chart

import (
	"sync"

	"github.com/samber/lo"

	"github.com/dshills/chartwire/internal/callback"
	"github.com/dshills/chartwire/internal/native"
)

// EventFamily is a kind of chart interaction with its own native listener.
type EventFamily uint8

const (
	// EventClick fires on clicks inside the chart.
	EventClick EventFamily = iota
	// EventHover fires on pointer movement inside the chart.
	EventHover
	// EventLegendClick fires on clicks on a legend item.
	EventLegendClick
	// EventLegendEnter fires when the pointer enters a legend item.
	EventLegendEnter
	// EventLegendLeave fires when the pointer leaves a legend item.
	EventLegendLeave

	eventFamilyCount
)

var eventFamilies = []EventFamily{EventClick, EventHover, EventLegendClick, EventLegendEnter, EventLegendLeave}

// String returns the family token used by scripts and definitions.
func (f EventFamily) String() string {
	switch f {
	case EventClick:
		return "click"
	case EventHover:
		return "hover"
	case EventLegendClick:
		return "legendClick"
	case EventLegendEnter:
		return "legendEnter"
	case EventLegendLeave:
		return "legendLeave"
	default:
		return "unknown"
	}
}

// ParseEventFamily returns the family for a token.
func ParseEventFamily(token string) (EventFamily, error) {
	f, ok := lo.Find(eventFamilies, func(f EventFamily) bool { return f.String() == token })
	if !ok {
		return 0, configError("event", token, ErrUnknownEvent)
	}
	return f, nil
}

// Location returns the options path and key of the family's native listener.
func (f EventFamily) Location() (native.Path, native.Key) {
	legend := native.Path{native.StringKey("plugins"), native.StringKey("legend")}
	switch f {
	case EventClick:
		return nil, native.StringKey("onClick")
	case EventHover:
		return nil, native.StringKey("onHover")
	case EventLegendClick:
		return legend, native.StringKey("onClick")
	case EventLegendEnter:
		return legend, native.StringKey("onHover")
	case EventLegendLeave:
		return legend, native.StringKey("onLeave")
	default:
		return nil, nil
	}
}

// Event is a chart interaction delivered to handlers.
type Event struct {
	// Family is the interaction kind.
	Family EventFamily
	// Context is the chart-level call-site context.
	Context *callback.Context
	// Type is the native event type (e.g. "click", "mousemove").
	Type string
	// X and Y are the pointer position relative to the canvas.
	X, Y float64
	// Item is the legend item for legend events, or nil.
	Item *native.Object
}

// Handler receives chart events.
type Handler func(ev *Event)

// HandlerID identifies a registered handler.
type HandlerID uint64

type registration struct {
	id      HandlerID
	handler Handler
}

type gate struct {
	handlers []registration
	attached bool
}

// Listeners keeps one reference counted gate per event family. The native
// listener for a family is installed when its first handler is added and
// removed with its last handler.
type Listeners struct {
	mu     sync.Mutex
	chart  *Chart
	nextID HandlerID
	gates  [eventFamilyCount]gate
}

func newListeners(c *Chart) *Listeners {
	return &Listeners{chart: c}
}

// Add registers h for family f and returns its id.
func (l *Listeners) Add(f EventFamily, h Handler) (HandlerID, error) {
	if f >= eventFamilyCount {
		return 0, configError("listen", f.String(), ErrUnknownEvent)
	}
	if h == nil {
		return 0, configError("listen", f.String(), ErrNilHandler)
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	l.nextID++
	id := l.nextID
	g := &l.gates[f]
	g.handlers = append(g.handlers, registration{id: id, handler: h})
	if len(g.handlers) == 1 {
		l.attach(f)
	}
	return id, nil
}

// Remove unregisters a handler. It reports whether the id was registered.
func (l *Listeners) Remove(id HandlerID) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for f := range l.gates {
		g := &l.gates[f]
		for i, r := range g.handlers {
			if r.id != id {
				continue
			}
			g.handlers = append(g.handlers[:i:i], g.handlers[i+1:]...)
			if len(g.handlers) == 0 {
				l.detach(EventFamily(f))
			}
			return true
		}
	}
	return false
}

// Count returns the number of handlers for f.
func (l *Listeners) Count(f EventFamily) int {
	if f >= eventFamilyCount {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.gates[f].handlers)
}

// Attached reports whether the native listener for f is installed.
func (l *Listeners) Attached(f EventFamily) bool {
	if f >= eventFamilyCount {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.gates[f].attached
}

func (l *Listeners) reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	for f := range l.gates {
		l.gates[f].handlers = nil
		l.detach(EventFamily(f))
	}
}

// attach installs the native listener. Callers hold l.mu.
func (l *Listeners) attach(f EventFamily) {
	g := &l.gates[f]
	if g.attached {
		return
	}
	path, key := f.Location()
	node := l.chart.Options().Ensure(path)
	node.SetFunction(key, native.NewFunction(f, func(args ...any) (any, error) {
		return nil, l.dispatch(f, args...)
	}))
	g.attached = true
	l.chart.logger.Debug("attached %s listener", f)
}

// detach removes the native listener. Callers hold l.mu.
func (l *Listeners) detach(f EventFamily) {
	g := &l.gates[f]
	if !g.attached {
		return
	}
	path, key := f.Location()
	if node := l.chart.Options().Node(path); node != nil {
		node.Remove(key)
	}
	g.attached = false
	l.chart.logger.Debug("detached %s listener", f)
}

// dispatch is the native listener body: args[0] is the event record and,
// for legend events, args[1] is the legend item.
func (l *Listeners) dispatch(f EventFamily, args ...any) error {
	var record *native.Object
	if len(args) > 0 {
		record, _ = args[0].(*native.Object)
	}
	ctx, err := callback.MarshalAs(l.chart.Charts(), callback.FamilyChart, record)
	if err != nil {
		return err
	}
	ev := &Event{
		Family:  f,
		Context: ctx,
		Type:    record.GetString(native.StringKey("type"), f.String()),
		X:       record.GetNumber(native.StringKey("x"), 0),
		Y:       record.GetNumber(native.StringKey("y"), 0),
	}
	if len(args) > 1 {
		ev.Item, _ = args[1].(*native.Object)
	}

	l.mu.Lock()
	handlers := append([]registration(nil), l.gates[f].handlers...)
	l.mu.Unlock()

	for _, r := range handlers {
		l.call(r, ev)
	}
	return nil
}

func (l *Listeners) call(r registration, ev *Event) {
	defer func() {
		if p := recover(); p != nil {
			l.chart.logger.Warn("%s handler %d panicked: %v", ev.Family, r.id, p)
		}
	}()
	r.handler(ev)
}
