package script

import (
	"sort"
	"sync"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/chartwire/internal/callback"
	"github.com/dshills/chartwire/internal/chart"
	"github.com/dshills/chartwire/internal/logging"
	"github.com/dshills/chartwire/internal/native"
	"github.com/dshills/chartwire/internal/options"
)

// ModuleName is the global table scripts use to reach their chart.
const ModuleName = "chart"

// Binder exposes one chart's options to the scripts of a State.
type Binder struct {
	state  *State
	opts   *options.Options
	logger *logging.Logger

	mu       sync.Mutex
	bound    map[string]binding
	handlers []chart.HandlerID
}

// binding is a slot and the thunk a script installed in it.
type binding struct {
	slot *callback.Slot
	fn   *native.Function
}

// NewBinder installs the chart module for o into state.
func NewBinder(state *State, o *options.Options) *Binder {
	b := &Binder{
		state:  state,
		opts:   o,
		logger: state.logger.WithField("chart", o.Chart().ID()),
		bound:  make(map[string]binding),
	}
	state.RegisterModule(ModuleName, map[string]lua.LGFunction{
		"callback": b.luaCallback,
		"set":      b.luaSet,
		"get":      b.luaGet,
		"on":       b.luaOn,
		"off":      b.luaOff,
	}, map[string]any{
		"id":   o.Chart().ID(),
		"type": o.Chart().Type(),
	})
	return b
}

// LoadFile runs a script file.
func (b *Binder) LoadFile(path string) error {
	if err := b.state.DoFile(path); err != nil {
		return &ScriptError{Source: path, Err: err}
	}
	return nil
}

// LoadString runs a chunk of script code.
func (b *Binder) LoadString(code string) error {
	if err := b.state.DoString(code); err != nil {
		return &ScriptError{Source: "<string>", Err: err}
	}
	return nil
}

// Bound returns the paths holding Lua callbacks, sorted.
func (b *Binder) Bound() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	paths := make([]string, 0, len(b.bound))
	for p := range b.bound {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Close removes the callbacks and handlers scripts added and closes the
// state. A path rebound from Go after the script bound it keeps the Go
// callback.
func (b *Binder) Close() error {
	b.mu.Lock()
	for path, bd := range b.bound {
		if bd.slot.Function() == bd.fn {
			bd.slot.SetCallback(nil)
		}
		delete(b.bound, path)
	}
	for _, id := range b.handlers {
		b.opts.Chart().Listeners().Remove(id)
	}
	b.handlers = nil
	b.mu.Unlock()
	return b.state.Close()
}

// wrap turns a Lua function into a callback for path. Errors degrade to the
// slot default through a nil result.
func (b *Binder) wrap(path string, fn *lua.LFunction) callback.Func {
	return func(ctx *callback.Context) any {
		results, err := b.state.Invoke(fn, ContextMap(ctx))
		if err != nil {
			b.logger.Warn("lua callback %s: %v", path, err)
			return nil
		}
		if len(results) == 0 {
			return nil
		}
		return results[0]
	}
}

// chart.callback(path, fn) stores fn in the slot for path; a nil fn removes
// the callback.
func (b *Binder) luaCallback(L *lua.LState) int {
	path := L.CheckString(1)
	slot, err := b.opts.Slot(path)
	if err != nil {
		L.RaiseError("%v", err)
		return 0
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if L.Get(2) == lua.LNil {
		slot.SetCallback(nil)
		delete(b.bound, path)
		return 0
	}
	fn := L.CheckFunction(2)
	slot.SetCallback(b.wrap(path, fn))
	b.bound[path] = binding{slot: slot, fn: slot.Function()}
	b.logger.Debug("bound lua callback %s", path)
	return 0
}

// chart.set(path, value) stores a literal.
func (b *Binder) luaSet(L *lua.LState) int {
	path := L.CheckString(1)
	value := b.state.bridge.ToGoValue(L.Get(2))
	if err := b.opts.Set(path, value); err != nil {
		L.RaiseError("%v", err)
		return 0
	}
	b.mu.Lock()
	delete(b.bound, path)
	b.mu.Unlock()
	return 0
}

// chart.get(path) returns the literal at path, or the chart default.
func (b *Binder) luaGet(L *lua.LState) int {
	path := L.CheckString(1)
	v, ok := b.opts.Node().Lookup(native.ParsePath(path))
	if _, isFn := v.(*native.Function); !ok || isFn {
		v, _ = b.opts.Chart().Resolved(path)
	}
	L.Push(b.state.bridge.ToLuaValue(v))
	return 1
}

// chart.on(event, fn) adds an event handler and returns its id.
func (b *Binder) luaOn(L *lua.LState) int {
	family, err := chart.ParseEventFamily(L.CheckString(1))
	if err != nil {
		L.RaiseError("%v", err)
		return 0
	}
	fn := L.CheckFunction(2)
	id, err := b.opts.Chart().Listeners().Add(family, func(ev *chart.Event) {
		arg := map[string]any{
			"family": ev.Family.String(),
			"type":   ev.Type,
			"x":      ev.X,
			"y":      ev.Y,
			"chart":  ev.Context.ChartID(),
		}
		if ev.Item != nil {
			arg["item"] = ev.Item.ToMap()
		}
		if _, err := b.state.Invoke(fn, arg); err != nil {
			b.logger.Warn("lua %s handler: %v", family, err)
		}
	})
	if err != nil {
		L.RaiseError("%v", err)
		return 0
	}

	b.mu.Lock()
	b.handlers = append(b.handlers, id)
	b.mu.Unlock()
	L.Push(lua.LNumber(id))
	return 1
}

// chart.off(id) removes a handler added with chart.on.
func (b *Binder) luaOff(L *lua.LState) int {
	id := chart.HandlerID(L.CheckInt64(1))
	removed := b.opts.Chart().Listeners().Remove(id)

	b.mu.Lock()
	for i, h := range b.handlers {
		if h == id {
			b.handlers = append(b.handlers[:i], b.handlers[i+1:]...)
			break
		}
	}
	b.mu.Unlock()
	L.Push(lua.LBool(removed))
	return 1
}
