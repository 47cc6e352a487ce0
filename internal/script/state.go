package script

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/chartwire/internal/logging"
)

// Default limits for a State.
const (
	DefaultExecutionTimeout = 5 * time.Second
	DefaultCallTimeout      = 250 * time.Millisecond
	DefaultCallStackSize    = 256
)

// State wraps a sandboxed gopher-lua state.
//
// gopher-lua's LState is not goroutine-safe; State serializes every entry
// point with a mutex. Go functions invoked from Lua run with the mutex held
// and must not call back into the State.
type State struct {
	l *lua.LState

	mu sync.Mutex

	executionTimeout time.Duration
	callTimeout      time.Duration
	callStackSize    int

	bridge  *Bridge
	sandbox *Sandbox
	logger  *logging.Logger

	closed bool
}

// StateOption configures a State.
type StateOption func(*State)

// WithExecutionTimeout bounds DoFile and DoString.
func WithExecutionTimeout(d time.Duration) StateOption {
	return func(s *State) {
		if d > 0 {
			s.executionTimeout = d
		}
	}
}

// WithCallTimeout bounds each callback invocation.
func WithCallTimeout(d time.Duration) StateOption {
	return func(s *State) {
		if d > 0 {
			s.callTimeout = d
		}
	}
}

// WithCallStackSize limits Lua call depth.
func WithCallStackSize(n int) StateOption {
	return func(s *State) {
		if n > 0 {
			s.callStackSize = n
		}
	}
}

// WithLogger sets the logger receiving script output and errors.
func WithLogger(l *logging.Logger) StateOption {
	return func(s *State) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewState creates a sandboxed Lua state.
func NewState(opts ...StateOption) *State {
	s := &State{
		executionTimeout: DefaultExecutionTimeout,
		callTimeout:      DefaultCallTimeout,
		callStackSize:    DefaultCallStackSize,
		logger:           logging.Component("script"),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.l = lua.NewState(lua.Options{
		SkipOpenLibs:  true,
		CallStackSize: s.callStackSize,
	})
	openSafeLibraries(s.l)

	s.bridge = NewBridge(s.l)
	s.sandbox = NewSandbox(s.l, s.logger)
	s.sandbox.Install()
	return s
}

// openSafeLibraries opens base, table, string and math. io, os, debug,
// package and coroutine stay closed.
func openSafeLibraries(L *lua.LState) {
	for _, lib := range []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		L.Push(L.NewFunction(lib.fn))
		L.Push(lua.LString(lib.name))
		L.Call(1, 0)
	}
}

// DoFile runs a Lua file.
func (s *State) DoFile(path string) error {
	return s.run(s.executionTimeout, func() error {
		return s.l.DoFile(path)
	})
}

// DoString runs a chunk of Lua code.
func (s *State) DoString(code string) error {
	return s.run(s.executionTimeout, func() error {
		return s.l.DoString(code)
	})
}

// run executes fn under the mutex with a deadline installed in the VM.
func (s *State) run(timeout time.Duration, fn func() error) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStateClosed
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	s.l.SetContext(ctx)
	defer s.l.RemoveContext()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
		if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
			err = fmt.Errorf("%w after %s: %v", ErrTimeout, timeout, err)
		}
	}()
	return fn()
}

// Invoke calls fn with Go arguments converted to Lua and returns its
// results converted back to Go. Each invocation is bounded by the call
// timeout.
func (s *State) Invoke(fn *lua.LFunction, args ...any) ([]any, error) {
	if fn == nil {
		return nil, ErrNotFunction
	}
	var results []any
	err := s.run(s.callTimeout, func() error {
		var err error
		results, err = s.bridge.CallFunc(fn, args...)
		return err
	})
	return results, err
}

// Call calls a global Lua function by name.
func (s *State) Call(name string, args ...any) ([]any, error) {
	s.mu.Lock()
	v := lua.LNil
	if !s.closed {
		v = s.l.GetGlobal(name)
	}
	s.mu.Unlock()

	fn, ok := v.(*lua.LFunction)
	if !ok {
		return nil, fmt.Errorf("%w: %q (got %s)", ErrNotFunction, name, v.Type())
	}
	return s.Invoke(fn, args...)
}

// Global returns a global variable converted to Go.
func (s *State) Global(name string) any {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	return s.bridge.ToGoValue(s.l.GetGlobal(name))
}

// RegisterModule installs a global table of Go functions.
func (s *State) RegisterModule(name string, funcs map[string]lua.LGFunction, fields map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	mod := s.l.SetFuncs(s.l.NewTable(), funcs)
	for k, v := range fields {
		mod.RawSetString(k, s.bridge.ToLuaValue(v))
	}
	s.l.SetGlobal(name, mod)
}

// Bridge returns the value converter bound to this state.
func (s *State) Bridge() *Bridge {
	return s.bridge
}

// Sandbox returns the sandbox installed in this state.
func (s *State) Sandbox() *Sandbox {
	return s.sandbox
}

// IsClosed reports whether Close was called.
func (s *State) IsClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Close releases the Lua state. Later calls fail with ErrStateClosed.
func (s *State) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.l.Close()
	s.closed = true
	return nil
}
