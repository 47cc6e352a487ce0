package script

import (
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/chartwire/internal/logging"
)

// removedGlobals are base library functions that load code or reach the
// environment of other functions.
var removedGlobals = []string{
	"dofile",
	"loadfile",
	"load",
	"loadstring",
	"module",
	"setfenv",
	"getfenv",
	"collectgarbage",
	"newproxy",
	"_printregs",
}

// safeModules can be required by scripts; they are already loaded.
var safeModules = map[string]bool{
	lua.TabLibName:    true,
	lua.StringLibName: true,
	lua.MathLibName:   true,
}

// Sandbox restricts a Lua state to computation on values.
type Sandbox struct {
	L      *lua.LState
	logger *logging.Logger
	output []string
}

// NewSandbox creates a sandbox for L.
func NewSandbox(L *lua.LState, logger *logging.Logger) *Sandbox {
	return &Sandbox{L: L, logger: logger}
}

// Install removes unsafe globals and replaces print and require.
func (s *Sandbox) Install() {
	for _, name := range removedGlobals {
		s.L.SetGlobal(name, lua.LNil)
	}
	s.installPrint()
	s.installRequire()
}

// installPrint routes print to the logger and keeps the lines for Output.
func (s *Sandbox) installPrint() {
	s.L.SetGlobal("print", s.L.NewFunction(func(L *lua.LState) int {
		parts := make([]string, 0, L.GetTop())
		for i := 1; i <= L.GetTop(); i++ {
			parts = append(parts, L.ToStringMeta(L.Get(i)).String())
		}
		line := strings.Join(parts, "\t")
		s.output = append(s.output, line)
		s.logger.Info("lua: %s", line)
		return 0
	}))
}

// installRequire only resolves the libraries already opened.
func (s *Sandbox) installRequire() {
	s.L.SetGlobal("require", s.L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		if !safeModules[name] {
			L.RaiseError("module %q is not available", name)
			return 0
		}
		L.Push(L.GetGlobal(name))
		return 1
	}))
}

// Output returns the lines printed by scripts.
func (s *Sandbox) Output() []string {
	return append([]string(nil), s.output...)
}
