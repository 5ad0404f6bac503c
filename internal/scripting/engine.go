// Package scripting hosts Lua-scripted projectile behavior.
package scripting

import (
	"fmt"
	"os"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// Engine wraps a single gopher-lua VM.
// Single-goroutine access only (simulation tick).
type Engine struct {
	vm  *lua.LState
	log *zap.Logger
}

// NewEngine creates a Lua engine and loads every script in dir, then in
// dir/modifiers. Missing directories are skipped.
func NewEngine(dir string, log *zap.Logger) (*Engine, error) {
	if log == nil {
		log = zap.NewNop()
	}
	vm := lua.NewState()
	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, log: log}
	for _, d := range []string{dir, filepath.Join(dir, "modifiers")} {
		if err := e.loadDir(d); err != nil {
			vm.Close()
			return nil, fmt.Errorf("load scripts: %w", err)
		}
	}
	return e, nil
}

// loadDir loads all .lua files in a directory.
func (e *Engine) loadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

// Has reports whether a global Lua function with this name exists.
func (e *Engine) Has(function string) bool {
	_, ok := e.vm.GetGlobal(function).(*lua.LFunction)
	return ok
}

// Close releases the VM.
func (e *Engine) Close() {
	e.vm.Close()
}

// call runs function with one argument and returns its single result.
func (e *Engine) call(function string, arg lua.LValue) (lua.LValue, error) {
	fn := e.vm.GetGlobal(function)
	if fn.Type() != lua.LTFunction {
		return lua.LNil, fmt.Errorf("lua function %s not found", function)
	}
	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, arg); err != nil {
		return lua.LNil, err
	}
	result := e.vm.Get(-1)
	e.vm.Pop(1)
	return result, nil
}
