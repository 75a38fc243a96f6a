// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package kraken

import (
	"bytes"
	"embed"
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"
	"github.com/yuin/gopher-lua/parse"

	"github.com/jetsetilly/osdwidgets/display"
	"github.com/jetsetilly/osdwidgets/logger"
	"github.com/jetsetilly/osdwidgets/scripting"
)

//go:embed lua/*.lua
var sources embed.FS

// compiled module sources are shared by every Kraken instance
var protos = struct {
	crit  sync.Mutex
	cache map[string]*lua.FunctionProto
}{
	cache: make(map[string]*lua.FunctionProto),
}

func compile(name string, src []byte) (*lua.FunctionProto, error) {
	chunk, err := parse.Parse(bytes.NewReader(src), name)
	if err != nil {
		return nil, err
	}
	return lua.Compile(chunk, name)
}

// returns the compiled source of the named module. the boolean is false if
// the module does not exist
func module(name string) (*lua.FunctionProto, bool, error) {
	protos.crit.Lock()
	defer protos.crit.Unlock()

	if p, ok := protos.cache[name]; ok {
		return p, true, nil
	}

	src, err := sources.ReadFile(fmt.Sprintf("lua/%s.lua", name))
	if err != nil {
		return nil, false, nil
	}

	p, err := compile(name, src)
	if err != nil {
		return nil, true, fmt.Errorf("kraken: module %s: %w", name, err)
	}
	protos.cache[name] = p

	return p, true, nil
}

// Kraken implements the scripting.Engine interface for Lua scripts.
type Kraken struct {
	env scripting.Env
	L   *lua.LState

	// modules that have been loaded with require()
	loaded map[string]bool
}

// New is the preferred method of initialisation for the Kraken type.
func New() *Kraken {
	return &Kraken{}
}

func (k *Kraken) Name() string {
	return "kraken"
}

func (k *Kraken) Init(env scripting.Env) error {
	k.env = env
	k.loaded = make(map[string]bool)
	k.L = lua.NewState()

	pkg, ok := k.L.GetGlobal("package").(*lua.LTable)
	if !ok {
		k.Close()
		return fmt.Errorf("kraken: package library is missing")
	}
	loaders, ok := k.L.GetField(pkg, "loaders").(*lua.LTable)
	if !ok {
		k.Close()
		return fmt.Errorf("kraken: package.loaders is missing")
	}
	loaders.Append(k.L.NewFunction(k.search))

	return nil
}

func (k *Kraken) Close() {
	if k.L == nil {
		return
	}
	k.L.Close()
	k.L = nil
}

// Loaded returns true if the named module has been loaded by a script.
func (k *Kraken) Loaded(name string) bool {
	return k.loaded[name]
}

func (k *Kraken) Load(name string, src []byte) error {
	if k.L == nil {
		return scripting.ErrNotInitialised
	}

	p, err := compile(name, src)
	if err != nil {
		return fmt.Errorf("kraken: %w", err)
	}

	k.L.Push(k.L.NewFunctionFromProto(p))
	if err := k.L.PCall(0, 0, nil); err != nil {
		return fmt.Errorf("kraken: %w", err)
	}

	return nil
}

// search is appended to package.loaders. it returns the loader function for
// one of the built in modules
func (k *Kraken) search(L *lua.LState) int {
	name := L.CheckString(1)

	p, ok, err := module(name)
	if err != nil {
		L.RaiseError("%v", err)
		return 0
	}
	if !ok {
		logger.Logf(logger.Allow, "kraken", "Unknown module %q", name)
		L.Push(lua.LString(fmt.Sprintf("\n\tno kraken module '%s'", name)))
		return 1
	}

	L.Push(L.NewFunction(func(L *lua.LState) int {
		k.register(name)

		L.Push(L.NewFunctionFromProto(p))
		L.Call(0, 1)
		k.loaded[name] = true

		return 1
	}))

	return 1
}

func (k *Kraken) CallHook(hook string, frame display.Renderer) error {
	if k.L == nil {
		return scripting.ErrNotInitialised
	}

	if !k.loaded["widgets"] {
		return nil
	}

	fn, ok := k.L.GetGlobal(scripting.HookPrefix + hook).(*lua.LFunction)
	if !ok {
		return nil
	}

	var args []lua.LValue
	if frame != nil {
		ud := k.L.NewUserData()
		ud.Value = frame
		args = append(args, ud)
	}

	err := k.L.CallByParam(lua.P{
		Fn:      fn,
		NRet:    0,
		Protect: true,
	}, args...)
	if err != nil {
		return fmt.Errorf("kraken: %s: %w", hook, err)
	}

	return nil
}

func (k *Kraken) SetGlobalNumber(name string, v float64) error {
	if k.L == nil {
		return scripting.ErrNotInitialised
	}
	k.L.SetGlobal(name, lua.LNumber(v))
	return nil
}

func (k *Kraken) CallGlobal(name string) error {
	if k.L == nil {
		return scripting.ErrNotInitialised
	}

	fn, ok := k.L.GetGlobal(name).(*lua.LFunction)
	if !ok {
		return fmt.Errorf("kraken: %s is not a function", name)
	}

	err := k.L.CallByParam(lua.P{
		Fn:      fn,
		NRet:    0,
		Protect: true,
	})
	if err != nil {
		return fmt.Errorf("kraken: %s: %w", name, err)
	}

	return nil
}
