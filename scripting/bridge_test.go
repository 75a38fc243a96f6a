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

package scripting_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/jetsetilly/osdwidgets/assert"
	"github.com/jetsetilly/osdwidgets/display"
	"github.com/jetsetilly/osdwidgets/scripting"
	"github.com/jetsetilly/osdwidgets/test"
)

// engine records the calls made to it
type engine struct {
	crit sync.Mutex

	env      scripting.Env
	calls    []string
	routines map[uint64]bool
	loaded   map[string]string
	globals  map[string]float64
	closed   bool
}

func newEngine() *engine {
	return &engine{
		routines: make(map[uint64]bool),
		loaded:   make(map[string]string),
		globals:  make(map[string]float64),
	}
}

func (e *engine) record(s string) {
	e.crit.Lock()
	defer e.crit.Unlock()
	e.calls = append(e.calls, s)
	e.routines[assert.GetGoRoutineID()] = true
}

func (e *engine) Name() string {
	return "fake"
}

func (e *engine) Init(env scripting.Env) error {
	e.env = env
	e.record("init")
	return nil
}

func (e *engine) Close() {
	e.record("close")
	e.closed = true
}

func (e *engine) Load(name string, src []byte) error {
	e.record("load " + name)
	if strings.Contains(string(src), "syntax error") {
		return errors.New("syntax error")
	}
	e.loaded[name] = string(src)
	return nil
}

func (e *engine) CallHook(hook string, frame display.Renderer) error {
	e.record("hook " + hook)
	if frame != nil {
		frame.DrawQuad(1, 2, 3, 4, display.White)
	}
	return nil
}

func (e *engine) SetGlobalNumber(name string, v float64) error {
	e.record("set " + name)
	e.globals[name] = v
	return nil
}

func (e *engine) CallGlobal(name string) error {
	e.record("call " + name)
	return nil
}

type host struct{}

func (host) FontRegular() display.Font                       { return display.FixedFont(32, false) }
func (host) FontBold() display.Font                          { return display.FixedFont(32, true) }
func (host) CoreRunning() bool                               { return false }
func (host) ReadByte(memory int, address int) (uint8, error) { return 0, scripting.ErrCoreNotRunning }
func (host) PushAnimation(a scripting.Animation)             {}

func TestBridgeStates(t *testing.T) {
	e := newEngine()
	b := scripting.NewBridge(e, host{})
	test.ExpectEquality(t, b.State(), scripting.StateUninitialised)

	err := b.Load("early", nil)
	test.ExpectSuccess(t, errors.Is(err, scripting.ErrNotInitialised))
	test.ExpectFailure(t, b.Post(func() {}))

	test.DemandSuccess(t, b.Init())
	test.ExpectEquality(t, b.State(), scripting.StateInitialised)

	// a second call to init does nothing
	test.DemandSuccess(t, b.Init())

	test.ExpectSuccess(t, b.Load("script", []byte("print()")))
	test.ExpectFailure(t, b.Load("broken", []byte("syntax error")))

	b.Deinit()
	test.ExpectEquality(t, b.State(), scripting.StateDeinitialised)
	test.ExpectSuccess(t, e.closed)

	err = b.Load("late", nil)
	test.ExpectSuccess(t, errors.Is(err, scripting.ErrNotInitialised))

	// deinit of a deinitialised bridge does nothing
	b.Deinit()

	test.ExpectEquality(t, strings.Join(e.calls, ", "), "init, load script, load broken, close")
}

func TestBridgeSingleGoroutine(t *testing.T) {
	e := newEngine()
	b := scripting.NewBridge(e, host{})
	test.DemandSuccess(t, b.Init())

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b.Load("script", nil)
			b.Post(func() {
				e.SetGlobalNumber("x", 1)
			})
		}()
	}
	wg.Wait()

	b.Deinit()

	// every call to the engine was made on the same goroutine. the calls
	// posted before the deinit were all completed
	test.ExpectEquality(t, len(e.routines), 1)
	test.ExpectEquality(t, len(e.calls), 22)
	test.ExpectInequality(t, e.routines[assert.GetGoRoutineID()], true)
}

func TestBridgeReinit(t *testing.T) {
	e := newEngine()
	b := scripting.NewBridge(e, host{})
	test.DemandSuccess(t, b.Init())
	b.Deinit()
	test.DemandSuccess(t, b.Init())
	test.ExpectEquality(t, b.State(), scripting.StateInitialised)
	b.Deinit()
	test.ExpectEquality(t, strings.Join(e.calls, ", "), "init, close, init, close")
}

func TestBridgeHook(t *testing.T) {
	e := newEngine()
	b := scripting.NewBridge(e, host{})
	test.DemandSuccess(t, b.Init())
	defer b.Deinit()

	rec := display.NewRecorder(640, 480)

	b.Hook("iterate", nil)
	test.ExpectEquality(t, len(rec.Commands()), 0)

	// drawing by the script is replayed onto the renderer
	b.Hook("frame", rec)
	c := rec.Commands()
	test.DemandEquality(t, len(c), 1)
	test.ExpectEquality(t, c[0].Op, display.OpQuad)
	test.ExpectEquality(t, c[0].W, float32(3))
}

func TestLoadAddons(t *testing.T) {
	dir := t.TempDir()

	write := func(name string, content string) {
		t.Helper()
		test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}

	write("one.fake", "one")
	write("two.fake", "two")
	write("three.lua", "three")
	write("addons.yaml", `addons:
  - name: one
    engine: fake
    script: one.fake
  - name: two
    engine: fake
    script: two.fake
  - name: disabled
    engine: fake
    script: missing.fake
    disabled: true
  - name: three
    engine: kraken
    script: three.lua
`)

	m, err := scripting.LoadManifest(filepath.Join(dir, "addons.yaml"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(m.Addons), 4)
	test.ExpectEquality(t, len(m.For("fake")), 2)
	test.ExpectEquality(t, len(m.For("kraken")), 1)

	e := newEngine()
	b := scripting.NewBridge(e, host{})
	test.DemandSuccess(t, b.Init())
	defer b.Deinit()

	n, err := b.LoadAddons(context.Background(), m)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 2)
	test.ExpectEquality(t, e.loaded["one.fake"], "one")
	test.ExpectEquality(t, e.loaded["two.fake"], "two")

	// a missing script is an error
	m.Addons[2].Disabled = false
	_, err = b.LoadAddons(context.Background(), m)
	test.ExpectFailure(t, err)
}

func TestManifestErrors(t *testing.T) {
	for _, s := range []string{
		"addons:\n  - engine: fake\n    script: a\n",
		"addons:\n  - name: a\n    script: a\n",
		"addons:\n  - name: a\n    engine: fake\n",
		"addons:\n  - name: a\n    engine: fake\n    script: a\n  - name: a\n    engine: fake\n    script: b\n",
		"addons:\n  - name: a\n    unknown: field\n",
	} {
		_, err := scripting.ParseManifest(strings.NewReader(s), ".")
		test.ExpectFailure(t, err, s)
	}

	m, err := scripting.ParseManifest(strings.NewReader(""), ".")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(m.Addons), 0)
}
