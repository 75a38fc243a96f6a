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

package scripting

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jetsetilly/osdwidgets/display"
	"github.com/jetsetilly/osdwidgets/logger"
)

// Sentinel errors.
var (
	ErrNotInitialised = errors.New("scripting: not initialised")
	ErrUnknownModule  = errors.New("scripting: unknown module")
)

// HookPrefix is prepended to the name of a widget hook to form the name of
// the script function that is called.
const HookPrefix = "kraken_widgets_"

// Engine is a script interpreter. An Engine is never called concurrently and
// is always called from the same goroutine.
type Engine interface {
	// the name of the engine as used in the addon manifest
	Name() string

	// create the interpreter state and register natives
	Init(env Env) error

	// destroy the interpreter state
	Close()

	// compile and run the script
	Load(name string, src []byte) error

	// call the hook function of the script. the frame is nil for every hook
	// except the frame hook. a script that does not define the hook is not an
	// error
	CallHook(hook string, frame display.Renderer) error

	// set a global variable to a number
	SetGlobalNumber(name string, v float64) error

	// call a global function with no arguments
	CallGlobal(name string) error
}

// Env is given to an Engine by the Bridge.
type Env interface {
	Host

	// Post queues a function to be run on the interpreter goroutine. The
	// function is dropped if the bridge is not initialised
	Post(f func()) bool
}

// State of the Bridge.
type State int

// List of valid State values.
const (
	StateUninitialised State = iota
	StateInitialised
	StateDeinitialised
)

func (s State) String() string {
	switch s {
	case StateUninitialised:
		return "uninitialised"
	case StateInitialised:
		return "initialised"
	case StateDeinitialised:
		return "deinitialised"
	}
	return fmt.Sprintf("state %d", int(s))
}

type job struct {
	f    func()
	done chan struct{}
}

// Bridge serialises all access to an Engine.
type Bridge struct {
	engine Engine
	host   Host

	// crit guards the state and the mailbox
	crit    sync.Mutex
	state   State
	mailbox []job
	notify  chan struct{}
	quit    chan struct{}
	done    chan struct{}

	// the bridge lock is held for the duration of every interpreter call. it
	// only exists while the bridge is initialised
	gil *sync.Mutex
}

// NewBridge is the preferred method of initialisation for the Bridge type.
func NewBridge(engine Engine, host Host) *Bridge {
	return &Bridge{
		engine: engine,
		host:   host,
	}
}

func (b *Bridge) String() string {
	return fmt.Sprintf("%s: %s", b.engine.Name(), b.State())
}

// State returns the current state of the bridge.
func (b *Bridge) State() State {
	b.crit.Lock()
	defer b.crit.Unlock()
	return b.state
}

// Engine returns the name of the engine.
func (b *Bridge) Engine() string {
	return b.engine.Name()
}

// Init starts the interpreter goroutine and initialises the engine. Calling
// Init() on an initialised bridge does nothing. A bridge that has been
// deinitialised can be initialised again.
func (b *Bridge) Init() error {
	b.crit.Lock()
	if b.state == StateInitialised {
		b.crit.Unlock()
		return nil
	}

	b.state = StateInitialised
	b.mailbox = b.mailbox[:0]
	b.notify = make(chan struct{}, 1)
	b.quit = make(chan struct{})
	b.done = make(chan struct{})
	b.gil = &sync.Mutex{}
	go b.run(b.notify, b.quit, b.done, b.gil)
	b.crit.Unlock()

	err := b.call(func() error {
		return b.engine.Init(b)
	})
	if err != nil {
		b.Deinit()
		return fmt.Errorf("%s: %w", b.engine.Name(), err)
	}

	return nil
}

// Deinit closes the engine and stops the interpreter goroutine. Functions
// queued before the call to Deinit() are run before the engine is closed.
func (b *Bridge) Deinit() {
	b.crit.Lock()
	if b.state != StateInitialised {
		b.crit.Unlock()
		return
	}

	b.state = StateDeinitialised
	b.mailbox = append(b.mailbox, job{f: b.engine.Close})
	quit := b.quit
	done := b.done
	b.crit.Unlock()

	close(quit)
	<-done

	b.crit.Lock()
	b.gil = nil
	b.crit.Unlock()
}

// the interpreter goroutine
func (b *Bridge) run(notify chan struct{}, quit chan struct{}, done chan struct{}, gil *sync.Mutex) {
	defer close(done)
	for {
		select {
		case <-notify:
			b.drain(gil)
		case <-quit:
			b.drain(gil)
			return
		}
	}
}

func (b *Bridge) drain(gil *sync.Mutex) {
	for {
		b.crit.Lock()
		jobs := b.mailbox
		b.mailbox = nil
		b.crit.Unlock()

		if len(jobs) == 0 {
			return
		}

		for _, j := range jobs {
			gil.Lock()
			j.f()
			gil.Unlock()
			if j.done != nil {
				close(j.done)
			}
		}
	}
}

// post adds a job to the mailbox. returns false if the bridge is not
// initialised
func (b *Bridge) post(j job) bool {
	b.crit.Lock()
	if b.state != StateInitialised {
		b.crit.Unlock()
		return false
	}
	b.mailbox = append(b.mailbox, j)
	notify := b.notify
	b.crit.Unlock()

	select {
	case notify <- struct{}{}:
	default:
	}

	return true
}

// Post implements the Env interface. The function is run on the interpreter
// goroutine. Post never blocks.
func (b *Bridge) Post(f func()) bool {
	return b.post(job{f: f})
}

// call runs the function on the interpreter goroutine and waits for it to
// complete. must not be called from the interpreter goroutine
func (b *Bridge) call(f func() error) error {
	var err error
	j := job{
		f: func() {
			err = f()
		},
		done: make(chan struct{}),
	}
	if !b.post(j) {
		return ErrNotInitialised
	}
	<-j.done
	return err
}

// Call runs the function with the engine on the interpreter goroutine and
// waits for it to complete.
func (b *Bridge) Call(f func(e Engine) error) error {
	return b.call(func() error {
		return f(b.engine)
	})
}

// Load compiles and runs the script.
func (b *Bridge) Load(name string, src []byte) error {
	return b.Call(func(e Engine) error {
		return e.Load(name, src)
	})
}

// Hook implements the gfxwidgets.Script interface.
func (b *Bridge) Hook(name string, r display.Renderer) {
	var rec *display.Recorder
	if r != nil {
		rec = display.NewRecorder(r.Size())
	}

	err := b.Call(func(e Engine) error {
		if rec == nil {
			return e.CallHook(name, nil)
		}
		return e.CallHook(name, rec)
	})
	if err != nil {
		if !errors.Is(err, ErrNotInitialised) {
			logger.Logf(logger.Allow, "addon error", "%s: %v", name, err)
		}
		return
	}

	if rec != nil {
		rec.Replay(r)
	}
}

// FontRegular implements the Host interface.
func (b *Bridge) FontRegular() display.Font {
	return b.host.FontRegular()
}

// FontBold implements the Host interface.
func (b *Bridge) FontBold() display.Font {
	return b.host.FontBold()
}

// CoreRunning implements the Host interface.
func (b *Bridge) CoreRunning() bool {
	return b.host.CoreRunning()
}

// ReadByte implements the Host interface.
func (b *Bridge) ReadByte(memory int, address int) (uint8, error) {
	return b.host.ReadByte(memory, address)
}

// PushAnimation implements the Host interface.
func (b *Bridge) PushAnimation(a Animation) {
	b.host.PushAnimation(a)
}

// LoadAddons loads every enabled addon in the manifest that is written for
// the engine of the bridge. Scripts are read concurrently but are loaded in
// the order they appear in the manifest. Loading stops at the first error.
func (b *Bridge) LoadAddons(ctx context.Context, m *Manifest) (int, error) {
	addons := m.For(b.engine.Name())
	srcs := make([][]byte, len(addons))

	g, ctx := errgroup.WithContext(ctx)
	for i, a := range addons {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			src, err := os.ReadFile(m.Path(a))
			if err != nil {
				return fmt.Errorf("addon %s: %w", a.Name, err)
			}
			srcs[i] = src
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, fmt.Errorf("%s: %w", b.engine.Name(), err)
	}

	for i, a := range addons {
		if err := b.Load(a.Script, srcs[i]); err != nil {
			return i, fmt.Errorf("%s: addon %s: %w", b.engine.Name(), a.Name, err)
		}
		logger.Logf(logger.Allow, b.engine.Name(), "loaded addon %s", a.Name)
	}

	return len(addons), nil
}
