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

package gfxwidgets

import (
	"fmt"
	"sync"
	"time"

	"github.com/jetsetilly/osdwidgets/animation"
	"github.com/jetsetilly/osdwidgets/assert"
	"github.com/jetsetilly/osdwidgets/display"
	"github.com/jetsetilly/osdwidgets/logger"
	"github.com/jetsetilly/osdwidgets/notifications"
	"github.com/jetsetilly/osdwidgets/scripting"
)

// Widget is implemented by every widget managed by the Context. All methods
// are called from the UI goroutine.
type Widget interface {
	// called once when the widget is added to the context
	Init(ctx *Context) error

	// called once when the context is freed
	Free()

	// the rendering context has been created or recreated. textures should
	// be reloaded
	ContextReset()

	// the rendering context is about to be destroyed. textures should be
	// released
	ContextDestroy()

	// the display size or font has changed
	Layout()

	// called once per frame before Frame()
	Iterate()

	// draw the widget. must not change the state of the widget
	Frame(r display.Renderer)
}

// Core is the emulation core, as seen by scripts.
type Core interface {
	Running() bool

	// Memory returns the memory area with the libretro memory ID. Returns nil
	// if the memory area is not available
	Memory(id int) []byte
}

// Context is the owner of all widgets. With the exception of the Push*()
// functions and ScreenshotTaken(), the functions of Context must only be
// called from the UI goroutine.
type Context struct {
	Prefs *Preferences

	owner *assert.Owner
	anim  *animation.Engine

	// crit guards the fields shared with other goroutines
	crit        sync.Mutex
	initialised bool
	pending     ring[*notification]
	dropped     int
	shared      metrics
	core        Core
	scriptAnims []scripting.Animation
	shot        *pendingScreenshot

	// the remaining fields are only accessed from the UI goroutine

	renderer display.Renderer
	width    float32
	height   float32
	metrics  metrics

	// tag used by animations requested by scripts
	scriptTag animation.Tag

	widgets []Widget

	msgQueue   *msgQueue
	help       *helpMessages
	volume     *volume
	status     *status
	screenshot *screenshot
	generic    *genericMessage
	libretro   *libretroMessage
}

// NewContext is the preferred method of initialisation for the Context type.
// If prefs is nil then the default preferences are used.
func NewContext(prefs *Preferences) *Context {
	if prefs == nil {
		prefs = DefaultPreferences()
	}

	ctx := &Context{
		Prefs: prefs,
		owner: assert.NewOwner("widget context"),
		anim:  animation.NewEngine(),
	}

	ctx.help = &helpMessages{}
	ctx.screenshot = &screenshot{}
	ctx.volume = &volume{}
	ctx.generic = &genericMessage{}
	ctx.libretro = &libretroMessage{}
	ctx.msgQueue = &msgQueue{}
	ctx.status = &status{}

	// draw order
	ctx.widgets = []Widget{
		ctx.screenshot,
		ctx.volume,
		ctx.generic,
		ctx.libretro,
		ctx.msgQueue,
		ctx.status,
		ctx.help,
	}

	return ctx
}

func (ctx *Context) String() string {
	ctx.crit.Lock()
	defer ctx.crit.Unlock()
	return fmt.Sprintf("pending: %d, dropped: %d, onscreen: %d", ctx.pending.len(), ctx.dropped, len(ctx.msgQueue.onscreen))
}

// Animation returns the animation engine used by the widgets. The engine is
// driven by Update() and Tick().
func (ctx *Context) Animation() *animation.Engine {
	return ctx.anim
}

// Init the context and all widgets. The renderer is used until the next call
// to ContextReset(). Calling Init() on a context that is already initialised
// does nothing.
func (ctx *Context) Init(r display.Renderer) error {
	ctx.owner.Claim()

	ctx.crit.Lock()
	if ctx.initialised {
		ctx.crit.Unlock()
		return nil
	}
	ctx.pending = newRing[*notification](ctx.Prefs.PendingMax.Get().(int))
	ctx.dropped = 0
	ctx.crit.Unlock()

	ctx.renderer = r
	ctx.resetMetrics()
	ctx.scriptTag = ctx.anim.NewTag()

	for _, w := range ctx.widgets {
		if err := w.Init(ctx); err != nil {
			return fmt.Errorf("osd: %w", err)
		}
	}

	ctx.crit.Lock()
	ctx.initialised = true
	ctx.crit.Unlock()

	ctx.ContextReset(r)

	return nil
}

// Free all widgets and any pending notifications. The context can be
// initialised again with Init().
func (ctx *Context) Free() {
	ctx.owner.Check()

	ctx.crit.Lock()
	if !ctx.initialised {
		ctx.crit.Unlock()
		return
	}
	ctx.initialised = false
	ctx.scriptAnims = ctx.scriptAnims[:0]
	ctx.shot = nil
	ctx.crit.Unlock()

	for i := len(ctx.widgets) - 1; i >= 0; i-- {
		ctx.widgets[i].Free()
	}

	ctx.anim.Release(ctx.scriptTag)
	ctx.scriptTag = animation.NoTag
}

// ContextReset is called when the rendering context has been (re)created.
func (ctx *Context) ContextReset(r display.Renderer) {
	ctx.owner.Check()

	ctx.renderer = r
	ctx.resetMetrics()

	for _, w := range ctx.widgets {
		w.ContextReset()
	}
	ctx.layout()
}

// ContextDestroy is called before the rendering context is destroyed.
func (ctx *Context) ContextDestroy() {
	ctx.owner.Check()

	for _, w := range ctx.widgets {
		w.ContextDestroy()
	}
	ctx.renderer = nil
}

// AddWidget adds a widget to the context. The widget is drawn after all
// existing widgets.
func (ctx *Context) AddWidget(w Widget) error {
	ctx.owner.Check()

	ctx.widgets = append(ctx.widgets, w)

	ctx.crit.Lock()
	initialised := ctx.initialised
	ctx.crit.Unlock()

	if initialised {
		if err := w.Init(ctx); err != nil {
			ctx.widgets = ctx.widgets[:len(ctx.widgets)-1]
			return fmt.Errorf("osd: %w", err)
		}
		if ctx.renderer != nil {
			w.ContextReset()
			w.Layout()
		}
	}

	return nil
}

func (ctx *Context) resetMetrics() {
	if ctx.renderer != nil {
		ctx.width, ctx.height = ctx.renderer.Size()
	}
	ctx.metrics = newMetrics(ctx.renderer, ctx.Prefs.fontSize(), ctx.Prefs.scale())

	ctx.crit.Lock()
	ctx.shared = ctx.metrics
	ctx.crit.Unlock()
}

func (ctx *Context) layout() {
	for _, w := range ctx.widgets {
		w.Layout()
	}
}

// Iterate all widgets. Must be called once per frame before Frame().
func (ctx *Context) Iterate() {
	ctx.owner.Check()

	ctx.crit.Lock()
	initialised := ctx.initialised
	ctx.crit.Unlock()
	if !initialised {
		return
	}

	// a change in display size or font size causes a new layout
	if ctx.renderer != nil {
		w, h := ctx.renderer.Size()
		if w != ctx.width || h != ctx.height || ctx.Prefs.fontSize() != ctx.metrics.fontSize || ctx.Prefs.scale() != ctx.metrics.scale {
			ctx.resetMetrics()
			ctx.layout()
		}
	}

	ctx.startScriptAnimations()

	for _, w := range ctx.widgets {
		w.Iterate()
	}
}

// Frame draws all widgets with the renderer.
func (ctx *Context) Frame(r display.Renderer) {
	ctx.owner.Check()

	ctx.crit.Lock()
	initialised := ctx.initialised
	ctx.crit.Unlock()
	if !initialised || r == nil {
		return
	}

	for _, w := range ctx.widgets {
		w.Frame(r)
	}
}

// Update advances animations and timers by delta milliseconds.
func (ctx *Context) Update(delta float32) {
	ctx.anim.Update(delta)
}

// Tick advances animations and timers by the time that has passed since the
// previous call to Tick().
func (ctx *Context) Tick(now time.Time) {
	ctx.anim.Tick(now)
}

// Dropped returns the number of notifications that have been dropped because
// the pending queue was full.
func (ctx *Context) Dropped() int {
	ctx.crit.Lock()
	defer ctx.crit.Unlock()
	return ctx.dropped
}

// Pending returns the number of notifications waiting to be shown.
func (ctx *Context) Pending() int {
	ctx.crit.Lock()
	defer ctx.crit.Unlock()
	return ctx.pending.len()
}

// Notify implements the notifications.Notify interface.
func (ctx *Context) Notify(notice notifications.Notice) error {
	ctx.owner.Check()

	switch notice {
	case notifications.NotifyPause:
		ctx.status.paused = true
	case notifications.NotifyRun:
		ctx.status.paused = false
		ctx.status.fastForward = false
		ctx.status.rewinding = false
		ctx.status.slowMotion = false
	case notifications.NotifyFastForward:
		ctx.status.fastForward = true
		ctx.status.rewinding = false
		ctx.status.slowMotion = false
	case notifications.NotifyRewind:
		ctx.status.rewinding = true
		ctx.status.fastForward = false
	case notifications.NotifySlowMotion:
		ctx.status.slowMotion = true
		ctx.status.fastForward = false
	case notifications.NotifyScreenshot:
		ctx.TakeScreenshot()
	case notifications.NotifyMute:
		ctx.VolumeUpdateAndShow(ctx.volume.db, true)
	case notifications.NotifyUnmute:
		ctx.VolumeUpdateAndShow(ctx.volume.db, false)
	default:
		return fmt.Errorf("osd: unsupported notice (%v)", notice)
	}

	return nil
}

// SetCore sets the core that is visible to scripts. A nil core indicates that
// no core is running.
func (ctx *Context) SetCore(core Core) {
	ctx.crit.Lock()
	defer ctx.crit.Unlock()
	ctx.core = core
}

// FontRegular implements the scripting.Host interface.
func (ctx *Context) FontRegular() display.Font {
	ctx.crit.Lock()
	defer ctx.crit.Unlock()
	return ctx.shared.regular
}

// FontBold implements the scripting.Host interface.
func (ctx *Context) FontBold() display.Font {
	ctx.crit.Lock()
	defer ctx.crit.Unlock()
	return ctx.shared.bold
}

// CoreRunning implements the scripting.Host interface.
func (ctx *Context) CoreRunning() bool {
	ctx.crit.Lock()
	defer ctx.crit.Unlock()
	return ctx.core != nil && ctx.core.Running()
}

// ReadByte implements the scripting.Host interface.
func (ctx *Context) ReadByte(memory int, address int) (uint8, error) {
	ctx.crit.Lock()
	defer ctx.crit.Unlock()

	if ctx.core == nil || !ctx.core.Running() {
		return 0, scripting.ErrCoreNotRunning
	}

	mem := ctx.core.Memory(memory)
	if mem == nil {
		return 0, scripting.ErrNoMemory
	}

	if address < 0 || address >= len(mem) {
		return 0, fmt.Errorf("%w: %#x", scripting.ErrAddressRange, address)
	}

	return mem[address], nil
}

// PushAnimation implements the scripting.Host interface. The animation is
// started by the next call to Iterate().
func (ctx *Context) PushAnimation(a scripting.Animation) {
	ctx.crit.Lock()
	defer ctx.crit.Unlock()
	if !ctx.initialised {
		return
	}
	ctx.scriptAnims = append(ctx.scriptAnims, a)
}

func (ctx *Context) startScriptAnimations() {
	ctx.crit.Lock()
	anims := ctx.scriptAnims
	ctx.scriptAnims = nil
	ctx.crit.Unlock()

	for _, a := range anims {
		v := a.Initial
		ok := ctx.anim.Push(animation.Entry{
			Subject:  &v,
			Target:   a.Target,
			Duration: a.Duration,
			Easing:   a.Easing,
			Tag:      ctx.scriptTag,
			Tick: func() {
				if a.Tick != nil {
					a.Tick(v)
				}
			},
			Callback: a.Done,
		})
		if !ok {
			logger.Log(logger.Allow, "osd", "script animation not started")
		}
	}
}
