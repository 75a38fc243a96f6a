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

package sdlimgui

import (
	"fmt"
	"runtime"
	"time"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/jetsetilly/osdwidgets/logger"
	"github.com/jetsetilly/osdwidgets/version"
	"github.com/veandco/go-sdl2/sdl"
)

type platform struct {
	img    *SdlImgui
	window *sdl.Window
	mode   sdl.DisplayMode

	glContext sdl.GLContext

	// the time of the previous frame. used to set the imgui delta time
	time time.Time

	// use ticker to synchronise with monitor
	syncTicker *time.Ticker
}

// newPlatform is the preferred method of initialisation for the platform type.
func newPlatform(img *SdlImgui) (*platform, error) {
	// the SDL package calls LockOSThread() but we call it here too. it can't
	// hurt and we never unlock it in any case
	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	// the renderer uses the fixed function pipeline of OpenGL 2.1
	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 2)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}
	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	major, err := sdl.GLGetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}
	minor, err := sdl.GLGetAttribute(sdl.GL_CONTEXT_MINOR_VERSION)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)
	logger.Logf(logger.Allow, "sdl", "using GL version %d.%d", major, minor)

	plt := &platform{
		img: img,
	}

	plt.mode, err = sdl.GetCurrentDisplayMode(0)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl: %w", err)
	}
	logger.Logf(logger.Allow, "sdl", "refresh rate: %dHz", plt.mode.RefreshRate)

	plt.window, err = sdl.CreateWindow(version.String(),
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(float32(plt.mode.W)*0.60), int32(float32(plt.mode.H)*0.60),
		sdl.WINDOW_OPENGL|sdl.WINDOW_ALLOW_HIGHDPI|sdl.WINDOW_RESIZABLE|sdl.WINDOW_HIDDEN)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	plt.glContext, err = plt.window.GLCreateContext()
	if err != nil {
		_ = plt.destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}
	err = plt.window.GLMakeCurrent(plt.glContext)
	if err != nil {
		_ = plt.destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	return plt, nil
}

// list of swap intervalue values. with the exception of syncTicker all of these
// are values defined and expected by the SDL.GLSetSwapInterval() function
const (
	syncImmediateUpdate     = 0
	syncWithVerticalRetrace = 1
	syncAdaptive            = -1
	syncTicker              = 2
)

func (plt *platform) setSwapInterval(i int) {
	if i == syncTicker {
		// ticker to control update frequency
		rate := plt.mode.RefreshRate
		if rate <= 0 {
			rate = 60
		}
		d := time.Second / time.Duration(rate)
		plt.syncTicker = time.NewTicker(d)

		// in reality syncTicker requires us to set GL swap interval to 0
		i = syncImmediateUpdate
	} else {
		if plt.syncTicker != nil {
			plt.syncTicker.Stop()
		}
		plt.syncTicker = nil
	}

	err := sdl.GLSetSwapInterval(i)
	if err != nil {
		logger.Logf(logger.Allow, "sdl", "GLSetSwapInterval(%d): %s", i, err.Error())
	}
}

// destroy cleans up the resources.
func (plt *platform) destroy() error {
	if plt.syncTicker != nil {
		plt.syncTicker.Stop()
	}

	if plt.glContext != nil {
		sdl.GLDeleteContext(plt.glContext)
		plt.glContext = nil
	}

	if plt.window != nil {
		err := plt.window.Destroy()
		if err != nil {
			return err
		}
		plt.window = nil
	}
	sdl.Quit()

	return nil
}

// windowSize returns the dimension of the window.
func (plt *platform) windowSize() (float32, float32) {
	w, h := plt.window.GetSize()
	return float32(w), float32(h)
}

// framebufferSize returns the dimension of the framebuffer.
func (plt *platform) framebufferSize() (float32, float32) {
	w, h := plt.window.GLGetDrawableSize()
	return float32(w), float32(h)
}

// newFrame marks the begin of a render pass. It forwards the display size and
// the frame time to imgui.CurrentIO().
func (plt *platform) newFrame() {
	w, h := plt.windowSize()
	imgui.CurrentIO().SetDisplaySize(imgui.Vec2{X: w, Y: h})

	now := time.Now()
	if plt.time.IsZero() {
		imgui.CurrentIO().SetDeltaTime(1.0 / 60.0)
	} else {
		imgui.CurrentIO().SetDeltaTime(float32(now.Sub(plt.time).Seconds()))
	}
	plt.time = now
}

// PostRender performs a buffer swap.
func (plt *platform) postRender() {
	if plt.syncTicker != nil {
		<-plt.syncTicker.C
	}
	plt.window.GLSwap()
}

// toggle the full screeens state.
func (plt *platform) setFullScreen(fullScreen bool) {
	var err error
	if fullScreen {
		err = plt.window.SetFullscreen(sdl.WINDOW_FULLSCREEN_DESKTOP)
	} else {
		err = plt.window.SetFullscreen(0)
	}
	if err != nil {
		logger.Logf(logger.Allow, "sdl", "full screen: %v", err)
		return
	}

	// a short delay seems to smooth things out by giving time for the system
	// to make the changes to the full screen state
	<-time.After(100 * time.Millisecond)
}
