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
	"context"
	"fmt"
	"time"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/jetsetilly/osdwidgets/display"
	"github.com/jetsetilly/osdwidgets/gui"
	"github.com/veandco/go-sdl2/sdl"
)

// the period over which the frame rate is measured
const fpsPeriod = time.Second

// the colour of the window behind the widgets
var background = display.Hex(0x101018)

// Service implements the gui.GUI interface. It returns when the window is
// closed, when a quit request is received or when the context is cancelled.
//
// MUST ONLY be called from the gui thread.
func (img *SdlImgui) Service(ctx context.Context) error {
	err := img.osd.Init(&img.drawer)
	if err != nil {
		return fmt.Errorf("sdlimgui: %w", err)
	}
	defer img.osd.Free()

	img.plt.window.Show()
	img.plt.setSwapInterval(syncWithVerticalRetrace)

	for ctx.Err() == nil {
		for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
			switch ev := ev.(type) {
			case *sdl.QuitEvent:
				return nil
			case *sdl.KeyboardEvent:
				img.serviceKeyboard(ev)
			}
		}

		img.Requests.Service(img.dispatch, img.setFeature)
		if img.dispatch.Quit() {
			return nil
		}

		img.renderFrame()
	}

	return nil
}

// requests that only make sense for a window are handled here. everything
// else is handled by the dispatcher
func (img *SdlImgui) setFeature(request gui.FeatureReq, args ...gui.FeatureReqData) error {
	switch request {
	case gui.ReqFullScreen:
		if len(args) != 1 {
			return fmt.Errorf("sdlimgui: %v: wrong number of arguments", request)
		}
		fullScreen, ok := args[0].(bool)
		if !ok {
			return fmt.Errorf("sdlimgui: %v: argument must be a bool", request)
		}
		if fullScreen != img.fullScreen {
			img.plt.setFullScreen(fullScreen)
			img.fullScreen = fullScreen
		}
		return nil
	}
	return fmt.Errorf("%w: %v", gui.ErrUnsupportedFeature, request)
}

func (img *SdlImgui) renderFrame() {
	now := time.Now()
	img.osd.Tick(now)
	if img.fps.Frame(now) {
		img.osd.SetFPSText(img.fps.String())
	}

	img.plt.newFrame()
	imgui.NewFrame()

	img.drawer.begin(img.plt.windowSize())
	img.dispatch.Iterate()
	img.dispatch.Frame(&img.drawer)
	img.drawer.end()

	imgui.Render()

	img.rnd.preRender(background)
	img.rnd.render()
	img.plt.postRender()
}
