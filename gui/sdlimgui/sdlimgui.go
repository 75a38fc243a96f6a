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

// Package sdlimgui is a host that draws the on-screen display over an SDL
// window. The widgets are added to the imgui background draw list and rendered
// with OpenGL 2.1.
//
// All functions of the SdlImgui type, with the exception of the functions of
// the embedded gui.Requests type, must be called from the goroutine that
// created it.
package sdlimgui

import (
	"fmt"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/jetsetilly/osdwidgets/gfxwidgets"
	"github.com/jetsetilly/osdwidgets/gui"
	"github.com/jetsetilly/osdwidgets/logger"
	"github.com/jetsetilly/osdwidgets/ozone"
	"github.com/jetsetilly/osdwidgets/performance"
)

// SdlImgui implements the gui.GUI interface.
type SdlImgui struct {
	*gui.Requests

	// the mechanical requirements for the gui
	context *imgui.Context
	io      imgui.IO
	plt     *platform
	rnd     *gl21
	fonts   fontAtlas
	drawer  drawer

	osd      *gfxwidgets.Context
	dispatch *gui.Dispatcher

	fullScreen bool
	fps        *performance.FPS
}

// NewSdlImgui is the preferred method of initialisation for type SdlImgui.
// The widget context is initialised by Service(). The menu may be nil.
//
// MUST ONLY be called from the gui thread.
func NewSdlImgui(osd *gfxwidgets.Context, menu *ozone.Menu) (*SdlImgui, error) {
	img := &SdlImgui{
		Requests: gui.NewRequests(),
		context:  imgui.CreateContext(nil),
		io:       imgui.CurrentIO(),
		osd:      osd,
		dispatch: gui.NewDispatcher(osd, menu),
		fps:      performance.NewFPS(fpsPeriod),
	}
	img.drawer.img = img

	// no imgui windows are ever opened so there is nothing to save
	img.io.SetIniFilename("")

	var err error

	img.plt, err = newPlatform(img)
	if err != nil {
		img.context.Destroy()
		return nil, fmt.Errorf("sdlimgui: %w", err)
	}

	img.rnd = newRenderer(img)
	err = img.rnd.start()
	if err != nil {
		_ = img.plt.destroy()
		img.context.Destroy()
		return nil, fmt.Errorf("sdlimgui: %w", err)
	}

	img.fonts.loadFonts(img.rnd)

	return img, nil
}

// Destroy implements the gui.GUI interface.
//
// MUST ONLY be called from the gui thread.
func (img *SdlImgui) Destroy() {
	img.rnd.destroy()
	err := img.plt.destroy()
	if err != nil {
		logger.Log(logger.Allow, "sdl", err)
	}
	img.context.Destroy()
}
