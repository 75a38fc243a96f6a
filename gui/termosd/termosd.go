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

// Package termosd is a host that draws the on-screen display in a terminal.
// The widgets are drawn to a grid of character cells, which is styled with
// lipgloss and written to the terminal once per frame.
//
// Keyboard input is read with the terminal in raw mode.
package termosd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/jetsetilly/osdwidgets/display"
	"github.com/jetsetilly/osdwidgets/gfxwidgets"
	"github.com/jetsetilly/osdwidgets/gui"
	"github.com/jetsetilly/osdwidgets/logger"
	"github.com/jetsetilly/osdwidgets/ozone"
	"github.com/jetsetilly/osdwidgets/performance"
	"github.com/jetsetilly/osdwidgets/performance/limiter"
	"github.com/jetsetilly/osdwidgets/terminal/easyterm"
	"github.com/jetsetilly/osdwidgets/terminal/easyterm/ansi"
)

// the colour of the terminal behind the widgets
var background = display.Hex(0x202030)

// TermOSD implements the gui.GUI interface.
type TermOSD struct {
	*gui.Requests

	term   easyterm.Terminal
	canvas *Canvas

	osd      *gfxwidgets.Context
	dispatch *gui.Dispatcher

	rate int
	fps  *performance.FPS
}

// NewTermOSD is the preferred method of initialisation for the TermOSD type.
// The widget context is initialised by Service(). The menu may be nil.
func NewTermOSD(osd *gfxwidgets.Context, menu *ozone.Menu, rate int) (*TermOSD, error) {
	t := &TermOSD{
		Requests: gui.NewRequests(),
		osd:      osd,
		dispatch: gui.NewDispatcher(osd, menu),
		rate:     rate,
		fps:      performance.NewFPS(time.Second),
	}

	err := t.term.Initialise(os.Stdin, os.Stdout)
	if err != nil {
		return nil, fmt.Errorf("termosd: %w", err)
	}

	g := t.term.Geometry()
	t.canvas = NewCanvas(g.Cols, g.Rows, lipgloss.NewRenderer(os.Stdout))

	return t, nil
}

// Destroy implements the gui.GUI interface.
func (t *TermOSD) Destroy() {
	t.term.CleanUp()
}

// Service implements the gui.GUI interface.
func (t *TermOSD) Service(ctx context.Context) error {
	err := t.term.RawMode()
	if err != nil {
		return fmt.Errorf("termosd: %w", err)
	}
	defer func() {
		t.term.Print("%s%s%s", ansi.NormalPen, ansi.CursorShow, ansi.MainScreen)
		_ = t.term.CanonicalMode()
	}()
	t.term.Print("%s%s%s", ansi.AltScreen, ansi.CursorHide, ansi.ClearScreen)

	err = t.osd.Init(t.canvas)
	if err != nil {
		return fmt.Errorf("termosd: %w", err)
	}
	defer t.osd.Free()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	keys := make(chan easyterm.Key, 16)
	go t.readKeys(ctx, keys)

	lim, err := limiter.NewFPSLimiter(ctx, t.rate)
	if err != nil {
		return fmt.Errorf("termosd: %w", err)
	}

	for lim.Wait(ctx) {
		for done := false; !done; {
			select {
			case k := <-keys:
				quit, err := t.key(k)
				if err != nil {
					logger.Log(logger.Allow, "term", err)
				}
				if quit {
					return nil
				}
			case g := <-t.term.Resized():
				t.canvas.Resize(g.Cols, g.Rows)
				t.term.Print(ansi.ClearScreen)
			default:
				done = true
			}
		}

		t.Requests.Service(t.dispatch, t.setFeature)
		if t.dispatch.Quit() {
			return nil
		}

		now := time.Now()
		t.osd.Tick(now)
		if t.fps.Frame(now) {
			t.osd.SetFPSText(t.fps.String())
		}

		t.dispatch.Iterate()
		t.canvas.Clear(background)
		t.dispatch.Frame(t.canvas)

		_, err = t.term.Write([]byte(ansi.CursorHome + strings.Join(t.canvas.Lines(), "\r\n")))
		if err != nil {
			return fmt.Errorf("termosd: %w", err)
		}
	}

	return nil
}

// the terminal is always full screen so the only request not handled by the
// dispatcher is accepted without doing anything
func (t *TermOSD) setFeature(request gui.FeatureReq, args ...gui.FeatureReqData) error {
	switch request {
	case gui.ReqFullScreen:
		return nil
	}
	return fmt.Errorf("%w: %v", gui.ErrUnsupportedFeature, request)
}

func (t *TermOSD) readKeys(ctx context.Context, keys chan easyterm.Key) {
	for {
		k, err := easyterm.ReadKey(&t.term)
		if err != nil {
			if !errors.Is(err, os.ErrClosed) {
				logger.Log(logger.Allow, "term", err)
			}
			return
		}
		select {
		case keys <- k:
		case <-ctx.Done():
			return
		}
	}
}

// returns true if the key is a request to quit
func (t *TermOSD) key(k easyterm.Key) (bool, error) {
	if k.Special == easyterm.NotSpecial {
		switch k.Rune {
		case easyterm.KeyInterrupt:
			return true, nil
		case easyterm.KeySuspend:
			return false, t.term.SuspendProcess()
		}
	}
	t.dispatch.Key(gui.EventKeyboard{Key: KeyName(k), Down: true})
	return false, nil
}

// KeyName converts a key read from the terminal to the name used by the gui
// package.
func KeyName(k easyterm.Key) gui.Key {
	if k.Special != easyterm.NotSpecial {
		return gui.Key(k.Special.String())
	}
	switch k.Rune {
	case easyterm.KeyTab:
		return gui.KeyTab
	case easyterm.KeyCarriageReturn:
		return gui.KeyReturn
	}
	return gui.Key(string(rune(k.Rune)))
}
