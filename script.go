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

package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/osdwidgets/display"
	"github.com/jetsetilly/osdwidgets/gfxwidgets"
	"github.com/jetsetilly/osdwidgets/logger"
	"github.com/jetsetilly/osdwidgets/performance/limiter"
)

// the size of the off-screen display used by SCRIPT mode
const (
	scriptWidth  = 1280
	scriptHeight = 720
)

// runScript drives the widget context against a recording renderer for the
// number of frames. The messages on screen at the end and the log are written
// to the output.
func runScript(ctx context.Context, osd *gfxwidgets.Context, fps int, frames int, output io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lim, err := limiter.NewFPSLimiter(ctx, fps)
	if err != nil {
		return err
	}

	rec := display.NewRecorder(scriptWidth, scriptHeight)
	err = osd.Init(rec)
	if err != nil {
		return err
	}
	defer osd.Free()

	var n int
	for n = 0; n < frames && lim.Wait(ctx); n++ {
		rec.Reset()
		osd.Tick(time.Now())
		osd.Iterate()
		osd.Frame(rec)
	}

	fmt.Fprintf(output, "%d frames\n", n)
	for _, s := range osd.Onscreen() {
		fmt.Fprintf(output, "onscreen: %s\n", s)
	}
	logger.Write(output)

	return nil
}
