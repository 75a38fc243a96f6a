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
	"encoding/binary"
	"time"

	"github.com/jetsetilly/osdwidgets/gfxwidgets"
	"github.com/jetsetilly/osdwidgets/gui"
	"github.com/jetsetilly/osdwidgets/notifications"
	"github.com/jetsetilly/osdwidgets/task"
	"github.com/jetsetilly/osdwidgets/version"
)

// the libretro memory ID for system RAM
const memorySystemRAM = 2

// demoCore stands in for a running core so that addons have memory to read.
// The memory is derived from the time since the core started, which means it
// can be read from any goroutine.
type demoCore struct {
	start time.Time
}

func (c demoCore) Running() bool {
	return true
}

// Memory returns 128 bytes of RAM. The first four bytes are the frame number
// in little endian order.
func (c demoCore) Memory(id int) []byte {
	if id != memorySystemRAM {
		return nil
	}
	mem := make([]byte, 128)
	binary.LittleEndian.PutUint32(mem, uint32(time.Since(c.start)/(time.Second/60)))
	return mem
}

// the demo cycles through these notices
var demoNotices = []notifications.Notice{
	notifications.NotifyPause,
	notifications.NotifyRun,
	notifications.NotifyFastForward,
	notifications.NotifyRun,
	notifications.NotifySlowMotion,
	notifications.NotifyRun,
}

const (
	demoTick        = 50 * time.Millisecond
	demoNoticeTicks = 100
)

// demo sends messages and notices to the GUI as a frontend would. It also runs
// a task to show the progress notification.
//
// Requests are sent without waiting for the result so that the demo never
// blocks on a GUI that has stopped servicing requests.
func demo(ctx context.Context, g gui.GUI) error {
	g.SetFeatureNoError(gui.ReqPushMessage, gfxwidgets.Message{
		Title: version.String(),
		Text:  "press F1 for help",
	})

	t := task.New("indexing demo content")
	g.SetFeatureNoError(gui.ReqPushTask, t)
	defer func() {
		if !t.Finished() {
			t.Cancel()
		}
	}()

	tick := time.NewTicker(demoTick)
	defer tick.Stop()

	for n := 1; ; n++ {
		select {
		case <-ctx.Done():
			return nil
		case <-tick.C:
		}

		if !t.Finished() {
			t.SetProgress(t.Progress() + 1)
			if t.Progress() >= 100 {
				t.SetTitle("indexing complete")
				t.Finish(nil)
			}
		}

		if n%demoNoticeTicks == 0 {
			g.SetFeatureNoError(gui.ReqNotify, demoNotices[(n/demoNoticeTicks)%len(demoNotices)])
		}
	}
}
