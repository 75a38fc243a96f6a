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

package performance

import (
	"fmt"
	"time"
)

// FPS measures the rate at which frames are drawn. The rate is calculated
// over a period of time rather than for each frame so that the value shown to
// the user is steady.
type FPS struct {
	period time.Duration

	start  time.Time
	frames int

	fps float64
}

// NewFPS is the preferred method of initialisation for the FPS type. The
// period is the length of time over which the rate is calculated.
func NewFPS(period time.Duration) *FPS {
	return &FPS{
		period: period,
	}
}

// Frame should be called once per drawn frame. Returns true if a new rate has
// been calculated.
func (f *FPS) Frame(now time.Time) bool {
	if f.start.IsZero() {
		f.start = now
		return false
	}

	f.frames++

	elapsed := now.Sub(f.start)
	if elapsed < f.period {
		return false
	}

	f.fps = CalcFPS(f.frames, elapsed.Seconds())
	f.start = now
	f.frames = 0
	return true
}

// FPS returns the most recently calculated rate. Zero if no rate has been
// calculated yet.
func (f *FPS) FPS() float64 {
	return f.fps
}

// String returns the rate in the form used by the FPS counter widget. Empty if
// no rate has been calculated yet.
func (f *FPS) String() string {
	if f.fps == 0 {
		return ""
	}
	return fmt.Sprintf("%.1f fps", f.fps)
}

// CalcFPS takes the the number of frames and duration (in seconds) and returns
// the frames-per-second.
func CalcFPS(numFrames int, duration float64) float64 {
	if duration <= 0 {
		return 0
	}
	return float64(numFrames) / duration
}
