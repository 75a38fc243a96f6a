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

package performance_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/osdwidgets/performance"
	"github.com/jetsetilly/osdwidgets/test"
)

func TestFPS(t *testing.T) {
	fps := performance.NewFPS(time.Second)
	test.ExpectEquality(t, fps.String(), "")

	now := time.Now()
	test.ExpectFailure(t, fps.Frame(now))

	// 30 frames in one second
	for i := 1; i < 30; i++ {
		test.ExpectFailure(t, fps.Frame(now.Add(time.Duration(i)*time.Second/30)))
	}
	test.ExpectSuccess(t, fps.Frame(now.Add(time.Second)))
	test.ExpectApproximate(t, fps.FPS(), 30.0, 0.001)
	test.ExpectEquality(t, fps.String(), "30.0 fps")
}

func TestParseProfileString(t *testing.T) {
	p, err := performance.ParseProfileString("cpu,trace")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileTrace)

	p, err = performance.ParseProfileString("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)

	_, err = performance.ParseProfileString("cpu,disk")
	test.ExpectFailure(t, err)
}

func TestRunProfilerNone(t *testing.T) {
	var ran bool
	err := performance.RunProfiler(performance.ProfileNone, "test", func() error {
		ran = true
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ran)
}
