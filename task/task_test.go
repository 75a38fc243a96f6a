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

package task_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/jetsetilly/osdwidgets/task"
	"github.com/jetsetilly/osdwidgets/test"
)

func TestTask(t *testing.T) {
	a := task.New("Scanning")
	b := task.New("Scanning")
	test.ExpectInequality(t, a.Ident(), b.Ident())

	st := a.State()
	test.ExpectEquality(t, st.Title, "Scanning")
	test.ExpectEquality(t, st.Progress, 0)
	test.ExpectFailure(t, st.Finished)

	a.SetProgress(150)
	test.ExpectEquality(t, a.Progress(), 100)
	a.SetProgress(-20)
	test.ExpectEquality(t, a.Progress(), -1)

	a.Finish(errors.New("disk full"))
	st = a.State()
	test.ExpectSuccess(t, st.Finished)
	test.ExpectSuccess(t, st.Error)
	test.ExpectEquality(t, a.Error(), "disk full")

	b.Cancel()
	test.ExpectSuccess(t, b.Cancelled())
	test.ExpectFailure(t, b.State().Error)

	b.SetFrontendData(42)
	test.ExpectEquality(t, b.FrontendData().(int), 42)
}

func TestConcurrentProgress(t *testing.T) {
	a := task.New("Downloading")

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := 0; p <= 100; p++ {
				a.SetProgress(p)
				_ = a.State()
			}
		}()
	}
	wg.Wait()

	test.ExpectEquality(t, a.Progress(), 100)
}
