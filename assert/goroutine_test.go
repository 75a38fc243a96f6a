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

package assert_test

import (
	"sync"
	"testing"

	"github.com/jetsetilly/osdwidgets/assert"
	"github.com/jetsetilly/osdwidgets/test"
)

func TestGoRoutineID(t *testing.T) {
	id := assert.GetGoRoutineID()
	test.ExpectInequality(t, id, 0)
	test.ExpectEquality(t, assert.GetGoRoutineID(), id)

	var other uint64
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		other = assert.GetGoRoutineID()
	}()
	wg.Wait()

	test.ExpectInequality(t, other, id)
}

func TestOwner(t *testing.T) {
	o := assert.NewOwner("test")
	o.Claim()
	o.Check()

	var panicked bool
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer func() {
			panicked = recover() != nil
		}()
		o.Check()
	}()
	wg.Wait()

	// the check only panics when assertions are enabled
	test.ExpectEquality(t, panicked, assert.Enabled)
}
