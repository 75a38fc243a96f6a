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

package assert

import (
	"bytes"
	"fmt"
	"runtime"
	"strconv"
	"sync/atomic"
)

// GetGoRoutineID returns an identify for a goroutine. it returns a result that
// is (a) different between goroutines and (b) consistent for a given
// goroutine. It should only ever be used for debugging or testing purposes.
func GetGoRoutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	b = b[:bytes.IndexByte(b, ' ')]
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// Owner records the goroutine that owns a resource. The widget context and
// the scripting interpreter are only ever touched from a single goroutine and
// Owner is used to catch violations of that rule.
//
// The check is only performed when the program is built with the
// "assertions" build tag.
type Owner struct {
	name string
	id   atomic.Uint64
}

// NewOwner is the preferred method of initialisation for the Owner type. The
// name is used in the panic message.
func NewOwner(name string) *Owner {
	return &Owner{name: name}
}

// Claim the resource for the current goroutine.
func (o *Owner) Claim() {
	if !Enabled {
		return
	}
	o.id.Store(GetGoRoutineID())
}

// Check that the current goroutine is the owner of the resource. The first
// goroutine to be checked becomes the owner if the resource has not been
// claimed.
func (o *Owner) Check() {
	if !Enabled {
		return
	}
	id := GetGoRoutineID()
	if o.id.CompareAndSwap(0, id) {
		return
	}
	if o.id.Load() != id {
		panic(fmt.Sprintf("assert: %s accessed from goroutine %d but owned by goroutine %d", o.name, id, o.id.Load()))
	}
}
