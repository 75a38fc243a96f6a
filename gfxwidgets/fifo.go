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

package gfxwidgets

// ring is a bounded first-in-first-out queue. It is not safe for concurrent
// use and must be protected by the caller.
type ring[T any] struct {
	entries []T
	head    int
	count   int
}

func newRing[T any](capacity int) ring[T] {
	if capacity < 1 {
		capacity = 1
	}
	return ring[T]{entries: make([]T, capacity)}
}

func (r *ring[T]) len() int {
	return r.count
}

func (r *ring[T]) full() bool {
	return r.count == len(r.entries)
}

// push returns false if the ring is full. The value is not added in that case.
func (r *ring[T]) push(v T) bool {
	if r.full() {
		return false
	}
	r.entries[(r.head+r.count)%len(r.entries)] = v
	r.count++
	return true
}

func (r *ring[T]) pop() (T, bool) {
	var zero T
	if r.count == 0 {
		return zero, false
	}
	v := r.entries[r.head]
	r.entries[r.head] = zero
	r.head = (r.head + 1) % len(r.entries)
	r.count--
	return v, true
}
