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

package animation

import "fmt"

// Tag identifies a group of animations and timers. The zero value is NoTag,
// which groups nothing and can never be killed.
type Tag struct {
	index      uint32
	generation uint32
}

// NoTag is the zero value of the Tag type.
var NoTag = Tag{}

func (t Tag) String() string {
	if t == NoTag {
		return "no tag"
	}
	return fmt.Sprintf("tag %d:%d", t.index, t.generation)
}

// tags is an arena of tag slots. A slot's generation is incremented when the
// tag is released so that any copy of the old tag is recognisably stale.
// Generations start at one so that the zero Tag is never live.
type tags struct {
	generations []uint32
	free        []uint32
}

func (a *tags) issue() Tag {
	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		return Tag{index: idx, generation: a.generations[idx]}
	}
	a.generations = append(a.generations, 1)
	return Tag{index: uint32(len(a.generations) - 1), generation: 1}
}

func (a *tags) live(t Tag) bool {
	if t.generation == 0 || int(t.index) >= len(a.generations) {
		return false
	}
	return a.generations[t.index] == t.generation
}

func (a *tags) release(t Tag) bool {
	if !a.live(t) {
		return false
	}
	a.generations[t.index]++
	if a.generations[t.index] == 0 {
		a.generations[t.index] = 1
	}
	a.free = append(a.free, t.index)
	return true
}
