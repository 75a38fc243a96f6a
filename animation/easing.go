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

import (
	"fmt"
	"math"
)

// Easing selects the function used to shape the movement of an animation.
type Easing int

// List of valid Easing values. The ordering is stable because scripts refer
// to easing functions by number.
const (
	Linear Easing = iota
	InQuad
	OutQuad
	InOutQuad
	OutInQuad
	InCubic
	OutCubic
	InOutCubic
	OutInCubic
	InSine
	OutSine
	InOutSine
	OutInSine
	InBounce
	OutBounce
	InOutBounce
	OutInBounce

	numEasing
)

var easingNames = [...]string{
	"linear",
	"in quad", "out quad", "in out quad", "out in quad",
	"in cubic", "out cubic", "in out cubic", "out in cubic",
	"in sine", "out sine", "in out sine", "out in sine",
	"in bounce", "out bounce", "in out bounce", "out in bounce",
}

func (e Easing) String() string {
	if e.Valid() {
		return easingNames[e]
	}
	return fmt.Sprintf("easing(%d)", int(e))
}

// Valid returns true if the Easing value is one of the defined values.
func (e Easing) Valid() bool {
	return e >= Linear && e < numEasing
}

func quad(t float64) float64 {
	return t * t
}

func cubic(t float64) float64 {
	return t * t * t
}

func sine(t float64) float64 {
	return 1 - math.Cos(t*math.Pi/2)
}

func bounce(t float64) float64 {
	// bounce is defined by its out form
	out := func(t float64) float64 {
		const n = 7.5625
		const d = 2.75
		switch {
		case t < 1/d:
			return n * t * t
		case t < 2/d:
			t -= 1.5 / d
			return n*t*t + 0.75
		case t < 2.5/d:
			t -= 2.25 / d
			return n*t*t + 0.9375
		}
		t -= 2.625 / d
		return n*t*t + 0.984375
	}
	return 1 - out(1-t)
}

// the four variations of every easing family are derived from the "in" form
func in(f func(float64) float64, t float64) float64 {
	return f(t)
}

func out(f func(float64) float64, t float64) float64 {
	return 1 - f(1-t)
}

func inOut(f func(float64) float64, t float64) float64 {
	if t < 0.5 {
		return f(t*2) / 2
	}
	return 1 - f(2-t*2)/2
}

func outIn(f func(float64) float64, t float64) float64 {
	if t < 0.5 {
		return out(f, t*2) / 2
	}
	return 0.5 + f(t*2-1)/2
}

// Ease returns the interpolation factor for progress t. The progress value
// is clamped to the range 0 to 1. Invalid Easing values behave like Linear.
func (e Easing) Ease(t float32) float32 {
	p := math.Max(0, math.Min(1, float64(t)))

	var f func(float64) float64
	switch e {
	case InQuad, OutQuad, InOutQuad, OutInQuad:
		f = quad
	case InCubic, OutCubic, InOutCubic, OutInCubic:
		f = cubic
	case InSine, OutSine, InOutSine, OutInSine:
		f = sine
	case InBounce, OutBounce, InOutBounce, OutInBounce:
		f = bounce
	default:
		return float32(p)
	}

	switch (e - InQuad) % 4 {
	case 0:
		p = in(f, p)
	case 1:
		p = out(f, p)
	case 2:
		p = inOut(f, p)
	case 3:
		p = outIn(f, p)
	}

	return float32(p)
}
