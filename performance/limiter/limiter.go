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
//
// *** NOTE: all historical versions of this file, as found in any
// git repository, are also covered by the licence, even when this
// notice is not present ***


// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new FpsLimiter can be created with (error handling removed for clarity):
//
//	fps, _ := limiter.NewFPSLimiter(ctx, 60)
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for fps.Wait(ctx) {
//		renderImage()
//	}
//
// The limiter stops when the context passed to NewFPSLimiter() is cancelled.
package limiter

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"
)

// FpsLimiter will trigger every frames per second.
type FpsLimiter struct {
	framesPerSecond atomic.Int64
	secondsPerFrame atomic.Int64

	tick chan bool
}

// NewFPSLimiter is the preferred method of initialisation for FpsLimiter type.
func NewFPSLimiter(ctx context.Context, framesPerSecond int) (*FpsLimiter, error) {
	lim := &FpsLimiter{}
	err := lim.SetLimit(framesPerSecond)
	if err != nil {
		return nil, err
	}

	lim.tick = make(chan bool)

	// run ticker concurrently. the sleep duration is adjusted each frame to
	// account for the time spent waiting for the tick to be received
	go func() {
		t := time.Now()
		adjusted := time.Duration(lim.secondsPerFrame.Load())
		for {
			select {
			case lim.tick <- true:
			case <-ctx.Done():
				return
			}

			select {
			case <-time.After(adjusted):
			case <-ctx.Done():
				return
			}

			spf := time.Duration(lim.secondsPerFrame.Load())
			nt := time.Now()
			adjusted -= nt.Sub(t) - spf

			// a long stall (eg. the process was suspended) should not cause a
			// burst of frames
			if adjusted < 0 || adjusted > spf {
				adjusted = spf
			}
			t = nt
		}
	}()

	return lim, nil
}

// SetLimit changes the limit at which the FpsLimiter waits.
func (lim *FpsLimiter) SetLimit(framesPerSecond int) error {
	if framesPerSecond <= 0 {
		return fmt.Errorf("limiter: frames per second must be positive (%d)", framesPerSecond)
	}
	lim.framesPerSecond.Store(int64(framesPerSecond))
	lim.secondsPerFrame.Store(int64(time.Second / time.Duration(framesPerSecond)))
	return nil
}

// Limit returns the current limit in frames per second.
func (lim *FpsLimiter) Limit() int {
	return int(lim.framesPerSecond.Load())
}

// Wait will block until trigger. Returns false if the context has been
// cancelled.
func (lim *FpsLimiter) Wait(ctx context.Context) bool {
	if ctx.Err() != nil {
		return false
	}
	select {
	case <-lim.tick:
		return true
	case <-ctx.Done():
		return false
	}
}

// HasWaited will return true if time has already elapsed and false it it is
// still yet to happen.
func (lim *FpsLimiter) HasWaited() bool {
	select {
	case <-lim.tick:
		return true
	default:
		// default case means that the channel receiving case doesn't block
		return false
	}
}
