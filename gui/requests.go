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

package gui

import (
	"errors"
	"fmt"

	"github.com/jetsetilly/osdwidgets/gfxwidgets"
)

// FeatureReq is used to request the setting of a gui attribute. For example,
// pushing a message onto the message queue.
type FeatureReq string

// FeatureReqData represents the information associated with a FeatureReq. See
// commentary for the defined FeatureReq values for the underlying type.
type FeatureReqData interface{}

// ErrUnsupportedFeature is returned if the GUI does not support the request.
var ErrUnsupportedFeature = errors.New("unsupported gui feature")

// List of valid feature requests. Arguments must be of the type specified.
//
// Note that, like the name suggests, these are requests, they may or may not
// be satisfied depending other conditions in the GUI.
const (
	// push a message onto the message queue
	ReqPushMessage FeatureReq = "ReqPushMessage" // gfxwidgets.Message

	// show the progress of a task
	ReqPushTask FeatureReq = "ReqPushTask" // *task.Task

	// forward a notice to the widget context
	ReqNotify FeatureReq = "ReqNotify" // notifications.Notice

	// show or dismiss a help message
	ReqHelpMessage        FeatureReq = "ReqHelpMessage"        // HelpMessage
	ReqHelpMessageDismiss FeatureReq = "ReqHelpMessageDismiss" // gfxwidgets.HelpPosition

	// change the volume. the change is relative to the current volume
	ReqVolume FeatureReq = "ReqVolume" // float64 (dB)

	// the text of the FPS counter
	ReqFPS FeatureReq = "ReqFPS" // string

	// the generic message at the top of the display
	ReqSetMessage FeatureReq = "ReqSetMessage" // string

	// show or hide the menu
	ReqMenu FeatureReq = "ReqMenu" // bool

	// show a message in the menu. an empty string hides the messagebox
	ReqMessagebox FeatureReq = "ReqMessagebox" // string

	// put gui output into full-screen mode (ie. no window border and content
	// the size of the monitor)
	ReqFullScreen FeatureReq = "ReqFullScreen" // bool

	// stop the UI loop
	ReqQuit FeatureReq = "ReqQuit" // nil
)

// HelpMessage is the argument for ReqHelpMessage.
type HelpMessage struct {
	Position gfxwidgets.HelpPosition
	Title    string
	Message  string

	// milliseconds. zero means no timeout and a negative value means the
	// timeout in the preferences
	Timeout int
}

func (h HelpMessage) String() string {
	return fmt.Sprintf("%s: %s", h.Position, h.Title)
}

type request struct {
	request FeatureReq
	args    []FeatureReqData
	result  chan error
}

// Requests is a queue of feature requests. It is used by hosts to implement
// the SetFeature() and SetFeatureNoError() functions of the GUI interface.
type Requests struct {
	queue chan request
}

// the number of requests that can be queued before SetFeature() blocks
const requestQueueLen = 64

// NewRequests is the preferred method of initialisation for the Requests
// type.
func NewRequests() *Requests {
	return &Requests{
		queue: make(chan request, requestQueueLen),
	}
}

// SetFeature implements the GUI interface.
func (r *Requests) SetFeature(req FeatureReq, args ...FeatureReqData) error {
	result := make(chan error, 1)
	r.queue <- request{request: req, args: args, result: result}
	return <-result
}

// SetFeatureNoError implements the GUI interface.
func (r *Requests) SetFeatureNoError(req FeatureReq, args ...FeatureReqData) {
	r.queue <- request{request: req, args: args}
}

// Service applies all queued requests. It should be called once per frame by
// the UI goroutine. A request that can not be applied by the Dispatcher is
// passed to the fallback function, which may be nil.
func (r *Requests) Service(d *Dispatcher, fallback func(FeatureReq, ...FeatureReqData) error) {
	for {
		select {
		case req := <-r.queue:
			err := d.SetFeature(req.request, req.args...)
			if errors.Is(err, ErrUnsupportedFeature) && fallback != nil {
				err = fallback(req.request, req.args...)
			}
			if req.result != nil {
				req.result <- err
			}
		default:
			return
		}
	}
}
