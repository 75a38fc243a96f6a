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

// Package task represents background jobs whose progress is shown by the
// on-screen display. Tasks are owned and updated by worker goroutines. The
// on-screen display only ever reads them.
package task

import (
	"sync"

	"github.com/google/uuid"
)

// Task is a single background job. All methods are safe for concurrent use.
type Task struct {
	crit sync.RWMutex

	ident uuid.UUID
	title string

	// progress is in the range 0 to 100. a negative value means that the
	// progress of the task is unknown
	progress int

	finished  bool
	cancelled bool
	err       string

	// a muted task is never shown by the on-screen display
	mute bool

	// frontendData is set by the on-screen display and is never touched by the
	// task owner
	frontendData any
}

// New is the preferred method of initialisation for the Task type.
func New(title string) *Task {
	return &Task{
		ident: uuid.New(),
		title: title,
	}
}

// State is a consistent snapshot of the fields of a task.
type State struct {
	Title     string
	Progress  int
	Finished  bool
	Cancelled bool
	Error     bool
	Mute      bool
}

// State returns a consistent snapshot of the task.
func (t *Task) State() State {
	t.crit.RLock()
	defer t.crit.RUnlock()
	return State{
		Title:     t.title,
		Progress:  t.progress,
		Finished:  t.finished,
		Cancelled: t.cancelled,
		Error:     t.err != "",
		Mute:      t.mute,
	}
}

// Ident returns the unique identifier of the task.
func (t *Task) Ident() uuid.UUID {
	return t.ident
}

func (t *Task) Title() string {
	t.crit.RLock()
	defer t.crit.RUnlock()
	return t.title
}

func (t *Task) SetTitle(title string) {
	t.crit.Lock()
	defer t.crit.Unlock()
	t.title = title
}

func (t *Task) Progress() int {
	t.crit.RLock()
	defer t.crit.RUnlock()
	return t.progress
}

// SetProgress sets the progress of the task. Values above 100 are clamped.
// Negative values indicate that the progress is unknown.
func (t *Task) SetProgress(progress int) {
	t.crit.Lock()
	defer t.crit.Unlock()
	if progress > 100 {
		progress = 100
	} else if progress < 0 {
		progress = -1
	}
	t.progress = progress
}

func (t *Task) Finished() bool {
	t.crit.RLock()
	defer t.crit.RUnlock()
	return t.finished
}

// Finish marks the task as finished. A non-nil error marks the task as
// having failed.
func (t *Task) Finish(err error) {
	t.crit.Lock()
	defer t.crit.Unlock()
	t.finished = true
	if err != nil {
		t.err = err.Error()
	}
}

func (t *Task) Cancelled() bool {
	t.crit.RLock()
	defer t.crit.RUnlock()
	return t.cancelled
}

// Cancel marks the task as cancelled.
func (t *Task) Cancel() {
	t.crit.Lock()
	defer t.crit.Unlock()
	t.cancelled = true
}

// Error returns the error message of a failed task. Empty if the task has not
// failed.
func (t *Task) Error() string {
	t.crit.RLock()
	defer t.crit.RUnlock()
	return t.err
}

// SetMute prevents the task from being shown by the on-screen display.
func (t *Task) SetMute(mute bool) {
	t.crit.Lock()
	defer t.crit.Unlock()
	t.mute = mute
}

// FrontendData returns the value set by SetFrontendData().
func (t *Task) FrontendData() any {
	t.crit.RLock()
	defer t.crit.RUnlock()
	return t.frontendData
}

// SetFrontendData stores a value on behalf of the on-screen display.
func (t *Task) SetFrontendData(d any) {
	t.crit.Lock()
	defer t.crit.Unlock()
	t.frontendData = d
}
