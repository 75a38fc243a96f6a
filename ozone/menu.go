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

package ozone

import (
	"fmt"
	"math"

	"github.com/jetsetilly/osdwidgets/animation"
	"github.com/jetsetilly/osdwidgets/display"
)

// animation durations in milliseconds
const (
	animationCursorDuration    = 133
	animationPushEntryDuration = 166
)

// maximum alpha of the backdrop drawn behind the messagebox
const backdropAlpha = 0.75

// Action is a navigation request from the user.
type Action int

// List of valid Action values.
const (
	ActionUp Action = iota
	ActionDown
	ActionLeft
	ActionRight
	ActionOK
	ActionCancel
)

func (a Action) String() string {
	switch a {
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionOK:
		return "ok"
	case ActionCancel:
		return "cancel"
	}
	return fmt.Sprintf("action %d", int(a))
}

// Menu is the animated state of the ozone menu. All functions must be called
// from the goroutine that owns the animation engine.
type Menu struct {
	anim    *animation.Engine
	theme   Theme
	metrics Metrics

	width  float32
	height float32

	// animations belonging to the sidebar and to the selection list
	sidebarTag    animation.Tag
	selectionTag  animation.Tag
	messageboxTag animation.Tag

	tabs     []string
	consoles []string
	entries  []string

	selection          int
	selectionOld       int
	cursorInSidebar    bool
	cursorInSidebarOld bool

	depth         int
	drawSidebar   bool
	drawOldList   bool
	sidebarOffset float32

	cursorAlpha    float32
	scrollYSidebar float32
	listAlpha      float32

	messageboxState      bool
	messageboxStateOld   bool
	shouldDrawMessagebox bool
	pendingMessage       string
	messageboxAlpha      float32

	// the background is translucent while content is running
	LibretroRunning bool
}

// NewMenu is the preferred method of initialisation for the Menu type.
func NewMenu(anim *animation.Engine, theme Theme) *Menu {
	m := &Menu{
		anim:          anim,
		theme:         theme,
		sidebarTag:    anim.NewTag(),
		selectionTag:  anim.NewTag(),
		messageboxTag: anim.NewTag(),
		tabs:          []string{"Main Menu", "Settings", "History", "Favourites"},
		depth:         1,
		drawSidebar:   true,
		cursorAlpha:   1.0,
		listAlpha:     1.0,
	}
	m.metrics = NewMetrics(1.0)
	return m
}

// Free releases the animations of the menu.
func (m *Menu) Free() {
	m.anim.Release(m.sidebarTag)
	m.anim.Release(m.selectionTag)
	m.anim.Release(m.messageboxTag)
}

// SetTheme changes the colours of the menu.
func (m *Menu) SetTheme(theme Theme) {
	m.theme = theme
}

// Theme returns the current theme.
func (m *Menu) Theme() Theme {
	return m.theme
}

// Layout recomputes the metrics for the size of the renderer.
func (m *Menu) Layout(r display.Renderer) {
	m.width, m.height = r.Size()
	m.metrics = NewMetrics(ScaleFactor(m.width, m.height))
}

// Metrics returns the metrics computed by the most recent call to Layout().
func (m *Menu) Metrics() Metrics {
	return m.metrics
}

// SetTabs sets the names of the system tabs and the console tabs shown in
// the sidebar. The selection is reset to the first tab.
func (m *Menu) SetTabs(system []string, consoles []string) {
	m.tabs = system
	m.consoles = consoles
	m.selection = 0
	m.selectionOld = 0
}

// SetEntries sets the entries of the selection list.
func (m *Menu) SetEntries(entries []string) {
	m.entries = entries
}

func (m *Menu) Selection() int         { return m.selection }
func (m *Menu) InSidebar() bool        { return m.cursorInSidebar }
func (m *Menu) Depth() int             { return m.depth }
func (m *Menu) SidebarVisible() bool   { return m.drawSidebar }
func (m *Menu) SidebarOffset() float32 { return m.sidebarOffset }
func (m *Menu) CursorAlpha() float32   { return m.cursorAlpha }
func (m *Menu) ScrollY() float32       { return m.scrollYSidebar }
func (m *Menu) ListAlpha() float32     { return m.listAlpha }

// MessageboxAlpha returns the current opacity of the messagebox.
func (m *Menu) MessageboxAlpha() float32 {
	return m.messageboxAlpha
}

// Messagebox returns the message being shown. The boolean is false if no
// messagebox is visible.
func (m *Menu) Messagebox() (string, bool) {
	return m.pendingMessage, m.shouldDrawMessagebox
}

// ShowMessagebox displays the message. The messagebox fades in on the next
// call to Iterate().
func (m *Menu) ShowMessagebox(message string) {
	m.pendingMessage = message
	m.shouldDrawMessagebox = true
	m.messageboxState = true
}

// HideMessagebox fades out the messagebox on the next call to Iterate().
func (m *Menu) HideMessagebox() {
	m.messageboxState = false
}

// Iterate starts the animations for any change in the messagebox state.
func (m *Menu) Iterate() {
	if !m.shouldDrawMessagebox || m.messageboxStateOld == m.messageboxState {
		return
	}

	m.messageboxStateOld = m.messageboxState
	m.anim.KillByTag(m.messageboxTag)

	if m.messageboxState {
		m.messageboxAlpha = 0.0
		m.anim.Push(animation.Entry{
			Subject:  &m.messageboxAlpha,
			Target:   1.0,
			Duration: animationPushEntryDuration,
			Easing:   animation.OutQuad,
			Tag:      m.messageboxTag,
		})
		return
	}

	m.messageboxAlpha = 1.0
	m.anim.Push(animation.Entry{
		Subject:  &m.messageboxAlpha,
		Target:   0.0,
		Duration: animationPushEntryDuration,
		Easing:   animation.OutQuad,
		Tag:      m.messageboxTag,
		Callback: func() {
			m.pendingMessage = ""
			m.shouldDrawMessagebox = false
		},
	})
}

// ListOpen animates the opening of a list at the specified depth. At depth
// one the sidebar slides into view and at any greater depth it slides out.
func (m *Menu) ListOpen(depth int) {
	m.depth = depth
	m.drawOldList = true

	m.listAlpha = 0.0
	m.anim.Push(animation.Entry{
		Subject:  &m.listAlpha,
		Target:   1.0,
		Duration: animationPushEntryDuration,
		Easing:   animation.OutQuad,
		Callback: func() {
			m.drawOldList = false
		},
	})

	switch {
	case depth == 1:
		m.drawSidebar = true
		m.anim.Push(animation.Entry{
			Subject:  &m.sidebarOffset,
			Target:   0.0,
			Duration: animationPushEntryDuration,
			Easing:   animation.OutQuad,
		})
	case depth > 1:
		m.anim.Push(animation.Entry{
			Subject:  &m.sidebarOffset,
			Target:   -sidebarWidth,
			Duration: animationPushEntryDuration,
			Easing:   animation.OutQuad,
			Callback: func() {
				m.drawSidebar = false
			},
		})
	}
}

// Navigate applies the action to the sidebar. Returns false if the action
// was not consumed and should be applied to the selection list instead.
func (m *Menu) Navigate(action Action) bool {
	switch action {
	case ActionDown:
		if !m.cursorInSidebar {
			return false
		}
		n := m.selection + 1
		if n >= m.tabCount() {
			n = 0
		}
		m.SidebarGoto(n)

	case ActionUp:
		if !m.cursorInSidebar {
			return false
		}
		n := m.selection - 1
		if n < 0 {
			n = m.tabCount() - 1
		}
		m.SidebarGoto(n)

	case ActionLeft:
		if m.cursorInSidebar {
			return true
		}
		if m.depth > 1 {
			return false
		}
		m.GoToSidebar()

	case ActionRight:
		if !m.cursorInSidebar {
			return m.depth == 1
		}
		m.LeaveSidebar()

	case ActionOK:
		if !m.cursorInSidebar {
			return false
		}
		m.LeaveSidebar()

	case ActionCancel:
		if m.cursorInSidebar {
			if m.selection != 0 {
				m.SidebarGoto(0)
			}
			return true
		}
		if m.depth != 1 {
			return false
		}
		m.GoToSidebar()

	default:
		return false
	}

	return true
}

// Frame draws the menu.
func (m *Menu) Frame(r display.Renderer) {
	bg := m.theme.Background
	if m.LibretroRunning {
		bg = m.theme.BackgroundLibretroRunning
	}
	r.DrawQuad(0, 0, m.width, m.height, bg)

	// header and footer separators
	r.DrawQuad(30, headerTop, m.width-60, 1, m.theme.HeaderFooterSeparator)
	r.DrawQuad(23, m.height-footerHeight, m.width-60, 1, m.theme.HeaderFooterSeparator)

	m.frameSidebar(r)
	m.frameList(r)

	if m.shouldDrawMessagebox {
		a := float32(math.Min(float64(m.messageboxAlpha), backdropAlpha))
		r.DrawQuad(0, 0, m.width, m.height, display.Black.WithAlpha(a))
		m.frameMessagebox(r)
	}
}

func (m *Menu) frameList(r display.Renderer) {
	x := m.sidebarOffset + sidebarWidth + m.metrics.Header.HorizontalPadding
	r.Scissor(m.sidebarOffset+sidebarWidth, headerTop, m.width-sidebarWidth-m.sidebarOffset, m.height-headerTop-footerHeight)
	defer r.ScissorEnd()

	font := r.Font(m.metrics.Font.EntriesLabel*m.metrics.ScaleFactor, false)
	y := m.metrics.EntriesStartY
	for _, e := range m.entries {
		r.DrawText(font, e, x, y, m.theme.Text.WithAlpha(m.listAlpha), display.AlignLeft)
		y += font.LineHeight * 2
	}
}

func (m *Menu) frameMessagebox(r display.Renderer) {
	font := r.Font(m.metrics.Font.EntriesLabel*m.metrics.ScaleFactor, false)
	w := font.TextWidth(m.pendingMessage) + font.LineHeight*2
	h := font.LineHeight * 3

	x := (m.width - w) / 2
	y := (m.height - h) / 2
	r.DrawQuad(x, y, w, h, m.theme.Messagebox.WithAlpha(m.messageboxAlpha))
	r.DrawText(font, m.pendingMessage, m.width/2, y+font.LineHeight, m.theme.Text.WithAlpha(m.messageboxAlpha), display.AlignCenter)
}
