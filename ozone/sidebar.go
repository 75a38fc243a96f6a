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
	"github.com/jetsetilly/osdwidgets/animation"
	"github.com/jetsetilly/osdwidgets/display"
)

// sidebar geometry in pixels. these are not scaled
const (
	sidebarWidth       = 408
	sidebarEntryHeight = 65
	sidebarSeparator   = 30
	headerTop          = 87
	footerHeight       = 78
)

func (m *Menu) tabCount() int {
	return len(m.tabs) + len(m.consoles)
}

// the y position of the tab relative to the first tab. console tabs are
// below a separator
func (m *Menu) tabY(n int) float32 {
	y := float32(n * sidebarEntryHeight)
	if n >= len(m.tabs) {
		y += sidebarSeparator
	}
	return y
}

func (m *Menu) sidebarHeight() float32 {
	h := float32(m.tabCount() * sidebarEntryHeight)
	if len(m.consoles) > 0 {
		h += sidebarSeparator
	}
	return h
}

func (m *Menu) fadeCursor(tag animation.Tag) {
	m.cursorAlpha = 0.0
	m.anim.Push(animation.Entry{
		Subject:  &m.cursorAlpha,
		Target:   1.0,
		Duration: animationCursorDuration,
		Easing:   animation.OutQuad,
		Tag:      tag,
	})
}

// GoToSidebar moves the cursor from the selection list to the sidebar.
func (m *Menu) GoToSidebar() {
	m.cursorInSidebarOld = m.cursorInSidebar
	m.cursorInSidebar = true
	m.fadeCursor(m.selectionTag)
}

// LeaveSidebar moves the cursor from the sidebar to the selection list. The
// cursor stays in the sidebar if the list is empty.
func (m *Menu) LeaveSidebar() {
	if len(m.entries) == 0 {
		return
	}
	m.selectionOld = m.selection
	m.cursorInSidebarOld = m.cursorInSidebar
	m.cursorInSidebar = false
	m.fadeCursor(m.selectionTag)
}

// SidebarGoto selects the sidebar tab and scrolls the sidebar so that the tab
// is in the middle of the display where possible.
func (m *Menu) SidebarGoto(n int) {
	if n < 0 || n >= m.tabCount() {
		return
	}

	if m.selection != n {
		m.selectionOld = m.selection
		m.selection = n
		m.cursorInSidebarOld = m.cursorInSidebar
		m.anim.KillByTag(m.sidebarTag)
	}

	m.fadeCursor(m.sidebarTag)

	var scroll float32
	middle := m.metrics.SidebarStartY + m.scrollYSidebar + m.tabY(n) + sidebarEntryHeight/2
	bottom := m.height - headerTop - footerHeight
	entriesMiddle := m.height / 2
	entriesHeight := m.sidebarHeight()

	if middle != entriesMiddle {
		scroll = m.scrollYSidebar - (middle - entriesMiddle)
	}
	if scroll+entriesHeight < bottom {
		scroll = -(sidebarSeparator + entriesHeight - bottom)
	}
	if scroll > 0 {
		scroll = 0
	}

	m.anim.Push(animation.Entry{
		Subject:  &m.scrollYSidebar,
		Target:   scroll,
		Duration: animationCursorDuration,
		Easing:   animation.OutQuad,
		Tag:      m.sidebarTag,
	})
}

func (m *Menu) frameSidebar(r display.Renderer) {
	if !m.drawSidebar {
		return
	}

	r.Scissor(0, headerTop, sidebarWidth, m.height-headerTop-footerHeight)
	defer r.ScissorEnd()

	const gradient = 55
	h := m.height - headerTop - gradient - footerHeight
	if !m.LibretroRunning {
		r.DrawQuad(m.sidebarOffset, headerTop+1, sidebarWidth, gradient/2, m.theme.SidebarTopGradient)
		r.DrawQuad(m.sidebarOffset, headerTop+1+gradient/2, sidebarWidth, h, m.theme.SidebarBackground)
		r.DrawQuad(m.sidebarOffset, gradient*2+h, sidebarWidth, gradient/2+1, m.theme.SidebarBottomGradient)
	}

	start := m.metrics.SidebarStartY + m.scrollYSidebar

	if m.cursorInSidebar {
		r.DrawQuad(m.sidebarOffset+41, start+m.tabY(m.selection)-8, sidebarWidth-81, 52, m.theme.Cursor.WithAlpha(m.cursorAlpha))
	}
	if m.cursorInSidebarOld {
		r.DrawQuad(m.sidebarOffset+41, start+m.tabY(m.selectionOld)-8, sidebarWidth-81, 52, m.theme.Cursor.WithAlpha(1-m.cursorAlpha))
	}

	font := r.Font(FontSizeSidebar, false)
	for i := 0; i < m.tabCount(); i++ {
		var title string
		if i < len(m.tabs) {
			title = m.tabs[i]
		} else {
			title = m.consoles[i-len(m.tabs)]
		}

		col := m.theme.Text
		if i == m.selection {
			col = m.theme.TextSelected
		}

		if i == len(m.tabs) {
			r.DrawQuad(m.sidebarOffset+51, start+m.tabY(i)-sidebarSeparator-5, sidebarWidth-81, 1, m.theme.EntriesBorder)
		}

		r.DrawText(font, title, m.sidebarOffset+105, start+m.tabY(i)+FontSizeSidebar, col, display.AlignLeft)
	}
}
