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

package ozone_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/osdwidgets/animation"
	"github.com/jetsetilly/osdwidgets/display"
	"github.com/jetsetilly/osdwidgets/ozone"
	"github.com/jetsetilly/osdwidgets/test"
)

func newMenu(t *testing.T) (*ozone.Menu, *animation.Engine, *display.Recorder) {
	t.Helper()
	anim := animation.NewEngine()
	m := ozone.NewMenu(anim, ozone.BasicBlack)
	r := display.NewRecorder(1920, 1080)
	m.Layout(r)
	t.Cleanup(m.Free)
	return m, anim, r
}

func TestMetrics(t *testing.T) {
	test.ExpectEquality(t, ozone.ScaleFactor(1920, 1080), float32(1.0))
	test.ExpectEquality(t, ozone.ScaleFactor(960, 540), float32(0.5))

	m := ozone.NewMetrics(1.0)
	test.ExpectEquality(t, m.Header.Height, float32(130))
	test.ExpectEquality(t, m.Header.IconY, float32(20))
	test.ExpectApproximate(t, m.Header.TitleY, 30.4, 0.001)
	test.ExpectEquality(t, m.Header.TimeIconOffset, float32(70*2+138/4.0))
	test.ExpectEquality(t, m.EntriesStartY, float32(190))
	test.ExpectEquality(t, m.SidebarStartY, float32(175))

	// fonts are not scaled
	h := ozone.NewMetrics(0.5)
	test.ExpectEquality(t, h.Font.Title, float32(ozone.FontSizeTitle))
	test.ExpectEquality(t, h.Header.Height, float32(65))
	test.ExpectEquality(t, h.SidebarStartY, float32(87.5))
}

const themeTOML = `
name = "test"

[colors]
background = "#102030"
background_libretro_running = "#10203080"
header_footer_separator = "#ffffff"
text = "#ffffff"
text_selected = "#00ff00"
text_sublabel = "#808080"
entries_icon = "#ffffff"
entries_border = "#00ff00"
sidebar_background = "#000000"
sidebar_top_gradient = "#000000"
sidebar_bottom_gradient = "#000000"
cursor = "#00ff00"
messagebox = "#333333"
`

func TestParseTheme(t *testing.T) {
	th, err := ozone.ParseTheme(strings.NewReader(themeTOML))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, th.Name, "test")
	test.ExpectEquality(t, th.Background, display.Hex(0x102030))
	test.ExpectEquality(t, th.BackgroundLibretroRunning, display.Hex(0x102030).WithAlpha(128.0/255))
	test.ExpectEquality(t, th.Cursor, display.Hex(0x00ff00))
}

func TestParseThemeErrors(t *testing.T) {
	_, err := ozone.ParseTheme(strings.NewReader(strings.Replace(themeTOML, `name = "test"`, "", 1)))
	test.ExpectEquality(t, err, ozone.ErrThemeName)

	_, err = ozone.ParseTheme(strings.NewReader(strings.Replace(themeTOML, `cursor = "#00ff00"`, "", 1)))
	test.ExpectFailure(t, err)

	_, err = ozone.ParseTheme(strings.NewReader(strings.Replace(themeTOML, `"#333333"`, `"333333"`, 1)))
	test.ExpectFailure(t, err)

	_, err = ozone.ParseTheme(strings.NewReader(strings.Replace(themeTOML, `"#333333"`, `"#33333g"`, 1)))
	test.ExpectFailure(t, err)

	_, err = ozone.ParseTheme(strings.NewReader(themeTOML + "unknown = 1\n"))
	test.ExpectFailure(t, err)

	_, err = ozone.ParseTheme(strings.NewReader("name = "))
	test.ExpectFailure(t, err)
}

func TestMessagebox(t *testing.T) {
	m, anim, r := newMenu(t)

	m.ShowMessagebox("hello")
	m.Iterate()
	test.ExpectEquality(t, m.MessageboxAlpha(), float32(0))

	anim.Update(83)
	test.ExpectApproximate(t, m.MessageboxAlpha(), 0.75, 0.01)
	anim.Update(83)
	test.ExpectEquality(t, m.MessageboxAlpha(), float32(1))

	r.Reset()
	m.Frame(r)
	_, ok := r.FindText("hello")
	test.ExpectSuccess(t, ok)

	// the backdrop is never more than three quarters opaque
	var backdrop bool
	for _, c := range r.Commands() {
		if c.Op == display.OpQuad && c.W == 1920 && c.H == 1080 && c.Color == display.Black.WithAlpha(0.75) {
			backdrop = true
		}
	}
	test.ExpectSuccess(t, backdrop)

	m.HideMessagebox()
	m.Iterate()
	test.ExpectEquality(t, m.MessageboxAlpha(), float32(1))
	msg, ok := m.Messagebox()
	test.ExpectEquality(t, msg, "hello")
	test.ExpectSuccess(t, ok)

	anim.Update(200)
	test.ExpectEquality(t, m.MessageboxAlpha(), float32(0))
	msg, ok = m.Messagebox()
	test.ExpectEquality(t, msg, "")
	test.ExpectFailure(t, ok)

	r.Reset()
	m.Frame(r)
	_, ok = r.FindText("hello")
	test.ExpectFailure(t, ok)
}

func TestMessageboxInterrupted(t *testing.T) {
	m, anim, _ := newMenu(t)

	m.ShowMessagebox("one")
	m.Iterate()
	anim.Update(50)

	// hiding during the fade in starts the fade out from fully opaque
	m.HideMessagebox()
	m.Iterate()
	test.ExpectEquality(t, m.MessageboxAlpha(), float32(1))
	test.ExpectEquality(t, anim.Count(), 1)

	// showing again during the fade out cancels the fade out
	m.ShowMessagebox("two")
	m.Iterate()
	anim.Update(500)
	msg, ok := m.Messagebox()
	test.ExpectEquality(t, msg, "two")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, m.MessageboxAlpha(), float32(1))
}

func TestListOpen(t *testing.T) {
	m, anim, _ := newMenu(t)

	m.ListOpen(2)
	test.ExpectEquality(t, m.ListAlpha(), float32(0))
	anim.Update(166)
	test.ExpectEquality(t, m.ListAlpha(), float32(1))
	test.ExpectEquality(t, m.SidebarOffset(), float32(-408))
	test.ExpectFailure(t, m.SidebarVisible())

	m.ListOpen(1)
	test.ExpectSuccess(t, m.SidebarVisible())
	anim.Update(166)
	test.ExpectEquality(t, m.SidebarOffset(), float32(0))
	test.ExpectSuccess(t, m.SidebarVisible())
}

func TestSidebarNavigation(t *testing.T) {
	m, anim, r := newMenu(t)
	m.SetTabs([]string{"Main Menu", "Settings", "History", "Favourites", "Images"},
		[]string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"})
	m.SetEntries([]string{"Load Content", "Quit"})

	// not in the sidebar so the action is not consumed
	test.ExpectFailure(t, m.Navigate(ozone.ActionDown))

	test.ExpectSuccess(t, m.Navigate(ozone.ActionLeft))
	test.ExpectSuccess(t, m.InSidebar())
	test.ExpectEquality(t, m.CursorAlpha(), float32(0))
	anim.Update(133)
	test.ExpectEquality(t, m.CursorAlpha(), float32(1))

	// the first console tab is below the separator
	m.SidebarGoto(5)
	anim.Update(133)
	test.ExpectEquality(t, m.Selection(), 5)
	test.ExpectEquality(t, m.ScrollY(), float32(-22))

	// the last tab is clamped to the bottom of the sidebar
	m.SidebarGoto(14)
	anim.Update(133)
	test.ExpectEquality(t, m.ScrollY(), float32(-120))

	// wrap around
	test.ExpectSuccess(t, m.Navigate(ozone.ActionDown))
	test.ExpectEquality(t, m.Selection(), 0)
	test.ExpectSuccess(t, m.Navigate(ozone.ActionUp))
	test.ExpectEquality(t, m.Selection(), 14)

	test.ExpectSuccess(t, m.Navigate(ozone.ActionCancel))
	test.ExpectEquality(t, m.Selection(), 0)
	anim.Update(133)
	test.ExpectEquality(t, m.ScrollY(), float32(0))

	test.ExpectSuccess(t, m.Navigate(ozone.ActionOK))
	test.ExpectFailure(t, m.InSidebar())

	r.Reset()
	m.Frame(r)
	_, ok := r.FindText("Load Content")
	test.ExpectSuccess(t, ok)
	_, ok = r.FindText("Favourites")
	test.ExpectSuccess(t, ok)
}

func TestLeaveEmptyList(t *testing.T) {
	m, _, _ := newMenu(t)
	m.GoToSidebar()
	m.LeaveSidebar()
	test.ExpectSuccess(t, m.InSidebar())
}
