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
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/jetsetilly/osdwidgets/display"
)

// Theme is the set of colours used to draw the menu.
type Theme struct {
	Name string

	Background                display.Color
	BackgroundLibretroRunning display.Color
	HeaderFooterSeparator     display.Color

	Text         display.Color
	TextSelected display.Color
	TextSublabel display.Color

	EntriesIcon   display.Color
	EntriesBorder display.Color

	SidebarBackground     display.Color
	SidebarTopGradient    display.Color
	SidebarBottomGradient display.Color

	Cursor     display.Color
	Messagebox display.Color
}

// Built in themes.
var (
	BasicWhite = Theme{
		Name:                      "basic white",
		Background:                display.Hex(0xebebeb),
		BackgroundLibretroRunning: display.Hex(0xebebeb).WithAlpha(0.9),
		HeaderFooterSeparator:     display.Hex(0x2b2b2b),
		Text:                      display.Hex(0x2b2b2b),
		TextSelected:              display.Hex(0x31b9eb),
		TextSublabel:              display.Hex(0x6b6b6b),
		EntriesIcon:               display.Hex(0x2b2b2b),
		EntriesBorder:             display.Hex(0x10bec5),
		SidebarBackground:         display.Hex(0xf2f2f2),
		SidebarTopGradient:        display.Hex(0xebebeb),
		SidebarBottomGradient:     display.Hex(0xebebeb),
		Cursor:                    display.Hex(0x31b9eb),
		Messagebox:                display.Hex(0xffffff),
	}

	BasicBlack = Theme{
		Name:                      "basic black",
		Background:                display.Hex(0x2d2d2d),
		BackgroundLibretroRunning: display.Hex(0x2d2d2d).WithAlpha(0.9),
		HeaderFooterSeparator:     display.Hex(0xffffff),
		Text:                      display.Hex(0xffffff),
		TextSelected:              display.Hex(0x00d9ae),
		TextSublabel:              display.Hex(0x9f9fa1),
		EntriesIcon:               display.Hex(0xffffff),
		EntriesBorder:             display.Hex(0x00d9ae),
		SidebarBackground:         display.Hex(0x262626),
		SidebarTopGradient:        display.Hex(0x2d2d2d),
		SidebarBottomGradient:     display.Hex(0x2d2d2d),
		Cursor:                    display.Hex(0x00d9ae),
		Messagebox:                display.Hex(0x3a3a3a),
	}
)

// Themes returns the built in themes.
func Themes() []Theme {
	return []Theme{BasicWhite, BasicBlack}
}

// the representation of a theme in a TOML file. colours are "#rrggbb" or
// "#rrggbbaa" strings
type themeFile struct {
	Name   string `toml:"name"`
	Colors struct {
		Background                string `toml:"background"`
		BackgroundLibretroRunning string `toml:"background_libretro_running"`
		HeaderFooterSeparator     string `toml:"header_footer_separator"`
		Text                      string `toml:"text"`
		TextSelected              string `toml:"text_selected"`
		TextSublabel              string `toml:"text_sublabel"`
		EntriesIcon               string `toml:"entries_icon"`
		EntriesBorder             string `toml:"entries_border"`
		SidebarBackground         string `toml:"sidebar_background"`
		SidebarTopGradient        string `toml:"sidebar_top_gradient"`
		SidebarBottomGradient     string `toml:"sidebar_bottom_gradient"`
		Cursor                    string `toml:"cursor"`
		Messagebox                string `toml:"messagebox"`
	} `toml:"colors"`
}

// ErrThemeName is returned by ParseTheme() if the theme has no name.
var ErrThemeName = errors.New("ozone: theme has no name")

// LoadTheme reads a theme from a TOML file.
func LoadTheme(path string) (Theme, error) {
	f, err := os.Open(path)
	if err != nil {
		return Theme{}, fmt.Errorf("ozone: %w", err)
	}
	defer f.Close()
	return ParseTheme(f)
}

// ParseTheme decodes a theme in TOML format. Every colour must be present.
// Unknown keys are an error.
func ParseTheme(r io.Reader) (Theme, error) {
	var tf themeFile
	md, err := toml.NewDecoder(r).Decode(&tf)
	if err != nil {
		return Theme{}, fmt.Errorf("ozone: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Theme{}, fmt.Errorf("ozone: unknown key %s", undecoded[0])
	}

	if strings.TrimSpace(tf.Name) == "" {
		return Theme{}, ErrThemeName
	}

	t := Theme{Name: tf.Name}

	fields := []struct {
		key string
		val string
		col *display.Color
	}{
		{"background", tf.Colors.Background, &t.Background},
		{"background_libretro_running", tf.Colors.BackgroundLibretroRunning, &t.BackgroundLibretroRunning},
		{"header_footer_separator", tf.Colors.HeaderFooterSeparator, &t.HeaderFooterSeparator},
		{"text", tf.Colors.Text, &t.Text},
		{"text_selected", tf.Colors.TextSelected, &t.TextSelected},
		{"text_sublabel", tf.Colors.TextSublabel, &t.TextSublabel},
		{"entries_icon", tf.Colors.EntriesIcon, &t.EntriesIcon},
		{"entries_border", tf.Colors.EntriesBorder, &t.EntriesBorder},
		{"sidebar_background", tf.Colors.SidebarBackground, &t.SidebarBackground},
		{"sidebar_top_gradient", tf.Colors.SidebarTopGradient, &t.SidebarTopGradient},
		{"sidebar_bottom_gradient", tf.Colors.SidebarBottomGradient, &t.SidebarBottomGradient},
		{"cursor", tf.Colors.Cursor, &t.Cursor},
		{"messagebox", tf.Colors.Messagebox, &t.Messagebox},
	}

	for _, f := range fields {
		if f.val == "" {
			return Theme{}, fmt.Errorf("ozone: theme %s: missing colour %s", t.Name, f.key)
		}
		c, err := parseColor(f.val)
		if err != nil {
			return Theme{}, fmt.Errorf("ozone: theme %s: %s: %w", t.Name, f.key, err)
		}
		*f.col = c
	}

	return t, nil
}

func parseColor(s string) (display.Color, error) {
	h, ok := strings.CutPrefix(s, "#")
	if !ok || (len(h) != 6 && len(h) != 8) {
		return display.Color{}, fmt.Errorf("colour must be #rrggbb or #rrggbbaa (%s)", s)
	}

	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return display.Color{}, fmt.Errorf("colour must be #rrggbb or #rrggbbaa (%s)", s)
	}

	if len(h) == 6 {
		return display.Hex(uint32(v)), nil
	}
	return display.Hex(uint32(v >> 8)).WithAlpha(float32(v&0xff) / 255), nil
}
