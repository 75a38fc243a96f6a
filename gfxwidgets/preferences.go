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

import (
	"fmt"

	"github.com/jetsetilly/osdwidgets/prefs"
	"github.com/jetsetilly/osdwidgets/resources"
)

// Preferences for the widget context.
type Preferences struct {
	dsk *prefs.Disk

	// size of the regular font in pixels
	FontSize prefs.Float

	// scale applied to fixed width widgets
	Scale prefs.Float

	// maximum number of notifications waiting to be shown. notifications
	// pushed when the queue is full are dropped
	PendingMax prefs.Int

	// maximum number of notifications on screen at once
	OnscreenMax prefs.Int

	// durations in milliseconds
	AnimationDuration prefs.Int
	MessageDuration   prefs.Int

	ShowFPS        prefs.Bool
	ShowFrameCount prefs.Bool

	// width of help messages in pixels before scaling
	HelpWidth prefs.Int

	// default timeout of help messages in milliseconds. zero means that help
	// messages stay on screen until dismissed
	HelpTimeout prefs.Int
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return ""
	}
	return p.dsk.String()
}

const (
	fontSize          = 32.0
	scale             = 1.0
	pendingMax        = 32
	onscreenMax       = 4
	animationDuration = 330
	messageDuration   = 3000
	showFPS           = false
	showFrameCount    = false
	helpWidth         = 325
	helpTimeout       = 0
)

// NewPreferences is the preferred method of initialisation for the Preferences
// type. The preferences are loaded from the default preferences file.
func NewPreferences() (*Preferences, error) {
	p := DefaultPreferences()

	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, fmt.Errorf("osd: %w", err)
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, fmt.Errorf("osd: %w", err)
	}

	for _, e := range []struct {
		key string
		p   interface {
			Set(prefs.Value) error
			Get() prefs.Value
			Reset() error
			String() string
		}
	}{
		{"osd.fontsize", &p.FontSize},
		{"osd.scale", &p.Scale},
		{"osd.msgqueue.pending", &p.PendingMax},
		{"osd.msgqueue.onscreen", &p.OnscreenMax},
		{"osd.animation.duration", &p.AnimationDuration},
		{"osd.message.duration", &p.MessageDuration},
		{"osd.fps.show", &p.ShowFPS},
		{"osd.framecount.show", &p.ShowFrameCount},
		{"osd.helpmsg.width", &p.HelpWidth},
		{"osd.helpmsg.timeout", &p.HelpTimeout},
	} {
		if err := p.dsk.Add(e.key, e.p); err != nil {
			return nil, fmt.Errorf("osd: %w", err)
		}
	}

	if err := p.dsk.Load(true); err != nil {
		return nil, fmt.Errorf("osd: %w", err)
	}

	return p, nil
}

// DefaultPreferences returns preferences with the default values. The
// preferences are not associated with a file and cannot be loaded or saved.
func DefaultPreferences() *Preferences {
	p := &Preferences{}
	p.SetDefaults()
	return p
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	p.FontSize.Set(fontSize)
	p.Scale.Set(scale)
	p.PendingMax.Set(pendingMax)
	p.OnscreenMax.Set(onscreenMax)
	p.AnimationDuration.Set(animationDuration)
	p.MessageDuration.Set(messageDuration)
	p.ShowFPS.Set(showFPS)
	p.ShowFrameCount.Set(showFrameCount)
	p.HelpWidth.Set(helpWidth)
	p.HelpTimeout.Set(helpTimeout)
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return fmt.Errorf("osd: preferences have no file")
	}
	return p.dsk.Load(false)
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return fmt.Errorf("osd: preferences have no file")
	}
	return p.dsk.Save()
}

// convenience accessors. the pref types are safe to read from any goroutine

func (p *Preferences) fontSize() float32 {
	return float32(p.FontSize.Get().(float64))
}

func (p *Preferences) scale() float32 {
	return float32(p.Scale.Get().(float64))
}

func (p *Preferences) animationDuration() float32 {
	return float32(p.AnimationDuration.Get().(int))
}

func (p *Preferences) messageDuration() float32 {
	return float32(p.MessageDuration.Get().(int))
}
