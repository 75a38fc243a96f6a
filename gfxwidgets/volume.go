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
	"math"

	"github.com/jetsetilly/osdwidgets/animation"
	"github.com/jetsetilly/osdwidgets/display"
)

const volumeDuration = 3000

var (
	colVolumeBackground = display.Hex(0x1a1a1a)
	colVolumeNormal     = display.Hex(0x198ac6)
	colVolumeLoud       = display.Hex(0xf5dd19)
	colVolumeLoudest    = display.Hex(0xc23b22)
)

type volume struct {
	ctx *Context
	tag animation.Tag

	db      float64
	percent float32
	mute    bool

	alpha     float32
	textAlpha float32
	timer     animation.Timer

	width  float32
	height float32
}

func (v *volume) Init(ctx *Context) error {
	v.ctx = ctx
	v.tag = ctx.anim.NewTag()
	v.percent = 1.0
	return nil
}

func (v *volume) Free() {
	v.ctx.anim.KillTimer(&v.timer)
	v.ctx.anim.Release(v.tag)
	v.tag = animation.NoTag
	v.alpha = 0
	v.textAlpha = 0
}

func (v *volume) ContextReset() {
}

func (v *volume) ContextDestroy() {
}

func (v *volume) Layout() {
	v.width = v.ctx.width / 3
	v.height = v.ctx.metrics.fontSize * 4
}

func (v *volume) Iterate() {
}

// VolumeUpdateAndShow shows the volume widget with the volume in decibels.
func (ctx *Context) VolumeUpdateAndShow(db float64, mute bool) {
	ctx.owner.Check()

	v := ctx.volume
	ctx.anim.KillByTag(v.tag)

	v.db = db
	v.percent = float32(math.Pow(10, db/20))
	v.mute = mute
	v.alpha = defaultBackdrop
	v.textAlpha = 1.0

	ctx.anim.StartTimer(&v.timer, volumeDuration, func() {
		for _, s := range []*float32{&v.alpha, &v.textAlpha} {
			ctx.anim.Push(animation.Entry{
				Subject:  s,
				Target:   0.0,
				Duration: ctx.Prefs.animationDuration(),
				Easing:   animation.OutQuad,
				Tag:      v.tag,
			})
		}
	})
}

func (v *volume) icon() display.Icon {
	switch {
	case v.mute:
		return display.IconMute
	case v.percent <= 0.5:
		return display.IconVolumeMin
	case v.percent <= 1.0:
		return display.IconVolumeMed
	}
	return display.IconVolumeMax
}

func (v *volume) Frame(r display.Renderer) {
	if v.alpha <= 0 {
		return
	}

	m := v.ctx.metrics
	iconSize := v.height

	r.DrawQuad(0, 0, v.width, v.height, display.Hex(0x3a3a3a).WithAlpha(v.alpha))
	r.DrawIcon(v.icon(), 0, 0, iconSize, iconSize, 0, display.White.WithAlpha(v.textAlpha))

	if v.mute {
		r.DrawText(m.regular, "Audio muted", v.width/2, (v.height-m.regular.LineHeight)/2,
			display.White.WithAlpha(v.textAlpha), display.AlignCenter)
		return
	}

	barX := iconSize
	barHeight := m.fontSize / 2
	barWidth := v.width - barX - m.padding
	barY := v.height/2 + barHeight/2

	var barCol, barBackground display.Color
	var fill float32

	switch {
	case v.percent <= 1.0:
		barBackground = colVolumeBackground
		barCol = colVolumeNormal
		fill = v.percent
	case v.percent <= 2.0:
		barBackground = colVolumeNormal
		barCol = colVolumeLoud
		fill = v.percent - 1.0
	default:
		barBackground = colVolumeLoud
		barCol = colVolumeLoudest
		fill = v.percent - 2.0
	}
	fill = min(max(fill, 0), 1.0)

	r.DrawQuad(barX, barY, barWidth, barHeight, barBackground.WithAlpha(v.textAlpha))
	r.DrawQuad(barX, barY, barWidth*fill, barHeight, barCol.WithAlpha(v.textAlpha))

	textY := barY - m.regular.LineHeight - barHeight/2
	r.DrawText(m.regular, volumeDB(v.db), v.width-m.padding, textY, display.White.WithAlpha(v.textAlpha), display.AlignRight)
	r.DrawText(m.regular, volumePercent(v.percent), barX, textY, colTextFaint.WithAlpha(v.textAlpha), display.AlignLeft)
}

func volumeDB(db float64) string {
	if db > 0 {
		return fmt.Sprintf("+%.1f dB", db)
	}
	return fmt.Sprintf("%.1f dB", db)
}

func volumePercent(percent float32) string {
	return fmt.Sprintf("%d%%", int(math.Round(float64(percent*100))))
}
