// SPDX-License-Identifier: Unlicense OR MIT

/*
Package ebitenview adapts a Slideable to an Ebitengine render
pass. The Panel implements widget.Surface with transform support
and turns Ebitengine mouse and touch input into pointer events.
*/
package ebitenview

import (
	"image"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/slidekit/slide/f32"
	"github.com/slidekit/slide/gesture"
	"github.com/slidekit/slide/io/pointer"
	"github.com/slidekit/slide/unit"
	"github.com/slidekit/slide/widget"
)

// Panel is a sliding panel on an Ebitengine screen.
type Panel struct {
	// Track is the area the panel slides in, in screen pixels.
	Track image.Rectangle
	// Size is the panel's own size in pixels.
	Size image.Point

	TrackColor color.Color
	Color      color.Color

	// Transform and offset writes, resolved to track pixels.
	translate  f32.Point
	offset     f32.Point
	extent     f32.Point
	composited bool

	pressed bool
	lastPos f32.Point
}

var _ widget.Surface = (*Panel)(nil)

// Bounds reports the track geometry.
func (p *Panel) Bounds() f32.Rectangle {
	return f32.Rect(0, 0, float32(p.Track.Dx()), float32(p.Track.Dy()))
}

// SetOffset positions the panel edge inside the track.
func (p *Panel) SetOffset(edge gesture.Edge, v unit.Value) {
	switch edge {
	case gesture.Left:
		p.offset.X = p.resolve(v, float32(p.Track.Dx()))
	case gesture.Top:
		p.offset.Y = p.resolve(v, float32(p.Track.Dy()))
	}
}

// SetExtent sizes the panel along the dimension.
func (p *Panel) SetExtent(d gesture.Dimension, v unit.Value) {
	switch d {
	case gesture.Width:
		p.extent.X = p.resolve(v, float32(p.Track.Dx()))
	case gesture.Height:
		p.extent.Y = p.resolve(v, float32(p.Track.Dy()))
	}
}

// InlineExtent reports the panel's configured pixel size.
func (p *Panel) InlineExtent(d gesture.Dimension) (unit.Value, bool) {
	switch d {
	case gesture.Width:
		if p.Size.X != 0 {
			return unit.Px(float32(p.Size.X)), true
		}
	case gesture.Height:
		if p.Size.Y != 0 {
			return unit.Px(float32(p.Size.Y)), true
		}
	}
	return unit.Value{}, false
}

// CanTransform reports transform support; a GeoM translation is
// always available.
func (p *Panel) CanTransform() bool {
	return true
}

// SetTransform applies a translation along the transform kind.
func (p *Panel) SetTransform(t gesture.Transform, v unit.Value) {
	switch t {
	case gesture.TranslateX:
		p.translate.X = p.resolve(v, float32(p.Track.Dx()))
	case gesture.TranslateY:
		p.translate.Y = p.resolve(v, float32(p.Track.Dy()))
	}
}

// SetComposited records the compositing hint. Ebitengine draws
// everything through the GPU already, so the hint is cosmetic.
func (p *Panel) SetComposited(on bool) {
	p.composited = on
}

// Quirks reports no platform quirks.
func (p *Panel) Quirks() widget.Quirks {
	return 0
}

// resolve converts a unit-qualified value to track pixels.
func (p *Panel) resolve(v unit.Value, extent float32) float32 {
	if v.U == unit.UnitPercent {
		return v.V / 100 * extent
	}
	return v.V
}

// PointerEvents translates the current Ebitengine input state
// into pointer events in track-local coordinates. Call it once
// per Update.
func (p *Panel) PointerEvents(now time.Duration) []pointer.Event {
	x, y := ebiten.CursorPosition()
	pos := f32.Pt(float32(x-p.Track.Min.X), float32(y-p.Track.Min.Y))
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	var events []pointer.Event
	switch {
	case pressed && !p.pressed:
		if !image.Pt(x, y).In(p.Track) {
			break
		}
		p.pressed = true
		events = append(events, pointer.Event{
			Kind: pointer.Press, Source: pointer.Mouse, Time: now, Position: pos,
		})
	case pressed && p.pressed:
		if pos != p.lastPos {
			events = append(events, pointer.Event{
				Kind: pointer.Move, Source: pointer.Mouse, Time: now, Position: pos,
			})
		}
	case !pressed && p.pressed:
		p.pressed = false
		events = append(events, pointer.Event{
			Kind: pointer.Release, Source: pointer.Mouse, Time: now, Position: pos,
		})
	}
	p.lastPos = pos
	return events
}

// Draw renders the track and the panel.
func (p *Panel) Draw(screen *ebiten.Image) {
	trackColor := p.TrackColor
	if trackColor == nil {
		trackColor = color.RGBA{0x20, 0x20, 0x28, 0xff}
	}
	panelColor := p.Color
	if panelColor == nil {
		panelColor = color.RGBA{0x4c, 0x8c, 0xd5, 0xff}
	}
	vector.DrawFilledRect(screen,
		float32(p.Track.Min.X), float32(p.Track.Min.Y),
		float32(p.Track.Dx()), float32(p.Track.Dy()),
		trackColor, false)

	w := p.extent.X
	if w == 0 {
		w = float32(p.Size.X)
	}
	h := p.extent.Y
	if h == 0 {
		h = float32(p.Size.Y)
	}
	x := float32(p.Track.Min.X) + p.offset.X + p.translate.X
	y := float32(p.Track.Min.Y) + p.offset.Y + p.translate.Y
	vector.DrawFilledRect(screen, x, y, w, h, panelColor, false)
}
