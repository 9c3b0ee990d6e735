// SPDX-License-Identifier: Unlicense OR MIT

/*
Package termview adapts a Slideable to a tcell terminal screen.
Terminal cells have no transform compositing, so the Panel
reports CanTransform false and the control exercises the inline
positioning fallback; cells stand in for pixels 1:1.
*/
package termview

import (
	"image"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/slidekit/slide/f32"
	"github.com/slidekit/slide/gesture"
	"github.com/slidekit/slide/io/pointer"
	"github.com/slidekit/slide/unit"
	"github.com/slidekit/slide/widget"
)

// Panel is a sliding panel on a terminal screen.
type Panel struct {
	// Track is the area the panel slides in, in screen cells.
	Track image.Rectangle
	// Size is the panel's own size in cells.
	Size image.Point

	TrackStyle tcell.Style
	PanelStyle tcell.Style
	// MovingStyle is used while the compositing hint is applied,
	// which with QuirkNestedCompositing means "displaced from
	// zero". It doubles as a drag highlight.
	MovingStyle tcell.Style

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

// InlineExtent reports the panel's configured cell size.
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

// CanTransform reports false; a terminal has no transforms.
func (p *Panel) CanTransform() bool {
	return false
}

// SetTransform is part of the Surface contract but unreachable
// here, since the control falls back to inline writes.
func (p *Panel) SetTransform(t gesture.Transform, v unit.Value) {
	switch t {
	case gesture.TranslateX:
		p.offset.X = p.resolve(v, float32(p.Track.Dx()))
	case gesture.TranslateY:
		p.offset.Y = p.resolve(v, float32(p.Track.Dy()))
	}
}

// SetComposited records the compositing hint.
func (p *Panel) SetComposited(on bool) {
	p.composited = on
}

// Quirks reports QuirkNestedCompositing: cells cannot nest
// layers, so the hint is only held while the panel is displaced,
// where it renders as the moving style.
func (p *Panel) Quirks() widget.Quirks {
	return widget.QuirkNestedCompositing
}

func (p *Panel) resolve(v unit.Value, extent float32) float32 {
	if v.U == unit.UnitPercent {
		return v.V / 100 * extent
	}
	return v.V
}

// Pointer translates a tcell mouse event into pointer events in
// track-local coordinates.
func (p *Panel) Pointer(ev *tcell.EventMouse, now time.Duration) []pointer.Event {
	x, y := ev.Position()
	pos := f32.Pt(float32(x-p.Track.Min.X), float32(y-p.Track.Min.Y))
	pressed := ev.Buttons()&tcell.Button1 != 0

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
func (p *Panel) Draw(screen tcell.Screen) {
	for y := p.Track.Min.Y; y < p.Track.Max.Y; y++ {
		for x := p.Track.Min.X; x < p.Track.Max.X; x++ {
			screen.SetContent(x, y, '·', nil, p.TrackStyle)
		}
	}
	w := cells(p.extent.X, p.Size.X)
	h := cells(p.extent.Y, p.Size.Y)
	style := p.PanelStyle
	if p.composited {
		style = p.MovingStyle
	}
	x0 := p.Track.Min.X + int(math.Round(float64(p.offset.X)))
	y0 := p.Track.Min.Y + int(math.Round(float64(p.offset.Y)))
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			if image.Pt(x, y).In(p.Track) {
				screen.SetContent(x, y, ' ', nil, style)
			}
		}
	}
}

func cells(extent float32, fallback int) int {
	if extent != 0 {
		return int(math.Round(float64(extent)))
	}
	return fallback
}
