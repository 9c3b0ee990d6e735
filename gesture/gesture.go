// SPDX-License-Identifier: Unlicense OR MIT

/*
Package gesture turns low level pointer Events into the drag
gestures that move a control along its axis.

A Drag tracks one pointer from Press to Release. Movement past
a small slop starts the drag and locks it to the dominant axis;
every event of the session then carries the displacement from
the press origin and the per-axis permission flags.
*/
package gesture

import (
	"time"

	"github.com/slidekit/slide/f32"
	"github.com/slidekit/slide/io/pointer"
)

// Axis is the single dimension a control moves along.
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

// Edge is the boundary edge positioned by non-transform writes.
type Edge uint8

const (
	Left Edge = iota
	Top
)

// Dimension is the geometric extent of the track along an axis.
type Dimension uint8

const (
	Width Dimension = iota
	Height
)

// Transform is the translation kind applied on the transform path.
type Transform uint8

const (
	TranslateX Transform = iota
	TranslateY
)

// Props bundles the axis-dependent identifiers. It is resolved
// once per axis change so the drag path never branches on Axis.
type Props struct {
	Axis      Axis
	Transform Transform
	Dimension Dimension
	Edge      Edge
}

var axisProps = [2]Props{
	Horizontal: {Axis: Horizontal, Transform: TranslateX, Dimension: Width, Edge: Left},
	Vertical:   {Axis: Vertical, Transform: TranslateY, Dimension: Height, Edge: Top},
}

// Resolve returns the property bundle for the axis.
func (a Axis) Resolve() Props {
	return axisProps[a]
}

// Delta selects the displacement along the axis.
func (p Props) Delta(e DragEvent) float32 {
	if p.Axis == Horizontal {
		return e.XDelta
	}
	return e.YDelta
}

// Permitted reports whether the gesture may drag along the axis.
func (p Props) Permitted(e DragEvent) bool {
	if p.Axis == Horizontal {
		return e.DragX
	}
	return e.DragY
}

// Extent selects the track size along the axis.
func (p Props) Extent(size f32.Point) float32 {
	if p.Axis == Horizontal {
		return size.X
	}
	return size.Y
}

// touchSlop is the movement below which a press is still a tap.
const touchSlop = 3

// DragKind is the phase of a drag gesture.
type DragKind uint8

const (
	// KindStart is reported once when the slop is exceeded.
	KindStart DragKind = iota
	// KindMove is reported for every movement while dragging.
	KindMove
	// KindEnd is reported when the pointer is released.
	KindEnd
)

// DragEvent is a drag gesture event.
type DragEvent struct {
	Kind   DragKind
	Source pointer.Source
	Time   time.Duration
	// XDelta and YDelta are the displacement in pixels from
	// the position of the starting Press.
	XDelta, YDelta float32
	// DragX and DragY report the axis the gesture locked to
	// when it exceeded the slop.
	DragX, DragY bool
}

// Drag detects drag gestures in the form of DragEvents.
type Drag struct {
	pressed  bool
	dragging bool
	pid      pointer.ID
	start    f32.Point
	dragX    bool
	dragY    bool
	grab     bool
	// suppressClick is set when a release ends a real drag, so
	// the host can swallow the tap that would otherwise fire.
	suppressClick bool
}

// Update processes pointer events and returns the drag events
// they amount to.
func (d *Drag) Update(events []pointer.Event) []DragEvent {
	var devents []DragEvent
	for _, e := range events {
		switch e.Kind {
		case pointer.Press:
			if d.pressed {
				break
			}
			d.pressed = true
			d.pid = e.PointerID
			d.start = e.Position
			d.suppressClick = false
		case pointer.Move:
			if !d.pressed || e.PointerID != d.pid {
				break
			}
			delta := e.Position.Sub(d.start)
			if !d.dragging {
				if abs(delta.X) < touchSlop && abs(delta.Y) < touchSlop {
					break
				}
				d.dragging = true
				d.dragX = abs(delta.X) >= abs(delta.Y)
				d.dragY = !d.dragX
				devents = append(devents, d.event(KindStart, delta, e))
			}
			devents = append(devents, d.event(KindMove, delta, e))
		case pointer.Release:
			if !d.pressed || e.PointerID != d.pid {
				break
			}
			d.pressed = false
			d.grab = false
			if d.dragging {
				d.dragging = false
				d.suppressClick = true
				devents = append(devents, d.event(KindEnd, e.Position.Sub(d.start), e))
			}
		case pointer.Cancel:
			d.pressed = false
			d.dragging = false
			d.grab = false
		}
	}
	return devents
}

func (d *Drag) event(kind DragKind, delta f32.Point, e pointer.Event) DragEvent {
	return DragEvent{
		Kind:   kind,
		Source: e.Source,
		Time:   e.Time,
		XDelta: delta.X,
		YDelta: delta.Y,
		DragX:  d.dragX,
		DragY:  d.dragY,
	}
}

// Dragging reports whether a drag is in progress.
func (d *Drag) Dragging() bool {
	return d.dragging
}

// Grab marks the gesture as claimed. A grabbed gesture should
// not be delivered to handlers below this one.
func (d *Drag) Grab() {
	d.grab = true
}

// Grabbed reports whether the current gesture is claimed.
func (d *Drag) Grabbed() bool {
	return d.grab
}

// ClickSuppressed reports whether the last release completed a
// drag and resets the flag. Hosts use it to swallow the tap a
// release would otherwise produce.
func (d *Drag) ClickSuppressed() bool {
	s := d.suppressClick
	d.suppressClick = false
	return s
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		panic("invalid Axis")
	}
}

func (k DragKind) String() string {
	switch k {
	case KindStart:
		return "KindStart"
	case KindMove:
		return "KindMove"
	case KindEnd:
		return "KindEnd"
	default:
		panic("invalid DragKind")
	}
}

func (e Edge) String() string {
	switch e {
	case Left:
		return "Left"
	case Top:
		return "Top"
	default:
		panic("invalid Edge")
	}
}

func (d Dimension) String() string {
	switch d {
	case Width:
		return "Width"
	case Height:
		return "Height"
	default:
		panic("invalid Dimension")
	}
}

func (t Transform) String() string {
	switch t {
	case TranslateX:
		return "TranslateX"
	case TranslateY:
		return "TranslateY"
	default:
		panic("invalid Transform")
	}
}
