// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"math"

	"github.com/slidekit/slide/anim"
	"github.com/slidekit/slide/gesture"
	"github.com/slidekit/slide/io/pointer"
	"github.com/slidekit/slide/unit"
)

// Slideable holds a position on one axis between Min and Max.
// Dragging moves the value; releasing inside the interval
// springs it to the bound the drag was heading for. The control
// renders through its Surface and animates through its Driver,
// and is otherwise inert: the host loop feeds it pointer events
// once per frame.
type Slideable struct {
	// OnChange is invoked with the new value on every committed
	// write, whether from a drag, an animation tick or a
	// programmatic set.
	OnChange func(value float32)
	// OnAnimationEnd is invoked once when a driven animation
	// completes. Stopped animations do not end.
	OnAnimationEnd func()

	surface Surface
	driver  anim.Driver

	axis   gesture.Axis
	props  gesture.Props
	value  float32
	unit   unit.Unit
	bounds Bounds
	limit  Policy

	overMoving      bool
	draggable       bool
	accel           Acceleration
	stopPropagation bool

	drag       gesture.Drag
	dragging   bool
	dragOrigin float32
	lastDelta  float32
	minimizing bool

	// scalar converts raw pixel displacement into the control's
	// unit. 1 for pixel units.
	scalar float32
	// unitMod is the pixel-dimension override reconciling a
	// percent control rendered on a pixel-sized track. 0 when
	// inactive.
	unitMod      float32
	lastDim      float32
	rendered     bool
	canTransform bool
	composited   bool

	animating bool
	handle    anim.Handle
	changed   bool
}

// New returns a Slideable bound to the surface and driver.
func New(surface Surface, driver anim.Driver, opts ...Option) *Slideable {
	s := &Slideable{
		surface:    surface,
		driver:     driver,
		unit:       unit.UnitPx,
		overMoving: true,
		draggable:  true,
		accel:      AccelAuto,
		scalar:     1,
		lastDim:    -1,
	}
	s.props = s.axis.Resolve()
	for _, o := range opts {
		o(s)
	}
	s.limit = s.policy()
	s.canTransform = surface.CanTransform()
	return s
}

func (s *Slideable) policy() Policy {
	if s.overMoving {
		return Bounds.Damp
	}
	return Bounds.Clamp
}

// Frame recalibrates against the current track geometry and
// processes the frame's pointer events. Hosts call it once per
// frame; resizes need no separate notification.
func (s *Slideable) Frame(events []pointer.Event) {
	s.calibrate()
	for _, e := range s.drag.Update(events) {
		switch e.Kind {
		case gesture.KindStart:
			if !s.draggable || !s.props.Permitted(e) {
				break
			}
			if s.handle != nil {
				s.handle.Stop()
				s.handle = nil
				s.animating = false
			}
			s.dragging = true
			s.dragOrigin = s.value
			s.lastDelta = 0
			s.drag.Grab()
		case gesture.KindMove:
			if !s.dragging {
				break
			}
			d := s.displacement(s.props.Delta(e))
			if dd := d - s.lastDelta; dd != 0 {
				s.minimizing = dd < 0
			}
			s.lastDelta = d
			s.SetValue(s.dragOrigin + d)
		case gesture.KindEnd:
			if !s.dragging {
				break
			}
			s.dragging = false
			s.lastDelta = 0
			if s.value != s.bounds.Min && s.value != s.bounds.Max {
				if s.minimizing {
					s.AnimateToMin()
				} else {
					s.AnimateToMax()
				}
			}
		}
	}
}

// calibrate resolves first-render state and keeps the drag
// scalar in step with the track's pixel dimension.
func (s *Slideable) calibrate() {
	dim := s.props.Extent(s.surface.Bounds().Size())
	if !s.rendered {
		s.rendered = true
		if s.unit == unit.UnitPercent {
			if v, ok := s.surface.InlineExtent(s.props.Dimension); ok && v.U == unit.UnitPx {
				s.unitMod = v.V
			}
		}
		if s.accelerated() && !s.quirky() {
			s.composited = true
			s.surface.SetComposited(true)
		}
		s.render(s.value)
	}
	if s.unit == unit.UnitPercent {
		if d := s.trackDim(dim); d != 0 {
			s.scalar = 100 / d
		} else {
			s.scalar = 1
		}
		if !s.canTransform && dim != s.lastDim {
			extent := float32(100)
			s.renderInline(s.value, &extent)
		}
	}
	s.lastDim = dim
}

// displacement converts a raw pixel delta into the control's
// unit. The transform path uses the cached scalar; the fallback
// converts against the live track dimension.
func (s *Slideable) displacement(raw float32) float32 {
	if s.canTransform {
		return raw * s.scalar
	}
	if s.unit == unit.UnitPercent {
		if dim := s.trackDim(s.lastDim); dim != 0 {
			return raw / dim * 100
		}
	}
	return raw
}

func (s *Slideable) trackDim(measured float32) float32 {
	if measured != 0 {
		return measured
	}
	return s.unitMod
}

// SetValue commits a new value: it is constrained by the bounds
// policy (unless an animation is in flight, which may sweep
// through or past the bounds), rendered, and notified.
func (s *Slideable) SetValue(v float32) {
	if !s.animating && s.bounds.Out(v) {
		v = s.limit(s.bounds, v)
	}
	s.value = v
	s.updateComposite(v)
	s.render(v)
	s.changed = true
	if s.OnChange != nil {
		s.OnChange(v)
	}
}

// updateComposite toggles the compositing hint on zero/non-zero
// transitions for surfaces with nested-compositing artifacts.
func (s *Slideable) updateComposite(v float32) {
	if !s.accelerated() || !s.quirky() {
		return
	}
	if v != 0 && !s.composited {
		s.composited = true
		s.surface.SetComposited(true)
	} else if v == 0 && s.composited {
		s.composited = false
		s.surface.SetComposited(false)
	}
}

func (s *Slideable) accelerated() bool {
	switch s.accel {
	case AccelOn:
		return true
	case AccelOff:
		return false
	default:
		return s.canTransform
	}
}

func (s *Slideable) quirky() bool {
	return s.surface.Quirks().Has(QuirkNestedCompositing)
}

func (s *Slideable) render(v float32) {
	if s.canTransform {
		s.surface.SetTransform(s.props.Transform, unit.Value{V: v, U: s.unit})
		return
	}
	s.renderInline(v, nil)
}

// renderInline is the non-transform fallback. With an active
// unitMod the percent value is anchored onto the fixed pixel
// track; an extent override re-anchors the track after a
// recalibration; otherwise the edge is positioned directly.
func (s *Slideable) renderInline(v float32, extent *float32) {
	if s.unitMod != 0 {
		px := float32(math.Floor(float64(s.unitMod) * float64(v) / 100))
		s.surface.SetOffset(s.props.Edge, unit.Px(px))
		s.surface.SetExtent(s.props.Dimension, unit.Px(s.unitMod))
		return
	}
	if extent != nil {
		s.surface.SetExtent(s.props.Dimension, unit.Value{V: *extent, U: s.unit})
		return
	}
	s.surface.SetOffset(s.props.Edge, unit.Value{V: v, U: s.unit})
}

// AnimateTo starts an animation from the current value to
// target, replacing any animation in flight.
func (s *Slideable) AnimateTo(target float32) {
	if s.handle != nil {
		s.handle.Stop()
		s.handle = nil
	}
	s.animating = true
	s.handle = s.driver.Start(anim.Animation{
		From:   s.value,
		To:     target,
		Target: s.surface,
		OnTick: func(v float32) bool {
			s.SetValue(v)
			return true
		},
		OnDone: func() bool {
			s.animating = false
			s.handle = nil
			if s.OnAnimationEnd != nil {
				s.OnAnimationEnd()
			}
			return true
		},
	})
}

// AnimateToMin animates to the lower bound.
func (s *Slideable) AnimateToMin() {
	s.AnimateTo(s.bounds.Min)
}

// AnimateToMax animates to the upper bound.
func (s *Slideable) AnimateToMax() {
	s.AnimateTo(s.bounds.Max)
}

// ToggleMinMax animates to Max when the value is at or past
// Min, and to Min from anywhere else.
func (s *Slideable) ToggleMinMax() {
	if s.value <= s.bounds.Min {
		s.AnimateToMax()
	} else {
		s.AnimateToMin()
	}
}

// SetAxis switches the control's axis. The value is unchanged;
// the axis property bundle and the calibration are redone.
func (s *Slideable) SetAxis(a gesture.Axis) {
	s.axis = a
	s.props = a.Resolve()
	s.lastDim = -1
}

// Value reports the current value in the control's unit.
func (s *Slideable) Value() float32 {
	return s.value
}

// Axis reports the configured axis.
func (s *Slideable) Axis() gesture.Axis {
	return s.axis
}

// Unit reports the configured unit.
func (s *Slideable) Unit() unit.Unit {
	return s.unit
}

// Limits reports the bounds interval.
func (s *Slideable) Limits() Bounds {
	return s.bounds
}

// Dragging reports whether a drag session is active.
func (s *Slideable) Dragging() bool {
	return s.dragging
}

// Animating reports whether a driven animation is in flight.
func (s *Slideable) Animating() bool {
	return s.animating
}

// Changed reports whether the value has changed since the last
// call to Changed.
func (s *Slideable) Changed() bool {
	changed := s.changed
	s.changed = false
	return changed
}

// Grabbed reports whether the control claimed the current
// gesture and propagation suppression is configured. Hosts
// consult it to stop delivering the gesture to other handlers.
func (s *Slideable) Grabbed() bool {
	return s.stopPropagation && s.drag.Grabbed()
}

// ClickSuppressed reports whether the last release completed a
// drag, so the host can swallow the tap. The flag resets on
// read.
func (s *Slideable) ClickSuppressed() bool {
	return s.drag.ClickSuppressed()
}
