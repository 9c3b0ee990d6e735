// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"github.com/slidekit/slide/gesture"
	"github.com/slidekit/slide/unit"
)

// Option configures a Slideable at construction.
//
// Defaults: horizontal axis, value 0, pixel unit, bounds [0, 0],
// automatic acceleration, over-moving and dragging enabled,
// propagation suppression off.
type Option func(*Slideable)

// WithAxis sets the axis the control moves along.
func WithAxis(a gesture.Axis) Option {
	return func(s *Slideable) {
		s.axis = a
		s.props = a.Resolve()
	}
}

// WithValue sets the initial value.
func WithValue(v float32) Option {
	return func(s *Slideable) {
		s.value = v
	}
}

// WithUnit sets the unit values are expressed in.
func WithUnit(u unit.Unit) Option {
	return func(s *Slideable) {
		s.unit = u
	}
}

// WithBounds sets the [min, max] interval.
func WithBounds(min, max float32) Option {
	return func(s *Slideable) {
		s.bounds = Bounds{Min: min, Max: max}
	}
}

// WithAccelerated sets the compositing hint mode.
func WithAccelerated(a Acceleration) Option {
	return func(s *Slideable) {
		s.accel = a
	}
}

// WithOverMoving selects the elastic bounds policy: dragging
// past a bound damps the overshoot instead of clamping it.
func WithOverMoving(on bool) Option {
	return func(s *Slideable) {
		s.overMoving = on
	}
}

// WithDraggable gates gesture acceptance.
func WithDraggable(on bool) Option {
	return func(s *Slideable) {
		s.draggable = on
	}
}

// WithStopPropagation makes the control report claimed gestures
// through Grabbed, so hosts keep them from other handlers.
func WithStopPropagation(on bool) Option {
	return func(s *Slideable) {
		s.stopPropagation = on
	}
}
