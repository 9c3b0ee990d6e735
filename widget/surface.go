// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"github.com/slidekit/slide/f32"
	"github.com/slidekit/slide/gesture"
	"github.com/slidekit/slide/unit"
)

// Surface is the capability interface a Slideable renders
// through. It is the host control surface: it reports geometry,
// accepts inline position and size writes, and exposes whatever
// transform compositing the platform offers.
type Surface interface {
	// Bounds returns the current track geometry in pixels.
	Bounds() f32.Rectangle
	// SetOffset positions the surface along the boundary edge.
	SetOffset(edge gesture.Edge, v unit.Value)
	// SetExtent sizes the surface along the axis dimension.
	SetExtent(d gesture.Dimension, v unit.Value)
	// InlineExtent reports the host's explicit inline sizing
	// along d, if it has one.
	InlineExtent(d gesture.Dimension) (unit.Value, bool)
	// CanTransform reports whether the surface supports
	// hardware transforms.
	CanTransform() bool
	// SetTransform applies a translation of the given kind.
	SetTransform(t gesture.Transform, v unit.Value)
	// SetComposited applies or removes the compositing hint.
	SetComposited(on bool)
	// Quirks reports the surface's platform quirks.
	Quirks() Quirks
}

// Quirks is a set of platform rendering quirks.
type Quirks uint8

const (
	// QuirkNestedCompositing marks platforms where a composited
	// layer inside another composited layer renders artifacts,
	// so the compositing hint is applied only while the control
	// is displaced from zero.
	QuirkNestedCompositing Quirks = 1 << iota
)

// Has reports whether the set contains all of q2.
func (q Quirks) Has(q2 Quirks) bool {
	return q&q2 == q2
}

// Acceleration is the hardware compositing hint mode.
type Acceleration uint8

const (
	// AccelAuto composites when the surface supports transforms.
	AccelAuto Acceleration = iota
	// AccelOn always requests compositing.
	AccelOn
	// AccelOff never requests compositing.
	AccelOff
)

func (a Acceleration) String() string {
	switch a {
	case AccelAuto:
		return "Auto"
	case AccelOn:
		return "On"
	case AccelOff:
		return "Off"
	default:
		panic("invalid Acceleration")
	}
}
