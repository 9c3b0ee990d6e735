// SPDX-License-Identifier: Unlicense OR MIT

/*
Package anim defines the contract between a control and the
driver that animates its value, and provides Timeline, a
frame-driven tween driver.

A Driver owns its own timing source. Timeline is stepped by the
host render loop once per frame, the way a fling animation is
ticked by the frame clock.
*/
package anim

// Animation describes a single run from From to To.
type Animation struct {
	From, To float32
	// Target is the render handle the animation is bound to.
	// Drivers that schedule frames per target use it; Timeline
	// carries it through untouched.
	Target any
	// OnTick is invoked with the current interpolated value,
	// From and To included. It reports whether the value was
	// handled.
	OnTick func(value float32) bool
	// OnDone is invoked exactly once when the animation
	// completes. A stopped animation never completes.
	OnDone func() bool
}

// Handle controls an animation in flight.
type Handle interface {
	// Stop cancels the animation. OnDone is not invoked.
	Stop()
}

// Driver starts animations. Starting a new animation replaces
// any previous one; there is no queueing.
type Driver interface {
	Start(Animation) Handle
}

// Easing maps normalized time to normalized progress.
type Easing func(t float32) float32

// Linear is the identity easing.
func Linear(t float32) float32 {
	return t
}

// EaseOutCubic decelerates toward the end of the run.
func EaseOutCubic(t float32) float32 {
	u := 1 - t
	return 1 - u*u*u
}
