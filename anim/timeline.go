// SPDX-License-Identifier: Unlicense OR MIT

package anim

import "time"

// DefaultDuration is used when a Timeline has no Duration set.
const DefaultDuration = 300 * time.Millisecond

// Timeline is a frame-driven tween Driver. The host loop calls
// Step once per frame; the active animation advances along the
// Curve and completes when its Duration elapses.
type Timeline struct {
	// Duration of a full run. DefaultDuration when zero.
	Duration time.Duration
	// Curve eases the run. EaseOutCubic when nil.
	Curve Easing

	active *playback
}

type playback struct {
	tl      *Timeline
	anim    Animation
	started bool
	start   time.Time
}

// Start begins the animation, replacing any active one. The
// replaced animation is dropped without completing.
func (tl *Timeline) Start(a Animation) Handle {
	pb := &playback{tl: tl, anim: a}
	tl.active = pb
	return pb
}

// Stop cancels the animation if it is still in flight.
func (pb *playback) Stop() {
	if pb.tl.active == pb {
		pb.tl.active = nil
	}
}

// Active reports whether an animation is in flight, so hosts
// can keep scheduling frames while there is work left.
func (tl *Timeline) Active() bool {
	return tl.active != nil
}

// Step advances the active animation to now and reports whether
// the timeline still has work. The first Step anchors the run
// and ticks the start value.
func (tl *Timeline) Step(now time.Time) bool {
	pb := tl.active
	if pb == nil {
		return false
	}
	if !pb.started {
		pb.started = true
		pb.start = now
		pb.anim.tick(pb.anim.From)
		return true
	}
	d := tl.Duration
	if d <= 0 {
		d = DefaultDuration
	}
	t := float32(now.Sub(pb.start)) / float32(d)
	if t >= 1 {
		tl.active = nil
		pb.anim.tick(pb.anim.To)
		if pb.anim.OnDone != nil {
			pb.anim.OnDone()
		}
		return false
	}
	curve := tl.Curve
	if curve == nil {
		curve = EaseOutCubic
	}
	pb.anim.tick(pb.anim.From + (pb.anim.To-pb.anim.From)*curve(t))
	return true
}

func (a Animation) tick(v float32) {
	if a.OnTick != nil {
		a.OnTick(v)
	}
}
