// SPDX-License-Identifier: Unlicense OR MIT

/*
Package pointer defines the pointer events delivered to a
control by its host event source. The host is responsible for
translating its native input (mouse, touch) into Events in the
local coordinate system of the control's track.
*/
package pointer

import (
	"time"

	"github.com/slidekit/slide/f32"
)

// Event is a pointer event.
type Event struct {
	Kind   Kind
	Source Source
	// PointerID is the id for the pointer and can be used
	// to track a particular pointer from Press to
	// Release or Cancel.
	PointerID ID
	// Time is when the event was received. The
	// timestamp is relative to an undefined base.
	Time time.Duration
	// Position is the coordinates of the event in the local
	// coordinate system of the receiving control.
	Position f32.Point
}

type ID uint16

// Kind of an Event.
type Kind uint8

// Source of an Event.
type Source uint8

const (
	// A Cancel event is generated when the current gesture is
	// interrupted by other handlers or the system.
	Cancel Kind = iota
	// Press of a pointer.
	Press
	// Release of a pointer.
	Release
	// Move of a pointer.
	Move
)

const (
	// Mouse generated event.
	Mouse Source = iota
	// Touch generated event.
	Touch
)

func (k Kind) String() string {
	switch k {
	case Cancel:
		return "Cancel"
	case Press:
		return "Press"
	case Release:
		return "Release"
	case Move:
		return "Move"
	default:
		panic("unknown Kind")
	}
}

func (s Source) String() string {
	switch s {
	case Mouse:
		return "Mouse"
	case Touch:
		return "Touch"
	default:
		panic("unknown Source")
	}
}
