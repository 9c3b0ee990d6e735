// SPDX-License-Identifier: Unlicense OR MIT

/*
Package unit implements the units used for positioning and
sizing a control along its track.

A Value is a value with a Unit attached.

Pixels, or px, address the track in device pixels. Percent
addresses it relative to the track's current extent, so a
value keeps its meaning across resizes.
*/
package unit

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is a value with a unit.
type Value struct {
	V float32
	U Unit
}

// Unit represents a unit for a Value.
type Unit uint8

const (
	// UnitPx represents device pixels.
	UnitPx Unit = iota
	// UnitPercent represents percent of the track extent.
	UnitPercent
)

// Px returns the Value for v device pixels.
func Px(v float32) Value {
	return Value{V: v, U: UnitPx}
}

// Percent returns the Value for v percent of the track.
func Percent(v float32) Value {
	return Value{V: v, U: UnitPercent}
}

// Scale returns the value scaled by s.
func (v Value) Scale(s float32) Value {
	v.V *= s
	return v
}

func (v Value) String() string {
	return fmt.Sprintf("%g%s", v.V, v.U)
}

func (u Unit) String() string {
	switch u {
	case UnitPx:
		return "px"
	case UnitPercent:
		return "%"
	default:
		panic("unknown unit")
	}
}

// Parse converts a formatted value such as "50%" or "120px"
// back into a Value. A bare number parses as pixels.
func Parse(s string) (Value, error) {
	s = strings.TrimSpace(s)
	u := UnitPx
	switch {
	case strings.HasSuffix(s, "%"):
		u = UnitPercent
		s = strings.TrimSuffix(s, "%")
	case strings.HasSuffix(s, "px"):
		s = strings.TrimSuffix(s, "px")
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		return Value{}, fmt.Errorf("unit: parse %q: %w", s, err)
	}
	return Value{V: float32(f), U: u}, nil
}

// ParseUnit converts a unit name ("px" or "%") into a Unit.
func ParseUnit(s string) (Unit, error) {
	switch strings.TrimSpace(s) {
	case "px", "":
		return UnitPx, nil
	case "%", "percent":
		return UnitPercent, nil
	default:
		return 0, fmt.Errorf("unit: unknown unit %q", s)
	}
}
