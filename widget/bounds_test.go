// SPDX-License-Identifier: Unlicense OR MIT

package widget

import "testing"

func TestBounds(t *testing.T) {
	b := Bounds{Min: -90, Max: 0}
	for _, tc := range []struct {
		label string
		v     float32
		out   bool
		clamp float32
		damp  float32
	}{
		{label: "inside", v: -45, out: false, clamp: -45, damp: -45},
		{label: "at min", v: -90, out: false, clamp: -90, damp: -90},
		{label: "at max", v: 0, out: false, clamp: 0, damp: 0},
		{label: "below min", v: -95, out: true, clamp: -90, damp: -91.25},
		{label: "far below min", v: -130, out: true, clamp: -90, damp: -100},
		{label: "above max", v: 10, out: true, clamp: 0, damp: 2.5},
	} {
		t.Run(tc.label, func(t *testing.T) {
			if got := b.Out(tc.v); got != tc.out {
				t.Errorf("Out(%v) = %v, expected %v", tc.v, got, tc.out)
			}
			if got := b.Clamp(tc.v); got != tc.clamp {
				t.Errorf("Clamp(%v) = %v, expected %v", tc.v, got, tc.clamp)
			}
			if got := b.Damp(tc.v); got != tc.damp {
				t.Errorf("Damp(%v) = %v, expected %v", tc.v, got, tc.damp)
			}
		})
	}
}

func TestBoundsReversed(t *testing.T) {
	// min > max is not validated; clamp still pins the value.
	b := Bounds{Min: 5, Max: 3}
	for _, v := range []float32{0, 4, 7} {
		got := b.Clamp(v)
		if got != 3 && got != 5 {
			t.Errorf("Clamp(%v) = %v, expected a pin at a bound", v, got)
		}
	}
}
