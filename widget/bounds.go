// SPDX-License-Identifier: Unlicense OR MIT

package widget

// dampDivisor compresses the overshoot past a bound. The larger
// the divisor, the stiffer the rubber band.
const dampDivisor = 4

// Bounds is the interval constraining a Slideable's value.
// Min <= Max is expected but not enforced.
type Bounds struct {
	Min, Max float32
}

// Out reports whether v lies outside the interval.
func (b Bounds) Out(v float32) bool {
	return v > b.Max || v < b.Min
}

// Clamp pins v to the interval.
func (b Bounds) Clamp(v float32) float32 {
	if v > b.Max {
		v = b.Max
	}
	if v < b.Min {
		v = b.Min
	}
	return v
}

// Damp compresses the excursion past either bound by
// dampDivisor, producing rubber-band resistance. Values inside
// the interval pass through unchanged.
func (b Bounds) Damp(v float32) float32 {
	if v > b.Max {
		return b.Max + (v-b.Max)/dampDivisor
	}
	if v < b.Min {
		return b.Min + (v-b.Min)/dampDivisor
	}
	return v
}

// Policy constrains an out-of-bounds value. Bounds.Clamp and
// Bounds.Damp are the two policies a Slideable selects between.
type Policy func(Bounds, float32) float32
