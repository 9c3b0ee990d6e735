// SPDX-License-Identifier: Unlicense OR MIT

// Package widget implements state tracking and event handling
// for positional controls.
//
// The Slideable control holds a value on one axis, constrained
// to an interval. It is driven by drag gestures recognized from
// pointer events and by an animation driver, and renders itself
// through the minimal Surface capability interface, so it has
// no dependency on any particular rendering engine.
package widget
