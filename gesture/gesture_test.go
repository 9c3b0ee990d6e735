// SPDX-License-Identifier: Unlicense OR MIT

package gesture

import (
	"testing"

	"github.com/slidekit/slide/f32"
	"github.com/slidekit/slide/io/pointer"
)

func TestDragRecognition(t *testing.T) {
	for _, tc := range []struct {
		label    string
		events   []pointer.Event
		kinds    []DragKind
		dragX    bool
		dragY    bool
		suppress bool
	}{
		{
			label: "horizontal drag",
			events: []pointer.Event{
				press(10, 10),
				move(40, 12),
				release(60, 12),
			},
			kinds:    []DragKind{KindStart, KindMove, KindEnd},
			dragX:    true,
			suppress: true,
		},
		{
			label: "vertical drag",
			events: []pointer.Event{
				press(10, 10),
				move(11, 50),
				release(11, 80),
			},
			kinds:    []DragKind{KindStart, KindMove, KindEnd},
			dragY:    true,
			suppress: true,
		},
		{
			label: "tap within slop",
			events: []pointer.Event{
				press(10, 10),
				move(11, 11),
				release(11, 11),
			},
		},
		{
			label: "cancel ends silently",
			events: []pointer.Event{
				press(10, 10),
				move(40, 10),
				cancel(),
			},
			kinds: []DragKind{KindStart, KindMove},
			dragX: true,
		},
	} {
		t.Run(tc.label, func(t *testing.T) {
			var drag Drag
			got := drag.Update(tc.events)
			if len(got) != len(tc.kinds) {
				t.Fatalf("got %d drag events, expected %d", len(got), len(tc.kinds))
			}
			for i, e := range got {
				if e.Kind != tc.kinds[i] {
					t.Errorf("event %d: got %v, expected %v", i, e.Kind, tc.kinds[i])
				}
				if e.DragX != tc.dragX || e.DragY != tc.dragY {
					t.Errorf("event %d: axis lock (%v,%v), expected (%v,%v)",
						i, e.DragX, e.DragY, tc.dragX, tc.dragY)
				}
			}
			if got := drag.ClickSuppressed(); got != tc.suppress {
				t.Errorf("ClickSuppressed() = %v, expected %v", got, tc.suppress)
			}
			if drag.ClickSuppressed() {
				t.Error("ClickSuppressed() did not reset")
			}
		})
	}
}

func TestDragDeltas(t *testing.T) {
	var drag Drag
	events := drag.Update([]pointer.Event{
		press(100, 20),
		move(5, 20),
		move(60, 20),
	})
	// The first qualifying move emits both the start and the move.
	want := []f32.Point{{X: -95}, {X: -95}, {X: -40}}
	if len(events) != len(want) {
		t.Fatalf("got %d drag events, expected %d", len(events), len(want))
	}
	for i, e := range events {
		if e.XDelta != want[i].X || e.YDelta != want[i].Y {
			t.Errorf("event %d: delta (%v,%v), expected (%v,%v)",
				i, e.XDelta, e.YDelta, want[i].X, want[i].Y)
		}
	}
	if !drag.Dragging() {
		t.Error("expected an active drag")
	}
}

func TestDragTracksSinglePointer(t *testing.T) {
	var drag Drag
	first := press(0, 0)
	second := press(50, 50)
	second.PointerID = 1
	otherMove := move(90, 50)
	otherMove.PointerID = 1
	events := drag.Update([]pointer.Event{first, second, otherMove, move(30, 0)})
	if len(events) != 2 {
		t.Fatalf("got %d drag events, expected 2", len(events))
	}
	for i, e := range events {
		if e.XDelta != 30 {
			t.Errorf("event %d: XDelta = %v, expected 30", i, e.XDelta)
		}
	}
}

func TestDragGrab(t *testing.T) {
	var drag Drag
	drag.Update([]pointer.Event{press(0, 0), move(30, 0)})
	drag.Grab()
	if !drag.Grabbed() {
		t.Error("expected grab to stick for the session")
	}
	drag.Update([]pointer.Event{release(30, 0)})
	if drag.Grabbed() {
		t.Error("expected release to clear the grab")
	}
}

func TestAxisResolve(t *testing.T) {
	for _, tc := range []struct {
		axis      Axis
		transform Transform
		dimension Dimension
		edge      Edge
	}{
		{Horizontal, TranslateX, Width, Left},
		{Vertical, TranslateY, Height, Top},
	} {
		t.Run(tc.axis.String(), func(t *testing.T) {
			p := tc.axis.Resolve()
			if p.Axis != tc.axis || p.Transform != tc.transform ||
				p.Dimension != tc.dimension || p.Edge != tc.edge {
				t.Errorf("Resolve() = %+v", p)
			}
			e := DragEvent{XDelta: 7, YDelta: -3, DragX: true}
			wantDelta, wantPermit := float32(7), true
			if tc.axis == Vertical {
				wantDelta, wantPermit = -3, false
			}
			if got := p.Delta(e); got != wantDelta {
				t.Errorf("Delta() = %v, expected %v", got, wantDelta)
			}
			if got := p.Permitted(e); got != wantPermit {
				t.Errorf("Permitted() = %v, expected %v", got, wantPermit)
			}
			size := f32.Pt(200, 80)
			wantExtent := float32(200)
			if tc.axis == Vertical {
				wantExtent = 80
			}
			if got := p.Extent(size); got != wantExtent {
				t.Errorf("Extent() = %v, expected %v", got, wantExtent)
			}
		})
	}
}

func press(x, y float32) pointer.Event {
	return pointer.Event{Kind: pointer.Press, Source: pointer.Touch, Position: f32.Pt(x, y)}
}

func move(x, y float32) pointer.Event {
	return pointer.Event{Kind: pointer.Move, Source: pointer.Touch, Position: f32.Pt(x, y)}
}

func release(x, y float32) pointer.Event {
	return pointer.Event{Kind: pointer.Release, Source: pointer.Touch, Position: f32.Pt(x, y)}
}

func cancel() pointer.Event {
	return pointer.Event{Kind: pointer.Cancel, Source: pointer.Touch}
}
