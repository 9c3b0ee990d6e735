// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"testing"
	"time"
)

func TestLoadProfileDefaults(t *testing.T) {
	p, err := loadProfile("")
	if err != nil {
		t.Fatal(err)
	}
	if p.Min != -160 || p.Max != 0 {
		t.Errorf("default bounds [%v, %v], expected [-160, 0]", p.Min, p.Max)
	}
	if p.duration() != 300*time.Millisecond {
		t.Errorf("default duration %v", p.duration())
	}
	if _, err := p.options(); err != nil {
		t.Errorf("default profile must convert: %v", err)
	}
}

func TestLoadProfileFile(t *testing.T) {
	p, err := loadProfile("testdata/vertical.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if p.Axis != "v" || p.Unit != "%" {
		t.Errorf("axis %q unit %q", p.Axis, p.Unit)
	}
	if p.Min != -90 || p.Max != 0 {
		t.Errorf("bounds [%v, %v], expected [-90, 0]", p.Min, p.Max)
	}
	if p.OverMoving == nil || *p.OverMoving {
		t.Error("expected over_moving false")
	}
	if !p.StopPropagation {
		t.Error("expected stop_propagation true")
	}
	if p.duration() != 450*time.Millisecond {
		t.Errorf("duration %v, expected 450ms", p.duration())
	}
	if _, err := p.options(); err != nil {
		t.Errorf("profile must convert: %v", err)
	}
}

func TestProfileRejectsUnknowns(t *testing.T) {
	for _, tc := range []struct {
		label   string
		profile Profile
	}{
		{label: "axis", profile: Profile{Axis: "diagonal"}},
		{label: "unit", profile: Profile{Unit: "em"}},
		{label: "acceleration", profile: Profile{Accelerated: "maybe"}},
	} {
		t.Run(tc.label, func(t *testing.T) {
			if _, err := tc.profile.options(); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
