// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/slidekit/slide/gesture"
	"github.com/slidekit/slide/unit"
	"github.com/slidekit/slide/widget"
)

// Profile declares a control configuration. Every field has the
// control's own default, so an empty file (or none at all) is a
// valid profile.
type Profile struct {
	Axis            string        `yaml:"axis"`
	Unit            string        `yaml:"unit"`
	Value           float32       `yaml:"value"`
	Min             float32       `yaml:"min"`
	Max             float32       `yaml:"max"`
	OverMoving      *bool         `yaml:"over_moving"`
	Draggable       *bool         `yaml:"draggable"`
	Accelerated     string        `yaml:"accelerated"`
	StopPropagation bool          `yaml:"stop_propagation"`
	// DurationMS is the spring animation duration in
	// milliseconds.
	DurationMS int `yaml:"duration_ms"`
}

func loadProfile(path string) (Profile, error) {
	// The stock demo: slide left up to 160px and spring back.
	p := Profile{Min: -160, Max: 0, DurationMS: 300}
	if path == "" {
		return p, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("load profile: %w", err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("parse profile %s: %w", path, err)
	}
	return p, nil
}

func (p Profile) axis() (gesture.Axis, error) {
	switch p.Axis {
	case "", "h", "horizontal":
		return gesture.Horizontal, nil
	case "v", "vertical":
		return gesture.Vertical, nil
	default:
		return 0, fmt.Errorf("profile: unknown axis %q", p.Axis)
	}
}

func (p Profile) acceleration() (widget.Acceleration, error) {
	switch p.Accelerated {
	case "", "auto":
		return widget.AccelAuto, nil
	case "on", "true":
		return widget.AccelOn, nil
	case "off", "false":
		return widget.AccelOff, nil
	default:
		return 0, fmt.Errorf("profile: unknown acceleration %q", p.Accelerated)
	}
}

// options converts the profile into control options.
func (p Profile) options() ([]widget.Option, error) {
	axis, err := p.axis()
	if err != nil {
		return nil, err
	}
	u, err := unit.ParseUnit(p.Unit)
	if err != nil {
		return nil, fmt.Errorf("profile: %w", err)
	}
	accel, err := p.acceleration()
	if err != nil {
		return nil, err
	}
	opts := []widget.Option{
		widget.WithAxis(axis),
		widget.WithUnit(u),
		widget.WithValue(p.Value),
		widget.WithBounds(p.Min, p.Max),
		widget.WithAccelerated(accel),
		widget.WithStopPropagation(p.StopPropagation),
	}
	if p.OverMoving != nil {
		opts = append(opts, widget.WithOverMoving(*p.OverMoving))
	}
	if p.Draggable != nil {
		opts = append(opts, widget.WithDraggable(*p.Draggable))
	}
	return opts, nil
}

func (p Profile) duration() time.Duration {
	if p.DurationMS <= 0 {
		return 300 * time.Millisecond
	}
	return time.Duration(p.DurationMS) * time.Millisecond
}
