// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"image"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/slidekit/slide/anim"
	"github.com/slidekit/slide/backend/termview"
	"github.com/slidekit/slide/io/pointer"
	"github.com/slidekit/slide/widget"
)

const termFrame = time.Second / 30

func runTerm(profile Profile) error {
	opts, err := profile.options()
	if err != nil {
		return err
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("term backend: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("term backend: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	panel := &termview.Panel{
		Track:       image.Rect(4, 3, 68, 6),
		Size:        image.Pt(16, 3),
		TrackStyle:  tcell.StyleDefault.Foreground(tcell.ColorGray),
		PanelStyle:  tcell.StyleDefault.Background(tcell.ColorNavy),
		MovingStyle: tcell.StyleDefault.Background(tcell.ColorTeal),
	}
	tl := &anim.Timeline{Duration: profile.duration()}
	s := widget.New(panel, tl, opts...)

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(termFrame)
	defer ticker.Stop()
	start := time.Now()
	var pending []pointer.Event
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Rune() == 'q':
					return nil
				case ev.Rune() == ' ':
					s.ToggleMinMax()
				}
			case *tcell.EventMouse:
				pending = append(pending, panel.Pointer(ev, time.Since(start))...)
			case *tcell.EventResize:
				screen.Sync()
			}
		case now := <-ticker.C:
			s.Frame(pending)
			pending = pending[:0]
			tl.Step(now)
			screen.Clear()
			panel.Draw(screen)
			status := fmt.Sprintf("value %.2f%s   drag the panel, space toggles, q quits", s.Value(), s.Unit())
			for i, r := range status {
				screen.SetContent(4+i, 8, r, nil, tcell.StyleDefault)
			}
			screen.Show()
		}
	}
}
