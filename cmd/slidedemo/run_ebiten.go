// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/slidekit/slide/anim"
	"github.com/slidekit/slide/backend/ebitenview"
	"github.com/slidekit/slide/widget"
)

const (
	screenW = 640
	screenH = 360
)

type game struct {
	panel *ebitenview.Panel
	slide *widget.Slideable
	tl    *anim.Timeline
	start time.Time
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.slide.ToggleMinMax()
	}
	now := time.Now()
	g.slide.Frame(g.panel.PointerEvents(now.Sub(g.start)))
	g.tl.Step(now)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.panel.Draw(screen)
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"value %.2f%s   drag the panel, space toggles, q quits",
		g.slide.Value(), g.slide.Unit()))
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenW, screenH
}

func runEbiten(profile Profile) error {
	opts, err := profile.options()
	if err != nil {
		return err
	}
	panel := &ebitenview.Panel{
		Track: image.Rect(120, 80, 520, 280),
		Size:  image.Pt(200, 200),
	}
	tl := &anim.Timeline{Duration: profile.duration()}
	g := &game{
		panel: panel,
		slide: widget.New(panel, tl, opts...),
		tl:    tl,
		start: time.Now(),
	}
	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle("slidedemo")
	return ebiten.RunGame(g)
}
