// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

//go:build cgo

// Package window runs the bouncing-ball scene in a resizable desktop window.
package window

import (
	"log"
	"math/rand"

	"github.com/2dChan/r2voronoi"
	"github.com/2dChan/r2voronoi/internal/config"
	"github.com/2dChan/r2voronoi/internal/scene"
	"github.com/hajimehoshi/ebiten/v2"
)

// Config controls the window runner.
type Config struct {
	Width, Height int
	Seed          int64

	DiagramOptions []r2voronoi.DiagramOption
	Logger         *log.Logger
}

// Run opens the window and blocks until it is closed.
func Run(cfg Config) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = config.WindowWidth, config.WindowHeight
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}

	//nolint:gosec
	sim := scene.NewSimulation(rand.New(rand.NewSource(cfg.Seed)), float64(cfg.Width), float64(cfg.Height))
	g := &game{
		sim:    sim,
		sched:  &scene.FrameScheduler{},
		canvas: &Canvas{},
		width:  cfg.Width,
		height: cfg.Height,
	}
	g.loop = scene.NewLoop(sim, g.canvas, g.sched,
		scene.WithLogger(cfg.Logger),
		scene.WithDiagramOptions(cfg.DiagramOptions...))
	if err := g.loop.Start(); err != nil {
		return err
	}
	defer g.loop.Stop()

	ebiten.SetWindowTitle("r2voronoi")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TPS)
	return ebiten.RunGame(g)
}

type game struct {
	sim    *scene.Simulation
	loop   *scene.Loop
	sched  *scene.FrameScheduler
	canvas *Canvas

	width, height int
	resized       bool
	chars         []rune
}

func (g *game) Update() error {
	if g.resized {
		g.sim.Resize(float64(g.width), float64(g.height))
		g.resized = false
	}
	g.chars = ebiten.AppendInputChars(g.chars[:0])
	for _, r := range g.chars {
		g.sim.HandleKey(r)
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.canvas.SetTarget(screen)
	g.sched.RunPending()
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.resized = true
	}
	return g.width, g.height
}
