// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package config holds the tuning constants shared by the programs.
package config

import (
	"image/color"
	"time"
)

const (
	// Reference calibration: a 892x1500 viewport holds 100 balls.
	ReferenceWidth    = 892
	ReferenceHeight   = 1500
	ReferenceNumBalls = 100
	// Added to every ball count so tiny viewports still animate.
	MinExtraBalls = 5

	BallRadius = 5
	// Initial velocities are uniform in [-MaxBallSpeed, MaxBallSpeed).
	MaxBallSpeed = 1.0

	PaletteSize = 10
	// Random palettes keep lightness in this range to avoid near black and
	// near white cells.
	MinLightness = 0.25
	MaxLightness = 0.75

	// Window defaults for the interactive variant.
	WindowWidth  = 892
	WindowHeight = 1500 / 2
	TPS          = 60

	// Jitter variant.
	JitterWidth     = 800
	JitterHeight    = 600
	JitterNumPoints = 100
	JitterInterval  = 100 * time.Millisecond
	// Every coordinate moves by U[-JitterAmplitude, JitterAmplitude) per tick.
	JitterAmplitude = 10.0
	JitterPointSize = 3
)

// Draw styles.
var (
	BallColor       = color.NRGBA{A: 0x80}
	CellStrokeColor = color.NRGBA{A: 0x40}
	JitterStroke    = color.NRGBA{A: 0xff}
	JitterPoint     = color.NRGBA{R: 0xff, A: 0xff}
	Background      = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

const CellStrokeWidth = 1
