// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

//go:build !cgo

// Package window runs the bouncing-ball scene in a resizable desktop window.
package window

import (
	"errors"
	"log"

	"github.com/2dChan/r2voronoi"
)

type Config struct {
	Width, Height int
	Seed          int64

	DiagramOptions []r2voronoi.DiagramOption
	Logger         *log.Logger
}

func Run(_ Config) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
