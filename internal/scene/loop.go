// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package scene

import (
	"errors"
	"log"

	"github.com/2dChan/r2voronoi"
)

// State is the lifecycle state of a Loop.
type State int

const (
	Idle State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "idle"
}

var (
	ErrNoCanvas    = errors.New("scene: no canvas")
	ErrNoScheduler = errors.New("scene: no scheduler")
	ErrRunning     = errors.New("scene: loop already running")
)

// Loop renders a Simulation once per scheduled frame until stopped.
type Loop struct {
	sim    *Simulation
	canvas Canvas
	sched  Scheduler

	diagramOpts []r2voronoi.DiagramOption
	logger      *log.Logger

	state  State
	cancel func()
	frames int
}

type LoopOption func(*Loop)

// WithLogger sets the logger used for frame warnings. The default is
// log.Default().
func WithLogger(l *log.Logger) LoopOption {
	return func(lp *Loop) {
		lp.logger = l
	}
}

// WithDiagramOptions sets the options passed to r2voronoi.NewDiagram every
// frame.
func WithDiagramOptions(opts ...r2voronoi.DiagramOption) LoopOption {
	return func(lp *Loop) {
		lp.diagramOpts = opts
	}
}

func NewLoop(sim *Simulation, canvas Canvas, sched Scheduler, setters ...LoopOption) *Loop {
	l := &Loop{
		sim:    sim,
		canvas: canvas,
		sched:  sched,
		logger: log.Default(),
	}
	for _, set := range setters {
		set(l)
	}
	return l
}

// Start schedules the first frame.
func (l *Loop) Start() error {
	if l.canvas == nil {
		return ErrNoCanvas
	}
	if l.sched == nil {
		return ErrNoScheduler
	}
	if l.state == Running {
		return ErrRunning
	}
	l.state = Running
	l.cancel = l.sched.Schedule(l.frame)
	return nil
}

// Stop cancels the pending frame. Stopping an idle loop does nothing.
func (l *Loop) Stop() {
	if l.state != Running {
		return
	}
	l.state = Idle
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
}

func (l *Loop) State() State {
	return l.state
}

// Frames returns the number of frames rendered so far.
func (l *Loop) Frames() int {
	return l.frames
}

func (l *Loop) frame() {
	if l.state != Running {
		return
	}

	d, err := l.sim.Diagram(l.diagramOpts...)
	if err != nil {
		l.logger.Printf("scene: frame %d: voronoi: %v", l.frames, err)
		d = nil
	}
	Draw(l.canvas, l.sim, d)
	l.sim.Advance()
	l.frames++

	if l.state == Running {
		l.cancel = l.sched.Schedule(l.frame)
	}
}
