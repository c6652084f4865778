// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package scene

// Scheduler runs a callback once, before the next display refresh.
type Scheduler interface {
	// Schedule queues fn and returns a function that cancels it if it has
	// not run yet.
	Schedule(fn func()) (cancel func())
}

// FrameScheduler is a Scheduler whose callbacks run when the host calls
// RunPending, typically once per refresh. It is not safe for concurrent use.
type FrameScheduler struct {
	pending []*frameCallback
}

type frameCallback struct {
	fn       func()
	canceled bool
}

func (s *FrameScheduler) Schedule(fn func()) func() {
	cb := &frameCallback{fn: fn}
	s.pending = append(s.pending, cb)
	return func() { cb.canceled = true }
}

// RunPending runs the callbacks queued before the call and returns how many
// ran. Callbacks scheduled while running wait for the next call.
func (s *FrameScheduler) RunPending() int {
	batch := s.pending
	s.pending = nil
	ran := 0
	for _, cb := range batch {
		if cb.canceled {
			continue
		}
		cb.fn()
		ran++
	}
	return ran
}

// Len returns the number of queued callbacks that are not canceled.
func (s *FrameScheduler) Len() int {
	n := 0
	for _, cb := range s.pending {
		if !cb.canceled {
			n++
		}
	}
	return n
}
