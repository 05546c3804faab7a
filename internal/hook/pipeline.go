// Package hook implements the re-entrancy-safe pipeline that ties the
// topology model and geometry engine to the OS's global mouse hook: it
// is the single mutator of the Cursor Trace and Suppression Flag
// described in the design, and the only place those two pieces of
// state are read or written.
package hook

import (
	"github.com/cursorwarp/cursorwarp/internal/geometry"
	"github.com/cursorwarp/cursorwarp/internal/logger"
	"github.com/cursorwarp/cursorwarp/internal/topology"
)

// Locator resolves the monitor handle under a point, mirroring the
// OS's "monitor under point" primitive. It returns ok=false when the
// point falls in a gap between monitors.
type Locator interface {
	MonitorUnderPoint(p geometry.Point) (handle uintptr, ok bool)
}

// Mover issues the absolute cursor-move syscall used to synthesize a
// corrected position after a crossing.
type Mover interface {
	MoveCursor(p geometry.Point) error
}

// Action tells the OS hook trampoline what to do with the raw event.
type Action int

const (
	// Pass forwards the original event unchanged (CallNextHookEx).
	Pass Action = iota
	// Suppress swallows the original event; a synthetic move carrying
	// the remapped position has already been issued.
	Suppress
)

// Pipeline is the single owner of the Cursor Trace and Suppression
// Flag. It must only ever be driven from the dispatcher thread (see
// the concurrency model): HandleEvent assumes no concurrent caller.
type Pipeline struct {
	model   *topology.Model
	locator Locator
	mover   Mover

	trace      CursorTrace
	suppressed bool
}

// NewPipeline builds a Pipeline around the given topology model,
// monitor locator, and cursor mover. It also wires itself to the
// model's change notifications so a topology refresh invalidates the
// trace, per the data-model invariant.
func NewPipeline(model *topology.Model, locator Locator, mover Mover) *Pipeline {
	p := &Pipeline{model: model, locator: locator, mover: mover}
	model.OnChange(func(topology.Snapshot) {
		p.trace.Clear()
	})
	return p
}

// HandleEvent runs the six-step per-event procedure for a single
// mouse-move event and reports what the OS hook trampoline should do.
func (p *Pipeline) HandleEvent(pt geometry.Point, injected bool) Action {
	// Step 1: primary re-entrancy guard. Injected events never touch
	// the trace or suppression flag.
	if injected {
		return Pass
	}

	// Step 2: secondary guard, covering drivers that don't mark our
	// own synthetic move as injected.
	if p.suppressed {
		return Pass
	}

	// Step 3: resolve the monitor under the event's point. A miss is a
	// transient OS-query failure: skip the event, leave the trace
	// untouched.
	currentMonitor, ok := p.locator.MonitorUnderPoint(pt)
	if !ok {
		return Pass
	}

	// Step 4: identify a crossing candidate.
	if p.trace.Present && p.trace.Monitor != currentMonitor {
		if action, handled := p.tryCrossing(currentMonitor, pt); handled {
			return action
		}
	}

	// Step 6: ordinary update, no crossing detected or none accepted.
	p.trace.Set(currentMonitor, pt)
	return Pass
}

// tryCrossing attempts the exit-edge detection and remap for a
// candidate crossing from the traced monitor to currentMonitor. handled
// is true when the caller should return the returned Action directly
// rather than falling through to the ordinary step-6 update, i.e.
// only when the synthetic move succeeded. A failed move reports
// handled=false so the caller records the raw event point.
func (p *Pipeline) tryCrossing(currentMonitor uintptr, pt geometry.Point) (action Action, handled bool) {
	sourceMonitor, ok := p.model.Find(p.trace.Monitor)
	if !ok {
		// The traced monitor vanished between enumerations. Let the
		// ordinary update run.
		return Pass, false
	}

	edge, _, along := geometry.ExitEdge(p.trace.Point, pt, sourceMonitor.Rect)
	if edge == geometry.EdgeNone {
		return Pass, false
	}

	destMonitor, ok := p.model.Find(currentMonitor)
	if !ok {
		return Pass, false
	}

	mapped, ok := geometry.Remap(sourceMonitor.Rect, destMonitor.Rect, edge, along)
	if !ok {
		// Numeric degeneracy: not adjacent on this edge. Ordinary update.
		return Pass, false
	}

	if mapped == pt {
		return Pass, false
	}

	p.suppressed = true
	err := p.mover.MoveCursor(mapped)
	p.suppressed = false

	if err != nil {
		logger.Warnf("hook: synthetic cursor move failed: %v", err)
		// Preserve correctness over completing this one correction: no
		// trace update to the remapped point, original event passes.
		return Pass, false
	}

	p.trace.Set(destMonitor.Handle, mapped)
	return Suppress, true
}

// Trace returns the current Cursor Trace, for tests and diagnostics.
func (p *Pipeline) Trace() CursorTrace {
	return p.trace
}
