// Package refresher implements the Topology Refresher: it reacts to
// display-change notifications and a periodic tick, both funneled onto
// the dispatcher thread, and asks the Topology Model to re-enumerate.
package refresher

import (
	"github.com/cursorwarp/cursorwarp/internal/logger"
	"github.com/cursorwarp/cursorwarp/internal/topology"
)

// Model is the subset of *topology.Model the refresher depends on.
type Model interface {
	Refresh() (changed bool, err error)
	Current() topology.Snapshot
}

// Refresher calls Model.Refresh on every trigger. It holds no timer or
// OS notification plumbing itself; those live in the carrier window
// and are delivered to Tick/Notify by the dispatcher, keeping this
// package free of any OS dependency and unit-testable with a fake
// Model.
type Refresher struct {
	model Model
}

// New creates a Refresher around the given model.
func New(model Model) *Refresher {
	return &Refresher{model: model}
}

// Notify runs a refresh triggered by a display-changed or
// settings-changed OS notification. The OS notification is not
// reliably delivered in every multi-display configuration, which is
// why Tick exists as a bounded-latency backstop.
func (r *Refresher) Notify() {
	r.refresh("notification")
}

// Tick runs a refresh triggered by the periodic timer. The
// signature-based dedup inside Model.Refresh makes this free when
// nothing has changed.
func (r *Refresher) Tick() {
	r.refresh("periodic tick")
}

func (r *Refresher) refresh(trigger string) {
	changed, err := r.model.Refresh()
	if err != nil {
		logger.Warnf("refresher: refresh on %s failed: %v", trigger, err)
		return
	}
	if changed {
		logger.Infof("refresher: topology changed on %s, now %d monitor(s)", trigger, len(r.model.Current().Monitors))
	}
}
