// Package dispatcher is the composition root: it owns the global
// mouse hook and the timer, the two process-wide OS resources the
// core depends on, and runs the single-threaded message loop that
// serializes every hook callback, timer tick, and topology refresh.
package dispatcher

import (
	"github.com/cursorwarp/cursorwarp/internal/config"
)

// Run builds the topology model, hook pipeline, and refresher, installs
// the mouse hook and timer, and blocks pumping the dispatcher thread's
// message loop until an interrupt or a startup failure. It returns the
// process exit code: 0 on clean shutdown, non-zero if startup failed.
func Run(cfg config.Config) int {
	return run(cfg)
}
