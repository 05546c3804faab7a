//go:build !windows

package dispatcher

import (
	"fmt"
	"os"

	"github.com/cursorwarp/cursorwarp/internal/config"
)

// run reports a startup failure immediately: the hook pipeline and
// monitor enumeration this process depends on only exist on Windows.
func run(_ config.Config) int {
	fmt.Fprintln(os.Stdout, "cursorwarp: startup failed: this process requires Windows")
	return 1
}
