//go:build unix && !linux && !darwin

package du

import (
	"syscall"

	"github.com/idelchi/dirusage/internal/dutime"
)

// statTimes falls back to the modification time where the Stat_t time
// fields are not uniformly named.
func statTimes(_ *syscall.Stat_t, mtime dutime.DuTime) (atime, ctime dutime.DuTime) {
	return mtime, mtime
}
