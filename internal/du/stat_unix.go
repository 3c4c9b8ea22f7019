//go:build unix

package du

import (
	"io/fs"
	"syscall"
)

const inodesSupported = true

// fillPlatform reads block usage and the access and change times from the
// raw stat data. Blocks are in 512-byte units.
func fillPlatform(r *Record, info fs.FileInfo) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		r.Blocks = estimateBlocks(r.Size)
		r.Atime, r.Ctime = r.Mtime, r.Mtime

		return
	}

	r.Blocks = int64(st.Blocks) //nolint:unconvert // Blocks width varies by platform
	r.Atime, r.Ctime = statTimes(st, r.Mtime)
}
