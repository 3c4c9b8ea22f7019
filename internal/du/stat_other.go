//go:build !unix

package du

import "io/fs"

const inodesSupported = false

func fillPlatform(r *Record, _ fs.FileInfo) {
	r.Blocks = estimateBlocks(r.Size)
	r.Atime, r.Ctime = r.Mtime, r.Mtime
}
