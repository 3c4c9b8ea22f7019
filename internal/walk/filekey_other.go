//go:build !unix

package walk

import "io/fs"

type fileKey struct {
	dev uint64
	ino uint64
}

// keyOf has no device or inode information to offer off Unix, so neither
// one-file-system nor cycle detection apply there.
func keyOf(fs.FileInfo) (fileKey, bool) {
	return fileKey{}, false
}
