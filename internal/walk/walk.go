// Package walk implements the depth-first, post-order directory traversal
// that feeds the usage engine.
//
// Every directory is yielded after all of its descendants. Entries are
// visited on the calling goroutine in lexical order per directory.
package walk

import (
	"errors"
	"io/fs"
	"os"
	"strings"
)

// Dereference selects which symbolic links are followed.
type Dereference int

const (
	// Never follows no symbolic links.
	Never Dereference = iota
	// Args follows a symbolic link only when it is the root itself.
	Args
	// Always follows every symbolic link.
	Always
)

// ErrCycle is reported for a directory that is its own ancestor.
var ErrCycle = errors.New("directory cycle detected")

// SkipAll may be returned by a VisitFunc to stop the walk without error.
var SkipAll = fs.SkipAll //nolint:gochecknoglobals // Re-exported sentinel

// Config controls the traversal.
type Config struct {
	// Dereference is the symbolic link policy.
	Dereference Dereference
	// OneFileSystem skips entries on a device other than the root's.
	OneFileSystem bool
}

// Visit is one traversed entry.
type Visit struct {
	// Path is the root argument joined with the entry's relative path.
	Path string
	// Depth is 0 for the root, 1 for its children and so on.
	Depth int
	// Info describes the entry (the link target when dereferenced).
	Info fs.FileInfo
}

// IsDir reports whether the entry is a directory.
func (v Visit) IsDir() bool {
	return v.Info.IsDir()
}

// VisitFunc receives entries in post-order.
type VisitFunc func(Visit) error

// ErrorFunc receives per-entry failures. The walk continues afterwards.
type ErrorFunc func(path string, err error)

type walker struct {
	conf      Config
	visit     VisitFunc
	onError   ErrorFunc
	rootDev   uint64
	hasDev    bool
	ancestors map[fileKey]struct{}
}

// Walk traverses root in post-order.
//
// A failure to stat root is returned. Any other stat or read failure is
// passed to onError and the affected entry is skipped; an unreadable
// directory is still visited with whatever entries could be listed.
// An error returned by visit aborts the walk and is returned, except SkipAll.
func Walk(root string, conf Config, visit VisitFunc, onError ErrorFunc) error {
	if onError == nil {
		onError = func(string, error) {}
	}

	info, err := stat(root, conf.Dereference != Never)
	if err != nil {
		return err
	}

	w := &walker{
		conf:      conf,
		visit:     visit,
		onError:   onError,
		ancestors: make(map[fileKey]struct{}),
	}

	if key, ok := keyOf(info); ok {
		w.rootDev, w.hasDev = key.dev, true
	}

	err = w.walk(root, 0, info)
	if errors.Is(err, SkipAll) {
		return nil
	}

	return err
}

func (w *walker) walk(path string, depth int, info fs.FileInfo) error {
	if info.IsDir() {
		if key, ok := keyOf(info); ok {
			if _, seen := w.ancestors[key]; seen {
				w.onError(path, ErrCycle)

				return nil
			}

			w.ancestors[key] = struct{}{}
			defer delete(w.ancestors, key)
		}

		// ReadDir returns the entries it managed to read alongside the error.
		entries, err := os.ReadDir(path)
		if err != nil {
			w.onError(path, err)
		}

		for _, entry := range entries {
			child := join(path, entry.Name())

			childInfo, err := stat(child, w.conf.Dereference == Always)
			if err != nil {
				w.onError(child, err)

				continue
			}

			if w.otherDevice(childInfo) {
				continue
			}

			if err := w.walk(child, depth+1, childInfo); err != nil {
				return err
			}
		}
	}

	return w.visit(Visit{Path: path, Depth: depth, Info: info})
}

func (w *walker) otherDevice(info fs.FileInfo) bool {
	if !w.conf.OneFileSystem || !w.hasDev {
		return false
	}

	key, ok := keyOf(info)

	return ok && key.dev != w.rootDev
}

func stat(path string, follow bool) (fs.FileInfo, error) {
	if follow {
		return os.Stat(path)
	}

	return os.Lstat(path)
}

// join appends name to dir without cleaning dir, so "./a" stays "./a/b".
func join(dir, name string) string {
	if strings.HasSuffix(dir, string(os.PathSeparator)) {
		return dir + name
	}

	return dir + string(os.PathSeparator) + name
}
