package du

import (
	"github.com/idelchi/dirusage/internal/dutime"
	"github.com/idelchi/dirusage/internal/walk"
)

// Record is the metadata the engine needs for one visited entry.
type Record struct {
	Path  string
	Depth int
	IsDir bool
	// Blocks is the allocation in 512-byte units.
	Blocks int64
	// Size is the apparent size in bytes.
	Size  int64
	Mtime dutime.DuTime
	Atime dutime.DuTime
	Ctime dutime.DuTime
}

// RecordOf extracts a Record from a walk visit.
func RecordOf(v walk.Visit) Record {
	r := Record{
		Path:  v.Path,
		Depth: v.Depth,
		IsDir: v.IsDir(),
		Size:  v.Info.Size(),
		Mtime: dutime.FromTime(v.Info.ModTime()),
	}

	fillPlatform(&r, v.Info)

	return r
}

func (r Record) time(kind TimeKind) dutime.DuTime {
	switch kind {
	case Access:
		return r.Atime
	case Change:
		return r.Ctime
	default:
		return r.Mtime
	}
}
