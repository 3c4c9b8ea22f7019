package du

import (
	"testing"

	"github.com/idelchi/dirusage/internal/dutime"
)

func file(path string, depth int, blocks int64) Record {
	return Record{Path: path, Depth: depth, Blocks: blocks, Size: blocks * 100}
}

func dir(path string, depth int, blocks int64) Record {
	return Record{Path: path, Depth: depth, IsDir: true, Blocks: blocks, Size: blocks * 100}
}

// feed runs records through a fresh engine and indexes the entries by path.
func feed(opts Options, records ...Record) map[string]Entry {
	engine := NewEngine(&opts)
	out := make(map[string]Entry, len(records))

	for _, r := range records {
		out[r.Path] = engine.Add(r)
	}

	return out
}

func TestEngineAggregation(t *testing.T) {
	// R/a, R/S/b with 8 blocks each.
	records := []Record{
		file("R/a", 1, 8),
		file("R/S/b", 2, 8),
		dir("R/S", 1, 0),
		dir("R", 0, 0),
	}

	tests := []struct {
		name string
		opts Options
		want map[string]uint64
	}{
		{
			name: "block usage",
			opts: DefaultOptions(),
			want: map[string]uint64{"R/a": 4096, "R/S/b": 4096, "R/S": 4096, "R": 8192},
		},
		{
			name: "apparent size",
			opts: Options{ApparentSize: true},
			want: map[string]uint64{"R/a": 800, "R/S/b": 800, "R/S": 800, "R": 1600},
		},
		{
			name: "inodes",
			opts: Options{Inodes: true},
			want: map[string]uint64{"R/a": 1, "R/S/b": 1, "R/S": 2, "R": 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := feed(tt.opts, records...)

			for path, want := range tt.want {
				if size := got[path].Value.Size(); size != want {
					t.Errorf("%s = %d, want %d", path, size, want)
				}
			}
		})
	}
}

func TestEngineDirectorySelfSizes(t *testing.T) {
	got := feed(DefaultOptions(),
		file("R/a", 1, 8),
		file("R/S/b", 2, 8),
		dir("R/S", 1, 8),
		dir("R", 0, 8),
	)

	if size := got["R/S"].Value.Size(); size != 16*512 {
		t.Errorf("R/S = %d, want %d", size, 16*512)
	}

	if size := got["R"].Value.Size(); size != 32*512 {
		t.Errorf("R = %d, want %d", size, 32*512)
	}
}

func TestEngineSeparateDirs(t *testing.T) {
	opts := DefaultOptions()
	opts.SeparateDirs = true

	for _, files := range []int{0, 1, 5} {
		records := []Record{}
		for i := 0; i < files; i++ {
			records = append(records, file("R/S/f", 2, 8))
		}

		records = append(records, file("R/a", 1, 8), dir("R/S", 1, 2), dir("R", 0, 4))

		got := feed(opts, records...)

		if size := got["R/S"].Value.Size(); size != 2*512 {
			t.Errorf("%d files: R/S = %d, want own size %d", files, size, 2*512)
		}

		if size := got["R"].Value.Size(); size != 4*512 {
			t.Errorf("%d files: R = %d, want own size %d", files, size, 4*512)
		}

		if size := got["R/a"].Value.Size(); size != 8*512 {
			t.Errorf("%d files: R/a = %d, want %d", files, size, 8*512)
		}
	}
}

func TestEngineSiblingSubtrees(t *testing.T) {
	got := feed(DefaultOptions(),
		file("R/A/x", 2, 1),
		file("R/A/y", 2, 2),
		dir("R/A", 1, 0),
		file("R/B/z", 2, 4),
		dir("R/B", 1, 0),
		dir("R/C", 1, 0),
		dir("R", 0, 0),
	)

	want := map[string]uint64{"R/A": 3 * 512, "R/B": 4 * 512, "R/C": 0, "R": 7 * 512}
	for path, w := range want {
		if size := got[path].Value.Size(); size != w {
			t.Errorf("%s = %d, want %d", path, size, w)
		}
	}
}

func TestEngineStackShrinks(t *testing.T) {
	opts := DefaultOptions()
	engine := NewEngine(&opts)

	engine.Add(file("R/a/b/c", 3, 1))

	if engine.Depth() != 4 {
		t.Fatalf("Depth() = %d, want 4", engine.Depth())
	}

	// A missing intermediate visit still folds every deeper slot.
	entry := engine.Add(dir("R/a", 1, 0))
	if entry.Value.Size() != 512 {
		t.Errorf("R/a = %d, want 512", entry.Value.Size())
	}

	if engine.Depth() != 2 {
		t.Errorf("Depth() after ascent = %d, want 2", engine.Depth())
	}

	root := engine.Add(dir("R", 0, 0))
	if root.Value.Size() != 512 {
		t.Errorf("R = %d, want 512", root.Value.Size())
	}

	engine.Reset()

	if engine.Depth() != 0 {
		t.Errorf("Depth() after Reset = %d, want 0", engine.Depth())
	}
}

func TestEngineTimes(t *testing.T) {
	at := func(r Record, sec int64) Record {
		r.Mtime = dutime.FromSeconds(sec)
		r.Atime = dutime.FromSeconds(sec + 1000)

		return r
	}

	records := []Record{
		at(file("R/a", 1, 1), 50),
		at(file("R/S/b", 2, 1), 300),
		at(dir("R/S", 1, 0), 100),
		at(dir("R", 0, 0), 200),
	}

	tests := []struct {
		name string
		opts Options
		want map[string]int64
	}{
		{
			name: "modification",
			opts: DefaultOptions(),
			want: map[string]int64{"R/a": 50, "R/S": 300, "R": 300},
		},
		{
			name: "access",
			opts: Options{TimeKind: Access},
			want: map[string]int64{"R/a": 1050, "R/S": 1300, "R": 1300},
		},
		{
			name: "separate dirs still propagate time",
			opts: Options{SeparateDirs: true},
			want: map[string]int64{"R/S": 300, "R": 300},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := feed(tt.opts, records...)

			for path, want := range tt.want {
				if sec := got[path].Time.Sec; sec != want {
					t.Errorf("%s time = %d, want %d", path, sec, want)
				}
			}
		})
	}
}

func TestEngineHardLinksCountTwice(t *testing.T) {
	// Two paths to the same inode are two records; nothing is deduplicated.
	got := feed(Options{Inodes: true},
		file("R/link1", 1, 8),
		file("R/link2", 1, 8),
		dir("R", 0, 0),
	)

	if size := got["R"].Value.Size(); size != 3 {
		t.Errorf("R inodes = %d, want 3", size)
	}
}
