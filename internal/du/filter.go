package du

import "path/filepath"

// Filter decides which aggregated entries are displayed. It never affects
// aggregation.
type Filter struct {
	opts *Options
}

// NewFilter returns a filter for validated options.
func NewFilter(opts *Options) *Filter {
	return &Filter{opts: opts}
}

// Show reports whether e, visited under the root argument root, is printed.
func (f *Filter) Show(e Entry, root string) bool {
	return f.excludedBy(e.Path) == "" &&
		f.withinDepth(e.Depth) &&
		f.passesThreshold(e.Value) &&
		f.showsKind(e, root)
}

// excludedBy returns the first pattern matching path or its base name.
func (f *Filter) excludedBy(path string) string {
	base := filepath.Base(path)

	for _, pattern := range f.opts.Excludes {
		if ok, _ := filepath.Match(pattern, path); ok {
			return pattern
		}

		if ok, _ := filepath.Match(pattern, base); ok {
			return pattern
		}
	}

	return ""
}

func (f *Filter) withinDepth(depth int) bool {
	return f.opts.MaxDepth == Unlimited || depth <= f.opts.MaxDepth
}

// passesThreshold applies the signed bound to disk usage values only.
func (f *Filter) passesThreshold(v DisplayValue) bool {
	t := f.opts.Threshold
	if v.Kind() == KindInodes || t == 0 {
		return true
	}

	size := v.Size()

	if t < 0 {
		return size <= uint64(-t)
	}

	return size >= uint64(t)
}

// showsKind hides files below a root unless all entries are requested.
func (f *Filter) showsKind(e Entry, root string) bool {
	return e.IsDir || f.opts.All || e.Path == root
}
