// Package du aggregates disk usage over directory trees.
//
// Entries arrive from the walk package in post-order. The Engine folds each
// entry into a depth-indexed accumulator stack so that a directory's total is
// complete by the time the directory itself is visited. A Filter decides
// which aggregated entries are printed and a Formatter renders them. Hard
// links are not deduplicated: every visited path counts on its own.
package du
