package du

import "github.com/idelchi/dirusage/internal/units"

// Kind tags the variant held by a DisplayValue.
type Kind int

const (
	// KindDiskUsage holds a byte quantity.
	KindDiskUsage Kind = iota
	// KindInodes holds an entry count.
	KindInodes
)

// DisplayValue is either an inode count or a disk usage quantity.
type DisplayValue struct {
	kind   Kind
	inodes uint64
	usage  units.Blocksize
}

// INodes returns an inode-count value.
func INodes(n uint64) DisplayValue {
	return DisplayValue{kind: KindInodes, inodes: n}
}

// DiskUsage returns a disk usage value.
func DiskUsage(b units.Blocksize) DisplayValue {
	return DisplayValue{kind: KindDiskUsage, usage: b}
}

// Kind returns the variant tag.
func (v DisplayValue) Kind() Kind {
	return v.kind
}

// Size reduces either variant to a comparable number: the count for inodes,
// the byte value for disk usage.
func (v DisplayValue) Size() uint64 {
	if v.kind == KindInodes {
		return v.inodes
	}

	return v.usage.Value()
}

// valueOf wraps n in the variant selected by opts.
func (o *Options) valueOf(n uint64) DisplayValue {
	if o.Inodes {
		return INodes(n)
	}

	return DiskUsage(units.Bytes(n))
}
