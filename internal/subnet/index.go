package subnet

import (
	"fmt"

	"github.com/gaissmai/bart"
)

// Index answers which subnet of a partition contains a given address.
type Index struct {
	table bart.Table[Descriptor]
}

// NewIndex loads descriptors into a routing table. Overlapping descriptors
// are rejected since a partition never produces them.
func NewIndex(descriptors []Descriptor) (*Index, error) {
	idx := &Index{}
	for _, d := range descriptors {
		pfx := d.Prefix()
		if idx.table.OverlapsPrefix(pfx) {
			return nil, fmt.Errorf("%w: %s overlaps an indexed subnet", ErrOverlappingSubnets, pfx)
		}
		idx.table.Insert(pfx, d)
	}
	return idx, nil
}

// Locate returns the descriptor whose block holds a.
func (x *Index) Locate(a Address) (Descriptor, bool) {
	return x.table.Lookup(a.Netip())
}

func (x *Index) Len() int {
	return x.table.Size()
}
