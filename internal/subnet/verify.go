package subnet

import (
	"errors"
	"fmt"

	"go4.org/netipx"
)

var ErrCoverage = errors.New("partition does not tile base block")

// Verify checks that descriptors are sorted, pairwise disjoint and together
// cover exactly the /baseLen block containing base.
func Verify(descriptors []Descriptor, base Address, baseLen PrefixLength) error {
	if len(descriptors) == 0 {
		return fmt.Errorf("%w: no subnets", ErrCoverage)
	}
	whole, err := NewDescriptor(base, baseLen)
	if err != nil {
		return err
	}

	var b netipx.IPSetBuilder
	var covered uint64
	next := uint64(whole.Network)
	for i, d := range descriptors {
		if uint64(d.Network) != next {
			return fmt.Errorf("%w: subnet %d starts at %s, want %s", ErrCoverage, i, d.Network, Address(next))
		}
		r := d.Range()
		b.AddRange(r)
		covered += uint64(d.Broadcast-d.Network) + 1
		next = uint64(d.Broadcast) + 1
	}

	set, err := b.IPSet()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCoverage, err)
	}
	ranges := set.Ranges()
	if len(ranges) != 1 || ranges[0] != whole.Range() {
		return fmt.Errorf("%w: union is %v, want %s", ErrCoverage, ranges, whole.Range())
	}
	if covered != BlockSize(baseLen) {
		return fmt.Errorf("%w: %d addresses covered, want %d", ErrCoverage, covered, BlockSize(baseLen))
	}
	return nil
}
