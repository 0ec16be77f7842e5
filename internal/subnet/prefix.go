package subnet

import "fmt"

// SelectPrefix finds the longest prefix length in [base, 30] whose blocks
// still hold at least minUsableHosts usable addresses. A /31 or /32 base is
// returned unchanged.
func SelectPrefix(base PrefixLength, minUsableHosts uint32) (PrefixLength, error) {
	if !base.Valid() {
		return 0, fmt.Errorf("%w: /%d", ErrInvalidPrefixLength, base)
	}
	if base >= 31 {
		return base, nil
	}

	for p := PrefixLength(30); ; p-- {
		if BlockSize(p)-2 >= uint64(minUsableHosts) {
			return p, nil
		}
		if p == base {
			break
		}
	}

	return 0, fmt.Errorf("%w: %d usable hosts do not fit in a /%d", ErrNoFeasiblePrefix, minUsableHosts, base)
}

// CheckCapacity fails when minUsableHosts exceeds what a /base block can
// provide.
func CheckCapacity(base PrefixLength, minUsableHosts uint32) error {
	if !base.Valid() {
		return fmt.Errorf("%w: /%d", ErrInvalidPrefixLength, base)
	}
	if capacity := UsableHosts(base); minUsableHosts > capacity {
		return fmt.Errorf("%w: /%d holds at most %d usable hosts, %d requested",
			ErrHostRequirementExceedsCapacity, base, capacity, minUsableHosts)
	}
	return nil
}
