package subnet

import "fmt"

// NetmaskOf returns the netmask with p leading one bits and its wildcard
// complement.
func NetmaskOf(p PrefixLength) (netmask, wildcard Address, err error) {
	if !p.Valid() {
		return 0, 0, fmt.Errorf("%w: /%d", ErrInvalidPrefixLength, p)
	}
	// 64-bit shift so that /0 yields an all-zero mask.
	netmask = Address(uint32(uint64(0xffffffff) << (32 - uint(p))))
	return netmask, ^netmask, nil
}

func NetworkOf(address, netmask Address) Address {
	return address & netmask
}

// BroadcastOf adds the wildcard to a network address. The network must have
// all host bits cleared.
func BroadcastOf(network, wildcard Address) Address {
	return network + wildcard
}

// BlockSize is the number of addresses covered by a /p block.
func BlockSize(p PrefixLength) uint64 {
	return uint64(1) << (32 - uint(p))
}

// UsableHosts returns the assignable address count of a /p block: both
// addresses of a /31 (RFC 3021) and the single address of a /32 count.
func UsableHosts(p PrefixLength) uint32 {
	switch p {
	case 32:
		return 1
	case 31:
		return 2
	default:
		return uint32(BlockSize(p) - 2)
	}
}
