package subnet

import (
	"net/netip"

	"go4.org/netipx"
)

// Descriptor describes one subnet of a partition. It is built once by the
// partitioner and never modified.
type Descriptor struct {
	Network      Address
	First        Address
	Last         Address
	Broadcast    Address
	PrefixLength PrefixLength
	UsableHosts  uint32
}

// NewDescriptor builds the descriptor of the /p block containing address.
func NewDescriptor(address Address, p PrefixLength) (Descriptor, error) {
	netmask, wildcard, err := NetmaskOf(p)
	if err != nil {
		return Descriptor{}, err
	}
	return describe(address, p, netmask, wildcard), nil
}

// describe assumes masks already derived from p.
func describe(address Address, p PrefixLength, netmask, wildcard Address) Descriptor {
	switch p {
	case 32:
		return Descriptor{
			Network:      address,
			First:        address,
			Last:         address,
			Broadcast:    address,
			PrefixLength: p,
			UsableHosts:  1,
		}
	case 31:
		network := address &^ 1
		return Descriptor{
			Network:      network,
			First:        network,
			Last:         network + 1,
			Broadcast:    network + 1,
			PrefixLength: p,
			UsableHosts:  2,
		}
	}

	network := NetworkOf(address, netmask)
	broadcast := BroadcastOf(network, wildcard)
	return Descriptor{
		Network:      network,
		First:        network + 1,
		Last:         broadcast - 1,
		Broadcast:    broadcast,
		PrefixLength: p,
		UsableHosts:  UsableHosts(p),
	}
}

func (d Descriptor) Prefix() netip.Prefix {
	return netip.PrefixFrom(d.Network.Netip(), int(d.PrefixLength))
}

// Range spans network through broadcast.
func (d Descriptor) Range() netipx.IPRange {
	return netipx.IPRangeFrom(d.Network.Netip(), d.Broadcast.Netip())
}

func (d Descriptor) Contains(a Address) bool {
	return d.Network <= a && a <= d.Broadcast
}

// IsUsable reports whether a may be assigned to a host. Network and
// broadcast are excluded except for /31 and /32 blocks.
func (d Descriptor) IsUsable(a Address) bool {
	return d.First <= a && a <= d.Last
}

func (d Descriptor) String() string {
	return d.Prefix().String()
}
