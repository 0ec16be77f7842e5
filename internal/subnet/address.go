package subnet

import (
	"fmt"
	"net/netip"
	"strconv"
)

// Address is an IPv4 address held as its big-endian 32-bit value.
type Address uint32

// PrefixLength is the number of leading network bits of a block.
type PrefixLength uint8

const maxPrefixLength PrefixLength = 32

func AddressFrom4(octets [4]byte) Address {
	return Address(uint32(octets[0])<<24 | uint32(octets[1])<<16 | uint32(octets[2])<<8 | uint32(octets[3]))
}

// AddressFromNetip converts an IPv4 (or IPv4-mapped IPv6) netip.Addr.
func AddressFromNetip(ip netip.Addr) (Address, error) {
	ip = ip.Unmap()
	if !ip.Is4() {
		return 0, fmt.Errorf("%w: %q is not an ipv4 address", ErrMalformedAddress, ip)
	}
	return AddressFrom4(ip.As4()), nil
}

// ParseAddress parses a dotted-quad string.
func ParseAddress(s string) (Address, error) {
	ip, err := netip.ParseAddr(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformedAddress, err)
	}
	return AddressFromNetip(ip)
}

func (a Address) As4() [4]byte {
	return [4]byte{byte(a >> 24), byte(a >> 16), byte(a >> 8), byte(a)}
}

func (a Address) Netip() netip.Addr {
	return netip.AddrFrom4(a.As4())
}

func (a Address) String() string {
	o := a.As4()
	buf := make([]byte, 0, 15)
	for i, b := range o {
		if i > 0 {
			buf = append(buf, '.')
		}
		buf = strconv.AppendUint(buf, uint64(b), 10)
	}
	return string(buf)
}

func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Address) UnmarshalText(text []byte) error {
	parsed, err := ParseAddress(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Valid reports whether p is in [0, 32].
func (p PrefixLength) Valid() bool {
	return p <= maxPrefixLength
}
