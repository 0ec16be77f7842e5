package subnet

import "fmt"

// Plan holds the values every worker of a partition shares.
type Plan struct {
	Base     Address
	BaseLen  PrefixLength
	SubLen   PrefixLength
	Count    uint64
	Stride   uint64
	netmask  Address
	wildcard Address
}

// NewPlan aligns base to its /baseLen block and derives the subnet count and
// the per-subnet address stride for /subLen subnets.
func NewPlan(base Address, baseLen, subLen PrefixLength) (Plan, error) {
	baseMask, _, err := NetmaskOf(baseLen)
	if err != nil {
		return Plan{}, err
	}
	netmask, wildcard, err := NetmaskOf(subLen)
	if err != nil {
		return Plan{}, err
	}
	if subLen < baseLen {
		return Plan{}, fmt.Errorf("%w: /%d is shorter than base /%d", ErrInvalidPrefixLength, subLen, baseLen)
	}

	return Plan{
		Base:     NetworkOf(base, baseMask),
		BaseLen:  baseLen,
		SubLen:   subLen,
		Count:    uint64(1) << (subLen - baseLen),
		Stride:   BlockSize(subLen),
		netmask:  netmask,
		wildcard: wildcard,
	}, nil
}

// StartOf returns the network address of the subnet at index i.
func (p Plan) StartOf(i uint64) Address {
	return Address(uint64(p.Base) + i*p.Stride)
}

// fill writes the descriptors of indices [start, start+len(out)) into out by
// stepping from one broadcast to the next network.
func (p Plan) fill(start uint64, out []Descriptor) {
	address := p.StartOf(start)
	for i := range out {
		out[i] = describe(address, p.SubLen, p.netmask, p.wildcard)
		address = out[i].Broadcast + 1
	}
}

// Enumerate lists every /subLen subnet of the /baseLen block containing base,
// in ascending address order.
func Enumerate(base Address, baseLen, subLen PrefixLength) ([]Descriptor, error) {
	plan, err := NewPlan(base, baseLen, subLen)
	if err != nil {
		return nil, err
	}
	out := make([]Descriptor, plan.Count)
	plan.fill(0, out)
	return out, nil
}
