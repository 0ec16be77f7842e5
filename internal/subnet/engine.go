package subnet

import (
	"context"
	"fmt"
	"net/netip"
)

// Request is the validated input of a partition.
type Request struct {
	Base             Address
	BasePrefixLength PrefixLength
	MinUsableHosts   uint32
	Workers          int
}

// Result is an ordered, complete partition of the base block.
type Result struct {
	Base         Address
	BaseLen      PrefixLength
	PrefixLength PrefixLength
	Subnets      []Descriptor
}

// Partition selects the subnet size for req and enumerates the subnets.
func Partition(ctx context.Context, req Request) (Result, error) {
	if err := CheckCapacity(req.BasePrefixLength, req.MinUsableHosts); err != nil {
		return Result{}, err
	}
	subLen, err := SelectPrefix(req.BasePrefixLength, req.MinUsableHosts)
	if err != nil {
		return Result{}, err
	}
	subnets, err := EnumerateParallel(ctx, req.Base, req.BasePrefixLength, subLen, req.Workers)
	if err != nil {
		return Result{}, err
	}

	netmask, _, _ := NetmaskOf(req.BasePrefixLength)
	return Result{
		Base:         NetworkOf(req.Base, netmask),
		BaseLen:      req.BasePrefixLength,
		PrefixLength: subLen,
		Subnets:      subnets,
	}, nil
}

// PlanFor returns the subnet size and count Partition would produce without
// enumerating anything.
func PlanFor(req Request) (Plan, error) {
	if err := CheckCapacity(req.BasePrefixLength, req.MinUsableHosts); err != nil {
		return Plan{}, err
	}
	subLen, err := SelectPrefix(req.BasePrefixLength, req.MinUsableHosts)
	if err != nil {
		return Plan{}, err
	}
	return NewPlan(req.Base, req.BasePrefixLength, subLen)
}

func (r Result) Verify() error {
	if err := Verify(r.Subnets, r.Base, r.BaseLen); err != nil {
		return fmt.Errorf("/%d partition of %s/%d: %w", r.PrefixLength, r.Base, r.BaseLen, err)
	}
	return nil
}

// Block is the base block the result partitions.
func (r Result) Block() netip.Prefix {
	return netip.PrefixFrom(r.Base.Netip(), int(r.BaseLen))
}
