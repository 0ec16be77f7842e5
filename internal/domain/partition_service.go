package domain

import (
	"context"
	"fmt"
	"net/netip"
	"time"

	"github.com/google/uuid"
	"go4.org/netipx"

	"github.com/Flarenzy/subnetter/internal/subnet"
)

type Options struct {
	// MaxSubnets rejects partitions producing more subnets. Zero disables
	// the limit.
	MaxSubnets uint64
	// DefaultWorkers replaces a zero worker count.
	DefaultWorkers int
	// Verify re-checks coverage of every partition before returning it.
	Verify bool
}

type partitionService struct {
	opts Options
	now  func() time.Time
}

func NewPartitionService(opts Options) PartitionService {
	if opts.DefaultWorkers < 1 {
		opts.DefaultWorkers = 1
	}
	if opts.DefaultWorkers > MaxWorkers {
		opts.DefaultWorkers = MaxWorkers
	}
	return &partitionService{opts: opts, now: time.Now}
}

func (s *partitionService) request(input PartitionInput) (subnet.Request, subnet.Plan, error) {
	if input.Workers == 0 {
		input.Workers = s.opts.DefaultWorkers
	}
	req, err := input.Validate()
	if err != nil {
		return subnet.Request{}, subnet.Plan{}, err
	}
	plan, err := subnet.PlanFor(req)
	if err != nil {
		return subnet.Request{}, subnet.Plan{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return req, plan, nil
}

func (s *partitionService) Partition(ctx context.Context, input PartitionInput) (Partition, error) {
	req, plan, err := s.request(input)
	if err != nil {
		return Partition{}, err
	}
	if s.opts.MaxSubnets > 0 && plan.Count > s.opts.MaxSubnets {
		return Partition{}, fmt.Errorf("%w: %d subnets of /%d exceed the limit of %d",
			ErrPartitionTooLarge, plan.Count, plan.SubLen, s.opts.MaxSubnets)
	}

	start := s.now()
	res, err := subnet.Partition(ctx, req)
	if err != nil {
		return Partition{}, err
	}
	if s.opts.Verify {
		if err := res.Verify(); err != nil {
			return Partition{}, err
		}
	}

	return Partition{
		ID:      PartitionID(uuid.NewString()),
		Request: req,
		Result:  res,
		Elapsed: s.now().Sub(start),
	}, nil
}

// Locate finds the subnet holding input.IP without enumerating the
// partition: the subnet index follows from the address offset.
func (s *partitionService) Locate(_ context.Context, input LocateInput) (Location, error) {
	req, plan, err := s.request(input.PartitionInput)
	if err != nil {
		return Location{}, err
	}
	ip, err := parseIP(input.IP)
	if err != nil {
		return Location{}, err
	}

	block := netip.PrefixFrom(plan.Base.Netip(), int(plan.BaseLen))
	if err := validateIPInBlock(block, ip); err != nil {
		return Location{}, fmt.Errorf("%w: %v", ErrNotFound, err)
	}

	address, err := subnet.AddressFromNetip(ip)
	if err != nil {
		return Location{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	d, err := subnet.NewDescriptor(address, plan.SubLen)
	if err != nil {
		return Location{}, err
	}

	return Location{
		Request:      req,
		PrefixLength: plan.SubLen,
		Subnet:       d,
		Index:        (uint64(d.Network) - uint64(plan.Base)) / plan.Stride,
		Usable:       d.IsUsable(address),
	}, nil
}

// Ping partitions a documentation block and checks the result tiles it.
func (s *partitionService) Ping(ctx context.Context) error {
	base, _ := subnet.ParseAddress("192.0.2.0")
	res, err := subnet.Partition(ctx, subnet.Request{
		Base:             base,
		BasePrefixLength: 24,
		MinUsableHosts:   14,
		Workers:          s.opts.DefaultWorkers,
	})
	if err != nil {
		return err
	}
	return res.Verify()
}

func validateIPInBlock(block netip.Prefix, ip netip.Addr) error {
	if !netipx.RangeOfPrefix(block).Contains(ip) {
		return fmt.Errorf("ip %s not in %s", ip, block)
	}
	return nil
}
