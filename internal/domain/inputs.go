package domain

import (
	"fmt"
	"math"
	"net/netip"
	"strconv"
	"strings"

	"github.com/Flarenzy/subnetter/internal/subnet"
)

// MaxWorkers bounds the worker count a caller may request.
const MaxWorkers = 32

type PartitionInput struct {
	CIDR     string
	MinHosts int64
	Workers  int
}

type LocateInput struct {
	PartitionInput
	IP string
}

// ParseCIDR splits "<a>.<b>.<c>.<d>/<prefix>" into its address and prefix
// length. Host bits may be set; the partitioner aligns the base itself.
func ParseCIDR(raw string) (subnet.Address, subnet.PrefixLength, error) {
	addrPart, lenPart, ok := strings.Cut(strings.TrimSpace(raw), "/")
	if !ok || strings.Contains(lenPart, "/") {
		return 0, 0, fmt.Errorf("%w: expected <ip>/<cidr>, got %q", subnet.ErrMalformedAddress, raw)
	}

	address, err := subnet.ParseAddress(addrPart)
	if err != nil {
		return 0, 0, err
	}

	bits, err := strconv.ParseUint(lenPart, 10, 8)
	if err != nil || bits > 32 {
		return 0, 0, fmt.Errorf("%w: %q", subnet.ErrInvalidPrefixLength, lenPart)
	}

	return address, subnet.PrefixLength(bits), nil
}

// ParseMinHosts parses the textual minimum usable host count.
func ParseMinHosts(raw string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: min hosts is not a number", ErrInvalidInput)
	}
	return n, nil
}

// ParseWorkers parses the textual worker count.
func ParseWorkers(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: worker count is not a number", ErrInvalidInput)
	}
	return n, nil
}

// Validate turns raw input into an engine request. Every failure wraps
// ErrInvalidInput together with the underlying subnet error.
func (in PartitionInput) Validate() (subnet.Request, error) {
	address, bits, err := ParseCIDR(in.CIDR)
	if err != nil {
		return subnet.Request{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	if in.MinHosts < 0 {
		return subnet.Request{}, fmt.Errorf("%w: min hosts must not be negative", ErrInvalidInput)
	}
	if in.MinHosts > math.MaxUint32 {
		return subnet.Request{}, fmt.Errorf("%w: %w: %d", ErrInvalidInput, subnet.ErrHostRequirementExceedsCapacity, in.MinHosts)
	}
	minHosts := uint32(in.MinHosts)
	if err := subnet.CheckCapacity(bits, minHosts); err != nil {
		return subnet.Request{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	if in.Workers < 1 || in.Workers > MaxWorkers {
		return subnet.Request{}, fmt.Errorf("%w: %w: %d not in [1, %d]", ErrInvalidInput, subnet.ErrInvalidWorkerCount, in.Workers, MaxWorkers)
	}

	return subnet.Request{
		Base:             address,
		BasePrefixLength: bits,
		MinUsableHosts:   minHosts,
		Workers:          in.Workers,
	}, nil
}

func parseIP(raw string) (netip.Addr, error) {
	ip, err := netip.ParseAddr(strings.TrimSpace(raw))
	if err != nil || !ip.Unmap().Is4() {
		return netip.Addr{}, fmt.Errorf("%w: %w: invalid ip %q", ErrInvalidInput, subnet.ErrMalformedAddress, raw)
	}
	return ip.Unmap(), nil
}
