package subnet

import "errors"

var (
	ErrMalformedAddress               = errors.New("malformed address")
	ErrInvalidPrefixLength            = errors.New("invalid prefix length")
	ErrHostRequirementExceedsCapacity = errors.New("host requirement exceeds capacity")
	ErrNoFeasiblePrefix               = errors.New("no feasible prefix length")
	ErrInvalidWorkerCount             = errors.New("invalid worker count")
	ErrWorkerPanic                    = errors.New("worker panic")
	ErrAggregateFailure               = errors.New("partition failed")
	ErrOverlappingSubnets             = errors.New("overlapping subnets")
)
