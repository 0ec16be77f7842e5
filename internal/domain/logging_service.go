package domain

import (
	"context"
	"log/slog"
)

type loggingPartitionService struct {
	logger *slog.Logger
	next   PartitionService
}

func NewLoggingPartitionService(logger *slog.Logger, next PartitionService) PartitionService {
	if logger == nil || next == nil {
		return next
	}

	return &loggingPartitionService{
		logger: logger,
		next:   next,
	}
}

func (s *loggingPartitionService) Partition(ctx context.Context, input PartitionInput) (Partition, error) {
	p, err := s.next.Partition(ctx, input)
	if err != nil {
		s.logger.ErrorContext(ctx, "partition failed", "cidr", input.CIDR, "min_hosts", input.MinHosts, "err", err.Error())
		return Partition{}, err
	}

	s.logger.InfoContext(ctx, "partition computed",
		"id", string(p.ID),
		"cidr", input.CIDR,
		"prefix_length", int(p.Result.PrefixLength),
		"subnets", len(p.Result.Subnets),
		"workers", p.Request.Workers,
		"elapsed", p.Elapsed,
	)
	return p, nil
}

func (s *loggingPartitionService) Locate(ctx context.Context, input LocateInput) (Location, error) {
	loc, err := s.next.Locate(ctx, input)
	if err != nil {
		s.logger.ErrorContext(ctx, "locate failed", "cidr", input.CIDR, "ip", input.IP, "err", err.Error())
		return Location{}, err
	}

	s.logger.DebugContext(ctx, "ip located", "ip", input.IP, "subnet", loc.Subnet.String(), "usable", loc.Usable)
	return loc, nil
}

func (s *loggingPartitionService) Ping(ctx context.Context) error {
	err := s.next.Ping(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "self check failed", "err", err.Error())
	}
	return err
}
