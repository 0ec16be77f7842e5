package domain

import "context"

type PartitionService interface {
	Partition(ctx context.Context, input PartitionInput) (Partition, error)
	Locate(ctx context.Context, input LocateInput) (Location, error)
	Ping(ctx context.Context) error
}
