package domain

import (
	"time"

	"github.com/Flarenzy/subnetter/internal/subnet"
)

type PartitionID string

type Partition struct {
	ID      PartitionID
	Request subnet.Request
	Result  subnet.Result
	Elapsed time.Duration
}

type Location struct {
	Request      subnet.Request
	PrefixLength subnet.PrefixLength
	Subnet       subnet.Descriptor
	Index        uint64
	Usable       bool
}
