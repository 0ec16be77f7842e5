package http

import (
	"github.com/Flarenzy/subnetter/internal/codec"
	"github.com/Flarenzy/subnetter/internal/domain"
)

// CreatePartitionRequest is the payload accepted when computing a partition.
type CreatePartitionRequest struct {
	CIDR     string `json:"cidr" example:"10.0.0.0/24"`
	MinHosts int64  `json:"min_hosts" example:"60"`
	Workers  int    `json:"workers,omitempty" example:"4"`
}

// PartitionResponse lists every subnet of the computed partition in address
// order.
type PartitionResponse struct {
	ID           string         `json:"id" yaml:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	CIDR         string         `json:"cidr" yaml:"cidr" example:"10.0.0.0/24"`
	PrefixLength int            `json:"prefix_length" yaml:"prefix_length" example:"26"`
	SubnetCount  int            `json:"subnet_count" yaml:"subnet_count" example:"4"`
	Workers      int            `json:"workers" yaml:"workers" example:"4"`
	ElapsedMS    float64        `json:"elapsed_ms" yaml:"elapsed_ms" example:"0.12"`
	Subnets      []codec.Subnet `json:"subnets" yaml:"subnets"`
}

// LocateRequest asks which subnet of a partition holds IP.
type LocateRequest struct {
	CIDR     string `json:"cidr" example:"10.0.0.0/24"`
	MinHosts int64  `json:"min_hosts" example:"60"`
	IP       string `json:"ip" example:"10.0.0.77"`
}

// LocateResponse describes the subnet holding the requested address.
type LocateResponse struct {
	IP           string       `json:"ip" yaml:"ip" example:"10.0.0.77"`
	PrefixLength int          `json:"prefix_length" yaml:"prefix_length" example:"26"`
	Index        uint64       `json:"index" yaml:"index" example:"1"`
	Usable       bool         `json:"usable" yaml:"usable" example:"true"`
	Subnet       codec.Subnet `json:"subnet" yaml:"subnet"`
}

// ErrorResponse is a simple envelope for error messages.
type ErrorResponse struct {
	Error string `json:"error" yaml:"error" example:"invalid input"`
}

func (r CreatePartitionRequest) toInput() domain.PartitionInput {
	return domain.PartitionInput{
		CIDR:     r.CIDR,
		MinHosts: r.MinHosts,
		Workers:  r.Workers,
	}
}

func (r LocateRequest) toInput() domain.LocateInput {
	return domain.LocateInput{
		PartitionInput: domain.PartitionInput{CIDR: r.CIDR, MinHosts: r.MinHosts},
		IP:             r.IP,
	}
}

func partitionToResponse(p domain.Partition) PartitionResponse {
	res := p.Result
	return PartitionResponse{
		ID:           string(p.ID),
		CIDR:         res.Block().String(),
		PrefixLength: int(res.PrefixLength),
		SubnetCount:  len(res.Subnets),
		Workers:      p.Request.Workers,
		ElapsedMS:    float64(p.Elapsed.Microseconds()) / 1000,
		Subnets:      codec.FromDescriptors(res.Subnets),
	}
}

func locationToResponse(ip string, loc domain.Location) LocateResponse {
	return LocateResponse{
		IP:           ip,
		PrefixLength: int(loc.PrefixLength),
		Index:        loc.Index,
		Usable:       loc.Usable,
		Subnet:       codec.FromDescriptor(loc.Subnet),
	}
}
