// Package codec renders subnet descriptors for output files and HTTP
// responses. JSON is the canonical form; CBOR and YAML carry the same
// fields under the same names.
package codec

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"

	"github.com/Flarenzy/subnetter/internal/subnet"
)

type Format string

const (
	JSON Format = "json"
	CBOR Format = "cbor"
	YAML Format = "yaml"
)

// Subnet is the canonical serialized form of a descriptor.
type Subnet struct {
	Network     string `json:"network" cbor:"network" yaml:"network" example:"10.0.0.0"`
	First       string `json:"first" cbor:"first" yaml:"first" example:"10.0.0.1"`
	Last        string `json:"last" cbor:"last" yaml:"last" example:"10.0.0.62"`
	Broadcast   string `json:"broadcast" cbor:"broadcast" yaml:"broadcast" example:"10.0.0.63"`
	UsableHosts uint32 `json:"nbUsableIp" cbor:"nbUsableIp" yaml:"nbUsableIp" example:"62"`
}

var encMode cbor.EncMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("codec: cbor encoder initialization failed: " + err.Error())
	}
}

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case JSON, CBOR, YAML:
		return f, nil
	case "":
		return JSON, nil
	case "yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("unknown format %q", s)
	}
}

func (f Format) ContentType() string {
	switch f {
	case CBOR:
		return "application/cbor"
	case YAML:
		return "application/yaml"
	default:
		return "application/json"
	}
}

// FromContentType maps an Accept header value to a format, falling back to
// JSON.
func FromContentType(accept string) Format {
	for _, part := range strings.Split(accept, ",") {
		mediaType, _, _ := strings.Cut(strings.TrimSpace(part), ";")
		switch strings.ToLower(mediaType) {
		case "application/cbor":
			return CBOR
		case "application/yaml", "application/x-yaml", "text/yaml":
			return YAML
		case "application/json":
			return JSON
		}
	}
	return JSON
}

func FromDescriptor(d subnet.Descriptor) Subnet {
	return Subnet{
		Network:     d.Network.String(),
		First:       d.First.String(),
		Last:        d.Last.String(),
		Broadcast:   d.Broadcast.String(),
		UsableHosts: d.UsableHosts,
	}
}

func FromDescriptors(descriptors []subnet.Descriptor) []Subnet {
	out := make([]Subnet, 0, len(descriptors))
	for _, d := range descriptors {
		out = append(out, FromDescriptor(d))
	}
	return out
}

// WriteSubnets streams descriptors as a single array in format f.
func WriteSubnets(w io.Writer, f Format, descriptors []subnet.Descriptor) error {
	if f == JSON {
		return writeJSONArray(w, descriptors)
	}
	return Encode(w, f, FromDescriptors(descriptors))
}

// Encode writes any value in format f.
func Encode(w io.Writer, f Format, v any) error {
	switch f {
	case JSON:
		return json.NewEncoder(w).Encode(v)
	case CBOR:
		return encMode.NewEncoder(w).Encode(v)
	case YAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q", f)
	}
}

// Decode reads a value written by Encode.
func Decode(r io.Reader, f Format, v any) error {
	switch f {
	case JSON:
		return json.NewDecoder(r).Decode(v)
	case CBOR:
		return cbor.NewDecoder(r).Decode(v)
	case YAML:
		return yaml.NewDecoder(r).Decode(v)
	default:
		return fmt.Errorf("unknown format %q", f)
	}
}

// writeJSONArray streams one tab-indented object per descriptor instead of
// marshalling the whole slice at once.
func writeJSONArray(w io.Writer, descriptors []subnet.Descriptor) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString("["); err != nil {
		return err
	}
	for i, d := range descriptors {
		if i > 0 {
			if _, err := bw.WriteString(","); err != nil {
				return err
			}
		}
		b, err := json.MarshalIndent(FromDescriptor(d), "", "\t")
		if err != nil {
			return err
		}
		if _, err := bw.Write(b); err != nil {
			return err
		}
	}
	if _, err := bw.WriteString("]\n"); err != nil {
		return err
	}
	return bw.Flush()
}
