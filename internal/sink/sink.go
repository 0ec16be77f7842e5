// Package sink owns the output file a partition is written to.
package sink

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

type Compression string

const (
	CompressionNone Compression = "none"
	CompressionGzip Compression = "gzip"
	CompressionZstd Compression = "zstd"
	CompressionLZ4  Compression = "lz4"
)

func ParseCompression(s string) (Compression, error) {
	switch c := Compression(strings.ToLower(strings.TrimSpace(s))); c {
	case "", CompressionNone:
		return CompressionNone, nil
	case CompressionGzip, CompressionZstd, CompressionLZ4:
		return c, nil
	default:
		return "", fmt.Errorf("unknown compression %q", s)
	}
}

// Extension is the conventional file suffix for c, empty for none.
func (c Compression) Extension() string {
	switch c {
	case CompressionGzip:
		return ".gz"
	case CompressionZstd:
		return ".zst"
	case CompressionLZ4:
		return ".lz4"
	default:
		return ""
	}
}

// File is a truncated output file, optionally wrapped by a compressor.
// Close flushes the compressor before closing the file.
type File struct {
	f   *os.File
	enc io.WriteCloser
	w   io.Writer
}

// Create truncates or creates path and wraps it with compression c.
func Create(path string, c Compression) (*File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open output %s: %w", path, err)
	}

	enc, err := Wrap(f, c)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	out := &File{f: f, enc: enc, w: f}
	if enc != nil {
		out.w = enc
	}
	return out, nil
}

// Wrap returns a compressing writer over w, or nil for CompressionNone.
func Wrap(w io.Writer, c Compression) (io.WriteCloser, error) {
	switch c {
	case CompressionNone, "":
		return nil, nil
	case CompressionGzip:
		return gzip.NewWriter(w), nil
	case CompressionZstd:
		enc, err := zstd.NewWriter(w)
		if err != nil {
			return nil, fmt.Errorf("zstd writer: %w", err)
		}
		return enc, nil
	case CompressionLZ4:
		return lz4.NewWriter(w), nil
	default:
		return nil, fmt.Errorf("unknown compression %q", c)
	}
}

func (f *File) Write(p []byte) (int, error) {
	return f.w.Write(p)
}

func (f *File) Name() string {
	return f.f.Name()
}

func (f *File) Close() error {
	var errs []error
	if f.enc != nil {
		if err := f.enc.Close(); err != nil {
			errs = append(errs, fmt.Errorf("flush compressor: %w", err))
		}
	}
	if err := f.f.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Open reads back a file written with compression c.
func Open(path string, c Compression) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var r io.Reader
	switch c {
	case CompressionNone, "":
		return f, nil
	case CompressionGzip:
		zr, err := gzip.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, err
		}
		r = zr
	case CompressionZstd:
		zr, err := zstd.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, err
		}
		return readCloser{Reader: zr, close: func() error { zr.Close(); return f.Close() }}, nil
	case CompressionLZ4:
		r = lz4.NewReader(f)
	default:
		_ = f.Close()
		return nil, fmt.Errorf("unknown compression %q", c)
	}
	return readCloser{Reader: r, close: f.Close}, nil
}

type readCloser struct {
	io.Reader
	close func() error
}

func (r readCloser) Close() error {
	return r.close()
}
