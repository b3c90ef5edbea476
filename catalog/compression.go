package catalog

import (
	"bytes"
	"fmt"
	"io"
	"path"
	"strings"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/classmap/codec"
)

// Compression identifies the frame format around an encoded document.
type Compression uint8

const (
	// CompressionNone stores the document as is.
	CompressionNone Compression = iota
	// CompressionZSTD wraps the document in a zstd frame (".zst").
	CompressionZSTD
	// CompressionLZ4 wraps the document in an lz4 frame (".lz4").
	CompressionLZ4
)

func (c Compression) String() string {
	switch c {
	case CompressionZSTD:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	default:
		return "none"
	}
}

// Ext returns the file suffix for c, including the dot.
func (c Compression) Ext() string {
	switch c {
	case CompressionZSTD:
		return ".zst"
	case CompressionLZ4:
		return ".lz4"
	default:
		return ""
	}
}

// Format describes how a bundle is stored.
type Format struct {
	Codec       codec.Codec
	Compression Compression
}

// ParseName derives the format of a bundle from its name.
func ParseName(name string) (Format, error) {
	var f Format
	base := name
	switch strings.ToLower(path.Ext(base)) {
	case ".zst", ".zstd":
		f.Compression = CompressionZSTD
		base = strings.TrimSuffix(base, path.Ext(base))
	case ".lz4":
		f.Compression = CompressionLZ4
		base = strings.TrimSuffix(base, path.Ext(base))
	}

	c, ok := codec.ForPath(base)
	if !ok {
		return Format{}, fmt.Errorf("%w: %s", ErrUnknownFormat, name)
	}
	f.Codec = c
	return f, nil
}

// Name returns the bundle name for stem stored in f.
func (f Format) Name(stem string) string {
	return stem + "." + codec.Ext(f.Codec) + f.Compression.Ext()
}

var zstdDecoderPool sync.Pool

func getZstdDecoder() (*zstd.Decoder, error) {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder), nil
	}
	return zstd.NewReader(nil)
}

func putZstdDecoder(dec *zstd.Decoder) {
	zstdDecoderPool.Put(dec)
}

// decompress reads the whole document out of r.
func decompress(r io.Reader, c Compression) ([]byte, error) {
	switch c {
	case CompressionZSTD:
		dec, err := getZstdDecoder()
		if err != nil {
			return nil, err
		}
		defer putZstdDecoder(dec)
		if err := dec.Reset(r); err != nil {
			return nil, err
		}
		return io.ReadAll(dec)
	case CompressionLZ4:
		return io.ReadAll(lz4.NewReader(r))
	default:
		return io.ReadAll(r)
	}
}

// compress wraps data in the frame for c.
func compress(data []byte, c Compression) ([]byte, error) {
	var buf bytes.Buffer
	switch c {
	case CompressionZSTD:
		enc, err := zstd.NewWriter(&buf, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, err
		}
		if _, err := enc.Write(data); err != nil {
			_ = enc.Close()
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
	case CompressionLZ4:
		w := lz4.NewWriter(&buf)
		if _, err := w.Write(data); err != nil {
			_ = w.Close()
			return nil, err
		}
		if err := w.Close(); err != nil {
			return nil, err
		}
	default:
		return data, nil
	}
	return buf.Bytes(), nil
}
