// Package compress provides the compression codecs used by snapshot
// envelopes. Compression is applied to the serialized document payload as a
// whole, after wire encoding.
package compress

import "fmt"

// Type identifies a compression algorithm in a snapshot envelope.
type Type uint8

const (
	TypeNone Type = 0x1 // TypeNone stores the payload uncompressed.
	TypeZstd Type = 0x2 // TypeZstd uses Zstandard compression.
	TypeS2   Type = 0x3 // TypeS2 uses S2 (Snappy-compatible) compression.
	TypeLZ4  Type = 0x4 // TypeLZ4 uses LZ4 block compression.
)

func (t Type) String() string {
	switch t {
	case TypeNone:
		return "None"
	case TypeZstd:
		return "Zstd"
	case TypeS2:
		return "S2"
	case TypeLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Valid reports whether t is a known compression type.
func (t Type) Valid() bool {
	switch t {
	case TypeNone, TypeZstd, TypeS2, TypeLZ4:
		return true
	default:
		return false
	}
}

// Compressor compresses a complete payload.
//
// Implementations return a newly allocated slice (or the input itself for
// the no-op codec), never modify the input, and may reuse internal buffers
// between calls.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload previously produced by the matching
// Compressor. Corrupted or mismatched input yields an error.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions. All implementations in this package are
// stateless values, safe for concurrent use.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec returns the codec for the given compression type.
func CreateCodec(t Type) (Codec, error) {
	switch t {
	case TypeNone:
		return NewNoOpCompressor(), nil
	case TypeZstd:
		return NewZstdCompressor(), nil
	case TypeS2:
		return NewS2Compressor(), nil
	case TypeLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("invalid compression type: %d", uint8(t))
	}
}
