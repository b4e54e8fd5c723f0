//go:build cgo

package compress

import "github.com/valyala/gozstd"

// Compress compresses the payload using the cgo Zstandard binding at the
// default level.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.CompressLevel(nil, data, 3), nil
}

// Decompress restores a Zstandard frame using the cgo binding.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}
