package compress

// ZstdCompressor favors compression ratio, suited to archived document
// exports and cold snapshot storage.
//
// The implementation is selected at build time: a cgo binding when cgo is
// available, a pure-Go implementation otherwise. Both produce standard
// Zstandard frames and interoperate freely.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstandard codec with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
