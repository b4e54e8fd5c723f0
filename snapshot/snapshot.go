// Package snapshot serializes wire documents into self-describing binary
// envelopes for local caching and export.
//
// An envelope is a CBOR structure carrying a format version, the compression
// type, an xxHash64 checksum of the stored payload, and the payload itself:
// the document's wire JSON, optionally compressed. Read verifies the
// checksum before decompressing, so corruption is detected ahead of any
// payload parsing.
//
// Snapshots are a local persistence format. They are not the remote store's
// transport; the JSON inside an envelope is, however, the exact wire JSON.
package snapshot

import (
	"encoding/json"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/fxamacker/cbor/v2"

	"github.com/dynattr/dynattr/compress"
	"github.com/dynattr/dynattr/errs"
	"github.com/dynattr/dynattr/internal/pool"
	"github.com/dynattr/dynattr/wire"
)

// Version is the envelope format version written by this package.
const Version = 1

// envelope is the on-disk structure. Integer keys keep the CBOR framing
// small relative to the payload.
type envelope struct {
	Version     uint8  `cbor:"1,keyasint"`
	Compression uint8  `cbor:"2,keyasint"`
	Checksum    uint64 `cbor:"3,keyasint"`
	Payload     []byte `cbor:"4,keyasint"`
}

// Write serializes a document into an envelope using the given compression
// type. The resulting bytes round-trip through Read.
func Write(doc wire.Document, compression compress.Type) ([]byte, error) {
	if !compression.Valid() {
		return nil, fmt.Errorf("%w: compression type %d", errs.ErrInvalidEnvelope, uint8(compression))
	}

	codec, err := compress.CreateCodec(compression)
	if err != nil {
		return nil, err
	}

	buf := pool.GetPayloadBuffer()
	defer pool.PutPayloadBuffer(buf)

	if err := json.NewEncoder(buf).Encode(doc); err != nil {
		return nil, err
	}

	payload, err := codec.Compress(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("snapshot compression failed: %w", err)
	}

	env := envelope{
		Version:     Version,
		Compression: uint8(compression),
		Checksum:    xxhash.Sum64(payload),
		Payload:     payload,
	}

	// cbor.Marshal copies the payload, so the pooled buffer (which the
	// no-op codec aliases) can be released afterwards.
	return cbor.Marshal(env)
}

// Read parses an envelope, verifies its checksum and restores the document.
func Read(data []byte) (wire.Document, error) {
	var env envelope
	if err := cbor.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidEnvelope, err)
	}

	if env.Version != Version {
		return nil, fmt.Errorf("%w: unsupported version %d", errs.ErrInvalidEnvelope, env.Version)
	}

	compression := compress.Type(env.Compression)
	if !compression.Valid() {
		return nil, fmt.Errorf("%w: compression type %d", errs.ErrInvalidEnvelope, env.Compression)
	}

	if xxhash.Sum64(env.Payload) != env.Checksum {
		return nil, errs.ErrChecksumMismatch
	}

	codec, err := compress.CreateCodec(compression)
	if err != nil {
		return nil, err
	}

	raw, err := codec.Decompress(env.Payload)
	if err != nil {
		return nil, fmt.Errorf("snapshot decompression failed: %w", err)
	}

	var doc wire.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}

	return doc, nil
}
