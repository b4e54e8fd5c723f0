// Package pool provides pooled byte buffers for payload assembly.
package pool

import (
	"bytes"
	"sync"
)

const (
	// payloadBufferDefaultSize is the initial capacity of a pooled buffer,
	// sized for a typical single-record document.
	payloadBufferDefaultSize = 4 * 1024

	// payloadBufferMaxRetain caps the capacity of buffers returned to the
	// pool. Oversized buffers from occasional large documents are dropped
	// instead of pinning memory.
	payloadBufferMaxRetain = 1024 * 1024
)

var payloadBufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, payloadBufferDefaultSize))
	},
}

// GetPayloadBuffer returns an empty buffer from the pool.
func GetPayloadBuffer() *bytes.Buffer {
	buf, _ := payloadBufferPool.Get().(*bytes.Buffer)
	buf.Reset()

	return buf
}

// PutPayloadBuffer returns a buffer to the pool. Buffers grown beyond the
// retain threshold are discarded.
func PutPayloadBuffer(buf *bytes.Buffer) {
	if buf == nil || buf.Cap() > payloadBufferMaxRetain {
		return
	}

	payloadBufferPool.Put(buf)
}
