package handler

import (
	"bytes"
	"sync"
)

// responseBuffers recycles the scratch buffers respondJSON encodes into.
// Account snapshots carry the full embedded game state, so start each buffer
// at 1KiB to keep common responses to a single allocation.
var responseBuffers = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 1024))
	},
}

func getBuffer() *bytes.Buffer {
	return responseBuffers.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	buf.Reset()
	responseBuffers.Put(buf)
}
