// Package bytearena is a simple append-only chunked byte store. It is the
// write-once counterpart to pkg/quadtree's free lists: there is no erase, so
// a BytePointer is valid for the arena's whole lifetime.
package bytearena

import "fmt"

// BytePointer addresses a byte slice previously written to an Arena. The
// zero value is never returned by Arena.Put, so IsNil distinguishes an
// uninitialised pointer from a real one.
type BytePointer struct {
	chunk  int32
	offset int32
	size   int32
}

// IsNil reports whether p is the zero value, i.e. was never assigned by Put.
func (p BytePointer) IsNil() bool {
	return p.chunk == 0 && p.offset == 0
}

// Arena holds a sequence of fixed-size chunks and bump-allocates byte slices
// out of the current one, moving to a new chunk whenever a Put would
// overflow it. Values are never relocated once written, so a BytePointer
// returned by Put stays valid for the Arena's entire lifetime.
type Arena struct {
	chunkSize int32

	offset int32
	chunks [][]byte
}

// New constructs an Arena whose chunks are each chunkSize bytes. No single
// value passed to Put may exceed chunkSize.
func New(chunkSize int32) *Arena {
	return &Arena{
		chunkSize: chunkSize,
		chunks:    [][]byte{make([]byte, chunkSize)},
	}
}

// Put copies data into the arena's current chunk, starting a new chunk first
// if it doesn't fit in what remains of the current one. It returns a
// BytePointer for later retrieval via Get.
func (a *Arena) Put(data []byte) (BytePointer, error) {
	size := int32(len(data))
	if size > a.chunkSize {
		return BytePointer{}, fmt.Errorf("bytearena: value of size %d exceeds chunk size %d", size, a.chunkSize)
	}

	if a.offset+size > a.chunkSize {
		a.offset = 0
		a.chunks = append(a.chunks, make([]byte, a.chunkSize))
	}

	chunk := a.chunks[len(a.chunks)-1]
	copy(chunk[a.offset:], data)

	ptr := BytePointer{
		chunk:  int32(len(a.chunks)),
		offset: a.offset + 1,
		size:   size,
	}
	a.offset += size

	return ptr, nil
}

// Get resolves ptr back to the bytes passed to Put. A malformed or
// out-of-range ptr panics rather than returning corrupted data - callers
// only ever construct ptr values via Put.
func (a *Arena) Get(ptr BytePointer) []byte {
	chunk := a.chunks[ptr.chunk-1]
	start := ptr.offset - 1
	return chunk[start : start+ptr.size]
}

// ChunkCount reports how many chunks the arena has allocated, for
// diagnostics.
func (a *Arena) ChunkCount() int {
	return len(a.chunks)
}
