package runtimekit

// Allocator provides raw backing storage for the growable containers in this
// module. Blocks are plain byte slices; implementations decide where the bytes
// live and how reallocation moves them.
//
// Implementations must return blocks whose first byte is aligned to MaxAlign
// so a block can back values of any Go scalar type.
type Allocator interface {
	// Alloc returns a zeroed block of exactly size bytes.
	// A negative size is an invalid argument; size zero returns an empty block.
	Alloc(size int64) ([]byte, error)

	// Realloc resizes block to exactly size bytes, preserving the first
	// min(len(block), size) bytes. The returned block may alias the original
	// or be a fresh allocation. On error the original block is untouched and
	// still owned by the caller. A nil block behaves like Alloc.
	Realloc(block []byte, size int64) ([]byte, error)

	// Free returns a block to the allocator. Freeing nil is a no-op.
	// The block must not be used afterwards.
	Free(block []byte)
}

// MaxAlign is the strictest alignment an Allocator block must satisfy,
// covering every Go scalar type.
const MaxAlign = 8
