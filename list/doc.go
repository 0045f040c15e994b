// Package list implements a dynamically growing sequence stored in a single
// allocator block.
//
// A List[T] keeps its elements contiguous and grows by relocating the whole
// block. Capacity never shrinks on its own; TrimToCount gives excess back.
// Growth starts at 8 slots and multiplies by 1.5 until the requirement fits,
// so repeated appends cost amortized constant time.
//
// # Views and Relocation
//
// Items returns a slice over the current storage. Any call that can relocate
// the block (Add, AddRange, InsertAt, InsertRange, EnsureCapacity,
// TrimToCount) invalidates views obtained earlier:
//
//	v := l.Items()
//	l.Add(42)        // may relocate
//	v = l.Items()    // re-obtain after mutating
//
// Reading or writing a stale view is a caller bug the library cannot detect.
// The input slices of AddRange and InsertRange must not alias the list's own
// storage for the same reason.
//
// # Element Types
//
// Storage is raw allocator memory invisible to the garbage collector, so T
// must not contain pointers of any form. Constructors reject pointer-bearing
// and zero-sized types.
//
// # Failure Behavior
//
// Every mutation reports failure as an error value. A failed call leaves the
// list exactly as it was: growth is resolved before any element moves, so a
// refused allocation cannot tear the contents.
package list
