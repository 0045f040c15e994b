// Package runtimekit provides low-level runtime support primitives: a generic
// growable list over substitutable allocators, a growable text buffer with
// line reading, a xoshiro256** pseudo-random number generator, and a CPU plus
// wall-clock stopwatch.
//
// Every container reports failure as an error value rather than panicking or
// aborting, so callers can recover from refused allocations and invalid
// arguments. Failed operations leave the container exactly as it was before
// the call.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	runtimekit/          Root package with the core Allocator interface
//	├── alloc/           Allocator implementations: heap, budget limit, counting, tracing
//	├── list/            Generic growable list backed by a substitutable allocator
//	├── buffer/          Growable text buffer with line reading and formatted writes
//	├── random/          xoshiro256** pseudo-random number generator
//	├── timer/           Accumulating CPU and wall-clock stopwatch
//	├── bench/           Scenario-driven workload runner for the containers
//	└── errors/          Structured error types for debugging
//
// # Quick Start
//
// Build a list, fill it, and read it back:
//
//	nums, err := list.New[int64](nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer nums.Free()
//
//	for i := int64(0); i < 100; i++ {
//	    if err := nums.Add(i * i); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
//	for _, n := range nums.Items() {
//	    fmt.Println(n)
//	}
//
// # Allocators
//
// A nil allocator means the process heap. Substituting an allocator changes
// where the bytes live without changing container behavior:
//
//	budget := alloc.NewLimit(nil, 1<<20)
//	nums, err := list.New[int64](budget)
//
// When the budget is exhausted, mutations return an out-of-memory error and
// the list keeps its pre-call contents.
//
// # Views and Relocation
//
// List.Items and Buffer.Bytes return views into the container's current
// storage. Any operation that can relocate storage (Add, InsertAt,
// EnsureCapacity, TrimToCount, ...) invalidates previously obtained views;
// re-obtain the view after mutating. Holding a view across a mutation is a
// caller bug, not a detectable error.
//
// # Element Types
//
// List storage is raw allocator memory that the garbage collector does not
// scan, so element types must not contain pointers (no pointers, maps,
// slices, strings, channels, functions, or interfaces). Constructors reject
// such types with an unsupported error.
//
// # Thread Safety
//
// Individual instances are NOT thread-safe. Confine each List, Buffer,
// Random, and Timer to a single goroutine, or synchronize access externally.
// Distinct instances are independent and may be used concurrently.
package runtimekit
