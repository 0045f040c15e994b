// Package alloc provides Allocator implementations for the container
// packages.
//
// Heap is the default: blocks live on the Go heap and Free simply drops the
// reference. The remaining allocators wrap another allocator and add one
// concern each:
//
//	Limit     refuses allocations past a byte budget
//	Counting  tracks allocation statistics
//	Tracing   logs every call through a zap logger
//
// Wrappers compose. A traced, budgeted heap:
//
//	a := alloc.NewTracing(alloc.NewLimit(nil, 1<<20), logger)
//
// All allocators return blocks aligned to runtimekit.MaxAlign. Blocks are
// backed by memory the garbage collector does not scan for pointers, which is
// why containers restrict their element types to pointer-free layouts.
package alloc
