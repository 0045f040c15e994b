// Package errors provides structured error types for the runtime-kit library.
//
// Errors are categorized by Op (the operation that failed) and Kind (error
// category). The Error type includes the offending value and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(op, errors.KindInvalidArgument).
//		Value(capacity).
//		Detail("capacity %d is negative", capacity).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.OutOfRange(op, 10, 5)
//	err := errors.AllocationFailed(op, 1024, cause)
//
// All errors implement the standard error interface and support errors.Is/As.
// Kind predicates answer the common questions without unwrapping by hand:
//
//	if errors.IsOutOfMemory(err) {
//		// shrink the workload and retry
//	}
package errors
