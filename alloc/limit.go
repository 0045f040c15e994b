package alloc

import (
	runtimekit "github.com/wippyai/runtime-kit"
	"github.com/wippyai/runtime-kit/errors"
)

// Limit wraps another allocator and refuses requests that would push the
// total bytes in use past a fixed budget. It gives callers a deterministic
// out-of-memory path: the Go runtime cannot report genuine heap exhaustion
// as an error, but a Limit can refuse long before that point.
type Limit struct {
	inner runtimekit.Allocator
	max   int64
	used  int64
	peak  int64
}

// NewLimit returns a budgeted allocator over inner. A nil inner means the
// process heap. max is the budget in bytes.
func NewLimit(inner runtimekit.Allocator, max int64) *Limit {
	if inner == nil {
		inner = Heap{}
	}
	return &Limit{inner: inner, max: max}
}

func (l *Limit) Alloc(size int64) ([]byte, error) {
	if size > 0 && l.used > l.max-size {
		return nil, l.refuse(opAlloc, size)
	}
	block, err := l.inner.Alloc(size)
	if err != nil {
		return nil, err
	}
	l.account(int64(len(block)))
	return block, nil
}

func (l *Limit) Realloc(block []byte, size int64) ([]byte, error) {
	delta := size - int64(len(block))
	if delta > 0 && l.used > l.max-delta {
		return nil, l.refuse(opRealloc, size)
	}
	fresh, err := l.inner.Realloc(block, size)
	if err != nil {
		return nil, err
	}
	l.account(int64(len(fresh)) - int64(len(block)))
	return fresh, nil
}

func (l *Limit) Free(block []byte) {
	l.used -= int64(len(block))
	l.inner.Free(block)
}

// InUse returns the bytes currently allocated through this Limit.
func (l *Limit) InUse() int64 { return l.used }

// Peak returns the highest value InUse has reached.
func (l *Limit) Peak() int64 { return l.peak }

// Max returns the budget in bytes.
func (l *Limit) Max() int64 { return l.max }

func (l *Limit) account(delta int64) {
	l.used += delta
	if l.used > l.peak {
		l.peak = l.used
	}
}

func (l *Limit) refuse(op errors.Op, size int64) *errors.Error {
	return errors.New(op, errors.KindOutOfMemory).
		Value(size).
		Detail("request for %d bytes exceeds budget (%d of %d bytes in use)", size, l.used, l.max).
		Build()
}
