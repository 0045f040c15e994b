package buffer

import (
	"testing"

	"github.com/wippyai/runtime-kit/alloc"
)

func TestPool_GetEmpty(t *testing.T) {
	p := NewPool(nil, 0)

	b := p.Get()
	if got := b.Len(); got != 0 {
		t.Errorf("Len() = %d for pooled buffer, want 0", got)
	}
	p.Put(b)

	b = p.Get()
	if got := b.Len(); got != 0 {
		t.Errorf("Len() = %d after Put/Get cycle, want 0", got)
	}
	p.Put(b)
}

func TestPool_PutResets(t *testing.T) {
	p := NewPool(nil, DefaultMaxPooled)

	b := p.Get()
	if _, err := b.WriteString("leftover"); err != nil {
		t.Fatalf("WriteString() error: %v", err)
	}
	p.Put(b)

	// Whether or not the same buffer comes back, it must be empty.
	b = p.Get()
	if got := b.Len(); got != 0 {
		t.Errorf("Len() = %d for reused buffer, want 0", got)
	}
	p.Put(b)
}

func TestPool_RejectsOversized(t *testing.T) {
	counting := alloc.NewCounting(nil)
	p := NewPool(counting, 64)

	b := p.Get()
	if err := b.Printf("%0200d", 1); err != nil {
		t.Fatalf("Printf() error: %v", err)
	}
	if b.Capacity() <= 64 {
		t.Fatalf("Capacity() = %d, test needs > 64", b.Capacity())
	}

	p.Put(b)

	if got := counting.Stats().InUse; got != 0 {
		t.Errorf("InUse = %d after oversized Put, want 0 (buffer freed)", got)
	}
}

func TestPool_IgnoresFreedAndNil(t *testing.T) {
	p := NewPool(nil, 0)

	b := p.Get()
	b.Free()
	p.Put(b) // freed buffer is dropped

	p.Put(nil) // no-op

	fresh := p.Get()
	if got := fresh.Len(); got != 0 {
		t.Errorf("Len() = %d, want 0", got)
	}
	p.Put(fresh)
}
