package list

import (
	"fmt"
	"math"
	"reflect"
	"unsafe"

	runtimekit "github.com/wippyai/runtime-kit"
	"github.com/wippyai/runtime-kit/alloc"
	"github.com/wippyai/runtime-kit/errors"
	"github.com/wippyai/runtime-kit/list/internal/layout"
)

// DefaultCapacity is the capacity of a list created by New and the smallest
// capacity growth will produce.
const DefaultCapacity = 8

const (
	opNew            = errors.Op("list.new")
	opAdd            = errors.Op("list.add")
	opAddRange       = errors.Op("list.add_range")
	opInsertAt       = errors.Op("list.insert_at")
	opInsertRange    = errors.Op("list.insert_range")
	opRemoveAt       = errors.Op("list.remove_at")
	opRemoveRange    = errors.Op("list.remove_range")
	opEnsureCapacity = errors.Op("list.ensure_capacity")
	opTrimToCount    = errors.Op("list.trim_to_count")
	opAt             = errors.Op("list.at")
	opSet            = errors.Op("list.set")
)

// List is a growable sequence of T in one contiguous allocator block.
// Create instances with New or WithCapacity; the zero value is not usable.
// A List is not safe for concurrent use.
type List[T any] struct {
	alloc    runtimekit.Allocator
	block    []byte // raw backing allocation
	items    []T    // typed view over block, len == capacity
	count    int64
	itemSize int64
	freed    bool
}

// New returns an empty list with DefaultCapacity slots.
// A nil allocator means the process heap.
func New[T any](a runtimekit.Allocator) (*List[T], error) {
	return WithCapacity[T](a, DefaultCapacity)
}

// WithCapacity returns an empty list with exactly capacity slots
// preallocated. A nil allocator means the process heap.
func WithCapacity[T any](a runtimekit.Allocator, capacity int64) (*List[T], error) {
	elem := reflect.TypeOf((*T)(nil)).Elem()
	itemSize := int64(elem.Size())
	if itemSize <= 0 {
		return nil, errors.InvalidArgument(opNew, elem.String(), "zero-sized element type")
	}
	if layout.HasPointers(elem) {
		return nil, errors.Unsupported(opNew,
			fmt.Sprintf("element type %s contains pointers", elem))
	}
	if capacity < 0 {
		return nil, errors.NegativeValue(opNew, "capacity", capacity)
	}
	if a == nil {
		a = alloc.Default()
	}
	l := &List[T]{alloc: a, itemSize: itemSize}
	if err := l.relocate(opNew, capacity); err != nil {
		return nil, err
	}
	return l, nil
}

// Count returns the number of elements in the list.
func (l *List[T]) Count() int64 {
	l.mustLive()
	return l.count
}

// Capacity returns the number of elements the list can hold before growing.
func (l *List[T]) Capacity() int64 {
	l.mustLive()
	return l.capacity()
}

// ItemSize returns the size of one element in bytes.
func (l *List[T]) ItemSize() int64 {
	l.mustLive()
	return l.itemSize
}

// IsEmpty reports whether the list has no elements.
func (l *List[T]) IsEmpty() bool {
	l.mustLive()
	return l.count == 0
}

// Items returns a view of the elements. The view is valid until the next
// call that can relocate storage; see the package documentation.
func (l *List[T]) Items() []T {
	l.mustLive()
	return l.items[:l.count:l.count]
}

// At returns the element at index.
func (l *List[T]) At(index int64) (T, error) {
	l.mustLive()
	if index < 0 || index >= l.count {
		var zero T
		return zero, errors.OutOfRange(opAt, index, l.count)
	}
	return l.items[index], nil
}

// Set replaces the element at index.
func (l *List[T]) Set(index int64, item T) error {
	l.mustLive()
	if index < 0 || index >= l.count {
		return errors.OutOfRange(opSet, index, l.count)
	}
	l.items[index] = item
	return nil
}

// Add appends item to the end of the list.
func (l *List[T]) Add(item T) error {
	l.mustLive()
	if err := l.ensure(opAdd, l.count+1); err != nil {
		return err
	}
	l.items[l.count] = item
	l.count++
	return nil
}

// AddRange appends all items to the end of the list. Growth happens at most
// once, so either every item is appended or none is.
func (l *List[T]) AddRange(items []T) error {
	l.mustLive()
	if len(items) == 0 {
		return nil
	}
	required, ok := layout.SafeAdd64(l.count, int64(len(items)))
	if !ok {
		return errors.SizeOverflow(opAddRange, l.count, l.itemSize)
	}
	if err := l.ensure(opAddRange, required); err != nil {
		return err
	}
	copy(l.items[l.count:required], items)
	l.count = required
	return nil
}

// InsertAt inserts item at index, shifting later elements right.
// index may equal Count, which appends.
func (l *List[T]) InsertAt(index int64, item T) error {
	l.mustLive()
	if index < 0 || index > l.count {
		return errors.OutOfRange(opInsertAt, index, l.count)
	}
	if err := l.ensure(opInsertAt, l.count+1); err != nil {
		return err
	}
	copy(l.items[index+1:l.count+1], l.items[index:l.count])
	l.items[index] = item
	l.count++
	return nil
}

// InsertRange inserts all items at index, shifting later elements right.
// The index is validated even when items is empty.
func (l *List[T]) InsertRange(index int64, items []T) error {
	l.mustLive()
	if index < 0 || index > l.count {
		return errors.OutOfRange(opInsertRange, index, l.count)
	}
	if len(items) == 0 {
		return nil
	}
	n := int64(len(items))
	required, ok := layout.SafeAdd64(l.count, n)
	if !ok {
		return errors.SizeOverflow(opInsertRange, l.count, l.itemSize)
	}
	if err := l.ensure(opInsertRange, required); err != nil {
		return err
	}
	copy(l.items[index+n:required], l.items[index:l.count])
	copy(l.items[index:index+n], items)
	l.count = required
	return nil
}

// RemoveAt removes the element at index, shifting later elements left.
func (l *List[T]) RemoveAt(index int64) error {
	l.mustLive()
	return l.remove(opRemoveAt, index, 1)
}

// RemoveRange removes n elements starting at index, shifting later elements
// left. Removing zero elements is valid at any index up to Count.
func (l *List[T]) RemoveRange(index, n int64) error {
	l.mustLive()
	return l.remove(opRemoveRange, index, n)
}

// Clear removes all elements without changing capacity.
func (l *List[T]) Clear() {
	l.mustLive()
	l.count = 0
}

// EnsureCapacity grows capacity to at least capacity slots. It never
// shrinks. The resulting capacity follows the growth policy, so it may
// exceed the request.
func (l *List[T]) EnsureCapacity(capacity int64) error {
	l.mustLive()
	if capacity < 0 {
		return errors.NegativeValue(opEnsureCapacity, "capacity", capacity)
	}
	return l.ensure(opEnsureCapacity, capacity)
}

// TrimToCount shrinks capacity to exactly Count, releasing spare slots.
func (l *List[T]) TrimToCount() error {
	l.mustLive()
	if l.capacity() <= l.count {
		return nil
	}
	return l.relocate(opTrimToCount, l.count)
}

// Free returns the backing block to the allocator. Free is idempotent and
// safe on a nil receiver. Any other use of the list after Free panics.
func (l *List[T]) Free() {
	if l == nil || l.freed {
		return
	}
	l.alloc.Free(l.block)
	l.block = nil
	l.items = nil
	l.count = 0
	l.freed = true
}

func (l *List[T]) capacity() int64 {
	return int64(len(l.items))
}

// ensure grows the backing block so at least capacity items fit. The list is
// untouched on failure.
func (l *List[T]) ensure(op errors.Op, capacity int64) error {
	if l.capacity() >= capacity {
		return nil
	}
	return l.relocate(op, growCapacity(l.capacity(), capacity))
}

// relocate resizes the backing block to hold exactly capacity items and
// rebuilds the typed view.
func (l *List[T]) relocate(op errors.Op, capacity int64) error {
	size, ok := layout.SafeMul64(capacity, l.itemSize)
	if !ok {
		return errors.SizeOverflow(op, capacity, l.itemSize)
	}
	block, err := l.alloc.Realloc(l.block, size)
	if err != nil {
		return errors.Wrap(op, errors.KindOutOfMemory, err, "resizing backing block")
	}
	l.block = block
	l.items = view[T](block, capacity)
	return nil
}

func (l *List[T]) remove(op errors.Op, index, n int64) error {
	if index < 0 || index > l.count {
		return errors.OutOfRange(op, index, l.count)
	}
	if n < 0 || n > l.count-index {
		return errors.InvalidArgument(op, n,
			fmt.Sprintf("count %d out of range at index %d (list count %d)", n, index, l.count))
	}
	if n == 0 {
		return nil
	}
	copy(l.items[index:l.count-n], l.items[index+n:l.count])
	l.count -= n
	return nil
}

func (l *List[T]) mustLive() {
	if l.freed {
		panic("list: use after Free")
	}
}

// growCapacity steps the current capacity up by half, starting no lower than
// DefaultCapacity, until required fits.
func growCapacity(current, required int64) int64 {
	next := current
	if next < DefaultCapacity {
		next = DefaultCapacity
	}
	for next < required {
		if next > math.MaxInt64/3 {
			// The next step would overflow; the allocator will refuse
			// a request this size anyway.
			return required
		}
		next = next*3/2 + 1
	}
	return next
}

// view reinterprets a raw block as a slice of T. The block's alignment is
// guaranteed by the Allocator contract.
func view[T any](block []byte, capacity int64) []T {
	if capacity == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&block[0])), capacity)
}
