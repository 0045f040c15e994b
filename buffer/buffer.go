// Package buffer provides a growable byte buffer backed by a pluggable
// allocator, with line reading and printf-style formatting.
//
// A Buffer starts empty and allocates lazily on first use. It grows by the
// 3/2+1 rule and keeps its backing block until Free, so building many short
// strings in a loop reuses one allocation. Formatting and writes are
// all-or-nothing: content is only touched after capacity is secured, so a
// failed grow leaves the buffer exactly as it was.
//
// Bytes returns a view into the backing block. Like all views handed out by
// this module, it is invalidated by any call that can grow or release the
// block and must be re-fetched afterwards.
//
// A Buffer is not safe for concurrent use.
package buffer

import (
	"fmt"
	"io"
	"math"

	runtimekit "github.com/wippyai/runtime-kit"
	"github.com/wippyai/runtime-kit/alloc"
	"github.com/wippyai/runtime-kit/errors"
)

const (
	opReadLine = errors.Op("buffer.read_line")
	opPrintf   = errors.Op("buffer.printf")
	opAppendf  = errors.Op("buffer.appendf")
	opWrite    = errors.Op("buffer.write")
	opWriteTo  = errors.Op("buffer.write_to")
)

// InitialLineCapacity is the size of the first block ReadLine allocates for
// an empty buffer. Most lines fit without a second resize.
const InitialLineCapacity = 128

// Buffer is a growable byte buffer. The backing block comes from the
// configured allocator and is resized in place as content grows.
type Buffer struct {
	alloc  runtimekit.Allocator
	block  []byte
	length int64
	freed  bool
}

var (
	_ io.Writer       = (*Buffer)(nil)
	_ io.StringWriter = (*Buffer)(nil)
	_ io.WriterTo     = (*Buffer)(nil)
	_ fmt.Stringer    = (*Buffer)(nil)
)

// New returns an empty buffer that allocates from a. A nil allocator selects
// the process heap. No memory is allocated until the first write.
func New(a runtimekit.Allocator) *Buffer {
	if a == nil {
		a = alloc.Default()
	}
	return &Buffer{alloc: a}
}

// Len returns the number of content bytes.
func (b *Buffer) Len() int64 {
	b.mustLive()
	return b.length
}

// Capacity returns the size of the backing block in bytes.
func (b *Buffer) Capacity() int64 {
	b.mustLive()
	return int64(len(b.block))
}

// Bytes returns a view of the content. The view is invalidated by any
// mutation that can resize the block and by Free.
func (b *Buffer) Bytes() []byte {
	b.mustLive()
	return b.block[:b.length:b.length]
}

// String returns a copy of the content as a string.
func (b *Buffer) String() string {
	b.mustLive()
	return string(b.block[:b.length])
}

// Reset discards the content but keeps the backing block for reuse.
func (b *Buffer) Reset() {
	b.mustLive()
	b.length = 0
}

// Free returns the backing block to the allocator. The buffer must not be
// used afterwards. Free is idempotent and safe on a nil buffer.
func (b *Buffer) Free() {
	if b == nil || b.freed {
		return
	}
	b.alloc.Free(b.block)
	b.block = nil
	b.length = 0
	b.freed = true
}

// ReadLine replaces the content with the next line from r, including the
// trailing newline when one is present. End of input after at least one byte
// is a successful read. End of input before any byte reports an end-of-file
// error and leaves the buffer empty. Any other reader error is reported as a
// read failure with the bytes read so far as content.
func (b *Buffer) ReadLine(r io.ByteReader) error {
	b.mustLive()
	if r == nil {
		return errors.InvalidArgument(opReadLine, nil, "reader must not be nil")
	}
	b.length = 0
	if len(b.block) == 0 {
		if err := b.ensure(opReadLine, InitialLineCapacity); err != nil {
			return err
		}
	}
	for {
		c, err := r.ReadByte()
		if err == io.EOF {
			if b.length == 0 {
				return errors.EndOfFile(opReadLine)
			}
			return nil
		}
		if err != nil {
			return errors.ReadFailed(opReadLine, err)
		}
		if err := b.ensure(opReadLine, b.length+1); err != nil {
			return err
		}
		b.block[b.length] = c
		b.length++
		if c == '\n' {
			return nil
		}
	}
}

// Printf replaces the content with the formatted string. The text is
// formatted into scratch space first and copied only after capacity is
// secured, so on failure the content is unchanged.
func (b *Buffer) Printf(format string, args ...any) error {
	b.mustLive()
	text := fmt.Appendf(nil, format, args...)
	if err := b.ensure(opPrintf, int64(len(text))); err != nil {
		return err
	}
	b.length = int64(copy(b.block, text))
	return nil
}

// Appendf appends the formatted string to the content. Like Printf it is
// all-or-nothing.
func (b *Buffer) Appendf(format string, args ...any) error {
	b.mustLive()
	text := fmt.Appendf(nil, format, args...)
	if err := b.ensure(opAppendf, b.length+int64(len(text))); err != nil {
		return err
	}
	b.length += int64(copy(b.block[b.length:], text))
	return nil
}

// Write appends p to the content, implementing io.Writer. It writes all of p
// or nothing.
func (b *Buffer) Write(p []byte) (int, error) {
	b.mustLive()
	if err := b.ensure(opWrite, b.length+int64(len(p))); err != nil {
		return 0, err
	}
	n := copy(b.block[b.length:], p)
	b.length += int64(n)
	return n, nil
}

// WriteString appends s to the content, implementing io.StringWriter.
func (b *Buffer) WriteString(s string) (int, error) {
	b.mustLive()
	if err := b.ensure(opWrite, b.length+int64(len(s))); err != nil {
		return 0, err
	}
	n := copy(b.block[b.length:], s)
	b.length += int64(n)
	return n, nil
}

// WriteByte appends a single byte to the content.
func (b *Buffer) WriteByte(c byte) error {
	b.mustLive()
	if err := b.ensure(opWrite, b.length+1); err != nil {
		return err
	}
	b.block[b.length] = c
	b.length++
	return nil
}

// WriteTo copies the content to w, implementing io.WriterTo. The content is
// retained; call Reset to reuse the buffer. A sink error or short write is
// reported as a write failure.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	b.mustLive()
	if b.length == 0 {
		return 0, nil
	}
	n, err := w.Write(b.block[:b.length])
	if err != nil {
		return int64(n), errors.WriteFailed(opWriteTo, err)
	}
	if int64(n) < b.length {
		return int64(n), errors.WriteFailed(opWriteTo, io.ErrShortWrite)
	}
	return int64(n), nil
}

// ensure grows the backing block so it holds at least required bytes.
// Content is never touched, only the block may move.
func (b *Buffer) ensure(op errors.Op, required int64) error {
	if required < 0 {
		return errors.NegativeValue(op, "required capacity", required)
	}
	if int64(len(b.block)) >= required {
		return nil
	}
	capacity := grow(int64(len(b.block)), required)
	block, err := b.alloc.Realloc(b.block, capacity)
	if err != nil {
		return errors.Wrap(op, errors.KindOutOfMemory, err, "resizing backing block")
	}
	b.block = block
	return nil
}

// grow applies the byte-buffer growth rule: start from at least one byte
// and multiply by 3/2 plus one until required fits. The 1.5 factor wastes
// less memory than doubling and lets shrinking allocators reuse blocks.
func grow(current, required int64) int64 {
	next := current
	if next < 1 {
		next = 1
	}
	for next < required {
		if next > math.MaxInt64/3 {
			return required
		}
		next = next*3/2 + 1
	}
	return next
}

func (b *Buffer) mustLive() {
	if b.freed {
		panic("buffer: use after Free")
	}
}
