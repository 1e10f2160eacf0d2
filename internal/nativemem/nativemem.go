// Package nativemem allocates short-lived memory outside the Go heap for
// handing to native code.
//
// A Buffer is acquired right before a native call and released right after
// it; callers pair Alloc with a deferred Free.
package nativemem

import (
	"errors"
	"sync/atomic"
	"unsafe"
)

var (
	// ErrZeroSize is returned for allocations of zero or negative size.
	ErrZeroSize = errors.New("nativemem: zero-size allocation")
	// ErrReleased is returned when a buffer is freed twice.
	ErrReleased = errors.New("nativemem: buffer already released")
)

var live atomic.Int64

// Live returns the number of buffers currently allocated.
func Live() int64 { return live.Load() }

// Buffer is a native memory region.
type Buffer struct {
	data     []byte
	release  func([]byte) error
	released bool
}

// Alloc returns a zeroed native buffer of size bytes.
func Alloc(size int) (*Buffer, error) {
	if size <= 0 {
		return nil, ErrZeroSize
	}
	data, err := allocPages(size)
	if err != nil {
		return nil, err
	}
	live.Add(1)
	return &Buffer{data: data[:size:size], release: freePages}, nil
}

// Bytes returns the buffer's memory. It must not be used after Free.
func (b *Buffer) Bytes() []byte { return b.data }

// Len returns the buffer size in bytes.
func (b *Buffer) Len() int { return len(b.data) }

// Pointer returns the address of the first byte.
func (b *Buffer) Pointer() unsafe.Pointer {
	return unsafe.Pointer(&b.data[0])
}

// Free releases the buffer.
func (b *Buffer) Free() error {
	if b.released {
		return ErrReleased
	}
	b.released = true
	live.Add(-1)
	err := b.release(b.data)
	b.data = nil
	return err
}
