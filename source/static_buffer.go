package source

import (
	"sync/atomic"
	"unsafe"

	"github.com/pullriku/rikualloc-go/layout"
)

// StaticBuffer is a fixed-size byte array source that yields at most one
// chunk for its whole lifetime. A second RequestChunk, or one that cannot
// satisfy the requested alignment, always fails once the single chunk has
// been claimed.
type StaticBuffer struct {
	buf   []byte
	taken atomic.Bool
}

// NewStaticBuffer allocates a backing array of the given size. The array
// itself lives on the Go heap (unlike OS, which maps raw pages); only one
// chunk will ever be carved out of it.
func NewStaticBuffer(size int) *StaticBuffer {
	return &StaticBuffer{buf: make([]byte, size)}
}

// RequestChunk checks feasibility against the backing array, then claims
// the buffer's single chunk via compare-and-swap. Fails without side
// effects if size/alignment cannot be satisfied; fails on the CAS alone
// if a prior request already claimed the chunk.
func (s *StaticBuffer) RequestChunk(l layout.Layout) (unsafe.Pointer, uintptr, bool) {
	if len(s.buf) == 0 {
		return nil, 0, false
	}
	base := uintptr(unsafe.Pointer(unsafe.SliceData(s.buf)))
	pad, ok := layout.AlignOffset(base, l.Align)
	if !ok || pad > uintptr(len(s.buf)) {
		return nil, 0, false
	}
	remaining := uintptr(len(s.buf)) - pad
	if remaining < l.Size {
		return nil, 0, false
	}
	if !s.taken.CompareAndSwap(false, true) {
		return nil, 0, false
	}
	ptr := unsafe.Pointer(base + pad)
	return ptr, remaining, true
}

// ReleaseChunk is a no-op: a static buffer is one-shot and the taken flag
// is never cleared.
func (s *StaticBuffer) ReleaseChunk(unsafe.Pointer, layout.Layout) {}
