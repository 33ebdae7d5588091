package locked

import (
	"unsafe"

	"github.com/pullriku/rikualloc-go/layout"
	"github.com/pullriku/rikualloc-go/source"
)

// LockedSource adapts a single-threaded source.Source into a thread-safe
// one by delegating both operations under a shared lock. LockedSource
// itself implements source.Source, so it can feed a bump or free-list
// allocator owned by another locked container.
type LockedSource[S source.Source] struct {
	locked *Locked[S]
}

// NewLockedSource wraps inner behind a fresh mutex.
func NewLockedSource[S source.Source](inner S) *LockedSource[S] {
	return &LockedSource[S]{locked: New(inner)}
}

// RequestChunk implements source.Source under the lock.
func (s *LockedSource[S]) RequestChunk(l layout.Layout) (ptr unsafe.Pointer, length uintptr, ok bool) {
	s.locked.WithLock(func(inner *S) {
		ptr, length, ok = (*inner).RequestChunk(l)
	})
	return
}

// ReleaseChunk implements source.Source under the lock.
func (s *LockedSource[S]) ReleaseChunk(ptr unsafe.Pointer, l layout.Layout) {
	s.locked.WithLock(func(inner *S) {
		(*inner).ReleaseChunk(ptr, l)
	})
}
