package locked

import (
	"unsafe"

	"github.com/pullriku/rikualloc-go/allocator"
	"github.com/pullriku/rikualloc-go/layout"
)

// LockedAllocator adapts a single-threaded allocator.Allocator into a
// thread-safe one and bridges it to the ambient global-allocator shape:
// a raw-pointer Alloc/Dealloc pair where failure is a null pointer rather
// than an (ok bool) result.
type LockedAllocator[A allocator.Allocator] struct {
	locked *Locked[A]
}

// NewLockedAllocator wraps inner behind a fresh mutex.
func NewLockedAllocator[A allocator.Allocator](inner A) *LockedAllocator[A] {
	return &LockedAllocator[A]{locked: New(inner)}
}

// Alloc serves l under the lock. Returns nil on failure.
func (a *LockedAllocator[A]) Alloc(l layout.Layout) unsafe.Pointer {
	var ptr unsafe.Pointer
	a.locked.WithLock(func(inner *A) {
		p, _, ok := (*inner).Alloc(l)
		if ok {
			ptr = p
		}
	})
	return ptr
}

// Dealloc releases ptr under the lock. A nil ptr is a no-op.
func (a *LockedAllocator[A]) Dealloc(ptr unsafe.Pointer, l layout.Layout) {
	if ptr == nil {
		return
	}
	a.locked.WithLock(func(inner *A) {
		(*inner).Dealloc(ptr, l)
	})
}

// WithLock exposes the guarded allocator for operations outside the
// global-allocator bridge shape, such as calling Close on a Bump
// allocator at teardown.
func (a *LockedAllocator[A]) WithLock(f func(*A)) {
	a.locked.WithLock(f)
}
