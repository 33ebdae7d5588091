// Package locked lifts a single-threaded allocator or memory source into
// a thread-safe one, and bridges it to the ambient global-allocator
// shape (a raw-pointer Alloc/Dealloc pair returning null on failure).
package locked

import "sync"

// Locked wraps a value of type T behind a mutex. All mutation flows
// through WithLock; the inner value is never exposed by reference
// outside the critical section. This is the generic machinery that
// LockedAllocator and LockedSource build on, generalizing the
// mutex-per-allocator pattern the teacher embeds directly in
// BumpAllocator into a reusable adapter.
type Locked[T any] struct {
	mu    sync.Mutex
	inner T
}

// New wraps value behind a fresh mutex.
func New[T any](value T) *Locked[T] {
	return &Locked[T]{inner: value}
}

// WithLock acquires the lock, passes a pointer to the guarded value to f,
// and releases the lock on return — including when f panics.
func (l *Locked[T]) WithLock(f func(*T)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	f(&l.inner)
}
