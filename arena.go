// Package rikualloc provides a convenience facade over the allocator,
// source, and locked packages: a single Arena type selecting between
// the bump and free-list strategies, backed by anonymous OS pages and
// safe for concurrent use.
//
// Thread Safety:
//   - Arena.Alloc/Dealloc are serialized with a mutex to prevent data races
//   - Close must not be called concurrently with Alloc/Dealloc or with itself
//   - Multiple Arena instances are completely independent and require no
//     synchronization with each other
//
// Memory Model:
//   - All memory is obtained via mmap and lives outside Go's garbage collector
//   - A Bump-strategy Arena never returns memory to the OS until Close
//   - A FreeList-strategy Arena reuses freed intervals but never unmaps a
//     chunk: every chunk it has mapped is held until the process exits
//
// Allocator Strategies:
//   - Bump: fastest, best for batch allocations that are torn down together
//   - FreeList: supports individual Dealloc, at the cost of first-fit search
package rikualloc

import (
	"unsafe"

	"github.com/pullriku/rikualloc-go/allocator"
	"github.com/pullriku/rikualloc-go/layout"
	"github.com/pullriku/rikualloc-go/locked"
	"github.com/pullriku/rikualloc-go/source"
)

// Strategy selects which allocator backs an Arena.
type Strategy int

const (
	// Bump serves every allocation by advancing a cursor within the
	// current chunk; individual objects are never freed, only the whole
	// arena at once via Close.
	Bump Strategy = iota
	// FreeList serves allocations by first-fit search over a list of
	// free intervals, allowing individual Dealloc calls.
	FreeList
)

// Arena is a ready-to-use, concurrency-safe allocator backed by
// anonymous OS pages.
type Arena struct {
	bump     *locked.LockedAllocator[*allocator.Bump[source.OS]]
	freeList *locked.LockedAllocator[*allocator.FreeList[source.OS]]
}

// New creates an Arena using the given strategy.
func New(strategy Strategy) *Arena {
	if strategy == FreeList {
		return &Arena{
			freeList: locked.NewLockedAllocator[*allocator.FreeList[source.OS]](
				allocator.NewFreeList[source.OS](source.OS{}),
			),
		}
	}
	return &Arena{
		bump: locked.NewLockedAllocator[*allocator.Bump[source.OS]](
			allocator.NewBump[source.OS](source.OS{}),
		),
	}
}

// Alloc serves l, returning nil on failure.
func (a *Arena) Alloc(l layout.Layout) unsafe.Pointer {
	if a.freeList != nil {
		return a.freeList.Alloc(l)
	}
	return a.bump.Alloc(l)
}

// Dealloc releases ptr. For a Bump-strategy Arena this is a no-op,
// matching Bump's "individual allocations are never freed" contract.
func (a *Arena) Dealloc(ptr unsafe.Pointer, l layout.Layout) {
	if a.freeList != nil {
		a.freeList.Dealloc(ptr, l)
		return
	}
	a.bump.Dealloc(ptr, l)
}

// Close releases every chunk a Bump-strategy Arena has ever acquired.
// For a FreeList-strategy Arena, Close is a no-op: the free-list
// allocator has no chunk release path, so its chunks are held until the
// process exits.
func (a *Arena) Close() {
	if a.bump == nil {
		return
	}
	a.bump.WithLock(func(b **allocator.Bump[source.OS]) {
		(*b).Close()
	})
}
