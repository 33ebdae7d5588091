// Package allocator implements the fine-grained byte allocators that sit
// on top of a source.Source: a bump (region) allocator and a first-fit
// free-list allocator.
package allocator

import (
	"unsafe"

	"github.com/pullriku/rikualloc-go/layout"
)

// minChunkSize is the floor every chunk request is raised to, amortizing
// source overhead across many small allocations.
const minChunkSize = 4096

// Allocator serves byte-level allocation requests. Implementations are
// single-threaded by default; share one across goroutines only through
// locked.LockedAllocator.
type Allocator interface {
	// Alloc returns a pointer aligned to l.Align addressing l.Size bytes.
	// ok is false on failure, with no partial state left behind.
	Alloc(l layout.Layout) (ptr unsafe.Pointer, size uintptr, ok bool)

	// Dealloc releases a region previously returned by Alloc. l must match
	// the layout passed to Alloc exactly.
	Dealloc(ptr unsafe.Pointer, l layout.Layout)
}
