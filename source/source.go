// Package source implements the MemorySource abstraction: a producer of
// large, aligned byte chunks that the allocator package consumes.
package source

import (
	"unsafe"

	"github.com/pullriku/rikualloc-go/layout"
)

// Source requests and releases chunks of memory. Implementations are
// single-threaded by default; share one across goroutines only through
// locked.LockedSource.
type Source interface {
	// RequestChunk returns a pointer aligned to l.Align addressing at least
	// l.Size writable bytes, and the actual usable length (which may
	// exceed l.Size). ok is false on failure, with no side effects.
	RequestChunk(l layout.Layout) (ptr unsafe.Pointer, length uintptr, ok bool)

	// ReleaseChunk reclaims a chunk previously returned by RequestChunk.
	// l must equal the actual length/align recorded at acquisition time,
	// not the original request. Double release and use-after-release are
	// forbidden.
	ReleaseChunk(ptr unsafe.Pointer, l layout.Layout)
}
