package allocator

import (
	"unsafe"

	"github.com/pullriku/rikualloc-go/layout"
	"github.com/pullriku/rikualloc-go/source"
)

// chunkHeader is written in-band at the start of every bump chunk. It is
// written exactly once, when the chunk is adopted, and read only when the
// chunk is released by Close.
type chunkHeader struct {
	next   *chunkHeader
	base   unsafe.Pointer
	layout layout.Layout
}

var headerLayout = layout.Of[chunkHeader]()

// Bump is a bump (region) allocator: it satisfies each request by
// advancing a cursor within the current source-provided chunk, obtaining
// a new chunk on overflow, and releasing every chunk it has ever acquired
// on Close. Individual allocations are never freed; Dealloc is a no-op.
type Bump[S source.Source] struct {
	src    S
	cursor uintptr
	end    uintptr
	head   *chunkHeader
}

// NewBump wraps src. No chunk is obtained eagerly; the first one is
// acquired lazily on the first allocation.
func NewBump[S source.Source](src S) *Bump[S] {
	return &Bump[S]{src: src}
}

// Alloc implements Allocator. A zero-size request returns a non-null,
// aligned pointer synthesized from the alignment itself, carrying no
// provenance into any chunk, and never touches the cursor.
func (b *Bump[S]) Alloc(l layout.Layout) (unsafe.Pointer, uintptr, bool) {
	if l.Size == 0 {
		return unsafe.Pointer(l.Align), 0, true
	}

	if ptr, ok := b.tryBump(l); ok {
		return ptr, l.Size, true
	}

	if !b.grow(l) {
		return nil, 0, false
	}

	// grow() always leaves at least l.Size bytes available starting from
	// the fresh chunk's aligned cursor.
	ptr, ok := b.tryBump(l)
	if !ok {
		return nil, 0, false
	}
	return ptr, l.Size, true
}

// tryBump attempts to satisfy l from the current chunk without growing.
func (b *Bump[S]) tryBump(l layout.Layout) (unsafe.Pointer, bool) {
	pad, ok := layout.AlignOffset(b.cursor, l.Align)
	if !ok {
		return nil, false
	}
	start := b.cursor + pad
	if start >= b.end || b.end-start < l.Size {
		return nil, false
	}
	b.cursor = start + l.Size
	return unsafe.Pointer(start), true
}

// grow acquires a new chunk sized for header + l (raised to at least
// minChunkSize), adopts it by writing the chunk header, and repositions
// the cursor/end onto it.
func (b *Bump[S]) grow(l layout.Layout) bool {
	combined, offset, ok := layout.Extend(headerLayout, l)
	if !ok {
		return false
	}
	if combined.Size < minChunkSize {
		combined.Size = minChunkSize
	}

	ptr, actualLen, ok := b.src.RequestChunk(combined)
	if !ok {
		return false
	}

	base := uintptr(ptr)
	hdr := (*chunkHeader)(ptr)
	hdr.next = b.head
	hdr.base = ptr
	hdr.layout = layout.Layout{Size: actualLen, Align: combined.Align}
	b.head = hdr

	userStart := base + offset
	b.cursor = userStart
	b.end = base + actualLen
	return true
}

// Dealloc is a no-op: a bump allocator never frees individual objects.
func (b *Bump[S]) Dealloc(unsafe.Pointer, layout.Layout) {}

// Close walks the chunk chain in LIFO order, releasing every chunk ever
// acquired back to the source exactly once.
func (b *Bump[S]) Close() {
	h := b.head
	for h != nil {
		next := h.next
		b.src.ReleaseChunk(h.base, h.layout)
		h = next
	}
	b.head = nil
	b.cursor = 0
	b.end = 0
}
