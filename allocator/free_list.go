package allocator

import (
	"unsafe"

	"github.com/pullriku/rikualloc-go/layout"
	"github.com/pullriku/rikualloc-go/source"
)

// freeListNode is written in-band at the start of every free interval.
// It is overwritten once the interval is allocated and reconstructed on
// deallocation.
type freeListNode struct {
	size uintptr
	next *freeListNode
}

var freeListNodeLayout = layout.Of[freeListNode]()

// FreeList is a first-fit free-list allocator: requests are satisfied by
// walking a singly linked list of free intervals, splitting the first
// interval that fits. Freed intervals are pushed to the list head; no
// coalescing is performed, so fragmentation is bounded by workload, not
// by the algorithm.
type FreeList[S source.Source] struct {
	src  S
	head *freeListNode
}

// NewFreeList wraps src. No chunk is obtained eagerly.
func NewFreeList[S source.Source](src S) *FreeList[S] {
	return &FreeList[S]{src: src}
}

// normalize pads l so its size is at least sizeof(freeListNode), its
// alignment is at least alignof(freeListNode), and its size is a multiple
// of its alignment.
func normalize(l layout.Layout) layout.Layout {
	align := l.Align
	if align < freeListNodeLayout.Align {
		align = freeListNodeLayout.Align
	}
	size := l.Size
	if size < freeListNodeLayout.Size {
		size = freeListNodeLayout.Size
	}
	size = layout.PadToAlign(size, align)
	return layout.Layout{Size: size, Align: align}
}

// Alloc implements Allocator. A zero-size request returns a non-null,
// aligned dangling pointer and leaves the free list untouched.
func (f *FreeList[S]) Alloc(l layout.Layout) (unsafe.Pointer, uintptr, bool) {
	if l.Size == 0 {
		return unsafe.Pointer(l.Align), 0, true
	}

	n := normalize(l)
	for {
		if ptr, ok := f.tryAlloc(n); ok {
			return ptr, l.Size, true
		}
		if !f.grow(n) {
			return nil, 0, false
		}
	}
}

// tryAlloc performs one first-fit pass over the free list, splitting the
// first interval that fits n with a leftover that is either zero or large
// enough to record as its own free node.
func (f *FreeList[S]) tryAlloc(n layout.Layout) (unsafe.Pointer, bool) {
	var prev *freeListNode
	node := f.head
	for node != nil {
		holeStart := uintptr(unsafe.Pointer(node))
		holeEnd := holeStart + node.size

		pad, ok := layout.AlignOffset(holeStart, n.Align)
		if ok {
			allocStart := holeStart + pad
			allocEnd := allocStart + n.Size
			prefix := pad
			suffix := holeEnd - allocEnd

			fits := allocEnd <= holeEnd
			prefixOK := prefix == 0 || prefix >= freeListNodeLayout.Size
			suffixOK := allocEnd <= holeEnd && (suffix == 0 || suffix >= freeListNodeLayout.Size)

			if fits && prefixOK && suffixOK {
				next := node.next
				if prev == nil {
					f.head = next
				} else {
					prev.next = next
				}
				if suffix != 0 {
					f.push(allocEnd, suffix)
				}
				if prefix != 0 {
					f.push(holeStart, prefix)
				}
				return unsafe.Pointer(allocStart), true
			}
		}

		prev = node
		node = node.next
	}
	return nil, false
}

// grow requests a new chunk sized for n (raised to at least minChunkSize),
// truncates its usable length down to a multiple of the free-list node's
// alignment, and pushes it as a single free node.
func (f *FreeList[S]) grow(n layout.Layout) bool {
	size := n.Size
	if size < minChunkSize {
		size = minChunkSize
	}

	ptr, actualLen, ok := f.src.RequestChunk(layout.Layout{Size: size, Align: n.Align})
	if !ok {
		return false
	}

	truncated := (actualLen / freeListNodeLayout.Align) * freeListNodeLayout.Align
	if truncated < freeListNodeLayout.Size {
		return false
	}
	f.push(uintptr(ptr), truncated)
	return true
}

func (f *FreeList[S]) push(addr, size uintptr) {
	node := (*freeListNode)(unsafe.Pointer(addr))
	node.size = size
	node.next = f.head
	f.head = node
}

// Dealloc re-normalizes l and pushes the freed region as a new free node
// at the head of the list. No coalescing is performed.
func (f *FreeList[S]) Dealloc(ptr unsafe.Pointer, l layout.Layout) {
	if l.Size == 0 {
		return
	}
	n := normalize(l)
	f.push(uintptr(ptr), n.Size)
}
