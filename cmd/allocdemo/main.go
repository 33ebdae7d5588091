// Command allocdemo drives the two canonical allocator configurations
// from rikualloc's origin: a bump allocator fronting a static buffer,
// and a free-list allocator fronting the OS page source. It exists to
// exercise the full stack end to end; it is not part of the library's
// contract.
package main

import (
	"log"
	"unsafe"

	"github.com/pullriku/rikualloc-go/allocator"
	"github.com/pullriku/rikualloc-go/layout"
	"github.com/pullriku/rikualloc-go/locked"
	"github.com/pullriku/rikualloc-go/source"
)

func main() {
	bumpArena := locked.NewLockedAllocator[*allocator.Bump[*source.StaticBuffer]](
		allocator.NewBump[*source.StaticBuffer](source.NewStaticBuffer(1 << 20)),
	)
	heap := locked.NewLockedAllocator[*allocator.FreeList[source.OS]](
		allocator.NewFreeList[source.OS](source.OS{}),
	)

	wordLayout := layout.Of[uintptr]()

	before := heap.Alloc(wordLayout)
	log.Printf("before: heap alloc = %p", before)
	heap.Dealloc(before, wordLayout)

	var kept []unsafe.Pointer
	for i := 0; i < 10000; i++ {
		if i%13 != 0 {
			continue
		}
		ptr := bumpArena.Alloc(layout.Layout{Size: 8, Align: 8})
		if ptr == nil {
			log.Fatalf("bump arena exhausted at i=%d", i)
		}
		*(*int)(ptr) = i
		kept = append(kept, ptr)
	}
	log.Printf("bump arena: kept %d multiples of 13 from [0, 10000)", len(kept))

	after := heap.Alloc(wordLayout)
	log.Printf("after: heap alloc = %p", after)
	heap.Dealloc(after, wordLayout)

	bumpArena.WithLock(func(b **allocator.Bump[*source.StaticBuffer]) {
		(*b).Close()
	})
}
