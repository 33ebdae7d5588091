package source

import (
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/pullriku/rikualloc-go/layout"
)

const fallbackPageSize = 4096

// cachedPageSize holds the discovered page size, 0 meaning "not yet
// queried". Relaxed double-initialization is safe here because every
// writer computes the same value.
var cachedPageSize atomic.Int64

func pageSize() uintptr {
	if v := cachedPageSize.Load(); v != 0 {
		return uintptr(v)
	}
	v := queryPageSize()
	cachedPageSize.Store(v)
	return uintptr(v)
}

func queryPageSize() int64 {
	if sz := unix.Getpagesize(); sz > 0 {
		return int64(sz)
	}
	return fallbackPageSize
}

// OS is a MemorySource backed by the operating system's anonymous page
// mapping facility. Every chunk is its own mapping, rounded up to a whole
// number of pages; release unmaps using the same rounded length.
type OS struct{}

// RequestChunk maps a fresh read/write anonymous region of at least
// l.Size bytes, rounded up to the page size, and returns its base pointer
// and the rounded length.
func (OS) RequestChunk(l layout.Layout) (unsafe.Pointer, uintptr, bool) {
	ps := pageSize()
	size := layout.AlignUp(l.Size, ps)
	if size == 0 {
		size = ps
	}
	data, err := unix.Mmap(-1, 0, int(size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return nil, 0, false
	}
	return unsafe.Pointer(unsafe.SliceData(data)), size, true
}

// ReleaseChunk unmaps a chunk obtained from RequestChunk. l must be the
// actual (page-rounded) layout observed at acquisition.
func (OS) ReleaseChunk(ptr unsafe.Pointer, l layout.Layout) {
	data := unsafe.Slice((*byte)(ptr), int(l.Size))
	_ = unix.Munmap(data)
}
