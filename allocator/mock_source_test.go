package allocator

import (
	"unsafe"

	"github.com/pullriku/rikualloc-go/layout"
)

// mockSource is a deterministic, counting source.Source used to drive the
// bump/free-list seed scenarios from a known chunk layout without
// depending on the real page size. It always returns exactly the
// requested length (never more), which lets tests reason about exact
// fits and forced growth.
type mockSource struct {
	requests int
	releases int
	pages    [][]byte
}

func (m *mockSource) RequestChunk(l layout.Layout) (unsafe.Pointer, uintptr, bool) {
	raw := make([]byte, l.Size+l.Align)
	m.pages = append(m.pages, raw)
	m.requests++

	base := uintptr(unsafe.Pointer(unsafe.SliceData(raw)))
	pad, _ := layout.AlignOffset(base, l.Align)
	return unsafe.Pointer(base + pad), l.Size, true
}

func (m *mockSource) ReleaseChunk(unsafe.Pointer, layout.Layout) {
	m.releases++
}

// refusingSource always fails RequestChunk, used to exercise the
// "source exhaustion" failure path.
type refusingSource struct{}

func (refusingSource) RequestChunk(layout.Layout) (unsafe.Pointer, uintptr, bool) {
	return nil, 0, false
}

func (refusingSource) ReleaseChunk(unsafe.Pointer, layout.Layout) {}
