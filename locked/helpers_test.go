package locked

import (
	"time"
	"unsafe"

	"github.com/pullriku/rikualloc-go/layout"
)

func timeoutAfterShortDelay() <-chan time.Time {
	return time.After(2 * time.Second)
}

// refusingAllocator always fails Alloc, used to exercise the
// global-allocator bridge's null-on-failure path.
type refusingAllocator struct{}

func (refusingAllocator) Alloc(layout.Layout) (unsafe.Pointer, uintptr, bool) {
	return nil, 0, false
}

func (refusingAllocator) Dealloc(unsafe.Pointer, layout.Layout) {}
