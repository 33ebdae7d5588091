package source

import (
	"testing"

	"github.com/pullriku/rikualloc-go/layout"
)

func TestOSRequestChunkAlignedAndSized(t *testing.T) {
	var src OS
	ptr, length, ok := src.RequestChunk(layout.Layout{Size: 100, Align: 8})
	if !ok {
		t.Fatal("RequestChunk failed")
	}
	if length < 100 {
		t.Fatalf("length = %d, want >= 100", length)
	}
	if uintptr(ptr)%uintptr(pageSize()) != 0 {
		t.Fatalf("chunk base not page-aligned: %p", ptr)
	}
	src.ReleaseChunk(ptr, layout.Layout{Size: length, Align: 8})
}

func TestOSRequestChunkRoundsToPageMultiple(t *testing.T) {
	var src OS
	ptr, length, ok := src.RequestChunk(layout.Layout{Size: 1, Align: 8})
	if !ok {
		t.Fatal("RequestChunk failed")
	}
	if length%pageSize() != 0 {
		t.Fatalf("length %d is not a multiple of the page size", length)
	}
	src.ReleaseChunk(ptr, layout.Layout{Size: length, Align: 8})
}

func TestStaticBufferOneShot(t *testing.T) {
	buf := NewStaticBuffer(256)

	_, length, ok := buf.RequestChunk(layout.Layout{Size: 64, Align: 8})
	if !ok {
		t.Fatal("first RequestChunk should succeed")
	}
	if length == 0 {
		t.Fatal("expected nonzero remaining length")
	}

	if _, _, ok := buf.RequestChunk(layout.Layout{Size: 1, Align: 1}); ok {
		t.Fatal("second RequestChunk should fail: buffer already taken")
	}
}

func TestStaticBufferExhaustion(t *testing.T) {
	buf := NewStaticBuffer(16)

	if _, _, ok := buf.RequestChunk(layout.Layout{Size: 1000, Align: 8}); ok {
		t.Fatal("RequestChunk should fail when size exceeds capacity")
	}
}

func TestStaticBufferAlignmentPadding(t *testing.T) {
	buf := NewStaticBuffer(4096)

	ptr, length, ok := buf.RequestChunk(layout.Layout{Size: 16, Align: 64})
	if !ok {
		t.Fatal("RequestChunk failed")
	}
	if uintptr(ptr)%64 != 0 {
		t.Fatalf("returned pointer %p not aligned to 64", ptr)
	}
	if length == 0 {
		t.Fatal("expected nonzero remaining length")
	}
}
