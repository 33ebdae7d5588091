package layout

import "testing"

func TestAlignUp(t *testing.T) {
	cases := []struct {
		x, align, want uintptr
	}{
		{0, 8, 0},
		{1, 8, 8},
		{8, 8, 8},
		{9, 8, 16},
		{24, 64, 64},
	}
	for _, c := range cases {
		if got := AlignUp(c.x, c.align); got != c.want {
			t.Fatalf("AlignUp(%d, %d) = %d, want %d", c.x, c.align, got, c.want)
		}
	}
}

func TestAlignOffset(t *testing.T) {
	pad, ok := AlignOffset(3, 8)
	if !ok || pad != 5 {
		t.Fatalf("AlignOffset(3, 8) = (%d, %v), want (5, true)", pad, ok)
	}

	pad, ok = AlignOffset(16, 8)
	if !ok || pad != 0 {
		t.Fatalf("AlignOffset(16, 8) = (%d, %v), want (0, true)", pad, ok)
	}

	_, ok = AlignOffset(^uintptr(0)-2, 8)
	if ok {
		t.Fatal("AlignOffset should report overflow near the top of the address space")
	}
}

func TestExtend(t *testing.T) {
	header := Layout{Size: 24, Align: 8}
	user := Layout{Size: 16, Align: 64}

	combined, offset, ok := Extend(header, user)
	if !ok {
		t.Fatal("Extend failed")
	}
	if offset != 64 {
		t.Fatalf("offset = %d, want 64 (next 64-byte boundary after 24)", offset)
	}
	if combined.Align != 64 {
		t.Fatalf("combined.Align = %d, want 64", combined.Align)
	}
	if combined.Size != offset+user.Size {
		t.Fatalf("combined.Size = %d, want %d", combined.Size, offset+user.Size)
	}
}

func TestPadToAlign(t *testing.T) {
	if got := PadToAlign(17, 8); got != 24 {
		t.Fatalf("PadToAlign(17, 8) = %d, want 24", got)
	}
}

func TestOf(t *testing.T) {
	type pair struct {
		a int64
		b byte
	}
	l := Of[pair]()
	if l.Align != 8 {
		t.Fatalf("Of[pair]().Align = %d, want 8", l.Align)
	}
	if l.Size < 9 {
		t.Fatalf("Of[pair]().Size = %d, too small", l.Size)
	}
}
