package device

import (
	"bytes"
	"strings"
	"testing"
)

func TestMemoryBigEndianRoundTrip(t *testing.T) {
	m := NewMemory(4)
	m.SetU8(0, 12)
	if got := m.GetU8(0); got != 12 {
		t.Fatalf("got %d", got)
	}
	m.SetU16(2, 0x1234)
	if got := m.GetU8(2); got != 0x12 {
		t.Fatalf("got %#x", got)
	}
	if got := m.GetU8(3); got != 0x34 {
		t.Fatalf("got %#x", got)
	}
	if got := m.GetU16(2); got != 0x1234 {
		t.Fatalf("got %#x", got)
	}
}

func TestBankedMemoryIsolatesBanks(t *testing.T) {
	b := NewBankedMemory(8, 256)
	b.SetMB(0)
	b.SetU16(123, 0xAAAA)
	b.SetMB(1)
	b.SetU16(123, 0xBBBB)
	if got := b.GetU16(123); got != 0xBBBB {
		t.Fatalf("got %#x", got)
	}
	b.SetMB(0)
	if got := b.GetU16(123); got != 0xAAAA {
		t.Fatalf("got %#x", got)
	}
}

func TestMemoryMapperMostRecentWins(t *testing.T) {
	mm := NewMemoryMapper()
	ram := NewBankedMemory(8, 256)
	screen := NewMemory(256)

	mm.Map(ram, 0x0000, 0x00ff, true)
	mm.Map(screen, 0x0000, 0x00ff, true)

	mm.SetU8(5, 42)
	if got := screen.GetU8(5); got != 42 {
		t.Fatalf("expected most-recently-mapped region to win, got screen=%d", got)
	}
	if got := ram.GetU8(5); got != 0 {
		t.Fatalf("expected older region untouched, got ram=%d", got)
	}
}

func TestMemoryMapperRemap(t *testing.T) {
	mm := NewMemoryMapper()
	ram := NewMemory(256)
	mm.Map(ram, 0x0100, 0x01ff, true)
	mm.SetU8(0x0105, 9)
	if got := ram.GetU8(5); got != 9 {
		t.Fatalf("expected remapped address 5, got %d via %d", ram.GetU8(5), got)
	}
}

func TestMemoryMapperSetMBBroadcasts(t *testing.T) {
	mm := NewMemoryMapper()
	a := NewBankedMemory(2, 16)
	b := NewBankedMemory(2, 16)
	mm.Map(a, 0x0000, 0x000f, true)
	mm.Map(b, 0x0010, 0x001f, true)

	mm.SetMB(1)
	a.SetU8(0, 7)
	b.SetU8(0, 7)
	a.SetMB(0)
	b.SetMB(0)
	if a.GetU8(0) == 7 || b.GetU8(0) == 7 {
		t.Fatalf("bank 0 should be untouched after broadcast switched both to bank 1")
	}
}

func TestMemoryMapperOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on unmapped address")
		}
	}()
	mm := NewMemoryMapper()
	mm.Map(NewMemory(4), 0, 3, true)
	mm.GetU8(10)
}

func TestScreenClearAndPaint(t *testing.T) {
	var buf bytes.Buffer
	s := NewScreen(&buf)

	s.SetU16(0, 0xff41) // clear + 'A' at (1,1)
	out := buf.String()
	if !strings.Contains(out, "\x1b[2J\x1b[H") {
		t.Fatalf("expected clear sequence in %q", out)
	}
	if !strings.Contains(out, "\x1b[1;1HA") {
		t.Fatalf("expected cursor move + char in %q", out)
	}
}

func TestScreenPositioning(t *testing.T) {
	var buf bytes.Buffer
	s := NewScreen(&buf)
	s.SetU16(17, 0x0042) // 'B' at addr 17 -> x=2, y=2
	if !strings.Contains(buf.String(), "\x1b[2;2HB") {
		t.Fatalf("got %q", buf.String())
	}
}
