package dice

import (
	"bytes"
	"fmt"
	"testing"
)

// mockBus records every write, the way the display hardware would see it.
type mockBus struct {
	glyphs  []byte
	selects []byte
}

func (m *mockBus) Write(glyph, sel byte) {
	m.glyphs = append(m.glyphs, glyph)
	m.selects = append(m.selects, sel)
}

func TestGlyph(t *testing.T) {
	for _, tc := range []struct {
		c     byte
		glyph byte
	}{
		{'0', 0b11000000},
		{'4', 0b10011001},
		{'9', 0b10010000},
		{'A', 0b10001000},
		{'a', 0b10001000},
		{'d', 0b10100001},
		{'D', 0b10100001},
		{'X', 0b10110110},
		{'z', 0b10100100},
		{' ', Blank},
		{'-', Blank},
		{'@', Blank}, // just before 'A'
		{'[', Blank}, // just after 'Z'
		{0, Blank},
	} {
		if glyph := Glyph(tc.c); glyph != tc.glyph {
			t.Errorf("Glyph(%q): expected %08b but got %08b", tc.c, tc.glyph, glyph)
		}
	}
}

func TestDisplayRotation(t *testing.T) {
	bus := &mockBus{}
	d := NewMultiplexer(bus)
	d.SetContents(TextOf("1d20"))

	// Three full cycles: every position exactly once per cycle, in order.
	for i := 0; i < 3*Positions; i++ {
		d.Refresh()
	}
	expectedSelects := []byte{
		1 << 0, 1 << 1, 1 << 2, 1 << 3,
		1 << 0, 1 << 1, 1 << 2, 1 << 3,
		1 << 0, 1 << 1, 1 << 2, 1 << 3,
	}
	if !bytes.Equal(bus.selects, expectedSelects) {
		t.Errorf("wrong position select bytes\nExpected: %08b\nGot:      %08b", expectedSelects, bus.selects)
	}
	expectedGlyphs := []byte{Glyph('1'), Glyph('d'), Glyph('2'), Glyph('0')}
	if !bytes.Equal(bus.glyphs[:Positions], expectedGlyphs) {
		t.Errorf("wrong glyphs\nExpected: %08b\nGot:      %08b", expectedGlyphs, bus.glyphs[:Positions])
	}
}

func TestDisplayBlankPadding(t *testing.T) {
	bus := &mockBus{}
	d := NewMultiplexer(bus)

	// Write a long text first, then a short one: the trailing digits must not
	// keep showing the old text.
	d.SetContents(TextOf("8888"))
	d.SetContents(TextOf("7"))
	for i := 0; i < Positions; i++ {
		d.Refresh()
	}
	expected := []byte{Glyph('7'), Blank, Blank, Blank}
	if !bytes.Equal(bus.glyphs, expected) {
		t.Errorf("wrong glyphs\nExpected: %08b\nGot:      %08b", expected, bus.glyphs)
	}
	if text := d.Contents(); text != TextOf("7   ") {
		t.Errorf("expected contents %q, got %q", "7   ", text)
	}
}

func TestDisplayUpdateMidCycle(t *testing.T) {
	bus := &mockBus{}
	d := NewMultiplexer(bus)
	d.SetContents(TextOf("1234"))
	d.Refresh()
	d.Refresh()

	// Changing the contents doesn't restart the rotation.
	d.SetContents(TextOf("5678"))
	d.Refresh()
	if sel := bus.selects[2]; sel != 1<<2 {
		t.Errorf("expected position 2 to be refreshed, got select %08b", sel)
	}
	if glyph := bus.glyphs[2]; glyph != Glyph('7') {
		t.Errorf("expected glyph for '7', got %08b", glyph)
	}
}

// ExampleMultiplexer shows the bytes written to the bus for one full refresh
// cycle.
func ExampleMultiplexer() {
	bus := &mockBus{}
	display := NewMultiplexer(bus)
	display.SetContents(TextOf("3d6"))
	for i := 0; i < Positions; i++ {
		display.Refresh()
	}
	for i := range bus.glyphs {
		fmt.Printf("%08b %04b\n", bus.glyphs[i], bus.selects[i])
	}
	// Output:
	// 10110000 0001
	// 10100001 0010
	// 10000010 0100
	// 11111111 1000
}
