//go:build !baremetal && !rpi

package dice

import (
	"image"
	"testing"

	"fyne.io/fyne/v2"
)

func TestRenderDigits(t *testing.T) {
	img := renderDigits([Positions]byte{Glyph('8'), Glyph('1'), Blank, Glyph('-')})
	if size := img.Bounds().Size(); size != image.Pt(Positions*digitWidth, digitHeight) {
		t.Fatalf("unexpected image size: %v", size)
	}

	on := toRGBA(segmentOnColor)
	off := toRGBA(segmentOffColor)
	for _, tc := range []struct {
		pos     int
		segment int
		lit     bool
	}{
		{0, 0, true},  // 8: all segments
		{0, 6, true},  // 8: middle bar
		{0, 7, false}, // 8: no decimal point
		{1, 0, false}, // 1: no top bar
		{1, 1, true},  // 1: upper right
		{1, 2, true},  // 1: lower right
		{2, 6, false}, // blank
		{3, 6, false}, // '-' has no glyph
	} {
		rect := segmentRects[tc.segment].Add(image.Pt(tc.pos*digitWidth, 0))
		expected := off
		if tc.lit {
			expected = on
		}
		if c := img.RGBAAt(rect.Min.X, rect.Min.Y); c != expected {
			t.Errorf("digit %d segment %d: expected %v, got %v", tc.pos, tc.segment, expected, c)
		}
	}

	// Space between the segments is background.
	if c := img.RGBAAt(0, 0); c != toRGBA(backgroundColor) {
		t.Errorf("expected background at the corner, got %v", c)
	}
}

func TestSimulatedBus(t *testing.T) {
	bus := &simulatedBus{}
	// Writes with a broken position select byte are ignored.
	bus.Write(Glyph('1'), 0)
	bus.Write(Glyph('1'), 0b0011)
	for pos, glyph := range bus.latched {
		if glyph != 0 {
			t.Errorf("digit %d changed to %08b", pos, glyph)
		}
	}
}

func TestDecodeFyneKey(t *testing.T) {
	for name, key := range map[string]Key{
		"1":      KeyRoll,
		"Space":  KeyRoll,
		"2":      KeyCount,
		"3":      KeyType,
		"Escape": NoKey,
	} {
		if got := decodeFyneKey(fyne.KeyName(name)); got != key {
			t.Errorf("key %q: expected %s, got %s", name, key, got)
		}
	}
}
