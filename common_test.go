package dice

import "testing"

func TestTextOf(t *testing.T) {
	for _, tc := range []struct {
		in   string
		text Text
	}{
		{"", Text{' ', ' ', ' ', ' '}},
		{"7", Text{'7', ' ', ' ', ' '}},
		{"1d4", Text{'1', 'd', '4', ' '}},
		{"1d20", Text{'1', 'd', '2', '0'}},
		{"12345", Text{'1', '2', '3', '4'}}, // cut off
	} {
		text := TextOf(tc.in)
		if text != tc.text {
			t.Errorf("TextOf(%q): expected %q but got %q", tc.in, tc.text, text)
		}
	}
}

func TestReached(t *testing.T) {
	for _, tc := range []struct {
		now, deadline uint32
		reached       bool
	}{
		{0, 0, true},
		{999, 1000, false},
		{1000, 1000, true},
		{1001, 1000, true},
		{0xffff_fff0, 0xffff_fff8, false},
		{0xffff_fff8, 0xffff_fff8, true},
		{4, 0xffff_fff8, true},  // clock wrapped around after the deadline
		{0xffff_fff0, 4, false}, // deadline is past the wraparound
		{0x7fff_ffff, 0, true},  // just under half the clock range
		{0x8000_0000, 0, false}, // more than half: treated as "before"
		{1000 + 300*3, 1000 + 300*3, true},
	} {
		if got := reached(tc.now, tc.deadline); got != tc.reached {
			t.Errorf("reached(%#x, %#x): expected %v but got %v", tc.now, tc.deadline, tc.reached, got)
		}
	}
}
