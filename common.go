package dice

// Settings for the simulator. These can be modified at any time, but it is
// recommended to modify them before configuring any of the board peripherals.
var Simulator = struct {
	WindowTitle string

	// Size of a single display segment stroke in physical pixels. The whole
	// 4-digit display is 48 by 20 strokes.
	WindowScale int
}{
	WindowTitle: "Dice",
	WindowScale: 10,
}

// Pin is a single digital input, such as a machine.Pin configured as input.
type Pin interface {
	Get() bool
}

// Bus is the shift register chain in front of the display. Write shifts out
// the glyph byte and then the position select byte (both MSB first) and
// latches them together, so that no partial state is ever visible.
type Bus interface {
	Write(glyph, sel byte)
}

// Inputs are the three buttons of a dice roller board.
type Inputs struct {
	Roll  Pin
	Count Pin
	Type  Pin

	// The level read from a pin while its button is held down. Buttons are
	// usually wired active low, but this depends on the board.
	PressedLevel bool
}

// Key is one of the three dice buttons.
type Key uint8

// List of all buttons.
const (
	NoKey Key = iota

	KeyRoll
	KeyCount
	KeyType
)

func (k Key) String() string {
	switch k {
	case KeyRoll:
		return "roll"
	case KeyCount:
		return "count"
	case KeyType:
		return "type"
	default:
		return "none"
	}
}

// Event is the classification of a single button poll.
type Event uint8

const (
	NoEvent  Event = iota // Nothing new happened.
	Pressed               // The button was just pressed down.
	Holding               // The button is still down and the repeat delay expired.
	Released              // The button was just released.
)

func (e Event) String() string {
	switch e {
	case Pressed:
		return "pressed"
	case Holding:
		return "holding"
	case Released:
		return "released"
	default:
		return "none"
	}
}

// Positions is the number of digits on the display.
const Positions = 4

// Text is the content of the display, one character per digit.
type Text [Positions]byte

// TextOf returns s as display text. Longer strings are cut off, shorter
// strings are padded with blanks.
func TextOf(s string) Text {
	t := Text{' ', ' ', ' ', ' '}
	copy(t[:], s)
	return t
}

func (t Text) String() string {
	return string(t[:])
}

// reached returns whether the millisecond clock now is at or past deadline.
// The clock wraps around after ~49 days, so the comparison is done on the
// unsigned difference: anything less than half the clock range counts as
// "after".
func reached(now, deadline uint32) bool {
	return now-deadline < 1<<31
}
