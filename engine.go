package dice

import "strconv"

// Mode is the state of the dice engine.
type Mode uint8

const (
	// Idle shows the total of the last roll.
	Idle Mode = iota

	// Configuring shows the dice that will be rolled, like "2d6".
	Configuring

	// Generating is the state while the roll button is held down. The total
	// is committed when it is released.
	Generating
)

func (m Mode) String() string {
	switch m {
	case Idle:
		return "idle"
	case Configuring:
		return "configuring"
	case Generating:
		return "generating"
	default:
		return "mode(" + strconv.Itoa(int(m)) + ")"
	}
}

// DieTypes lists the supported dice by number of faces, in the order the type
// button cycles through them.
var DieTypes = [...]int{4, 6, 8, 10, 12, 20, 100}

// ThrowLimit is one more than the largest number of dice thrown at once. The
// throw count wraps back to 1 when it reaches this value.
const ThrowLimit = 10

// Roller is a source of random numbers that can be reseeded, like
// *math/rand.Rand.
type Roller interface {
	Seed(seed int64)
	Intn(n int) int
}

// Input is one classified poll of a button.
type Input struct {
	Key   Key
	Event Event
	Down  bool // whether the button is still held after this poll
}

// Engine is the dice state machine.
type Engine struct {
	mode   Mode
	die    int // index in DieTypes
	throws int
	total  int
	rng    Roller
}

// NewEngine returns an engine in configuration mode for a single d4. The rng
// is reseeded before every roll.
func NewEngine(rng Roller) Engine {
	return Engine{
		mode:   Configuring,
		throws: 1,
		rng:    rng,
	}
}

// Mode returns the current state.
func (e *Engine) Mode() Mode {
	return e.mode
}

// Throws returns the number of dice thrown per roll.
func (e *Engine) Throws() int {
	return e.throws
}

// Faces returns the number of faces of the selected die type.
func (e *Engine) Faces() int {
	return DieTypes[e.die]
}

// Total returns the sum of the last roll. It is not updated when the
// configuration changes, only when rolling again.
func (e *Engine) Total() int {
	return e.total
}

// AdvanceThrowCount throws one more die, wrapping back to a single die after
// ThrowLimit-1.
func (e *Engine) AdvanceThrowCount() {
	e.throws++
	if e.throws >= ThrowLimit {
		e.throws = 1
	}
	e.mode = Configuring
}

// AdvanceDieType selects the next die type, wrapping back to the first.
func (e *Engine) AdvanceDieType() {
	e.die = (e.die + 1) % len(DieTypes)
	e.mode = Configuring
}

// Roll throws the configured dice and returns the sum. The same seed always
// results in the same sum for the same configuration.
func (e *Engine) Roll(seed uint32) int {
	e.rng.Seed(int64(seed))
	faces := e.Faces()
	total := 0
	for i := 0; i < e.throws; i++ {
		total += e.rng.Intn(faces) + 1
	}
	e.total = total
	return total
}

// Handle advances the state machine for one button poll. The roll button
// starts generating when pressed, rolls again (with a new seed) at every
// repeat while held, and commits the last roll when released.
func (e *Engine) Handle(in Input, now uint32) {
	switch in.Key {
	case KeyType:
		if in.Event == Pressed || in.Event == Holding {
			e.AdvanceDieType()
		}
	case KeyCount:
		if in.Event == Pressed || in.Event == Holding {
			e.AdvanceThrowCount()
		}
	case KeyRoll:
		if e.mode != Generating {
			if in.Event == Pressed {
				e.mode = Generating
			}
			return
		}
		switch {
		case in.Event == Holding:
			e.Roll(now)
		case in.Event == Released, in.Event == NoEvent && !in.Down:
			e.Roll(now)
			e.mode = Idle
		}
	}
}

// Text returns what the display should show in the current state.
func (e *Engine) Text() Text {
	var buf [8]byte
	out := buf[:0]
	switch e.mode {
	case Configuring:
		out = strconv.AppendInt(out, int64(e.throws), 10)
		out = append(out, 'd')
		if faces := e.Faces(); faces == 100 {
			// Only two digits left, the leading 1 is implied.
			out = append(out, "00"...)
		} else {
			out = strconv.AppendInt(out, int64(faces), 10)
		}
	case Generating:
		out = append(out, "XXXX"...)
	default:
		out = strconv.AppendInt(out, int64(e.total), 10)
	}
	return TextOf(string(out))
}
