package dice

// Key repeat timing in milliseconds. A button that is held down fires Holding
// once after InitialDelay and then again every RepeatInterval.
const (
	InitialDelay   = 1000
	RepeatInterval = 300
)

// Button tracks the debounced state of a single push button.
type Button struct {
	pin     Pin
	pressed bool   // pin level while the button is down
	down    bool   // last known state
	next    uint32 // earliest time the next Holding event may fire
	last    Event
}

// NewButton returns a button that reads from the given pin. The pressed level
// is the level pin.Get() returns while the button is held down.
func NewButton(pin Pin, pressed bool) Button {
	return Button{
		pin:     pin,
		pressed: pressed,
	}
}

// Poll reads the pin and classifies what happened since the previous poll.
// The now parameter is the current time in milliseconds.
//
// At most one Holding event is returned per poll: if polls are further apart
// than RepeatInterval, the missed repeats are dropped rather than queued.
func (b *Button) Poll(now uint32) Event {
	b.last = b.classify(now)
	return b.last
}

func (b *Button) classify(now uint32) Event {
	if b.pin.Get() != b.pressed {
		if b.down {
			b.down = false
			return Released
		}
		return NoEvent
	}

	if !b.down {
		b.down = true
		b.next = now + InitialDelay
		return Pressed
	}

	if !reached(now, b.next) {
		return NoEvent
	}
	b.next += RepeatInterval
	return Holding
}

// Down returns whether the button was held down at the last poll.
func (b *Button) Down() bool {
	return b.down
}

// LastEvent returns the event returned by the last call to Poll.
func (b *Button) LastEvent() Event {
	return b.last
}
