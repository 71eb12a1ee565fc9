package dice

// Multiplexer drives a 4-digit 7-segment display over a Bus. Only one digit
// is lit at a time, so Refresh must be called often enough (hundreds of times
// per second) for all digits to appear lit at once.
type Multiplexer struct {
	bus    Bus
	cells  Text
	cursor uint8 // next position to refresh
}

// NewMultiplexer returns a blank display that writes to the given bus.
func NewMultiplexer(bus Bus) Multiplexer {
	return Multiplexer{
		bus:   bus,
		cells: TextOf(""),
	}
}

// SetContents replaces all four digits. It does not write to the bus: the new
// contents become visible as the digits are refreshed.
func (d *Multiplexer) SetContents(text Text) {
	d.cells = text
}

// Contents returns the text currently shown.
func (d *Multiplexer) Contents() Text {
	return d.cells
}

// Refresh writes the next digit to the bus and advances to the following one,
// wrapping around after the last digit.
func (d *Multiplexer) Refresh() {
	pos := d.cursor
	d.bus.Write(Glyph(d.cells[pos]), 1<<pos)
	d.cursor = (pos + 1) % Positions
}
