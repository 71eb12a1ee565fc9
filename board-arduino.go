//go:build arduino

package dice

import (
	"machine"
	"math/bits"

	"tinygo.org/x/drivers/shiftregister"
)

// Arduino Uno with a multi-function shield: three buttons on A1-A3 and a
// 4-digit display behind two daisy-chained 74HC595 shift registers.

const (
	// The board name, as passed to TinyGo in the "-target" flag.
	Name = "arduino"
)

var (
	Buttons = buttonsConfig{}
	Display = mainDisplay{}
)

type buttonsConfig struct{}

// Configure the button pins. The shield has pull-up resistors, so the buttons
// read low while pressed.
func (b buttonsConfig) Configure() Inputs {
	machine.ADC1.Configure(machine.PinConfig{Mode: machine.PinInput})
	machine.ADC2.Configure(machine.PinConfig{Mode: machine.PinInput})
	machine.ADC3.Configure(machine.PinConfig{Mode: machine.PinInput})
	return Inputs{
		Roll:         machine.ADC1,
		Count:        machine.ADC2,
		Type:         machine.ADC3,
		PressedLevel: false,
	}
}

type mainDisplay struct{}

// Configure the shift register pins: latch on D4, clock on D7, data on D8.
func (d mainDisplay) Configure() Bus {
	sr := shiftregister.New(shiftregister.SIXTEEN_BITS, machine.D4, machine.D7, machine.D8)
	sr.Configure()
	return shiftBus{sr}
}

type shiftBus struct {
	*shiftregister.Device
}

func (b shiftBus) Write(glyph, sel byte) {
	// The driver shifts out the least significant bit first, while the
	// display expects the glyph byte first, most significant bit first.
	b.WriteMask(uint32(bits.Reverse16(uint16(glyph)<<8 | uint16(sel))))
}
