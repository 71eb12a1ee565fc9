//go:build rpi

package dice

// Raspberry Pi with the same button and shift register wiring as the
// multi-function shield, on the 40-pin header. Build with -tags=rpi.

import (
	"fmt"
	"os"
	"sync"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

const (
	// The board name. This board is selected with the "rpi" build tag.
	Name = "rpi"
)

var (
	Buttons = buttonsConfig{}
	Display = mainDisplay{}
)

var hostInit sync.Once

// Load the periph.io host drivers, exiting if the GPIO chip isn't usable.
func initHost() {
	hostInit.Do(func() {
		if _, err := host.Init(); err != nil {
			fmt.Fprintln(os.Stderr, "could not initialize host drivers:", err)
			os.Exit(1)
		}
	})
}

// Look up a GPIO pin by name, exiting if it doesn't exist.
func mustPin(name string) gpio.PinIO {
	p := gpioreg.ByName(name)
	if p == nil {
		fmt.Fprintln(os.Stderr, "could not find pin:", name)
		os.Exit(1)
	}
	return p
}

type buttonsConfig struct{}

// Configure the button pins with pull-ups. The buttons connect to ground, so
// they read low while pressed.
func (b buttonsConfig) Configure() Inputs {
	initHost()
	var pins [3]gpioPin
	for i, name := range []string{"GPIO17", "GPIO27", "GPIO22"} {
		p := mustPin(name)
		if err := p.In(gpio.PullUp, gpio.NoEdge); err != nil {
			fmt.Fprintln(os.Stderr, "could not configure pin:", name, err)
			os.Exit(1)
		}
		pins[i] = gpioPin{p}
	}
	return Inputs{
		Roll:         pins[0],
		Count:        pins[1],
		Type:         pins[2],
		PressedLevel: false,
	}
}

type gpioPin struct {
	gpio.PinIO
}

func (p gpioPin) Get() bool {
	return p.Read() == gpio.High
}

type mainDisplay struct{}

// Configure the shift register pins: latch on GPIO5, clock on GPIO6 and data
// on GPIO13.
func (d mainDisplay) Configure() Bus {
	initHost()
	bus := gpioBus{
		latch: mustPin("GPIO5"),
		clock: mustPin("GPIO6"),
		data:  mustPin("GPIO13"),
	}
	bus.clock.Out(gpio.Low)
	bus.data.Out(gpio.Low)
	bus.latch.Out(gpio.High)
	return bus
}

// Shift register chain driven by bit-banging three GPIO pins. The shift
// register doesn't acknowledge anything, so write errors are ignored.
type gpioBus struct {
	latch, clock, data gpio.PinOut
}

func (b gpioBus) Write(glyph, sel byte) {
	b.latch.Out(gpio.Low)
	b.shiftOut(glyph)
	b.shiftOut(sel)
	b.latch.Out(gpio.High)
}

// Shift out a single byte, most significant bit first. Bits are clocked in on
// the rising edge.
func (b gpioBus) shiftOut(value byte) {
	for i := 7; i >= 0; i-- {
		b.data.Out(value&(1<<i) != 0)
		b.clock.Out(gpio.High)
		b.clock.Out(gpio.Low)
	}
}
