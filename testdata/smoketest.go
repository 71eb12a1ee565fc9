package main

import (
	"github.com/aykevl/dice"
)

func main() {
	// Verify board name constant.
	var _ string = dice.Name

	// Assert that dice.Buttons uses the usual interface.
	var _ interface {
		Configure() dice.Inputs
	} = dice.Buttons

	// Assert that dice.Display uses the usual interface.
	var _ interface {
		Configure() dice.Bus
	} = dice.Display
}
