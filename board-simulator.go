//go:build !baremetal && !rpi

package dice

// The simulator board exists for testing locally without running on real
// hardware. This avoids potentially long edit-flash-test cycles.

import (
	"bufio"
	"fmt"
	"io"
	"math/bits"
	"os"
	"os/exec"
	"strings"
	"sync"
)

const (
	// The board name, as passed to TinyGo in the "-target" flag.
	// This is the special name "simulator" for the simulator.
	Name = "simulator"
)

// List of all devices.
var (
	Buttons = buttonsConfig{}
	Display = mainDisplay{}
)

type buttonsConfig struct{}

// Configure returns the simulated buttons. They are pressed with the keyboard
// or the mouse in the simulator window.
func (b buttonsConfig) Configure() Inputs {
	startWindow()
	return Inputs{
		Roll:         simulatedPin{KeyRoll},
		Count:        simulatedPin{KeyCount},
		Type:         simulatedPin{KeyType},
		PressedLevel: true,
	}
}

var (
	keysLock sync.Mutex
	keysDown [KeyType + 1]bool
)

type simulatedPin struct {
	key Key
}

func (p simulatedPin) Get() bool {
	keysLock.Lock()
	defer keysLock.Unlock()
	return keysDown[p.key]
}

type mainDisplay struct{}

// Configure returns a bus that shows the latched digits in the simulator
// window.
func (d mainDisplay) Configure() Bus {
	startWindow()
	windowSendCommand(fmt.Sprintf("display %d", Simulator.WindowScale))
	return &simulatedBus{}
}

// The simulated display keeps every digit lit with the last glyph latched for
// it, which is what persistence of vision does for the real display. Only
// changes are sent to the window, since the bus is written to in a busy loop.
type simulatedBus struct {
	latched [Positions]byte
	sent    [Positions]bool
}

func (b *simulatedBus) Write(glyph, sel byte) {
	if sel == 0 || sel&(sel-1) != 0 {
		// Zero or multiple digits selected. This doesn't happen with the
		// display multiplexer.
		return
	}
	pos := bits.TrailingZeros8(sel)
	if pos >= Positions || (b.sent[pos] && b.latched[pos] == glyph) {
		return
	}
	b.latched[pos] = glyph
	b.sent[pos] = true
	windowSendCommand(fmt.Sprintf("digit %d %d", pos, glyph))
}

var (
	windowStart  sync.Once
	windowLock   sync.Mutex
	windowStdin  io.WriteCloser
	windowStdout io.ReadCloser
)

// Ensure the window is running in a separate process, starting it if necessary.
func startWindow() {
	windowRunning := make(chan struct{})
	windowStart.Do(func() {
		// Start the separate process that manages the window.
		go func() {
			cmd := exec.Command(os.Args[0], runWindowCommand)
			cmd.Stderr = os.Stderr
			windowStdin, _ = cmd.StdinPipe()
			windowStdout, _ = cmd.StdoutPipe()
			err := cmd.Start()
			if err != nil {
				fmt.Fprintln(os.Stdout, "could not start window process:", err)
				os.Exit(1)
			}
			close(windowRunning)
			err = cmd.Wait()
			if err != nil {
				if exitErr, ok := err.(*exec.ExitError); ok {
					os.Exit(exitErr.ExitCode())
				}
				os.Exit(1)
			}
			// The window was closed, so exit.
			os.Exit(0)
		}()
		<-windowRunning

		// Listen for button events (keyboard/mouse).
		go windowListenEvents()

		windowSendCommand("title " + Simulator.WindowTitle)
	})
}

// Send a command to the separate process that manages the window.
// The command is a single line (without newline).
func windowSendCommand(command string) {
	windowLock.Lock()
	defer windowLock.Unlock()

	windowStdin.Write([]byte(command + "\n"))
}

// Goroutine that listens for button events from the window.
func windowListenEvents() {
	r := bufio.NewReader(windowStdout)
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			if err != io.EOF {
				fmt.Fprintln(os.Stderr, "failed to read I/O events from child process:", err)
			}
			break
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch cmd := fields[0]; cmd {
		case "keypress", "keyrelease":
			var key Key
			fmt.Sscanf(line, "%s %d", &cmd, &key)
			if key == NoKey || key > KeyType {
				continue
			}
			keysLock.Lock()
			keysDown[key] = cmd == "keypress"
			keysLock.Unlock()
		default:
			fmt.Fprintln(os.Stderr, "unknown command:", cmd)
		}
	}
}
