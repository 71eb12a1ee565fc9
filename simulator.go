//go:build !baremetal && !rpi

package dice

// The simulator for the dice roller. It shows the 4-digit display and the
// three buttons in a window.
//
// The firmware doesn't use a mainloop of any kind that a GUI toolkit could
// hook into, so the window is actually run in a separate process by starting
// the current process again and communicating over pipes (stdin/stdout in the
// simulator process).

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"os"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/aykevl/tinygl/pixel"
	"golang.org/x/image/draw"
)

const runWindowCommand = "run-simulator-window"

func init() {
	if len(os.Args) >= 2 && os.Args[1] == runWindowCommand {
		// This is the simulator process.
		// Run the entire window in an init function, because that's the only
		// way to do this with the API that is exposed by the dice package.
		windowMain()
		os.Exit(0)
	}
}

// Size of a single digit in segment strokes.
const (
	digitWidth  = 12
	digitHeight = 20
)

// Segment strokes within a digit, indexed by glyph bit.
var segmentRects = [8]image.Rectangle{
	image.Rect(2, 1, 8, 2),     // a
	image.Rect(8, 2, 9, 9),     // b
	image.Rect(8, 10, 9, 17),   // c
	image.Rect(2, 17, 8, 18),   // d
	image.Rect(1, 10, 2, 17),   // e
	image.Rect(1, 2, 2, 9),     // f
	image.Rect(2, 9, 8, 10),    // g
	image.Rect(10, 17, 11, 18), // decimal point
}

var (
	backgroundColor = pixel.RGB888{R: 16, G: 16, B: 16}
	segmentOnColor  = pixel.RGB888{R: 255, G: 48, B: 16}
	segmentOffColor = pixel.RGB888{R: 48, G: 24, B: 24}
)

func toRGBA(c pixel.RGB888) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

var (
	digitsLock sync.Mutex
	digits     = [Positions]byte{Blank, Blank, Blank, Blank}
)

// Draw the glyphs as a display, one pixel per segment stroke.
func renderDigits(glyphs [Positions]byte) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, Positions*digitWidth, digitHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(toRGBA(backgroundColor)), image.Point{}, draw.Src)
	on := image.NewUniform(toRGBA(segmentOnColor))
	off := image.NewUniform(toRGBA(segmentOffColor))
	for pos, glyph := range glyphs {
		offset := image.Pt(pos*digitWidth, 0)
		for segment, rect := range segmentRects {
			src := off
			if glyph&(1<<segment) == 0 {
				// Common anode: a cleared bit lights the segment.
				src = on
			}
			draw.Draw(img, rect.Add(offset), src, image.Point{}, draw.Src)
		}
	}
	return img
}

// The main function for the window process.
func windowMain() {
	display := canvas.NewRaster(func(w, h int) image.Image {
		digitsLock.Lock()
		src := renderDigits(digits)
		digitsLock.Unlock()
		img := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.NearestNeighbor.Scale(img, img.Bounds(), src, src.Bounds(), draw.Src, nil)
		return img
	})
	display.SetMinSize(fyne.NewSize(Positions*digitWidth*10, digitHeight*10))

	buttons := container.NewGridWithColumns(3,
		newPushButton("Roll (1)", KeyRoll),
		newPushButton("Count (2)", KeyCount),
		newPushButton("Type (3)", KeyType))

	// Create a window.
	a := app.New()
	w := a.NewWindow("Simulator")
	w.SetPadded(false)
	w.SetFixedSize(true)
	w.SetContent(container.NewVBox(display, buttons))

	// Listen for keyboard events, and translate them to buttons.
	if deskCanvas, ok := w.Canvas().(desktop.Canvas); ok {
		deskCanvas.SetOnKeyDown(func(event *fyne.KeyEvent) {
			key := decodeFyneKey(event.Name)
			if key != NoKey {
				fmt.Printf("keypress %d\n", key)
			}
		})
		deskCanvas.SetOnKeyUp(func(event *fyne.KeyEvent) {
			key := decodeFyneKey(event.Name)
			if key != NoKey {
				fmt.Printf("keyrelease %d\n", key)
			}
		})
	}

	// Listen for events from the parent process (which includes display data).
	go windowReceiveEvents(w, display)

	// Show the window.
	w.ShowAndRun()
}

// Goroutine that listens for commands from the parent process.
func windowReceiveEvents(w fyne.Window, display *canvas.Raster) {
	r := bufio.NewReader(os.Stdin)
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			// The parent process exited.
			os.Exit(0)
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch cmd := fields[0]; cmd {
		case "title":
			w.SetTitle(strings.TrimSpace(line[len("title"):]))
		case "display":
			var scale int
			fmt.Sscanf(line, "%s %d\n", &cmd, &scale)
			if scale <= 0 {
				scale = 1
			}
			display.SetMinSize(fyne.NewSize(float32(Positions*digitWidth*scale), float32(digitHeight*scale)))
		case "digit":
			var pos int
			var glyph byte
			fmt.Sscanf(line, "%s %d %d\n", &cmd, &pos, &glyph)
			if pos < 0 || pos >= Positions {
				continue
			}
			digitsLock.Lock()
			digits[pos] = glyph
			digitsLock.Unlock()
			display.Refresh()
		default:
			fmt.Fprintln(os.Stderr, "unknown command:", cmd)
		}
	}
}

func decodeFyneKey(key fyne.KeyName) Key {
	switch key {
	case fyne.Key1, fyne.KeySpace, fyne.KeyReturn:
		return KeyRoll
	case fyne.Key2, fyne.KeyUp:
		return KeyCount
	case fyne.Key3, fyne.KeyRight:
		return KeyType
	default:
		return NoKey
	}
}

var _ desktop.Mouseable = (*pushButton)(nil)

// Button widget that sends a press on mouse down and a release on mouse up,
// so that buttons can be held down with the mouse.
type pushButton struct {
	widget.Button
	key Key
}

func newPushButton(label string, key Key) *pushButton {
	b := &pushButton{key: key}
	b.Text = label
	b.ExtendBaseWidget(b)
	return b
}

func (b *pushButton) MouseDown(event *desktop.MouseEvent) {
	if event.Button == desktop.MouseButtonPrimary {
		fmt.Printf("keypress %d\n", b.key)
	}
}

func (b *pushButton) MouseUp(event *desktop.MouseEvent) {
	if event.Button == desktop.MouseButtonPrimary {
		fmt.Printf("keyrelease %d\n", b.key)
	}
}
