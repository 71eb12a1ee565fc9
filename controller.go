package dice

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// Controller ties the buttons, the dice engine and the display together. It
// owns all of the firmware state: nothing is shared with other goroutines.
type Controller struct {
	engine  Engine
	buttons [3]Button // indexed by Key-1
	display Multiplexer
	log     *slog.Logger
}

// NewController returns a controller reading from the given buttons and
// showing the dice on the given bus. A nil logger discards all logs.
func NewController(in Inputs, bus Bus, rng Roller, log *slog.Logger) *Controller {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	c := &Controller{
		engine:  NewEngine(rng),
		display: NewMultiplexer(bus),
		log:     log,
	}
	c.buttons[KeyRoll-1] = NewButton(in.Roll, in.PressedLevel)
	c.buttons[KeyCount-1] = NewButton(in.Count, in.PressedLevel)
	c.buttons[KeyType-1] = NewButton(in.Type, in.PressedLevel)
	c.display.SetContents(c.engine.Text())
	return c
}

// Engine returns the dice state.
func (c *Controller) Engine() *Engine {
	return &c.engine
}

// Multiplexer returns the display multiplexer.
func (c *Controller) Multiplexer() *Multiplexer {
	return &c.display
}

// Step runs a single iteration of the main loop: poll all buttons, update the
// dice, and refresh one digit of the display. The now parameter is the
// current time in milliseconds.
func (c *Controller) Step(ctx context.Context, now uint32) {
	for i := range c.buttons {
		b := &c.buttons[i]
		in := Input{
			Key:   Key(i + 1),
			Event: b.Poll(now),
			Down:  b.Down(),
		}
		c.handle(ctx, in, now)
	}
	c.display.SetContents(c.engine.Text())
	c.display.Refresh()
}

func (c *Controller) handle(ctx context.Context, in Input, now uint32) {
	mode := c.engine.Mode()
	c.engine.Handle(in, now)
	if c.engine.Mode() == mode {
		return
	}
	switch c.engine.Mode() {
	case Idle:
		c.log.LogAttrs(ctx, slog.LevelInfo, "roll",
			slog.Int("throws", c.engine.Throws()),
			slog.Int("faces", c.engine.Faces()),
			slog.Int("total", c.engine.Total()))
	default:
		c.log.LogAttrs(ctx, slog.LevelDebug, "mode",
			slog.String("from", mode.String()),
			slog.String("to", c.engine.Mode().String()),
			slog.String("key", in.Key.String()),
			slog.String("event", in.Event.String()))
	}
}

// Run calls Step in a loop until the context is canceled. There is no delay
// between steps: the display is only steady if Run gets to loop hundreds of
// times per second.
func (c *Controller) Run(ctx context.Context, clock func() uint32) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		c.Step(ctx, clock())
	}
}

// SinceBoot returns a millisecond clock that starts at zero. The returned
// value wraps around after about 49 days.
func SinceBoot() func() uint32 {
	start := time.Now()
	return func() uint32 {
		return uint32(time.Since(start) / time.Millisecond)
	}
}
