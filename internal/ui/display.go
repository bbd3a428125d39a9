// Package ui provides the animated waits shared by all activities.
// This file implements the spinner and countdown drawn in place on the
// current console line.
package ui

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"

	"github.com/mindful-dev/mindful/internal/clock"
	"github.com/mindful-dev/mindful/internal/console"
)

// Frames is the spinner animation: | / - \
var Frames = spinner.Line.Frames

// Display draws spinners and countdowns on a console, timed by a clock.
type Display struct {
	con   *console.Console
	clock clock.Clock
	frame time.Duration // time each spinner frame stays up
	tick  time.Duration // time each countdown number stays up
}

// NewDisplay creates a Display.
func NewDisplay(con *console.Console, clk clock.Clock, frame, tick time.Duration) *Display {
	return &Display{
		con:   con,
		clock: clk,
		frame: frame,
		tick:  tick,
	}
}

// Spinner cycles through Frames until at least seconds have elapsed. The
// deadline is checked only between frames, so the last frame always
// completes.
func (d *Display) Spinner(seconds int) {
	end := d.clock.Now().Add(time.Duration(seconds) * time.Second)

	i := 0
	for d.clock.Now().Before(end) {
		f := Frames[i]
		d.con.Print(f)
		d.clock.Sleep(d.frame)
		// Frames from other spinner sets (spinner.Dot, spinner.Globe) are
		// wider than one column.
		d.con.Erase(lipgloss.Width(f))

		i = (i + 1) % len(Frames)
	}
}

// Countdown prints seconds, seconds-1, ... 1, each replacing the previous.
func (d *Display) Countdown(seconds int) {
	for i := seconds; i > 0; i-- {
		s := strconv.Itoa(i)
		d.con.Print(s)
		d.clock.Sleep(d.tick)
		d.con.Erase(len(s))
	}
}
