// Package activity implements the guided exercises offered by the menu.
// This file holds the shared Base: start and end screens, the spinner and
// countdown helpers, and the per-run state machine.
package activity

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mindful-dev/mindful/internal/clock"
	"github.com/mindful-dev/mindful/internal/config"
	"github.com/mindful-dev/mindful/internal/console"
	"github.com/mindful-dev/mindful/internal/log"
	"github.com/mindful-dev/mindful/internal/ui"
)

// ErrInvalidDuration is returned when the session length entered by the
// user is not an integer. It ends the program.
var ErrInvalidDuration = errors.New("invalid duration")

// Runner is implemented by every activity.
type Runner interface {
	RunActivity() error
}

// Picker chooses an index in [0, n). *rand.Rand satisfies it.
type Picker interface {
	Intn(n int) int
}

// Env is the set of collaborators shared by every activity instance.
type Env struct {
	Console *console.Console
	Display *ui.Display
	Clock   clock.Clock
	Picker  Picker
	Config  *config.Config
	Log     *log.Logger
}

// NewEnv builds an Env, deriving the Display from cfg's timings.
func NewEnv(con *console.Console, clk clock.Clock, picker Picker, cfg *config.Config, logger *log.Logger) *Env {
	return &Env{
		Console: con,
		Display: ui.NewDisplay(con, clk, cfg.Timing.SpinnerFrame(), cfg.Timing.CountdownTick()),
		Clock:   clk,
		Picker:  picker,
		Config:  cfg,
		Log:     logger,
	}
}

// Base carries the name, description and duration of one activity run and
// the helpers every activity uses. It is used once and then discarded.
type Base struct {
	*Env

	name        string
	description string
	duration    int // seconds
	state       State
	runID       string
}

func newBase(env *Env, name, description string) *Base {
	return &Base{
		Env:         env,
		name:        name,
		description: description,
		state:       StateCreated,
		runID:       uuid.NewString(),
	}
}

// Name returns the activity name.
func (b *Base) Name() string { return b.name }

// Description returns the activity description.
func (b *Base) Description() string { return b.description }

// Duration returns the session length entered by the user, in seconds.
func (b *Base) Duration() int { return b.duration }

// State returns the current lifecycle state.
func (b *Base) State() State { return b.state }

// DisplayStartingMessage introduces the activity, asks for the session
// length and shows the get-ready spinner.
func (b *Base) DisplayStartingMessage() error {
	b.setState(StateConfiguring)

	con := b.Console
	con.Clear()
	con.Println("Welcome to the " + b.name)
	con.Println("")
	con.Println(b.description)
	con.Println("")

	con.Print("How long, in seconds, would you like for your session? ")
	line, err := con.ReadLine()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: no input", ErrInvalidDuration)
		}
		return fmt.Errorf("reading duration: %w", err)
	}

	// 32 bits keeps every deadline well inside time.Duration's range.
	n, err := strconv.ParseInt(strings.TrimSpace(line), 10, 32)
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidDuration, line, err)
	}
	b.duration = int(n)

	con.Clear()
	con.Println("Get ready...")
	b.setState(StateReady)
	b.ShowSpinner(b.Config.Timing.GetReady)

	return nil
}

// DisplayEndingMessage congratulates the user and summarises the session.
func (b *Base) DisplayEndingMessage() {
	con := b.Console
	con.Println("")
	con.Println("Well done!!")
	b.ShowSpinner(b.Config.Timing.WellDone)
	con.Println("")
	con.Printf("You have completed another %d seconds of the %s.\n", b.duration, b.name)
	b.ShowSpinner(b.Config.Timing.Summary)
}

// ShowSpinner animates the spinner for the given number of seconds.
func (b *Base) ShowSpinner(seconds int) {
	b.Display.Spinner(seconds)
}

// ShowCountDown counts down from seconds to 1.
func (b *Base) ShowCountDown(seconds int) {
	b.Display.Countdown(seconds)
}

// deadline returns the time the activity loop should stop at, measured
// from now.
func (b *Base) deadline() time.Time {
	return b.Clock.Now().Add(time.Duration(b.duration) * time.Second)
}

// pick returns a uniformly chosen entry of list.
func (b *Base) pick(list []string) string {
	return list[b.Picker.Intn(len(list))]
}

// run drives the lifecycle around an activity-specific loop:
// start message, loop, end message.
func (b *Base) run(loop func() error) error {
	b.logEvent(log.LogEvent{Event: log.EventActivityStarted})

	if err := b.DisplayStartingMessage(); err != nil {
		b.logEvent(log.LogEvent{Event: log.EventActivityFailed, Error: err.Error()})
		return err
	}

	b.setState(StateRunning)
	if err := loop(); err != nil {
		b.logEvent(log.LogEvent{Event: log.EventActivityFailed, Error: err.Error()})
		return err
	}

	b.setState(StateEnding)
	b.DisplayEndingMessage()
	b.setState(StateDone)

	b.logEvent(log.LogEvent{Event: log.EventActivityCompleted, Duration: b.duration})
	return nil
}

// setState moves to the next lifecycle state. States only move forward.
func (b *Base) setState(s State) {
	if s <= b.state {
		return
	}
	b.state = s
	b.logEvent(log.LogEvent{Event: log.EventActivityState, State: s.String()})
}

// logEvent stamps event with this run's identity and writes it.
func (b *Base) logEvent(event log.LogEvent) {
	event.RunID = b.runID
	event.Activity = b.name
	b.Log.Append(event)
}
