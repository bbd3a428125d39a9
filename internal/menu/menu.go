// Package menu implements the top-level selection loop that launches
// activities.
package menu

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/mindful-dev/mindful/internal/activity"
	"github.com/mindful-dev/mindful/internal/log"
)

const (
	title      = "Mindfulness Program"
	underline  = "=================="
	quitKey    = "4"
	quitLabel  = "Quit"
	choiceText = "Select a choice from the menu: "
	invalidMsg = "Invalid choice. Please try again."
)

// Factory builds a fresh activity for one menu selection.
type Factory func(env *activity.Env) activity.Runner

// Option is one numbered menu entry.
type Option struct {
	Key   string
	Label string
	New   Factory
}

// DefaultOptions returns the three activities in menu order.
func DefaultOptions() []Option {
	return []Option{
		{
			Key:   "1",
			Label: "Start Breathing Activity",
			New:   func(env *activity.Env) activity.Runner { return activity.NewBreathing(env) },
		},
		{
			Key:   "2",
			Label: "Start Reflection Activity",
			New:   func(env *activity.Env) activity.Runner { return activity.NewReflection(env) },
		},
		{
			Key:   "3",
			Label: "Start Listing Activity",
			New:   func(env *activity.Env) activity.Runner { return activity.NewListing(env) },
		},
	}
}

// Menu shows the options and runs whichever activity the user picks.
type Menu struct {
	env     *activity.Env
	options []Option
	title   string
}

// New creates a Menu over options. The title is rendered bold on terminals.
func New(env *activity.Env, options []Option) *Menu {
	heading := title
	if env.Console.IsTTY() {
		heading = renderTitle(lipgloss.NewRenderer(env.Console.Writer()))
	}
	return &Menu{
		env:     env,
		options: options,
		title:   heading,
	}
}

// Run loops until the user quits or input ends. Unknown choices are
// reported and the menu is shown again after a short pause. An error from
// an activity stops the loop and is returned.
func (m *Menu) Run() error {
	con := m.env.Console
	m.env.Log.Append(log.LogEvent{Event: log.EventSessionStarted})

	for {
		con.Clear()
		m.display()

		choice, err := con.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				con.Println("")
				m.env.Log.Append(log.LogEvent{Event: log.EventSessionEnded, Reason: "end of input"})
				return nil
			}
			return fmt.Errorf("reading menu choice: %w", err)
		}

		if choice == quitKey {
			m.env.Log.Append(log.LogEvent{Event: log.EventSessionEnded, Reason: "quit"})
			return nil
		}

		opt, ok := m.lookup(choice)
		if !ok {
			con.Println(invalidMsg)
			m.env.Log.Append(log.LogEvent{Event: log.EventMenuInvalidChoice, Choice: choice})
			m.env.Clock.Sleep(m.env.Config.Menu.InvalidChoicePause())
			continue
		}

		m.env.Log.Append(log.LogEvent{Event: log.EventMenuChoice, Choice: choice})
		if err := opt.New(m.env).RunActivity(); err != nil {
			return fmt.Errorf("%s: %w", opt.Label, err)
		}
	}
}

// renderTitle styles the heading for r's color profile.
func renderTitle(r *lipgloss.Renderer) string {
	return r.NewStyle().Bold(true).Render(title)
}

// display prints the title, the numbered options and the choice prompt.
func (m *Menu) display() {
	con := m.env.Console
	con.Println(m.title)
	con.Println(underline)
	for _, opt := range m.options {
		con.Printf("%s. %s\n", opt.Key, opt.Label)
	}
	con.Printf("%s. %s\n", quitKey, quitLabel)
	con.Print("\n" + choiceText)
}

// lookup finds the option for an exact key match.
func (m *Menu) lookup(choice string) (Option, bool) {
	for _, opt := range m.options {
		if opt.Key == choice {
			return opt, true
		}
	}
	return Option{}, false
}
