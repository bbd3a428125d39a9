package activity

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mindful-dev/mindful/internal/log"
	"github.com/mindful-dev/mindful/prompts"
)

// Listing has the user list as many things as they can about one topic.
type Listing struct {
	*Base
	prompts []string

	prompt string
	items  int
}

// NewListing creates a listing activity.
func NewListing(env *Env) *Listing {
	return &Listing{
		Base: newBase(env, "Listing Activity",
			"This activity will help you reflect on the good things in your life by having you list as many things as you can in a certain area."),
		prompts: prompts.ListingPrompts(),
	}
}

// Prompt returns the prompt shown in this run.
func (a *Listing) Prompt() string { return a.prompt }

// Items returns the number of non-blank entries the user made.
func (a *Listing) Items() int { return a.items }

// RunActivity reads one entry per line until the session length has
// passed. A read that is already waiting when the deadline passes still
// completes and counts.
func (a *Listing) RunActivity() error {
	return a.run(func() error {
		con := a.Console

		a.prompt = a.pick(a.prompts)
		a.logEvent(log.LogEvent{Event: log.EventPromptSelected, Prompt: a.prompt})

		con.Println("List as many responses as you can to the following prompt:")
		con.Println("--- " + a.prompt + " ---")
		con.Print("You may begin in: ")
		a.ShowCountDown(a.Config.Timing.BeginCountdown)
		con.Println("")

		end := a.deadline()
		for a.Clock.Now().Before(end) {
			con.Print("> ")
			line, err := con.ReadLine()
			if err != nil {
				if errors.Is(err, io.EOF) {
					break
				}
				return fmt.Errorf("reading item: %w", err)
			}
			if strings.TrimSpace(line) != "" {
				a.items++
			}
		}

		con.Printf("You listed %d items!\n", a.items)
		a.logEvent(log.LogEvent{Event: log.EventItemsListed, Items: a.items})
		return nil
	})
}
