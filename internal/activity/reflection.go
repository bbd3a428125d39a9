package activity

import (
	"errors"
	"fmt"
	"io"

	"github.com/mindful-dev/mindful/internal/log"
	"github.com/mindful-dev/mindful/prompts"
)

// Reflection asks the user to recall a moment of strength and then cycles
// through questions about it.
type Reflection struct {
	*Base
	prompts   []string
	questions []string

	prompt string
	asked  []string
}

// NewReflection creates a reflection activity.
func NewReflection(env *Env) *Reflection {
	return &Reflection{
		Base: newBase(env, "Reflection Activity",
			"This activity will help you reflect on times in your life when you have shown strength and resilience. This will help you recognize the power you have and how you can use it in other aspects of your life."),
		prompts:   prompts.ReflectionPrompts(),
		questions: prompts.ReflectionQuestions(),
	}
}

// Prompt returns the prompt shown in this run.
func (a *Reflection) Prompt() string { return a.prompt }

// Asked returns the questions shown in this run, in order.
func (a *Reflection) Asked() []string { return a.asked }

// RunActivity shows one prompt, waits for the user, then shows a random
// question every spinner cycle until the session length has passed.
func (a *Reflection) RunActivity() error {
	return a.run(func() error {
		con := a.Console

		a.prompt = a.pick(a.prompts)
		a.logEvent(log.LogEvent{Event: log.EventPromptSelected, Prompt: a.prompt})

		con.Println("Consider the following prompt:")
		con.Println("")
		con.Println("--- " + a.prompt + " ---")
		con.Println("")
		con.Println("When you have something in mind, press enter to continue.")
		// Any line continues; so does closed input.
		if _, err := con.ReadLine(); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("waiting for enter: %w", err)
		}

		con.Println("Now ponder on each of the following questions as they related to this experience.")
		con.Print("You may begin in: ")
		a.ShowCountDown(a.Config.Timing.BeginCountdown)

		con.Clear()

		end := a.deadline()
		for a.Clock.Now().Before(end) {
			q := a.pick(a.questions)
			a.asked = append(a.asked, q)

			con.Println("")
			con.Println("> " + q)
			a.ShowSpinner(a.Config.Reflection.Question)
		}
		return nil
	})
}
