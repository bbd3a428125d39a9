package activity

// Breathing walks the user through slow in and out breaths.
type Breathing struct {
	*Base
	cycles int
}

// NewBreathing creates a breathing activity.
func NewBreathing(env *Env) *Breathing {
	return &Breathing{
		Base: newBase(env, "Breathing Activity",
			"This activity will help you relax by walking you through breathing in and out slowly. Clear your mind and focus on your breathing."),
	}
}

// Cycles returns the number of completed in/out breaths.
func (a *Breathing) Cycles() int { return a.cycles }

// RunActivity alternates breathing in and out until the session length has
// passed. The deadline is checked only between full cycles.
func (a *Breathing) RunActivity() error {
	return a.run(func() error {
		con := a.Console
		end := a.deadline()

		for a.Clock.Now().Before(end) {
			con.Println("")
			con.Print("Breathe in...")
			a.ShowCountDown(a.Config.Breathing.Inhale)

			con.Println("")
			con.Print("Breathe out...")
			a.ShowCountDown(a.Config.Breathing.Exhale)

			con.Println("")
			a.cycles++
		}
		return nil
	})
}
