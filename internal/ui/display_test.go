package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/mindful-dev/mindful/internal/clock"
	"github.com/mindful-dev/mindful/internal/console"
)

func newTestDisplay(t *testing.T) (*Display, *bytes.Buffer, *clock.Fake) {
	t.Helper()
	var buf bytes.Buffer
	con := console.New(strings.NewReader(""), &buf)
	clk := clock.NewFake(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	return NewDisplay(con, clk, 250*time.Millisecond, time.Second), &buf, clk
}

func TestFramesAreLineSpinner(t *testing.T) {
	want := []string{"|", "/", "-", "\\"}
	if len(Frames) != len(want) {
		t.Fatalf("Frames = %q, want %q", Frames, want)
	}
	for i := range want {
		if Frames[i] != want[i] {
			t.Errorf("Frames[%d] = %q, want %q", i, Frames[i], want[i])
		}
	}
}

func TestSpinnerRunsForRequestedTime(t *testing.T) {
	d, buf, clk := newTestDisplay(t)

	d.Spinner(2)

	if clk.Slept() != 2*time.Second {
		t.Errorf("slept %v, want 2s", clk.Slept())
	}
	// 8 frames of 250ms, cycling through all four twice.
	want := strings.Repeat("|\b \b/\b \b-\b \b\\\b \b", 2)
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestSpinnerZeroSecondsDrawsNothing(t *testing.T) {
	d, buf, clk := newTestDisplay(t)

	d.Spinner(0)

	if buf.Len() != 0 || clk.Slept() != 0 {
		t.Errorf("expected no output and no sleep, got %q and %v", buf.String(), clk.Slept())
	}
}

func TestCountdown(t *testing.T) {
	d, buf, clk := newTestDisplay(t)

	d.Countdown(3)

	if clk.Slept() != 3*time.Second {
		t.Errorf("slept %v, want 3s", clk.Slept())
	}
	if want := "3\b \b2\b \b1\b \b"; buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestCountdownErasesWideNumbers(t *testing.T) {
	d, buf, _ := newTestDisplay(t)

	d.Countdown(10)

	if !strings.HasPrefix(buf.String(), "10\b\b  \b\b9\b \b") {
		t.Errorf("output = %q, want two-column erase after 10", buf.String())
	}
}
