// Package console wraps the line-based terminal used by every screen:
// buffered line reads from stdin, writes to stdout, screen clearing and
// in-place erasing of short animated text.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// clearScreen homes the cursor and clears the display.
const clearScreen = "\033[H\033[2J"

// Console reads whole lines and writes text. It is not safe for concurrent use.
type Console struct {
	reader *bufio.Reader
	out    io.Writer
	isTTY  bool
}

// New creates a Console reading from in and writing to out. Screen clearing
// is enabled only when out is a terminal.
func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		reader: bufio.NewReader(in),
		out:    out,
		isTTY:  isTerminal(out),
	}
}

// Std returns a Console bound to os.Stdin and os.Stdout.
func Std() *Console {
	return New(os.Stdin, os.Stdout)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// IsTTY reports whether output goes to a terminal.
func (c *Console) IsTTY() bool {
	return c.isTTY
}

// Writer returns the underlying output.
func (c *Console) Writer() io.Writer {
	return c.out
}

// ReadLine reads one line and returns it without the trailing "\n" or "\r\n".
// A final line with no terminator is returned with a nil error; io.EOF is
// returned only once no input remains.
func (c *Console) ReadLine() (string, error) {
	line, err := c.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return trimEOL(line), nil
		}
		return "", err
	}
	return trimEOL(line), nil
}

func trimEOL(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}

// Print writes s as-is.
func (c *Console) Print(s string) {
	io.WriteString(c.out, s)
}

// Println writes s followed by a newline.
func (c *Console) Println(s string) {
	io.WriteString(c.out, s+"\n")
}

// Printf formats and writes.
func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// Clear wipes the screen. It does nothing when output is not a terminal so
// piped transcripts stay readable.
func (c *Console) Clear() {
	if c.isTTY {
		c.Print(clearScreen)
	}
}

// Erase removes the last width characters written on the current line.
func (c *Console) Erase(width int) {
	if width <= 0 {
		return
	}
	back := strings.Repeat("\b", width)
	c.Print(back + strings.Repeat(" ", width) + back)
}
