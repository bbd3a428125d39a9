package console

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestReadLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "unix newlines", input: "1\n2\n", want: []string{"1", "2"}},
		{name: "windows newlines", input: "1\r\n2\r\n", want: []string{"1", "2"}},
		{name: "final line without newline", input: "a\nb", want: []string{"a", "b"}},
		{name: "blank lines kept", input: "\n  \n", want: []string{"", "  "}},
		{name: "no trimming of inner spaces", input: " 1 \n", want: []string{" 1 "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(strings.NewReader(tt.input), io.Discard)
			for i, want := range tt.want {
				got, err := c.ReadLine()
				if err != nil {
					t.Fatalf("line %d: unexpected error: %v", i, err)
				}
				if got != want {
					t.Errorf("line %d = %q, want %q", i, got, want)
				}
			}
			if _, err := c.ReadLine(); !errors.Is(err, io.EOF) {
				t.Errorf("expected io.EOF after input, got %v", err)
			}
		})
	}
}

func TestClearIsNoopWhenNotTTY(t *testing.T) {
	var buf bytes.Buffer
	c := New(strings.NewReader(""), &buf)
	if c.IsTTY() {
		t.Fatal("bytes.Buffer should not be a TTY")
	}
	c.Clear()
	if buf.Len() != 0 {
		t.Errorf("Clear wrote %q, want nothing", buf.String())
	}
}

func TestErase(t *testing.T) {
	tests := []struct {
		width int
		want  string
	}{
		{width: 0, want: ""},
		{width: 1, want: "\b \b"},
		{width: 2, want: "\b\b  \b\b"},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		c := New(strings.NewReader(""), &buf)
		c.Erase(tt.width)
		if buf.String() != tt.want {
			t.Errorf("Erase(%d) = %q, want %q", tt.width, buf.String(), tt.want)
		}
	}
}

func TestPrintHelpers(t *testing.T) {
	var buf bytes.Buffer
	c := New(strings.NewReader(""), &buf)
	c.Print("a")
	c.Println("b")
	c.Printf("%d items", 3)
	if got := buf.String(); got != "ab\n3 items" {
		t.Errorf("output = %q", got)
	}
}
