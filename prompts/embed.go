// Package prompts embeds the fixed prompt and question lists shown by the
// activities, one entry per line.
package prompts

import (
	_ "embed"
	"strings"
)

//go:embed reflection/prompts.txt
var reflectionPrompts string

//go:embed reflection/questions.txt
var reflectionQuestions string

//go:embed listing/prompts.txt
var listingPrompts string

// ReflectionPrompts returns the experiences a reflection session starts from.
func ReflectionPrompts() []string { return lines(reflectionPrompts) }

// ReflectionQuestions returns the questions cycled during a reflection session.
func ReflectionQuestions() []string { return lines(reflectionQuestions) }

// ListingPrompts returns the topics a listing session asks about.
func ListingPrompts() []string { return lines(listingPrompts) }

// lines splits s into its non-empty lines, in order.
func lines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
