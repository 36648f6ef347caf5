package rag

import (
	"regexp"
	"strings"
)

var (
	whitespaceRx = regexp.MustCompile(`\s+`)
	sentenceRx   = regexp.MustCompile(`[^.!?]+[.!?]+`)
)

// Sentences splits text into sentence units in order of appearance.
// Whitespace runs are collapsed to a single space first; a sentence is a
// maximal run of non-terminator characters followed by one or more of
// '.', '!' or '?'. Trailing text without a terminator is dropped.
func Sentences(text string) []string {
	normalized := whitespaceRx.ReplaceAllString(text, " ")
	matches := sentenceRx.FindAllString(normalized, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		if s := strings.TrimSpace(m); s != "" {
			out = append(out, s)
		}
	}
	return out
}
