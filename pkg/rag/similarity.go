package rag

import "strings"

// Similarity scores two strings in [0,1] with the Sorensen-Dice
// coefficient over character bigrams, whitespace removed. Equal strings
// score 1; strings shorter than one bigram score 0.
func Similarity(a, b string) float64 {
	a = stripSpace(a)
	b = stripSpace(b)
	if a == b {
		return 1
	}

	ra, rb := []rune(a), []rune(b)
	if len(ra) < 2 || len(rb) < 2 {
		return 0
	}

	bigrams := make(map[string]int, len(ra)-1)
	for i := 0; i < len(ra)-1; i++ {
		bigrams[string(ra[i:i+2])]++
	}

	shared := 0
	for i := 0; i < len(rb)-1; i++ {
		bg := string(rb[i : i+2])
		if bigrams[bg] > 0 {
			bigrams[bg]--
			shared++
		}
	}
	return 2 * float64(shared) / float64(len(ra)+len(rb)-2)
}

func stripSpace(s string) string {
	return strings.Join(strings.Fields(s), "")
}
