// Package score turns pronunciation-assessment output into per-word practice
// feedback. It compares the lyric text a learner was shown against what the
// speech service heard, using character-level edit distance over a normalized
// text skeleton — deliberately not phoneme alignment, which lives on the
// provider side.
//
// All functions are pure and never return errors: malformed or empty input
// degrades to defined numeric edge cases instead.
package score

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/antzucaro/matchr"
)

// emptyGuide is the sentinel the lyric importer emits for lines that have no
// phonetic guide (instrumental breaks, vocalizations).
const emptyGuide = "—"

var (
	nonWordRe    = regexp.MustCompile(`[^\w\s-]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// PhoneticWords splits a phonetic guide string such as
// "soos-peerahn-doh pohr lahs" into word-level tokens. Hyphens encode
// syllable boundaries and stay inside their token; only whitespace separates
// words. An empty or sentinel guide yields no tokens.
func PhoneticWords(guide string) []string {
	guide = strings.TrimSpace(guide)
	if guide == "" || guide == emptyGuide {
		return nil
	}
	return strings.Fields(guide)
}

// Normalize canonicalizes text for comparison: lowercase, strip everything
// except word characters, whitespace and hyphens, then remove whitespace
// entirely. Spaces are not part of the comparison unit — only the no-space
// skeleton is compared, so "ice cream" and "icecream" normalize identically.
func Normalize(text string) string {
	text = strings.ToLower(text)
	text = nonWordRe.ReplaceAllString(text, "")
	return whitespaceRe.ReplaceAllString(text, "")
}

// Accuracy computes the similarity of two utterances in [0, 1] from the
// Levenshtein distance between their normalized forms.
//
// Identical normalized forms score 1.0. Two empty normalized forms score 0.0
// — there is nothing to have pronounced, and it guards the division below.
// Accuracy is symmetric because the underlying distance is.
func Accuracy(expected, actual string) float64 {
	e := Normalize(expected)
	a := Normalize(actual)

	if e == "" && a == "" {
		return 0
	}
	if e == a {
		return 1
	}

	dist := matchr.Levenshtein(e, a)
	maxLen := utf8.RuneCountInString(e)
	if n := utf8.RuneCountInString(a); n > maxLen {
		maxLen = n
	}

	score := 1 - float64(dist)/float64(maxLen)
	if score < 0 {
		return 0
	}
	return score
}
