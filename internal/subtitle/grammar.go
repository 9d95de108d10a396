package subtitle

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	spaceBeforePunctPattern   = regexp.MustCompile(`\s+([,.;:!?])`)
	spaceAfterOpenBracket     = regexp.MustCompile(`([(\[{])\s+`)
	spaceBeforeCloseBracket   = regexp.MustCompile(`\s+([)\]}])`)
	leadingPronounPattern     = regexp.MustCompile(`^i\b`)
	standalonePronounReplacer = strings.NewReplacer(" i ", " I ")
)

// applyGrammarStyle performs light display normalization: whitespace
// tightening around punctuation and brackets, capitalization of the
// standalone pronoun "i", and sentence-initial capitalization when the
// previous segment ended a sentence
func applyGrammarStyle(text string, prevEndedSentence bool) string {
	t := whitespaceRunPattern.ReplaceAllString(strings.TrimSpace(text), " ")
	t = spaceBeforePunctPattern.ReplaceAllString(t, "$1")
	t = spaceAfterOpenBracket.ReplaceAllString(t, "$1")
	t = spaceBeforeCloseBracket.ReplaceAllString(t, "$1")
	t = standalonePronounReplacer.Replace(t)
	t = leadingPronounPattern.ReplaceAllString(t, "I")

	if prevEndedSentence && t != "" {
		if r, size := utf8.DecodeRuneInString(t); unicode.IsLetter(r) {
			t = string(unicode.ToUpper(r)) + t[size:]
		}
	}

	return t
}
