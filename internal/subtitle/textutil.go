package subtitle

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/pmezard/go-difflib/difflib"
)

// Heuristic thresholds shared by the pipeline stages. These are deliberate
// tuning constants, not caller configuration.
const (
	// maxCharsPerSecond is the reading-rate ceiling used both to veto
	// sentence merges and to trigger re-splitting of fast segments.
	maxCharsPerSecond = 17.0

	// mergeGapSeconds is the largest silence between two fragments that
	// still allows them to be fused into one sentence.
	mergeGapSeconds = 0.5

	// dedupeWindowSeconds bounds how far ahead of a segment's end a
	// near-duplicate re-utterance is searched for.
	dedupeWindowSeconds = 1.0

	// duplicateSimilarity is the normalized similarity ratio at or above
	// which two segments count as the same utterance.
	duplicateSimilarity = 0.9

	// shortFragmentWords is the word count at or below which a segment is
	// considered a fragment that may continue into the next segment.
	shortFragmentWords = 3

	// splitMinDurationSeconds and splitMinWords gate re-splitting: only
	// segments long enough in time and text are cut in half.
	splitMinDurationSeconds = 3.0
	splitMinWords           = 6
)

var (
	// terminalPunctPattern matches text ending in a sentence-closing mark.
	terminalPunctPattern = regexp.MustCompile(`[.!?…]$`)

	// smallWordPattern matches text beginning with an article, conjunction,
	// preposition, or common pronoun - words that rarely start a sentence
	// boundary in fluent speech and so signal a continuation.
	smallWordPattern = regexp.MustCompile(`(?i)^(a|an|the|and|or|but|to|of|in|on|at|for|with|your|my|his|her|their|our|is|am|are|was|were|it|that|this|there|here)\b`)

	// nonComparablePattern strips everything except word characters,
	// whitespace, and apostrophes before similarity comparison.
	nonComparablePattern = regexp.MustCompile(`[^\w\s']`)

	// whitespaceRunPattern collapses internal whitespace runs.
	whitespaceRunPattern = regexp.MustCompile(`\s+`)
)

// endsSentence reports whether trimmed text ends with terminal punctuation
func endsSentence(text string) bool {
	return terminalPunctPattern.MatchString(text)
}

// startsWithSmallWord reports whether text begins with a small/function word
func startsWithSmallWord(text string) bool {
	return smallWordPattern.MatchString(text)
}

// normalizeForComparison lowercases text, strips punctuation except
// apostrophes, and collapses whitespace so near-duplicates compare equal
func normalizeForComparison(text string) string {
	t := strings.ToLower(strings.TrimSpace(text))
	t = nonComparablePattern.ReplaceAllString(t, " ")
	t = whitespaceRunPattern.ReplaceAllString(t, " ")
	return strings.TrimSpace(t)
}

// charsPerSecond returns the reading rate of text over a duration in
// seconds, counting runes with spaces excluded
func charsPerSecond(text string, durationSeconds float64) float64 {
	chars := utf8.RuneCountInString(strings.ReplaceAll(text, " ", ""))
	if durationSeconds < 1e-6 {
		durationSeconds = 1e-6
	}
	return float64(chars) / durationSeconds
}

// wordCount returns the number of whitespace-separated words in text
func wordCount(text string) int {
	return len(strings.Fields(text))
}

// similarityRatio returns a character-level longest-matching-blocks
// similarity ratio in [0, 1] between two already-normalized strings
func similarityRatio(a, b string) float64 {
	if a == b {
		return 1.0
	}
	matcher := difflib.NewMatcher(strings.Split(a, ""), strings.Split(b, ""))
	return matcher.Ratio()
}
