package quiz

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// minSentenceLen is the trimmed length below which a fragment is noise.
	minSentenceLen = 20
	// ExamSentenceLimit bounds sentences grounding exam questions.
	ExamSentenceLimit = 200
	// FlashcardSentenceLimit bounds sentences grounding flashcards.
	FlashcardSentenceLimit = 150
)

var sentenceSplitRe = regexp.MustCompile(`[.!?]+`)

// ExtractSentences splits text on runs of sentence-terminal punctuation and
// keeps fragments whose trimmed length in runes is strictly between
// minSentenceLen and maxLen. When nothing survives and the text is non-empty,
// the text itself, truncated to maxLen, stands in as the single fragment so
// that text-grounded callers always have something to work with.
func ExtractSentences(text string, maxLen int) []string {
	var sentences []string
	for _, frag := range sentenceSplitRe.Split(text, -1) {
		s := strings.TrimSpace(frag)
		if n := utf8.RuneCountInString(s); n > minSentenceLen && n < maxLen {
			sentences = append(sentences, s)
		}
	}

	if len(sentences) == 0 && text != "" {
		sentences = []string{truncateRunes(text, maxLen)}
	}
	return sentences
}

// truncateRunes cuts s after n runes. Lengths are counted in runes
// everywhere sentences are measured, so a multibyte character is never
// split mid-sequence.
func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
