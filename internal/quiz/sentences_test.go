package quiz

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestExtractSentences_SplitsOnTerminalPunctuation(t *testing.T) {
	text := "Photosynthesis converts light into chemical energy. Is that not remarkable? Plants feed the planet this way!"

	sentences := ExtractSentences(text, ExamSentenceLimit)
	if len(sentences) != 3 {
		t.Fatalf("expected 3 sentences, got %d: %v", len(sentences), sentences)
	}
	if sentences[1] != "Is that not remarkable" {
		t.Errorf("unexpected second sentence: %q", sentences[1])
	}
}

func TestExtractSentences_FiltersByLength(t *testing.T) {
	long := strings.Repeat("w", 210)
	text := "Too short. This sentence is long enough to keep for grounding. " + long + "."

	sentences := ExtractSentences(text, ExamSentenceLimit)
	if len(sentences) != 1 {
		t.Fatalf("expected 1 surviving sentence, got %d: %v", len(sentences), sentences)
	}
	if sentences[0] != "This sentence is long enough to keep for grounding" {
		t.Errorf("unexpected survivor: %q", sentences[0])
	}
}

func TestExtractSentences_BoundsAreStrict(t *testing.T) {
	exactlyMin := strings.Repeat("a", 20)
	if got := ExtractSentences(exactlyMin+". "+exactlyMin+".", ExamSentenceLimit); len(got) != 1 {
		// Both fragments are exactly 20 chars and fail the strict lower
		// bound, so only the truncated-text fallback remains.
		t.Errorf("expected single fallback fragment, got %d: %v", len(got), got)
	}

	// 150 chars fails the strict upper bound for flashcards; the raw text,
	// truncated to the cap, falls back.
	exactlyMax := strings.Repeat("b", 150)
	got := ExtractSentences(exactlyMax+".", FlashcardSentenceLimit)
	if len(got) != 1 || got[0] != exactlyMax {
		t.Errorf("expected truncated fallback fragment, got %v", got)
	}
}

func TestExtractSentences_FallbackFragment(t *testing.T) {
	text := "short"
	sentences := ExtractSentences(text, ExamSentenceLimit)
	if len(sentences) != 1 || sentences[0] != "short" {
		t.Fatalf("expected the raw text as fallback, got %v", sentences)
	}

	long := strings.Repeat("x", 300)
	sentences = ExtractSentences(long, ExamSentenceLimit)
	if len(sentences) != 1 {
		t.Fatalf("expected single truncated fallback, got %d", len(sentences))
	}
	if len(sentences[0]) != ExamSentenceLimit {
		t.Errorf("expected fallback truncated to %d chars, got %d", ExamSentenceLimit, len(sentences[0]))
	}
}

func TestExtractSentences_CountsRunesNotBytes(t *testing.T) {
	// 150 two-byte runes: 300 bytes, but well inside the 200-character bound.
	accented := strings.Repeat("é", 150)
	got := ExtractSentences(accented+".", ExamSentenceLimit)
	if len(got) != 1 || got[0] != accented {
		t.Fatalf("expected accented sentence kept, got %d fragments", len(got))
	}

	// The fallback truncation also counts runes and never splits one.
	long := strings.Repeat("é", 250)
	got = ExtractSentences(long, ExamSentenceLimit)
	if len(got) != 1 {
		t.Fatalf("expected single fallback fragment, got %d", len(got))
	}
	if !utf8.ValidString(got[0]) {
		t.Error("fallback fragment contains invalid UTF-8")
	}
	if n := utf8.RuneCountInString(got[0]); n != ExamSentenceLimit {
		t.Errorf("expected fallback of %d runes, got %d", ExamSentenceLimit, n)
	}
}

func TestExtractSentences_EmptyInput(t *testing.T) {
	if got := ExtractSentences("", ExamSentenceLimit); len(got) != 0 {
		t.Errorf("expected no sentences from empty input, got %v", got)
	}
}
