package quiz

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/camillamora/study-ai-companion-2026/internal/models"
)

func TestSynthesizeFromText_ExactCount(t *testing.T) {
	text := "The Krebs cycle produces energy carriers inside mitochondria. Glycolysis happens in the cytoplasm of the cell. Oxidative phosphorylation generates most of the ATP."

	for _, n := range []int{1, 3, 7} {
		questions := SynthesizeFromText(text, "Biology", n)
		if len(questions) != n {
			t.Errorf("n=%d: expected exactly %d questions, got %d", n, n, len(questions))
		}
	}

	if got := SynthesizeFromText(text, "Biology", 0); len(got) != 0 {
		t.Errorf("expected no questions for n=0, got %d", len(got))
	}
	if got := SynthesizeFromText(text, "Biology", -2); len(got) != 0 {
		t.Errorf("expected no questions for negative n, got %d", len(got))
	}
}

func TestSynthesizeFromText_SentenceQuestions(t *testing.T) {
	sentence := "The Krebs cycle produces energy carriers inside mitochondria"
	questions := SynthesizeFromText(sentence+".", "Biology", 1)

	if len(questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(questions))
	}
	q := questions[0]

	// "Krebs" is the first capitalized word past the sentence start worth
	// asking about, not counting the leading article.
	if !strings.Contains(q.Question, "Krebs") {
		t.Errorf("expected key-term stem, got %q", q.Question)
	}
	if q.Options[0] != sentence {
		t.Errorf("expected option A to be the sentence, got %q", q.Options[0])
	}
	if q.CorrectAnswer != "A" {
		t.Errorf("expected correct answer A, got %q", q.CorrectAnswer)
	}
	if len(q.Options) != 4 {
		t.Errorf("expected 4 options, got %d", len(q.Options))
	}
	if q.Difficulty != models.DifficultyMedium {
		t.Errorf("expected Medium difficulty, got %q", q.Difficulty)
	}
	if !strings.Contains(q.Explanation, sentence) {
		t.Errorf("expected explanation to cite the sentence, got %q", q.Explanation)
	}
}

func TestSynthesizeFromText_LongSentenceTruncatedInOption(t *testing.T) {
	sentence := "This grounding sentence keeps going well past the hundred character option limit because it describes several details of the topic"
	questions := SynthesizeFromText(sentence+".", "Topic", 1)

	opt := questions[0].Options[0]
	if len(opt) != correctOptionLimit+3 {
		t.Fatalf("expected option truncated to %d chars plus ellipsis, got %d", correctOptionLimit, len(opt))
	}
	if !strings.HasSuffix(opt, "...") {
		t.Errorf("expected ellipsis suffix, got %q", opt)
	}
	if !strings.HasPrefix(sentence, opt[:correctOptionLimit]) {
		t.Errorf("truncated option does not prefix the sentence")
	}
}

func TestSynthesizeFromText_MultibyteSentenceTruncation(t *testing.T) {
	// 126 runes of mostly two-byte characters: over the 100-rune option
	// limit, and any byte-indexed cut would land mid-rune.
	sentence := "Début " + strings.Repeat("é", 120)
	questions := SynthesizeFromText(sentence+".", "Topic", 1)

	opt := questions[0].Options[0]
	if !utf8.ValidString(opt) {
		t.Fatalf("option A contains invalid UTF-8: %q", opt)
	}
	if got := utf8.RuneCountInString(opt); got != correctOptionLimit+3 {
		t.Errorf("expected option of %d runes plus ellipsis, got %d runes", correctOptionLimit, got)
	}
	if !strings.HasPrefix(sentence, strings.TrimSuffix(opt, "...")) {
		t.Errorf("truncated option does not prefix the sentence")
	}
}

func TestSynthesizeFromText_GenericTopUp(t *testing.T) {
	// One usable sentence, three questions: positions 2 and 3 are generic.
	text := "Photosynthesis converts light energy into chemical energy."
	questions := SynthesizeFromText(text, "Botany", 3)

	if len(questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(questions))
	}

	for i, q := range questions[1:] {
		if !strings.Contains(q.Question, "Botany") {
			t.Errorf("generic question %d: expected topic in stem, got %q", i+2, q.Question)
		}
		if q.Difficulty != models.DifficultyEasy {
			t.Errorf("generic question %d: expected Easy, got %q", i+2, q.Difficulty)
		}
		if q.CorrectAnswer != "A" {
			t.Errorf("generic question %d: expected correct answer A, got %q", i+2, q.CorrectAnswer)
		}
		if q.Options[0] != genericFallbackOptions[0] {
			t.Errorf("generic question %d: unexpected options %v", i+2, q.Options)
		}
	}
}

func TestSynthesizeFromText_EmptyText(t *testing.T) {
	questions := SynthesizeFromText("", "Chemistry", 2)

	if len(questions) != 2 {
		t.Fatalf("expected 2 questions from empty text, got %d", len(questions))
	}
	for i, q := range questions {
		if q.Difficulty != models.DifficultyEasy {
			t.Errorf("question %d: expected Easy generic question, got %q", i+1, q.Difficulty)
		}
	}
}

func TestFirstKeyTerm(t *testing.T) {
	cases := []struct {
		words []string
		want  string
	}{
		{[]string{"The", "Krebs", "cycle"}, "Krebs"},
		{[]string{"the", "cell", "membrane"}, ""},
		{[]string{"An", "Ion", "channel"}, ""},
	}
	for _, tc := range cases {
		if got := firstKeyTerm(tc.words); got != tc.want {
			t.Errorf("firstKeyTerm(%v): expected %q, got %q", tc.words, tc.want, got)
		}
	}
}
