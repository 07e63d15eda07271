package generator

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestBuildExamPrompt_ContainsFormatContract(t *testing.T) {
	prompt := BuildExamPrompt("The cell membrane regulates transport.", 4)

	if !strings.Contains(prompt, "Create 4 multiple-choice questions") {
		t.Errorf("expected question count in prompt, got %q", prompt)
	}
	if !strings.Contains(prompt, "The cell membrane regulates transport.") {
		t.Error("expected study material embedded in prompt")
	}
	for _, line := range []string{"Question 1:", "A)", "D)", "Correct:", "Explain:"} {
		if !strings.Contains(prompt, line) {
			t.Errorf("expected format contract line %q in prompt", line)
		}
	}
}

func TestBuildSuggestPrompt_TruncatesByRunes(t *testing.T) {
	prompt := BuildSuggestPrompt(strings.Repeat("é", 1200))

	if !utf8.ValidString(prompt) {
		t.Error("prompt contains invalid UTF-8 after truncation")
	}
	if got := strings.Count(prompt, "é"); got != suggestPromptLimit {
		t.Errorf("expected material truncated to %d characters, got %d", suggestPromptLimit, got)
	}
}
