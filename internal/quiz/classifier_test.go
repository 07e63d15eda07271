package quiz

import (
	"strings"
	"testing"
)

func TestClassify_TooShort(t *testing.T) {
	c := NewClassifier(nil)

	for _, text := range []string{"", "   ", "short note", strings.Repeat("x", 49)} {
		got := c.Classify(text)
		if got.Kind != InputTooShort {
			t.Errorf("Classify(%q): expected InputTooShort, got %v", text, got.Kind)
		}
	}
}

func TestClassify_LengthUsesTrimmedText(t *testing.T) {
	c := NewClassifier(nil)

	padded := "  " + strings.Repeat("x", 49) + "   "
	if got := c.Classify(padded); got.Kind != InputTooShort {
		t.Errorf("expected whitespace-padded short text to stay InputTooShort, got %v", got.Kind)
	}

	if got := c.Classify(strings.Repeat("x", 50)); got.Kind != InputReal {
		t.Errorf("expected 50 trimmed chars to be InputReal, got %v", got.Kind)
	}
}

func TestClassify_CountsRunesNotBytes(t *testing.T) {
	c := NewClassifier(nil)

	// 49 two-byte runes are 98 bytes; the bound is 50 characters.
	if got := c.Classify(strings.Repeat("é", 49)); got.Kind != InputTooShort {
		t.Errorf("expected 49-rune text to be InputTooShort, got %v", got.Kind)
	}
	if got := c.Classify(strings.Repeat("é", 50)); got.Kind != InputReal {
		t.Errorf("expected 50-rune text to be InputReal, got %v", got.Kind)
	}
}

func TestClassify_PlaceholderDomains(t *testing.T) {
	c := NewClassifier(nil)

	cases := []struct {
		text   string
		domain Domain
	}{
		{"General knowledge questions about science, history, and mathematics.", DomainScience},
		{"Please prepare GENERAL KNOWLEDGE QUESTIONS ABOUT SCIENCE for my class today", DomainScience},
	}
	for _, tc := range cases {
		got := c.Classify(tc.text)
		if got.Kind != InputPlaceholder {
			t.Errorf("Classify(%q): expected InputPlaceholder, got %v", tc.text, got.Kind)
			continue
		}
		if got.Domain != tc.domain {
			t.Errorf("Classify(%q): expected domain %q, got %q", tc.text, tc.domain, got.Domain)
		}
	}
}

func TestClassify_CustomTriggers(t *testing.T) {
	c := NewClassifier([]string{"standard history placeholder block"})

	text := "this request contains the standard history placeholder block somewhere inside"
	got := c.Classify(text)
	if got.Kind != InputPlaceholder {
		t.Fatalf("expected InputPlaceholder with custom trigger, got %v", got.Kind)
	}
	if got.Domain != DomainHistory {
		t.Errorf("expected history domain, got %q", got.Domain)
	}
}

func TestClassify_EmptyTriggersDisableDetection(t *testing.T) {
	c := NewClassifier([]string{})

	text := "General knowledge questions about science, history, and mathematics."
	if got := c.Classify(text); got.Kind != InputReal {
		t.Errorf("expected InputReal with detection disabled, got %v", got.Kind)
	}
}

func TestClassify_RealText(t *testing.T) {
	c := NewClassifier(nil)

	text := "Photosynthesis is the process by which green plants convert light energy into chemical energy stored in glucose."
	got := c.Classify(text)
	if got.Kind != InputReal {
		t.Errorf("expected InputReal, got %v", got.Kind)
	}
}

func TestDomainOf_Precedence(t *testing.T) {
	cases := []struct {
		text   string
		domain Domain
	}{
		{"science and history together", DomainScience},
		{"history and math together", DomainHistory},
		{"mathematics only", DomainMath},
		{"geography only", DomainMixed},
	}
	for _, tc := range cases {
		if got := domainOf(tc.text); got != tc.domain {
			t.Errorf("domainOf(%q): expected %q, got %q", tc.text, tc.domain, got)
		}
	}
}
