package quiz

import (
	"strings"
	"unicode/utf8"
)

type InputKind int

const (
	// InputTooShort routes to text-grounded synthesis; it is never surfaced
	// as an error to the caller.
	InputTooShort InputKind = iota
	// InputPlaceholder means the text is a known default supplied by the
	// calling UI when the user entered no material; route to a static bank.
	InputPlaceholder
	// InputReal routes to the generative service with text-grounded backfill.
	InputReal
)

type Domain string

const (
	DomainScience Domain = "science"
	DomainHistory Domain = "history"
	DomainMath    Domain = "math"
	DomainMixed   Domain = "mixed"
)

type Classification struct {
	Kind   InputKind
	Domain Domain
}

// minRealTextLen is the trimmed length in runes below which text cannot
// carry enough material for generative questions.
const minRealTextLen = 50

// DefaultTriggerPhrases are the default texts the frontend submits when the
// user leaves the material field untouched. They are configuration, not
// classification logic: swap or extend the list without touching Classify.
func DefaultTriggerPhrases() []string {
	return []string{
		"General knowledge questions about science, history, and mathematics.",
		"general knowledge questions about science",
		"science, history, and mathematics",
	}
}

// Classifier routes study text by shallow containment heuristics.
type Classifier struct {
	triggers []string
}

// NewClassifier builds a classifier with the given trigger phrases, falling
// back to DefaultTriggerPhrases when nil. Pass an empty non-nil slice to
// disable placeholder detection entirely.
func NewClassifier(triggers []string) *Classifier {
	if triggers == nil {
		triggers = DefaultTriggerPhrases()
	}
	return &Classifier{triggers: triggers}
}

func (c *Classifier) Classify(text string) Classification {
	if utf8.RuneCountInString(strings.TrimSpace(text)) < minRealTextLen {
		return Classification{Kind: InputTooShort}
	}

	lower := strings.ToLower(text)
	for _, phrase := range c.triggers {
		if strings.Contains(lower, strings.ToLower(phrase)) {
			return Classification{Kind: InputPlaceholder, Domain: domainOf(lower)}
		}
	}

	return Classification{Kind: InputReal}
}

func domainOf(lower string) Domain {
	switch {
	case strings.Contains(lower, "science"):
		return DomainScience
	case strings.Contains(lower, "history"):
		return DomainHistory
	case strings.Contains(lower, "math"):
		return DomainMath
	default:
		return DomainMixed
	}
}
