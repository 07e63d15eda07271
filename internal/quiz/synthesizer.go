package quiz

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/camillamora/study-ai-companion-2026/internal/models"
)

// textDistractors are the fixed wrong options paired with a sentence drawn
// from the material.
var textDistractors = []string{
	"Information not mentioned in the material",
	"Contradictory information",
	"Vague reference without specifics",
}

// genericFallbackOptions serve questions synthesized past the end of the
// material's usable sentences.
var genericFallbackOptions = []string{
	"Specific details from the study material",
	"General knowledge not from the material",
	"Unrelated information",
	"Contradictory statements",
}

// correctOptionLimit truncates long grounding sentences when used as the
// correct option.
const correctOptionLimit = 100

// SynthesizeFromText builds exactly n questions without any generative call:
// one per extracted sentence, topping up with generic topic questions once
// the material runs out of usable sentences. Used when no generative output
// exists and as backfill when the parser recovered too few questions.
func SynthesizeFromText(text, topic string, n int) []models.Question {
	if n <= 0 {
		return []models.Question{}
	}

	sentences := ExtractSentences(text, ExamSentenceLimit)

	questions := make([]models.Question, 0, n)
	for i := 0; i < n; i++ {
		if i < len(sentences) {
			questions = append(questions, sentenceQuestion(sentences[i], i+1))
		} else {
			questions = append(questions, genericQuestion(topic, i+1))
		}
	}
	return questions
}

// sentenceQuestion derives a question whose correct answer is the grounding
// sentence itself.
func sentenceQuestion(sentence string, number int) models.Question {
	words := strings.Fields(sentence)

	var stem string
	switch {
	case len(words) > 5 && firstKeyTerm(words) != "":
		stem = fmt.Sprintf("What does the material say about '%s'?", firstKeyTerm(words))
	case len(words) > 5:
		stem = fmt.Sprintf("What is described as '%s...'?", strings.Join(words[:5], " "))
	default:
		stem = "What key point is mentioned in the material?"
	}

	correct := sentence
	if utf8.RuneCountInString(correct) > correctOptionLimit {
		correct = truncateRunes(correct, correctOptionLimit) + "..."
	}

	return models.Question{
		ID:             uuid.NewString(),
		Question:       stem,
		Options:        append([]string{correct}, textDistractors...),
		CorrectAnswer:  "A",
		Explanation:    "The material specifically mentions: " + sentence,
		Difficulty:     models.DifficultyMedium,
		Points:         models.QuestionPoints,
		QuestionNumber: number,
	}
}

// genericQuestion is the topic-referencing fallback emitted when the
// material has fewer usable sentences than requested questions.
func genericQuestion(topic string, number int) models.Question {
	return models.Question{
		ID:             uuid.NewString(),
		Question:       fmt.Sprintf("What is an important concept about %s mentioned in the material?", topic),
		Options:        append([]string(nil), genericFallbackOptions...),
		CorrectAnswer:  "A",
		Explanation:    "The correct answer is based on the specific study material provided.",
		Difficulty:     models.DifficultyEasy,
		Points:         models.QuestionPoints,
		QuestionNumber: number,
	}
}

// firstKeyTerm returns the first capitalized word longer than 3 characters,
// a cheap stand-in for a proper noun worth asking about.
func firstKeyTerm(words []string) string {
	for _, w := range words {
		r := []rune(w)
		if len(r) > 3 && unicode.IsUpper(r[0]) {
			return w
		}
	}
	return ""
}
