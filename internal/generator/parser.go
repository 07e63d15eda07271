package generator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/camillamora/study-ai-companion-2026/internal/models"
)

// DefaultExplanation fills in for question blocks that carry no explain line.
const DefaultExplanation = "Based on the study material."

var (
	// "Question 3: ...", "Q3: ...", "3. ..." and "3: ..." all open a new block.
	questionHeaderRe = regexp.MustCompile(`(?i)^(?:question\s*\d+|q\d+|\d+)\s*[:.]\s*(.*)$`)
	// "A) text" or "A. text"; the separator must be followed by whitespace.
	optionLineRe = regexp.MustCompile(`^([A-D])[).]\s+(.*)$`)
)

// scanState is the scratch state of the line scanner: the question block
// being assembled. A block is flushed when the next header arrives or input
// ends, and only if it holds question text plus at least one option.
type scanState struct {
	question    string
	options     []string
	correct     string
	explanation string
}

func (st *scanState) reset(question string) {
	st.question = question
	st.options = nil
	st.correct = ""
	st.explanation = ""
}

func (st *scanState) addOption(text string) {
	if text == "" || len(st.options) >= models.OptionCount {
		return
	}
	st.options = append(st.options, text)
}

// setCorrect records the first alphabetic character of the label remainder,
// uppercased, if it names one of the four options.
func (st *scanState) setCorrect(rest string) {
	for _, r := range rest {
		if unicode.IsLetter(r) {
			letter := strings.ToUpper(string(r))
			if models.ValidCorrectAnswers[letter] {
				st.correct = letter
			}
			return
		}
	}
}

func (st *scanState) flushable() bool {
	return st.question != "" && len(st.options) > 0
}

// flush materializes the scratch state as a validated Question. Options are
// normalized to exactly four entries: under-supplied blocks are padded with
// empty strings, a documented fallback rather than a reason to drop the
// question.
func (st *scanState) flush(number int) models.Question {
	options := make([]string, models.OptionCount)
	copy(options, st.options)

	correct := st.correct
	if correct == "" {
		correct = "A"
	}
	explanation := st.explanation
	if explanation == "" {
		explanation = DefaultExplanation
	}

	return models.Question{
		ID:             uuid.NewString(),
		Question:       st.question,
		Options:        options,
		CorrectAnswer:  correct,
		Explanation:    explanation,
		Difficulty:     models.DifficultyMedium,
		Points:         models.QuestionPoints,
		QuestionNumber: number,
	}
}

// ParseQuizOutput scans model output line by line and recovers whatever
// well-formed question blocks it contains. Model output is unreliable in
// exact formatting, so partial records are recovered instead of failing the
// whole batch on one malformed line; unrecognized lines are skipped. The
// result is truncated to maxQuestions and may be empty, but parsing itself
// never fails.
func ParseQuizOutput(text string, maxQuestions int) []models.Question {
	if maxQuestions < 0 {
		maxQuestions = 0
	}

	questions := []models.Question{}
	st := &scanState{}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if m := questionHeaderRe.FindStringSubmatch(line); m != nil {
			if st.flushable() {
				questions = append(questions, st.flush(len(questions)+1))
			}
			st.reset(strings.TrimSpace(m[1]))
			continue
		}

		if m := optionLineRe.FindStringSubmatch(line); m != nil {
			st.addOption(strings.TrimSpace(m[2]))
			continue
		}

		if rest, ok := labelRemainder(line, "correct:"); ok {
			st.setCorrect(rest)
			continue
		}

		if rest, ok := labelRemainder(line, "explain:"); ok {
			st.explanation = strings.TrimSpace(rest)
			continue
		}
		// Anything else is noise, not an error.
	}

	if st.flushable() {
		questions = append(questions, st.flush(len(questions)+1))
	}

	if len(questions) > maxQuestions {
		questions = questions[:maxQuestions]
	}
	return questions
}

// labelRemainder strips a case-insensitive line label like "correct:".
func labelRemainder(line, label string) (string, bool) {
	if len(line) < len(label) {
		return "", false
	}
	if !strings.EqualFold(line[:len(label)], label) {
		return "", false
	}
	return line[len(label):], true
}

// FormatQuestions renders questions in the exact wire format the exam prompt
// demands. Feeding the result back through ParseQuizOutput recovers
// equivalent questions, which is what makes the format usable as the
// generation contract.
func FormatQuestions(questions []models.Question) string {
	var sb strings.Builder
	for i, q := range questions {
		fmt.Fprintf(&sb, "Question %d: %s\n", i+1, q.Question)
		for j, opt := range q.Options {
			if j >= models.OptionCount {
				break
			}
			fmt.Fprintf(&sb, "%c) %s\n", rune('A'+j), opt)
		}
		fmt.Fprintf(&sb, "Correct: %s\n", q.CorrectAnswer)
		fmt.Fprintf(&sb, "Explain: %s\n\n", q.Explanation)
	}
	return sb.String()
}
