package quiz

import (
	"fmt"

	"github.com/camillamora/study-ai-companion-2026/internal/models"
)

// The static banks are fixed, hand-curated pools used when the caller
// submitted a known placeholder text instead of real study material.
// Truncation is positional, never sampled, so the same request always
// yields the same questions.

var sciencePool = []models.Question{
	{
		ID:             "sci1",
		Question:       "What is the process by which plants convert sunlight into chemical energy?",
		Options:        []string{"Photosynthesis", "Respiration", "Fermentation", "Transpiration"},
		CorrectAnswer:  "A",
		Explanation:    "Photosynthesis is the process where plants use sunlight to convert carbon dioxide and water into glucose and oxygen.",
		Difficulty:     models.DifficultyEasy,
		Points:         models.QuestionPoints,
		QuestionNumber: 1,
	},
	{
		ID:             "sci2",
		Question:       "Which organelle is responsible for protein synthesis in cells?",
		Options:        []string{"Mitochondria", "Ribosome", "Nucleus", "Golgi Apparatus"},
		CorrectAnswer:  "B",
		Explanation:    "Ribosomes are the cellular structures where proteins are synthesized from amino acids.",
		Difficulty:     models.DifficultyMedium,
		Points:         models.QuestionPoints,
		QuestionNumber: 2,
	},
	{
		ID:             "sci3",
		Question:       "What is the chemical symbol for water?",
		Options:        []string{"H2O", "CO2", "O2", "NaCl"},
		CorrectAnswer:  "A",
		Explanation:    "H2O represents two hydrogen atoms bonded to one oxygen atom, which is the chemical formula for water.",
		Difficulty:     models.DifficultyEasy,
		Points:         models.QuestionPoints,
		QuestionNumber: 3,
	},
	{
		ID:             "sci4",
		Question:       "Which planet in our solar system has the most moons?",
		Options:        []string{"Jupiter", "Saturn", "Uranus", "Neptune"},
		CorrectAnswer:  "B",
		Explanation:    "As of recent discoveries, Saturn has over 140 confirmed moons, more than any other planet in our solar system.",
		Difficulty:     models.DifficultyMedium,
		Points:         models.QuestionPoints,
		QuestionNumber: 4,
	},
	{
		ID:             "sci5",
		Question:       "What is the main function of red blood cells?",
		Options:        []string{"Fight infection", "Transport oxygen", "Clot blood", "Produce antibodies"},
		CorrectAnswer:  "B",
		Explanation:    "Red blood cells contain hemoglobin which binds to oxygen and transports it throughout the body.",
		Difficulty:     models.DifficultyMedium,
		Points:         models.QuestionPoints,
		QuestionNumber: 5,
	},
}

var historyPool = []models.Question{
	{
		ID:             "his1",
		Question:       "Who invented the printing press with movable type?",
		Options:        []string{"Thomas Edison", "Johannes Gutenberg", "Alexander Graham Bell", "Leonardo da Vinci"},
		CorrectAnswer:  "B",
		Explanation:    "Johannes Gutenberg invented the printing press around 1440, revolutionizing the spread of information.",
		Difficulty:     models.DifficultyEasy,
		Points:         models.QuestionPoints,
		QuestionNumber: 1,
	},
	{
		ID:             "his2",
		Question:       "Which ancient civilization built the Great Wall?",
		Options:        []string{"Roman Empire", "Chinese Dynasties", "Egyptian Kingdom", "Mayan Civilization"},
		CorrectAnswer:  "B",
		Explanation:    "Various Chinese dynasties built and maintained the Great Wall over centuries for defense.",
		Difficulty:     models.DifficultyMedium,
		Points:         models.QuestionPoints,
		QuestionNumber: 2,
	},
	{
		ID:             "his3",
		Question:       "What year did World War I begin?",
		Options:        []string{"1912", "1914", "1916", "1918"},
		CorrectAnswer:  "B",
		Explanation:    "World War I began in 1914 after the assassination of Archduke Franz Ferdinand.",
		Difficulty:     models.DifficultyMedium,
		Points:         models.QuestionPoints,
		QuestionNumber: 3,
	},
}

var mathPool = []models.Question{
	{
		ID:             "math1",
		Question:       "What is the value of pi to two decimal places?",
		Options:        []string{"3.14", "2.71", "1.61", "4.13"},
		CorrectAnswer:  "A",
		Explanation:    "Pi is approximately 3.14159, which rounds to 3.14 to two decimal places.",
		Difficulty:     models.DifficultyEasy,
		Points:         models.QuestionPoints,
		QuestionNumber: 1,
	},
	{
		ID:             "math2",
		Question:       "What is the Pythagorean theorem formula?",
		Options:        []string{"a² + b² = c²", "E = mc²", "F = ma", "V = IR"},
		CorrectAnswer:  "A",
		Explanation:    "The Pythagorean theorem states that in a right triangle, a² + b² = c², where c is the hypotenuse.",
		Difficulty:     models.DifficultyMedium,
		Points:         models.QuestionPoints,
		QuestionNumber: 2,
	},
	{
		ID:             "math3",
		Question:       "What is the area of a circle with radius 5?",
		Options:        []string{"25π", "10π", "100π", "5π"},
		CorrectAnswer:  "A",
		Explanation:    "Area of a circle = πr² = π × 5² = 25π.",
		Difficulty:     models.DifficultyMedium,
		Points:         models.QuestionPoints,
		QuestionNumber: 3,
	},
}

func ScienceQuestions(n int) []models.Question { return takeQuestions(sciencePool, n) }

func HistoryQuestions(n int) []models.Question { return takeQuestions(historyPool, n) }

func MathQuestions(n int) []models.Question { return takeQuestions(mathPool, n) }

// MixedQuestions composes up to 2 questions from each domain, science first,
// then renumbers and retags ids as mixed1..mixedK so the result cannot
// collide with pool-native ids.
func MixedQuestions(n int) []models.Question {
	if n < 0 {
		n = 0
	}

	mixed := ScienceQuestions(min(2, n))
	if len(mixed) < n {
		mixed = append(mixed, HistoryQuestions(min(2, n-len(mixed)))...)
	}
	if len(mixed) < n {
		mixed = append(mixed, MathQuestions(min(2, n-len(mixed)))...)
	}

	for i := range mixed {
		mixed[i].QuestionNumber = i + 1
		mixed[i].ID = fmt.Sprintf("mixed%d", i+1)
	}

	if len(mixed) > n {
		mixed = mixed[:n]
	}
	return mixed
}

// BankQuestions dispatches to the bank for the classified domain.
func BankQuestions(domain Domain, n int) []models.Question {
	switch domain {
	case DomainScience:
		return ScienceQuestions(n)
	case DomainHistory:
		return HistoryQuestions(n)
	case DomainMath:
		return MathQuestions(n)
	default:
		return MixedQuestions(n)
	}
}

// takeQuestions copies the first n pool entries. Copies are deep enough that
// callers may renumber or retag without touching the immutable pools.
func takeQuestions(pool []models.Question, n int) []models.Question {
	if n < 0 {
		n = 0
	}
	if n > len(pool) {
		n = len(pool)
	}

	out := make([]models.Question, n)
	for i := range out {
		out[i] = pool[i]
		out[i].Options = append([]string(nil), pool[i].Options...)
	}
	return out
}
