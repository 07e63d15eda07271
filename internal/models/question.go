package models

import "time"

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

type ExamStatus string

const (
	ExamCreated   ExamStatus = "created"
	ExamActive    ExamStatus = "active"
	ExamCompleted ExamStatus = "completed"
)

// OptionCount is the number of answer options every served question carries.
// Under-supplied questions are padded with empty options rather than dropped.
const OptionCount = 4

// QuestionPoints is the fixed point value of every question.
const QuestionPoints = 10

var ValidCorrectAnswers = map[string]bool{"A": true, "B": true, "C": true, "D": true}

// ── Core Structs ───────────────────────────────────────

type Question struct {
	ID             string     `json:"id"`
	Question       string     `json:"question"`
	Options        []string   `json:"options"`
	CorrectAnswer  string     `json:"correct_answer"`
	Explanation    string     `json:"explanation"`
	Difficulty     Difficulty `json:"difficulty"`
	Points         int        `json:"points"`
	QuestionNumber int        `json:"question_number"`
}

// Exam is the live object held in the active-exam registry while a user
// is taking it. It is lost on process restart.
type Exam struct {
	ExamID          string     `json:"exam_id"`
	UserID          string     `json:"user_id"`
	Type            string     `json:"type"`
	Questions       []Question `json:"questions"`
	TotalQuestions  int        `json:"total_questions"`
	TotalPoints     int        `json:"total_points"`
	CreatedAt       time.Time  `json:"created_at"`
	CurrentQuestion int        `json:"current_question"`
	Score           int        `json:"score"`
	Status          ExamStatus `json:"status"`
}

// ExamRecord is the reduced form appended to a user's exam history.
// It carries no live mutable fields; the registry copy and the history
// copy are independent value snapshots.
type ExamRecord struct {
	ExamID         string     `json:"exam_id"`
	Type           string     `json:"type"`
	Questions      []Question `json:"questions"`
	TotalQuestions int        `json:"total_questions"`
	TotalPoints    int        `json:"total_points,omitempty"`
	Score          int        `json:"score,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	Status         ExamStatus `json:"status"`
}

// ── Request Types ─────────────────────────────────────

type CreateExamRequest struct {
	Text         string `json:"text"`
	Type         string `json:"type"`
	NumQuestions int    `json:"num_questions"`
}

type SaveExamResultRequest struct {
	ExamID      string `json:"exam_id"`
	Type        string `json:"type"`
	Score       int    `json:"score"`
	TotalPoints int    `json:"total_points"`
}

// ── Response Types ────────────────────────────────────

type CreateExamResponse struct {
	Success        bool       `json:"success"`
	ExamID         string     `json:"exam_id"`
	Questions      []Question `json:"questions"`
	Exam           *Exam      `json:"exam"`
	TotalQuestions int        `json:"total_questions"`
	Message        string     `json:"message"`
}

type GetExamResponse struct {
	Success bool       `json:"success"`
	Exam    ExamRecord `json:"exam"`
}

type ExamListResponse struct {
	Success bool         `json:"success"`
	Exams   []ExamRecord `json:"exams"`
	Count   int          `json:"count"`
}
