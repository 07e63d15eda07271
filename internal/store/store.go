package store

import (
	"errors"

	"github.com/camillamora/study-ai-companion-2026/internal/models"
)

var (
	ErrUsernameTaken = errors.New("username already exists")
	ErrUserNotFound  = errors.New("user not found")
)

// Store is the per-user record store behind the pipeline: users plus three
// append-only collections keyed by owner id. The in-memory implementation is
// the default; the Postgres one is a drop-in swap, so pipeline logic never
// touches storage details.
type Store interface {
	// Users
	CreateUser(user models.User) error
	UserByUsername(username string) (models.User, error)

	// Exam history. Appended records are value snapshots: a later edit to a
	// live exam must not show up in the history, and vice versa.
	AppendExam(userID string, rec models.ExamRecord) error
	ExamsByUser(userID string) ([]models.ExamRecord, error)
	FindExam(userID, examID string) (models.ExamRecord, bool, error)

	// Study materials (summaries)
	AppendMaterial(userID string, m models.StudyMaterial) error
	MaterialsByUser(userID string) ([]models.StudyMaterial, error)
	MaterialByID(userID, materialID string) (models.StudyMaterial, bool, error)

	// Flashcards
	AppendFlashcards(userID string, cards []models.Flashcard) error
	FlashcardsByUser(userID string) ([]models.Flashcard, error)

	// DeleteMaterial removes every record sharing the identifier across
	// summaries, flashcards, and exams.
	DeleteMaterial(userID, id string) error
}
