package quiz

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/camillamora/study-ai-companion-2026/internal/generator"
	"github.com/camillamora/study-ai-companion-2026/internal/models"
	"github.com/camillamora/study-ai-companion-2026/internal/store"
)

// ErrExamNotFound is the only lookup failure CreateExam's callers ever see;
// every input-quality problem degrades to fallback generation instead.
var ErrExamNotFound = errors.New("exam not found")

// TextGenerator is the one external collaborator of the pipeline: a fallible
// call into the generative text service.
type TextGenerator interface {
	GenerateExamQuestions(ctx context.Context, text string, count int) (string, error)
}

const (
	minQuestionCount = 1
	maxQuestionCount = 10

	// maxPromptTextLen bounds how much material goes into a generation
	// prompt; longer input is cut and marked.
	maxPromptTextLen = 3000
	truncationMarker = "... [truncated]"

	// repairQuestionCount sizes the mixed set patched into an exam record
	// that was saved without questions.
	repairQuestionCount = 3

	// examHistoryLimit caps how many history records a listing returns.
	examHistoryLimit = 5

	DefaultExamType = "Study Material"
)

// Service owns exam construction: it classifies the input, runs the
// generative parse / static bank / text-grounded fallback chain, and keeps
// the active-exam registry plus each user's exam history.
type Service struct {
	generator  TextGenerator
	classifier *Classifier
	store      store.Store

	// Active exams are ephemeral by design: keyed by exam id, gone on
	// restart. The user's history in the store is the durable-ish copy.
	mu     sync.RWMutex
	active map[string]models.Exam
}

func NewService(gen TextGenerator, classifier *Classifier, st store.Store) *Service {
	if classifier == nil {
		classifier = NewClassifier(nil)
	}
	return &Service{
		generator:  gen,
		classifier: classifier,
		store:      st,
		active:     make(map[string]models.Exam),
	}
}

// CreateExam converts study text into an exam with exactly count questions,
// count clamped to [1,10]. It cannot fail on input quality: too-short text,
// an unavailable generative service, and malformed model output all degrade
// through the fallback chain.
func (s *Service) CreateExam(ctx context.Context, userID, text, examType string, count int) (*models.Exam, error) {
	text = strings.TrimSpace(text)
	if examType == "" {
		examType = DefaultExamType
	}
	count = clampCount(count)

	questions := s.buildQuestions(ctx, text, examType, count)

	exam := models.Exam{
		ExamID:         uuid.NewString(),
		UserID:         userID,
		Type:           examType,
		Questions:      questions,
		TotalQuestions: len(questions),
		TotalPoints:    len(questions) * models.QuestionPoints,
		CreatedAt:      time.Now(),
		Status:         models.ExamActive,
	}

	s.mu.Lock()
	s.active[exam.ExamID] = snapshotExam(exam)
	s.mu.Unlock()

	// The history gets a reduced snapshot without the live mutable fields.
	record := models.ExamRecord{
		ExamID:         exam.ExamID,
		Type:           examType,
		Questions:      snapshotQuestions(questions),
		TotalQuestions: len(questions),
		CreatedAt:      exam.CreatedAt,
		Status:         models.ExamCreated,
	}
	if err := s.store.AppendExam(userID, record); err != nil {
		return nil, fmt.Errorf("append exam history: %w", err)
	}

	log.Printf("CreateExam: exam %s created with %d questions for user %s", exam.ExamID, len(questions), userID)
	return &exam, nil
}

// buildQuestions dispatches on the classification and then enforces the
// cardinality guarantee: the result always has exactly count questions,
// numbered 1..count.
func (s *Service) buildQuestions(ctx context.Context, text, examType string, count int) []models.Question {
	var questions []models.Question

	c := s.classifier.Classify(text)
	switch c.Kind {
	case InputTooShort:
		log.Printf("CreateExam: text too short (%d chars), using text-grounded questions", utf8.RuneCountInString(text))
		questions = SynthesizeFromText(text, examType, count)
	case InputPlaceholder:
		log.Printf("CreateExam: placeholder text detected, using %s bank", c.Domain)
		questions = BankQuestions(c.Domain, count)
	default:
		questions = s.generateFromMaterial(ctx, text, examType, count)
	}

	if len(questions) == 0 {
		questions = MixedQuestions(count)
	}
	if len(questions) > count {
		questions = questions[:count]
	}
	for len(questions) < count {
		questions = append(questions, genericQuestion(examType, len(questions)+1))
	}

	// Renumber after any composition so the sequence is contiguous.
	for i := range questions {
		questions[i].QuestionNumber = i + 1
	}
	return questions
}

// generateFromMaterial makes the single generative attempt and backfills any
// shortfall from the same (possibly truncated) text. A failed call is logged
// and absorbed, never surfaced.
func (s *Service) generateFromMaterial(ctx context.Context, text, examType string, count int) []models.Question {
	if utf8.RuneCountInString(text) > maxPromptTextLen {
		text = truncateRunes(text, maxPromptTextLen) + truncationMarker
	}

	var questions []models.Question
	raw, err := s.generator.GenerateExamQuestions(ctx, text, count)
	if err != nil {
		log.Printf("WARN: generative service unavailable, using text-grounded questions: %v", err)
	} else {
		questions = generator.ParseQuizOutput(raw, count)
	}

	if len(questions) < count {
		if len(questions) > 0 {
			log.Printf("CreateExam: parsed %d of %d questions, backfilling from text", len(questions), count)
		}
		questions = append(questions, SynthesizeFromText(text, examType, count-len(questions))...)
	}
	return questions
}

// GetExam looks an exam up by id for its owner: history first, then the
// active registry. Records saved without questions (externally supplied
// results) are repaired with a small mixed set before being returned.
func (s *Service) GetExam(userID, examID string) (*models.ExamRecord, error) {
	rec, found, err := s.store.FindExam(userID, examID)
	if err != nil {
		return nil, fmt.Errorf("lookup exam history: %w", err)
	}

	if !found {
		s.mu.RLock()
		exam, live := s.active[examID]
		s.mu.RUnlock()

		if !live || exam.UserID != userID {
			return nil, ErrExamNotFound
		}
		rec = models.ExamRecord{
			ExamID:         exam.ExamID,
			Type:           exam.Type,
			Questions:      snapshotQuestions(exam.Questions),
			TotalQuestions: exam.TotalQuestions,
			TotalPoints:    exam.TotalPoints,
			Score:          exam.Score,
			CreatedAt:      exam.CreatedAt,
			Status:         exam.Status,
		}
	}

	if len(rec.Questions) == 0 {
		rec.Questions = MixedQuestions(repairQuestionCount)
		rec.TotalQuestions = len(rec.Questions)
	}
	return &rec, nil
}

// SaveExamResult appends a completed-exam record to the owner's history.
func (s *Service) SaveExamResult(userID string, req models.SaveExamResultRequest) error {
	rec := models.ExamRecord{
		ExamID:      req.ExamID,
		Type:        req.Type,
		Score:       req.Score,
		TotalPoints: req.TotalPoints,
		CreatedAt:   time.Now(),
		Status:      models.ExamCompleted,
	}
	if err := s.store.AppendExam(userID, rec); err != nil {
		return fmt.Errorf("append exam result: %w", err)
	}
	return nil
}

// ListExams returns the user's most recent history records, newest last.
func (s *Service) ListExams(userID string) ([]models.ExamRecord, error) {
	recs, err := s.store.ExamsByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("list exams: %w", err)
	}
	if len(recs) > examHistoryLimit {
		recs = recs[len(recs)-examHistoryLimit:]
	}
	return recs, nil
}

// ParseGenerativeOutput is exposed for the calling layer's diagnostics and
// testing; it is the same parser CreateExam uses internally.
func (s *Service) ParseGenerativeOutput(text string, maxQuestions int) []models.Question {
	return generator.ParseQuizOutput(text, maxQuestions)
}

func clampCount(n int) int {
	if n < minQuestionCount {
		return minQuestionCount
	}
	if n > maxQuestionCount {
		return maxQuestionCount
	}
	return n
}

func snapshotQuestions(questions []models.Question) []models.Question {
	out := make([]models.Question, len(questions))
	for i, q := range questions {
		out[i] = q
		out[i].Options = append([]string(nil), q.Options...)
	}
	return out
}

func snapshotExam(exam models.Exam) models.Exam {
	exam.Questions = snapshotQuestions(exam.Questions)
	return exam
}
