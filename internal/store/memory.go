package store

import (
	"sync"

	"github.com/camillamora/study-ai-companion-2026/internal/models"
)

// Memory is the in-process Store. One global lock serializes access;
// contention is low because every request touches the store only a handful
// of times, and a single user's sequential requests always observe their own
// prior writes.
type Memory struct {
	mu         sync.RWMutex
	users      map[string]models.User // keyed by username
	exams      map[string][]models.ExamRecord
	materials  map[string][]models.StudyMaterial
	flashcards map[string][]models.Flashcard
}

func NewMemory() *Memory {
	return &Memory{
		users:      make(map[string]models.User),
		exams:      make(map[string][]models.ExamRecord),
		materials:  make(map[string][]models.StudyMaterial),
		flashcards: make(map[string][]models.Flashcard),
	}
}

func (m *Memory) CreateUser(user models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.users[user.Username]; exists {
		return ErrUsernameTaken
	}
	m.users[user.Username] = user
	return nil
}

func (m *Memory) UserByUsername(username string) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[username]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}

func (m *Memory) AppendExam(userID string, rec models.ExamRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.exams[userID] = append(m.exams[userID], copyExamRecord(rec))
	return nil
}

func (m *Memory) ExamsByUser(userID string) ([]models.ExamRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	recs := m.exams[userID]
	out := make([]models.ExamRecord, len(recs))
	for i, rec := range recs {
		out[i] = copyExamRecord(rec)
	}
	return out, nil
}

func (m *Memory) FindExam(userID, examID string) (models.ExamRecord, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, rec := range m.exams[userID] {
		if rec.ExamID == examID {
			return copyExamRecord(rec), true, nil
		}
	}
	return models.ExamRecord{}, false, nil
}

func (m *Memory) AppendMaterial(userID string, mat models.StudyMaterial) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.materials[userID] = append(m.materials[userID], mat)
	return nil
}

func (m *Memory) MaterialsByUser(userID string) ([]models.StudyMaterial, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]models.StudyMaterial(nil), m.materials[userID]...), nil
}

func (m *Memory) MaterialByID(userID, materialID string) (models.StudyMaterial, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, mat := range m.materials[userID] {
		if mat.ID == materialID {
			return mat, true, nil
		}
	}
	return models.StudyMaterial{}, false, nil
}

func (m *Memory) AppendFlashcards(userID string, cards []models.Flashcard) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.flashcards[userID] = append(m.flashcards[userID], cards...)
	return nil
}

func (m *Memory) FlashcardsByUser(userID string) ([]models.Flashcard, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]models.Flashcard(nil), m.flashcards[userID]...), nil
}

// DeleteMaterial cascades across the three collections: summaries and
// flashcards match on id, exams on exam id.
func (m *Memory) DeleteMaterial(userID, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	mats := m.materials[userID][:0]
	for _, mat := range m.materials[userID] {
		if mat.ID != id {
			mats = append(mats, mat)
		}
	}
	m.materials[userID] = mats

	cards := m.flashcards[userID][:0]
	for _, card := range m.flashcards[userID] {
		if card.ID != id {
			cards = append(cards, card)
		}
	}
	m.flashcards[userID] = cards

	exams := m.exams[userID][:0]
	for _, rec := range m.exams[userID] {
		if rec.ExamID != id {
			exams = append(exams, rec)
		}
	}
	m.exams[userID] = exams

	return nil
}

// copyExamRecord snapshots a record deeply enough that the stored copy and
// the caller's copy cannot alias through the questions slice.
func copyExamRecord(rec models.ExamRecord) models.ExamRecord {
	out := rec
	out.Questions = make([]models.Question, len(rec.Questions))
	for i, q := range rec.Questions {
		out.Questions[i] = q
		out.Questions[i].Options = append([]string(nil), q.Options...)
	}
	return out
}
