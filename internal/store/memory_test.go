package store

import (
	"errors"
	"testing"
	"time"

	"github.com/camillamora/study-ai-companion-2026/internal/models"
)

func sampleRecord(examID string) models.ExamRecord {
	return models.ExamRecord{
		ExamID: examID,
		Type:   "Study Material",
		Questions: []models.Question{
			{
				ID:            "q1",
				Question:      "What is tested here?",
				Options:       []string{"storage", "parsing", "routing", "auth"},
				CorrectAnswer: "A",
			},
		},
		TotalQuestions: 1,
		Status:         models.ExamCreated,
		CreatedAt:      time.Now(),
	}
}

func TestMemory_CreateUser(t *testing.T) {
	m := NewMemory()

	user := models.User{ID: "u1", Username: "camilla", Password: "hash"}
	if err := m.CreateUser(user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := m.UserByUsername("camilla")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "u1" {
		t.Errorf("expected user u1, got %q", got.ID)
	}

	if err := m.CreateUser(user); !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("expected ErrUsernameTaken, got: %v", err)
	}
	if _, err := m.UserByUsername("nobody"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got: %v", err)
	}
}

func TestMemory_ExamRoundTrip(t *testing.T) {
	m := NewMemory()

	if err := m.AppendExam("u1", sampleRecord("e1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.AppendExam("u1", sampleRecord("e2")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	recs, err := m.ExamsByUser("u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].ExamID != "e1" || recs[1].ExamID != "e2" {
		t.Errorf("expected append order preserved, got %s then %s", recs[0].ExamID, recs[1].ExamID)
	}

	rec, found, err := m.FindExam("u1", "e2")
	if err != nil || !found {
		t.Fatalf("expected e2 found, got found=%v err=%v", found, err)
	}
	if rec.ExamID != "e2" {
		t.Errorf("expected e2, got %q", rec.ExamID)
	}

	if _, found, _ := m.FindExam("u1", "missing"); found {
		t.Error("expected missing exam not found")
	}
	if _, found, _ := m.FindExam("u2", "e1"); found {
		t.Error("expected other user's lookup to miss")
	}
}

func TestMemory_ExamSnapshotIsolation(t *testing.T) {
	m := NewMemory()

	rec := sampleRecord("e1")
	if err := m.AppendExam("u1", rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Mutations on the caller's copy must not reach the stored record.
	rec.Questions[0].Options[0] = "mutated"
	rec.Questions[0].Question = "mutated"

	got, _, err := m.FindExam("u1", "e1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Questions[0].Options[0] == "mutated" || got.Questions[0].Question == "mutated" {
		t.Error("stored record aliases the appended value")
	}

	// And mutations on a read result must not reach the store either.
	got.Questions[0].Options[0] = "mutated again"
	reread, _, _ := m.FindExam("u1", "e1")
	if reread.Questions[0].Options[0] == "mutated again" {
		t.Error("read result aliases the stored record")
	}
}

func TestMemory_MaterialsAndFlashcards(t *testing.T) {
	m := NewMemory()

	mat := models.StudyMaterial{ID: "m1", Type: "summary", Topic: "Biology", Content: "summary text"}
	if err := m.AppendMaterial("u1", mat); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mats, err := m.MaterialsByUser("u1")
	if err != nil || len(mats) != 1 {
		t.Fatalf("expected 1 material, got %d err=%v", len(mats), err)
	}

	got, found, err := m.MaterialByID("u1", "m1")
	if err != nil || !found {
		t.Fatalf("expected m1 found, got found=%v err=%v", found, err)
	}
	if got.Topic != "Biology" {
		t.Errorf("unexpected topic %q", got.Topic)
	}
	if _, found, _ := m.MaterialByID("u2", "m1"); found {
		t.Error("expected other user's material lookup to miss")
	}

	cards := []models.Flashcard{
		{ID: "c1", Front: "front one", Back: "back one"},
		{ID: "c2", Front: "front two", Back: "back two"},
	}
	if err := m.AppendFlashcards("u1", cards); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	gotCards, err := m.FlashcardsByUser("u1")
	if err != nil || len(gotCards) != 2 {
		t.Fatalf("expected 2 flashcards, got %d err=%v", len(gotCards), err)
	}
}

func TestMemory_DeleteMaterialCascades(t *testing.T) {
	m := NewMemory()

	// One shared id across all three collections, plus survivors.
	if err := m.AppendMaterial("u1", models.StudyMaterial{ID: "shared"}); err != nil {
		t.Fatal(err)
	}
	if err := m.AppendMaterial("u1", models.StudyMaterial{ID: "keep-mat"}); err != nil {
		t.Fatal(err)
	}
	if err := m.AppendFlashcards("u1", []models.Flashcard{{ID: "shared"}, {ID: "keep-card"}}); err != nil {
		t.Fatal(err)
	}
	if err := m.AppendExam("u1", models.ExamRecord{ExamID: "shared"}); err != nil {
		t.Fatal(err)
	}
	if err := m.AppendExam("u1", models.ExamRecord{ExamID: "keep-exam"}); err != nil {
		t.Fatal(err)
	}

	if err := m.DeleteMaterial("u1", "shared"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mats, _ := m.MaterialsByUser("u1")
	if len(mats) != 1 || mats[0].ID != "keep-mat" {
		t.Errorf("expected only keep-mat to survive, got %v", mats)
	}
	cards, _ := m.FlashcardsByUser("u1")
	if len(cards) != 1 || cards[0].ID != "keep-card" {
		t.Errorf("expected only keep-card to survive, got %v", cards)
	}
	if _, found, _ := m.FindExam("u1", "shared"); found {
		t.Error("expected shared exam record deleted")
	}
	if _, found, _ := m.FindExam("u1", "keep-exam"); !found {
		t.Error("expected keep-exam record to survive")
	}
}

func TestMemory_DeleteMaterialScopedToUser(t *testing.T) {
	m := NewMemory()

	if err := m.AppendMaterial("u1", models.StudyMaterial{ID: "m1"}); err != nil {
		t.Fatal(err)
	}
	if err := m.AppendMaterial("u2", models.StudyMaterial{ID: "m1"}); err != nil {
		t.Fatal(err)
	}

	if err := m.DeleteMaterial("u1", "m1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if mats, _ := m.MaterialsByUser("u2"); len(mats) != 1 {
		t.Errorf("expected u2's material untouched, got %d", len(mats))
	}
}
