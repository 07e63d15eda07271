package study

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/camillamora/study-ai-companion-2026/internal/models"
	"github.com/camillamora/study-ai-companion-2026/internal/quiz"
	"github.com/camillamora/study-ai-companion-2026/internal/store"
)

// ErrMaterialTooShort rejects input with too little text to work with.
var ErrMaterialTooShort = errors.New("study material too short")

// AdviceGenerator is the slice of the generative client this service needs.
type AdviceGenerator interface {
	GenerateSummary(ctx context.Context, topic, text string) (string, error)
	GenerateStudyAdvice(ctx context.Context, text string) (string, error)
}

const (
	minSummaryTextLen   = 20
	maxSummaryTextLen   = 5000
	minFlashcardTextLen = 50
	minSuggestTextLen   = 50

	defaultFlashcardCount = 12
	maxFlashcardCount     = 20

	materialListLimit  = 10
	flashcardListLimit = 20

	DefaultTopic = "General"
)

// Service covers the study-material features around the quiz pipeline:
// summaries, flashcards, topic suggestions, listing, and cascading delete.
type Service struct {
	generator AdviceGenerator
	store     store.Store
}

func NewService(gen AdviceGenerator, st store.Store) *Service {
	return &Service{generator: gen, store: st}
}

// Summarize produces and stores a summary of the supplied material. When the
// generative service is unavailable the summary is built deterministically
// from the material's own sentences.
func (s *Service) Summarize(ctx context.Context, userID, text, topic string) (*models.StudyMaterial, error) {
	text = strings.TrimSpace(text)
	topic = strings.TrimSpace(topic)
	if topic == "" {
		topic = DefaultTopic
	}
	if utf8.RuneCountInString(text) < minSummaryTextLen {
		return nil, ErrMaterialTooShort
	}
	if utf8.RuneCountInString(text) > maxSummaryTextLen {
		text = truncateRunes(text, maxSummaryTextLen) + "... [truncated]"
	}

	summary, err := s.generator.GenerateSummary(ctx, topic, text)
	if err != nil {
		log.Printf("WARN: summary generation failed, building fallback summary: %v", err)
		summary = fallbackSummary(topic, text)
	}

	material := models.StudyMaterial{
		ID:        uuid.NewString(),
		Type:      "summary",
		Topic:     topic,
		Content:   summary,
		Length:    utf8.RuneCountInString(text),
		CreatedAt: time.Now(),
	}
	if err := s.store.AppendMaterial(userID, material); err != nil {
		return nil, fmt.Errorf("append material: %w", err)
	}
	return &material, nil
}

// CreateFlashcards derives up to numCards cards from the material's
// sentences, one per sentence, and stores them.
func (s *Service) CreateFlashcards(ctx context.Context, userID, text, topic string, numCards int) ([]models.Flashcard, error) {
	text = strings.TrimSpace(text)
	topic = strings.TrimSpace(topic)
	if topic == "" {
		topic = DefaultTopic
	}
	if utf8.RuneCountInString(text) < minFlashcardTextLen {
		return nil, ErrMaterialTooShort
	}
	if numCards <= 0 {
		numCards = defaultFlashcardCount
	}
	if numCards > maxFlashcardCount {
		numCards = maxFlashcardCount
	}

	sentences := quiz.ExtractSentences(text, quiz.FlashcardSentenceLimit)
	if len(sentences) > numCards {
		sentences = sentences[:numCards]
	}

	cards := make([]models.Flashcard, 0, len(sentences))
	now := time.Now()
	for _, sentence := range sentences {
		cards = append(cards, models.Flashcard{
			ID:         uuid.NewString(),
			Front:      flashcardFront(sentence),
			Back:       sentence,
			Category:   topic,
			Difficulty: models.DifficultyMedium,
			CreatedAt:  now,
		})
	}

	if err := s.store.AppendFlashcards(userID, cards); err != nil {
		return nil, fmt.Errorf("append flashcards: %w", err)
	}
	return cards, nil
}

// SuggestTopics returns study advice for the material. Short input gets a
// gentle prompt to add more; a failed generative call gets static advice.
// Neither case is an error.
func (s *Service) SuggestTopics(ctx context.Context, text string) *models.SuggestTopicsResponse {
	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) < minSuggestTextLen {
		return &models.SuggestTopicsResponse{
			Success:     true,
			Suggestions: "Please enter more study material for better suggestions.",
			MainTopic:   "General Study",
		}
	}

	advice, err := s.generator.GenerateStudyAdvice(ctx, text)
	if err != nil {
		log.Printf("WARN: study advice generation failed, using static advice: %v", err)
		advice = staticStudyAdvice
	}

	return &models.SuggestTopicsResponse{
		Success:     true,
		Suggestions: advice,
		MainTopic:   "Your Study Material",
	}
}

// ListMaterials returns the user's most recent summaries, newest last.
func (s *Service) ListMaterials(userID string) ([]models.StudyMaterial, error) {
	mats, err := s.store.MaterialsByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	if len(mats) > materialListLimit {
		mats = mats[len(mats)-materialListLimit:]
	}
	return mats, nil
}

// ListFlashcards returns the user's most recent flashcards, newest last.
func (s *Service) ListFlashcards(userID string) ([]models.Flashcard, error) {
	cards, err := s.store.FlashcardsByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("list flashcards: %w", err)
	}
	if len(cards) > flashcardListLimit {
		cards = cards[len(cards)-flashcardListLimit:]
	}
	return cards, nil
}

// GetMaterial fetches one stored summary by id.
func (s *Service) GetMaterial(userID, materialID string) (*models.StudyMaterial, bool, error) {
	mat, found, err := s.store.MaterialByID(userID, materialID)
	if err != nil {
		return nil, false, fmt.Errorf("get material: %w", err)
	}
	if !found {
		return nil, false, nil
	}
	return &mat, true, nil
}

// DeleteMaterial removes everything sharing the identifier: the summary, any
// flashcard with that id, and any exam record with that exam id.
func (s *Service) DeleteMaterial(userID, id string) error {
	if err := s.store.DeleteMaterial(userID, id); err != nil {
		return fmt.Errorf("delete material: %w", err)
	}
	return nil
}

// truncateRunes cuts s after n runes so multibyte characters survive the
// summary input cap intact.
func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// flashcardFront derives a card prompt from its sentence.
func flashcardFront(sentence string) string {
	words := strings.Fields(sentence)
	if len(words) > 5 {
		return fmt.Sprintf("What is the main point about '%s...'?", strings.Join(words[:3], " "))
	}
	return "What is described in this statement?"
}

// fallbackSummary assembles a serviceable summary from the material's own
// sentences when no generative output is available.
func fallbackSummary(topic, text string) string {
	var keyPoints []string
	for _, frag := range strings.Split(text, ".") {
		s := strings.TrimSpace(frag)
		if utf8.RuneCountInString(s) > minSummaryTextLen {
			keyPoints = append(keyPoints, s)
		}
		if len(keyPoints) == 5 {
			break
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "**COMPREHENSIVE SUMMARY: %s**\n\n", topic)
	sb.WriteString("**Main Summary:**\n")
	fmt.Fprintf(&sb, "This material provides in-depth coverage of %s. The content explores various aspects and principles essential for understanding this subject.\n\n", topic)
	sb.WriteString("**Key Points:**\n")
	for i, point := range keyPoints {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, point)
	}
	sb.WriteString("\n**Important Terms:**\n")
	fmt.Fprintf(&sb, "- Key terminology relevant to %s\n", topic)
	sb.WriteString("- Essential concepts explained\n")
	sb.WriteString("- Technical terms defined\n\n")
	sb.WriteString("**Study Value:**\n")
	sb.WriteString("This material offers valuable insights that can be applied in academic, professional, and practical contexts.")
	return sb.String()
}

const staticStudyAdvice = `Study Suggestions:

1. Break the material into smaller sections
2. Create summaries for each section
3. Make flashcards for key terms
4. Test yourself with practice questions
5. Review regularly for better retention`
