package models

import "time"

// StudyMaterial is a stored summary of user-supplied study text.
type StudyMaterial struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Topic     string    `json:"topic"`
	Content   string    `json:"content"`
	Length    int       `json:"length"`
	CreatedAt time.Time `json:"created_at"`
}

type Flashcard struct {
	ID         string     `json:"id"`
	Front      string     `json:"front"`
	Back       string     `json:"back"`
	Category   string     `json:"category"`
	Difficulty Difficulty `json:"difficulty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// ── Request Types ─────────────────────────────────────

type SummarizeRequest struct {
	Text  string `json:"text"`
	Topic string `json:"topic"`
}

type FlashcardsRequest struct {
	Text     string `json:"text"`
	Topic    string `json:"topic"`
	NumCards int    `json:"num_cards"`
}

type SuggestTopicsRequest struct {
	Text string `json:"text"`
}

// ── Response Types ────────────────────────────────────

type SummarizeResponse struct {
	Success        bool   `json:"success"`
	Summary        string `json:"summary"`
	Topic          string `json:"topic"`
	MaterialID     string `json:"material_id"`
	Saved          bool   `json:"saved"`
	OriginalLength int    `json:"original_length"`
}

type FlashcardsResponse struct {
	Success    bool        `json:"success"`
	Flashcards []Flashcard `json:"flashcards"`
	TotalCards int         `json:"total_cards"`
	Topic      string      `json:"topic"`
}

type SuggestTopicsResponse struct {
	Success     bool   `json:"success"`
	Suggestions string `json:"suggestions"`
	MainTopic   string `json:"main_topic"`
}

type MaterialListResponse struct {
	Success   bool            `json:"success"`
	Materials []StudyMaterial `json:"materials"`
	Count     int             `json:"count"`
}

type FlashcardListResponse struct {
	Success    bool        `json:"success"`
	Flashcards []Flashcard `json:"flashcards"`
	Count      int         `json:"count"`
}
