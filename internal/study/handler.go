package study

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/camillamora/study-ai-companion-2026/internal/models"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func getUserID(r *http.Request) (string, bool) {
	uid, ok := r.Context().Value("user_id").(string)
	return uid, ok
}

func (h *Handler) Summarize(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Please login first"})
		return
	}

	var req models.SummarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	material, err := h.service.Summarize(r.Context(), userID, req.Text, req.Topic)
	if err != nil {
		if errors.Is(err, ErrMaterialTooShort) {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Please provide more text to summarize"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to create summary"})
		return
	}

	writeJSON(w, http.StatusOK, models.SummarizeResponse{
		Success:        true,
		Summary:        material.Content,
		Topic:          material.Topic,
		MaterialID:     material.ID,
		Saved:          true,
		OriginalLength: material.Length,
	})
}

func (h *Handler) CreateFlashcards(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Please login first"})
		return
	}

	var req models.FlashcardsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	cards, err := h.service.CreateFlashcards(r.Context(), userID, req.Text, req.Topic, req.NumCards)
	if err != nil {
		if errors.Is(err, ErrMaterialTooShort) {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Please provide more text for flashcards"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to create flashcards"})
		return
	}
	if cards == nil {
		cards = []models.Flashcard{}
	}

	topic := req.Topic
	if topic == "" {
		topic = DefaultTopic
	}
	writeJSON(w, http.StatusOK, models.FlashcardsResponse{
		Success:    true,
		Flashcards: cards,
		TotalCards: len(cards),
		Topic:      topic,
	})
}

func (h *Handler) SuggestTopics(w http.ResponseWriter, r *http.Request) {
	if _, ok := getUserID(r); !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Please login first"})
		return
	}

	var req models.SuggestTopicsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	writeJSON(w, http.StatusOK, h.service.SuggestTopics(r.Context(), req.Text))
}

func (h *Handler) ListMaterials(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Please login first"})
		return
	}

	mats, err := h.service.ListMaterials(userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to list materials"})
		return
	}
	if mats == nil {
		mats = []models.StudyMaterial{}
	}

	writeJSON(w, http.StatusOK, models.MaterialListResponse{Success: true, Materials: mats, Count: len(mats)})
}

func (h *Handler) GetMaterial(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Please login first"})
		return
	}

	materialID := mux.Vars(r)["material_id"]

	material, found, err := h.service.GetMaterial(userID, materialID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to fetch material"})
		return
	}
	if !found {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Material not found"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "material": material})
}

func (h *Handler) ListFlashcards(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Please login first"})
		return
	}

	cards, err := h.service.ListFlashcards(userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to list flashcards"})
		return
	}
	if cards == nil {
		cards = []models.Flashcard{}
	}

	writeJSON(w, http.StatusOK, models.FlashcardListResponse{Success: true, Flashcards: cards, Count: len(cards)})
}

func (h *Handler) DeleteMaterial(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Please login first"})
		return
	}

	materialID := mux.Vars(r)["material_id"]

	if err := h.service.DeleteMaterial(userID, materialID); err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to delete material"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Material deleted"})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
