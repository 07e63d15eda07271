package quiz

import (
	"encoding/json"
	"errors"
	"fmt"
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

// getUserID extracts the authenticated user ID from the request context.
func getUserID(r *http.Request) (string, bool) {
	uid, ok := r.Context().Value("user_id").(string)
	return uid, ok
}

const defaultQuestionCount = 5

func (h *Handler) CreateExam(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Please login first"})
		return
	}

	var req models.CreateExamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if req.NumQuestions == 0 {
		req.NumQuestions = defaultQuestionCount
	}

	exam, err := h.service.CreateExam(r.Context(), userID, req.Text, req.Type, req.NumQuestions)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to create exam"})
		return
	}

	writeJSON(w, http.StatusOK, models.CreateExamResponse{
		Success:        true,
		ExamID:         exam.ExamID,
		Questions:      exam.Questions,
		Exam:           exam,
		TotalQuestions: exam.TotalQuestions,
		Message:        fmt.Sprintf("Exam created with %d questions", exam.TotalQuestions),
	})
}

func (h *Handler) GetExam(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Please login first"})
		return
	}

	examID := mux.Vars(r)["exam_id"]

	rec, err := h.service.GetExam(userID, examID)
	if err != nil {
		if errors.Is(err, ErrExamNotFound) {
			writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Exam not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to fetch exam"})
		return
	}

	writeJSON(w, http.StatusOK, models.GetExamResponse{Success: true, Exam: *rec})
}

func (h *Handler) SaveExamResult(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Please login first"})
		return
	}

	var req models.SaveExamResultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if err := h.service.SaveExamResult(userID, req); err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to save exam result"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Exam results saved",
		"exam_id": req.ExamID,
	})
}

func (h *Handler) ListExams(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Please login first"})
		return
	}

	exams, err := h.service.ListExams(userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to list exams"})
		return
	}
	if exams == nil {
		exams = []models.ExamRecord{}
	}

	writeJSON(w, http.StatusOK, models.ExamListResponse{Success: true, Exams: exams, Count: len(exams)})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
