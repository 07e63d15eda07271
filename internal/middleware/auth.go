package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/camillamora/study-ai-companion-2026/internal/auth"
	"github.com/camillamora/study-ai-companion-2026/internal/models"
)

// AuthMiddleware requires a valid bearer token and puts the user id on the
// request context under "user_id".
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authorization header required"})
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == header {
			writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Bearer token required"})
			return
		}

		userID, err := auth.ParseToken(tokenString)
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Invalid or expired token"})
			return
		}

		ctx := context.WithValue(r.Context(), "user_id", userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
