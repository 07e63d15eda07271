package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/camillamora/study-ai-companion-2026/internal/auth"
	"github.com/camillamora/study-ai-companion-2026/internal/database"
	"github.com/camillamora/study-ai-companion-2026/internal/generator"
	"github.com/camillamora/study-ai-companion-2026/internal/middleware"
	"github.com/camillamora/study-ai-companion-2026/internal/quiz"
	"github.com/camillamora/study-ai-companion-2026/internal/store"
	"github.com/camillamora/study-ai-companion-2026/internal/study"
)

func main() {
	st := openStore()

	gen := generator.NewGenerator()

	quizService := quiz.NewService(gen, quiz.NewClassifier(nil), st)
	quizHandler := quiz.NewHandler(quizService)

	studyService := study.NewService(gen, st)
	studyHandler := study.NewHandler(studyService)

	authHandler := auth.NewHandler(st)

	// Setup router
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	// Protected routes
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.AuthMiddleware)

	protected.HandleFunc("/exams", quizHandler.CreateExam).Methods("POST")
	protected.HandleFunc("/exams", quizHandler.ListExams).Methods("GET")
	protected.HandleFunc("/exams/results", quizHandler.SaveExamResult).Methods("POST")
	protected.HandleFunc("/exams/{exam_id}", quizHandler.GetExam).Methods("GET")

	protected.HandleFunc("/summarize", studyHandler.Summarize).Methods("POST")
	protected.HandleFunc("/flashcards", studyHandler.CreateFlashcards).Methods("POST")
	protected.HandleFunc("/flashcards", studyHandler.ListFlashcards).Methods("GET")
	protected.HandleFunc("/suggest-topics", studyHandler.SuggestTopics).Methods("POST")
	protected.HandleFunc("/materials", studyHandler.ListMaterials).Methods("GET")
	protected.HandleFunc("/materials/{material_id}", studyHandler.GetMaterial).Methods("GET")
	protected.HandleFunc("/materials/{material_id}", studyHandler.DeleteMaterial).Methods("DELETE")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	handler := c.Handler(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// openStore picks Postgres when database configuration is present and falls
// back to the in-process store otherwise.
func openStore() store.Store {
	if os.Getenv("DB_HOST") == "" {
		log.Println("No database configured, using in-memory store")
		return store.NewMemory()
	}

	db, err := database.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Using Postgres store")
	return store.NewPostgres(db)
}
