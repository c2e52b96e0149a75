package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spanish-quiz/backend/internal/auth"
	"github.com/spanish-quiz/backend/internal/database"
	"github.com/spanish-quiz/backend/internal/generator"
	"github.com/spanish-quiz/backend/internal/middleware"
	"github.com/spanish-quiz/backend/internal/quiz"
	"github.com/spanish-quiz/backend/internal/webhook"
)

func main() {
	// Initialize database
	db, err := database.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize services
	quizStore := quiz.NewStore(db)
	quizService := quiz.NewService(quizStore, webhook.NewNotifier(), generator.NewGenerator())
	if err := quizService.SeedSampleQuiz(); err != nil {
		log.Fatalf("Failed to seed sample quiz: %v", err)
	}

	quizHandler := quiz.NewHandler(quizService)
	authHandler := auth.NewHandler(db)

	// Setup router
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	// Participant flow. Unauthenticated: quizzes are taken from shared
	// marketing links.
	api.HandleFunc("/quizzes/{id}", quizHandler.GetQuiz).Methods("GET")
	api.HandleFunc("/quizzes/{id}/sessions", quizHandler.StartSession).Methods("POST")
	api.HandleFunc("/sessions/{session_id}/answers", quizHandler.SubmitAnswer).Methods("POST")
	api.HandleFunc("/sessions/{session_id}/complete", quizHandler.CompleteSession).Methods("POST")

	// Protected routes
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.AuthMiddleware)
	protected.HandleFunc("/auth/me", authHandler.GetCurrentUser).Methods("GET")

	// Admin: quiz authoring and results
	protected.HandleFunc("/admin/quizzes", quizHandler.ListQuizzes).Methods("GET")
	protected.HandleFunc("/admin/quizzes/draft", quizHandler.DraftQuestions).Methods("POST")
	protected.HandleFunc("/admin/quizzes/{id}", quizHandler.GetQuizAdmin).Methods("GET")
	protected.HandleFunc("/admin/quizzes/{id}", quizHandler.SaveQuiz).Methods("PUT")
	protected.HandleFunc("/admin/quizzes/{id}", quizHandler.DeleteQuiz).Methods("DELETE")
	protected.HandleFunc("/admin/quizzes/{id}/results", quizHandler.ListResults).Methods("GET")
	protected.HandleFunc("/admin/quizzes/{id}/stats", quizHandler.GetResultStats).Methods("GET")
	protected.HandleFunc("/admin/results/{id}", quizHandler.GetResultSummary).Methods("GET")

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
