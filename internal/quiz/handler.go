package quiz

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/spanish-quiz/backend/internal/generator"
	"github.com/spanish-quiz/backend/internal/models"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ── Public Handlers ─────────────────────────────────────

func (h *Handler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	cfg, err := h.service.GetQuizForTaking(vars["id"])
	if err != nil {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Quiz not found"})
		return
	}

	writeJSON(w, http.StatusOK, cfg)
}

func (h *Handler) StartSession(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	resp, err := h.service.StartSession(vars["id"])
	if err != nil {
		if errors.Is(err, ErrQuizNotFound) {
			writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Quiz not found"})
			return
		}
		log.Printf("[handler] StartSession error: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to start session"})
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req models.SubmitAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if req.QuestionID == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "question_id is required"})
		return
	}

	resp, err := h.service.SubmitAnswer(vars["session_id"], req)
	if err != nil {
		switch {
		case errors.Is(err, ErrSessionNotFound):
			writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Session not found or expired"})
		case errors.Is(err, ErrSessionCompleted):
			writeJSON(w, http.StatusConflict, models.ErrorResponse{Error: "Session already completed"})
		case errors.Is(err, ErrQuestionNotFound):
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Question not in this quiz"})
		default:
			log.Printf("[handler] SubmitAnswer error: %v", err)
			writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to submit answer"})
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) CompleteSession(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req models.CompleteSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	resp, err := h.service.CompleteSession(r.Context(), vars["session_id"], req)
	if err != nil {
		switch {
		case errors.Is(err, ErrSessionNotFound):
			writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Session not found or expired"})
		case errors.Is(err, ErrSessionCompleted):
			writeJSON(w, http.StatusConflict, models.ErrorResponse{Error: "Session already completed"})
		default:
			log.Printf("[handler] CompleteSession error: %v", err)
			writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to complete session"})
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// ── Admin Handlers ──────────────────────────────────────

func (h *Handler) ListQuizzes(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.ListQuizzes()
	if err != nil {
		log.Printf("[handler] ListQuizzes error: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to list quizzes"})
		return
	}

	if entries == nil {
		entries = []models.QuizListEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *Handler) GetQuizAdmin(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	cfg, err := h.service.GetQuiz(vars["id"])
	if err != nil {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Quiz not found"})
		return
	}

	writeJSON(w, http.StatusOK, cfg)
}

func (h *Handler) SaveQuiz(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var cfg models.QuizConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	cfg.ID = vars["id"]

	if err := h.service.SaveQuiz(&cfg); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, cfg)
}

func (h *Handler) DeleteQuiz(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if err := h.service.DeleteQuiz(vars["id"]); err != nil {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Quiz not found"})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListResults(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	query := r.URL.Query()
	limit := intQueryParam(query, "limit", 20)
	if limit == 0 {
		limit = 20
	}
	offset := intQueryParam(query, "offset", 0)

	results, total, err := h.service.ListResults(vars["id"], limit, offset)
	if err != nil {
		log.Printf("[handler] ListResults error: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to list results"})
		return
	}

	if results == nil {
		results = []models.ParticipantResult{}
	}
	writeJSON(w, http.StatusOK, models.ResultListResponse{
		Results:  results,
		Total:    total,
		Page:     offset/limit + 1,
		PageSize: limit,
	})
}

func (h *Handler) GetResultStats(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	stats, err := h.service.GetResultStats(vars["id"])
	if err != nil {
		log.Printf("[handler] GetResultStats error: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to get result stats"})
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) GetResultSummary(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid result ID"})
		return
	}

	summary, err := h.service.GetResultSummary(id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Result not found"})
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

func (h *Handler) DraftQuestions(w http.ResponseWriter, r *http.Request) {
	var req generator.DraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if !models.ValidQuestionTypes[req.Type] {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Unknown question type"})
		return
	}

	review := r.URL.Query().Get("review") == "true"

	resp, err := h.service.DraftQuestions(r.Context(), req, review)
	if err != nil {
		if errors.Is(err, ErrDraftingUnavailable) {
			writeJSON(w, http.StatusServiceUnavailable, models.ErrorResponse{Error: "Question drafting is not configured"})
			return
		}
		log.Printf("[handler] DraftQuestions error: %v", err)
		writeJSON(w, http.StatusBadGateway, models.ErrorResponse{Error: "Failed to draft questions"})
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func intQueryParam(query url.Values, key string, defaultVal int) int {
	s := query.Get(key)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return defaultVal
	}
	return v
}
