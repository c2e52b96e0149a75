package models

import "time"

// ── Results Summary (interchange schema — field names are load-bearing
// for the export tooling, do not rename) ─────────────────

type SummaryAnswer struct {
	QuestionID    string  `json:"questionId"`
	Correct       bool    `json:"correct"`
	Answer        string  `json:"answer"`
	CorrectAnswer string  `json:"correctAnswer"`
	Time          float64 `json:"time"`
}

type ResultsSummary struct {
	Score          int             `json:"score"`
	TotalQuestions int             `json:"totalQuestions"`
	Accuracy       float64         `json:"accuracy"`
	TotalTime      float64         `json:"totalTime"`
	AverageTime    float64         `json:"averageTime"`
	Level          string          `json:"level"`
	Answers        []SummaryAnswer `json:"answers"`
}

// ── Request Types ─────────────────────────────────────

type StartSessionRequest struct {
	QuizID string `json:"quiz_id"`
}

type SubmitAnswerRequest struct {
	QuestionID       string   `json:"question_id"`
	Value            string   `json:"value"`
	Skipped          bool     `json:"skipped,omitempty"`
	TimeSpentSeconds *float64 `json:"time_spent_seconds,omitempty"`
}

type CompleteSessionRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Motivation string `json:"motivation,omitempty"`
	MinsPerDay int    `json:"mins_per_day,omitempty"`
}

// ── Response Types ────────────────────────────────────

type StartSessionResponse struct {
	SessionID       string `json:"session_id"`
	QuizID          string `json:"quiz_id"`
	FirstQuestionID string `json:"first_question_id"`
	TotalQuestions  int    `json:"total_questions"`
}

type SubmitAnswerResponse struct {
	Correct        bool    `json:"correct"`
	CorrectValue   string  `json:"correct_value,omitempty"`
	NextQuestionID *string `json:"next_question_id"`
	Completed      bool    `json:"completed"`
	Progress       int     `json:"progress"`
}

type CompleteSessionResponse struct {
	Result  ResultTemplate `json:"result"`
	Summary ResultsSummary `json:"summary"`
	Journey JourneyData    `json:"journey"`
}

type QuizListEntry struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	QuestionCount int       `json:"question_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ResultListResponse struct {
	Results  []ParticipantResult `json:"results"`
	Total    int                 `json:"total"`
	Page     int                 `json:"page"`
	PageSize int                 `json:"page_size"`
}

// ResultStats backs the admin results dashboard.
type ResultStats struct {
	TotalParticipants int            `json:"total_participants"`
	AverageScore      float64        `json:"average_score"`
	AverageAccuracy   float64        `json:"average_accuracy"`
	LevelDistribution map[string]int `json:"level_distribution"`
}
