package models

import "time"

// Answer is the latest submitted value for one question. A later answer
// for the same question id replaces the earlier one; answers are never
// deleted during a session.
type Answer struct {
	QuestionID       string       `json:"question_id"`
	Type             QuestionType `json:"type"`
	Value            string       `json:"value"`
	Skipped          bool         `json:"skipped,omitempty"`
	TimeSpentSeconds *float64     `json:"time_spent_seconds,omitempty"`
}

// GradedAnswer is an Answer plus its computed correctness and the
// resolved human-readable correct value. Derived on demand, never stored
// as a source of truth.
type GradedAnswer struct {
	QuestionID       string   `json:"question_id"`
	Correct          bool     `json:"correct"`
	Value            string   `json:"value"`
	CorrectValue     string   `json:"correct_value"`
	TimeSpentSeconds *float64 `json:"time_spent_seconds,omitempty"`
}

type Participant struct {
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Answers   []Answer `json:"answers"`
	TotalTime *float64 `json:"total_time,omitempty"`
}

// ParticipantResult is the persisted record of a completed session.
type ParticipantResult struct {
	ID          int64     `json:"id"`
	QuizID      string    `json:"quiz_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	LevelID     string    `json:"level_id"`
	LevelTitle  string    `json:"level_title"`
	Score       int       `json:"score"`
	Accuracy    float64   `json:"accuracy"`
	TotalTime   float64   `json:"total_time"`
	CompletedAt time.Time `json:"completed_at"`
}
