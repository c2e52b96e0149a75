package quiz

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/spanish-quiz/backend/internal/models"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// ── Quiz Configurations ─────────────────────────────────

func (s *Store) GetQuiz(id string) (*models.QuizConfig, error) {
	var raw []byte
	err := s.db.QueryRow(
		`SELECT config FROM quizzes WHERE id = $1`,
		id,
	).Scan(&raw)
	if err != nil {
		return nil, fmt.Errorf("get quiz: %w", err)
	}

	var cfg models.QuizConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("decode quiz config: %w", err)
	}
	cfg.ID = id
	return &cfg, nil
}

func (s *Store) SaveQuiz(cfg *models.QuizConfig) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode quiz config: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO quizzes (id, config)
		 VALUES ($1, $2)
		 ON CONFLICT (id) DO UPDATE SET config = $2, updated_at = NOW()`,
		cfg.ID, raw,
	)
	if err != nil {
		return fmt.Errorf("save quiz: %w", err)
	}
	return nil
}

func (s *Store) DeleteQuiz(id string) error {
	res, err := s.db.Exec(`DELETE FROM quizzes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete quiz: %w", err)
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return err
}

func (s *Store) ListQuizzes() ([]models.QuizListEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, config->>'title',
		        COALESCE(jsonb_array_length(config->'questions'), 0),
		        created_at, updated_at
		 FROM quizzes ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list quizzes: %w", err)
	}
	defer rows.Close()

	var entries []models.QuizListEntry
	for rows.Next() {
		var e models.QuizListEntry
		if err := rows.Scan(&e.ID, &e.Title, &e.QuestionCount, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan quiz entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// QuizExists reports whether a quiz config row is present. Used by the
// seeding path to avoid overwriting an edited bundled quiz.
func (s *Store) QuizExists(id string) (bool, error) {
	var exists bool
	err := s.db.QueryRow(
		`SELECT EXISTS(SELECT 1 FROM quizzes WHERE id = $1)`,
		id,
	).Scan(&exists)
	return exists, err
}

// ── Participant Results ─────────────────────────────────

func (s *Store) SaveResult(ctx context.Context, quizID string, participant models.Participant, chosen models.ResultTemplate, summary models.ResultsSummary, journey models.JourneyData) (*models.ParticipantResult, error) {
	summaryJSON, err := json.Marshal(summary)
	if err != nil {
		return nil, fmt.Errorf("encode summary: %w", err)
	}
	journeyJSON, err := json.Marshal(journey)
	if err != nil {
		return nil, fmt.Errorf("encode journey: %w", err)
	}

	totalTime := summary.TotalTime
	if participant.TotalTime != nil {
		totalTime = *participant.TotalTime
	}

	var result models.ParticipantResult
	err = s.db.QueryRowContext(ctx,
		`INSERT INTO participants (quiz_id, name, email, level_id, level_title, score, accuracy, total_time, summary, journey)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id, quiz_id, name, email, level_id, level_title, score, accuracy, total_time, completed_at`,
		quizID, participant.Name, participant.Email, chosen.ID, chosen.Title,
		summary.Score, summary.Accuracy, totalTime, summaryJSON, journeyJSON,
	).Scan(&result.ID, &result.QuizID, &result.Name, &result.Email,
		&result.LevelID, &result.LevelTitle, &result.Score, &result.Accuracy,
		&result.TotalTime, &result.CompletedAt)
	if err != nil {
		return nil, fmt.Errorf("save result: %w", err)
	}
	return &result, nil
}

func (s *Store) ListResults(quizID string, limit, offset int) ([]models.ParticipantResult, int, error) {
	var total int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM participants WHERE quiz_id = $1`,
		quizID,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count results: %w", err)
	}

	rows, err := s.db.Query(
		`SELECT id, quiz_id, name, email, level_id, level_title, score, accuracy, total_time, completed_at
		 FROM participants WHERE quiz_id = $1
		 ORDER BY completed_at DESC LIMIT $2 OFFSET $3`,
		quizID, limit, offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("list results: %w", err)
	}
	defer rows.Close()

	var results []models.ParticipantResult
	for rows.Next() {
		var r models.ParticipantResult
		if err := rows.Scan(&r.ID, &r.QuizID, &r.Name, &r.Email,
			&r.LevelID, &r.LevelTitle, &r.Score, &r.Accuracy,
			&r.TotalTime, &r.CompletedAt); err != nil {
			return nil, 0, fmt.Errorf("scan result: %w", err)
		}
		results = append(results, r)
	}
	return results, total, rows.Err()
}

func (s *Store) GetResultSummary(resultID int64) (*models.ResultsSummary, error) {
	var raw []byte
	err := s.db.QueryRow(
		`SELECT summary FROM participants WHERE id = $1`,
		resultID,
	).Scan(&raw)
	if err != nil {
		return nil, fmt.Errorf("get result summary: %w", err)
	}

	var summary models.ResultsSummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		return nil, fmt.Errorf("decode summary: %w", err)
	}
	return &summary, nil
}

func (s *Store) GetResultStats(quizID string) (*models.ResultStats, error) {
	stats := &models.ResultStats{
		LevelDistribution: make(map[string]int),
	}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(AVG(score), 0), COALESCE(AVG(accuracy), 0)
		 FROM participants WHERE quiz_id = $1`,
		quizID,
	).Scan(&stats.TotalParticipants, &stats.AverageScore, &stats.AverageAccuracy)
	if err != nil {
		return nil, fmt.Errorf("result stats: %w", err)
	}

	rows, err := s.db.Query(
		`SELECT level_id, COUNT(*) FROM participants
		 WHERE quiz_id = $1 GROUP BY level_id`,
		quizID,
	)
	if err != nil {
		return nil, fmt.Errorf("level distribution: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var level string
		var count int
		if err := rows.Scan(&level, &count); err != nil {
			return nil, err
		}
		stats.LevelDistribution[level] = count
	}
	return stats, rows.Err()
}
