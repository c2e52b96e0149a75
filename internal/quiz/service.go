package quiz

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/spanish-quiz/backend/internal/generator"
	"github.com/spanish-quiz/backend/internal/journey"
	"github.com/spanish-quiz/backend/internal/models"
	"github.com/spanish-quiz/backend/internal/webhook"
)

var (
	ErrQuizNotFound     = errors.New("quiz not found")
	ErrSessionNotFound  = errors.New("session not found or expired")
	ErrSessionCompleted = errors.New("session already completed")
	ErrQuestionNotFound = errors.New("question not found in quiz")
)

// session is the in-memory state of one participant working through a
// quiz. The quiz config is snapshotted at start so an admin edit cannot
// change grading mid-run.
type session struct {
	id         string
	quiz       *models.QuizConfig
	answers    *AnswerList
	completed  bool
	lastActive time.Time
}

type Service struct {
	store    *Store
	notifier *webhook.Notifier
	gen      *generator.Generator

	sessionTTL time.Duration

	mu       sync.RWMutex
	sessions map[string]*session
}

func NewService(store *Store, notifier *webhook.Notifier, gen *generator.Generator) *Service {
	ttl := 60 * time.Minute
	if v := os.Getenv("SESSION_TTL_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			ttl = time.Duration(n) * time.Minute
		}
	}
	log.Printf("Service: sessionTTL=%s", ttl)

	return &Service{
		store:      store,
		notifier:   notifier,
		gen:        gen,
		sessionTTL: ttl,
		sessions:   make(map[string]*session),
	}
}

// SeedSampleQuiz inserts the bundled placement quiz unless a quiz with
// its id already exists. Safe to call on every startup.
func (s *Service) SeedSampleQuiz() error {
	sample := SampleQuiz()
	exists, err := s.store.QuizExists(sample.ID)
	if err != nil {
		return fmt.Errorf("check sample quiz: %w", err)
	}
	if exists {
		return nil
	}
	log.Printf("[quiz] seeding sample quiz %q", sample.ID)
	return s.store.SaveQuiz(&sample)
}

// ── Public Quiz Access ──────────────────────────────────

// GetQuizForTaking returns the quiz with grading material stripped:
// no bundled correct answers, no answer key, no template conditions,
// and no canonical sentence for ordering questions.
func (s *Service) GetQuizForTaking(id string) (*models.QuizConfig, error) {
	cfg, err := s.store.GetQuiz(id)
	if err != nil {
		return nil, ErrQuizNotFound
	}
	return sanitizeQuiz(cfg), nil
}

func sanitizeQuiz(cfg *models.QuizConfig) *models.QuizConfig {
	out := *cfg
	out.AnswerKey = nil
	out.WebhookURL = ""

	out.Questions = make([]models.Question, len(cfg.Questions))
	for i, q := range cfg.Questions {
		q.CorrectAnswer = ""
		if q.Order != nil {
			q.Order = &models.OrderPayload{Words: q.Order.Words}
		}
		out.Questions[i] = q
	}

	out.ResultTemplates = make([]models.ResultTemplate, len(cfg.ResultTemplates))
	for i, t := range cfg.ResultTemplates {
		t.Conditions = nil
		out.ResultTemplates[i] = t
	}
	return &out
}

// ── Session Flow ────────────────────────────────────────

func (s *Service) StartSession(quizID string) (*models.StartSessionResponse, error) {
	cfg, err := s.store.GetQuiz(quizID)
	if err != nil {
		return nil, ErrQuizNotFound
	}
	if len(cfg.Questions) == 0 {
		return nil, fmt.Errorf("quiz %s has no questions", quizID)
	}

	id, err := newSessionID()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.pruneExpiredLocked()
	s.sessions[id] = &session{
		id:         id,
		quiz:       cfg,
		answers:    NewAnswerList(),
		lastActive: time.Now(),
	}
	s.mu.Unlock()

	return &models.StartSessionResponse{
		SessionID:       id,
		QuizID:          quizID,
		FirstQuestionID: cfg.Questions[0].ID,
		TotalQuestions:  len(cfg.Questions),
	}, nil
}

func (s *Service) SubmitAnswer(sessionID string, req models.SubmitAnswerRequest) (*models.SubmitAnswerResponse, error) {
	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if sess.completed {
		return nil, ErrSessionCompleted
	}

	q := sess.quiz.QuestionByID(req.QuestionID)
	if q == nil {
		return nil, ErrQuestionNotFound
	}

	answer := models.Answer{
		QuestionID:       req.QuestionID,
		Type:             q.Type,
		Value:            req.Value,
		Skipped:          req.Skipped,
		TimeSpentSeconds: req.TimeSpentSeconds,
	}
	if req.Skipped {
		answer.Value = ""
	}
	sess.answers.Put(answer)
	sess.lastActive = time.Now()

	correct := false
	if !req.Skipped {
		correct = Grade(q, sess.quiz.AnswerKey, answer.Value)
	}

	next := NextQuestionID(req.QuestionID, sess.answers.All(), sess.quiz.Questions)

	resp := &models.SubmitAnswerResponse{
		Correct:      correct,
		CorrectValue: CorrectAnswerText(q, sess.quiz.AnswerKey),
		Completed:    next == "",
		Progress:     progressPct(sess.answers.Len(), len(sess.quiz.Questions)),
	}
	if next != "" {
		resp.NextQuestionID = &next
	}
	return resp, nil
}

func (s *Service) CompleteSession(ctx context.Context, sessionID string, req models.CompleteSessionRequest) (*models.CompleteSessionResponse, error) {
	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if sess.completed {
		s.mu.Unlock()
		return nil, ErrSessionCompleted
	}
	sess.completed = true
	answers := sess.answers.All()
	cfg := sess.quiz
	s.mu.Unlock()

	graded := GradeQuestionSet(cfg, answers)

	var chosen models.ResultTemplate
	if len(cfg.ResultTemplates) == 0 {
		chosen = DefaultTemplate()
	} else {
		chosen = ClassifierFor(cfg.ResultTemplates).Classify(answers, graded, cfg.ResultTemplates)
	}

	summary := BuildResultsSummary(cfg, answers, chosen)
	journeyData := journey.BuildJourney(graded, journey.MetaFromConfig(cfg), chosen, models.JourneyUserContext{
		Motivation: req.Motivation,
		MinsPerDay: req.MinsPerDay,
	})

	participant := models.Participant{
		Name:    req.Name,
		Email:   req.Email,
		Answers: answers,
	}

	if _, err := s.store.SaveResult(ctx, cfg.ID, participant, chosen, summary, journeyData); err != nil {
		// Persisting is not allowed to eat the participant's result.
		log.Printf("WARN: [quiz] save result for session %s: %v", sessionID, err)
	}

	if s.notifier != nil && cfg.WebhookURL != "" {
		s.notifier.NotifyAsync(cfg.WebhookURL, webhook.Payload{
			Event:       "quiz.completed",
			QuizID:      cfg.ID,
			Participant: participant,
			Result:      chosen,
			Summary:     summary,
			CompletedAt: time.Now().UTC(),
		})
	}

	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()

	return &models.CompleteSessionResponse{
		Result:  chosen,
		Summary: summary,
		Journey: journeyData,
	}, nil
}

func (s *Service) getSession(id string) (*session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok || time.Since(sess.lastActive) > s.sessionTTL {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// pruneExpiredLocked drops idle sessions. Caller holds mu.
func (s *Service) pruneExpiredLocked() {
	cutoff := time.Now().Add(-s.sessionTTL)
	for id, sess := range s.sessions {
		if sess.lastActive.Before(cutoff) {
			delete(s.sessions, id)
		}
	}
}

func newSessionID() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate session id: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

func progressPct(answered, total int) int {
	if total == 0 {
		return 0
	}
	p := int(math.Round(float64(answered) / float64(total) * 100))
	if p > 100 {
		p = 100
	}
	return p
}

// ── Admin Operations ────────────────────────────────────

func (s *Service) SaveQuiz(cfg *models.QuizConfig) error {
	if err := ValidateQuiz(cfg); err != nil {
		return err
	}
	return s.store.SaveQuiz(cfg)
}

func (s *Service) DeleteQuiz(id string) error {
	return s.store.DeleteQuiz(id)
}

func (s *Service) ListQuizzes() ([]models.QuizListEntry, error) {
	return s.store.ListQuizzes()
}

func (s *Service) GetQuiz(id string) (*models.QuizConfig, error) {
	cfg, err := s.store.GetQuiz(id)
	if err != nil {
		return nil, ErrQuizNotFound
	}
	return cfg, nil
}

func (s *Service) ListResults(quizID string, limit, offset int) ([]models.ParticipantResult, int, error) {
	return s.store.ListResults(quizID, limit, offset)
}

func (s *Service) GetResultStats(quizID string) (*models.ResultStats, error) {
	return s.store.GetResultStats(quizID)
}

func (s *Service) GetResultSummary(resultID int64) (*models.ResultsSummary, error) {
	return s.store.GetResultSummary(resultID)
}

var ErrDraftingUnavailable = errors.New("question drafting is not configured")

// DraftQuestionsResponse is what the authoring UI renders: ready-to-save
// questions plus quality signals for the admin to review.
type DraftQuestionsResponse struct {
	Questions    []models.Question       `json:"questions"`
	Quality      string                  `json:"quality"`
	QualityScore float64                 `json:"quality_score"`
	Review       *generator.ReviewResult `json:"review,omitempty"`
	Model        string                  `json:"model"`
	OutputTokens int                     `json:"output_tokens"`
}

// DraftQuestions generates candidate questions for the authoring flow.
// With review set, a blind solver pass flags drafts the model itself
// cannot answer; a review failure degrades to no review rather than
// discarding the batch.
func (s *Service) DraftQuestions(ctx context.Context, req generator.DraftRequest, review bool) (*DraftQuestionsResponse, error) {
	if s.gen == nil {
		return nil, ErrDraftingUnavailable
	}

	batch, llmResp, err := s.gen.DraftQuestions(ctx, req)
	if err != nil {
		return nil, err
	}

	score := generator.ScoreBatch(batch)
	resp := &DraftQuestionsResponse{
		Questions:    generator.ToQuestions(batch, "draft"),
		Quality:      generator.ClassifyQuality(score),
		QualityScore: score,
		Model:        s.gen.ModelName(),
	}
	if llmResp != nil {
		resp.OutputTokens = llmResp.OutputTokens
	}

	if review {
		rr, err := s.gen.ReviewBatch(ctx, batch)
		if err != nil {
			log.Printf("WARN: [quiz] review pass failed: %v", err)
		} else {
			resp.Review = rr
		}
	}

	return resp, nil
}

// ValidateQuiz checks a configuration for the mistakes an authoring UI
// can produce: duplicate or missing ids, unknown types, branch rules and
// template conditions pointing at questions that do not exist.
func ValidateQuiz(cfg *models.QuizConfig) error {
	if cfg.ID == "" {
		return errors.New("quiz id is required")
	}
	if len(cfg.Questions) == 0 {
		return errors.New("quiz must have at least one question")
	}

	seen := make(map[string]bool, len(cfg.Questions))
	for _, q := range cfg.Questions {
		if q.ID == "" {
			return errors.New("question id is required")
		}
		if seen[q.ID] {
			return fmt.Errorf("duplicate question id %q", q.ID)
		}
		seen[q.ID] = true
		if !models.ValidQuestionTypes[q.Type] {
			return fmt.Errorf("question %s: unknown type %q", q.ID, q.Type)
		}
		if q.Type == models.TypeOrder && (q.Order == nil || len(q.Order.Words) == 0) {
			return fmt.Errorf("question %s: ordering question needs words", q.ID)
		}
		if q.Type == models.TypePronunciation && (q.Pronunciation == nil || q.Pronunciation.Word == "") {
			return fmt.Errorf("question %s: pronunciation question needs a word", q.ID)
		}
	}

	for _, q := range cfg.Questions {
		for _, rule := range q.ConditionalLogic {
			// An empty target is valid: the flow falls through to the
			// next question in list order.
			if rule.NextQuestionID != "" && !seen[rule.NextQuestionID] {
				return fmt.Errorf("question %s: branch rule targets unknown question %q", q.ID, rule.NextQuestionID)
			}
		}
	}

	for _, t := range cfg.ResultTemplates {
		if t.ID == "" {
			return errors.New("result template id is required")
		}
		for _, c := range t.Conditions {
			if !seen[c.QuestionID] {
				return fmt.Errorf("template %s: condition references unknown question %q", t.ID, c.QuestionID)
			}
		}
	}
	return nil
}
