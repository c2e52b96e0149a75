package quiz

import (
	"strings"

	"github.com/spanish-quiz/backend/internal/models"
)

// resolveCorrectValue returns the canonical correct value for a question.
// A correct answer bundled on the question (compiled from an authoring
// template) wins over the quiz-level answer key. Empty string means no
// correct value is resolvable; grading treats that as incorrect rather
// than an error.
func resolveCorrectValue(q *models.Question, key models.AnswerKey) string {
	switch q.Type {
	case models.TypeOrder:
		if q.Order != nil {
			return q.Order.CorrectAnswer
		}
		return ""
	case models.TypePronunciation:
		if q.Pronunciation != nil {
			return q.Pronunciation.Word
		}
		return ""
	}

	if q.CorrectAnswer != "" {
		return q.CorrectAnswer
	}
	if key != nil {
		return key[q.ID]
	}
	return ""
}

// Grade reports whether a submitted value answers the question correctly.
// A skipped or empty submission is never correct. Pure; never fails —
// an unresolvable correct value grades as incorrect.
func Grade(q *models.Question, key models.AnswerKey, value string) bool {
	if q == nil || value == "" {
		return false
	}

	correct := resolveCorrectValue(q, key)
	if correct == "" {
		return false
	}

	switch q.Type {
	case models.TypeMCQ, models.TypeImageSelection, models.TypeAudio:
		return value == correct
	case models.TypeText, models.TypeFillInBlanks:
		return strings.EqualFold(strings.TrimSpace(value), strings.TrimSpace(correct))
	case models.TypeOrder:
		return strings.EqualFold(strings.TrimSpace(value), strings.TrimSpace(correct))
	case models.TypePronunciation:
		return IsSimilar(value, correct, DefaultSimilarityThreshold)
	default:
		return false
	}
}

// CorrectAnswerText resolves a human-readable correct answer for display
// and export: the matched option's display text for choice types, the
// canonical sentence for ordering, the raw value otherwise.
func CorrectAnswerText(q *models.Question, key models.AnswerKey) string {
	correct := resolveCorrectValue(q, key)

	switch q.Type {
	case models.TypeMCQ, models.TypeAudio:
		for _, opt := range q.Options {
			if opt.Value == correct {
				return opt.Text
			}
		}
		return correct
	case models.TypeImageSelection:
		for _, opt := range q.ImageOptions {
			if opt.Value == correct {
				return opt.Alt
			}
		}
		return correct
	default:
		return correct
	}
}

// GradeQuestionSet grades every question of the quiz in canonical order,
// treating questions without an answer as skipped (incorrect). One graded
// entry per question, so len(result) always equals the question count.
func GradeQuestionSet(cfg *models.QuizConfig, answers []models.Answer) []models.GradedAnswer {
	byQuestion := make(map[string]models.Answer, len(answers))
	for _, a := range answers {
		byQuestion[a.QuestionID] = a
	}

	graded := make([]models.GradedAnswer, 0, len(cfg.Questions))
	for i := range cfg.Questions {
		q := &cfg.Questions[i]
		g := models.GradedAnswer{
			QuestionID:   q.ID,
			CorrectValue: CorrectAnswerText(q, cfg.AnswerKey),
		}
		if a, ok := byQuestion[q.ID]; ok {
			g.Value = a.Value
			g.TimeSpentSeconds = a.TimeSpentSeconds
			g.Correct = Grade(q, cfg.AnswerKey, a.Value)
		}
		graded = append(graded, g)
	}
	return graded
}
