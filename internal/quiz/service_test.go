package quiz

import (
	"strings"
	"testing"

	"github.com/spanish-quiz/backend/internal/models"
)

func TestValidateQuizSample(t *testing.T) {
	cfg := SampleQuiz()
	if err := ValidateQuiz(&cfg); err != nil {
		t.Errorf("bundled quiz should validate, got %v", err)
	}
}

func TestValidateQuizRejects(t *testing.T) {
	base := func() models.QuizConfig {
		return models.QuizConfig{
			ID: "t",
			Questions: []models.Question{
				{ID: "q1", Type: models.TypeMCQ},
				{ID: "q2", Type: models.TypeText},
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*models.QuizConfig)
		wantSub string
	}{
		{"missing quiz id", func(c *models.QuizConfig) { c.ID = "" }, "quiz id"},
		{"no questions", func(c *models.QuizConfig) { c.Questions = nil }, "at least one"},
		{"duplicate question id", func(c *models.QuizConfig) { c.Questions[1].ID = "q1" }, "duplicate"},
		{"unknown type", func(c *models.QuizConfig) { c.Questions[0].Type = "essay" }, "unknown type"},
		{"order without words", func(c *models.QuizConfig) {
			c.Questions[0].Type = models.TypeOrder
		}, "needs words"},
		{"pronunciation without word", func(c *models.QuizConfig) {
			c.Questions[0].Type = models.TypePronunciation
		}, "needs a word"},
		{"branch to unknown question", func(c *models.QuizConfig) {
			c.Questions[0].ConditionalLogic = []models.ConditionRule{{AnswerID: "a", NextQuestionID: "nope"}}
		}, "unknown question"},
		{"condition on unknown question", func(c *models.QuizConfig) {
			c.ResultTemplates = []models.ResultTemplate{
				{ID: "t1", Conditions: []models.TemplateCondition{{QuestionID: "nope", Value: "x"}}},
			}
		}, "unknown question"},
	}

	for _, tt := range tests {
		cfg := base()
		tt.mutate(&cfg)
		err := ValidateQuiz(&cfg)
		if err == nil {
			t.Errorf("%s: expected validation error", tt.name)
			continue
		}
		if !strings.Contains(err.Error(), tt.wantSub) {
			t.Errorf("%s: error %q does not mention %q", tt.name, err, tt.wantSub)
		}
	}
}

func TestValidateQuizAllowsAbsentBranchTarget(t *testing.T) {
	cfg := models.QuizConfig{
		ID: "t",
		Questions: []models.Question{
			{ID: "q1", Type: models.TypeMCQ, ConditionalLogic: []models.ConditionRule{{AnswerID: "a"}}},
			{ID: "q2", Type: models.TypeText},
		},
	}
	if err := ValidateQuiz(&cfg); err != nil {
		t.Errorf("branch rule without a target is valid (fall through), got %v", err)
	}
}

func TestSanitizeQuizStripsGradingMaterial(t *testing.T) {
	cfg := SampleQuiz()
	public := sanitizeQuiz(&cfg)

	if public.AnswerKey != nil {
		t.Error("answer key must not be exposed")
	}
	for _, q := range public.Questions {
		if q.CorrectAnswer != "" {
			t.Errorf("question %s: bundled correct answer exposed", q.ID)
		}
		if q.Order != nil && q.Order.CorrectAnswer != "" {
			t.Errorf("question %s: canonical sentence exposed", q.ID)
		}
	}
	for _, tpl := range public.ResultTemplates {
		if len(tpl.Conditions) > 0 {
			t.Errorf("template %s: conditions exposed", tpl.ID)
		}
	}

	// The original config is untouched.
	if cfg.AnswerKey == nil || cfg.Questions[0].CorrectAnswer == "" {
		t.Error("sanitize must copy, not mutate the source config")
	}
}

func TestProgressPct(t *testing.T) {
	tests := []struct {
		answered, total, want int
	}{
		{0, 10, 0},
		{5, 10, 50},
		{10, 10, 100},
		{12, 10, 100}, // clamp
		{1, 3, 33},
		{0, 0, 0},
	}
	for _, tt := range tests {
		if got := progressPct(tt.answered, tt.total); got != tt.want {
			t.Errorf("progressPct(%d, %d) = %d, want %d", tt.answered, tt.total, got, tt.want)
		}
	}
}
