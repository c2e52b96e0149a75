package quiz

import "github.com/spanish-quiz/backend/internal/models"

// Two classification policies coexist: quizzes whose templates declare
// match conditions use condition counting; quizzes with only bare
// templates fall back to score thresholds against the legacy
// beginner/intermediate/advanced ids. The policy is fixed per quiz
// configuration, chosen once by inspecting the template list.

// Classifier selects the best-matching result template for a completed
// answer set. Implementations are deterministic and side-effect-free.
type Classifier interface {
	Classify(answers []models.Answer, graded []models.GradedAnswer, templates []models.ResultTemplate) models.ResultTemplate
}

// ClassifierFor picks the policy for a quiz configuration.
func ClassifierFor(templates []models.ResultTemplate) Classifier {
	for _, t := range templates {
		if len(t.Conditions) > 0 {
			return conditionClassifier{}
		}
	}
	return scoreClassifier{}
}

// DefaultTemplate is the synthetic bucket returned when a quiz declares
// no result templates at all.
func DefaultTemplate() models.ResultTemplate {
	return models.ResultTemplate{
		ID:          "default",
		Title:       "Thank You",
		Description: "Thank you for completing the quiz! We'll analyze your responses and get back to you soon.",
		Conditions:  []models.TemplateCondition{},
	}
}

// ── Condition-matching policy ───────────────────────────

type conditionClassifier struct{}

func (conditionClassifier) Classify(answers []models.Answer, _ []models.GradedAnswer, templates []models.ResultTemplate) models.ResultTemplate {
	if len(templates) == 0 {
		return DefaultTemplate()
	}

	answerByQuestion := make(map[string]string, len(answers))
	for _, a := range answers {
		answerByQuestion[a.QuestionID] = a.Value
	}

	best := 0
	bestHits := -1
	bestTotal := -1
	for i, t := range templates {
		hits := 0
		for _, c := range t.Conditions {
			if conditionHit(c, answerByQuestion) {
				hits++
			}
		}
		// Highest hit count wins; ties go to the template with more
		// declared conditions (more specific), then declaration order.
		if hits > bestHits || (hits == bestHits && len(t.Conditions) > bestTotal) {
			best = i
			bestHits = hits
			bestTotal = len(t.Conditions)
		}
	}

	// No template matched anything: the first declared template is the
	// chosen bucket, condition-less fallbacks included.
	if bestHits == 0 {
		return templates[0]
	}
	return templates[best]
}

func conditionHit(c models.TemplateCondition, answerByQuestion map[string]string) bool {
	value, ok := answerByQuestion[c.QuestionID]
	if !ok {
		return false
	}
	if c.AnswerID != "" {
		return value == c.AnswerID
	}
	if c.Value != "" {
		return value == c.Value
	}
	return false
}

// ── Score-threshold policy ──────────────────────────────

type scoreClassifier struct{}

func (scoreClassifier) Classify(_ []models.Answer, graded []models.GradedAnswer, templates []models.ResultTemplate) models.ResultTemplate {
	if len(templates) == 0 {
		return DefaultTemplate()
	}

	correct := 0
	for _, g := range graded {
		if g.Correct {
			correct++
		}
	}
	total := len(graded)

	pct := 0.0
	if total > 0 {
		pct = float64(correct) / float64(total) * 100
	}

	var wantID string
	switch {
	case pct <= 33:
		wantID = "beginner"
	case pct <= 66:
		wantID = "intermediate"
	default:
		wantID = "advanced"
	}

	for _, t := range templates {
		if t.ID == wantID {
			return t
		}
	}
	return templates[0]
}
