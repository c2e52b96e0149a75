package quiz

import (
	"math"
	"strings"

	"github.com/spanish-quiz/backend/internal/models"
)

// BuildResultsSummary assembles the exportable summary for a completed
// quiz: one row per question in canonical order, aggregate score and
// accuracy, timing totals, and the chosen level. The level field carries
// only the first whitespace-delimited token of the template title
// ("A1 • Beginner" -> "A1"); the export tooling depends on that exact
// truncation. Deterministic: identical inputs produce identical output.
func BuildResultsSummary(cfg *models.QuizConfig, answers []models.Answer, chosen models.ResultTemplate) models.ResultsSummary {
	graded := GradeQuestionSet(cfg, answers)

	summary := models.ResultsSummary{
		TotalQuestions: len(cfg.Questions),
		Level:          firstToken(chosen.Title),
		Answers:        make([]models.SummaryAnswer, 0, len(graded)),
	}

	timed := 0
	for _, g := range graded {
		row := models.SummaryAnswer{
			QuestionID:    g.QuestionID,
			Correct:       g.Correct,
			Answer:        g.Value,
			CorrectAnswer: g.CorrectValue,
		}
		if g.TimeSpentSeconds != nil {
			row.Time = *g.TimeSpentSeconds
			summary.TotalTime += *g.TimeSpentSeconds
			timed++
		}
		if g.Correct {
			summary.Score++
		}
		summary.Answers = append(summary.Answers, row)
	}

	if summary.TotalQuestions > 0 {
		summary.Accuracy = roundTo2(float64(summary.Score) / float64(summary.TotalQuestions) * 100)
	}
	if timed > 0 {
		summary.AverageTime = roundTo2(summary.TotalTime / float64(timed))
	}

	return summary
}

func firstToken(title string) string {
	fields := strings.Fields(title)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
