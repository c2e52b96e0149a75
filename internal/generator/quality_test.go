package generator

import (
	"testing"

	"github.com/spanish-quiz/backend/internal/models"
)

func wellFormedMCQ(correctIdx int) DraftQuestion {
	opts := []DraftOption{
		{Text: "A) el libro", Value: "el_libro"},
		{Text: "B) la mesa", Value: "la_mesa"},
		{Text: "C) el perro", Value: "el_perro"},
		{Text: "D) la casa", Value: "la_casa"},
	}
	return DraftQuestion{
		Type:          models.TypeMCQ,
		Title:         "How do you say \"the book\" in Spanish?",
		Level:         "a1",
		Skill:         "vocab",
		Topic:         "Everyday vocabulary",
		Options:       opts,
		CorrectAnswer: opts[correctIdx].Value,
	}
}

func TestStructuralScorePerfectMCQ(t *testing.T) {
	q := wellFormedMCQ(0)
	if got := ComputeStructuralScore(&q); got != 1.0 {
		t.Errorf("well-formed mcq scored %.2f, want 1.0", got)
	}
}

func TestStructuralScorePenalizesMissingTags(t *testing.T) {
	q := wellFormedMCQ(0)
	q.Skill = ""
	q.Topic = ""
	if got := ComputeStructuralScore(&q); got >= 1.0 {
		t.Errorf("untagged draft scored %.2f, want < 1.0", got)
	}
}

func TestStructuralScorePenalizesUnlabelledOptions(t *testing.T) {
	q := wellFormedMCQ(0)
	q.Options[0].Text = "el libro"
	if got := ComputeStructuralScore(&q); got >= 1.0 {
		t.Errorf("unlabelled options scored %.2f, want < 1.0", got)
	}
}

func TestStructuralScoreFillInBlank(t *testing.T) {
	q := DraftQuestion{
		Type:          models.TypeFillInBlanks,
		Title:         "Complete with the correct form of ser:",
		Subtitle:      "Nosotros ___ estudiantes. (We are students.)",
		Level:         "a1",
		Skill:         "grammar",
		Topic:         "Verb conjugation",
		CorrectAnswer: "somos",
	}
	if got := ComputeStructuralScore(&q); got != 1.0 {
		t.Errorf("well-formed blank scored %.2f, want 1.0", got)
	}

	q.Subtitle = "Nosotros ___ estudiantes y ellos ___ profesores."
	if got := ComputeStructuralScore(&q); got >= 1.0 {
		t.Errorf("double blank scored %.2f, want < 1.0", got)
	}
}

func TestScoreBatchPenalizesSameAnswerPosition(t *testing.T) {
	same := &DraftBatch{Questions: []DraftQuestion{
		wellFormedMCQ(0), wellFormedMCQ(0), wellFormedMCQ(0), wellFormedMCQ(0),
	}}
	varied := &DraftBatch{Questions: []DraftQuestion{
		wellFormedMCQ(0), wellFormedMCQ(2), wellFormedMCQ(1), wellFormedMCQ(3),
	}}

	if ScoreBatch(same) >= ScoreBatch(varied) {
		t.Errorf("same-position batch (%.2f) should score below varied batch (%.2f)",
			ScoreBatch(same), ScoreBatch(varied))
	}
}

func TestClassifyQuality(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{1.0, QualityGood},
		{0.85, QualityGood},
		{0.70, QualityAcceptable},
		{0.60, QualityAcceptable},
		{0.59, QualityPoor},
		{0.0, QualityPoor},
	}
	for _, tt := range tests {
		if got := ClassifyQuality(tt.score); got != tt.want {
			t.Errorf("ClassifyQuality(%.2f) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
