package generator

import (
	"strings"

	"github.com/spanish-quiz/backend/internal/models"
)

// Structural quality scoring for drafted questions. These are the
// deterministic checks that do not need a second model call; the
// reviewer pass covers correctness.

const (
	QualityGood       = "good"
	QualityAcceptable = "acceptable"
	QualityPoor       = "poor"
)

var optionPrefixes = []string{"A) ", "B) ", "C) ", "D) "}

// ComputeStructuralScore returns a 0-1 score for one draft. A draft
// that passed validateDraft can still score low here: missing tags,
// sloppy option labels, or distractors that repeat each other.
func ComputeStructuralScore(q *DraftQuestion) float64 {
	checks := 0
	passed := 0

	check := func(ok bool) {
		checks++
		if ok {
			passed++
		}
	}

	check(len(strings.TrimSpace(q.Title)) >= 10)
	check(q.Skill != "")
	check(q.Topic != "")

	switch q.Type {
	case models.TypeMCQ, models.TypeAudio:
		check(len(q.Options) == 4)
		check(optionsLabelled(q.Options))
		check(optionTextsDistinct(q.Options))
	case models.TypeImageSelection:
		check(len(q.Options) == 4)
		check(optionTextsDistinct(q.Options))
	case models.TypeFillInBlanks:
		check(strings.Count(q.Subtitle, "___") == 1)
	case models.TypeOrder:
		check(len(q.Words) >= 4 && len(q.Words) <= 8)
	case models.TypeText:
		check(len(strings.Fields(q.CorrectAnswer)) <= 3)
	case models.TypePronunciation:
		check(!strings.ContainsAny(q.Word, " "))
	}

	if checks == 0 {
		return 0
	}
	return float64(passed) / float64(checks)
}

// ScoreBatch averages the per-question scores and applies a penalty
// when every choice question hides the correct answer in the same
// position, a telltale of lazy generation.
func ScoreBatch(batch *DraftBatch) float64 {
	if len(batch.Questions) == 0 {
		return 0
	}

	var sum float64
	for i := range batch.Questions {
		sum += ComputeStructuralScore(&batch.Questions[i])
	}
	score := sum / float64(len(batch.Questions))

	if samePositionCount(batch) >= 3 {
		score -= 0.15
	}
	if score < 0 {
		score = 0
	}
	return score
}

func ClassifyQuality(score float64) string {
	switch {
	case score >= 0.85:
		return QualityGood
	case score >= 0.60:
		return QualityAcceptable
	default:
		return QualityPoor
	}
}

func optionsLabelled(opts []DraftOption) bool {
	for i, opt := range opts {
		if i >= len(optionPrefixes) {
			return false
		}
		if !strings.HasPrefix(opt.Text, optionPrefixes[i]) {
			return false
		}
	}
	return true
}

func optionTextsDistinct(opts []DraftOption) bool {
	seen := make(map[string]bool, len(opts))
	for _, opt := range opts {
		key := strings.ToLower(strings.TrimSpace(opt.Text))
		if seen[key] {
			return false
		}
		seen[key] = true
	}
	return true
}

// samePositionCount returns the length of the longest run of choice
// questions whose correct option sits at the same index.
func samePositionCount(batch *DraftBatch) int {
	lastIdx := -1
	run := 0
	best := 0
	for _, q := range batch.Questions {
		idx := -1
		for j, opt := range q.Options {
			if opt.Value == q.CorrectAnswer {
				idx = j
				break
			}
		}
		if idx == -1 {
			continue
		}
		if idx == lastIdx {
			run++
		} else {
			run = 1
			lastIdx = idx
		}
		if run > best {
			best = run
		}
	}
	return best
}
