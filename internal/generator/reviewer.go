package generator

import (
	"context"
	"fmt"
	"log"
	"strings"
)

// Reviewer runs a blind second pass over a draft batch: the model is
// shown each question without its answer and asked to solve it. A draft
// the model itself cannot answer consistently is flagged for the admin.
type Reviewer struct {
	llm LLMClient
}

func NewReviewer(llm LLMClient) *Reviewer {
	return &Reviewer{llm: llm}
}

type ReviewResult struct {
	Agreed      int      `json:"agreed"`
	Disagreed   int      `json:"disagreed"`
	Unreviewed  int      `json:"unreviewed"`
	FlaggedIdxs []int    `json:"flagged_indexes,omitempty"`
	Answers     []string `json:"answers,omitempty"`
}

const reviewerSystem = `You are a Spanish learner taking a quiz. Answer the
question with ONLY the answer value or text, nothing else. For multiple
choice, reply with the option value. For word ordering, reply with the full
sentence. Do not explain.`

// Review solves each draft blind and compares with the authored answer.
// Pronunciation drafts are skipped; they have nothing to solve.
func (r *Reviewer) Review(ctx context.Context, batch *DraftBatch) (*ReviewResult, error) {
	result := &ReviewResult{}

	for i := range batch.Questions {
		q := &batch.Questions[i]
		want := q.CorrectAnswer
		if want == "" {
			result.Unreviewed++
			result.Answers = append(result.Answers, "")
			continue
		}

		resp, err := r.llm.Generate(ctx, reviewerSystem, blindPrompt(q))
		if err != nil {
			return nil, fmt.Errorf("review question %d: %w", i+1, err)
		}

		got := strings.TrimSpace(resp.Content)
		result.Answers = append(result.Answers, got)

		if strings.EqualFold(got, want) {
			result.Agreed++
		} else {
			result.Disagreed++
			result.FlaggedIdxs = append(result.FlaggedIdxs, i)
			log.Printf("[generator] review disagreement on question %d: want %q, solver said %q", i+1, want, got)
		}
	}

	return result, nil
}

func blindPrompt(q *DraftQuestion) string {
	var sb strings.Builder
	sb.WriteString(q.Title)
	if q.Subtitle != "" {
		sb.WriteString("\n")
		sb.WriteString(q.Subtitle)
	}
	if len(q.Options) > 0 {
		sb.WriteString("\n\nOptions:\n")
		for _, opt := range q.Options {
			fmt.Fprintf(&sb, "- %s (value: %s)\n", opt.Text, opt.Value)
		}
	}
	if len(q.Words) > 0 {
		fmt.Fprintf(&sb, "\nArrange these words into a sentence: %s\n", strings.Join(q.Words, ", "))
	}
	return sb.String()
}
