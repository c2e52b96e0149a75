package generator

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spanish-quiz/backend/internal/models"
)

// DraftOption is an answer option as the model emits it, before ids are
// assigned.
type DraftOption struct {
	Text  string `json:"text"`
	Value string `json:"value"`
}

// DraftQuestion is a model-authored question awaiting admin review.
type DraftQuestion struct {
	Type     models.QuestionType `json:"type"`
	Title    string              `json:"title"`
	Subtitle string              `json:"subtitle,omitempty"`

	Level string `json:"level"`
	Skill string `json:"skill"`
	Topic string `json:"topic"`

	Options       []DraftOption `json:"options,omitempty"`
	CorrectAnswer string        `json:"correct_answer"`
	Words         []string      `json:"words,omitempty"`
	Word          string        `json:"word,omitempty"`
}

type DraftBatch struct {
	Questions []DraftQuestion `json:"questions"`
}

// ParseResponse extracts and validates the draft batch from raw model
// output. Models occasionally wrap JSON in markdown fences or prepend
// commentary despite instructions, so both are stripped first.
func ParseResponse(content string) (*DraftBatch, error) {
	cleaned := stripCodeFences(content)

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("no JSON object found in response")
	}
	cleaned = cleaned[start : end+1]

	var batch DraftBatch
	if err := json.Unmarshal([]byte(cleaned), &batch); err != nil {
		return nil, fmt.Errorf("invalid JSON in response: %w", err)
	}

	if err := validateBatch(&batch); err != nil {
		return nil, err
	}

	return &batch, nil
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		}
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}

func validateBatch(batch *DraftBatch) error {
	if len(batch.Questions) == 0 {
		return fmt.Errorf("batch contains no questions")
	}

	for i, q := range batch.Questions {
		if err := validateDraft(&q); err != nil {
			return fmt.Errorf("question %d: %w", i+1, err)
		}
	}
	return nil
}

func validateDraft(q *DraftQuestion) error {
	if !models.ValidQuestionTypes[q.Type] {
		return fmt.Errorf("unknown type %q", q.Type)
	}
	if strings.TrimSpace(q.Title) == "" {
		return fmt.Errorf("empty title")
	}
	if !validLevels[strings.ToLower(q.Level)] {
		return fmt.Errorf("invalid level %q", q.Level)
	}

	switch q.Type {
	case models.TypeMCQ, models.TypeImageSelection, models.TypeAudio:
		if len(q.Options) < 2 {
			return fmt.Errorf("choice question needs at least 2 options, got %d", len(q.Options))
		}
		seen := make(map[string]bool, len(q.Options))
		matched := false
		for _, opt := range q.Options {
			if opt.Value == "" {
				return fmt.Errorf("option with empty value")
			}
			if seen[opt.Value] {
				return fmt.Errorf("duplicate option value %q", opt.Value)
			}
			seen[opt.Value] = true
			if opt.Value == q.CorrectAnswer {
				matched = true
			}
		}
		if !matched {
			return fmt.Errorf("correct_answer %q matches no option", q.CorrectAnswer)
		}

	case models.TypeText, models.TypeFillInBlanks:
		if strings.TrimSpace(q.CorrectAnswer) == "" {
			return fmt.Errorf("missing correct_answer")
		}

	case models.TypeOrder:
		if len(q.Words) < 2 {
			return fmt.Errorf("ordering question needs at least 2 words, got %d", len(q.Words))
		}
		if !isPermutation(q.Words, q.CorrectAnswer) {
			return fmt.Errorf("correct_answer is not an arrangement of the word bank")
		}

	case models.TypePronunciation:
		if strings.TrimSpace(q.Word) == "" {
			return fmt.Errorf("missing word")
		}
	}

	return nil
}

// isPermutation reports whether sentence uses each word from the bank
// exactly once.
func isPermutation(words []string, sentence string) bool {
	tokens := strings.Fields(sentence)
	if len(tokens) != len(words) {
		return false
	}
	counts := make(map[string]int, len(words))
	for _, w := range words {
		counts[w]++
	}
	for _, t := range tokens {
		counts[t]--
		if counts[t] < 0 {
			return false
		}
	}
	return true
}

// ToQuestions converts a validated batch into quiz questions with
// assigned ids. The id prefix keeps drafts distinguishable when an
// admin merges several batches into one quiz.
func ToQuestions(batch *DraftBatch, idPrefix string) []models.Question {
	if idPrefix == "" {
		idPrefix = "draft"
	}

	out := make([]models.Question, 0, len(batch.Questions))
	for i, d := range batch.Questions {
		q := models.Question{
			ID:       fmt.Sprintf("%s-%d", idPrefix, i+1),
			Type:     d.Type,
			Title:    d.Title,
			Subtitle: d.Subtitle,
			Required: true,
			Level:    strings.ToLower(d.Level),
		}
		// Drafts test one thing apiece, so they carry a single skill
		// and topic; the config schema allows several.
		if d.Skill != "" {
			q.Skills = []string{d.Skill}
		}
		if d.Topic != "" {
			q.Topics = []string{d.Topic}
		}

		switch d.Type {
		case models.TypeMCQ, models.TypeAudio:
			q.Options = make([]models.QuizOption, len(d.Options))
			for j, opt := range d.Options {
				q.Options[j] = models.QuizOption{
					ID:    fmt.Sprintf("%s-%d-o%d", idPrefix, i+1, j+1),
					Text:  opt.Text,
					Value: opt.Value,
				}
			}
			q.CorrectAnswer = d.CorrectAnswer

		case models.TypeImageSelection:
			q.ImageOptions = make([]models.QuizImageOption, len(d.Options))
			for j, opt := range d.Options {
				q.ImageOptions[j] = models.QuizImageOption{
					ID:    fmt.Sprintf("%s-%d-o%d", idPrefix, i+1, j+1),
					Alt:   opt.Text,
					Value: opt.Value,
				}
			}
			q.CorrectAnswer = d.CorrectAnswer

		case models.TypeText, models.TypeFillInBlanks:
			q.CorrectAnswer = d.CorrectAnswer

		case models.TypeOrder:
			q.Order = &models.OrderPayload{
				Words:         d.Words,
				CorrectAnswer: d.CorrectAnswer,
			}

		case models.TypePronunciation:
			q.Pronunciation = &models.PronunciationPayload{Word: d.Word}
		}

		out = append(out, q)
	}
	return out
}
