package generator

import (
	"strings"
	"testing"

	"github.com/spanish-quiz/backend/internal/models"
)

const validBatchJSON = `{
  "questions": [
    {
      "type": "mcq",
      "title": "Vocabulary: How do you say \"the cat\" in Spanish?",
      "level": "a1",
      "skill": "vocab",
      "topic": "Animals",
      "options": [
        {"text": "A) El gato", "value": "el_gato"},
        {"text": "B) El perro", "value": "el_perro"},
        {"text": "C) La vaca", "value": "la_vaca"},
        {"text": "D) El pato", "value": "el_pato"}
      ],
      "correct_answer": "el_gato"
    },
    {
      "type": "order",
      "title": "Arrange the words into a correct sentence:",
      "level": "a2",
      "skill": "grammar",
      "topic": "Sentence structure",
      "words": ["gusta", "me", "café", "el"],
      "correct_answer": "me gusta el café"
    },
    {
      "type": "pronunciation",
      "title": "Listen and type the word you hear.",
      "level": "b1",
      "skill": "usage",
      "topic": "Pronunciation",
      "word": "desarrollo",
      "correct_answer": "desarrollo"
    }
  ]
}`

func TestParseResponseValid(t *testing.T) {
	batch, err := ParseResponse(validBatchJSON)
	if err != nil {
		t.Fatalf("ParseResponse failed: %v", err)
	}
	if len(batch.Questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(batch.Questions))
	}
	if batch.Questions[0].Type != models.TypeMCQ {
		t.Errorf("expected mcq, got %s", batch.Questions[0].Type)
	}
	if batch.Questions[1].CorrectAnswer != "me gusta el café" {
		t.Errorf("unexpected order answer %q", batch.Questions[1].CorrectAnswer)
	}
}

func TestParseResponseStripsCodeFences(t *testing.T) {
	fenced := "```json\n" + validBatchJSON + "\n```"
	batch, err := ParseResponse(fenced)
	if err != nil {
		t.Fatalf("ParseResponse with fences failed: %v", err)
	}
	if len(batch.Questions) != 3 {
		t.Errorf("expected 3 questions, got %d", len(batch.Questions))
	}
}

func TestParseResponseIgnoresCommentary(t *testing.T) {
	wrapped := "Here are your questions:\n\n" + validBatchJSON + "\n\nLet me know if you need more."
	if _, err := ParseResponse(wrapped); err != nil {
		t.Fatalf("ParseResponse with commentary failed: %v", err)
	}
}

func TestParseResponseErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantSub string
	}{
		{"no json", "sorry, I cannot do that", "no JSON object"},
		{"malformed", `{"questions": [}`, "invalid JSON"},
		{"empty batch", `{"questions": []}`, "no questions"},
		{"unknown type", `{"questions":[{"type":"essay","title":"Write about your day","level":"a1"}]}`, "unknown type"},
		{"bad level", `{"questions":[{"type":"text","title":"Translate: the house","level":"c2","correct_answer":"la casa"}]}`, "invalid level"},
		{"mcq answer matches nothing", `{"questions":[{"type":"mcq","title":"Pick the right article for 'mesa':","level":"a1",
			"options":[{"text":"A) el","value":"el"},{"text":"B) la","value":"la"}],"correct_answer":"los"}]}`, "matches no option"},
		{"duplicate option values", `{"questions":[{"type":"mcq","title":"Pick the right article for 'mesa':","level":"a1",
			"options":[{"text":"A) el","value":"el"},{"text":"B) la","value":"el"}],"correct_answer":"el"}]}`, "duplicate option"},
		{"missing text answer", `{"questions":[{"type":"text","title":"Translate: the house","level":"a1"}]}`, "missing correct_answer"},
		{"order answer not a permutation", `{"questions":[{"type":"order","title":"Arrange:","level":"a1",
			"words":["yo","soy","alto"],"correct_answer":"yo soy muy alto"}]}`, "not an arrangement"},
		{"pronunciation without word", `{"questions":[{"type":"pronunciation","title":"Type what you hear.","level":"a1"}]}`, "missing word"},
	}

	for _, tt := range tests {
		_, err := ParseResponse(tt.content)
		if err == nil {
			t.Errorf("%s: expected error", tt.name)
			continue
		}
		if !strings.Contains(err.Error(), tt.wantSub) {
			t.Errorf("%s: error %q does not mention %q", tt.name, err, tt.wantSub)
		}
	}
}

func TestIsPermutation(t *testing.T) {
	tests := []struct {
		words    []string
		sentence string
		want     bool
	}{
		{[]string{"yo", "soy", "alto"}, "yo soy alto", true},
		{[]string{"yo", "soy", "alto"}, "soy yo alto", true}, // order not checked, only the multiset
		{[]string{"yo", "soy", "alto"}, "yo soy", false},
		{[]string{"yo", "yo", "soy"}, "yo soy yo", true},
		{[]string{"yo", "yo", "soy"}, "yo soy soy", false},
	}
	for _, tt := range tests {
		if got := isPermutation(tt.words, tt.sentence); got != tt.want {
			t.Errorf("isPermutation(%v, %q) = %v, want %v", tt.words, tt.sentence, got, tt.want)
		}
	}
}

func TestToQuestions(t *testing.T) {
	batch, err := ParseResponse(validBatchJSON)
	if err != nil {
		t.Fatalf("ParseResponse failed: %v", err)
	}

	questions := ToQuestions(batch, "gen")
	if len(questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(questions))
	}

	mcq := questions[0]
	if mcq.ID != "gen-1" {
		t.Errorf("unexpected id %q", mcq.ID)
	}
	if len(mcq.Options) != 4 || mcq.Options[0].ID != "gen-1-o1" {
		t.Errorf("mcq options not materialized: %+v", mcq.Options)
	}
	if mcq.CorrectAnswer != "el_gato" {
		t.Errorf("mcq correct answer %q", mcq.CorrectAnswer)
	}
	if !mcq.Required {
		t.Error("drafted questions default to required")
	}

	order := questions[1]
	if order.Order == nil || order.Order.CorrectAnswer != "me gusta el café" {
		t.Errorf("order payload not materialized: %+v", order.Order)
	}

	pron := questions[2]
	if pron.Pronunciation == nil || pron.Pronunciation.Word != "desarrollo" {
		t.Errorf("pronunciation payload not materialized: %+v", pron.Pronunciation)
	}
}

func TestToQuestionsValidatesAsQuizConfig(t *testing.T) {
	// A parsed batch must convert into questions the admin can save
	// without further edits.
	batch, err := ParseResponse(validBatchJSON)
	if err != nil {
		t.Fatalf("ParseResponse failed: %v", err)
	}

	questions := ToQuestions(batch, "draft")
	seen := map[string]bool{}
	for _, q := range questions {
		if seen[q.ID] {
			t.Errorf("duplicate generated id %q", q.ID)
		}
		seen[q.ID] = true
		if !models.ValidQuestionTypes[q.Type] {
			t.Errorf("question %s: invalid type %q", q.ID, q.Type)
		}
	}
}
