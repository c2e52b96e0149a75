package quiz

import (
	"testing"

	"github.com/spanish-quiz/backend/internal/models"
)

func mcqQuestion(id, correct string) *models.Question {
	return &models.Question{
		ID:   id,
		Type: models.TypeMCQ,
		Options: []models.QuizOption{
			{ID: "a1", Text: "A) Hola", Value: "hola"},
			{ID: "a2", Text: "B) Adiós", Value: "adios"},
		},
		CorrectAnswer: correct,
	}
}

func TestGradeSkippedNeverCorrect(t *testing.T) {
	questions := []*models.Question{
		mcqQuestion("q1", "hola"),
		{ID: "q2", Type: models.TypeFillInBlanks},
		{ID: "q3", Type: models.TypeOrder, Order: &models.OrderPayload{Words: []string{"yo", "soy"}, CorrectAnswer: "yo soy"}},
		{ID: "q4", Type: models.TypePronunciation, Pronunciation: &models.PronunciationPayload{Word: "hola"}},
	}
	key := models.AnswerKey{"q2": "tiene"}

	for _, q := range questions {
		if Grade(q, key, "") {
			t.Errorf("question %s: empty submission must grade incorrect", q.ID)
		}
	}
}

func TestGradeChoiceTypes(t *testing.T) {
	q := mcqQuestion("q1", "hola")

	if !Grade(q, nil, "hola") {
		t.Error("exact choice match should be correct")
	}
	if Grade(q, nil, "Hola") {
		t.Error("choice grading is case-sensitive")
	}
	if Grade(q, nil, "adios") {
		t.Error("wrong choice should be incorrect")
	}
}

func TestGradeBundledAnswerWinsOverKey(t *testing.T) {
	q := mcqQuestion("q1", "hola")
	key := models.AnswerKey{"q1": "adios"}

	if !Grade(q, key, "hola") {
		t.Error("bundled correct answer should take precedence over the answer key")
	}
	if Grade(q, key, "adios") {
		t.Error("answer key value should be ignored when a bundled answer exists")
	}
}

func TestGradeKeyFallback(t *testing.T) {
	q := &models.Question{ID: "q1", Type: models.TypeMCQ, Options: []models.QuizOption{
		{ID: "a1", Text: "A) Hola", Value: "hola"},
	}}
	key := models.AnswerKey{"q1": "hola"}

	if !Grade(q, key, "hola") {
		t.Error("answer key should resolve the correct value when no bundled answer exists")
	}
	if Grade(q, nil, "hola") {
		t.Error("no resolvable correct value must grade incorrect, not correct")
	}
}

func TestGradeFreeText(t *testing.T) {
	q := &models.Question{ID: "q2", Type: models.TypeFillInBlanks}
	key := models.AnswerKey{"q2": "tiene"}

	tests := []struct {
		value string
		want  bool
	}{
		{"tiene", true},
		{"Tiene", true},     // case-insensitive
		{"  tiene  ", true}, // trimmed
		{"tienen", false},   // no fuzzy tolerance for fill-in
		{"", false},
	}

	for _, tt := range tests {
		got := Grade(q, key, tt.value)
		if got != tt.want {
			t.Errorf("Grade(fill-in, %q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestGradeWordOrdering(t *testing.T) {
	q := &models.Question{
		ID:    "q8",
		Type:  models.TypeOrder,
		Order: &models.OrderPayload{Words: []string{"estudiante", "yo", "soy"}, CorrectAnswer: "yo soy estudiante"},
	}

	if !Grade(q, nil, "yo soy estudiante") {
		t.Error("canonical order should be correct")
	}
	if !Grade(q, nil, "Yo Soy Estudiante") {
		t.Error("ordering comparison is case-insensitive")
	}
	if Grade(q, nil, "estudiante yo soy") {
		t.Error("order matters — permuted sentence must be incorrect")
	}
}

func TestGradePronunciationFuzzy(t *testing.T) {
	q := &models.Question{
		ID:            "q9",
		Type:          models.TypePronunciation,
		Pronunciation: &models.PronunciationPayload{Word: "ferrocarril"},
	}

	if !Grade(q, nil, "ferrocarril") {
		t.Error("exact pronunciation should be correct")
	}
	if !Grade(q, nil, "ferocarril") {
		t.Error("near-miss transcription should pass the fuzzy comparator")
	}
	if Grade(q, nil, "biblioteca") {
		t.Error("unrelated word should fail")
	}
}

func TestCorrectAnswerText(t *testing.T) {
	mcq := mcqQuestion("q1", "hola")
	if got := CorrectAnswerText(mcq, nil); got != "A) Hola" {
		t.Errorf("mcq correct answer text = %q, want option display text", got)
	}

	img := &models.Question{
		ID:   "q4",
		Type: models.TypeImageSelection,
		ImageOptions: []models.QuizImageOption{
			{ID: "a1", Src: "x.jpg", Alt: "Una manzana (Apple)", Value: "manzana"},
		},
		CorrectAnswer: "manzana",
	}
	if got := CorrectAnswerText(img, nil); got != "Una manzana (Apple)" {
		t.Errorf("image correct answer text = %q, want alt text", got)
	}

	order := &models.Question{
		ID:    "q8",
		Type:  models.TypeOrder,
		Order: &models.OrderPayload{Words: []string{"yo", "soy"}, CorrectAnswer: "yo soy"},
	}
	if got := CorrectAnswerText(order, nil); got != "yo soy" {
		t.Errorf("order correct answer text = %q, want canonical sentence", got)
	}
}

func TestGradeQuestionSetCoversEveryQuestion(t *testing.T) {
	cfg := SampleQuiz()
	answers := []models.Answer{
		{QuestionID: "q1", Type: models.TypeMCQ, Value: "hola"},
		{QuestionID: "q3", Type: models.TypeFillInBlanks, Value: "Tiene"},
	}

	graded := GradeQuestionSet(&cfg, answers)
	if len(graded) != len(cfg.Questions) {
		t.Fatalf("graded %d entries, want one per question (%d)", len(graded), len(cfg.Questions))
	}

	byID := make(map[string]models.GradedAnswer)
	for _, g := range graded {
		byID[g.QuestionID] = g
	}
	if !byID["q1"].Correct {
		t.Error("q1 should be correct")
	}
	if !byID["q3"].Correct {
		t.Error("q3 should be correct (case-insensitive fill-in)")
	}
	if byID["q2"].Correct {
		t.Error("unanswered q2 should be incorrect")
	}
}
