package quiz

import "github.com/spanish-quiz/backend/internal/models"

// AnswerList is an ordered map of question id to the latest answer.
// Re-answering a question replaces the stored answer in place and keeps
// the original arrival position. Exclusively owned by one session; not
// safe for concurrent use.
type AnswerList struct {
	order   []string
	byID    map[string]int
	answers []models.Answer
}

func NewAnswerList() *AnswerList {
	return &AnswerList{byID: make(map[string]int)}
}

// Put records or replaces the answer for its question id.
func (l *AnswerList) Put(a models.Answer) {
	if idx, ok := l.byID[a.QuestionID]; ok {
		l.answers[idx] = a
		return
	}
	l.byID[a.QuestionID] = len(l.answers)
	l.order = append(l.order, a.QuestionID)
	l.answers = append(l.answers, a)
}

// Get returns the latest answer for a question id.
func (l *AnswerList) Get(questionID string) (models.Answer, bool) {
	idx, ok := l.byID[questionID]
	if !ok {
		return models.Answer{}, false
	}
	return l.answers[idx], true
}

func (l *AnswerList) Len() int {
	return len(l.answers)
}

// All returns the answers in arrival order. The returned slice is a copy;
// mutating it does not affect the list.
func (l *AnswerList) All() []models.Answer {
	out := make([]models.Answer, len(l.answers))
	copy(out, l.answers)
	return out
}
