package quiz

import (
	"testing"

	"github.com/spanish-quiz/backend/internal/models"
)

func TestAnswerListPutReplacesInPlace(t *testing.T) {
	l := NewAnswerList()
	l.Put(models.Answer{QuestionID: "q1", Value: "adios"})
	l.Put(models.Answer{QuestionID: "q2", Value: "me_llamo"})
	l.Put(models.Answer{QuestionID: "q1", Value: "hola"})

	if l.Len() != 2 {
		t.Fatalf("len = %d, want 2 (re-answer replaces, not appends)", l.Len())
	}

	got, ok := l.Get("q1")
	if !ok || got.Value != "hola" {
		t.Errorf("q1 = %+v, want the latest value", got)
	}

	all := l.All()
	if all[0].QuestionID != "q1" || all[1].QuestionID != "q2" {
		t.Error("re-answering must keep the original arrival position")
	}
}

func TestAnswerListGetMissing(t *testing.T) {
	l := NewAnswerList()
	if _, ok := l.Get("q1"); ok {
		t.Error("missing question id should report not found")
	}
}

func TestAnswerListAllReturnsCopy(t *testing.T) {
	l := NewAnswerList()
	l.Put(models.Answer{QuestionID: "q1", Value: "hola"})

	all := l.All()
	all[0].Value = "mutated"

	got, _ := l.Get("q1")
	if got.Value != "hola" {
		t.Error("mutating the All() slice must not affect the list")
	}
}
