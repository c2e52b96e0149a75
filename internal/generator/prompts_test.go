package generator

import (
	"strings"
	"testing"

	"github.com/spanish-quiz/backend/internal/models"
)

func TestBuildUserPromptBasics(t *testing.T) {
	prompt := BuildUserPrompt(DraftRequest{
		Type:  models.TypeMCQ,
		Level: "b1",
		Count: 5,
	})

	if !strings.Contains(prompt, "5 Spanish quiz question(s)") {
		t.Error("prompt missing count")
	}
	if !strings.Contains(prompt, "level B1") {
		t.Error("prompt missing level")
	}
	if !strings.Contains(prompt, "MULTIPLE CHOICE") {
		t.Error("prompt missing construction rules for mcq")
	}
	if !strings.Contains(prompt, `"skill": "vocab"`) {
		t.Error("prompt missing skill tag instruction")
	}
}

func TestBuildUserPromptDefaults(t *testing.T) {
	prompt := BuildUserPrompt(DraftRequest{Type: models.TypeText})

	// Count defaults to 3, level defaults to a1.
	if !strings.Contains(prompt, "3 Spanish quiz question(s)") {
		t.Error("count did not default to 3")
	}
	if !strings.Contains(prompt, "level A1") {
		t.Error("level did not default to a1")
	}
}

func TestBuildUserPromptClampsCount(t *testing.T) {
	prompt := BuildUserPrompt(DraftRequest{Type: models.TypeMCQ, Level: "a1", Count: 50})
	if !strings.Contains(prompt, "10 Spanish quiz question(s)") {
		t.Error("count not clamped to 10")
	}
}

func TestBuildUserPromptTopic(t *testing.T) {
	withTopic := BuildUserPrompt(DraftRequest{Type: models.TypeFillInBlanks, Level: "a2", Topic: "Ser vs. estar", Count: 2})
	if !strings.Contains(withTopic, `"Ser vs. estar"`) {
		t.Error("requested topic missing from prompt")
	}

	withoutTopic := BuildUserPrompt(DraftRequest{Type: models.TypeFillInBlanks, Level: "a2", Count: 2})
	if !strings.Contains(withoutTopic, "vary the topics") {
		t.Error("topic-free prompt should ask for varied topics")
	}
}

func TestTypeGuidelinesCoverAllTypes(t *testing.T) {
	for qt := range models.ValidQuestionTypes {
		if _, ok := typeGuidelines[qt]; !ok {
			t.Errorf("no construction rules for type %q", qt)
		}
		if _, ok := skillForType[qt]; !ok {
			t.Errorf("no skill tag for type %q", qt)
		}
	}
}

func TestLevelDescriptionsCoverValidLevels(t *testing.T) {
	for lvl := range validLevels {
		if _, ok := levelDescriptions[lvl]; !ok {
			t.Errorf("no description for level %q", lvl)
		}
	}
}

func TestSystemPromptMentionsOutputContract(t *testing.T) {
	sp := SystemPrompt()
	for _, want := range []string{`"questions"`, "ONLY a JSON object", "CEFR"} {
		if !strings.Contains(sp, want) {
			t.Errorf("system prompt missing %q", want)
		}
	}
}
