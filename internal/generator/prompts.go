package generator

import (
	"fmt"
	"strings"

	"github.com/spanish-quiz/backend/internal/models"
)

// ── CEFR Level Descriptions ─────────────────────────────────

var levelDescriptions = map[string]string{
	"a1": `A1 (Beginner): greetings, numbers, everyday objects, present tense of
ser/estar/tener, gendered articles. Vocabulary a tourist picks up in the
first two weeks. Sentences of 4-7 words.`,

	"a2": `A2 (Elementary): daily routines, food, directions, preterite of
regular verbs, ser vs. estar distinctions, gustar constructions,
noun-adjective agreement. Sentences of 6-10 words.`,

	"b1": `B1 (Intermediate): opinions and plans, preterite vs. imperfect,
object pronouns, common subjunctive triggers (querer que, es importante que),
comparatives. Sentences of 8-14 words with one subordinate clause.`,

	"b2": `B2 (Upper intermediate): hypotheticals (si + imperfect subjunctive),
passive and impersonal se, nuanced connectors (sin embargo, a pesar de que),
idiomatic verb phrases. The register a university student would use.`,
}

var validLevels = map[string]bool{"a1": true, "a2": true, "b1": true, "b2": true}

// ── Construction Rules Per Question Type ───────────────────

var typeGuidelines = map[models.QuestionType]string{
	models.TypeMCQ: `MULTIPLE CHOICE (type "mcq"):
- Exactly 4 options. Prefix option text with "A) ", "B) ", "C) ", "D) ".
- "value" is a lowercase snake_case token derived from the option text.
- "correct_answer" must equal the value of exactly one option.
- Wrong answers must be plausible at the target level: same word class,
  common learner confusions (gender mix-ups, false friends, wrong
  conjugation person). Never nonsense fillers.
- Vary which position holds the correct answer across the batch.`,

	models.TypeImageSelection: `IMAGE SELECTION (type "image-selection"):
- Exactly 4 options. "text" is a short label for the image an
  illustrator will produce; "value" is the snake_case token.
- The title asks which image matches a Spanish word or phrase.
- "correct_answer" must equal the value of exactly one option.`,

	models.TypeText: `FREE TEXT (type "text"):
- One unambiguous correct answer of 1-3 words. Grading is accent and
  case insensitive, so do not rely on accents to disambiguate.
- Put the English instruction in the title and the Spanish prompt in
  the subtitle. "correct_answer" is the expected text.`,

	models.TypeFillInBlanks: `FILL IN THE BLANK (type "fill-in-blanks"):
- The subtitle contains the sentence with exactly one blank written as
  "___", followed by an English gloss in parentheses.
- The blank must have a single correct filler at the target level.
- "correct_answer" is the filler word or short phrase.`,

	models.TypeOrder: `WORD ORDERING (type "order"):
- "words" is the sentence split into 4-8 tokens, listed in SCRAMBLED
  order. "correct_answer" is the full sentence with the tokens
  separated by single spaces.
- Every token of "correct_answer" must appear in "words" exactly once.
- Choose sentences where exactly one ordering is grammatical.`,

	models.TypePronunciation: `PRONUNCIATION (type "pronunciation"):
- "word" is a single Spanish word of 3-5 syllables that learners at
  the target level transcribe after hearing it.
- Pick words with regular spelling; grading tolerates small typos.
- Set "correct_answer" equal to "word".`,

	models.TypeAudio: `LISTENING (type "audio"):
- The title asks what a short recorded phrase means or says. Put the
  Spanish text to record in the subtitle so a voice artist can read it.
- Provide 4 options in the multiple choice format and set
  "correct_answer" to the value of the right one.`,
}

// skillForType is the journey skill tag each question type maps to.
var skillForType = map[models.QuestionType]string{
	models.TypeMCQ:            "vocab",
	models.TypeImageSelection: "vocab",
	models.TypeText:           "grammar",
	models.TypeFillInBlanks:   "grammar",
	models.TypeOrder:          "grammar",
	models.TypePronunciation:  "usage",
	models.TypeAudio:          "listening",
}

// ── System Prompt ──────────────────────────────────────────

const systemPrompt = `You are an expert author of Spanish placement quiz
questions for English-speaking learners. You write questions calibrated to
CEFR levels, with instructions in English and target content in Spanish.

Every question you write must:
1. Test exactly one thing (one word, one form, one structure).
2. Be answerable without context the learner does not have.
3. Stay at the requested CEFR level: no vocabulary or grammar from a
   higher band leaking into prompts or distractors.
4. Use natural Latin American Spanish. Avoid vosotros forms.

OUTPUT FORMAT:
Respond with ONLY a JSON object, no markdown fences, no commentary:
{
  "questions": [
    {
      "type": "<question type>",
      "title": "<question prompt, English instructions>",
      "subtitle": "<optional secondary line>",
      "level": "<a1|a2|b1|b2>",
      "skill": "<grammar|vocab|listening|usage>",
      "topic": "<short topic label, e.g. 'Verb conjugation'>",
      "options": [{"text": "A) ...", "value": "..."}],
      "correct_answer": "...",
      "words": ["..."],
      "word": "..."
    }
  ]
}
Include only the fields the question type uses.`

func SystemPrompt() string {
	return systemPrompt
}

// BuildUserPrompt assembles the per-request prompt: level description,
// construction rules for the requested type, then batch instructions.
func BuildUserPrompt(req DraftRequest) string {
	count := req.Count
	if count < 1 {
		count = 3
	}
	if count > 10 {
		count = 10
	}

	level := strings.ToLower(req.Level)
	if !validLevels[level] {
		level = "a1"
	}

	var sb strings.Builder

	fmt.Fprintf(&sb, "Write %d Spanish quiz question(s) of type %q at CEFR level %s.\n\n",
		count, req.Type, strings.ToUpper(level))

	sb.WriteString("TARGET LEVEL:\n")
	sb.WriteString(levelDescriptions[level])
	sb.WriteString("\n\n")

	if rules, ok := typeGuidelines[req.Type]; ok {
		sb.WriteString("CONSTRUCTION RULES:\n")
		sb.WriteString(rules)
		sb.WriteString("\n\n")
	}

	if req.Topic != "" {
		fmt.Fprintf(&sb, "TOPIC: every question must test %q. Use this exact string as the \"topic\" field.\n\n", req.Topic)
	} else {
		sb.WriteString("TOPIC: vary the topics across the batch; no two questions may test the same word or form.\n\n")
	}

	if skill, ok := skillForType[req.Type]; ok {
		fmt.Fprintf(&sb, "Tag every question with \"level\": %q and \"skill\": %q.\n", level, skill)
	}

	sb.WriteString("Return the JSON object only.")

	return sb.String()
}
