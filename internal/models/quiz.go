package models

type QuestionType string

const (
	TypeMCQ            QuestionType = "mcq"
	TypeImageSelection QuestionType = "image-selection"
	TypeAudio          QuestionType = "audio"
	TypeText           QuestionType = "text"
	TypeFillInBlanks   QuestionType = "fill-in-blanks"
	TypeOrder          QuestionType = "order"
	TypePronunciation  QuestionType = "pronunciation"
)

var ValidQuestionTypes = map[QuestionType]bool{
	TypeMCQ:            true,
	TypeImageSelection: true,
	TypeAudio:          true,
	TypeText:           true,
	TypeFillInBlanks:   true,
	TypeOrder:          true,
	TypePronunciation:  true,
}

// ── Core Structs ───────────────────────────────────────

// ConditionRule routes the flow to a specific next question when the
// answer to its owning question matches. Rules are evaluated in declared
// order; the first match wins.
type ConditionRule struct {
	AnswerID       string `json:"answer_id,omitempty"`
	Value          string `json:"value,omitempty"`
	NextQuestionID string `json:"next_question_id"`
}

type Question struct {
	ID       string       `json:"id"`
	Type     QuestionType `json:"type"`
	Title    string       `json:"title"`
	Subtitle string       `json:"subtitle,omitempty"`
	HelpText string       `json:"help_text,omitempty"`
	Required bool         `json:"required"`

	Options      []QuizOption      `json:"options,omitempty"`
	ImageOptions []QuizImageOption `json:"image_options,omitempty"`
	AudioURL     string            `json:"audio_url,omitempty"`

	Order         *OrderPayload         `json:"order_question,omitempty"`
	Pronunciation *PronunciationPayload `json:"pronunciation_question,omitempty"`

	// CorrectAnswer is the bundled correct value compiled from an
	// authoring template. When present it takes precedence over the
	// quiz-level answer key.
	CorrectAnswer string `json:"correct_answer,omitempty"`

	// Journey tagging. A question can probe several skills and topics
	// at once; untagged questions are ignored by the statistics builder.
	Level  string   `json:"level,omitempty"`
	Skills []string `json:"skills,omitempty"`
	Topics []string `json:"topics,omitempty"`

	ConditionalLogic []ConditionRule `json:"conditional_logic,omitempty"`
}

type QuizOption struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Value string `json:"value"`
}

type QuizImageOption struct {
	ID    string `json:"id"`
	Src   string `json:"src"`
	Alt   string `json:"alt"`
	Value string `json:"value"`
}

// OrderPayload presents Words in random permutation; the submission is
// the joined sentence, compared against CorrectAnswer.
type OrderPayload struct {
	Words         []string `json:"words"`
	CorrectAnswer string   `json:"correct_answer"`
}

type PronunciationPayload struct {
	Word string `json:"word"`
}

// TemplateCondition counts as a hit for its template when the answer to
// QuestionID equals AnswerID (option match) or Value (literal match).
type TemplateCondition struct {
	QuestionID string `json:"question_id"`
	AnswerID   string `json:"answer_id,omitempty"`
	Value      string `json:"value,omitempty"`
}

// ResultTemplate is a named outcome bucket (typically a CEFR level).
// A template with no conditions is a valid fallback.
type ResultTemplate struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Conditions  []TemplateCondition `json:"conditions"`
}

// AnswerKey maps question id to the canonical correct value for question
// types that are not self-describing. Immutable per quiz configuration.
type AnswerKey map[string]string

type QuizConfig struct {
	ID              string           `json:"id"`
	Title           string           `json:"title"`
	Description     string           `json:"description,omitempty"`
	LogoURL         string           `json:"logo_url,omitempty"`
	IntroText       string           `json:"intro_text,omitempty"`
	EstimatedTime   string           `json:"estimated_time,omitempty"`
	WebhookURL      string           `json:"webhook_url,omitempty"`
	Questions       []Question       `json:"questions"`
	ResultTemplates []ResultTemplate `json:"result_templates"`
	AnswerKey       AnswerKey        `json:"answer_key,omitempty"`
}

// QuestionByID returns the question with the given id, or nil.
func (c *QuizConfig) QuestionByID(id string) *Question {
	for i := range c.Questions {
		if c.Questions[i].ID == id {
			return &c.Questions[i]
		}
	}
	return nil
}
