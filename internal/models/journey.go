package models

type LevelKey string

const (
	LevelA1 LevelKey = "a1"
	LevelA2 LevelKey = "a2"
	LevelB1 LevelKey = "b1"
	LevelB2 LevelKey = "b2"
)

type SkillKey string

const (
	SkillVocab     SkillKey = "vocab"
	SkillGrammar   SkillKey = "grammar"
	SkillListening SkillKey = "listening"
	SkillUsage     SkillKey = "usage"
)

// JourneyUserContext adapts the landing-page copy to the participant.
type JourneyUserContext struct {
	Motivation   string   `json:"motivation,omitempty"` // Travel, Family, Career, School
	MinsPerDay   int      `json:"mins_per_day,omitempty"`
	Availability []string `json:"availability,omitempty"`
}

type CardProgress struct {
	Current int    `json:"current"`
	Target  int    `json:"target"`
	Label   string `json:"label,omitempty"`
}

type CardStat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type CardCTA struct {
	Label string `json:"label"`
	Sub   string `json:"sub,omitempty"`
}

type CardContent struct {
	Title    string        `json:"title"`
	Subtitle string        `json:"subtitle,omitempty"`
	Bullets  []string      `json:"bullets,omitempty"`
	Chips    []string      `json:"chips,omitempty"`
	Progress *CardProgress `json:"progress,omitempty"`
	Stat     *CardStat     `json:"stat,omitempty"`
	CTA      *CardCTA      `json:"cta,omitempty"`
	Footnote string        `json:"footnote,omitempty"`
}

type JourneyTotals struct {
	TotalCorrect int                  `json:"total_correct"`
	ByLevel      map[LevelKey]int     `json:"by_level"`
	BySkillPct   map[SkillKey]int     `json:"by_skill_pct"`
}

type JourneyCards struct {
	StartingLevel CardContent `json:"starting_level"`
	FocusPlan     CardContent `json:"focus_plan"`
	Timeline      CardContent `json:"timeline"`
	ProofTutor    CardContent `json:"proof_tutor"`
}

// JourneyData is the derived statistics snapshot driving the conversion
// landing page. Pure function of its inputs; recomputed on every call.
type JourneyData struct {
	LevelID          LevelKey     `json:"level_id"`
	LevelTitle       string       `json:"level_title"`
	LevelDescription string       `json:"level_description"`
	Totals           JourneyTotals `json:"totals"`
	WeakTopics       []string     `json:"weak_topics"`
	StrongTopics     []string     `json:"strong_topics"`
	Readiness        int          `json:"readiness"`
	ProgressToNext   int          `json:"progress_to_next"`
	Cards            JourneyCards `json:"cards"`
}
