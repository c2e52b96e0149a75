package journey

import "github.com/spanish-quiz/backend/internal/models"

// QuestionMeta tags a question with the CEFR level it probes, the
// skills it exercises, and human-readable topics for the focus plan. A
// single question can contribute to several skills and topics.
type QuestionMeta struct {
	Level  models.LevelKey
	Skills []models.SkillKey
	Topics []string
}

// LevelWeight scales topic scores so misses on harder material count
// more when ranking weak and strong topics.
var LevelWeight = map[models.LevelKey]float64{
	models.LevelA1: 1.0,
	models.LevelA2: 1.1,
	models.LevelB1: 1.2,
	models.LevelB2: 1.3,
}

// LevelOrder lists the CEFR bands from easiest to hardest.
var LevelOrder = []models.LevelKey{models.LevelA1, models.LevelA2, models.LevelB1, models.LevelB2}

// MetaFromConfig collects the journey tags declared on a quiz's
// questions. Untagged questions are left out; the builder skips them
// rather than guessing at a level or skill.
func MetaFromConfig(cfg *models.QuizConfig) map[string]QuestionMeta {
	meta := make(map[string]QuestionMeta)
	for _, q := range cfg.Questions {
		if q.Level == "" && len(q.Skills) == 0 && len(q.Topics) == 0 {
			continue
		}
		skills := make([]models.SkillKey, 0, len(q.Skills))
		for _, s := range q.Skills {
			skills = append(skills, models.SkillKey(s))
		}
		meta[q.ID] = QuestionMeta{
			Level:  models.LevelKey(q.Level),
			Skills: skills,
			Topics: q.Topics,
		}
	}
	return meta
}
