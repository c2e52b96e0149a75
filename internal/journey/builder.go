package journey

import (
	"math"
	"sort"

	"github.com/spanish-quiz/backend/internal/models"
)

// Readiness blends the per-skill percentages into a single 0-100 score.
// Grammar dominates because it predicts placement accuracy best.
const (
	readinessGrammarWeight   = 0.40
	readinessVocabWeight     = 0.25
	readinessListeningWeight = 0.25
	readinessUsageWeight     = 0.10
)

const maxRankedTopics = 3

// BuildJourney derives the landing-page statistics snapshot from a graded
// answer set: per-level and per-skill tallies, ranked weak and strong
// topics, the readiness score, progress toward the next CEFR band, and
// the four personalized cards. Pure function of its inputs.
func BuildJourney(graded []models.GradedAnswer, meta map[string]QuestionMeta, chosen models.ResultTemplate, user models.JourneyUserContext) models.JourneyData {
	levelID := levelFromTemplate(chosen)

	totals := models.JourneyTotals{
		ByLevel:    make(map[models.LevelKey]int),
		BySkillPct: make(map[models.SkillKey]int),
	}

	skillCorrect := make(map[models.SkillKey]int)
	skillTotal := make(map[models.SkillKey]int)
	bandCorrect := make(map[models.LevelKey]int)
	bandTotal := make(map[models.LevelKey]int)

	weak := newTopicRanker()
	strong := newTopicRanker()

	for _, g := range graded {
		m, ok := meta[g.QuestionID]
		if !ok {
			continue
		}
		weight := LevelWeight[m.Level]
		bandTotal[m.Level]++
		for _, skill := range m.Skills {
			skillTotal[skill]++
		}
		if g.Correct {
			totals.TotalCorrect++
			totals.ByLevel[m.Level]++
			bandCorrect[m.Level]++
			for _, skill := range m.Skills {
				skillCorrect[skill]++
			}
		}
		for _, topic := range m.Topics {
			if g.Correct {
				strong.add(topic, weight)
			} else {
				// Misses still register the topic so the strong
				// ranking covers everything observed, at score zero.
				strong.add(topic, 0)
				weak.add(topic, weight)
			}
		}
	}

	for _, skill := range []models.SkillKey{models.SkillVocab, models.SkillGrammar, models.SkillListening, models.SkillUsage} {
		totals.BySkillPct[skill] = pct(skillCorrect[skill], skillTotal[skill])
	}

	readiness := clampPct(int(math.Round(
		readinessGrammarWeight*float64(totals.BySkillPct[models.SkillGrammar]) +
			readinessVocabWeight*float64(totals.BySkillPct[models.SkillVocab]) +
			readinessListeningWeight*float64(totals.BySkillPct[models.SkillListening]) +
			readinessUsageWeight*float64(totals.BySkillPct[models.SkillUsage]))))

	lc := levelCopyFor(levelID)
	data := models.JourneyData{
		LevelID:          levelID,
		LevelTitle:       lc.Title,
		LevelDescription: lc.Description,
		Totals:           totals,
		WeakTopics:       weak.top(maxRankedTopics),
		StrongTopics:     strong.top(maxRankedTopics),
		Readiness:        readiness,
		ProgressToNext:   progressToNext(levelID, bandCorrect, bandTotal),
	}
	data.Cards = buildCards(data, user)
	return data
}

// levelFromTemplate maps a chosen result template to a CEFR band. CEFR
// ids pass through; the legacy score-policy ids map onto the band scale;
// anything unrecognized starts the journey at A1.
func levelFromTemplate(chosen models.ResultTemplate) models.LevelKey {
	switch chosen.ID {
	case "a1", "a2", "b1", "b2":
		return models.LevelKey(chosen.ID)
	case "intermediate":
		return models.LevelB1
	case "advanced":
		return models.LevelB2
	default:
		return models.LevelA1
	}
}

// progressToNext measures headway into the band above the placed level:
// percent correct among that next band's questions. The top band has no
// band above it and always reports 100.
func progressToNext(level models.LevelKey, bandCorrect, bandTotal map[models.LevelKey]int) int {
	for i, band := range LevelOrder {
		if band != level {
			continue
		}
		if i == len(LevelOrder)-1 {
			return 100
		}
		next := LevelOrder[i+1]
		return pct(bandCorrect[next], bandTotal[next])
	}
	return 0
}

func pct(correct, total int) int {
	if total == 0 {
		return 0
	}
	return clampPct(int(math.Round(float64(correct) / float64(total) * 100)))
}

func clampPct(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// topicRanker accumulates weighted scores per topic and returns the
// highest-scoring ones. Ties keep first-seen order so the output is
// stable for identical inputs.
type topicRanker struct {
	order  []string
	scores map[string]float64
}

func newTopicRanker() *topicRanker {
	return &topicRanker{scores: make(map[string]float64)}
}

func (r *topicRanker) add(topic string, weight float64) {
	if _, ok := r.scores[topic]; !ok {
		r.order = append(r.order, topic)
	}
	r.scores[topic] += weight
}

func (r *topicRanker) top(n int) []string {
	ranked := make([]string, len(r.order))
	copy(ranked, r.order)
	sort.SliceStable(ranked, func(i, j int) bool {
		return r.scores[ranked[i]] > r.scores[ranked[j]]
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
