package journey

import (
	"fmt"
	"strings"

	"github.com/spanish-quiz/backend/internal/models"
)

type levelCopy struct {
	Title       string
	Description string
	NextLevel   string
	Timeline    string
}

var levelCopies = map[models.LevelKey]levelCopy{
	models.LevelA1: {
		Title:       "A1 • Beginner",
		Description: "You recognize common words and simple phrases. A structured start will build momentum fast.",
		NextLevel:   "A2",
		Timeline:    "8-10 weeks",
	},
	models.LevelA2: {
		Title:       "A2 • Elementary",
		Description: "You handle routine exchanges and familiar topics. Time to stretch into real conversations.",
		NextLevel:   "B1",
		Timeline:    "10-12 weeks",
	},
	models.LevelB1: {
		Title:       "B1 • Intermediate",
		Description: "You manage everyday situations and can explain opinions. Fluency is within reach.",
		NextLevel:   "B2",
		Timeline:    "12-16 weeks",
	},
	models.LevelB2: {
		Title:       "B2 • Upper-Intermediate",
		Description: "You hold spontaneous conversations with native speakers. Polish and precision come next.",
		NextLevel:   "C1",
		Timeline:    "16-20 weeks",
	},
}

// milestonesByMotivation maps a participant's stated motivation to the
// concrete wins the focus-plan card promises.
var milestonesByMotivation = map[string][]string{
	"Travel": {
		"Order food and ask for directions with confidence",
		"Chat with locals beyond tourist phrases",
		"Handle bookings and small emergencies in Spanish",
	},
	"Family": {
		"Follow dinner-table conversations without translating",
		"Speak with relatives in their own words",
		"Share stories and jokes that land",
	},
	"Career": {
		"Introduce yourself and your work in Spanish",
		"Handle calls and emails with Spanish-speaking clients",
		"Add a language line to your resume you can back up",
	},
	"School": {
		"Keep up with class discussions",
		"Write short essays with correct grammar",
		"Walk into the oral exam prepared",
	},
}

var defaultMilestones = []string{
	"Hold a five-minute conversation entirely in Spanish",
	"Understand native speakers at natural speed",
	"Think in Spanish instead of translating",
}

func levelCopyFor(level models.LevelKey) levelCopy {
	if lc, ok := levelCopies[level]; ok {
		return lc
	}
	return levelCopies[models.LevelA1]
}

// buildCards assembles the four landing-page cards from the computed
// journey numbers and the participant's context.
func buildCards(data models.JourneyData, user models.JourneyUserContext) models.JourneyCards {
	lc := levelCopyFor(data.LevelID)

	milestones := defaultMilestones
	if m, ok := milestonesByMotivation[user.Motivation]; ok {
		milestones = m
	}

	minsPerDay := user.MinsPerDay
	if minsPerDay <= 0 {
		minsPerDay = 15
	}

	starting := models.CardContent{
		Title:    lc.Title,
		Subtitle: lc.Description,
		Progress: &models.CardProgress{
			Current: data.ProgressToNext,
			Target:  100,
			Label:   fmt.Sprintf("Progress toward %s", lc.NextLevel),
		},
		Stat: &models.CardStat{
			Label: "Readiness score",
			Value: fmt.Sprintf("%d/100", data.Readiness),
		},
	}

	focus := models.CardContent{
		Title:   "Your Focus Plan",
		Bullets: milestones,
		Chips:   data.WeakTopics,
	}
	if len(data.StrongTopics) > 0 {
		focus.Footnote = "Already strong: " + strings.Join(data.StrongTopics, ", ")
	}

	timeline := models.CardContent{
		Title:    fmt.Sprintf("Reach %s in %s", lc.NextLevel, lc.Timeline),
		Subtitle: fmt.Sprintf("Based on %d minutes a day with a personal tutor.", minsPerDay),
		CTA: &models.CardCTA{
			Label: "Build my study plan",
			Sub:   "Free placement review included",
		},
	}

	proof := models.CardContent{
		Title:    "Learn with a Real Tutor",
		Subtitle: "1-on-1 classes tailored to the gaps this quiz found.",
		Bullets: []string{
			"Native Spanish-speaking teachers",
			"Lessons built around your weak topics",
			"Flexible scheduling, cancel anytime",
		},
		CTA: &models.CardCTA{
			Label: "Book a free first class",
		},
	}

	return models.JourneyCards{
		StartingLevel: starting,
		FocusPlan:     focus,
		Timeline:      timeline,
		ProofTutor:    proof,
	}
}
