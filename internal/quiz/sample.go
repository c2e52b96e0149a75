package quiz

import "github.com/spanish-quiz/backend/internal/models"

// SampleQuiz returns the bundled Spanish placement quiz. It exercises
// every supported question type, a conditional branch, and the CEFR
// result templates, and doubles as the seed row for a fresh database.
func SampleQuiz() models.QuizConfig {
	return models.QuizConfig{
		ID:            "spanish-placement",
		Title:         "Test Your Spanish Knowledge",
		Description:   "A casual and fun quiz to assess your Spanish language skills",
		IntroText:     "Answer the questions below and check your level at the end. ¡Buena suerte!",
		EstimatedTime: "5-7 minutes",
		Questions: []models.Question{
			{
				ID:       "q1",
				Level:    "a1",
				Skills:   []string{"vocab"},
				Topics:   []string{"Greetings"},
				Type:     models.TypeMCQ,
				Title:    `Greetings: How do you say "Hello" in Spanish?`,
				Required: true,
				Options: []models.QuizOption{
					{ID: "a1", Text: "A) Hola", Value: "hola"},
					{ID: "a2", Text: "B) Adiós", Value: "adios"},
					{ID: "a3", Text: "C) Gracias", Value: "gracias"},
					{ID: "a4", Text: "D) Por favor", Value: "porfavor"},
				},
				CorrectAnswer: "hola",
				// Someone who misses the very first greeting skips the
				// introductions question and goes straight to basics.
				ConditionalLogic: []models.ConditionRule{
					{AnswerID: "adios", NextQuestionID: "q3"},
				},
			},
			{
				ID:       "q2",
				Level:    "a1",
				Skills:   []string{"usage", "vocab"},
				Topics:   []string{"Introductions"},
				Type:     models.TypeMCQ,
				Title:    `Introductions: Someone asks, "¿Cómo te llamas?" How do you respond?`,
				Required: true,
				Options: []models.QuizOption{
					{ID: "a1", Text: "A) Me llamo Carlos.", Value: "me_llamo"},
					{ID: "a2", Text: "B) Estoy bien, gracias.", Value: "estoy_bien"},
					{ID: "a3", Text: "C) Buenos días.", Value: "buenos_dias"},
					{ID: "a4", Text: "D) Tengo 20 años.", Value: "tengo_anos"},
				},
				CorrectAnswer: "me_llamo",
			},
			{
				ID:       "q3",
				Level:    "a1",
				Skills:   []string{"grammar"},
				Topics:   []string{"Verb conjugation"},
				Type:     models.TypeFillInBlanks,
				Title:    `Basic Grammar: Choose the correct form of the verb "tener" (to have):`,
				Subtitle: "Ella ___ dos hermanos. (She has two brothers.)",
				HelpText: `Enter the correct form of the verb "tener" in the blank space.`,
				Required: true,
			},
			{
				ID:       "q4",
				Level:    "a1",
				Skills:   []string{"vocab"},
				Topics:   []string{"Everyday vocabulary"},
				Type:     models.TypeImageSelection,
				Title:    "Vocabulary: Which Spanish word matches the picture?",
				Subtitle: "Select the correct Spanish word for the image",
				Required: true,
				ImageOptions: []models.QuizImageOption{
					{ID: "a1", Src: "https://images.unsplash.com/photo-1560806887-1e4cd0b6cbd6", Alt: "Una manzana (Apple)", Value: "manzana"},
					{ID: "a2", Src: "https://images.unsplash.com/photo-1589924691995-400dc9ecc119", Alt: "Un perro (Dog)", Value: "perro"},
					{ID: "a3", Src: "https://images.unsplash.com/photo-1533090481720-856c6e3c1fdc", Alt: "Una mesa (Table)", Value: "mesa"},
				},
				CorrectAnswer: "manzana",
			},
			{
				ID:       "q5",
				Level:    "a2",
				Skills:   []string{"grammar"},
				Topics:   []string{"Ser vs. estar", "Verb conjugation"},
				Type:     models.TypeMCQ,
				Title:    `Basic Grammar: Complete the sentence: Yo ___ en casa. (I am at home.)`,
				Required: true,
				Options: []models.QuizOption{
					{ID: "a1", Text: "A) soy", Value: "soy"},
					{ID: "a2", Text: "B) estoy", Value: "estoy"},
					{ID: "a3", Text: "C) es", Value: "es"},
					{ID: "a4", Text: "D) tengo", Value: "tengo"},
				},
				CorrectAnswer: "estoy",
			},
			{
				ID:       "q6",
				Level:    "a2",
				Skills:   []string{"listening"},
				Topics:   []string{"Common questions"},
				Type:     models.TypeAudio,
				Title:    "Listening: Listen to the audio and choose the correct meaning.",
				Subtitle: "What does this Spanish phrase mean in English?",
				Required: true,
				AudioURL: "https://spanishvip.com/wp-content/uploads/2025/05/quizz-test.mp3",
				Options: []models.QuizOption{
					{ID: "a1", Text: "A) Where is the bathroom?", Value: "bathroom"},
					{ID: "a2", Text: "B) Where is the bank?", Value: "bank"},
					{ID: "a3", Text: "C) How are you?", Value: "how_are_you"},
					{ID: "a4", Text: "D) What time is it?", Value: "time"},
				},
			},
			{
				ID:       "q7",
				Level:    "a1",
				Skills:   []string{"usage", "vocab"},
				Topics:   []string{"Everyday phrases"},
				Type:     models.TypeText,
				Title:    `Everyday Phrase: How do you say "thank you" in Spanish?`,
				Required: true,
			},
			{
				ID:       "q8",
				Level:    "b1",
				Skills:   []string{"grammar"},
				Topics:   []string{"Sentence structure"},
				Type:     models.TypeOrder,
				Title:    "Sentence Structure: Put the words in the correct order.",
				Required: true,
				Order: &models.OrderPayload{
					Words:         []string{"estudiante", "yo", "soy"},
					CorrectAnswer: "yo soy estudiante",
				},
			},
			{
				ID:       "q9",
				Level:    "b1",
				Skills:   []string{"usage"},
				Topics:   []string{"Pronunciation"},
				Type:     models.TypePronunciation,
				Title:    "Pronunciation: Say the word below out loud.",
				HelpText: "Speak clearly into your microphone.",
				Required: false,
				Pronunciation: &models.PronunciationPayload{
					Word: "ferrocarril",
				},
			},
			{
				ID:       "q10",
				Level:    "a2",
				Skills:   []string{"grammar"},
				Topics:   []string{"Noun-adjective agreement", "Sentence structure"},
				Type:     models.TypeMCQ,
				Title:    "Sentence Structure: Which sentence is grammatically correct?",
				Required: true,
				Options: []models.QuizOption{
					{ID: "a1", Text: "A) La gato negra.", Value: "la_gato_negra"},
					{ID: "a2", Text: "B) El gato negro.", Value: "el_gato_negro"},
					{ID: "a3", Text: "C) El negro gato.", Value: "el_negro_gato"},
					{ID: "a4", Text: "D) Gato el negro.", Value: "gato_el_negro"},
				},
				CorrectAnswer: "el_gato_negro",
			},
		},
		// Fill-in and free-text answers live in the quiz-level key;
		// choice questions bundle their correct value directly.
		AnswerKey: models.AnswerKey{
			"q3": "tiene",
			"q6": "bathroom",
			"q7": "gracias",
		},
		ResultTemplates: []models.ResultTemplate{
			{
				ID:          "a1",
				Title:       "A1 • Beginner",
				Description: "You're just starting out. Everyone starts somewhere — we'll build your foundation together.",
				Conditions: []models.TemplateCondition{
					{QuestionID: "q1", AnswerID: "hola"},
					{QuestionID: "q3", Value: "tiene"},
				},
			},
			{
				ID:          "a2",
				Title:       "A2 • Elementary",
				Description: "You can handle routine tasks and common phrases in Spanish.",
				Conditions: []models.TemplateCondition{
					{QuestionID: "q1", AnswerID: "hola"},
					{QuestionID: "q2", AnswerID: "me_llamo"},
					{QuestionID: "q4", AnswerID: "manzana"},
					{QuestionID: "q5", AnswerID: "estoy"},
				},
			},
			{
				ID:          "b1",
				Title:       "B1 • Intermediate",
				Description: "You manage everyday situations and can explain opinions in Spanish.",
				Conditions: []models.TemplateCondition{
					{QuestionID: "q5", AnswerID: "estoy"},
					{QuestionID: "q6", AnswerID: "bathroom"},
					{QuestionID: "q7", Value: "gracias"},
					{QuestionID: "q8", Value: "yo soy estudiante"},
					{QuestionID: "q10", AnswerID: "el_gato_negro"},
				},
			},
			{
				ID:          "b2",
				Title:       "B2 • Upper-Intermediate",
				Description: "You hold spontaneous conversations with native speakers.",
				Conditions: []models.TemplateCondition{
					{QuestionID: "q6", AnswerID: "bathroom"},
					{QuestionID: "q8", Value: "yo soy estudiante"},
					{QuestionID: "q9", Value: "ferrocarril"},
					{QuestionID: "q10", AnswerID: "el_gato_negro"},
					{QuestionID: "q2", AnswerID: "me_llamo"},
					{QuestionID: "q4", AnswerID: "manzana"},
				},
			},
		},
	}
}
