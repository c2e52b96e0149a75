package quiz

import "github.com/spanish-quiz/backend/internal/models"

// NextQuestionID computes the id of the question that follows currentID.
// Branch rules on the current question are evaluated in declared order
// against its latest answer; the first match wins. With no match the flow
// falls through to the next question in list order. Returns empty string
// when the quiz is complete (last question) or currentID is unknown —
// an unknown id is a configuration bug upstream, not an error here.
func NextQuestionID(currentID string, answers []models.Answer, questions []models.Question) string {
	currentIndex := -1
	for i := range questions {
		if questions[i].ID == currentID {
			currentIndex = i
			break
		}
	}
	if currentIndex == -1 {
		return ""
	}

	current := &questions[currentIndex]
	if len(current.ConditionalLogic) > 0 {
		if answer := latestAnswer(answers, currentID); answer != nil {
			for _, rule := range current.ConditionalLogic {
				if ruleMatches(rule, answer.Value) {
					// An absent target means "fall through to the next
					// question in list order", not "end the quiz".
					if rule.NextQuestionID == "" {
						break
					}
					return rule.NextQuestionID
				}
			}
		}
	}

	if currentIndex < len(questions)-1 {
		return questions[currentIndex+1].ID
	}
	return ""
}

func ruleMatches(rule models.ConditionRule, value string) bool {
	if rule.AnswerID != "" {
		return value == rule.AnswerID
	}
	if rule.Value != "" {
		return value == rule.Value
	}
	return false
}

func latestAnswer(answers []models.Answer, questionID string) *models.Answer {
	for i := range answers {
		if answers[i].QuestionID == questionID {
			return &answers[i]
		}
	}
	return nil
}
