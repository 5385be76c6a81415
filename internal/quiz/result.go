package quiz

import (
	"time"

	"github.com/prepdeck/prepdeck/internal/bank"
	"github.com/prepdeck/prepdeck/internal/scoring"
)

// PerQuestion is the reviewed outcome of a single question in a result.
// UserAnswer is nil when the question was left unanswered.
type PerQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	UserAnswer    *int     `json:"userAnswer"`
	Explanation   string   `json:"explanation"`
	Topic         string   `json:"topic"`
	IsCorrect     bool     `json:"isCorrect"`
}

// WrongAnswer captures one incorrectly answered question, with answer texts
// resolved at the moment of the mistake.
type WrongAnswer struct {
	QuestionID    string `json:"questionId"`
	Question      string `json:"question"`
	CorrectAnswer string `json:"correctAnswer"`
	UserAnswer    string `json:"userAnswer"`
	Explanation   string `json:"explanation"`
	Subject       string `json:"subject"`
	Topic         string `json:"topic"`
}

// Result is the immutable outcome of a completed session. Sessions are
// discarded after the result is derived; only the result is recorded.
type Result struct {
	Subject          string        `json:"subject"`
	TotalQuestions   int           `json:"totalQuestions"`
	CorrectAnswers   int           `json:"correctAnswers"`
	IncorrectAnswers int           `json:"incorrectAnswers"`
	Unanswered       int           `json:"unanswered"`
	Percentage       int           `json:"percentage"`
	TimeTakenSeconds int           `json:"timeTaken"`
	FinishedAt       time.Time     `json:"finishedAt"`
	PerQuestion      []PerQuestion `json:"questions"`
	WrongAnswers     []WrongAnswer `json:"wrongAnswers"`
}

func buildResult(subjectName string, questions []bank.Question, answers []int, timeTaken time.Duration, finishedAt time.Time) Result {
	result := Result{
		Subject:          subjectName,
		TotalQuestions:   len(questions),
		TimeTakenSeconds: int(timeTaken.Seconds()),
		FinishedAt:       finishedAt,
	}

	for i, question := range questions {
		answer := answers[i]
		perQuestion := PerQuestion{
			Question:      question.Text,
			Options:       question.Options,
			CorrectAnswer: question.CorrectAnswer,
			Explanation:   question.Explanation,
			Topic:         question.Topic,
		}

		switch {
		case answer == Unanswered:
			result.Unanswered++
		case answer == question.CorrectAnswer:
			result.CorrectAnswers++
			perQuestion.IsCorrect = true
			selected := answer
			perQuestion.UserAnswer = &selected
		default:
			result.IncorrectAnswers++
			selected := answer
			perQuestion.UserAnswer = &selected
			result.WrongAnswers = append(result.WrongAnswers, WrongAnswer{
				QuestionID:    question.ID,
				Question:      question.Text,
				CorrectAnswer: question.Options[question.CorrectAnswer],
				UserAnswer:    question.Options[answer],
				Explanation:   question.Explanation,
				Subject:       subjectName,
				Topic:         question.Topic,
			})
		}

		result.PerQuestion = append(result.PerQuestion, perQuestion)
	}

	result.Percentage = scoring.Percentage(result.CorrectAnswers, result.TotalQuestions)
	return result
}
