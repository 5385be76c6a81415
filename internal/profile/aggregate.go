package profile

import (
	"math"
	"sort"
	"time"

	"github.com/prepdeck/prepdeck/internal/quiz"
)

// streakThreshold is the minimum accuracy that keeps a study streak alive.
const streakThreshold = 60

// ApplyResult folds a completed quiz into the global statistics, the
// subject's progress, and the wrong-answer ledger.
func ApplyResult(p *Profile, result quiz.Result, now time.Time) {
	stats := &p.Statistics
	stats.TotalQuizzes++
	stats.TotalQuestions += result.TotalQuestions
	stats.TotalCorrectAnswers += result.CorrectAnswers
	stats.TotalStudyTimeSeconds += result.TimeTakenSeconds
	stats.LastActivityAt = now

	if result.Percentage >= streakThreshold {
		stats.CurrentStreak++
		if stats.CurrentStreak > stats.LongestStreak {
			stats.LongestStreak = stats.CurrentStreak
		}
	} else {
		stats.CurrentStreak = 0
	}

	progress := p.subjectProgress(result.Subject)
	previousAnswered := progress.QuestionsAnswered
	progress.QuestionsAnswered += result.TotalQuestions
	progress.CorrectAnswers += result.CorrectAnswers
	progress.Accuracy = accuracyPercent(progress.CorrectAnswers, progress.QuestionsAnswered)
	if progress.QuestionsAnswered > 0 {
		// Running average weighted by question count.
		total := progress.AverageTimePerQuizSeconds*previousAnswered + result.TimeTakenSeconds
		progress.AverageTimePerQuizSeconds = total / progress.QuestionsAnswered
	}
	progress.LastStudiedAt = &now

	for _, question := range result.PerQuestion {
		topic := question.Topic
		if topic == "" {
			topic = "General"
		}
		topicStats, ok := progress.TopicProgress[topic]
		if !ok {
			topicStats = &TopicStats{}
			progress.TopicProgress[topic] = topicStats
		}
		topicStats.Total++
		if question.IsCorrect {
			topicStats.Correct++
		}
	}

	ingestWrongAnswers(p, result.WrongAnswers, now)
}

// ingestWrongAnswers merges mistakes into the ledger: a repeat of a known
// question increments its count and refreshes its snapshot, a new question
// appends an entry. The ledger is then pruned to its cap.
func ingestWrongAnswers(p *Profile, wrong []quiz.WrongAnswer, now time.Time) {
	for _, answer := range wrong {
		merged := false
		for i := range p.WrongAnswers {
			if p.WrongAnswers[i].QuestionID == answer.QuestionID {
				entry := &p.WrongAnswers[i]
				entry.MistakeCount++
				entry.LastMistakeAt = now
				entry.Question = answer.Question
				entry.CorrectAnswer = answer.CorrectAnswer
				entry.UserAnswer = answer.UserAnswer
				entry.Reviewed = false
				merged = true
				break
			}
		}
		if merged {
			continue
		}

		p.WrongAnswers = append(p.WrongAnswers, WrongAnswerEntry{
			QuestionID:     answer.QuestionID,
			Question:       answer.Question,
			CorrectAnswer:  answer.CorrectAnswer,
			UserAnswer:     answer.UserAnswer,
			Subject:        answer.Subject,
			Topic:          answer.Topic,
			MistakeCount:   1,
			FirstMistakeAt: now,
			LastMistakeAt:  now,
		})
	}

	pruneLedger(p)
}

// pruneLedger keeps the ledger at its cap by dropping the entries with the
// oldest last mistake.
func pruneLedger(p *Profile) {
	if len(p.WrongAnswers) <= ledgerLimit {
		return
	}
	sort.SliceStable(p.WrongAnswers, func(i, j int) bool {
		return p.WrongAnswers[i].LastMistakeAt.After(p.WrongAnswers[j].LastMistakeAt)
	})
	p.WrongAnswers = p.WrongAnswers[:ledgerLimit]
}

func accuracyPercent(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}
