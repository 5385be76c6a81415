// Package profile owns the durable per-user state: statistics, per-subject
// progress, quiz history, the wrong-answer ledger, achievements, and study
// settings. All reads and writes go through the Store.
package profile

import (
	"time"

	"github.com/google/uuid"
)

// Statistics are global totals across all subjects.
type Statistics struct {
	TotalQuizzes          int       `json:"totalQuizzes"`
	TotalQuestions        int       `json:"totalQuestions"`
	TotalCorrectAnswers   int       `json:"totalCorrectAnswers"`
	TotalStudyTimeSeconds int       `json:"totalStudyTime"`
	CurrentStreak         int       `json:"currentStreak"`
	LongestStreak         int       `json:"longestStreak"`
	LastActivityAt        time.Time `json:"lastActivityDate"`
}

// TopicStats tallies attempts within one topic of a subject.
type TopicStats struct {
	Total   int `json:"total"`
	Correct int `json:"correct"`
}

// SubjectProgress accumulates per-subject performance. Mutated only by the
// aggregation that follows a completed session.
type SubjectProgress struct {
	QuestionsAnswered int `json:"questionsAnswered"`
	CorrectAnswers    int `json:"correctAnswers"`
	// Accuracy is the rounded percentage of CorrectAnswers over
	// QuestionsAnswered, recomputed on every update.
	Accuracy int `json:"accuracy"`
	// AverageTimePerQuizSeconds is a running average weighted by question
	// count, not by session count.
	AverageTimePerQuizSeconds int                    `json:"averageTime"`
	TopicProgress             map[string]*TopicStats `json:"topicProgress"`
	LastStudiedAt             *time.Time             `json:"lastStudied"`
}

// QuizRecord is the history summary kept for a completed quiz.
type QuizRecord struct {
	ID               string    `json:"id"`
	Subject          string    `json:"subject"`
	TotalQuestions   int       `json:"totalQuestions"`
	CorrectAnswers   int       `json:"correctAnswers"`
	IncorrectAnswers int       `json:"incorrectAnswers"`
	Unanswered       int       `json:"unanswered"`
	Percentage       int       `json:"accuracy"`
	TimeTakenSeconds int       `json:"timeTaken"`
	Date             time.Time `json:"date"`
}

// WrongAnswerEntry is one ledger record, keyed by question ID. The question
// and answer texts are a snapshot taken at the moment of the mistake; they
// are never re-joined against the live bank, so they can go stale if the
// bank is edited later.
type WrongAnswerEntry struct {
	QuestionID     string    `json:"questionId"`
	Question       string    `json:"question"`
	CorrectAnswer  string    `json:"correctAnswer"`
	UserAnswer     string    `json:"userAnswer"`
	Subject        string    `json:"subject"`
	Topic          string    `json:"topic"`
	MistakeCount   int       `json:"mistakeCount"`
	FirstMistakeAt time.Time `json:"firstMistake"`
	LastMistakeAt  time.Time `json:"lastMistake"`
	Reviewed       bool      `json:"reviewed"`
}

// EarnedAchievement is a catalog entry the user has unlocked. Earned
// achievements are never revoked.
type EarnedAchievement struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	DateEarned  time.Time `json:"dateEarned"`
}

// Settings are the user's study preferences.
type Settings struct {
	DefaultQuizDurationMinutes int  `json:"defaultQuizDuration"`
	DefaultQuestionCount       int  `json:"defaultQuestionCount"`
	ShowExplanations           bool `json:"showExplanations"`
	RandomizeQuestions         bool `json:"randomizeQuestions"`
}

// Profile is the root aggregate, persisted as one JSON blob. One instance
// per data directory.
type Profile struct {
	ID           string                      `json:"id"`
	DisplayName  string                      `json:"displayName"`
	JoinedAt     time.Time                   `json:"joinDate"`
	LastLoginAt  time.Time                   `json:"lastLogin"`
	Statistics   Statistics                  `json:"statistics"`
	Subjects     map[string]*SubjectProgress `json:"progress"`
	QuizHistory  []QuizRecord                `json:"quizHistory"`
	WrongAnswers []WrongAnswerEntry          `json:"wrongAnswers"`
	Achievements []EarnedAchievement         `json:"achievements"`
	Settings     Settings                    `json:"settings"`
}

// DefaultDisplayName is the placeholder until the user sets a name.
const DefaultDisplayName = "Student"

// NewProfile returns a default profile.
func NewProfile(now time.Time) *Profile {
	return &Profile{
		ID:          "user_" + uuid.NewString(),
		DisplayName: DefaultDisplayName,
		JoinedAt:    now,
		LastLoginAt: now,
		Statistics: Statistics{
			LastActivityAt: now,
		},
		Subjects: make(map[string]*SubjectProgress),
		Settings: Settings{
			DefaultQuizDurationMinutes: 60,
			DefaultQuestionCount:       50,
			ShowExplanations:           true,
			RandomizeQuestions:         true,
		},
	}
}

func (p *Profile) subjectProgress(subjectName string) *SubjectProgress {
	if p.Subjects == nil {
		p.Subjects = make(map[string]*SubjectProgress)
	}
	progress, ok := p.Subjects[subjectName]
	if !ok {
		progress = &SubjectProgress{TopicProgress: make(map[string]*TopicStats)}
		p.Subjects[subjectName] = progress
	}
	if progress.TopicProgress == nil {
		progress.TopicProgress = make(map[string]*TopicStats)
	}
	return progress
}
