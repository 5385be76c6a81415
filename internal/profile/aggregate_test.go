package profile

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepdeck/prepdeck/internal/quiz"
)

func TestApplyResult_Streak(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name              string
		percentages       []int
		wantCurrentStreak int
		wantLongestStreak int
	}{
		{
			name:              "streak grows at threshold",
			percentages:       []int{60, 75, 90},
			wantCurrentStreak: 3,
			wantLongestStreak: 3,
		},
		{
			name:              "below threshold resets current but not longest",
			percentages:       []int{80, 80, 40},
			wantCurrentStreak: 0,
			wantLongestStreak: 2,
		},
		{
			name:              "recovery after reset",
			percentages:       []int{80, 40, 70},
			wantCurrentStreak: 1,
			wantLongestStreak: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := NewProfile(now)
			for _, percentage := range tt.percentages {
				ApplyResult(profile, quiz.Result{
					Subject:        "Admin Officer",
					TotalQuestions: 10,
					Percentage:     percentage,
				}, now)
			}

			assert.Equal(t, tt.wantCurrentStreak, profile.Statistics.CurrentStreak)
			assert.Equal(t, tt.wantLongestStreak, profile.Statistics.LongestStreak)
		})
	}
}

func TestApplyResult_SubjectProgress(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	profile := NewProfile(now)

	first := quiz.Result{
		Subject:          "Admin Officer",
		TotalQuestions:   10,
		CorrectAnswers:   8,
		Percentage:       80,
		TimeTakenSeconds: 600,
	}
	second := quiz.Result{
		Subject:          "Admin Officer",
		TotalQuestions:   10,
		CorrectAnswers:   6,
		Percentage:       60,
		TimeTakenSeconds: 400,
	}
	ApplyResult(profile, first, now)
	ApplyResult(profile, second, now)

	progress := profile.Subjects["Admin Officer"]
	require.NotNil(t, progress)
	assert.Equal(t, 20, progress.QuestionsAnswered)
	assert.Equal(t, 14, progress.CorrectAnswers)
	assert.Equal(t, 70, progress.Accuracy)
	// (60*10 + 400) / 20 after the first average lands at 600/10.
	assert.Equal(t, 50, progress.AverageTimePerQuizSeconds)
	require.NotNil(t, progress.LastStudiedAt)
	assert.Equal(t, now, *progress.LastStudiedAt)

	assert.Equal(t, 2, profile.Statistics.TotalQuizzes)
	assert.Equal(t, 20, profile.Statistics.TotalQuestions)
	assert.Equal(t, 1000, profile.Statistics.TotalStudyTimeSeconds)
}

func TestApplyResult_TopicTallies(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	profile := NewProfile(now)

	answer := 1
	ApplyResult(profile, quiz.Result{
		Subject:        "Admin Officer",
		TotalQuestions: 3,
		CorrectAnswers: 1,
		Percentage:     33,
		PerQuestion: []quiz.PerQuestion{
			{Topic: "Polity", UserAnswer: &answer, IsCorrect: true},
			{Topic: "Polity", UserAnswer: &answer, IsCorrect: false},
			{Topic: "", UserAnswer: &answer, IsCorrect: false},
		},
	}, now)

	progress := profile.Subjects["Admin Officer"]
	require.NotNil(t, progress.TopicProgress["Polity"])
	assert.Equal(t, 2, progress.TopicProgress["Polity"].Total)
	assert.Equal(t, 1, progress.TopicProgress["Polity"].Correct)
	// A blank topic is tallied under the catch-all.
	require.NotNil(t, progress.TopicProgress["General"])
	assert.Equal(t, 1, progress.TopicProgress["General"].Total)
}

func TestIngestWrongAnswers(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	later := now.Add(time.Hour)
	profile := NewProfile(now)

	wrong := quiz.WrongAnswer{
		QuestionID:    "ao_3",
		Question:      "Which article covers money bills?",
		CorrectAnswer: "Article 110",
		UserAnswer:    "Article 112",
		Subject:       "Admin Officer",
		Topic:         "Polity",
	}
	ingestWrongAnswers(profile, []quiz.WrongAnswer{wrong}, now)
	require.Len(t, profile.WrongAnswers, 1)
	assert.Equal(t, 1, profile.WrongAnswers[0].MistakeCount)
	assert.Equal(t, now, profile.WrongAnswers[0].FirstMistakeAt)

	profile.WrongAnswers[0].Reviewed = true
	wrong.UserAnswer = "Article 109"
	ingestWrongAnswers(profile, []quiz.WrongAnswer{wrong}, later)

	require.Len(t, profile.WrongAnswers, 1)
	entry := profile.WrongAnswers[0]
	assert.Equal(t, 2, entry.MistakeCount)
	assert.Equal(t, now, entry.FirstMistakeAt)
	assert.Equal(t, later, entry.LastMistakeAt)
	assert.Equal(t, "Article 109", entry.UserAnswer)
	// A repeat mistake puts the question back into rotation.
	assert.False(t, entry.Reviewed)
}

func TestPruneLedger(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	profile := NewProfile(now)

	for i := 0; i < ledgerLimit+1; i++ {
		profile.WrongAnswers = append(profile.WrongAnswers, WrongAnswerEntry{
			QuestionID:    fmt.Sprintf("q_%d", i),
			LastMistakeAt: now.Add(time.Duration(i) * time.Minute),
		})
	}

	pruneLedger(profile)

	require.Len(t, profile.WrongAnswers, ledgerLimit)
	// The single oldest entry is the one dropped.
	for _, entry := range profile.WrongAnswers {
		assert.NotEqual(t, "q_0", entry.QuestionID)
	}
}

func TestAccuracyPercent(t *testing.T) {
	tests := []struct {
		name    string
		correct int
		total   int
		want    int
	}{
		{name: "zero total", correct: 0, total: 0, want: 0},
		{name: "rounds half up", correct: 1, total: 8, want: 13},
		{name: "exact", correct: 3, total: 4, want: 75},
		{name: "full marks", correct: 5, total: 5, want: 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, accuracyPercent(tt.correct, tt.total))
		})
	}
}
