package profile

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepdeck/prepdeck/internal/quiz"
)

type memoryKV struct {
	values map[string][]byte
	getErr error
	setErr error
}

func newMemoryKV() *memoryKV {
	return &memoryKV{values: make(map[string][]byte)}
}

func (m *memoryKV) Get(key string) ([]byte, bool, error) {
	if m.getErr != nil {
		return nil, false, m.getErr
	}
	value, ok := m.values[key]
	return value, ok, nil
}

func (m *memoryKV) Set(key string, value []byte) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.values[key] = value
	return nil
}

func (m *memoryKV) Delete(key string) error {
	delete(m.values, key)
	return nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time {
		return t
	}
}

func TestStore_Load(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		setup   func(kv *memoryKV)
		want    func(t *testing.T, profile *Profile)
		persist bool
	}{
		{
			name:  "no stored profile creates default",
			setup: func(kv *memoryKV) {},
			want: func(t *testing.T, profile *Profile) {
				assert.Equal(t, DefaultDisplayName, profile.DisplayName)
				assert.Equal(t, 60, profile.Settings.DefaultQuizDurationMinutes)
				assert.Equal(t, 50, profile.Settings.DefaultQuestionCount)
				assert.NotEmpty(t, profile.ID)
			},
			persist: true,
		},
		{
			name: "corrupt blob falls back to default",
			setup: func(kv *memoryKV) {
				kv.values[StorageKey] = []byte("{not json")
			},
			want: func(t *testing.T, profile *Profile) {
				assert.Equal(t, DefaultDisplayName, profile.DisplayName)
			},
			persist: true,
		},
		{
			name: "read error falls back to default",
			setup: func(kv *memoryKV) {
				kv.getErr = errors.New("disk gone")
			},
			want: func(t *testing.T, profile *Profile) {
				assert.Equal(t, DefaultDisplayName, profile.DisplayName)
			},
		},
		{
			name: "stored profile is returned",
			setup: func(kv *memoryKV) {
				stored := NewProfile(now.Add(-48 * time.Hour))
				stored.DisplayName = "Asha"
				stored.Statistics.TotalQuizzes = 7
				payload, err := json.Marshal(stored)
				require.NoError(t, err)
				kv.values[StorageKey] = payload
			},
			want: func(t *testing.T, profile *Profile) {
				assert.Equal(t, "Asha", profile.DisplayName)
				assert.Equal(t, 7, profile.Statistics.TotalQuizzes)
				assert.Equal(t, now, profile.LastLoginAt)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := newMemoryKV()
			tt.setup(kv)
			store := NewStore(kv, WithClock(fixedClock(now)))

			profile := store.Load()

			require.NotNil(t, profile)
			tt.want(t, profile)
			if tt.persist {
				assert.Contains(t, kv.values, StorageKey)
			}
			assert.Same(t, profile, store.Load())
		})
	}
}

func TestStore_RecordQuizResult(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	result := quiz.Result{
		Subject:          "Admin Officer",
		TotalQuestions:   5,
		CorrectAnswers:   3,
		IncorrectAnswers: 1,
		Unanswered:       1,
		Percentage:       60,
		TimeTakenSeconds: 300,
		WrongAnswers: []quiz.WrongAnswer{
			{
				QuestionID:    "ao_3",
				Question:      "Which article covers money bills?",
				CorrectAnswer: "Article 110",
				UserAnswer:    "Article 112",
				Subject:       "Admin Officer",
				Topic:         "Polity",
			},
		},
	}

	kv := newMemoryKV()
	store := NewStore(kv, WithClock(fixedClock(now)))

	require.NoError(t, store.RecordQuizResult(result))

	profile := store.Load()
	require.Len(t, profile.QuizHistory, 1)
	record := profile.QuizHistory[0]
	assert.Equal(t, "Admin Officer", record.Subject)
	assert.Equal(t, 60, record.Percentage)
	assert.Equal(t, now, record.Date)
	assert.NotEmpty(t, record.ID)

	assert.Equal(t, 1, profile.Statistics.TotalQuizzes)
	assert.Equal(t, 1, profile.Statistics.CurrentStreak)
	require.Len(t, profile.WrongAnswers, 1)
	assert.Equal(t, "ao_3", profile.WrongAnswers[0].QuestionID)

	// Persisted blob reflects the update.
	var persisted Profile
	require.NoError(t, json.Unmarshal(kv.values[StorageKey], &persisted))
	assert.Equal(t, 1, persisted.Statistics.TotalQuizzes)
}

func TestStore_RecordQuizResult_HistoryCap(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	store := NewStore(newMemoryKV(), WithClock(fixedClock(now)))

	result := quiz.Result{
		Subject:        "Admin Officer",
		TotalQuestions: 1,
		CorrectAnswers: 1,
		Percentage:     100,
	}
	for i := 0; i < historyLimit+10; i++ {
		require.NoError(t, store.RecordQuizResult(result))
	}

	assert.Len(t, store.Load().QuizHistory, historyLimit)
}

func TestStore_WrongAnswers(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	store := NewStore(newMemoryKV(), WithClock(fixedClock(now)))
	profile := store.Load()
	profile.WrongAnswers = []WrongAnswerEntry{
		{QuestionID: "ao_1", Subject: "Admin Officer", MistakeCount: 1, LastMistakeAt: now},
		{QuestionID: "ao_2", Subject: "Admin Officer", MistakeCount: 3, LastMistakeAt: now.Add(-time.Hour)},
		{QuestionID: "ga_1", Subject: "General Awareness and Current Affairs", MistakeCount: 5, LastMistakeAt: now},
		{QuestionID: "ao_3", Subject: "Admin Officer", MistakeCount: 3, LastMistakeAt: now},
	}

	tests := []struct {
		name    string
		subject string
		limit   int
		wantIDs []string
	}{
		{
			name:    "all subjects sorted by count then recency",
			subject: "",
			wantIDs: []string{"ga_1", "ao_3", "ao_2", "ao_1"},
		},
		{
			name:    "filtered by subject",
			subject: "Admin Officer",
			wantIDs: []string{"ao_3", "ao_2", "ao_1"},
		},
		{
			name:    "limit truncates",
			subject: "Admin Officer",
			limit:   2,
			wantIDs: []string{"ao_3", "ao_2"},
		},
		{
			name:    "unknown subject is empty",
			subject: "Quantitative Aptitudes and Reasoning",
			wantIDs: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := store.WrongAnswers(tt.subject, tt.limit)

			var gotIDs []string
			for _, entry := range entries {
				gotIDs = append(gotIDs, entry.QuestionID)
			}
			assert.Equal(t, tt.wantIDs, gotIDs)
		})
	}
}

func TestStore_MarkReviewed(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	store := NewStore(newMemoryKV(), WithClock(fixedClock(now)))
	profile := store.Load()
	profile.WrongAnswers = []WrongAnswerEntry{
		{QuestionID: "ao_1", Subject: "Admin Officer", MistakeCount: 2, LastMistakeAt: now},
	}

	require.NoError(t, store.MarkReviewed("ao_1"))
	assert.True(t, store.Load().WrongAnswers[0].Reviewed)

	// Unknown IDs are ignored.
	require.NoError(t, store.MarkReviewed("missing"))
}

func TestStore_Cleanup(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	old := now.Add(-2 * 365 * 24 * time.Hour)
	recent := now.Add(-24 * time.Hour)

	store := NewStore(newMemoryKV(), WithClock(fixedClock(now)))
	profile := store.Load()
	profile.QuizHistory = []QuizRecord{
		{ID: "quiz_recent", Date: recent},
		{ID: "quiz_old", Date: old},
	}
	profile.WrongAnswers = []WrongAnswerEntry{
		{QuestionID: "kept_unreviewed", LastMistakeAt: old},
		{QuestionID: "kept_recent", Reviewed: true, LastMistakeAt: recent},
		{QuestionID: "dropped", Reviewed: true, LastMistakeAt: old},
	}

	require.NoError(t, store.Cleanup())

	require.Len(t, profile.QuizHistory, 1)
	assert.Equal(t, "quiz_recent", profile.QuizHistory[0].ID)

	var keptIDs []string
	for _, entry := range profile.WrongAnswers {
		keptIDs = append(keptIDs, entry.QuestionID)
	}
	assert.Equal(t, []string{"kept_unreviewed", "kept_recent"}, keptIDs)
}

func TestStore_RecordPracticeAnswer(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	store := NewStore(newMemoryKV(), WithClock(fixedClock(now)))

	wrong := quiz.WrongAnswer{
		QuestionID:    "qa_4",
		Question:      "Next number in 2, 6, 12, 20?",
		CorrectAnswer: "30",
		UserAnswer:    "28",
		Subject:       "Quantitative Aptitudes and Reasoning",
		Topic:         "Number Series",
	}

	require.NoError(t, store.RecordPracticeAnswer(wrong.Subject, wrong, false, wrong.Topic))
	require.NoError(t, store.RecordPracticeAnswer(wrong.Subject, quiz.WrongAnswer{}, true, wrong.Topic))

	profile := store.Load()
	progress := profile.Subjects[wrong.Subject]
	require.NotNil(t, progress)
	assert.Equal(t, 2, progress.QuestionsAnswered)
	assert.Equal(t, 1, progress.CorrectAnswers)
	assert.Equal(t, 50, progress.Accuracy)
	require.NotNil(t, progress.TopicProgress["Number Series"])
	assert.Equal(t, 2, progress.TopicProgress["Number Series"].Total)
	assert.Equal(t, 1, progress.TopicProgress["Number Series"].Correct)

	require.Len(t, profile.WrongAnswers, 1)
	assert.Equal(t, "qa_4", profile.WrongAnswers[0].QuestionID)
	// Practice answers never create quiz history.
	assert.Empty(t, profile.QuizHistory)
}

func TestStore_UpdateSettings(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	store := NewStore(newMemoryKV(), WithClock(fixedClock(now)))

	settings := Settings{
		DefaultQuizDurationMinutes: 30,
		DefaultQuestionCount:       25,
		ShowExplanations:           false,
		RandomizeQuestions:         false,
	}
	require.NoError(t, store.UpdateSettings(settings))
	require.NoError(t, store.UpdateDisplayName("Asha"))

	profile := store.Load()
	assert.Equal(t, settings, profile.Settings)
	assert.Equal(t, "Asha", profile.DisplayName)
}
