package profile

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/prepdeck/prepdeck/internal/quiz"
	"github.com/prepdeck/prepdeck/internal/storage"
)

const (
	// StorageKey is the well-known key the profile blob lives under. The
	// store owns this key exclusively.
	StorageKey = "profile"

	historyLimit = 100
	ledgerLimit  = 500

	retentionPeriod = 365 * 24 * time.Hour
)

// Store is the sole owner of the durable profile. It is constructed
// explicitly with its storage backend so tests can inject fakes.
type Store struct {
	kv      storage.KV
	now     func() time.Time
	profile *Profile
	cleaned bool
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithClock overrides the store's time source.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore creates a Store over the given key-value backend.
func NewStore(kv storage.KV, opts ...StoreOption) *Store {
	store := &Store{
		kv:  kv,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

// Load returns the profile, reading it from storage on first use. A missing
// or unreadable blob degrades to a fresh default profile; Load never fails.
// Retention cleanup runs once per load.
func (s *Store) Load() *Profile {
	if s.profile != nil {
		return s.profile
	}

	now := s.now()
	payload, found, err := s.kv.Get(StorageKey)
	if err != nil {
		slog.Warn("failed to read profile, starting fresh", "error", err)
	}

	if found && err == nil {
		var profile Profile
		if unmarshalErr := json.Unmarshal(payload, &profile); unmarshalErr != nil {
			slog.Warn("stored profile is unreadable, starting fresh", "error", unmarshalErr)
		} else {
			s.profile = &profile
		}
	}

	if s.profile == nil {
		s.profile = NewProfile(now)
		if saveErr := s.Save(); saveErr != nil {
			slog.Warn("failed to persist default profile", "error", saveErr)
		}
	}

	s.profile.LastLoginAt = now
	if !s.cleaned {
		s.cleaned = true
		if err := s.Cleanup(); err != nil {
			slog.Warn("profile cleanup failed", "error", err)
		}
	}
	return s.profile
}

// Save persists the profile. On failure the in-memory profile stays
// authoritative for the rest of the process; the error is reported so the
// caller can surface it.
func (s *Store) Save() error {
	if s.profile == nil {
		return nil
	}

	payload, err := json.Marshal(s.profile)
	if err != nil {
		return fmt.Errorf("json.Marshal(profile) > %w", err)
	}
	if err := s.kv.Set(StorageKey, payload); err != nil {
		return fmt.Errorf("persist profile: %w", err)
	}
	return nil
}

// RecordQuizResult folds a completed quiz into the profile: a history entry
// (newest first, capped), aggregated statistics and subject progress, and the
// result's wrong answers merged into the ledger.
func (s *Store) RecordQuizResult(result quiz.Result) error {
	profile := s.Load()
	now := s.now()

	record := QuizRecord{
		ID:               "quiz_" + uuid.NewString(),
		Subject:          result.Subject,
		TotalQuestions:   result.TotalQuestions,
		CorrectAnswers:   result.CorrectAnswers,
		IncorrectAnswers: result.IncorrectAnswers,
		Unanswered:       result.Unanswered,
		Percentage:       result.Percentage,
		TimeTakenSeconds: result.TimeTakenSeconds,
		Date:             now,
	}
	profile.QuizHistory = append([]QuizRecord{record}, profile.QuizHistory...)
	if len(profile.QuizHistory) > historyLimit {
		profile.QuizHistory = profile.QuizHistory[:historyLimit]
	}

	ApplyResult(profile, result, now)

	return s.Save()
}

// RecordPracticeAnswer folds a single practice-mode answer into the subject
// progress and, when wrong, into the ledger. Practice answers do not create
// history entries.
func (s *Store) RecordPracticeAnswer(subjectName string, answer quiz.WrongAnswer, correct bool, topic string) error {
	profile := s.Load()
	now := s.now()

	progress := profile.subjectProgress(subjectName)
	progress.QuestionsAnswered++
	if correct {
		progress.CorrectAnswers++
	}
	progress.Accuracy = accuracyPercent(progress.CorrectAnswers, progress.QuestionsAnswered)
	progress.LastStudiedAt = &now

	topicStats, ok := progress.TopicProgress[topic]
	if !ok {
		topicStats = &TopicStats{}
		progress.TopicProgress[topic] = topicStats
	}
	topicStats.Total++
	if correct {
		topicStats.Correct++
	}

	if !correct {
		ingestWrongAnswers(profile, []quiz.WrongAnswer{answer}, now)
	}
	profile.Statistics.LastActivityAt = now

	return s.Save()
}

// WrongAnswers returns ledger entries, optionally filtered by subject,
// ordered by mistake count then recency, truncated to limit when positive.
func (s *Store) WrongAnswers(subjectName string, limit int) []WrongAnswerEntry {
	profile := s.Load()

	var entries []WrongAnswerEntry
	for _, entry := range profile.WrongAnswers {
		if subjectName == "" || entry.Subject == subjectName {
			entries = append(entries, entry)
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].MistakeCount != entries[j].MistakeCount {
			return entries[i].MistakeCount > entries[j].MistakeCount
		}
		return entries[i].LastMistakeAt.After(entries[j].LastMistakeAt)
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// MarkReviewed flags a ledger entry as reviewed. Unknown IDs are ignored.
func (s *Store) MarkReviewed(questionID string) error {
	profile := s.Load()

	for i := range profile.WrongAnswers {
		if profile.WrongAnswers[i].QuestionID == questionID {
			profile.WrongAnswers[i].Reviewed = true
			return s.Save()
		}
	}

	slog.Debug("mark reviewed: question not in ledger", "questionId", questionID)
	return nil
}

// UpdateDisplayName sets the user's name.
func (s *Store) UpdateDisplayName(name string) error {
	profile := s.Load()
	profile.DisplayName = name
	return s.Save()
}

// UpdateSettings replaces the study preferences.
func (s *Store) UpdateSettings(settings Settings) error {
	profile := s.Load()
	profile.Settings = settings
	return s.Save()
}

// Cleanup drops quiz history older than the retention period and reviewed
// ledger entries whose last mistake is older than the retention period.
func (s *Store) Cleanup() error {
	profile := s.Load()
	cutoff := s.now().Add(-retentionPeriod)

	kept := profile.QuizHistory[:0]
	for _, record := range profile.QuizHistory {
		if record.Date.After(cutoff) {
			kept = append(kept, record)
		}
	}
	profile.QuizHistory = kept

	keptEntries := profile.WrongAnswers[:0]
	for _, entry := range profile.WrongAnswers {
		if !entry.Reviewed || entry.LastMistakeAt.After(cutoff) {
			keptEntries = append(keptEntries, entry)
		}
	}
	profile.WrongAnswers = keptEntries

	return s.Save()
}
