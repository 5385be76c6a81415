package bank

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/prepdeck/prepdeck/internal/subject"
)

// LoadError reports a failed bank fetch or parse. Callers recover by offering
// a retry; no session starts on a LoadError.
type LoadError struct {
	Subject string
	Err     error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load question bank for %q: %v", e.Subject, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Source fetches the raw bank payload for a subject.
type Source interface {
	Fetch(ctx context.Context, subjectName string) ([]byte, error)
}

// Loader fetches, validates, and normalizes question banks.
type Loader struct {
	source Source
}

// NewLoader creates a Loader reading from the given source.
func NewLoader(source Source) *Loader {
	return &Loader{source: source}
}

// Load returns the subject's questions in bank order. Missing optional fields
// are filled with defaults and missing IDs are synthesized from the subject
// prefix and the question's position.
func (l *Loader) Load(ctx context.Context, sub subject.Subject) ([]Question, error) {
	payload, err := l.source.Fetch(ctx, sub.Name)
	if err != nil {
		return nil, &LoadError{Subject: sub.Name, Err: err}
	}

	var questions []Question
	if err := json.Unmarshal(payload, &questions); err != nil {
		return nil, &LoadError{Subject: sub.Name, Err: fmt.Errorf("json.Unmarshal > %w", err)}
	}

	for i := range questions {
		if err := normalize(&questions[i], sub.Prefix, i); err != nil {
			return nil, &LoadError{Subject: sub.Name, Err: err}
		}
	}
	return questions, nil
}

func normalize(q *Question, prefix string, index int) error {
	if q.Text == "" {
		return fmt.Errorf("question %d has no text", index)
	}
	if len(q.Options) < 2 {
		return fmt.Errorf("question %d has %d options, need at least 2", index, len(q.Options))
	}
	if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
		return fmt.Errorf("question %d has correct answer %d out of range [0, %d)", index, q.CorrectAnswer, len(q.Options))
	}

	if q.ID == "" {
		q.ID = fmt.Sprintf("%s_%d", prefix, index)
	}
	if q.Explanation == "" {
		q.Explanation = DefaultExplanation
	}
	if q.Topic == "" {
		q.Topic = DefaultTopic
	}
	if q.Difficulty == "" {
		q.Difficulty = DifficultyMedium
	}
	if q.Type == "" {
		q.Type = TypeMultipleChoice
	}
	return nil
}
