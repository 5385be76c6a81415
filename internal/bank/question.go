// Package bank loads and normalizes question banks. A bank is a JSON array of
// questions keyed by subject name, served from a local directory or a static
// site. The loader is the only component that touches the on-disk format.
package bank

// Difficulty of a question.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// QuestionType distinguishes how a question is meant to be solved.
type QuestionType string

const (
	TypeMultipleChoice QuestionType = "multiple-choice"
	TypeNumerical      QuestionType = "numerical"
	TypeReasoning      QuestionType = "reasoning"
)

// Defaults filled in for optional fields during normalization.
const (
	DefaultExplanation = "No explanation available."
	DefaultTopic       = "General"
)

// Question is a single bank entry. Questions are immutable once loaded except
// for Marked, a per-session review flag that is never persisted.
type Question struct {
	ID            string       `json:"id"`
	Text          string       `json:"question"`
	Options       []string     `json:"options"`
	CorrectAnswer int          `json:"correctAnswer"`
	Explanation   string       `json:"explanation"`
	Topic         string       `json:"topic"`
	Difficulty    Difficulty   `json:"difficulty"`
	Type          QuestionType `json:"type"`
	CurrentAffair bool         `json:"isCurrentAffair"`

	Marked bool `json:"-"`
}
