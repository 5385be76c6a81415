// Package review assembles working question decks: shuffled quiz decks,
// reinforcement decks drawn from the wrong-answer ledger, and the filtered or
// weighted decks behind the study modes.
package review

import (
	"math/rand"
	"strings"

	"github.com/prepdeck/prepdeck/internal/bank"
	"github.com/prepdeck/prepdeck/internal/profile"
)

// reviewFallbackSize is the deck size when the ledger has nothing to review.
const reviewFallbackSize = 20

// Shuffle permutes questions in place with a uniform Fisher-Yates shuffle.
func Shuffle(questions []bank.Question) {
	rand.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})
}

// BuildDeck selects at most count questions for a session. With randomize the
// bank is shuffled before truncation; otherwise the first count questions are
// taken in bank order.
func BuildDeck(questions []bank.Question, count int, randomize bool) []bank.Question {
	deck := append([]bank.Question(nil), questions...)
	if randomize {
		Shuffle(deck)
	}
	if count > 0 && count < len(deck) {
		deck = deck[:count]
	}
	return deck
}

// SelectForReview returns the bank questions the user has previously missed
// in the given subject, in bank order. When the ledger holds nothing for the
// subject, the first questions of the bank are returned instead so review
// mode always produces a deck.
func SelectForReview(subjectName string, ledger []profile.WrongAnswerEntry, questions []bank.Question) []bank.Question {
	missed := make(map[string]struct{})
	for _, entry := range ledger {
		if entry.Subject == subjectName {
			missed[entry.QuestionID] = struct{}{}
		}
	}

	if len(missed) == 0 {
		return BuildDeck(questions, reviewFallbackSize, false)
	}

	var deck []bank.Question
	for _, question := range questions {
		if _, ok := missed[question.ID]; ok {
			deck = append(deck, question)
		}
	}
	if len(deck) == 0 {
		// Every ledger entry points at a question no longer in the bank.
		return BuildDeck(questions, reviewFallbackSize, false)
	}
	return deck
}

// WeightedGroup is one slice of a mixed deck.
type WeightedGroup struct {
	Questions []bank.Question
	Count     int
}

// SelectMixed draws a shuffled slice from each group, concatenates them, and
// shuffles the concatenation. A question appearing in several groups is drawn
// at most once.
func SelectMixed(groups ...WeightedGroup) []bank.Question {
	seen := make(map[string]struct{})
	var deck []bank.Question

	for _, group := range groups {
		pool := append([]bank.Question(nil), group.Questions...)
		Shuffle(pool)

		taken := 0
		for _, question := range pool {
			if taken >= group.Count {
				break
			}
			if _, ok := seen[question.ID]; ok {
				continue
			}
			seen[question.ID] = struct{}{}
			deck = append(deck, question)
			taken++
		}
	}

	Shuffle(deck)
	return deck
}

// FilterTopic returns the questions tagged with the topic.
func FilterTopic(questions []bank.Question, topic string) []bank.Question {
	var filtered []bank.Question
	for _, question := range questions {
		if question.Topic == topic {
			filtered = append(filtered, question)
		}
	}
	return filtered
}

// FilterCurrentAffairs returns current-affairs questions, falling back to a
// topic-name match for banks that never set the flag.
func FilterCurrentAffairs(questions []bank.Question) []bank.Question {
	var filtered []bank.Question
	for _, question := range questions {
		if question.CurrentAffair {
			filtered = append(filtered, question)
		}
	}
	if len(filtered) > 0 {
		return filtered
	}

	for _, question := range questions {
		if strings.Contains(strings.ToLower(question.Topic), "current") {
			filtered = append(filtered, question)
		}
	}
	return filtered
}

// FilterReasoning returns reasoning questions by type or topic, falling back
// to hard questions when the bank has no reasoning tags.
func FilterReasoning(questions []bank.Question) []bank.Question {
	var filtered []bank.Question
	for _, question := range questions {
		topic := strings.ToLower(question.Topic)
		if question.Type == bank.TypeReasoning ||
			strings.Contains(topic, "reasoning") ||
			strings.Contains(topic, "logical") {
			filtered = append(filtered, question)
		}
	}
	if len(filtered) > 0 {
		return filtered
	}

	for _, question := range questions {
		if question.Difficulty == bank.DifficultyHard {
			filtered = append(filtered, question)
		}
	}
	return filtered
}
