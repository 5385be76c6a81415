package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prepdeck/prepdeck/internal/bank"
	"github.com/prepdeck/prepdeck/internal/cli"
	"github.com/prepdeck/prepdeck/internal/profile"
	"github.com/prepdeck/prepdeck/internal/review"
	"github.com/prepdeck/prepdeck/internal/subject"
)

// Mixed decks draw a majority from the whole bank and top it up with
// current-affairs questions.
const (
	mixedGeneralCount = 30
	mixedFocusCount   = 20
)

func newPracticeCommand() *cobra.Command {
	var mode string
	var topic string
	var questionCount int
	var secondsPerQuestion int

	command := &cobra.Command{
		Use:   "practice <subject>",
		Short: "Practice one question at a time with instant feedback",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			store, closeStore, err := newStore(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = closeStore()
			}()

			ctx := context.Background()
			sub, questions, closeLoader, err := loadSubjectBank(ctx, cfg, args[0])
			if err != nil {
				return err
			}
			defer func() {
				_ = closeLoader()
			}()

			studyMode := subject.StudyMode(mode)
			if !sub.HasMode(studyMode) {
				return fmt.Errorf("subject %q does not support the %q mode (available: %v)", sub.Name, mode, sub.Modes)
			}
			if studyMode == subject.ModeTopic && topic == "" {
				return fmt.Errorf("the topic mode requires --topic")
			}

			preferences := store.Load().Settings
			if questionCount <= 0 {
				questionCount = preferences.DefaultQuestionCount
			}

			opts := cli.PracticeOptions{
				Subject:          sub.Name,
				ShowExplanations: preferences.ShowExplanations,
			}
			if studyMode == subject.ModeTimed {
				opts.SecondsPerQuestion = secondsPerQuestion
			}

			deck, reviewIDs, err := buildPracticeDeck(store.WrongAnswers(sub.Name, 0), sub, questions, studyMode, topic, questionCount, preferences.RandomizeQuestions)
			if err != nil {
				return err
			}
			if len(deck) == 0 {
				return fmt.Errorf("no questions available for %s in the %q mode", sub.Name, mode)
			}
			opts.ReviewIDs = reviewIDs

			practiceCLI := cli.NewPracticeCLI(store)
			return practiceCLI.Run(ctx, deck, opts)
		},
	}
	command.Flags().StringVar(&mode, "mode", string(subject.ModePractice), "study mode (practice, reinforcement, topic, mixed, timed, current-affairs, reasoning)")
	command.Flags().StringVar(&topic, "topic", "", "topic to practice, for the topic mode")
	command.Flags().IntVar(&questionCount, "count", 0, "number of questions (default from profile settings)")
	command.Flags().IntVar(&secondsPerQuestion, "seconds", 60, "seconds per question, for the timed mode")

	return command
}

func buildPracticeDeck(
	ledger []profile.WrongAnswerEntry,
	sub subject.Subject,
	questions []bank.Question,
	mode subject.StudyMode,
	topic string,
	count int,
	randomize bool,
) ([]bank.Question, map[string]struct{}, error) {
	switch mode {
	case subject.ModePractice, subject.ModeTimed:
		return review.BuildDeck(questions, count, randomize), nil, nil

	case subject.ModeReinforcement:
		deck := review.SelectForReview(sub.Name, ledger, questions)
		reviewIDs := make(map[string]struct{}, len(ledger))
		for _, entry := range ledger {
			reviewIDs[entry.QuestionID] = struct{}{}
		}
		return deck, reviewIDs, nil

	case subject.ModeTopic:
		return review.BuildDeck(review.FilterTopic(questions, topic), count, randomize), nil, nil

	case subject.ModeMixed:
		deck := review.SelectMixed(
			review.WeightedGroup{Questions: questions, Count: mixedGeneralCount},
			review.WeightedGroup{Questions: review.FilterCurrentAffairs(questions), Count: mixedFocusCount},
		)
		return deck, nil, nil

	case subject.ModeCurrentAffairs:
		return review.BuildDeck(review.FilterCurrentAffairs(questions), count, randomize), nil, nil

	case subject.ModeReasoning:
		return review.BuildDeck(review.FilterReasoning(questions), count, randomize), nil, nil
	}

	return nil, nil, fmt.Errorf("unknown study mode %q", mode)
}
