package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prepdeck/prepdeck/internal/cli"
	"github.com/prepdeck/prepdeck/internal/quiz"
	"github.com/prepdeck/prepdeck/internal/review"
)

func newQuizCommand() *cobra.Command {
	quizCommand := &cobra.Command{
		Use:   "quiz",
		Short: "Timed quiz sessions against a subject's question bank",
	}

	quizCommand.AddCommand(newQuizStartCommand())
	quizCommand.AddCommand(newQuizReviewCommand())

	return quizCommand
}

func newQuizStartCommand() *cobra.Command {
	var durationMinutes int
	var questionCount int
	var noShuffle bool

	command := &cobra.Command{
		Use:   "start <subject>",
		Short: "Start a timed quiz for a subject",
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

			// Flags override the profile's preferences.
			preferences := store.Load().Settings
			if durationMinutes <= 0 {
				durationMinutes = preferences.DefaultQuizDurationMinutes
			}
			if questionCount <= 0 {
				questionCount = preferences.DefaultQuestionCount
			}
			randomize := preferences.RandomizeQuestions && !noShuffle

			deck := review.BuildDeck(questions, questionCount, randomize)
			settings := quiz.Settings{
				Subject:         sub.Name,
				DurationMinutes: durationMinutes,
				QuestionCount:   len(deck),
				Randomize:       randomize,
			}

			examCLI := cli.NewExamCLI(store, preferences.ShowExplanations)
			return examCLI.Run(ctx, settings, deck)
		},
	}
	command.Flags().IntVar(&durationMinutes, "duration", 0, "quiz duration in minutes (default from profile settings)")
	command.Flags().IntVar(&questionCount, "count", 0, "number of questions (default from profile settings)")
	command.Flags().BoolVar(&noShuffle, "no-shuffle", false, "keep the bank order instead of shuffling")

	return command
}

func newQuizReviewCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "review <subject>",
		Short: "Practice the questions you previously answered wrong",
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

			ledger := store.WrongAnswers(sub.Name, 0)
			deck := review.SelectForReview(sub.Name, ledger, questions)
			if len(deck) == 0 {
				return fmt.Errorf("no questions available for %s", sub.Name)
			}

			reviewIDs := make(map[string]struct{}, len(ledger))
			for _, entry := range ledger {
				reviewIDs[entry.QuestionID] = struct{}{}
			}

			preferences := store.Load().Settings
			practiceCLI := cli.NewPracticeCLI(store)
			return practiceCLI.Run(ctx, deck, cli.PracticeOptions{
				Subject:          sub.Name,
				ShowExplanations: preferences.ShowExplanations,
				ReviewIDs:        reviewIDs,
			})
		},
	}

	return command
}
