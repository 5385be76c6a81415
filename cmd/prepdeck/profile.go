package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newProfileCommand() *cobra.Command {
	profileCommand := &cobra.Command{
		Use:   "profile",
		Short: "Show and update the user profile",
	}

	profileCommand.AddCommand(newProfileNameCommand())
	profileCommand.AddCommand(newProfileSettingsCommand())

	return profileCommand
}

func newProfileNameCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "name <display name>",
		Short: "Set the display name",
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

			if err := store.UpdateDisplayName(args[0]); err != nil {
				return fmt.Errorf("store.UpdateDisplayName() > %w", err)
			}
			fmt.Printf("Display name set to %s\n", args[0])
			return nil
		},
	}
}

func newProfileSettingsCommand() *cobra.Command {
	var durationMinutes int
	var questionCount int
	var showExplanations bool
	var randomize bool

	command := &cobra.Command{
		Use:   "settings",
		Short: "Update the default study preferences",
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

			settings := store.Load().Settings
			if cmd.Flags().Changed("duration") {
				settings.DefaultQuizDurationMinutes = durationMinutes
			}
			if cmd.Flags().Changed("count") {
				settings.DefaultQuestionCount = questionCount
			}
			if cmd.Flags().Changed("explanations") {
				settings.ShowExplanations = showExplanations
			}
			if cmd.Flags().Changed("randomize") {
				settings.RandomizeQuestions = randomize
			}

			if settings.DefaultQuizDurationMinutes <= 0 || settings.DefaultQuestionCount <= 0 {
				return fmt.Errorf("duration and count must be positive")
			}

			if err := store.UpdateSettings(settings); err != nil {
				return fmt.Errorf("store.UpdateSettings() > %w", err)
			}
			fmt.Printf("Settings updated: %d minutes, %d questions, explanations %t, shuffle %t\n",
				settings.DefaultQuizDurationMinutes, settings.DefaultQuestionCount,
				settings.ShowExplanations, settings.RandomizeQuestions)
			return nil
		},
	}
	command.Flags().IntVar(&durationMinutes, "duration", 0, "default quiz duration in minutes")
	command.Flags().IntVar(&questionCount, "count", 0, "default number of questions")
	command.Flags().BoolVar(&showExplanations, "explanations", true, "show explanations after answers")
	command.Flags().BoolVar(&randomize, "randomize", true, "shuffle questions when building a deck")

	return command
}
