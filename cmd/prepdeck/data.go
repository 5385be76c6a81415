package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newDataCommand() *cobra.Command {
	dataCommand := &cobra.Command{
		Use:   "data",
		Short: "Export, import, and clean up the stored profile",
	}

	dataCommand.AddCommand(newDataExportCommand())
	dataCommand.AddCommand(newDataImportCommand())
	dataCommand.AddCommand(newDataCleanupCommand())

	return dataCommand
}

func newDataExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Export the profile as a portable snapshot",
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

			payload, err := store.ExportSnapshot()
			if err != nil {
				return fmt.Errorf("store.ExportSnapshot() > %w", err)
			}
			if err := os.WriteFile(args[0], payload, 0o644); err != nil {
				return fmt.Errorf("failed to write a file %s > %w", args[0], err)
			}

			fmt.Printf("Exported the profile to %s\n", args[0])
			return nil
		},
	}
}

func newDataImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the profile with a previously exported snapshot",
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

			payload, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("os.ReadFile(%s) > %w", args[0], err)
			}
			if err := store.ImportSnapshot(payload); err != nil {
				return fmt.Errorf("store.ImportSnapshot() > %w", err)
			}

			fmt.Println("Profile imported.")
			return nil
		},
	}
}

func newDataCleanupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cleanup",
		Short: "Drop quiz history and reviewed mistakes older than a year",
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

			if err := store.Cleanup(); err != nil {
				return fmt.Errorf("store.Cleanup() > %w", err)
			}

			userProfile := store.Load()
			fmt.Printf("Cleanup done: %d quiz records and %d mistakes kept.\n",
				len(userProfile.QuizHistory), len(userProfile.WrongAnswers))
			return nil
		},
	}
}
