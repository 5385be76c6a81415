package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newSubjectsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "subjects",
		Short: "List the available subjects, their topics, and study modes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			catalog, err := loadCatalog(cfg)
			if err != nil {
				return err
			}

			bold := color.New(color.Bold)
			for _, sub := range catalog {
				fmt.Printf("%s (%s)\n", bold.Sprintf("%s", sub.Name), sub.Prefix)
				fmt.Printf("  Topics: %s\n", strings.Join(sub.Topics, ", "))

				modes := make([]string, 0, len(sub.Modes))
				for _, mode := range sub.Modes {
					modes = append(modes, string(mode))
				}
				fmt.Printf("  Modes:  %s\n", strings.Join(modes, ", "))
			}
			return nil
		},
	}
}
