package main

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/prepdeck/prepdeck/internal/profile"
	"github.com/prepdeck/prepdeck/internal/scoring"
)

func newDashboardCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "dashboard",
		Short: "Show overall progress, per-subject stats, and achievements",
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

			userProfile := store.Load()
			stats := userProfile.Statistics
			bold := color.New(color.Bold)

			fmt.Printf("%s (since %s)\n\n", bold.Sprintf("%s", userProfile.DisplayName), userProfile.JoinedAt.Format("2 Jan 2006"))

			overallAccuracy := scoring.Percentage(stats.TotalCorrectAnswers, stats.TotalQuestions)
			fmt.Printf("Quizzes: %d  Questions: %d  Accuracy: %d%%\n", stats.TotalQuizzes, stats.TotalQuestions, overallAccuracy)
			fmt.Printf("Study time: %s  Streak: %d (best %d)\n\n", scoring.FormatDuration(stats.TotalStudyTimeSeconds), stats.CurrentStreak, stats.LongestStreak)

			printSubjectProgress(userProfile.Subjects)
			printWeeklyActivity(userProfile.QuizHistory)
			printImprovementAreas(store)
			printAchievements(userProfile.Achievements)
			return nil
		},
	}

	return command
}

func printSubjectProgress(subjects map[string]*profile.SubjectProgress) {
	if len(subjects) == 0 {
		return
	}

	names := make([]string, 0, len(subjects))
	for name := range subjects {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println(color.New(color.Bold).Sprint("Subjects"))
	for _, name := range names {
		progress := subjects[name]
		lastStudied := "never"
		if progress.LastStudiedAt != nil {
			lastStudied = progress.LastStudiedAt.Format("2 Jan 2006")
		}
		fmt.Printf("  %-45s %4d answered, %3d%% (%s), last studied %s\n",
			name, progress.QuestionsAnswered, progress.Accuracy,
			scoring.PerformanceTier(progress.Accuracy), lastStudied)
	}
	fmt.Println()
}

func printWeeklyActivity(history []profile.QuizRecord) {
	dates := make([]time.Time, 0, len(history))
	for _, record := range history {
		dates = append(dates, record.Date)
	}

	now := time.Now()
	activity := scoring.WeeklyActivity(dates, now)

	fmt.Println(color.New(color.Bold).Sprint("This week"))
	var cells []string
	for i, count := range activity {
		day := now.AddDate(0, 0, i-len(activity)+1)
		cells = append(cells, fmt.Sprintf("%s %d", day.Format("Mon"), count))
	}
	fmt.Printf("  %s\n\n", strings.Join(cells, "  "))
}

func printImprovementAreas(store *profile.Store) {
	entries := store.WrongAnswers("", 0)
	if len(entries) == 0 {
		return
	}

	topics := make([]string, 0, len(entries))
	for _, entry := range entries {
		topics = append(topics, entry.Topic)
	}

	fmt.Println(color.New(color.Bold).Sprint("Focus areas"))
	for _, topic := range scoring.TopImprovementAreas(topics, 5) {
		fmt.Printf("  - %s\n", topic)
	}
	fmt.Println()
}

func printAchievements(earned []profile.EarnedAchievement) {
	fmt.Printf("%s %d/%d\n", color.New(color.Bold).Sprint("Achievements"), len(earned), len(profile.Catalog()))
	for _, achievement := range earned {
		fmt.Printf("  %s %s — %s (%s)\n", achievement.Icon, achievement.Name, achievement.Description, achievement.DateEarned.Format("2 Jan 2006"))
	}
}
