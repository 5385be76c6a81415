package profile

// Achievement is a catalog entry with its earning rule.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Earned      func(stats Statistics, history []QuizRecord) bool
}

// Catalog returns every achievement that can be earned.
func Catalog() []Achievement {
	return []Achievement{
		{
			ID:          "first_quiz",
			Name:        "First Steps",
			Description: "Complete your first quiz",
			Icon:        "🎯",
			Earned: func(stats Statistics, _ []QuizRecord) bool {
				return stats.TotalQuizzes >= 1
			},
		},
		{
			ID:          "quiz_master",
			Name:        "Quiz Master",
			Description: "Complete 50 quizzes",
			Icon:        "👑",
			Earned: func(stats Statistics, _ []QuizRecord) bool {
				return stats.TotalQuizzes >= 50
			},
		},
		{
			ID:          "accuracy_expert",
			Name:        "Accuracy Expert",
			Description: "Score 90% or higher in a quiz",
			Icon:        "🎖️",
			Earned: func(_ Statistics, history []QuizRecord) bool {
				for _, record := range history {
					if record.Percentage >= 90 {
						return true
					}
				}
				return false
			},
		},
		{
			ID:          "speed_demon",
			Name:        "Speed Demon",
			Description: "Finish a full-length quiz in under 30 minutes",
			Icon:        "⚡",
			Earned: func(_ Statistics, history []QuizRecord) bool {
				for _, record := range history {
					if record.TotalQuestions >= 50 && record.TimeTakenSeconds <= 1800 {
						return true
					}
				}
				return false
			},
		},
		{
			ID:          "streak_warrior",
			Name:        "Streak Warrior",
			Description: "Keep a 10-quiz study streak",
			Icon:        "🔥",
			Earned: func(stats Statistics, _ []QuizRecord) bool {
				return stats.LongestStreak >= 10
			},
		},
	}
}

// CheckAchievements evaluates the catalog against the current profile and
// records any newly earned achievements. It returns only the new ones, in
// catalog order. Already-earned achievements are never re-evaluated.
func (s *Store) CheckAchievements() ([]EarnedAchievement, error) {
	profile := s.Load()

	earned := make(map[string]struct{}, len(profile.Achievements))
	for _, achievement := range profile.Achievements {
		earned[achievement.ID] = struct{}{}
	}

	var unlocked []EarnedAchievement
	now := s.now()
	for _, achievement := range Catalog() {
		if _, ok := earned[achievement.ID]; ok {
			continue
		}
		if !achievement.Earned(profile.Statistics, profile.QuizHistory) {
			continue
		}
		unlocked = append(unlocked, EarnedAchievement{
			ID:          achievement.ID,
			Name:        achievement.Name,
			Description: achievement.Description,
			Icon:        achievement.Icon,
			DateEarned:  now,
		})
	}

	if len(unlocked) == 0 {
		return nil, nil
	}

	profile.Achievements = append(profile.Achievements, unlocked...)
	if err := s.Save(); err != nil {
		return unlocked, err
	}
	return unlocked, nil
}
