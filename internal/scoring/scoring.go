// Package scoring provides pure scoring and analytics helpers shared by the
// quiz session, the dashboard, and the interactive CLIs.
package scoring

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// Tier is a human-readable performance band for a quiz percentage.
type Tier string

const (
	TierExcellent        Tier = "Excellent"
	TierVeryGood         Tier = "Very Good"
	TierGood             Tier = "Good"
	TierFair             Tier = "Fair"
	TierNeedsImprovement Tier = "Needs Improvement"
)

// Percentage returns correct/total as a rounded percentage in [0, 100].
// A zero total yields 0.
func Percentage(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}

// PerformanceTier maps a percentage to its tier.
func PerformanceTier(percentage int) Tier {
	switch {
	case percentage >= 90:
		return TierExcellent
	case percentage >= 80:
		return TierVeryGood
	case percentage >= 70:
		return TierGood
	case percentage >= 60:
		return TierFair
	default:
		return TierNeedsImprovement
	}
}

// FormatDuration renders seconds as "H:MM:SS", or "M:SS" when under an hour.
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%d:%02d", minutes, secs)
}

// TopImprovementAreas ranks topics by mistake frequency, most frequent first,
// and returns at most limit of them. Ties are broken alphabetically so the
// output is deterministic.
func TopImprovementAreas(topics []string, limit int) []string {
	if limit <= 0 {
		limit = 5
	}

	counts := make(map[string]int)
	for _, topic := range topics {
		if topic == "" {
			topic = "General"
		}
		counts[topic]++
	}

	ranked := make([]string, 0, len(counts))
	for topic := range counts {
		ranked = append(ranked, topic)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if counts[ranked[i]] != counts[ranked[j]] {
			return counts[ranked[i]] > counts[ranked[j]]
		}
		return ranked[i] < ranked[j]
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// WeeklyActivity buckets timestamps into a trailing 7-day window anchored to
// now. Index 0 is six days ago, index 6 is today. Timestamps outside the
// window are ignored.
func WeeklyActivity(dates []time.Time, now time.Time) [7]int {
	var days [7]int
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	for _, date := range dates {
		day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())
		offset := int(today.Sub(day).Hours() / 24)
		if offset < 0 || offset > 6 {
			continue
		}
		days[6-offset]++
	}
	return days
}
