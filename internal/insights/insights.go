// Package insights computes the completion streak and the weekly
// comparison sentence shown after a submission.
package insights

import (
	"fmt"

	"github.com/julianstephens/anchor/internal/constants"
	"github.com/julianstephens/anchor/internal/utils"
)

// Summary is the structured form of the insight sentence
type Summary struct {
	Streak       int    `json:"streak"`
	LastWeek     int    `json:"lastWeek"`
	PreviousWeek int    `json:"previousWeek"`
	Delta        int    `json:"delta"`
	Sentence     string `json:"sentence"`
}

// Streak counts consecutive completed days ending today, capped at
// constants.MaxStreakDays. No entry for today means a zero streak.
func Streak(history []string, today string) int {
	days := make(map[string]bool, len(history))
	for _, d := range history {
		days[d] = true
	}

	streak := 0
	cursor := today
	for days[cursor] && streak < constants.MaxStreakDays {
		streak++
		prev, err := utils.AddDays(cursor, -1)
		if err != nil {
			break
		}
		cursor = prev
	}
	return streak
}

// CountInRange counts history entries between start and end, inclusive.
// Entries that are not valid date keys are ignored.
func CountInRange(history []string, start, end string) int {
	n := 0
	for _, d := range history {
		if !utils.IsValidDateKey(d) {
			continue
		}
		// YYYY-MM-DD keys order lexically
		if d >= start && d <= end {
			n++
		}
	}
	return n
}

// Summarize compares the last seven days (today included) with the seven
// days before them.
func Summarize(history []string, today string, streak int) Summary {
	s := Summary{Streak: streak}

	window := constants.InsightWindowDays
	lastStart, err1 := utils.AddDays(today, -(window - 1))
	prevStart, err2 := utils.AddDays(today, -(2*window - 1))
	prevEnd, err3 := utils.AddDays(today, -window)
	if err1 == nil && err2 == nil && err3 == nil {
		s.LastWeek = CountInRange(history, lastStart, today)
		s.PreviousWeek = CountInRange(history, prevStart, prevEnd)
	}
	s.Delta = s.LastWeek - s.PreviousWeek
	s.Sentence = sentence(s)
	return s
}

// Insight returns the one-sentence weekly summary.
func Insight(history []string, today string, streak int) string {
	return Summarize(history, today, streak).Sentence
}

func sentence(s Summary) string {
	var trend string
	switch {
	case s.Delta > 0:
		trend = fmt.Sprintf("up %d vs last week", s.Delta)
	case s.Delta < 0:
		trend = fmt.Sprintf("down %d vs last week", -s.Delta)
	default:
		trend = "same as last week"
	}
	return fmt.Sprintf("You’re on a %d-day streak — %d completions in the last 7 days (%s).",
		s.Streak, s.LastWeek, trend)
}
