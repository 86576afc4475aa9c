// Package greeting provides the time-of-day salutation and the
// encouragement line that changes once per day.
package greeting

import (
	"fmt"
	"time"
)

var encouragements = []string{
	"You don’t have to do everything today. One small thing is enough.",
	"Being gentle with yourself is still progress.",
	"Rest is part of the work, not a break from it.",
	"You showed up. That counts.",
	"Small steps still move you forward.",
	"It’s okay to go slowly.",
	"Your feelings are valid, even the messy ones.",
	"Breathe in. Breathe out. You’re doing fine.",
	"Today doesn’t need to be perfect to be good.",
	"You are allowed to take up space.",
	"Progress, not perfection.",
	"One kind thought for yourself goes a long way.",
	"You’ve made it through hard days before.",
	"Little moments of care add up.",
	"There’s no wrong way to feel right now.",
	"Be as kind to yourself as you are to a friend.",
	"A pause is not a failure.",
	"You’re allowed to ask for help.",
	"Notice one thing that went okay today.",
	"Softness is a kind of strength.",
	"You’re doing better than you think.",
	"It’s enough to just get through today.",
	"Let this moment be a little lighter.",
	"You deserve the same patience you give others.",
	"Every day is a fresh page.",
	"Tiny wins are still wins.",
	"Your pace is the right pace.",
	"Take what helps and leave the rest.",
}

// TimeOfDay returns the salutation for the hour of t in t's location.
func TimeOfDay(t time.Time) string {
	h := t.Hour()
	switch {
	case h < 12:
		return "Good morning"
	case h < 18:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}

// Line is the full greeting shown at the top of the day view.
func Line(t time.Time) string {
	return TimeOfDay(t) + ", dear friend."
}

// Encouragement picks the day's message. It only changes when the calendar
// day changes.
func Encouragement(t time.Time) string {
	return encouragements[dayIndex(t, len(encouragements))]
}

// dayIndex hashes the calendar day of t into [0, size).
// The month in the hashed key is zero-based.
func dayIndex(t time.Time, size int) int {
	key := fmt.Sprintf("%d-%d-%d", t.Year(), int(t.Month())-1, t.Day())
	hash := 0
	for _, c := range key {
		hash = (hash*31 + int(c)) % size
	}
	return hash
}
