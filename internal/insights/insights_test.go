package insights

import (
	"testing"

	"github.com/julianstephens/anchor/internal/utils"
)

func daysBack(t *testing.T, from string, n int) []string {
	t.Helper()
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		d, err := utils.AddDays(from, -i)
		if err != nil {
			t.Fatal(err)
		}
		out = append(out, d)
	}
	return out
}

func TestStreak(t *testing.T) {
	tests := []struct {
		name    string
		history []string
		today   string
		want    int
	}{
		{name: "empty", history: nil, today: "2024-03-05", want: 0},
		{name: "today only", history: []string{"2024-03-05"}, today: "2024-03-05", want: 1},
		{name: "yesterday only", history: []string{"2024-03-04"}, today: "2024-03-05", want: 0},
		{name: "three days", history: []string{"2024-03-03", "2024-03-04", "2024-03-05"}, today: "2024-03-05", want: 3},
		{name: "gap breaks streak", history: []string{"2024-03-02", "2024-03-04", "2024-03-05"}, today: "2024-03-05", want: 2},
		{name: "across leap day", history: []string{"2024-02-28", "2024-02-29", "2024-03-01"}, today: "2024-03-01", want: 3},
		{name: "across year", history: []string{"2023-12-31", "2024-01-01"}, today: "2024-01-01", want: 2},
		{name: "unsorted input", history: []string{"2024-03-05", "2024-03-03", "2024-03-04"}, today: "2024-03-05", want: 3},
		{name: "run ending today", history: []string{"2024-01-05", "2024-01-06", "2024-01-07"}, today: "2024-01-07", want: 3},
		{name: "run ended yesterday", history: []string{"2024-01-05", "2024-01-06", "2024-01-07"}, today: "2024-01-08", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Streak(tt.history, tt.today); got != tt.want {
				t.Errorf("Streak() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestStreak_Capped(t *testing.T) {
	history := daysBack(t, "2024-03-05", 500)
	if got := Streak(history, "2024-03-05"); got != 365 {
		t.Errorf("Streak() over 500 days = %d, want 365", got)
	}
}

func TestCountInRange(t *testing.T) {
	history := []string{"2024-02-20", "2024-02-27", "2024-02-28", "2024-03-05", "junk"}
	if got := CountInRange(history, "2024-02-28", "2024-03-05"); got != 2 {
		t.Errorf("CountInRange() = %d, want 2", got)
	}
	if got := CountInRange(history, "2024-02-20", "2024-02-27"); got != 2 {
		t.Errorf("CountInRange() = %d, want 2", got)
	}
}

func TestInsight(t *testing.T) {
	tests := []struct {
		name    string
		history []string
		today   string
		streak  int
		want    string
	}{
		{
			name:    "boundaries of both windows",
			history: []string{"2024-02-27", "2024-02-28", "2024-03-05"},
			today:   "2024-03-05",
			streak:  1,
			want:    "You’re on a 1-day streak — 2 completions in the last 7 days (up 1 vs last week).",
		},
		{
			name:    "up three on a three-day streak",
			history: []string{"2023-12-26", "2023-12-30", "2024-01-02", "2024-01-03", "2024-01-05", "2024-01-06", "2024-01-07"},
			today:   "2024-01-07",
			streak:  3,
			want:    "You’re on a 3-day streak — 5 completions in the last 7 days (up 3 vs last week).",
		},
		{
			name:    "same as last week",
			history: []string{"2024-02-21", "2024-02-28"},
			today:   "2024-03-05",
			streak:  0,
			want:    "You’re on a 0-day streak — 1 completions in the last 7 days (same as last week).",
		},
		{
			name:    "down vs last week",
			history: []string{"2024-02-21", "2024-02-22", "2024-02-23", "2024-03-04", "2024-03-05"},
			today:   "2024-03-05",
			streak:  2,
			want:    "You’re on a 2-day streak — 2 completions in the last 7 days (down 1 vs last week).",
		},
		{
			name:    "outside both windows",
			history: []string{"2024-02-20"},
			today:   "2024-03-05",
			streak:  0,
			want:    "You’re on a 0-day streak — 0 completions in the last 7 days (same as last week).",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Insight(tt.history, tt.today, tt.streak); got != tt.want {
				t.Errorf("Insight() =\n  %q\nwant\n  %q", got, tt.want)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	history := daysBack(t, "2024-03-05", 10)
	s := Summarize(history, "2024-03-05", Streak(history, "2024-03-05"))

	if s.Streak != 10 || s.LastWeek != 7 || s.PreviousWeek != 3 || s.Delta != 4 {
		t.Errorf("Summarize() = %+v, want streak 10, 7 vs 3, delta 4", s)
	}
}
