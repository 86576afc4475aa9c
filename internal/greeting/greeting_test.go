package greeting

import (
	"testing"
	"time"
)

func TestTimeOfDay(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{0, "Good morning"},
		{11, "Good morning"},
		{12, "Good afternoon"},
		{17, "Good afternoon"},
		{18, "Good evening"},
		{23, "Good evening"},
	}

	for _, tt := range tests {
		got := TimeOfDay(time.Date(2024, 3, 5, tt.hour, 59, 0, 0, time.UTC))
		if got != tt.want {
			t.Errorf("TimeOfDay(%02d:59) = %q, want %q", tt.hour, got, tt.want)
		}
	}
}

func TestLine(t *testing.T) {
	got := Line(time.Date(2024, 3, 5, 19, 0, 0, 0, time.UTC))
	if got != "Good evening, dear friend." {
		t.Errorf("Line() = %q", got)
	}
}

func TestDayIndex(t *testing.T) {
	tests := []struct {
		day  time.Time
		size int
		want int
	}{
		{time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), 28, 17},
		{time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC), 28, 18},
		{time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 28, 23},
		{time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), 10, 3},
	}

	for _, tt := range tests {
		if got := dayIndex(tt.day, tt.size); got != tt.want {
			t.Errorf("dayIndex(%s, %d) = %d, want %d", tt.day.Format("2006-01-02"), tt.size, got, tt.want)
		}
	}
}

func TestEncouragement_StableWithinDay(t *testing.T) {
	morning := time.Date(2024, 3, 5, 6, 0, 0, 0, time.UTC)
	night := time.Date(2024, 3, 5, 23, 59, 0, 0, time.UTC)
	if Encouragement(morning) != Encouragement(night) {
		t.Error("Encouragement() changed within the same day")
	}
	if Encouragement(morning) == "" {
		t.Error("Encouragement() returned an empty message")
	}
}
