package session

import (
	"math"
	"time"

	"github.com/julianstephens/anchor/internal/catalog"
	"github.com/julianstephens/anchor/internal/greeting"
	"github.com/julianstephens/anchor/internal/insights"
	"github.com/julianstephens/anchor/internal/models"
)

// Item is one assigned action and whether it is done
type Item struct {
	Action  models.Action `json:"action"`
	Checked bool          `json:"checked"`
}

// Snapshot is a read-only view of the session for rendering.
type Snapshot struct {
	Date          string           `json:"date"`
	Mood          models.Mood      `json:"mood"`
	Items         []Item           `json:"items"`
	Completed     int              `json:"completed"`
	Total         int              `json:"total"`
	Percent       int              `json:"percent"`
	CanSubmit     bool             `json:"canSubmit"`
	Stage         models.Stage     `json:"stage"`
	Streak        int              `json:"streak"`
	Insight       insights.Summary `json:"insight"`
	Greeting      string           `json:"greeting"`
	Encouragement string           `json:"encouragement"`
}

func buildSnapshot(now time.Time, st DayState, mood models.Mood, history []string) Snapshot {
	a := st.Assignment
	snap := Snapshot{
		Date:          a.Date,
		Mood:          mood,
		Stage:         st.Stage,
		Greeting:      greeting.Line(now),
		Encouragement: greeting.Encouragement(now),
	}

	for _, action := range catalog.Resolve(a.AssignedIDs) {
		checked := a.Checked[action.ID]
		snap.Items = append(snap.Items, Item{Action: action, Checked: checked})
		if checked {
			snap.Completed++
		}
	}
	snap.Total = len(snap.Items)
	if snap.Total > 0 {
		snap.Percent = int(math.Round(float64(snap.Completed) / float64(snap.Total) * 100))
	}
	snap.CanSubmit = snap.Total > 0 && snap.Completed == snap.Total

	snap.Streak = insights.Streak(history, a.Date)
	snap.Insight = insights.Summarize(history, a.Date, snap.Streak)
	return snap
}
