package models

// DailyAssignment is the persisted set of actions suggested for one day
type DailyAssignment struct {
	Date         string          `json:"date"`         // YYYY-MM-DD, local time
	Checked      map[string]bool `json:"checked"`      // action id -> done; unset means false
	AssignedIDs  []string        `json:"assignedIds"`  // current suggestions, in display order
	RefreshNonce int             `json:"refreshNonce"` // bumped on each explicit refresh
}

// NewDailyAssignment returns an empty assignment for the given day.
func NewDailyAssignment(date string) DailyAssignment {
	return DailyAssignment{
		Date:        date,
		Checked:     map[string]bool{},
		AssignedIDs: []string{},
	}
}

// CheckedCount returns how many assigned ids are checked.
func (a DailyAssignment) CheckedCount() int {
	n := 0
	for _, id := range a.AssignedIDs {
		if a.Checked[id] {
			n++
		}
	}
	return n
}

// DayStats is the exact submission snapshot for one day
type DayStats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
}

// CompletionStats maps a date key to that day's submitted counts
type CompletionStats map[string]DayStats
