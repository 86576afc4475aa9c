package records

import (
	"encoding/json"
	"fmt"

	"github.com/julianstephens/anchor/internal/constants"
	"github.com/julianstephens/anchor/internal/models"
	"github.com/julianstephens/anchor/internal/storage"
)

// storedDaily accepts partially written records; missing fields stay nil.
type storedDaily struct {
	Date         string          `json:"date"`
	Checked      map[string]bool `json:"checked"`
	AssignedIDs  []string        `json:"assignedIds"`
	RefreshNonce *int            `json:"refreshNonce"`
}

func parseDaily(raw string) (storedDaily, bool) {
	var d storedDaily
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		return storedDaily{}, false
	}
	return d, true
}

// LoadDaily returns the stored assignment for today. A record for any other
// day, or an unreadable one, yields an empty assignment dated today.
// Assigned ids are returned as stored; callers reconcile them.
func LoadDaily(kv storage.KV, today string) (models.DailyAssignment, Source) {
	d, src := readWithFallback(kv, constants.DailyKeys, parseDaily)

	a := models.NewDailyAssignment(today)
	if src == SourceNone || d.Date != today {
		return a, src
	}
	if d.Checked != nil {
		a.Checked = d.Checked
	}
	if d.AssignedIDs != nil {
		a.AssignedIDs = d.AssignedIDs
	}
	if d.RefreshNonce != nil {
		a.RefreshNonce = *d.RefreshNonce
	}
	return a, src
}

// SaveDaily writes the assignment to the current key, and to the legacy key
// too when syncLegacy is set.
func SaveDaily(kv storage.Writer, a models.DailyAssignment, syncLegacy bool) error {
	if a.Checked == nil {
		a.Checked = map[string]bool{}
	}
	if a.AssignedIDs == nil {
		a.AssignedIDs = []string{}
	}
	data, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("failed to encode daily assignment: %w", err)
	}
	if err := kv.Set(constants.DailyKeys.Current, string(data)); err != nil {
		return fmt.Errorf("failed to save daily assignment: %w", err)
	}
	if syncLegacy {
		if err := kv.Set(constants.DailyKeys.Legacy, string(data)); err != nil {
			return fmt.Errorf("failed to sync legacy daily assignment: %w", err)
		}
	}
	return nil
}
