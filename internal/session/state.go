// Package session drives one day of gentle actions: the assignment, the
// submit flow and the celebration stages, persisted through a storage.KV.
package session

import (
	"github.com/julianstephens/anchor/internal/models"
)

// DayState is everything that resets when the calendar day changes
type DayState struct {
	Assignment models.DailyAssignment
	Stage      models.Stage
}

// RolloverIfStale returns a fresh state for today when s belongs to another
// day. The fresh assignment has no checked items, nonce 0 and no assigned
// ids; the caller reconciles it.
func RolloverIfStale(s DayState, today string) (DayState, bool) {
	if s.Assignment.Date == today {
		return s, false
	}
	return DayState{
		Assignment: models.NewDailyAssignment(today),
		Stage:      models.StageNone,
	}, true
}

// Event drives the stage machine
type Event string

const (
	EventSubmit          Event = "submit"
	EventCelebrationDone Event = "celebration-done"
	EventDismiss         Event = "dismiss"
	EventRollover        Event = "rollover"
)

// Transition applies ev to from. ok is false when ev is not accepted in
// that stage, and the stage is returned unchanged.
//
//	none     --submit-->           congrats
//	congrats --celebration-done--> insights
//	insights --dismiss-->          none
//	any      --rollover-->         none
func Transition(from models.Stage, ev Event) (models.Stage, bool) {
	switch ev {
	case EventRollover:
		return models.StageNone, true
	case EventSubmit:
		if from == models.StageNone {
			return models.StageCongrats, true
		}
	case EventCelebrationDone:
		if from == models.StageCongrats {
			return models.StageInsights, true
		}
	case EventDismiss:
		if from == models.StageInsights {
			return models.StageNone, true
		}
	}
	return from, false
}
