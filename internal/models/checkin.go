package models

import "time"

// CheckIn is the upstream mood check-in record.
// Only Mood is read by the suggestion engine; older clients may have
// written the mood under moodId, moodLabel, emotion or feeling instead.
type CheckIn struct {
	ID        string    `json:"id"`
	Mood      string    `json:"mood"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
