package models

// Stage is the post-submission phase for the current day
type Stage string

const (
	StageNone     Stage = "none"
	StageCongrats Stage = "congrats"
	StageInsights Stage = "insights"
)

// Valid reports whether s is a known stage
func (s Stage) Valid() bool {
	switch s {
	case StageNone, StageCongrats, StageInsights:
		return true
	}
	return false
}

// StageRecord is the persisted stage, valid only for Date
type StageRecord struct {
	Date  string `json:"date"`
	Stage Stage  `json:"stage"`
}
