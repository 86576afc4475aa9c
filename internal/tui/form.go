package tui

import (
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/anchor/internal/models"
)

// NewMoodSelect builds the mood picker shared by the TUI and `anchor checkin`.
func NewMoodSelect(value *string) *huh.Select[string] {
	opts := make([]huh.Option[string], 0, len(models.Moods))
	for _, m := range models.Moods {
		if m == models.MoodUnknown {
			continue
		}
		opts = append(opts, huh.NewOption(string(m), string(m)))
	}
	return huh.NewSelect[string]().
		Title("How are you feeling?").
		Options(opts...).
		Value(value)
}
