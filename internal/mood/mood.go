// Package mood resolves the user's latest check-in into one of the
// canonical mood categories.
package mood

import (
	"encoding/json"
	"strings"

	"github.com/julianstephens/anchor/internal/constants"
	"github.com/julianstephens/anchor/internal/logger"
	"github.com/julianstephens/anchor/internal/models"
	"github.com/julianstephens/anchor/internal/storage"
)

type rule struct {
	mood     models.Mood
	keywords []string
}

// rules are tested in order and the first match wins, so "not ok, stressed"
// resolves to neutral.
var rules = []rule{
	{models.MoodHappy, []string{"happy", "great", "joy"}},
	{models.MoodCalm, []string{"calm", "relax", "peace"}},
	{models.MoodNeutral, []string{"neutral", "ok", "fine"}},
	{models.MoodSad, []string{"sad", "down", "blue", "depress"}},
	{models.MoodTired, []string{"tired", "exhaust", "sleep"}},
	{models.MoodAnxious, []string{"anx", "worry", "nerv"}},
	{models.MoodStressed, []string{"stress", "overwhelm", "pressure"}},
	{models.MoodAngry, []string{"angry", "mad", "irrit"}},
}

// Normalize maps free-form mood text to a category by case-insensitive
// substring match. Empty or unmatched text is MoodUnknown.
func Normalize(raw string) models.Mood {
	if raw == "" {
		return models.MoodUnknown
	}
	s := strings.ToLower(raw)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(s, kw) {
				return r.mood
			}
		}
	}
	return models.MoodUnknown
}

// ReadLatest returns the trimmed mood text of the first usable check-in
// record, probing constants.CheckInKeys in order. ok is false when no key
// yields a mood. Unreadable or malformed records are skipped.
func ReadLatest(r storage.Reader) (string, bool) {
	for _, key := range constants.CheckInKeys {
		raw, found, err := r.Get(key)
		if err != nil {
			logger.Debug("check-in read failed", "key", key, "error", err)
			continue
		}
		if !found || raw == "" {
			continue
		}
		if m, ok := moodField(raw); ok {
			return m, true
		}
	}
	return "", false
}

// Current reads the latest check-in and normalizes it.
func Current(r storage.Reader) models.Mood {
	raw, _ := ReadLatest(r)
	return Normalize(raw)
}

func moodField(raw string) (string, bool) {
	var record map[string]any
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		logger.Debug("skipping malformed check-in record", "error", err)
		return "", false
	}
	for _, field := range constants.CheckInMoodFields {
		s, ok := record[field].(string)
		if !ok || s == "" {
			continue
		}
		// the first populated field decides, even if it trims to nothing
		if m := strings.TrimSpace(s); m != "" {
			return m, true
		}
		return "", false
	}
	return "", false
}
