package records

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/julianstephens/anchor/internal/constants"
	"github.com/julianstephens/anchor/internal/models"
	"github.com/julianstephens/anchor/internal/storage"
)

func parseHistory(raw string) ([]string, bool) {
	var items []any
	if err := json.Unmarshal([]byte(raw), &items); err != nil || items == nil {
		return nil, false
	}
	days := make([]string, 0, len(items))
	for _, it := range items {
		if s, ok := it.(string); ok {
			days = append(days, s)
		}
	}
	return days, true
}

// ReadHistory returns the completion date keys. Non-string entries are
// dropped; a missing or unreadable record is an empty history.
func ReadHistory(kv storage.KV) []string {
	days, _ := readWithFallback(kv, constants.HistoryKeys, parseHistory)
	if days == nil {
		return []string{}
	}
	return days
}

// AddCompletionDay inserts day into the history, keeping it sorted, and
// returns the resulting history. Nothing is written if day is already there.
func AddCompletionDay(kv storage.KV, day string) ([]string, error) {
	days := ReadHistory(kv)
	for _, d := range days {
		if d == day {
			return days, nil
		}
	}

	days = append(days, day)
	sort.Strings(days)

	data, err := json.Marshal(days)
	if err != nil {
		return days, fmt.Errorf("failed to encode completion history: %w", err)
	}
	if err := kv.Set(constants.HistoryKeys.Current, string(data)); err != nil {
		return days, fmt.Errorf("failed to save completion history: %w", err)
	}
	return days, nil
}

func parseStats(raw string) (models.CompletionStats, bool) {
	var entries map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &entries); err != nil || entries == nil {
		return nil, false
	}
	stats := make(models.CompletionStats, len(entries))
	for day, v := range entries {
		var ds models.DayStats
		if err := json.Unmarshal(v, &ds); err != nil {
			continue
		}
		stats[day] = ds
	}
	return stats, true
}

// ReadStats returns per-day submission counts, empty when missing or unreadable.
func ReadStats(kv storage.KV) models.CompletionStats {
	stats, _ := readWithFallback(kv, constants.StatsKeys, parseStats)
	if stats == nil {
		return models.CompletionStats{}
	}
	return stats
}

// RecordStats stores the counts submitted for day, replacing any earlier entry.
func RecordStats(kv storage.KV, day string, total, completed int) error {
	stats := ReadStats(kv)
	stats[day] = models.DayStats{Total: total, Completed: completed}

	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to encode completion stats: %w", err)
	}
	if err := kv.Set(constants.StatsKeys.Current, string(data)); err != nil {
		return fmt.Errorf("failed to save completion stats: %w", err)
	}
	return nil
}
