package records

import (
	"encoding/json"
	"fmt"

	"github.com/julianstephens/anchor/internal/constants"
	"github.com/julianstephens/anchor/internal/models"
	"github.com/julianstephens/anchor/internal/storage"
)

func parseStage(raw string) (models.StageRecord, bool) {
	var rec models.StageRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return models.StageRecord{}, false
	}
	if rec.Date == "" || !rec.Stage.Valid() {
		return models.StageRecord{}, false
	}
	return rec, true
}

// ReadStage returns the persisted stage record, if one is readable.
func ReadStage(kv storage.KV) (models.StageRecord, bool) {
	rec, src := readWithFallback(kv, constants.StageKeys, parseStage)
	return rec, src != SourceNone
}

// StageFor returns the stage persisted for today, or StageNone when the
// record is missing or belongs to another day.
func StageFor(kv storage.KV, today string) models.Stage {
	rec, ok := ReadStage(kv)
	if !ok || rec.Date != today {
		return models.StageNone
	}
	return rec.Stage
}

// WriteStage persists the stage for a day.
func WriteStage(kv storage.Writer, rec models.StageRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode stage: %w", err)
	}
	if err := kv.Set(constants.StageKeys.Current, string(data)); err != nil {
		return fmt.Errorf("failed to save stage: %w", err)
	}
	return nil
}
