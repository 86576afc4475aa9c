package mood

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/anchor/internal/constants"
	"github.com/julianstephens/anchor/internal/models"
	"github.com/julianstephens/anchor/internal/storage"
)

var ErrEmptyMood = errors.New("mood cannot be empty")

// Record writes a new check-in under constants.CheckInWriteKey, replacing the
// previous one.
func Record(w storage.Writer, raw, note string, at time.Time) (models.CheckIn, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return models.CheckIn{}, ErrEmptyMood
	}

	rec := models.CheckIn{
		ID:        uuid.NewString(),
		Mood:      raw,
		Note:      strings.TrimSpace(note),
		CreatedAt: at,
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return models.CheckIn{}, fmt.Errorf("failed to encode check-in: %w", err)
	}
	if err := w.Set(constants.CheckInWriteKey, string(data)); err != nil {
		return models.CheckIn{}, fmt.Errorf("failed to save check-in: %w", err)
	}
	return rec, nil
}
