package mood

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/anchor/internal/constants"
	"github.com/julianstephens/anchor/internal/models"
	"github.com/julianstephens/anchor/internal/storage/memory"
)

func TestRecord(t *testing.T) {
	store := memory.NewWithData(map[string]string{
		"moodbuddy.checkin": `{"mood":"happy"}`,
	})
	at := time.Date(2024, 3, 5, 8, 0, 0, 0, time.UTC)

	rec, err := Record(store, "  so tired ", " long night ", at)
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if _, err := uuid.Parse(rec.ID); err != nil {
		t.Errorf("ID %q is not a uuid: %v", rec.ID, err)
	}
	if rec.Mood != "so tired" || rec.Note != "long night" || !rec.CreatedAt.Equal(at) {
		t.Errorf("record = %+v", rec)
	}

	// the new record shadows the legacy one
	if got := Current(store); got != models.MoodTired {
		t.Errorf("Current() = %s, want tired", got)
	}
	if _, ok, _ := store.Get(constants.CheckInWriteKey); !ok {
		t.Error("record not stored under the write key")
	}
}

func TestRecord_Errors(t *testing.T) {
	store := memory.New()
	if _, err := Record(store, "   ", "", time.Now()); !errors.Is(err, ErrEmptyMood) {
		t.Errorf("blank mood error = %v, want ErrEmptyMood", err)
	}

	store.FailWrites(true)
	if _, err := Record(store, "calm", "", time.Now()); err == nil {
		t.Error("expected write failure to surface")
	}
}
