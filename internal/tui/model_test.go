package tui

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/anchor/internal/constants"
	"github.com/julianstephens/anchor/internal/models"
	"github.com/julianstephens/anchor/internal/session"
	"github.com/julianstephens/anchor/internal/storage/memory"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func (c fixedClock) AfterFunc(d time.Duration, f func()) session.Timer {
	return time.AfterFunc(d, f)
}

func newTestModel(t *testing.T) (Model, *memory.Store, <-chan struct{}) {
	t.Helper()
	store := memory.NewWithData(map[string]string{
		constants.CheckInWriteKey: `{"mood":"neutral"}`,
	})
	opt, changes := Changes()
	sess := session.New(store,
		session.WithClock(fixedClock{now: time.Date(2024, 3, 5, 20, 0, 0, 0, time.UTC)}),
		session.WithCelebrationDelay(10*time.Millisecond),
		opt,
	)
	t.Cleanup(sess.Close)
	sess.Load()
	<-changes // drain the Load notification

	return NewModel(sess, store, changes), store, changes
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "space":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestModel_InitialView(t *testing.T) {
	m, _, _ := newTestModel(t)

	view := m.View()
	for _, want := range []string{"Good evening, dear friend.", "2024-03-05", "feeling neutral", "0 of 3 done"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestModel_ToggleAndNavigate(t *testing.T) {
	m, _, _ := newTestModel(t)
	first := m.Snapshot().Items[0].Action.ID

	m = press(t, m, "space")
	if m.Snapshot().Completed != 1 {
		t.Fatalf("completed = %d, want 1", m.Snapshot().Completed)
	}
	if m.Snapshot().Items[0].Action.ID != first || !m.Snapshot().Items[0].Checked {
		t.Errorf("first item not checked: %+v", m.Snapshot().Items)
	}

	m = press(t, m, "j", "j", "j", "j")
	if m.cursor != 2 {
		t.Errorf("cursor = %d, want 2 (clamped)", m.cursor)
	}
	m = press(t, m, "k")
	if m.cursor != 1 {
		t.Errorf("cursor = %d, want 1", m.cursor)
	}
}

func TestModel_SubmitIncomplete(t *testing.T) {
	m, _, _ := newTestModel(t)

	m = press(t, m, "s")
	if !errors.Is(m.err, session.ErrIncomplete) {
		t.Errorf("err = %v, want ErrIncomplete", m.err)
	}
	if !strings.Contains(m.View(), session.ErrIncomplete.Error()) {
		t.Error("error not rendered")
	}

	// any key clears the error
	m = press(t, m, "j")
	if m.err != nil {
		t.Errorf("err = %v, want nil", m.err)
	}
}

func TestModel_SubmitFlow(t *testing.T) {
	m, _, changes := newTestModel(t)

	m = press(t, m, "space", "down", "space", "down", "space")
	if !m.Snapshot().CanSubmit {
		t.Fatalf("expected all items checked: %+v", m.Snapshot())
	}

	m = press(t, m, "s")
	if m.Snapshot().Stage != models.StageCongrats {
		t.Fatalf("stage = %s, want congrats", m.Snapshot().Stage)
	}
	if !strings.Contains(m.View(), "All done for today") {
		t.Error("congrats panel not rendered")
	}

	// wait for the celebration timer to advance the session
	deadline := time.After(2 * time.Second)
	for m.Snapshot().Stage != models.StageInsights {
		select {
		case <-changes:
			next, _ := m.Update(changedMsg{})
			m = next.(Model)
		case <-deadline:
			t.Fatal("timed out waiting for insights stage")
		}
	}
	if !strings.Contains(m.View(), "1-day streak") {
		t.Errorf("insight not rendered:\n%s", m.View())
	}

	m = press(t, m, "esc")
	if m.Snapshot().Stage != models.StageNone {
		t.Errorf("stage after dismiss = %s, want none", m.Snapshot().Stage)
	}
}

func TestModel_RefreshKeepsChecked(t *testing.T) {
	m, _, _ := newTestModel(t)

	m = press(t, m, "space")
	checked := m.Snapshot().Items[0].Action.ID
	m = press(t, m, "r")

	items := m.Snapshot().Items
	if len(items) != 3 || items[0].Action.ID != checked || !items[0].Checked {
		t.Errorf("refresh dropped the checked action: %+v", items)
	}
}

func TestModel_CheckInFormCancel(t *testing.T) {
	m, _, _ := newTestModel(t)

	m = press(t, m, "c")
	if m.form == nil {
		t.Fatal("check-in form not opened")
	}
	m = press(t, m, "esc")
	if m.form != nil {
		t.Error("esc should close the form")
	}
}

func TestModel_RecordCheckInUsesSessionClock(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	at := time.Date(2024, 3, 6, 7, 15, 0, 0, tokyo)
	store := memory.New()
	sess := session.New(store, session.WithClock(fixedClock{now: at}))
	t.Cleanup(sess.Close)
	sess.Load()

	m := NewModel(sess, store, nil)
	m.formMood = "anxious"
	m.recordCheckIn()

	if m.err != nil {
		t.Fatalf("recordCheckIn() error = %v", m.err)
	}
	raw, ok, _ := store.Get(constants.CheckInWriteKey)
	if !ok {
		t.Fatal("check-in was not written")
	}
	var rec models.CheckIn
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		t.Fatalf("stored check-in is not JSON: %v", err)
	}
	if !rec.CreatedAt.Equal(at) {
		t.Errorf("createdAt = %s, want %s", rec.CreatedAt, at)
	}
	if _, offset := rec.CreatedAt.Zone(); offset != 9*60*60 {
		t.Errorf("createdAt offset = %d, want the session zone", offset)
	}
	if m.snap.Mood != models.MoodAnxious || m.snap.Total != 5 {
		t.Errorf("snapshot after check-in = %s with %d actions, want anxious with 5", m.snap.Mood, m.snap.Total)
	}
}

func TestModel_Quit(t *testing.T) {
	m, _, _ := newTestModel(t)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("quit returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command did not produce QuitMsg")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestChanges_Coalesce(t *testing.T) {
	opt, ch := Changes()
	s := session.New(memory.New(), opt)
	defer s.Close()

	s.Load()
	s.Load()
	select {
	case <-ch:
	default:
		t.Fatal("no change signalled")
	}
	select {
	case <-ch:
		t.Error("signals should coalesce")
	default:
	}
}
