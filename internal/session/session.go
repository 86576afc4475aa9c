package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/julianstephens/anchor/internal/constants"
	"github.com/julianstephens/anchor/internal/logger"
	"github.com/julianstephens/anchor/internal/models"
	"github.com/julianstephens/anchor/internal/mood"
	"github.com/julianstephens/anchor/internal/records"
	"github.com/julianstephens/anchor/internal/storage"
	"github.com/julianstephens/anchor/internal/suggest"
	"github.com/julianstephens/anchor/internal/utils"
)

var (
	ErrNotAssigned = errors.New("action is not in today's suggestions")
	ErrIncomplete  = errors.New("complete every suggested action before submitting")
	ErrWrongStage  = errors.New("today's actions have already been submitted")
	ErrClosed      = errors.New("session is closed")
)

type Option func(*Session)

func WithClock(c Clock) Option {
	return func(s *Session) { s.clock = c }
}

// WithCelebrationDelay sets how long the congrats stage lasts before the
// insights stage
func WithCelebrationDelay(d time.Duration) Option {
	return func(s *Session) { s.delay = d }
}

// WithOnChange registers a callback invoked after every state change,
// including ones driven by timers. It runs outside the session lock on
// whichever goroutine made the change.
func WithOnChange(fn func(Snapshot)) Option {
	return func(s *Session) { s.onChange = fn }
}

// WithSettledCelebration makes Load finish a congrats stage restored from
// storage at once instead of re-arming its timer. One-shot commands close the
// session before any timer could fire.
func WithSettledCelebration() Option {
	return func(s *Session) { s.settle = true }
}

// Session owns today's state. All methods are safe for concurrent use.
type Session struct {
	kv       storage.KV
	clock    Clock
	delay    time.Duration
	onChange func(Snapshot)
	settle   bool

	mu      sync.Mutex
	state   DayState
	mood    models.Mood
	history []string
	timer   Timer
	timerID int
	closed  bool
}

func New(kv storage.KV, opts ...Option) *Session {
	s := &Session{
		kv:    kv,
		clock: SystemClock(nil),
		delay: constants.CelebrationDelay,
		mood:  models.MoodUnknown,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads persisted state for today, repairs the assignment and writes it
// back. A congrats stage restored from storage restarts its timer, or moves
// straight to insights with WithSettledCelebration. A closed session is not
// reloaded.
func (s *Session) Load() Snapshot {
	s.mu.Lock()
	now := s.clock.Now()
	if s.closed {
		snap := s.snapshot(now)
		s.mu.Unlock()
		return snap
	}
	today := utils.DateKey(now)

	a, src := records.LoadDaily(s.kv, today)
	s.mood = mood.Current(s.kv)
	a.Date = today
	a.AssignedIDs = suggest.Reconcile(s.mood, suggest.Seed(now, a.RefreshNonce, s.mood), a.Checked, a.AssignedIDs)
	s.saveDaily(a, src == records.SourceLegacy)

	s.state = DayState{Assignment: a, Stage: records.StageFor(s.kv, today)}
	s.history = records.ReadHistory(s.kv)
	if s.settle && s.state.Stage == models.StageCongrats {
		s.state.Stage, _ = Transition(s.state.Stage, EventCelebrationDone)
	}
	s.saveStage()

	s.stopTimer()
	if s.state.Stage == models.StageCongrats {
		s.armCelebration()
	}

	logger.Debug("session loaded", "date", today, "mood", s.mood, "stage", s.state.Stage, "source", src)
	snap := s.snapshot(now)
	s.mu.Unlock()

	s.notify(snap)
	return snap
}

// Now reads the session clock, in the configured timezone.
func (s *Session) Now() time.Time {
	return s.clock.Now()
}

// Snapshot returns the current view without changing anything.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot(s.clock.Now())
}

// Toggle flips the checked flag of an assigned action and reconciles the
// assignment.
func (s *Session) Toggle(id string) (Snapshot, error) {
	return s.mutate(func(now time.Time) (bool, error) {
		a := &s.state.Assignment
		if !contains(a.AssignedIDs, id) {
			return false, ErrNotAssigned
		}
		checked := copyChecked(a.Checked)
		checked[id] = !checked[id]
		a.Checked = checked

		s.mood = mood.Current(s.kv)
		a.AssignedIDs = suggest.Reconcile(s.mood, suggest.Seed(now, a.RefreshNonce, s.mood), a.Checked, a.AssignedIDs)
		s.saveDaily(*a, false)
		return true, nil
	})
}

// Refresh replaces the unchecked suggestions with a new draw.
func (s *Session) Refresh() (Snapshot, error) {
	return s.mutate(func(now time.Time) (bool, error) {
		a := &s.state.Assignment
		a.RefreshNonce++

		s.mood = mood.Current(s.kv)
		a.AssignedIDs = suggest.Reconcile(s.mood, suggest.Seed(now, a.RefreshNonce, s.mood), a.Checked, a.AssignedIDs)
		s.saveDaily(*a, false)
		return true, nil
	})
}

// Submit records today as completed and starts the celebration. Every
// assigned action must be checked.
func (s *Session) Submit() (Snapshot, error) {
	return s.mutate(func(now time.Time) (bool, error) {
		a := s.state.Assignment
		total := len(a.AssignedIDs)
		completed := a.CheckedCount()
		if total == 0 || completed != total {
			return false, ErrIncomplete
		}
		next, ok := Transition(s.state.Stage, EventSubmit)
		if !ok {
			return false, ErrWrongStage
		}

		history, err := records.AddCompletionDay(s.kv, a.Date)
		if err != nil {
			logger.Warn("failed to save completion history", "error", err)
		}
		s.history = history
		if err := records.RecordStats(s.kv, a.Date, total, completed); err != nil {
			logger.Warn("failed to save completion stats", "error", err)
		}

		s.state.Stage = next
		s.saveStage()
		s.armCelebration()
		logger.Info("actions submitted", "date", a.Date, "total", total)
		return true, nil
	})
}

// DismissCelebration returns from the insights stage to the suggestions.
// In any other stage it does nothing.
func (s *Session) DismissCelebration() (Snapshot, error) {
	return s.mutate(func(time.Time) (bool, error) {
		next, ok := Transition(s.state.Stage, EventDismiss)
		if !ok {
			return false, nil
		}
		s.state.Stage = next
		s.saveStage()
		return true, nil
	})
}

// CheckRollover starts a new day if the calendar date has changed since the
// state was built. It reports whether a rollover happened.
func (s *Session) CheckRollover() bool {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return false
	}
	now := s.clock.Now()
	rolled := s.rollover(now)
	var snap Snapshot
	if rolled {
		snap = s.snapshot(now)
	}
	s.mu.Unlock()

	if rolled {
		s.notify(snap)
	}
	return rolled
}

// Watch checks for a day rollover every interval until ctx is done.
func (s *Session) Watch(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = constants.RolloverInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.CheckRollover()
		}
	}
}

// Close cancels the pending celebration timer. Later mutations fail with
// ErrClosed.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopTimer()
	s.closed = true
}

// mutate runs fn under the lock after applying any pending rollover, then
// notifies if fn reported a change.
func (s *Session) mutate(fn func(now time.Time) (bool, error)) (Snapshot, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return Snapshot{}, ErrClosed
	}
	now := s.clock.Now()
	rolled := s.rollover(now)

	changed, err := fn(now)
	snap := s.snapshot(now)
	s.mu.Unlock()

	if rolled || changed {
		s.notify(snap)
	}
	return snap, err
}

// rollover must be called with s.mu held
func (s *Session) rollover(now time.Time) bool {
	today := utils.DateKey(now)
	next, rolled := RolloverIfStale(s.state, today)
	if !rolled {
		return false
	}

	s.stopTimer()
	s.mood = mood.Current(s.kv)
	next.Assignment.AssignedIDs = suggest.Reconcile(s.mood, suggest.Seed(now, 0, s.mood), nil, nil)
	next.Stage, _ = Transition(s.state.Stage, EventRollover)
	s.state = next

	s.saveDaily(s.state.Assignment, false)
	s.saveStage()
	logger.Info("day rolled over", "date", today, "mood", s.mood)
	return true
}

// armCelebration must be called with s.mu held
func (s *Session) armCelebration() {
	s.stopTimer()
	s.timerID++
	id := s.timerID
	s.timer = s.clock.AfterFunc(s.delay, func() { s.finishCelebration(id) })
}

func (s *Session) finishCelebration(id int) {
	s.mu.Lock()
	if s.closed || id != s.timerID {
		s.mu.Unlock()
		return
	}
	s.timer = nil
	next, ok := Transition(s.state.Stage, EventCelebrationDone)
	if !ok {
		s.mu.Unlock()
		return
	}
	s.state.Stage = next
	s.saveStage()
	snap := s.snapshot(s.clock.Now())
	s.mu.Unlock()

	s.notify(snap)
}

// stopTimer must be called with s.mu held
func (s *Session) stopTimer() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	// invalidates a callback that already fired and is waiting on the lock
	s.timerID++
}

func (s *Session) saveDaily(a models.DailyAssignment, syncLegacy bool) {
	if err := records.SaveDaily(s.kv, a, syncLegacy); err != nil {
		logger.Warn("failed to persist daily assignment", "error", err)
	}
}

func (s *Session) saveStage() {
	rec := models.StageRecord{Date: s.state.Assignment.Date, Stage: s.state.Stage}
	if err := records.WriteStage(s.kv, rec); err != nil {
		logger.Warn("failed to persist stage", "error", err)
	}
}

func (s *Session) snapshot(now time.Time) Snapshot {
	return buildSnapshot(now, s.state, s.mood, s.history)
}

func (s *Session) notify(snap Snapshot) {
	if s.onChange != nil {
		s.onChange(snap)
	}
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func copyChecked(m map[string]bool) map[string]bool {
	out := make(map[string]bool, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	return out
}
