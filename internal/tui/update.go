package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/anchor/internal/logger"
	"github.com/julianstephens/anchor/internal/models"
	"github.com/julianstephens/anchor/internal/mood"
	"github.com/julianstephens/anchor/internal/session"
)

const progressPadding = 8

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.progress.Width = max(msg.Width-progressPadding, 10)
		return m, nil

	case changedMsg:
		m.setSnapshot(m.sess.Snapshot())
		return m, waitForChange(m.changes)
	}

	if m.form != nil {
		return m.updateForm(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	m.err = nil

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.snap.Items)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Toggle):
		if m.snap.Stage != models.StageNone || len(m.snap.Items) == 0 {
			break
		}
		m.apply(m.sess.Toggle(m.snap.Items[m.cursor].Action.ID))
	case key.Matches(keyMsg, m.keys.Refresh):
		if m.snap.Stage == models.StageNone {
			m.apply(m.sess.Refresh())
		}
	case key.Matches(keyMsg, m.keys.Submit):
		m.apply(m.sess.Submit())
	case key.Matches(keyMsg, m.keys.Dismiss):
		m.apply(m.sess.DismissCelebration())
	case key.Matches(keyMsg, m.keys.CheckIn):
		m.formMood = ""
		m.form = huh.NewForm(huh.NewGroup(NewMoodSelect(&m.formMood)))
		return m, m.form.Init()
	}
	return m, nil
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyEsc {
		m.form = nil
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.form = nil
		m.recordCheckIn()
		return m, nil
	case huh.StateAborted:
		m.form = nil
		return m, nil
	}
	return m, cmd
}

// recordCheckIn saves the picked mood stamped with the session clock and
// reloads, which only reshuffles unchecked suggestions.
func (m *Model) recordCheckIn() {
	if _, err := mood.Record(m.kv, m.formMood, "", m.sess.Now()); err != nil {
		m.err = err
		return
	}
	m.setSnapshot(m.sess.Load())
}

func (m *Model) apply(snap session.Snapshot, err error) {
	if err != nil {
		if !errors.Is(err, session.ErrClosed) {
			logger.Debug("tui action rejected", "error", err)
		}
		m.err = err
	}
	m.setSnapshot(snap)
}

func (m *Model) setSnapshot(snap session.Snapshot) {
	if snap.Date == "" {
		return
	}
	m.snap = snap
	if m.cursor >= len(snap.Items) {
		m.cursor = max(len(snap.Items)-1, 0)
	}
}
