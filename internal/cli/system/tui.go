package system

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/anchor/internal/cli"
	"github.com/julianstephens/anchor/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	ctx.PerformAutomaticBackup()

	onChange, changes := tui.Changes()
	sess := ctx.NewSession(onChange)
	defer sess.Close()
	sess.Load()

	watchCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go sess.Watch(watchCtx, ctx.Config.RolloverInterval)

	p := tea.NewProgram(tui.NewModel(sess, ctx.Store, changes), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui exited with error: %w", err)
	}
	return nil
}
