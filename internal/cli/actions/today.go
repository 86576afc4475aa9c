package actions

import (
	"encoding/json"

	"github.com/julianstephens/anchor/internal/cli"
)

type TodayCmd struct {
	JSON bool `help:"Print the day as JSON."`
}

func (c *TodayCmd) Run(ctx *cli.Context) error {
	s, snap := loadSession(ctx)
	defer s.Close()

	if c.JSON {
		enc := json.NewEncoder(ctx.Stdout())
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	}
	printSnapshot(ctx.Stdout(), snap)
	return nil
}

type ToggleCmd struct {
	IDs []string `arg:"" name:"id" help:"Action id(s) to check or uncheck."`
}

func (c *ToggleCmd) Run(ctx *cli.Context) error {
	s, snap := loadSession(ctx)
	defer s.Close()

	for _, id := range c.IDs {
		var err error
		snap, err = s.Toggle(id)
		if err != nil {
			return fmtNotAssigned(id, err)
		}
	}
	printSnapshot(ctx.Stdout(), snap)
	return nil
}

type RefreshCmd struct{}

func (c *RefreshCmd) Run(ctx *cli.Context) error {
	s, _ := loadSession(ctx)
	defer s.Close()

	snap, err := s.Refresh()
	if err != nil {
		return err
	}
	printSnapshot(ctx.Stdout(), snap)
	return nil
}

type DismissCmd struct{}

func (c *DismissCmd) Run(ctx *cli.Context) error {
	s, _ := loadSession(ctx)
	defer s.Close()

	snap, err := s.DismissCelebration()
	if err != nil {
		return err
	}
	printSnapshot(ctx.Stdout(), snap)
	return nil
}
