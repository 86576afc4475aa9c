package actions

import (
	"strings"

	"github.com/julianstephens/anchor/internal/cli"
	"github.com/julianstephens/anchor/internal/mood"
	"github.com/julianstephens/anchor/internal/tui"
)

type CheckinCmd struct {
	Mood string `arg:"" optional:"" help:"How you feel, in a word or a few. Prompts when omitted."`
	Note string `help:"Optional note stored with the check-in."`
}

func (c *CheckinCmd) Run(ctx *cli.Context) error {
	raw := strings.TrimSpace(c.Mood)
	if raw == "" {
		picked, err := promptMood()
		if err != nil {
			return err
		}
		raw = picked
	}

	if _, err := mood.Record(ctx.Store, raw, c.Note, ctx.Now()); err != nil {
		return err
	}

	ctx.Printf("✓ Checked in as %q (suggestions for: %s)\n", raw, mood.Normalize(raw))
	return nil
}

func promptMood() (string, error) {
	var picked string
	if err := tui.NewMoodSelect(&picked).Run(); err != nil {
		return "", err
	}
	return picked, nil
}
