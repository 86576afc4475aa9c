package actions

import (
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/anchor/internal/cli"
	apperrors "github.com/julianstephens/anchor/internal/errors"
	"github.com/julianstephens/anchor/internal/models"
	"github.com/julianstephens/anchor/internal/session"
)

// extra time allowed past the celebration delay before giving up
const insightGrace = 5 * time.Second

type SubmitCmd struct {
	NoWait bool `help:"Return right after submitting instead of waiting for the insight."`
}

func (c *SubmitCmd) Run(ctx *cli.Context) error {
	insight := make(chan session.Snapshot, 1)
	s, _ := loadSession(ctx, session.WithOnChange(func(snap session.Snapshot) {
		if snap.Stage != models.StageInsights {
			return
		}
		select {
		case insight <- snap:
		default:
		}
	}))
	defer s.Close()

	snap, err := s.Submit()
	switch {
	case errors.Is(err, session.ErrIncomplete):
		return apperrors.WithHint(
			fmt.Errorf("%w (%d of %d done)", err, snap.Completed, snap.Total),
			"check off the remaining actions with 'anchor toggle <id>'",
		)
	case errors.Is(err, session.ErrWrongStage):
		return apperrors.WithHint(err, "run 'anchor insight' to see today's summary")
	case err != nil:
		return err
	}

	ctx.Println(celebrate.Render("🎉 All done for today. Well done!"))
	if c.NoWait {
		return nil
	}

	select {
	case snap = <-insight:
		printInsight(ctx.Stdout(), snap)
	case <-time.After(ctx.Config.CelebrationDelay + insightGrace):
		return fmt.Errorf("timed out waiting for the celebration to finish")
	}
	return nil
}

func fmtNotAssigned(id string, err error) error {
	if errors.Is(err, session.ErrNotAssigned) {
		return apperrors.WithHint(fmt.Errorf("%s: %w", id, err), "run 'anchor today' to see the current ids")
	}
	return err
}
