package actions

import (
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/julianstephens/anchor/internal/catalog"
	"github.com/julianstephens/anchor/internal/cli"
	"github.com/julianstephens/anchor/internal/mood"
	"github.com/julianstephens/anchor/internal/suggest"
)

type CatalogCmd struct {
	Mood string `help:"Only list the candidate pool for this mood."`
}

func (c *CatalogCmd) Run(ctx *cli.Context) error {
	actions := catalog.All()
	if c.Mood != "" {
		m := mood.Normalize(c.Mood)
		ctx.Printf("Pool for %s (%d suggested per day):\n", m, suggest.TargetCount(m))
		actions = catalog.Resolve(catalog.Pool(m))
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(ctx.Stdout())
	tw.AppendHeader(table.Row{"#", "ID", "Action"})
	for i, a := range actions {
		tw.AppendRow(table.Row{i + 1, a.ID, a.Title})
	}
	tw.Render()
	return nil
}
