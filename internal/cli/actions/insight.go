package actions

import (
	"encoding/json"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/julianstephens/anchor/internal/cli"
	"github.com/julianstephens/anchor/internal/insights"
	"github.com/julianstephens/anchor/internal/records"
	"github.com/julianstephens/anchor/internal/utils"
)

type InsightCmd struct {
	JSON bool `help:"Print the summary as JSON."`
}

func (c *InsightCmd) Run(ctx *cli.Context) error {
	today := utils.DateKey(ctx.Now())
	history := records.ReadHistory(ctx.Store)
	summary := insights.Summarize(history, today, insights.Streak(history, today))

	if c.JSON {
		enc := json.NewEncoder(ctx.Stdout())
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	}
	ctx.Println(celebrate.Render(fmt.Sprintf("🔥 %d-day streak", summary.Streak)))
	ctx.Println(summary.Sentence)
	return nil
}

type HistoryCmd struct {
	Days int `help:"Number of days to show, ending today." default:"14"`
}

func (c *HistoryCmd) Run(ctx *cli.Context) error {
	if c.Days < 1 {
		return fmt.Errorf("--days must be at least 1")
	}

	today := utils.DateKey(ctx.Now())
	history := records.ReadHistory(ctx.Store)
	stats := records.ReadStats(ctx.Store)

	done := make(map[string]bool, len(history))
	for _, d := range history {
		done[d] = true
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(ctx.Stdout())
	tw.AppendHeader(table.Row{"Date", "Completed", "Total", "Submitted"})
	for i := 0; i < c.Days; i++ {
		day, err := utils.AddDays(today, -i)
		if err != nil {
			return err
		}
		completed, total := "-", "-"
		if s, ok := stats[day]; ok {
			completed = fmt.Sprint(s.Completed)
			total = fmt.Sprint(s.Total)
		}
		mark := ""
		if done[day] {
			mark = "✓"
		}
		tw.AppendRow(table.Row{day, completed, total, mark})
	}
	tw.Render()

	ctx.Printf("Current streak: %d day(s)\n", insights.Streak(history, today))
	return nil
}
