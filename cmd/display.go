package main

import (
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/marketscout/compete-cli/internal/analyzer"
	"github.com/marketscout/compete-cli/internal/export"
	"github.com/marketscout/compete-cli/internal/model"
)

// printResult renders the flattened result followed by a per-step
// status table.
func printResult(result *model.AnalysisResult, reports []analyzer.StepReport) {
	fmt.Printf("\nAnalysis Results for %s\n", result.CompetitorName)
	fmt.Printf("Analyzed at: %s\n\n", result.AnalyzedAt.Format("2006-01-02 15:04:05"))

	rows := export.Rows(result)
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{rows[0][0], rows[0][1], rows[0][2]})
	for _, r := range rows[1:] {
		t.AppendRow(table.Row{r[0], r[1], r[2]})
	}
	t.Render()

	s := table.NewWriter()
	s.SetOutputMirror(os.Stdout)
	s.SetStyle(table.StyleRounded)
	s.SetTitle("Steps")
	s.AppendHeader(table.Row{"Step", "Status", "Duration", "Error"})
	for _, rep := range reports {
		errText := "-"
		if rep.Err != nil {
			errText = rep.Err.Error()
		}
		s.AppendRow(table.Row{
			string(rep.Kind),
			string(rep.Status),
			rep.Duration.Round(time.Millisecond).String(),
			errText,
		})
	}
	s.Render()
}
