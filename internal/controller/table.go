package controller

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"

	m "bvi.dev/pkg/bvi/internal/model"
)

func renderResultsTable(results []m.FeatureResult) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Feature", "Step", "Target", "Outcome", "Detail"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_LEFT,
	})

	applied := 0

	for _, result := range results {
		if len(result.Steps) == 0 {
			table.Append([]string{result.Feature.Title(), "-", "-", result.Outcome.String(), result.Reason})
		}

		for _, step := range result.Steps {
			table.Append([]string{result.Feature.Title(), step.Name, string(step.Target), step.Outcome.String(), step.Detail})

			if step.Outcome == m.OutcomeApplied {
				applied++
			}
		}
	}

	table.SetFooter([]string{
		fmt.Sprintf("Features %d", len(results)),
		"",
		"",
		fmt.Sprintf("Applied %d", applied),
		"",
	})

	table.Render()

	return tableBuffer.String()
}
