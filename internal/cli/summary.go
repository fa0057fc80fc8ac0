package cli

import (
	"fmt"
	"strings"

	"github.com/DaniBVN/Tarif/internal/model"
)

// RenderSummary renders the post-run categorization summary box: one
// distribution block per axis plus the headline counts.
func RenderSummary(report *model.Report) string {
	var b strings.Builder

	total := len(report.Records)
	fmt.Fprintf(&b, "Total records: %d\n", total)
	fmt.Fprintf(&b, "Uncategorized on both axes: %d\n", report.CrossTab.UncategorizedBoth)
	fmt.Fprintf(&b, "Suggestions: %d\n", len(report.Suggestions))

	for _, dist := range report.Distributions {
		b.WriteString("\n")
		b.WriteString(SubtleStyle.Render(strings.ToUpper(string(dist.Axis)) + " DISTRIBUTION"))
		b.WriteString("\n")
		for _, count := range dist.Counts {
			if count.Count == 0 {
				continue
			}
			line := fmt.Sprintf("  %-20s %6d  (%.2f%%)", count.Category, count.Count, count.Percentage)
			if count.Category == model.Uncategorized && count.Count > 0 {
				line = WarningStyle.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	inconsistent := 0
	for _, row := range report.Consistency {
		if !row.KundetypeConsistent || !row.TariftypeConsistent {
			inconsistent++
		}
	}
	fmt.Fprintf(&b, "\nInconsistent charge type codes: %d of %d\n", inconsistent, len(report.Consistency))

	return RenderBox(ChartIcon+" Categorization Results", strings.TrimRight(b.String(), "\n"))
}
