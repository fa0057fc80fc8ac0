// Package analysis computes the aggregate tables of a categorization run:
// per-axis distributions, the Kundetype/Tariftype cross-tabulation, the
// per-code consistency analysis and suggestions for uncategorized records.
// All computations are independent passes over the classified record set;
// an empty input produces empty tables, never an error.
package analysis

import (
	"github.com/DaniBVN/Tarif/internal/model"
	"github.com/DaniBVN/Tarif/internal/taxonomy"
)

// Distribution counts records per category on one axis. Every declared
// category is listed in dictionary order, zero counts included, with
// Uncategorized as the final row. Counts sum exactly to the record total;
// percentages are for display only.
func Distribution(classified []model.ClassifiedRecord, dict taxonomy.Dictionary) model.Distribution {
	counts := make(map[string]int, len(dict.Categories)+1)
	for _, c := range classified {
		counts[c.Category(dict.Axis)]++
	}

	labels := append(dict.CategoryNames(), model.Uncategorized)

	dist := model.Distribution{
		Axis:   dict.Axis,
		Total:  len(classified),
		Counts: make([]model.CategoryCount, 0, len(labels)),
	}
	for _, label := range labels {
		dist.Counts = append(dist.Counts, model.CategoryCount{
			Category:   label,
			Count:      counts[label],
			Percentage: percentage(counts[label], len(classified)),
		})
	}

	return dist
}

// CrossTabulate counts records per (Kundetype, Tariftype) pair, plus the
// number of records uncategorized on both primary axes.
func CrossTabulate(classified []model.ClassifiedRecord, kundetype, tariftype taxonomy.Dictionary) model.CrossTab {
	ct := model.CrossTab{
		Rows:   append(kundetype.CategoryNames(), model.Uncategorized),
		Cols:   append(tariftype.CategoryNames(), model.Uncategorized),
		Counts: make(map[string]map[string]int),
		Total:  len(classified),
	}

	for _, c := range classified {
		kt := c.Category(kundetype.Axis)
		tt := c.Category(tariftype.Axis)

		if ct.Counts[kt] == nil {
			ct.Counts[kt] = make(map[string]int)
		}
		ct.Counts[kt][tt]++

		if kt == model.Uncategorized && tt == model.Uncategorized {
			ct.UncategorizedBoth++
		}
	}

	return ct
}

func percentage(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}
