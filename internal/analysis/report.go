package analysis

import (
	"time"

	"github.com/DaniBVN/Tarif/internal/model"
	"github.com/DaniBVN/Tarif/internal/taxonomy"
)

// BuildReport assembles the complete report from one classified record
// set: distributions for both primary axes, the cross-tabulation, the
// uncategorized subset, the code consistency table, suggestions and the
// notes-by-owner listing.
func BuildReport(start, end time.Time, classified []model.ClassifiedRecord) *model.Report {
	kundetype := taxonomy.Kundetype()
	tariftype := taxonomy.Tariftype()

	var uncategorized []model.ClassifiedRecord
	for _, c := range classified {
		if c.Category(kundetype.Axis) == model.Uncategorized ||
			c.Category(tariftype.Axis) == model.Uncategorized {
			uncategorized = append(uncategorized, c)
		}
	}

	records := make([]model.TariffRecord, len(classified))
	for i, c := range classified {
		records[i] = c.Record
	}

	return &model.Report{
		GeneratedAt: time.Now(),
		Start:       start,
		End:         end,
		Records:     classified,
		Distributions: []model.Distribution{
			Distribution(classified, kundetype),
			Distribution(classified, tariftype),
		},
		CrossTab:      CrossTabulate(classified, kundetype, tariftype),
		Uncategorized: uncategorized,
		Consistency:   Consistency(classified),
		Suggestions:   Suggest(classified, kundetype, tariftype),
		OwnerNotes:    OwnerNotes(records),
	}
}
