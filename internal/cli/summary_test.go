package cli

import (
	"testing"

	"github.com/DaniBVN/Tarif/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestRenderSummary(t *testing.T) {
	report := &model.Report{
		Records: make([]model.ClassifiedRecord, 4),
		CrossTab: model.CrossTab{
			UncategorizedBoth: 1,
			Total:             4,
		},
		Distributions: []model.Distribution{
			{
				Axis:  model.AxisKundetype,
				Total: 4,
				Counts: []model.CategoryCount{
					{Category: "C", Count: 3, Percentage: 75},
					{Category: "A0", Count: 0, Percentage: 0},
					{Category: model.Uncategorized, Count: 1, Percentage: 25},
				},
			},
		},
		Consistency: []model.CodeConsistency{
			{Code: "E-50", KundetypeConsistent: true, TariftypeConsistent: true},
			{Code: "DT_X", KundetypeConsistent: false, TariftypeConsistent: true},
		},
		Suggestions: []model.Suggestion{{ChargeTypeCode: "XX"}},
	}

	out := RenderSummary(report)

	assert.Contains(t, out, "Total records: 4")
	assert.Contains(t, out, "Uncategorized on both axes: 1")
	assert.Contains(t, out, "Suggestions: 1")
	assert.Contains(t, out, "KUNDETYPE DISTRIBUTION")
	assert.Contains(t, out, "C")
	assert.NotContains(t, out, "A0", "zero counts are not rendered")
	assert.Contains(t, out, "Inconsistent charge type codes: 1 of 2")
}

func TestFormatHelpers(t *testing.T) {
	assert.Contains(t, FormatSuccess("saved"), "saved")
	assert.Contains(t, FormatError("boom"), "boom")
	assert.Contains(t, FormatWarning("careful"), "careful")
	assert.Contains(t, FormatTitle("Tarif"), "Tarif")
	assert.Contains(t, RenderBox("Title", "content"), "content")
}
