package analysis

import (
	"sort"

	"github.com/DaniBVN/Tarif/internal/model"
)

// Consistency groups records by ChargeTypeCode and reports, per primary
// axis, the distinct categories each code received, the modal category and
// whether the code is inconsistent (mapped to more than one category).
// Duplicate codes are expected input; they are exactly what this analysis
// exists for. Results are ordered by record count descending, codes with
// equal counts keeping first-encounter order.
func Consistency(classified []model.ClassifiedRecord) []model.CodeConsistency {
	type group struct {
		records []*model.ClassifiedRecord
	}

	order := make([]string, 0)
	groups := make(map[string]*group)

	for i := range classified {
		code := classified[i].Record.ChargeTypeCode
		g, ok := groups[code]
		if !ok {
			g = &group{}
			groups[code] = g
			order = append(order, code)
		}
		g.records = append(g.records, &classified[i])
	}

	rows := make([]model.CodeConsistency, 0, len(order))
	for _, code := range order {
		g := groups[code]

		ktCategories, ktModal := categoryProfile(g.records, model.AxisKundetype)
		ttCategories, ttModal := categoryProfile(g.records, model.AxisTariftype)

		rows = append(rows, model.CodeConsistency{
			Code:                code,
			Count:               len(g.records),
			ModalKundetype:      ktModal,
			KundetypeCategories: ktCategories,
			KundetypeConsistent: len(ktCategories) <= 1,
			ModalTariftype:      ttModal,
			TariftypeCategories: ttCategories,
			TariftypeConsistent: len(ttCategories) <= 1,
			SampleNote:          g.records[0].Record.Note,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Count > rows[j].Count
	})

	return rows
}

// categoryProfile returns the distinct categories assigned to a group on
// one axis, in first-encounter order, plus the modal category. Ties on the
// modal count deliberately resolve to the category encountered first.
func categoryProfile(records []*model.ClassifiedRecord, axis model.Axis) ([]string, string) {
	counts := make(map[string]int)
	var distinct []string

	for _, r := range records {
		cat := r.Category(axis)
		if counts[cat] == 0 {
			distinct = append(distinct, cat)
		}
		counts[cat]++
	}

	modal := ""
	best := 0
	for _, cat := range distinct {
		if counts[cat] > best {
			modal = cat
			best = counts[cat]
		}
	}

	return distinct, modal
}
