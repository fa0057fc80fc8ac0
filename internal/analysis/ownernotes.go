package analysis

import (
	"sort"

	"github.com/DaniBVN/Tarif/internal/model"
)

// OwnerNotes lists every distinct (ChargeOwner, Note) pair with its
// occurrence count, alongside the owner's total record count. Rows are
// sorted by owner, then count descending, then note, so the most common
// notes of each grid company lead its block.
func OwnerNotes(records []model.TariffRecord) []model.OwnerNote {
	type key struct {
		owner string
		note  string
	}

	pairCounts := make(map[key]int)
	ownerTotals := make(map[string]int)

	for _, r := range records {
		pairCounts[key{r.ChargeOwner, r.Note}]++
		ownerTotals[r.ChargeOwner]++
	}

	rows := make([]model.OwnerNote, 0, len(pairCounts))
	for k, count := range pairCounts {
		rows = append(rows, model.OwnerNote{
			ChargeOwner: k.owner,
			Note:        k.note,
			Count:       count,
			OwnerTotal:  ownerTotals[k.owner],
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].ChargeOwner != rows[j].ChargeOwner {
			return rows[i].ChargeOwner < rows[j].ChargeOwner
		}
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Note < rows[j].Note
	})

	return rows
}
