package analysis

import (
	"fmt"
	"strings"

	"github.com/DaniBVN/Tarif/internal/model"
	"github.com/DaniBVN/Tarif/internal/taxonomy"
)

const maxReasonFragments = 3

// Suggest proposes categories for records left uncategorized on at least
// one primary axis. The scan is deliberately looser than the matcher: all
// field text is concatenated and every category's patterns are counted,
// with no field-priority short-circuit. The category with the most
// overlapping pattern fragments wins, ties resolving to the category
// declared first. A record with zero overlap anywhere is still reported,
// flagged with no suggestion. The confidence is an overlap-count
// heuristic, nothing more.
func Suggest(classified []model.ClassifiedRecord, kundetype, tariftype taxonomy.Dictionary) []model.Suggestion {
	var suggestions []model.Suggestion

	for i := range classified {
		c := &classified[i]

		ktMissing := c.Category(kundetype.Axis) == model.Uncategorized
		ttMissing := c.Category(tariftype.Axis) == model.Uncategorized
		if !ktMissing && !ttMissing {
			continue
		}

		text := looseText(c.Record)

		s := model.Suggestion{
			ChargeTypeCode:   c.Record.ChargeTypeCode,
			Note:             c.Record.Note,
			CurrentKundetype: c.Category(kundetype.Axis),
			CurrentTariftype: c.Category(tariftype.Axis),
		}

		var reasons []string
		if ktMissing {
			if cand, ok := bestOverlap(text, kundetype); ok {
				s.SuggestedKundetype = cand.category
				s.KundetypeConfidence = confidence(cand.overlaps)
				reasons = append(reasons, cand.reason(kundetype.Axis))
			}
		}
		if ttMissing {
			if cand, ok := bestOverlap(text, tariftype); ok {
				s.SuggestedTariftype = cand.category
				s.TariftypeConfidence = confidence(cand.overlaps)
				reasons = append(reasons, cand.reason(tariftype.Axis))
			}
		}
		s.Reasoning = strings.Join(reasons, "; ")

		suggestions = append(suggestions, s)
	}

	return suggestions
}

// looseText concatenates all searchable fields for the loose containment
// check.
func looseText(r model.TariffRecord) string {
	return strings.ToLower(strings.Join([]string{
		r.ChargeTypeCode, r.Note, r.Description, r.ChargeType,
	}, " "))
}

type candidate struct {
	category  string
	fragments []string
	overlaps  int
}

func (c candidate) reason(axis model.Axis) string {
	fragments := c.fragments
	if len(fragments) > maxReasonFragments {
		fragments = fragments[:maxReasonFragments]
	}
	return fmt.Sprintf("%s: overlaps %q", axis, fragments)
}

// bestOverlap scores every category by the number of its patterns found
// anywhere in the text and returns the highest scorer. Ties keep the
// category declared first.
func bestOverlap(text string, dict taxonomy.Dictionary) (candidate, bool) {
	var best candidate

	for _, cat := range dict.Categories {
		cand := candidate{category: cat.Name}
		for _, pattern := range cat.Patterns {
			if strings.Contains(text, pattern) {
				cand.overlaps++
				cand.fragments = append(cand.fragments, pattern)
			}
		}
		if cand.overlaps > best.overlaps {
			best = cand
		}
	}

	return best, best.overlaps > 0
}

// confidence maps an overlap count onto a capped heuristic score.
func confidence(overlaps int) float64 {
	score := 0.4 + 0.15*float64(overlaps)
	if score > 0.95 {
		return 0.95
	}
	return score
}
