package engine

import (
	"strings"

	"github.com/DaniBVN/Tarif/internal/model"
	"github.com/DaniBVN/Tarif/internal/taxonomy"
)

// Match scans the fields against one dictionary and returns the first hit.
//
// This is a single ordered scan, not per-field lookups merged afterward:
// field priority dominates category order dominates pattern order. The
// first field containing any pattern from any category decides the result,
// even when a later field would match an earlier-declared category.
func Match(fields []Field, dict taxonomy.Dictionary) model.MatchResult {
	for _, field := range fields {
		if field.Text == "" {
			continue
		}
		for _, cat := range dict.Categories {
			for _, pattern := range cat.Patterns {
				if strings.Contains(field.Text, pattern) {
					return model.MatchResult{
						Category: cat.Name,
						Field:    field.Name,
						Pattern:  pattern,
					}
				}
			}
		}
	}

	if dict.Fallback != "" {
		return model.MatchResult{Category: dict.Fallback}
	}

	return model.NoMatch()
}
