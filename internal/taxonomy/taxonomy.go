// Package taxonomy defines the pattern dictionaries the categorization
// engine matches tariff records against. Dictionaries are ordered: category
// declaration order and pattern order are both tie-break rules, so they are
// kept as slices, never maps.
package taxonomy

import (
	"fmt"
	"strings"

	"github.com/DaniBVN/Tarif/internal/model"
)

// Category is one category label with its ordered pattern alternatives.
// Patterns are lowercase literal substrings; any one of them identifies
// the category.
type Category struct {
	Name     string
	Patterns []string
}

// Dictionary is the ordered pattern dictionary for one classification
// axis. A non-empty Fallback is assigned instead of Uncategorized when no
// pattern matches.
type Dictionary struct {
	Axis       model.Axis
	Fallback   string
	Categories []Category
}

// Validate checks that the dictionary is well formed: category names are
// unique and non-empty, and every pattern is a non-empty lowercase literal.
// Empty patterns would match every field text, including empty ones.
func (d Dictionary) Validate() error {
	if d.Axis == "" {
		return fmt.Errorf("dictionary has no axis")
	}

	seen := make(map[string]bool, len(d.Categories))
	for _, cat := range d.Categories {
		if cat.Name == "" {
			return fmt.Errorf("axis %s: category with empty name", d.Axis)
		}
		if cat.Name == model.Uncategorized {
			return fmt.Errorf("axis %s: %q is a reserved label", d.Axis, model.Uncategorized)
		}
		if seen[cat.Name] {
			return fmt.Errorf("axis %s: duplicate category %q", d.Axis, cat.Name)
		}
		seen[cat.Name] = true

		for _, p := range cat.Patterns {
			if p == "" {
				return fmt.Errorf("axis %s: category %q has an empty pattern", d.Axis, cat.Name)
			}
			if p != strings.ToLower(p) {
				return fmt.Errorf("axis %s: category %q: pattern %q is not lowercase", d.Axis, cat.Name, p)
			}
		}
	}

	if d.Fallback != "" && !seen[d.Fallback] {
		return fmt.Errorf("axis %s: fallback %q is not a declared category", d.Axis, d.Fallback)
	}

	return nil
}

// CategoryNames returns the declared category labels in order.
func (d Dictionary) CategoryNames() []string {
	names := make([]string, len(d.Categories))
	for i, cat := range d.Categories {
		names[i] = cat.Name
	}
	return names
}

// PatternCount returns the total number of patterns across all categories.
func (d Dictionary) PatternCount() int {
	n := 0
	for _, cat := range d.Categories {
		n += len(cat.Patterns)
	}
	return n
}

// Default returns the full ordered set of dictionaries, primary axes first.
func Default() []Dictionary {
	return []Dictionary{
		Kundetype(),
		Tariftype(),
		Bruger(),
		OverliggendeNet(),
		Rabat(),
	}
}

// Primary returns the dictionaries for the two axes the aggregate
// analysis (distribution, consistency, suggestions) runs on.
func Primary() []Dictionary {
	return []Dictionary{
		Kundetype(),
		Tariftype(),
	}
}
