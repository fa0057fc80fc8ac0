package model

// Axis is one independent classification dimension. Every record receives
// exactly one result per axis; axes never influence each other.
type Axis string

// Classification axes. Kundetype and Tariftype are the primary axes the
// aggregate analysis runs on; the remaining axes only annotate the
// categorized output.
const (
	AxisKundetype       Axis = "Kundetype"
	AxisTariftype       Axis = "Tariftype"
	AxisBruger          Axis = "Bruger"
	AxisOverliggendeNet Axis = "OverliggendeNet"
	AxisRabat           Axis = "Rabat"
)

// Uncategorized is the result category for records no pattern matched.
const Uncategorized = "Uncategorized"

// MatchResult is the outcome of matching one record against one axis's
// pattern dictionary. For a hit, Field and Pattern identify exactly which
// field text contained which pattern. Produced fresh per record, never
// mutated.
type MatchResult struct {
	Category string
	Field    string
	Pattern  string
}

// NoMatch returns the result for a record no pattern matched.
func NoMatch() MatchResult {
	return MatchResult{Category: Uncategorized}
}

// IsUncategorized reports whether no pattern matched.
func (m MatchResult) IsUncategorized() bool {
	return m.Category == Uncategorized
}

// ClassifiedRecord pairs a record with its per-axis match results.
type ClassifiedRecord struct {
	Results map[Axis]MatchResult
	Record  TariffRecord
}

// Category returns the category assigned on the given axis, or
// Uncategorized if the axis was never classified.
func (c *ClassifiedRecord) Category(axis Axis) string {
	if r, ok := c.Results[axis]; ok {
		return r.Category
	}
	return Uncategorized
}
