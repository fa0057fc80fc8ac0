package model

import "time"

// CategoryCount is one row of a per-axis distribution table.
type CategoryCount struct {
	Category   string
	Count      int
	Percentage float64
}

// Distribution is the category distribution for one axis. Counts always
// sum exactly to Total; percentages are rounded for display only.
type Distribution struct {
	Axis   Axis
	Counts []CategoryCount
	Total  int
}

// CrossTab counts records per (Kundetype, Tariftype) pair.
type CrossTab struct {
	Counts            map[string]map[string]int
	Rows              []string
	Cols              []string
	UncategorizedBoth int
	Total             int
}

// Count returns the cell for one (row, col) pair.
func (c *CrossTab) Count(row, col string) int {
	if m, ok := c.Counts[row]; ok {
		return m[col]
	}
	return 0
}

// CodeConsistency describes how uniformly one ChargeTypeCode was
// categorized across all of its records, per primary axis. A code is
// inconsistent on an axis when more than one distinct category appears.
type CodeConsistency struct {
	Code                string
	ModalKundetype      string
	ModalTariftype      string
	KundetypeCategories []string
	TariftypeCategories []string
	SampleNote          string
	Count               int
	KundetypeConsistent bool
	TariftypeConsistent bool
}

// Suggestion is a best-effort category proposal for a record left
// uncategorized on at least one primary axis. Confidence is an
// overlap-count heuristic, not a probability.
type Suggestion struct {
	ChargeTypeCode      string
	Note                string
	CurrentKundetype    string
	CurrentTariftype    string
	SuggestedKundetype  string
	SuggestedTariftype  string
	Reasoning           string
	KundetypeConfidence float64
	TariftypeConfidence float64
}

// HasSuggestion reports whether any pattern overlap was found at all.
func (s *Suggestion) HasSuggestion() bool {
	return s.SuggestedKundetype != "" || s.SuggestedTariftype != ""
}

// OwnerNote is one distinct (ChargeOwner, Note) pair with its occurrence
// count.
type OwnerNote struct {
	ChargeOwner string
	Note        string
	Count       int
	OwnerTotal  int
}

// Report is everything the report builders render: the full classified
// record set plus all aggregate tables.
type Report struct {
	GeneratedAt   time.Time
	Start         time.Time
	End           time.Time
	Records       []ClassifiedRecord
	Distributions []Distribution
	CrossTab      CrossTab
	Uncategorized []ClassifiedRecord
	Consistency   []CodeConsistency
	Suggestions   []Suggestion
	OwnerNotes    []OwnerNote
}
