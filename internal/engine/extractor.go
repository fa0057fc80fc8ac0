// Package engine implements the categorization core: field extraction,
// first-match-wins pattern matching and per-record classification.
package engine

import (
	"strings"

	"github.com/DaniBVN/Tarif/internal/model"
)

// Field names as they appear in match diagnostics.
const (
	FieldChargeTypeCode = "ChargeTypeCode"
	FieldNote           = "Note"
	FieldDescription    = "Description"
	FieldChargeType     = "ChargeType"
)

// Field is one record field prepared for matching.
type Field struct {
	Name string
	Text string
}

// Fields returns the record's searchable fields in matching priority
// order: the official code field is trusted over free text, so it comes
// first and ChargeType last. Text is lowercased; a missing field becomes
// an empty string, which never matches anything.
func Fields(r model.TariffRecord) []Field {
	return []Field{
		{Name: FieldChargeTypeCode, Text: strings.ToLower(r.ChargeTypeCode)},
		{Name: FieldNote, Text: strings.ToLower(r.Note)},
		{Name: FieldDescription, Text: strings.ToLower(r.Description)},
		{Name: FieldChargeType, Text: strings.ToLower(r.ChargeType)},
	}
}
