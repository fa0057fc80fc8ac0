// Package model defines the core domain models used throughout the application.
package model

import "github.com/shopspring/decimal"

// TariffRecord is one DatahubPricelist entry as served by Energi Data
// Service. Records are immutable once fetched; the categorization engine
// only reads ChargeTypeCode, Note, Description and ChargeType, everything
// else is carried through to the report unchanged.
type TariffRecord struct {
	ChargeOwner          string              `json:"ChargeOwner"`
	GLNNumber            string              `json:"GLN_Number"`
	ChargeType           string              `json:"ChargeType"`
	ChargeTypeCode       string              `json:"ChargeTypeCode"`
	Note                 string              `json:"Note"`
	Description          string              `json:"Description"`
	ValidFrom            string              `json:"ValidFrom"`
	ValidTo              string              `json:"ValidTo"`
	VATClass             string              `json:"VATClass"`
	Price1               decimal.NullDecimal `json:"Price1"`
	Price2               decimal.NullDecimal `json:"Price2"`
	Price3               decimal.NullDecimal `json:"Price3"`
	Price4               decimal.NullDecimal `json:"Price4"`
	Price5               decimal.NullDecimal `json:"Price5"`
	Price6               decimal.NullDecimal `json:"Price6"`
	Price7               decimal.NullDecimal `json:"Price7"`
	Price8               decimal.NullDecimal `json:"Price8"`
	Price9               decimal.NullDecimal `json:"Price9"`
	Price10              decimal.NullDecimal `json:"Price10"`
	Price11              decimal.NullDecimal `json:"Price11"`
	Price12              decimal.NullDecimal `json:"Price12"`
	Price13              decimal.NullDecimal `json:"Price13"`
	Price14              decimal.NullDecimal `json:"Price14"`
	Price15              decimal.NullDecimal `json:"Price15"`
	Price16              decimal.NullDecimal `json:"Price16"`
	Price17              decimal.NullDecimal `json:"Price17"`
	Price18              decimal.NullDecimal `json:"Price18"`
	Price19              decimal.NullDecimal `json:"Price19"`
	Price20              decimal.NullDecimal `json:"Price20"`
	Price21              decimal.NullDecimal `json:"Price21"`
	Price22              decimal.NullDecimal `json:"Price22"`
	Price23              decimal.NullDecimal `json:"Price23"`
	Price24              decimal.NullDecimal `json:"Price24"`
	TransparentInvoicing int                 `json:"TransparentInvoicing"`
	TaxIndicator         int                 `json:"TaxIndicator"`
	ResolutionDuration   string              `json:"ResolutionDuration"`
}

// Prices returns the 24 hourly price columns in order.
func (r *TariffRecord) Prices() []decimal.NullDecimal {
	return []decimal.NullDecimal{
		r.Price1, r.Price2, r.Price3, r.Price4, r.Price5, r.Price6,
		r.Price7, r.Price8, r.Price9, r.Price10, r.Price11, r.Price12,
		r.Price13, r.Price14, r.Price15, r.Price16, r.Price17, r.Price18,
		r.Price19, r.Price20, r.Price21, r.Price22, r.Price23, r.Price24,
	}
}

// SetPrices fills the 24 hourly price columns from a slice; entries beyond
// the available columns are ignored.
func (r *TariffRecord) SetPrices(prices []decimal.NullDecimal) {
	dst := []*decimal.NullDecimal{
		&r.Price1, &r.Price2, &r.Price3, &r.Price4, &r.Price5, &r.Price6,
		&r.Price7, &r.Price8, &r.Price9, &r.Price10, &r.Price11, &r.Price12,
		&r.Price13, &r.Price14, &r.Price15, &r.Price16, &r.Price17, &r.Price18,
		&r.Price19, &r.Price20, &r.Price21, &r.Price22, &r.Price23, &r.Price24,
	}
	for i, p := range prices {
		if i >= len(dst) {
			break
		}
		*dst[i] = p
	}
}
