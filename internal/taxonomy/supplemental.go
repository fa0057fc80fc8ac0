package taxonomy

import "github.com/DaniBVN/Tarif/internal/model"

// The axes below only annotate the categorized output; the aggregate
// analysis runs on the primary Kundetype and Tariftype axes.

// Bruger returns the consumer/producer dictionary. Egenproduktion is
// declared first because "egenproduktion" contains "produktion"; records
// with no match at all default to Forbrug.
func Bruger() Dictionary {
	return Dictionary{
		Axis:     model.AxisBruger,
		Fallback: "Forbrug",
		Categories: []Category{
			{
				Name: "Egenproduktion",
				Patterns: []string{
					"egenproduktion",
					"egenproduction", // misspelling present in the dataset
					"egenproducent",
					"egenprod",
					"egen produktion",
					"rådighed",
				},
			},
			{
				Name: "Produktion",
				Patterns: []string{
					"indfødningstarif",
					"produktion",
					"vindmølle",
					"kraftværk",
					"solcelle",
					"ve-",
					"affald",
				},
			},
			{
				Name: "Forbrug",
				Patterns: []string{
					"forbrug",
					"elkedel",
					"elpatron",
				},
			},
		},
	}
}

// OverliggendeNet returns the single-category dictionary flagging charges
// passed through from an overlying grid.
func OverliggendeNet() Dictionary {
	return Dictionary{
		Axis: model.AxisOverliggendeNet,
		Categories: []Category{
			{
				Name: "Overliggende net",
				Patterns: []string{
					"overliggende",
					"overordnet",
					"mellemliggende",
				},
			},
		},
	}
}

// Rabat returns the single-category rebate dictionary.
func Rabat() Dictionary {
	return Dictionary{
		Axis: model.AxisRabat,
		Categories: []Category{
			{
				Name: "Rabat",
				Patterns: []string{
					"rabat",
				},
			},
		},
	}
}
