package taxonomy

import "github.com/DaniBVN/Tarif/internal/model"

// Tariftype returns the tariff-type dictionary. There is deliberately no
// bare "tarif" pattern: it would shadow rådighedstarif, effekttarif and
// systemtarif for every record whose note mentions the word.
func Tariftype() Dictionary {
	return Dictionary{
		Axis: model.AxisTariftype,
		Categories: []Category{
			{
				Name: "tidsdifferentieret",
				Patterns: []string{
					"tidsdifferentieret",
					"tids-differentieret",
					"tid differentieret",
					"time of use",
					"timetarif",
					"timeaflæst",
					"nettarif",
					"nettarrif", // misspelling present in the dataset
					"nettarit",  // misspelling present in the dataset
					"d03",
				},
			},
			{
				Name: "abonnement",
				Patterns: []string{
					"abonnement",
					"netabonnement",
					"net abo",
					"abo",
					"abb ",
					"fast betaling",
					"d01",
				},
			},
			{
				Name: "rådighed",
				Patterns: []string{
					"rådighedstarif",
					"rådighedsbetaling",
					"rådighed",
					"egenproducentbidrag",
					"egenproducenten har produktionsmåler",
					"kapacitet",
				},
			},
			{
				Name: "indfødning",
				Patterns: []string{
					"indfødningsnettarif",
					"indfødningstarif",
					"indfødning",
					"producent",
					"produktion",
					"vindmølle",
					"egenprod",
					"uden aftagepligt",
				},
			},
			{
				Name: "effektbetaling",
				Patterns: []string{
					"effektbetaling",
					"effektbidrag",
					"effekttarif",
					"effekt",
				},
			},
			{
				Name: "gebyr",
				Patterns: []string{
					"gebyr",
					"d02",
				},
			},
			{
				Name: "elafgift",
				Patterns: []string{
					"elafgift",
				},
			},
			{
				Name: "balancetarif",
				Patterns: []string{
					"balancetarif",
					"45012",
				},
			},
			{
				Name: "PSO-tarif",
				Patterns: []string{
					"pso-tarif",
					"pso tarif",
				},
			},
			{
				Name: "systemtarif",
				Patterns: []string{
					"systemtarif",
					"systemafgift",
				},
			},
		},
	}
}
