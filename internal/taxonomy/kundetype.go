package taxonomy

import "github.com/DaniBVN/Tarif/internal/model"

// Kundetype returns the customer-type dictionary. Categories run from the
// transmission level (A0) down to low-voltage C customers. The order is
// load-bearing: "a høj plus maske" must be tried before "a høj plus",
// which must be tried before "a høj", or the more specific customer types
// become unreachable.
func Kundetype() Dictionary {
	return Dictionary{
		Axis: model.AxisKundetype,
		Categories: []Category{
			{
				Name: "A0",
				Patterns: []string{
					"nettarif a0",
					"a0 forbrug",
					" a0",
					" 132-150 kv ",
					" 132/150 kv",
					"132/150 og 400 kv nettet",
					"tilsluttet transmissionsnettet",
				},
			},
			{
				Name: "Ahøj+maske",
				Patterns: []string{
					"a høj plus maske",
					"a-høj + maske",
					"ahøjplusmaske",
					"132-150/30-60 kv-transformerstation i maskenet",
				},
			},
			{
				Name: "Ahøj+",
				Patterns: []string{
					"a høj plus",
					"a-høj +",
					"ahøjplus",
					"a200gwh",
				},
			},
			{
				Name: "Ahøj",
				Patterns: []string{
					"a høj",
					"a-høj",
					"net abo a høj",
					"nettarif a høj",
					"ahøj",
					"30-60 kv",
					" 60 kv ",
					"60 kv-net",
					" 60/20 kv ",
					"e-59",
					"e-78",
					"e-87",
				},
			},
			{
				Name: "Alav",
				Patterns: []string{
					"a lav",
					"a-lav",
					"net abo a lav",
					"nettarif a lav",
					"alav",
					"10-20 kv-siden af en hovedstation",
					"10-30 kv-siden af en hovedstation",
					"e-58",
					"e-83",
					"e-86",
				},
			},
			{
				Name: "Bhøj",
				Patterns: []string{
					"b høj",
					"b-høj",
					"net abo b høj",
					"nettarif b høj",
					"bhøj",
					"b 20gwh",
					"b20gwh",
					"10-20 kv",
					"10-30 kv",
					"e-56",
					"e-68",
					"e-72",
					"e-82",
				},
			},
			{
				Name: "Blav",
				Patterns: []string{
					"b lav",
					"b-lav",
					"net abo b lav",
					"nettarif b lav",
					"blav",
					"0,4 kv-siden af en 10-20",
					"0,4 kv-siden af en 10-30",
					"e-54",
					"e-67",
					"e-71",
					"e-81",
				},
			},
			{
				Name: "C",
				Patterns: []string{
					"net abo c",
					"nettarif c",
					"type c",
					"kunde c",
					"kategori c",
					"c-kunde",
					"0,4 kv-nettet",
					" 0.4 kv ",
					" 0,4 kv ",
					"e-50",
					"e-51",
					"e-66",
					"e-70",
					"e-80",
					"e-85",
					"50001",
				},
			},
		},
	}
}
