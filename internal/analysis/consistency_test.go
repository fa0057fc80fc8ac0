package analysis

import (
	"testing"

	"github.com/DaniBVN/Tarif/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsistency(t *testing.T) {
	classified := classify(t, []model.TariffRecord{
		{ChargeTypeCode: "E-50", Note: "Nettarif C"},
		{ChargeTypeCode: "E-50", Note: "Nettarif C time"},
		{ChargeTypeCode: "E-50", Note: "Nettarif B lav"},
		{ChargeTypeCode: "45012", Note: "Balancetarif for forbrug"},
	})

	rows := Consistency(classified)
	require.Len(t, rows, 2)

	// Bigger group first.
	e50 := rows[0]
	assert.Equal(t, "E-50", e50.Code)
	assert.Equal(t, 3, e50.Count)
	assert.Equal(t, "Nettarif C", e50.SampleNote)

	// The code field wins the scan, so every E-50 record is a C customer
	// regardless of its note.
	assert.Equal(t, []string{"C"}, e50.KundetypeCategories)
	assert.Equal(t, "C", e50.ModalKundetype)
	assert.True(t, e50.KundetypeConsistent)
	assert.Equal(t, []string{"tidsdifferentieret"}, e50.TariftypeCategories)
	assert.True(t, e50.TariftypeConsistent)

	bal := rows[1]
	assert.Equal(t, "45012", bal.Code)
	assert.Equal(t, "balancetarif", bal.ModalTariftype)
	assert.Equal(t, model.Uncategorized, bal.ModalKundetype)
}

func TestConsistencyInconsistentCode(t *testing.T) {
	classified := classify(t, []model.TariffRecord{
		{ChargeTypeCode: "DT_X", Note: "Nettarif C"},
		{ChargeTypeCode: "DT_X", Note: "Nettarif B lav"},
		{ChargeTypeCode: "DT_X", Note: "Nettarif C time"},
	})

	rows := Consistency(classified)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.False(t, row.KundetypeConsistent)
	assert.Equal(t, []string{"C", "Blav"}, row.KundetypeCategories,
		"distinct categories keep first-encounter order")
	assert.Equal(t, "C", row.ModalKundetype)
	assert.True(t, row.TariftypeConsistent)
}

func TestConsistencyModalTieKeepsFirstEncountered(t *testing.T) {
	classified := classify(t, []model.TariffRecord{
		{ChargeTypeCode: "DT_Y", Note: "Nettarif B lav"},
		{ChargeTypeCode: "DT_Y", Note: "Nettarif C"},
	})

	rows := Consistency(classified)
	require.Len(t, rows, 1)
	assert.Equal(t, "Blav", rows[0].ModalKundetype)
}

func TestConsistencyEqualCountsKeepEncounterOrder(t *testing.T) {
	classified := classify(t, []model.TariffRecord{
		{ChargeTypeCode: "B", Note: "Nettarif C"},
		{ChargeTypeCode: "A", Note: "Nettarif C"},
	})

	rows := Consistency(classified)
	require.Len(t, rows, 2)
	assert.Equal(t, "B", rows[0].Code)
	assert.Equal(t, "A", rows[1].Code)
}

func TestConsistencyEmptyInput(t *testing.T) {
	assert.Empty(t, Consistency(nil))
}
