package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rkcp-score/internal/model"
)

func TestVisibleFields(t *testing.T) {
	rec := model.NewStockRecord().
		Set("Mark 3", 1.0).
		Set("Total Mark out of 10", 8.5).
		Set("_id", "abc").
		Set("Sector", "Auto")

	fields := VisibleFields(rec)
	assert.Len(t, fields, 1)
	assert.Equal(t, "Sector", fields[0].Key)
	assert.Equal(t, "Auto", fields[0].Value)
}

func TestVisibleFields_PreservesOrder(t *testing.T) {
	rec := model.NewStockRecord().
		Set("Name", "ITC").
		Set("__v", 0.0).
		Set("Mar Cap Rs", 500000.0).
		Set("S", 1.0).
		Set("CMP Rs", 420.5)

	keys := make([]string, 0)
	for _, f := range VisibleFields(rec) {
		keys = append(keys, f.Key)
	}
	assert.Equal(t, []string{"Name", "Mar Cap Rs", "CMP Rs"}, keys)
}

func TestVisibleFields_MarkPatternIsAnchored(t *testing.T) {
	rec := model.NewStockRecord().
		Set("Marks 10", 1.0).
		Set("mark 2", 1.0).
		Set("Remarks 4", "keep me").
		Set("Benchmark 1", "keep me too")

	keys := make([]string, 0)
	for _, f := range VisibleFields(rec) {
		keys = append(keys, f.Key)
	}
	assert.Equal(t, []string{"Remarks 4", "Benchmark 1"}, keys)
}
