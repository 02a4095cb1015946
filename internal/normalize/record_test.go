package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rkcp-score/internal/model"
)

func TestName_KeyPriority(t *testing.T) {
	tests := []struct {
		name string
		rec  *model.StockRecord
		want string
	}{
		{
			name: "canonical spelling wins",
			rec:  model.NewStockRecord().Set("name", "lower").Set("Name", "Tata Motors"),
			want: "Tata Motors",
		},
		{
			name: "falls back to lowercase spelling",
			rec:  model.NewStockRecord().Set("name", "Infosys"),
			want: "Infosys",
		},
		{
			name: "uppercase spelling last",
			rec:  model.NewStockRecord().Set("NAME", "ITC"),
			want: "ITC",
		},
		{
			name: "blank value does not resolve",
			rec:  model.NewStockRecord().Set("Name", "   ").Set("NAME", "HDFC Bank"),
			want: "HDFC Bank",
		},
		{
			name: "missing everywhere yields sentinel",
			rec:  model.NewStockRecord().Set("Sector", "Auto"),
			want: "N/A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Name(tt.rec))
		})
	}
}

func TestTicker(t *testing.T) {
	rec := model.NewStockRecord().Set("SYMBOL", "tataMotors")
	got, ok := Ticker(rec)
	assert.True(t, ok)
	assert.Equal(t, "tataMotors", got, "ticker resolution must not sanitize")

	_, ok = Ticker(model.NewStockRecord())
	assert.False(t, ok)

	assert.Equal(t, "N/A", TickerDisplay(model.NewStockRecord()))
}

func TestScore(t *testing.T) {
	tests := []struct {
		name string
		rec  *model.StockRecord
		want string
	}{
		{
			name: "numeric score trims trailing zeros",
			rec:  model.NewStockRecord().Set("Total Mark out of 10", 8.5),
			want: "8.5",
		},
		{
			name: "numeric zero still resolves",
			rec:  model.NewStockRecord().Set("Total Mark out of 10", 0.0),
			want: "0",
		},
		{
			name: "legacy string score passes through",
			rec:  model.NewStockRecord().Set("rkcpScore", "7/10"),
			want: "7/10",
		},
		{
			name: "blank string falls through to sentinel",
			rec:  model.NewStockRecord().Set("totalMark", "  "),
			want: "N/A",
		},
		{
			name: "priority order across spellings",
			rec:  model.NewStockRecord().Set("rkcpScore", "3").Set("Total Mark", 9.0),
			want: "9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.rec))
		})
	}
}
