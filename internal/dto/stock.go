package dto

import (
	"rkcp-score/internal/model"
	"rkcp-score/internal/trend"
)

// Envelopes returned by the RKCP scoring API. Anything without success
// truthiness or the expected data shape is treated as a recoverable failure,
// never a crash.

type StockEnvelope struct {
	Success bool               `json:"success"`
	Data    *model.StockRecord `json:"data"`
	Error   string             `json:"error"`
}

type StockListEnvelope struct {
	Success bool                 `json:"success"`
	Data    []*model.StockRecord `json:"data"`
	Error   string               `json:"error"`
}

type HealthEnvelope struct {
	Status string `json:"status"`
}

// Inbound request shapes.

type ListStocksRequest struct {
	Limit int `query:"limit" validate:"omitempty,min=1,max=500"`
	Skip  int `query:"skip" validate:"omitempty,min=0"`
}

type SearchStocksRequest struct {
	Name string `query:"name" validate:"required"`
}

type SuggestRequest struct {
	Query string `query:"q"`
	Limit int    `query:"limit" validate:"omitempty,min=1,max=50"`
}

// Outbound view shapes, all derived on demand from the raw records.

type FieldView struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type StockDetail struct {
	Name              string             `json:"name"`
	Ticker            string             `json:"ticker"`
	Score             string             `json:"score"`
	ScreenerURL       string             `json:"screenerUrl,omitempty"`
	ScreenerSearchURL string             `json:"screenerSearchUrl,omitempty"`
	Fields            []FieldView        `json:"fields"`
	Trend             trend.Presentation `json:"trend"`
}

type StockListItem struct {
	Name              string `json:"name"`
	Ticker            string `json:"ticker"`
	ScreenerURL       string `json:"screenerUrl,omitempty"`
	ScreenerSearchURL string `json:"screenerSearchUrl,omitempty"`
}

type StockPage struct {
	Items    []StockListItem `json:"items"`
	HasMore  bool            `json:"hasMore"`
	NextSkip int             `json:"nextSkip"`
}

type RankedStock struct {
	Rank  int                `json:"rank"`
	Name  string             `json:"name"`
	Score string             `json:"score"`
	Trend trend.Presentation `json:"trend"`
}
