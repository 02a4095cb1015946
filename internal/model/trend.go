package model

const (
	TrendBullish = "bullish"
	TrendBearish = "bearish"
	TrendNeutral = "neutral"
	TrendUnknown = "unknown"

	SignalStrongBuy        = "strong_buy"
	SignalBuy              = "buy"
	SignalWeakBuy          = "weak_buy"
	SignalHold             = "hold"
	SignalWeakSell         = "weak_sell"
	SignalSell             = "sell"
	SignalStrongSell       = "strong_sell"
	SignalInsufficientData = "insufficient_data"
	SignalError            = "error"
	SignalUnknown          = "unknown"
)

// TrendAnalysis is the optional technical-analysis payload joined onto a
// scored record by the backend. Absence of the whole attachment is a normal
// state and is distinct from an explicit "unknown" trend.
type TrendAnalysis struct {
	Trend            string   `json:"trend"`
	Signal           string   `json:"signal"`
	DMA50            float64  `json:"dma50"`
	DMA200           float64  `json:"dma200"`
	CurrentPrice     float64  `json:"currentPrice"`
	DMA50PercentDiff *float64 `json:"dma50PercentDiff,omitempty"`
	DMA50Above200    bool     `json:"dma50Above200"`
	Message          string   `json:"message,omitempty"`
}
