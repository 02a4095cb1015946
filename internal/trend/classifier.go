// Package trend maps the externally computed trend/signal payload into
// display attributes. Pure functions, no state; the values themselves are
// opaque to this service.
package trend

import (
	"strconv"
	"strings"

	"rkcp-score/internal/model"
	"rkcp-score/internal/normalize"
)

const (
	ColorBullish = "#10b981" // green
	ColorBearish = "#ef4444" // red
	ColorNeutral = "#6b7280" // gray
	ColorDefault = "#9ca3af" // light gray

	IconUp   = "up"
	IconDown = "down"
	IconFlat = "flat"

	placeholderMessage = "Trend analysis not available"
)

var signalLabels = map[string]string{
	model.SignalStrongBuy:        "Strong Buy",
	model.SignalBuy:              "Buy",
	model.SignalWeakBuy:          "Weak Buy",
	model.SignalHold:             "Hold",
	model.SignalWeakSell:         "Weak Sell",
	model.SignalSell:             "Sell",
	model.SignalStrongSell:       "Strong Sell",
	model.SignalInsufficientData: "No Data",
	model.SignalError:            "Error",
	model.SignalUnknown:          "Unknown",
}

// Color returns the display color for a trend value. Anything outside the
// known enumeration gets the light-gray default.
func Color(trendValue string) string {
	switch trendValue {
	case model.TrendBullish:
		return ColorBullish
	case model.TrendBearish:
		return ColorBearish
	case model.TrendNeutral:
		return ColorNeutral
	default:
		return ColorDefault
	}
}

// Icon returns the direction icon for a trend value.
func Icon(trendValue string) string {
	switch trendValue {
	case model.TrendBullish:
		return IconUp
	case model.TrendBearish:
		return IconDown
	default:
		return IconFlat
	}
}

// SignalLabel translates a signal value to its human label. Values outside
// the fixed enumeration pass through verbatim so new backend signals still
// render.
func SignalLabel(signal string) string {
	if label, ok := signalLabels[signal]; ok {
		return label
	}
	return signal
}

// TrendLabel capitalizes the raw trend value for display.
func TrendLabel(trendValue string) string {
	if trendValue == "" {
		return ""
	}
	return strings.ToUpper(trendValue[:1]) + trendValue[1:]
}

// Presentation is the fully derived display form of a trend attachment.
type Presentation struct {
	Available        bool   `json:"available"`
	Message          string `json:"message,omitempty"`
	Trend            string `json:"trend,omitempty"`
	TrendLabel       string `json:"trendLabel,omitempty"`
	Color            string `json:"color,omitempty"`
	Icon             string `json:"icon,omitempty"`
	Signal           string `json:"signal,omitempty"`
	SignalLabel      string `json:"signalLabel,omitempty"`
	DMA50            string `json:"dma50,omitempty"`
	DMA200           string `json:"dma200,omitempty"`
	CurrentPrice     string `json:"currentPrice,omitempty"`
	DMA50PercentDiff string `json:"dma50PercentDiff,omitempty"`
	DMA50Above200    bool   `json:"dma50Above200,omitempty"`
}

// Present classifies a trend attachment for rendering. An absent attachment
// and an attachment whose trend is exactly "unknown" both yield the neutral
// placeholder; that boundary is deliberate and mirrors how the record set is
// produced upstream.
func Present(ta *model.TrendAnalysis) Presentation {
	if ta == nil || ta.Trend == "" || ta.Trend == model.TrendUnknown {
		msg := placeholderMessage
		if ta != nil && ta.Message != "" {
			msg = ta.Message
		}
		return Presentation{Available: false, Message: msg}
	}

	p := Presentation{
		Available:     true,
		Trend:         ta.Trend,
		TrendLabel:    TrendLabel(ta.Trend),
		Color:         Color(ta.Trend),
		Icon:          Icon(ta.Trend),
		Signal:        ta.Signal,
		SignalLabel:   SignalLabel(ta.Signal),
		DMA50:         normalize.FormatPrice(ta.DMA50),
		DMA200:        normalize.FormatPrice(ta.DMA200),
		CurrentPrice:  normalize.FormatPrice(ta.CurrentPrice),
		DMA50Above200: ta.DMA50Above200,
	}

	if ta.DMA50PercentDiff != nil {
		sign := ""
		if ta.DMA50Above200 {
			sign = "+"
		}
		p.DMA50PercentDiff = sign + strconv.FormatFloat(*ta.DMA50PercentDiff, 'f', -1, 64) + "%"
	}

	return p
}
