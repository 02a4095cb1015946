package normalize

import (
	"strconv"
	"strings"

	"rkcp-score/internal/model"
)

// Accepted key spellings per logical attribute, highest priority first. All
// duck-typed field access goes through these lists; call sites never probe
// keys directly.
var (
	nameKeys   = []string{"Name", "name", "NAME"}
	tickerKeys = []string{"Ticker", "ticker", "SYMBOL", "Symbol"}
	scoreKeys  = []string{"Total Mark out of 10", "Total Mark", "totalMark", "rkcpScore"}
)

// Name returns the display name, or the sentinel when no spelling resolves.
func Name(rec *model.StockRecord) string {
	if s, ok := resolveString(rec, nameKeys); ok {
		return s
	}
	return NotAvailable
}

// Ticker returns the raw ticker field as stored, unsanitized. The second
// return is false when no spelling resolves.
func Ticker(rec *model.StockRecord) (string, bool) {
	return resolveString(rec, tickerKeys)
}

// TickerDisplay is Ticker with the sentinel instead of a missing value.
func TickerDisplay(rec *model.StockRecord) string {
	if s, ok := Ticker(rec); ok {
		return s
	}
	return NotAvailable
}

// Score returns the RKCP score as a display string, or the sentinel. The
// backing field is numeric in recent exports and a string in older ones; a
// numeric zero still counts as resolved.
func Score(rec *model.StockRecord) string {
	for _, key := range scoreKeys {
		value, ok := rec.Get(key)
		if !ok || value == nil {
			continue
		}
		switch v := value.(type) {
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		case int:
			return strconv.Itoa(v)
		case string:
			if strings.TrimSpace(v) != "" {
				return v
			}
		}
	}
	return NotAvailable
}

// resolveString returns the first non-empty string value among the given key
// spellings.
func resolveString(rec *model.StockRecord, keys []string) (string, bool) {
	for _, key := range keys {
		value, ok := rec.Get(key)
		if !ok {
			continue
		}
		s, ok := value.(string)
		if !ok || strings.TrimSpace(s) == "" {
			continue
		}
		return s, true
	}
	return "", false
}
