// Package screener resolves stock records to screener.in cross-reference
// URLs. Ticker identifiers are inconsistently present in the catalogue, so
// resolution runs an ordered fallback chain that maximizes the chance of a
// direct deep link while guaranteeing a usable site-search link whenever any
// name exists at all.
package screener

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"rkcp-score/internal/model"
	"rkcp-score/internal/normalize"
)

const (
	profileURLFormat = "https://www.screener.in/company/%s/consolidated/"
	searchURLFormat  = "https://www.screener.in/search/?q=%s"

	// Name-derived tokens shorter than this are too ambiguous to deep link.
	minDerivedTokenLen = 3
)

var (
	corporateSuffixes = regexp.MustCompile(`(?i)\b(Ltd|Limited|Inc|Incorporated|Corp|Corporation|Private|Pvt)\b`)
	nonAlphanumeric   = regexp.MustCompile(`[^A-Z0-9]`)
)

// ProfileURL returns a direct company-profile link. Chain, first hit wins:
// static name→ticker table, sanitized raw ticker field, then a ticker-like
// token derived from the display name. Returns false when nothing usable
// remains.
func ProfileURL(rec *model.StockRecord) (string, bool) {
	name := normalize.Name(rec)

	if ticker, ok := tickerByName[name]; ok {
		return fmt.Sprintf(profileURLFormat, ticker), true
	}

	if raw, ok := normalize.Ticker(rec); ok {
		cleaned := sanitizeTicker(raw)
		if cleaned != "" {
			return fmt.Sprintf(profileURLFormat, cleaned), true
		}
	}

	if name != normalize.NotAvailable {
		token := deriveToken(name)
		if len(token) >= minDerivedTokenLen {
			return fmt.Sprintf(profileURLFormat, token), true
		}
	}

	return "", false
}

// SearchURL returns a site-search link built from the raw display name. It
// only fails when the record has no usable name at all.
func SearchURL(rec *model.StockRecord) (string, bool) {
	name := normalize.Name(rec)
	if name == normalize.NotAvailable {
		return "", false
	}
	return fmt.Sprintf(searchURLFormat, url.QueryEscape(name)), true
}

func sanitizeTicker(raw string) string {
	upper := strings.ToUpper(strings.TrimSpace(raw))
	return nonAlphanumeric.ReplaceAllString(upper, "")
}

// deriveToken builds a ticker-like token from a company name: corporate
// suffix words go, then whitespace and everything non-alphanumeric, then
// uppercase.
func deriveToken(name string) string {
	stripped := corporateSuffixes.ReplaceAllString(strings.TrimSpace(name), "")
	stripped = strings.Join(strings.Fields(stripped), "")
	return sanitizeTicker(stripped)
}
