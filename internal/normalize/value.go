package normalize

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"rkcp-score/internal/model"
)

// NotAvailable is the sentinel shown for any value that cannot be resolved.
const NotAvailable = "N/A"

const (
	crore = 10_000_000
	lakh  = 100_000
)

// Market-cap style fields arrive pre-expressed in crores and must not be
// divided again.
var marketCapPattern = regexp.MustCompile(`(?i)mar\s*cap`)

// Indian English grouping: 2-then-3, e.g. 1,00,000.
var printer = message.NewPrinter(language.MustParse("en-IN"))

// FormatValue renders an arbitrary raw record value for display. Nested
// objects are searched depth-first for a numeric leaf; objects without one
// fall back to a structural dump instead of failing.
func FormatValue(value interface{}, fieldName string) string {
	if value == nil {
		return NotAvailable
	}

	isMarketCap := marketCapPattern.MatchString(fieldName)

	switch v := value.(type) {
	case *model.Object:
		if n, ok := firstNumber(v); ok {
			return FormatAmount(n, isMarketCap)
		}
		dump, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(dump)
	case []interface{}:
		parts := make([]string, 0, len(v))
		for _, elem := range v {
			parts = append(parts, fmt.Sprint(elem))
		}
		return strings.Join(parts, ", ")
	case float64:
		return FormatAmount(v, isMarketCap)
	case int:
		return FormatAmount(float64(v), isMarketCap)
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// firstNumber walks entries in insertion order and returns the first numeric
// leaf found anywhere in the value tree.
func firstNumber(o *model.Object) (float64, bool) {
	for _, key := range o.Keys() {
		value, _ := o.Get(key)
		if n, ok := numberIn(value); ok {
			return n, true
		}
	}
	return 0, false
}

func numberIn(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case *model.Object:
		return firstNumber(v)
	case []interface{}:
		for _, elem := range v {
			if n, ok := numberIn(elem); ok {
				return n, true
			}
		}
	}
	return 0, false
}

// FormatAmount renders a rupee amount with Indian digit grouping and at most
// two fractional digits, scaled to crores or lakhs when large enough.
// alreadyScaled marks values that are pre-expressed in crores.
func FormatAmount(n float64, alreadyScaled bool) string {
	if math.IsNaN(n) {
		return NotAvailable
	}

	switch {
	case alreadyScaled:
		return printer.Sprintf("₹%v Cr", number.Decimal(n, number.MaxFractionDigits(2)))
	case n >= crore:
		return printer.Sprintf("₹%v Cr", number.Decimal(n/crore, number.MaxFractionDigits(2)))
	case n >= lakh:
		return printer.Sprintf("₹%v L", number.Decimal(n/lakh, number.MaxFractionDigits(2)))
	default:
		return printer.Sprintf("₹%v", number.Decimal(n, number.MaxFractionDigits(2)))
	}
}

// FormatPrice renders a share price with exactly two fractional digits.
func FormatPrice(p float64) string {
	if p <= 0 || math.IsNaN(p) {
		return NotAvailable
	}
	return printer.Sprintf("₹%v", number.Decimal(p,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
