package normalize

import (
	"regexp"
	"strings"

	"rkcp-score/internal/model"
)

// Storage-internal and separately-rendered fields hidden from the generic
// detail grid. The aggregate score gets its own widget; per-criterion
// sub-scores (Mark 1..Mark 10) are covered by markPattern.
var excludedFields = map[string]struct{}{
	"_id":                  {},
	"__v":                  {},
	"S":                    {},
	"Total Mark out of 10": {},
}

var markPattern = regexp.MustCompile(`(?i)^Marks?\s*\d+$`)

// VisibleFields filters a record down to the end-user-visible entries,
// preserving the record's original key order. Values pass through raw;
// formatting is FormatValue's job.
func VisibleFields(rec *model.StockRecord) []model.Field {
	var out []model.Field
	for _, f := range rec.Fields() {
		if strings.HasPrefix(f.Key, "_") {
			continue
		}
		if _, drop := excludedFields[f.Key]; drop {
			continue
		}
		if markPattern.MatchString(f.Key) {
			continue
		}
		out = append(out, f)
	}
	return out
}
