package model

import (
	"encoding/json"
)

// trendAnalysisKey is the record field holding the optional technical
// analysis attachment produced by the scoring backend.
const trendAnalysisKey = "trendAnalysis"

// StockRecord is an open, schema-flexible stock document as returned by the
// RKCP API. Field names and nesting vary between sources and versions, so
// the record keeps the raw fields in their original order and leaves all
// interpretation to pure derivation functions. Records are not mutated after
// decoding.
type StockRecord struct {
	fields *Object
	Trend  *TrendAnalysis
}

// Field is a single raw record entry.
type Field struct {
	Key   string
	Value interface{}
}

// NewStockRecord returns an empty record. Intended for construction in
// loaders and tests; a record should not be modified once handed out.
func NewStockRecord() *StockRecord {
	return &StockRecord{fields: NewObject()}
}

// Set stores a raw field value, preserving first-insert order.
func (r *StockRecord) Set(key string, value interface{}) *StockRecord {
	if r.fields == nil {
		r.fields = NewObject()
	}
	r.fields.Set(key, value)
	return r
}

// Get returns the raw value for key.
func (r *StockRecord) Get(key string) (interface{}, bool) {
	if r == nil {
		return nil, false
	}
	return r.fields.Get(key)
}

// Fields returns all raw entries in their original order. The trend
// attachment is not part of the generic field sequence.
func (r *StockRecord) Fields() []Field {
	if r == nil || r.fields == nil {
		return nil
	}
	out := make([]Field, 0, r.fields.Len())
	for _, key := range r.fields.Keys() {
		value, _ := r.fields.Get(key)
		out = append(out, Field{Key: key, Value: value})
	}
	return out
}

func (r *StockRecord) UnmarshalJSON(data []byte) error {
	obj := NewObject()
	if err := obj.UnmarshalJSON(data); err != nil {
		return err
	}

	if raw, ok := obj.Get(trendAnalysisKey); ok {
		if nested, ok := raw.(*Object); ok {
			buf, err := nested.MarshalJSON()
			if err != nil {
				return err
			}
			var trend TrendAnalysis
			if err := json.Unmarshal(buf, &trend); err != nil {
				return err
			}
			r.Trend = &trend
		}
		obj.Delete(trendAnalysisKey)
	}

	r.fields = obj
	return nil
}

func (r *StockRecord) MarshalJSON() ([]byte, error) {
	if r.Trend == nil {
		return r.fields.MarshalJSON()
	}
	out := NewObject()
	for _, key := range r.fields.Keys() {
		value, _ := r.fields.Get(key)
		out.Set(key, value)
	}
	out.Set(trendAnalysisKey, r.Trend)
	return out.MarshalJSON()
}

// Suggestion is a stock record annotated with precomputed display strings
// for the autocomplete dropdown. The annotations are view-layer derivatives
// and are never written back into the record set.
type Suggestion struct {
	Record        *StockRecord
	DisplayName   string
	DisplayTicker string
}

// MarshalJSON flattens the annotations into the record payload, matching the
// wire shape autocomplete clients expect.
func (s Suggestion) MarshalJSON() ([]byte, error) {
	out := NewObject()
	if s.Record != nil {
		for _, f := range s.Record.Fields() {
			out.Set(f.Key, f.Value)
		}
		if s.Record.Trend != nil {
			out.Set(trendAnalysisKey, s.Record.Trend)
		}
	}
	out.Set("displayName", s.DisplayName)
	out.Set("displayTicker", s.DisplayTicker)
	return out.MarshalJSON()
}
