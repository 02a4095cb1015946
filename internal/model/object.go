package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Object is a JSON object that preserves key insertion order. Values decode
// to float64, string, bool, nil, []interface{} or *Object.
type Object struct {
	keys   []string
	values map[string]interface{}
}

func NewObject() *Object {
	return &Object{values: make(map[string]interface{})}
}

// Set stores value under key, appending key to the order on first insert.
func (o *Object) Set(key string, value interface{}) *Object {
	if o.values == nil {
		o.values = make(map[string]interface{})
	}
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
	return o
}

func (o *Object) Get(key string) (interface{}, bool) {
	if o == nil || o.values == nil {
		return nil, false
	}
	v, ok := o.values[key]
	return v, ok
}

func (o *Object) Delete(key string) {
	if o == nil || o.values == nil {
		return
	}
	if _, ok := o.values[key]; !ok {
		return
	}
	delete(o.values, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

func (o *Object) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected JSON object, got %v", tok)
	}
	return o.decodeEntries(dec)
}

func (o *Object) decodeEntries(dec *json.Decoder) error {
	o.keys = nil
	o.values = make(map[string]interface{})
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", keyTok)
		}
		value, err := decodeValue(dec)
		if err != nil {
			return err
		}
		o.Set(key, value)
	}
	// Consume the closing brace.
	_, err := dec.Token()
	return err
}

func decodeValue(dec *json.Decoder) (interface{}, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			nested := NewObject()
			if err := nested.decodeEntries(dec); err != nil {
				return nil, err
			}
			return nested, nil
		case '[':
			var arr []interface{}
			for dec.More() {
				elem, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				arr = append(arr, elem)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return arr, nil
		default:
			return nil, fmt.Errorf("unexpected delimiter %v", t)
		}
	default:
		// float64, string, bool or nil.
		return tok, nil
	}
}

func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyJSON, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')
		valJSON, err := json.Marshal(o.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(valJSON)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
