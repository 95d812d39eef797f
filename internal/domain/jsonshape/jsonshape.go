// Package jsonshape holds the small helpers the persisted document needs on top of encoding/json:
// flattening several structs into one object and accepting legacy key aliases on read.
package jsonshape

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Aliases maps a legacy key to its current name
type Aliases map[string]string

// Rename rewrites legacy keys of a JSON object to their current names. A legacy key is
// dropped when the current key is also present. Non-object input is returned unchanged.
func Rename(data []byte, aliases Aliases) ([]byte, error) {
	if len(aliases) == 0 || !isObject(data) {
		return data, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}

	changed := false
	for legacy, current := range aliases {
		value, ok := fields[legacy]
		if !ok {
			continue
		}
		delete(fields, legacy)
		changed = true
		if _, exists := fields[current]; !exists {
			fields[current] = value
		}
	}
	if !changed {
		return data, nil
	}
	return json.Marshal(fields)
}

// Merge marshals each part to a JSON object and merges their keys in order.
// Later parts win on duplicate keys.
func Merge(parts ...any) ([]byte, error) {
	merged := make(map[string]json.RawMessage)
	for i, part := range parts {
		data, err := json.Marshal(part)
		if err != nil {
			return nil, err
		}
		if !isObject(data) {
			return nil, fmt.Errorf("part %d is not a JSON object", i)
		}
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(data, &fields); err != nil {
			return nil, err
		}
		for k, v := range fields {
			merged[k] = v
		}
	}
	return json.Marshal(merged)
}

// Field extracts one raw field from an object; ok is false when absent
func Field(data []byte, key string) (json.RawMessage, bool, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, false, err
	}
	value, ok := fields[key]
	return value, ok, nil
}

// IsString reports whether the raw value is a JSON string
func IsString(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && trimmed[0] == '"'
}

func isObject(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && trimmed[0] == '{'
}
