package services

import (
	"encoding/json"
	"fmt"
)

// Candidate list fields (skills, experience, education, languages) arrive
// either as native arrays or as JSON-encoded strings, depending on how the
// extraction model answered. NormalizeList flattens both shapes into a plain
// slice. Malformed or absent input degrades to an empty slice; it never
// fails, so bad stored data cannot take the scoring pipeline down.
func NormalizeList(raw any) []any {
	switch v := raw.(type) {
	case nil:
		return []any{}
	case []any:
		return v
	case json.RawMessage:
		return decodeList(v)
	case []byte:
		return decodeList(v)
	case string:
		return decodeList([]byte(v))
	case []string:
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out
	case []map[string]any:
		out := make([]any, len(v))
		for i, m := range v {
			out[i] = m
		}
		return out
	default:
		return []any{}
	}
}

// NormalizeStrings narrows a normalized list to its string items. Records are
// flattened to their serialized text so substring checks keep working.
func NormalizeStrings(raw any) []string {
	items := NormalizeList(raw)
	out := make([]string, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case string:
			out = append(out, v)
		default:
			out = append(out, fmt.Sprintf("%v", v))
		}
	}
	return out
}

// NormalizeRecords narrows a normalized list to its record items. Non-record
// entries are dropped.
func NormalizeRecords(raw any) []map[string]any {
	items := NormalizeList(raw)
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if record, ok := item.(map[string]any); ok {
			out = append(out, record)
		}
	}
	return out
}

func decodeList(data []byte) []any {
	if len(data) == 0 {
		return []any{}
	}

	var items []any
	if err := json.Unmarshal(data, &items); err != nil {
		// A doubly-encoded field stores the list as a JSON string; unwrap
		// one level and retry.
		var nested string
		if err := json.Unmarshal(data, &nested); err == nil {
			return decodeList([]byte(nested))
		}
		return []any{}
	}
	if items == nil {
		return []any{}
	}

	return items
}
