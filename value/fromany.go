package value

import (
	"encoding/json"
	"sort"
)

// FromAny adapts an already-decoded Go value (as produced by
// encoding/json.Unmarshal into "any", or built by hand in tests) into a
// Node. Because Go's map[string]any carries no member order, object keys are
// rendered in sorted order here -- callers that need exact source-order
// preservation must go through Decode/DecodeBytes instead, which build the
// tree directly from a token stream.
func FromAny(v any) Node {
	switch t := v.(type) {
	case nil:
		return Null()
	case bool:
		return Bool(t)
	case string:
		return String(t)
	case json.Number:
		return FromNumber(NewNumber(string(t)))
	case float64:
		return FromNumber(NewNumber(formatFloat(t)))
	case int:
		return FromNumber(NewNumber(formatFloat(float64(t))))
	case []any:
		items := make([]Node, len(t))
		for i, e := range t {
			items[i] = FromAny(e)
		}
		return Array(items)
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		vals := make([]Node, len(keys))
		for i, k := range keys {
			vals[i] = FromAny(t[k])
		}
		return Object(keys, vals)
	case Node:
		return t
	default:
		return Null()
	}
}

func formatFloat(f float64) string {
	b, _ := json.Marshal(f)
	return string(b)
}
