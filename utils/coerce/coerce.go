// Package coerce normalizes loosely-typed numeric input from the admin data
// entry forms. Malformed values fall back to fixed defaults instead of being
// rejected; data entry is never blocked on a bad number.
package coerce

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Fallbacks applied when a numeric field cannot be parsed.
const (
	DefaultRanking = 99
	DefaultFeeMin  = 10000
	DefaultFeeMax  = 50000
)

// Int returns v as an int, or def when v is missing or unparseable. JSON
// decoding hands numbers over as float64 and form values as strings, so both
// are handled.
func Int(v interface{}, def int) int {
	switch n := v.(type) {
	case nil:
		return def
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return def
		}
		return int(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return def
		}
		return Int(f, def)
	case string:
		trimmed := strings.TrimSpace(n)
		if trimmed == "" {
			return def
		}
		if i, err := strconv.Atoi(trimmed); err == nil {
			return i
		}
		if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return Int(f, def)
		}
		return def
	default:
		return def
	}
}
