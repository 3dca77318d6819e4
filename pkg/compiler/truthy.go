package compiler

import "strings"

// truthyTokens are the textual forms the document format accepts as true.
// Any other text is false, never the default: "0", "false", and "nope" all
// coerce to false, while only absent values fall back.
var truthyTokens = map[string]bool{
	"true": true,
	"t":    true,
	"1":    true,
	"y":    true,
	"yes":  true,
	"on":   true,
}

// booleanValue coerces a loosely-typed scalar to a bool. Nil yields def.
// Text has its own strict truthy set; non-text uses native truthiness
// (zero is false). The asymmetry is load-bearing: "0" must be false through
// the numeric-looking-text path, not the same path as "false".
func booleanValue(v any, def bool) bool {
	switch t := v.(type) {
	case nil:
		return def
	case bool:
		return t
	case string:
		return truthyTokens[strings.ToLower(strings.TrimSpace(t))]
	case int:
		return t != 0
	case int64:
		return t != 0
	case float64:
		return t != 0
	default:
		return true
	}
}
