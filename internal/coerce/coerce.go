package coerce

import (
	"math"
	"strconv"
	"strings"

	"github.com/zclconf/go-cty/cty"
)

// Coerce converts a raw string into a typed scalar value.
//
// The decision order is fixed: a quote-wrapped value is unwrapped and returned
// as a string with no further interpretation, then case-insensitive true/false
// become booleans, then base-10 integers, then floats. Any remaining input is
// returned as a string, so every input coerces and there is no error case.
func Coerce(raw string) cty.Value {
	if len(raw) >= 2 && strings.HasPrefix(raw, `"`) && strings.HasSuffix(raw, `"`) {
		return cty.StringVal(raw[1 : len(raw)-1])
	}

	switch strings.ToLower(raw) {
	case "true":
		return cty.True
	case "false":
		return cty.False
	}

	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return cty.NumberIntVal(i)
	}
	// ParseFloat also accepts "NaN" and the infinities. cty cannot represent
	// NaN, and YAML 1.2 has no +Inf literal, so both fall through as plain
	// strings.
	if f, err := strconv.ParseFloat(raw, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return cty.NumberFloatVal(f)
	}

	return cty.StringVal(raw)
}
