package conversion

import (
	"fmt"
	"strconv"
	"strings"
)

// Float reads a number from any numeric type or a numeric string.
func Float(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// Number returns f as an int when it has no fractional part.
func Number(f float64) any {
	if f == float64(int64(f)) {
		return int(f)
	}

	return f
}

// FormatFloat writes f without trailing zeros, e.g. 2000 or 0.5.
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// String renders a scalar the way it would appear in a label or env value.
func String(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case bool:
		return strconv.FormatBool(s)
	case nil:
		return ""
	}

	if f, ok := Float(v); ok {
		return FormatFloat(f)
	}

	return fmt.Sprint(v)
}

// Seq returns v as a sequence.
func Seq(v any) ([]any, bool) {
	s, ok := v.([]any)
	return s, ok
}

// Map returns v as a map.
func Map(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

// Truthy reports whether v is a present, non-zero value.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	}

	if f, ok := Float(v); ok {
		return f != 0
	}

	return true
}

// Bool reads a bool or one of the strings true/false, yes/no, on/off.
func Bool(v any) (bool, bool) {
	switch b := v.(type) {
	case bool:
		return b, true
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "true", "yes", "on":
			return true, true
		case "false", "no", "off":
			return false, true
		}
	}

	return false, false
}
