// Package jsonpath provides safe traversal over generically decoded JSON
// values (map[string]any trees, as produced by encoding/json).
//
// The access rules are deliberately asymmetric: a missing key or nil value
// never fails — it yields the zero value of the requested shape — while a
// value that is present but has the wrong shape (a list where an object was
// expected, and so on) returns an error. Callers that walk upstream API
// responses get defaulting for free and only have to handle genuine shape
// mismatches.
package jsonpath

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Get walks v through the given object keys and returns the value found at
// the end of the path. A nil value or missing key anywhere along the path
// yields (nil, nil). A non-object intermediate yields an error.
func Get(v any, keys ...string) (any, error) {
	for _, key := range keys {
		if v == nil {
			return nil, nil
		}
		m, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("jsonpath: unexpected %T at %q", v, key)
		}
		v = m[key]
	}
	return v, nil
}

// Map walks the path like Get and returns the object found there. Missing
// or nil terminates with an empty (non-nil) map; a non-object value is an
// error.
func Map(v any, keys ...string) (map[string]any, error) {
	v, err := Get(v, keys...)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return map[string]any{}, nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("jsonpath: expected object, got %T", v)
	}
	return m, nil
}

// List walks the path like Get and returns the array found there. Missing
// or nil terminates with an empty slice; a non-array value is an error.
func List(v any, keys ...string) ([]any, error) {
	v, err := Get(v, keys...)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return []any{}, nil
	}
	l, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("jsonpath: expected array, got %T", v)
	}
	return l, nil
}

// Str renders a leaf value as a string, returning def when the value is nil.
// Numbers and booleans are stringified; json.Number passes through verbatim
// so arbitrary-precision decimals survive untouched.
func Str(v any, def string) string {
	switch t := v.(type) {
	case nil:
		return def
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	default:
		return def
	}
}

// Int coerces a leaf value to an int, returning def when the value is nil
// or not numeric. Numeric strings are parsed.
func Int(v any, def int) int {
	switch t := v.(type) {
	case nil:
		return def
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return int(n)
		}
		if f, err := t.Float64(); err == nil {
			return int(f)
		}
		return def
	case float64:
		return int(t)
	case int:
		return t
	case int64:
		return int(t)
	case string:
		if n, err := strconv.Atoi(t); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(t, 64); err == nil {
			return int(f)
		}
		return def
	default:
		return def
	}
}

// Float coerces a leaf value to a float64, returning def when the value is
// nil or not numeric. Numeric strings are parsed.
func Float(v any, def float64) float64 {
	switch t := v.(type) {
	case nil:
		return def
	case json.Number:
		if f, err := t.Float64(); err == nil {
			return f
		}
		return def
	case float64:
		return t
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case string:
		if f, err := strconv.ParseFloat(t, 64); err == nil {
			return f
		}
		return def
	default:
		return def
	}
}
