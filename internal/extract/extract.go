// Package extract pulls typed values out of loosely structured feed messages.
// Lookups and coercions are independently fault tolerant: a missing path
// yields an absent result and a failed coercion yields the zero value, so
// handlers never abort on a malformed field.
package extract

import (
	"strconv"
	"strings"
	"time"

	"github.com/courtside-live/livestats/internal/timeutil"
)

// Value traverses a dot-separated path through nested string-keyed maps.
// The second return is false when any segment of the path is absent.
func Value(msg map[string]any, path string) (any, bool) {
	var current any = msg
	for _, key := range strings.Split(path, ".") {
		node, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = node[key]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// String resolves path and returns its string form, or "" when absent.
func String(msg map[string]any, path string) string {
	value, ok := Value(msg, path)
	if !ok {
		return ""
	}
	return AsString(value)
}

// Int resolves path and coerces to int, or 0 when absent or malformed.
func Int(msg map[string]any, path string) int {
	value, ok := Value(msg, path)
	if !ok {
		return 0
	}
	return AsInt(value)
}

// Float resolves path and coerces to float64, or 0 when absent or malformed.
func Float(msg map[string]any, path string) float64 {
	value, ok := Value(msg, path)
	if !ok {
		return 0
	}
	return AsFloat(value)
}

// Bool resolves path and coerces to bool, or false when absent or malformed.
func Bool(msg map[string]any, path string) bool {
	value, ok := Value(msg, path)
	if !ok {
		return false
	}
	return AsBool(value)
}

// Time resolves path and parses a feed timestamp, or the zero time.
func Time(msg map[string]any, path string) time.Time {
	value, ok := Value(msg, path)
	if !ok {
		return time.Time{}
	}
	ts, err := timeutil.ParseTimestamp(AsString(value))
	if err != nil {
		return time.Time{}
	}
	return ts
}

// List resolves path to a slice of values, or nil when absent or not a list.
func List(msg map[string]any, path string) []any {
	value, ok := Value(msg, path)
	if !ok {
		return nil
	}
	list, _ := value.([]any)
	return list
}

// Strings resolves path to a list and coerces each element to a string.
func Strings(msg map[string]any, path string) []string {
	list := List(msg, path)
	if list == nil {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		out = append(out, AsString(item))
	}
	return out
}

// AsString coerces a decoded JSON value to a string. Numbers are formatted
// without a trailing ".0" so shirt numbers survive the round trip.
func AsString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	default:
		return ""
	}
}

// AsInt coerces a decoded JSON value to an int, returning 0 on failure.
func AsInt(value any) int {
	switch v := value.(type) {
	case float64:
		return int(v)
	case int:
		return v
	case bool:
		if v {
			return 1
		}
		return 0
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}

// AsFloat coerces a decoded JSON value to a float64, returning 0 on failure.
func AsFloat(value any) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}

// AsBool coerces a decoded JSON value to a bool. The feed uses 0/1 flags in
// some payloads and true/false in others.
func AsBool(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case float64:
		return v != 0
	case int:
		return v != 0
	case string:
		trimmed := strings.TrimSpace(v)
		return trimmed == "1" || strings.EqualFold(trimmed, "true")
	default:
		return false
	}
}
