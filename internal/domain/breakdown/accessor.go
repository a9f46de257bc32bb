package breakdown

import (
	"math"
	"strconv"
	"strings"
)

// Raw is a loosely typed provider object.
type Raw map[string]any

// String returns raw[key] when it is a string.
func String(raw Raw, key string) (string, bool) {
	value, ok := raw[key].(string)
	return value, ok
}

// Int returns raw[key] as an int, or 0 when missing or not numeric.
func Int(raw Raw, key string) int {
	switch v := raw[key].(type) {
	case float64:
		return int(v)
	case float32:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	case int32:
		return int(v)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// IntAny returns the first present key among aliases.
func IntAny(raw Raw, keys ...string) int {
	for _, key := range keys {
		if _, ok := raw[key]; ok {
			return Int(raw, key)
		}
	}
	return 0
}

// Bool returns raw[key] when it is a bool, false otherwise.
func Bool(raw Raw, key string) bool {
	value, _ := raw[key].(bool)
	return value
}

func Float(raw Raw, key string) float64 {
	switch v := raw[key].(type) {
	case float64:
		if math.IsNaN(v) {
			return 0
		}
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return 0
	}
}

// Map returns raw[key] when it is a nested object.
func Map(raw Raw, key string) Raw {
	switch v := raw[key].(type) {
	case map[string]any:
		return v
	case Raw:
		return v
	default:
		return nil
	}
}
