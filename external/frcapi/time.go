package frcapi

import (
	"strings"
	"time"
)

// providerTimeLayout is the zone-less timestamp the API emits. Fractional
// seconds are accepted on parse.
const providerTimeLayout = "2006-01-02T15:04:05"

func parseProviderTime(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range []string{providerTimeLayout, time.RFC3339Nano} {
		if parsed, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			utc := parsed.UTC()
			return &utc
		}
	}
	return nil
}
