package event

import (
	"strings"
	"time"
)

// Event is one competition in a season.
type Event struct {
	Code         string     `json:"code"`
	Name         string     `json:"name"`
	Type         string     `json:"type"`
	DistrictCode string     `json:"districtCode,omitempty"`
	City         string     `json:"city,omitempty"`
	Country      string     `json:"country,omitempty"`
	Start        *time.Time `json:"dateStart,omitempty"`
	End          *time.Time `json:"dateEnd,omitempty"`
	Official     bool       `json:"official"`
}

// District is a regional grouping of events.
type District struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// TypeFilter is a case-insensitive allow-list of event type labels.
type TypeFilter struct {
	allowed map[string]struct{}
}

func NewTypeFilter(labels []string) TypeFilter {
	allowed := make(map[string]struct{}, len(labels))
	for _, label := range labels {
		label = normalizeType(label)
		if label != "" {
			allowed[label] = struct{}{}
		}
	}
	return TypeFilter{allowed: allowed}
}

func (f TypeFilter) Allows(label string) bool {
	_, ok := f.allowed[normalizeType(label)]
	return ok
}

// Filter keeps the events whose type is allowed.
func (f TypeFilter) Filter(events []Event) []Event {
	out := make([]Event, 0, len(events))
	for _, e := range events {
		if f.Allows(e.Type) {
			out = append(out, e)
		}
	}
	return out
}

func normalizeType(label string) string {
	label = strings.ToLower(strings.TrimSpace(label))
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(label)
}
