package filter

import (
	"strings"

	"github.com/campcal/campcal/pkg/event"
)

// Spec is the set of user-selected criteria narrowing the visible event list.
// Empty collections impose no restriction; all predicates are ANDed.
type Spec struct {
	Search     string
	WideSearch bool // also match event type and location, as the list view does
	EventTypes []string
	PriceRange *PriceRange
	AgeGroups  []string
}

// PriceRange filters by the overlap rule: an event matches when its price
// interval [MinPrice, MaxPrice] shares any point with [Min, Max].
type PriceRange struct {
	Min float64
	Max float64
}

// Age group labels offered by the filter UI, each a structured range matched
// against the event's age range by interval overlap.
const (
	AgeGroupKids   = "Kids (8-11)"
	AgeGroupYouth  = "Youth (12-17)"
	AgeGroupAdults = "Adults (18+)"
	AgeGroupAll    = "All Ages"
)

var ageGroupRanges = map[string]struct{ min, max int }{
	AgeGroupKids:   {8, 11},
	AgeGroupYouth:  {12, 17},
	AgeGroupAdults: {18, -1}, // open-ended
}

// Apply returns the events matching the spec. It is pure: the input is never
// mutated, the relative order of matching events is retained, and identical
// inputs produce identical output.
func Apply(events []event.Event, spec Spec) []event.Event {
	result := make([]event.Event, 0, len(events))
	for _, e := range events {
		if Matches(e, spec) {
			result = append(result, e)
		}
	}
	return result
}

// Matches reports whether a single event satisfies every predicate of the spec.
func Matches(e event.Event, spec Spec) bool {
	return matchesSearch(e, spec) &&
		matchesEventType(e, spec.EventTypes) &&
		matchesPrice(e, spec.PriceRange) &&
		matchesAgeGroups(e, spec.AgeGroups)
}

func matchesSearch(e event.Event, spec Spec) bool {
	if spec.Search == "" {
		return true
	}
	needle := strings.ToLower(spec.Search)
	if strings.Contains(strings.ToLower(e.Title), needle) {
		return true
	}
	if spec.WideSearch {
		return strings.Contains(strings.ToLower(e.EventType), needle) ||
			strings.Contains(strings.ToLower(e.Location), needle)
	}
	return false
}

func matchesEventType(e event.Event, eventTypes []string) bool {
	if len(eventTypes) == 0 {
		return true
	}
	for _, t := range eventTypes {
		if e.EventType == t {
			return true
		}
	}
	return false
}

func matchesPrice(e event.Event, priceRange *PriceRange) bool {
	if priceRange == nil {
		return true
	}
	return e.MinPrice() <= priceRange.Max && e.MaxPrice() >= priceRange.Min
}

func matchesAgeGroups(e event.Event, ageGroups []string) bool {
	if len(ageGroups) == 0 {
		return true
	}
	for _, group := range ageGroups {
		if group == AgeGroupAll {
			// Events open to kids through adults.
			if e.AgeMin <= 11 && (e.AgeMax == nil || *e.AgeMax >= 18) {
				return true
			}
			continue
		}
		r, ok := ageGroupRanges[group]
		if !ok {
			continue
		}
		if e.AgeMin > r.max && r.max >= 0 {
			continue
		}
		if e.AgeMax != nil && *e.AgeMax < r.min {
			continue
		}
		return true
	}
	return false
}

// EventTypeCounts maps each event type to the number of events of that type.
// It is computed over the unfiltered collection so filter UI annotations stay
// stable while filters are applied.
func EventTypeCounts(events []event.Event) map[string]int {
	counts := make(map[string]int, len(events))
	for _, e := range events {
		counts[e.EventType]++
	}
	return counts
}

// BucketByDay assigns each event to every calendar day it occupies, start and
// end dates inclusive, keyed by the wire date format.
func BucketByDay(events []event.Event) map[string][]event.Event {
	buckets := make(map[string][]event.Event)
	for _, e := range events {
		for d := e.StartDate; !d.After(e.EndDate); d = d.AddDate(0, 0, 1) {
			key := d.Format(event.DateFormat)
			buckets[key] = append(buckets[key], e)
		}
	}
	return buckets
}

// SplitVisible caps the events shown in a day cell, returning the visible
// prefix and the count for the "+N more" overflow indicator.
func SplitVisible(events []event.Event, max int) ([]event.Event, int) {
	if len(events) <= max {
		return events, 0
	}
	return events[:max], len(events) - max
}
