package event

import (
	"strconv"
	"strings"
	"time"
)

// DefaultLocation is used when a seeded event does not specify one.
const DefaultLocation = "Hume Lake, CA"

// DateFormat is the wire format for calendar dates. Events span whole days;
// StartDate and EndDate are inclusive.
const DateFormat = "2006-01-02"

type Event struct {
	Id             string
	Title          string
	StartDate      time.Time
	EndDate        time.Time
	EventType      string
	Description    string
	AgeGroup       string // display label, e.g. "8+", "18+", "16-75"
	AgeMin         int
	AgeMax         *int // nil = open-ended
	Gender         string
	Location       string
	PricingOptions []PricingOption
}

type PricingOption struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
}

// MinPrice returns the lowest pricing option price. PricingOptions is never
// empty for a stored event.
func (e Event) MinPrice() float64 {
	min := e.PricingOptions[0].Price
	for _, p := range e.PricingOptions[1:] {
		if p.Price < min {
			min = p.Price
		}
	}
	return min
}

// MaxPrice returns the highest pricing option price.
func (e Event) MaxPrice() float64 {
	max := e.PricingOptions[0].Price
	for _, p := range e.PricingOptions[1:] {
		if p.Price > max {
			max = p.Price
		}
	}
	return max
}

// ParseAgeGroup turns an age label ("8+", "18+", "16-75") into a structured
// range. An open-ended label yields a nil max.
func ParseAgeGroup(label string) (int, *int) {
	label = strings.TrimSpace(label)
	if suffix, ok := strings.CutSuffix(label, "+"); ok {
		min, _ := strconv.Atoi(suffix)
		return min, nil
	}
	if lower, upper, ok := strings.Cut(label, "-"); ok {
		min, _ := strconv.Atoi(strings.TrimSpace(lower))
		max, err := strconv.Atoi(strings.TrimSpace(upper))
		if err == nil {
			return min, &max
		}
		return min, nil
	}
	min, _ := strconv.Atoi(label)
	return min, nil
}
