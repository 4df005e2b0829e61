package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAgeGroup(t *testing.T) {
	tests := []struct {
		label   string
		wantMin int
		wantMax *int
	}{
		{"8+", 8, nil},
		{"18+", 18, nil},
		{"16-75", 16, intPtr(75)},
		{"12-17", 12, intPtr(17)},
		{" 21+ ", 21, nil},
		{"10", 10, nil},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			min, max := ParseAgeGroup(tt.label)
			assert.Equal(t, tt.wantMin, min)
			if tt.wantMax == nil {
				assert.Nil(t, max)
			} else {
				require.NotNil(t, max)
				assert.Equal(t, *tt.wantMax, *max)
			}
		})
	}
}

func TestMinMaxPrice(t *testing.T) {
	e := Event{PricingOptions: []PricingOption{
		{Name: "Economy", Price: 279},
		{Name: "Standard", Price: 359},
		{Name: "Deluxe", Price: 419},
	}}

	assert.Equal(t, 279.0, e.MinPrice())
	assert.Equal(t, 419.0, e.MaxPrice())
}

func TestMinMaxPrice_SingleOption(t *testing.T) {
	e := Event{PricingOptions: []PricingOption{{Name: "Standard", Price: 199}}}

	assert.Equal(t, 199.0, e.MinPrice())
	assert.Equal(t, 199.0, e.MaxPrice())
}

func intPtr(v int) *int {
	return &v
}
