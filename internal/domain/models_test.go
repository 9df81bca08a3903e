package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMenuItem_DisplayPrice(t *testing.T) {
	tests := []struct {
		name     string
		item     MenuItem
		expected float64
	}{
		{
			name:     "base_price_without_variants",
			item:     MenuItem{Price: 150},
			expected: 150,
		},
		{
			name: "cheapest_variant_wins",
			item: MenuItem{
				Price: 150,
				Variants: []Variant{
					{Name: "Regular", Price: 120},
					{Name: "Large", Price: 180},
				},
			},
			expected: 120,
		},
		{
			name: "single_variant",
			item: MenuItem{
				Price:    150,
				Variants: []Variant{{Name: "Large", Price: 200}},
			},
			expected: 200,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, testCase.item.DisplayPrice())
		})
	}
}
