package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Rounding policy: half away from zero (math.Round). 549 at 10% off is
// 494.1 and rounds down to 494; 550 at 15% off is 467.5 and rounds up to
// 468.
func TestDiscountedPrice(t *testing.T) {
	tests := []struct {
		name     string
		price    float64
		discount int
		expected float64
	}{
		{
			name:     "10 percent off 549",
			price:    549,
			discount: 10,
			expected: 494,
		},
		{
			name:     "no discount leaves price unchanged",
			price:    299,
			discount: 0,
			expected: 299,
		},
		{
			name:     "negative discount treated as absent",
			price:    299,
			discount: -5,
			expected: 299,
		},
		{
			name:     "half rounds away from zero",
			price:    550,
			discount: 15,
			expected: 468,
		},
		{
			name:     "full discount",
			price:    1299,
			discount: 100,
			expected: 0,
		},
		{
			name:     "50 percent off 999",
			price:    999,
			discount: 50,
			expected: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DiscountedPrice(tt.price, tt.discount))
		})
	}
}

func TestCommission(t *testing.T) {
	tests := []struct {
		name     string
		total    float64
		rate     float64
		expected float64
	}{
		{
			name:     "5 percent of 500",
			total:    500,
			rate:     DefaultCommissionRate,
			expected: 25,
		},
		{
			name:     "5 percent of 494",
			total:    494,
			rate:     DefaultCommissionRate,
			expected: 24.7,
		},
		{
			name:     "rounds to cents",
			total:    333,
			rate:     DefaultCommissionRate,
			expected: 16.65,
		},
		{
			name:     "zero total",
			total:    0,
			rate:     DefaultCommissionRate,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Commission(tt.total, tt.rate))
		})
	}
}

func TestRoundCents(t *testing.T) {
	assert.Equal(t, 24.7, RoundCents(24.700000000000003))
	assert.Equal(t, 16.65, RoundCents(16.650000000000002))
	assert.Equal(t, 0.0, RoundCents(0))
}
