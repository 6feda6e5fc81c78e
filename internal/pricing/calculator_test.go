package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaxRateCoverage(t *testing.T) {
	calc := NewCalculator()

	tests := []struct {
		bookingType string
		want        float64
	}{
		{"flight", 0.08},
		{"hotel", 0.12},
		{"restaurant", 0.06},
		{"car_rental", 0.10},
		{"package", 0.09},
		{"spaceship", 0.08},
		{"", 0.08},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, calc.TaxRate(tt.bookingType), "tax rate for %q", tt.bookingType)
	}
}

func TestPriceHotelBreakdown(t *testing.T) {
	calc := NewCalculator()

	quote := calc.Price("hotel", 100)

	assert.Equal(t, 100.0, quote.BaseAmount)
	assert.Equal(t, 2.0, quote.ServiceFee)
	assert.Equal(t, 12.0, quote.TaxAmount)
	assert.Equal(t, 114.0, quote.FinalAmount)
}

func TestPriceUnknownTypeUsesDefaultRate(t *testing.T) {
	calc := NewCalculator()

	quote := calc.Price("yacht", 200)

	assert.Equal(t, 4.0, quote.ServiceFee)
	assert.Equal(t, 16.0, quote.TaxAmount)
	assert.Equal(t, 220.0, quote.FinalAmount)
}

func TestPriceIsDeterministic(t *testing.T) {
	calc := NewCalculator()

	first := calc.Price("flight", 349.99)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, calc.Price("flight", 349.99))
	}
}

func TestPriceRoundsToCents(t *testing.T) {
	calc := NewCalculator()

	quote := calc.Price("restaurant", 33.33)

	assert.Equal(t, 0.67, quote.ServiceFee)
	assert.Equal(t, 2.0, quote.TaxAmount)
	assert.Equal(t, 36.0, quote.FinalAmount)
}

func TestPriceFallsBackOnNonFiniteInput(t *testing.T) {
	calc := NewCalculator()

	quote := calc.Price("hotel", math.Inf(1))

	assert.Equal(t, quote.BaseAmount, quote.FinalAmount)
	assert.Equal(t, 0.0, quote.ServiceFee)
	assert.Equal(t, 0.0, quote.TaxAmount)
}
