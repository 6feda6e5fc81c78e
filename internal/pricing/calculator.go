package pricing

import (
	"math"

	"tripbook/pkg/logger"
)

// ServiceFeeRate is the flat platform fee applied to every booking type.
const ServiceFeeRate = 0.02

// DefaultTaxRate applies when the booking type is unknown.
const DefaultTaxRate = 0.08

// taxRates is fixed per booking type, not configurable per call.
var taxRates = map[string]float64{
	"flight":     0.08,
	"hotel":      0.12,
	"restaurant": 0.06,
	"car_rental": 0.10,
	"package":    0.09,
}

// Quote is the breakdown of a priced booking amount.
type Quote struct {
	BaseAmount  float64 `json:"base_amount"`
	ServiceFee  float64 `json:"service_fee"`
	TaxAmount   float64 `json:"tax_amount"`
	FinalAmount float64 `json:"final_amount"`
}

type Calculator interface {
	// Price turns a requested base amount into the amount actually charged.
	Price(bookingType string, baseAmount float64) Quote
	TaxRate(bookingType string) float64
}

type calculator struct {
	log *logger.Logger
}

func NewCalculator() Calculator {
	return &calculator{log: logger.GetDefault()}
}

func (c *calculator) TaxRate(bookingType string) float64 {
	if rate, ok := taxRates[bookingType]; ok {
		return rate
	}
	return DefaultTaxRate
}

func (c *calculator) Price(bookingType string, baseAmount float64) Quote {
	serviceFee := roundCents(baseAmount * ServiceFeeRate)
	taxAmount := roundCents(baseAmount * c.TaxRate(bookingType))
	finalAmount := roundCents(baseAmount + serviceFee + taxAmount)

	if math.IsNaN(finalAmount) || math.IsInf(finalAmount, 0) {
		// Fail open: charge the base amount rather than reject the booking.
		// This silently underprices, so it must be loud in the logs.
		c.log.Error("pricing computation produced a non-finite amount, falling back to base amount",
			"booking_type", bookingType,
			"base_amount", baseAmount,
		)
		return Quote{
			BaseAmount:  baseAmount,
			ServiceFee:  0,
			TaxAmount:   0,
			FinalAmount: baseAmount,
		}
	}

	return Quote{
		BaseAmount:  baseAmount,
		ServiceFee:  serviceFee,
		TaxAmount:   taxAmount,
		FinalAmount: finalAmount,
	}
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
