package bookings

import (
	"time"

	"github.com/google/uuid"
)

// BookingConfirmation is returned from creation, carrying the priced
// total rather than the requested base amount.
type BookingConfirmation struct {
	BookingID          uuid.UUID `json:"booking_id"`
	ConfirmationNumber string    `json:"confirmation_number"`
	BookingType        string    `json:"booking_type"`
	Status             string    `json:"status"`
	BaseAmount         float64   `json:"base_amount"`
	ServiceFee         float64   `json:"service_fee"`
	TaxAmount          float64   `json:"tax_amount"`
	TotalAmount        float64   `json:"total_amount"`
	Currency           string    `json:"currency"`
	ExpiresAt          time.Time `json:"expires_at"`
}

// PaymentResult reports the outcome of a payment attempt. A declined
// charge is a result with Success=false, not an error.
type PaymentResult struct {
	Success       bool   `json:"success"`
	BookingStatus string `json:"booking_status"`
	TransactionID string `json:"transaction_id,omitempty"`
	Error         string `json:"error,omitempty"`
}

// CancelResult reports a completed cancellation.
type CancelResult struct {
	Success       bool          `json:"success"`
	BookingStatus string        `json:"booking_status"`
	Refund        *RefundResult `json:"refund,omitempty"`
	Message       string        `json:"message,omitempty"`
}

// ModifyResult reports the priced outcome of a modification. No money
// moves here; collection or refund is a separate step.
type ModifyResult struct {
	Success                   bool    `json:"success"`
	PriceDifference           float64 `json:"price_difference"`
	AdditionalPaymentRequired float64 `json:"additional_payment_required,omitempty"`
	RefundAmount              float64 `json:"refund_amount,omitempty"`
	NewTotalAmount            float64 `json:"new_total_amount"`
}
