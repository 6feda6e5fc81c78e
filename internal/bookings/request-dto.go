package bookings

import "github.com/google/uuid"

// booking creation request payload
type CreateBookingRequest struct {
	BookingType     string     `json:"booking_type" validate:"required"`
	UserID          uuid.UUID  `json:"-"`
	ItemID          string     `json:"item_id" validate:"required"`
	Details         Details    `json:"details"`
	TotalAmount     float64    `json:"total_amount" validate:"required"`
	Currency        string     `json:"currency,omitempty"`
	SpecialRequests []string   `json:"special_requests,omitempty"`
	GroupBookingID  *uuid.UUID `json:"group_booking_id,omitempty"`
}

// payment processing request payload
type ProcessPaymentRequest struct {
	PaymentMethodID string `json:"payment_method_id" validate:"required"`
}

// cancellation request payload
type CancelBookingRequest struct {
	Reason string `json:"reason,omitempty"`
}

// modification request payload
type ModifyBookingRequest struct {
	Modifications   Details  `json:"modifications"`
	SpecialRequests []string `json:"special_requests,omitempty"`
}
