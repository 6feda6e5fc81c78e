package bookings

import (
	"context"

	"github.com/google/uuid"
)

// The booking service depends on a handful of collaborator seams. Each
// has a trivial default so the service works before the real
// implementations are wired, and tests can substitute fakes.

// AvailabilityChecker gates creation on whether the requested item can
// actually be reserved.
type AvailabilityChecker interface {
	CheckAvailability(ctx context.Context, bookingType BookingType, itemID string, details *Details) (bool, error)
}

// InventoryAdjuster reserves units on confirmation and restores them on
// cancellation. Failures are best-effort and never roll back the
// booking transition.
type InventoryAdjuster interface {
	ReserveUnits(ctx context.Context, booking *Booking) error
	RestoreUnits(ctx context.Context, booking *Booking) error
}

// Notifier sends booking lifecycle notifications, fire-and-forget.
type Notifier interface {
	BookingConfirmed(ctx context.Context, booking *Booking) error
	BookingCancelled(ctx context.Context, booking *Booking, reason string) error
}

// Refunder reverses a charged booking. The default never contacts a
// payment provider; it only reports the standard turnaround.
type Refunder interface {
	Refund(ctx context.Context, booking *Booking) (*RefundResult, error)
}

// RefundResult reports a refund issued during cancellation.
type RefundResult struct {
	RefundID       string  `json:"refund_id,omitempty"`
	RefundAmount   float64 `json:"refund_amount"`
	Currency       string  `json:"currency"`
	ExpectedWithin string  `json:"expected_within,omitempty"`
}

// CostRecalculator prices the difference a modification introduces.
type CostRecalculator interface {
	PriceDifference(ctx context.Context, booking *Booking, mods *Details) (float64, error)
}

// UserDirectory resolves the account details payment and notifications
// need. Implemented by an adapter over the auth repository.
type UserDirectory interface {
	GetUser(ctx context.Context, userID uuid.UUID) (*UserProfile, error)
	SetPaymentCustomerID(ctx context.Context, userID uuid.UUID, customerID string) error
}

// UserProfile is the slice of account data the booking flows consume.
type UserProfile struct {
	ID                uuid.UUID
	Email             string
	FirstName         string
	LastName          string
	PaymentCustomerID string
}

func (p *UserProfile) FullName() string {
	return p.FirstName + " " + p.LastName
}

// Default implementations.

// AlwaysAvailable reports every item as bookable.
type AlwaysAvailable struct{}

func (AlwaysAvailable) CheckAvailability(ctx context.Context, bookingType BookingType, itemID string, details *Details) (bool, error) {
	return true, nil
}

// NoOpInventory performs no inventory movement.
type NoOpInventory struct{}

func (NoOpInventory) ReserveUnits(ctx context.Context, booking *Booking) error { return nil }
func (NoOpInventory) RestoreUnits(ctx context.Context, booking *Booking) error { return nil }

// NoOpNotifier drops every notification.
type NoOpNotifier struct{}

func (NoOpNotifier) BookingConfirmed(ctx context.Context, booking *Booking) error { return nil }
func (NoOpNotifier) BookingCancelled(ctx context.Context, booking *Booking, reason string) error {
	return nil
}

// StubRefunder acknowledges the refund for the full booking amount
// without contacting a provider.
type StubRefunder struct{}

func (StubRefunder) Refund(ctx context.Context, booking *Booking) (*RefundResult, error) {
	return &RefundResult{
		RefundAmount:   booking.TotalAmount,
		Currency:       booking.Currency,
		ExpectedWithin: "3-5 business days",
	}, nil
}

// ZeroCostRecalculator reports no fare difference for any modification.
type ZeroCostRecalculator struct{}

func (ZeroCostRecalculator) PriceDifference(ctx context.Context, booking *Booking, mods *Details) (float64, error) {
	return 0, nil
}
