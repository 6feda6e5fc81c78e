package bookings

import (
	"time"

	"github.com/google/uuid"
)

// Booking is the persisted reservation row. It is owned exclusively by
// this package and mutated only through the repository.
type Booking struct {
	ID                 uuid.UUID   `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	ConfirmationNumber string      `json:"confirmation_number" gorm:"size:8;not null;index"`
	BookingType        BookingType `json:"booking_type" gorm:"size:20;not null;index;check:booking_type IN ('flight','hotel','restaurant','car_rental','package')"`
	UserID             uuid.UUID   `json:"user_id" gorm:"type:uuid;not null;index"`
	ItemID             string      `json:"item_id" gorm:"not null"`
	GroupID            *uuid.UUID  `json:"group_booking_id,omitempty" gorm:"type:uuid;index"`

	Details         Details    `json:"details" gorm:"type:jsonb"`
	SpecialRequests StringList `json:"special_requests" gorm:"type:jsonb"`

	// Pricing breakdown. TotalAmount is the fee- and tax-inclusive
	// amount actually charged.
	BaseAmount  float64 `json:"base_amount" gorm:"not null"`
	ServiceFee  float64 `json:"service_fee" gorm:"not null;default:0"`
	TaxAmount   float64 `json:"tax_amount" gorm:"not null;default:0"`
	TotalAmount float64 `json:"total_amount" gorm:"not null;check:total_amount > 0"`
	Currency    string  `json:"currency" gorm:"size:3;not null;default:'usd'"`

	Status Status `json:"status" gorm:"size:20;not null;default:'pending';index;check:status IN ('pending','confirmed','cancelled','completed','failed')"`

	// ServiceDate is derived from the details payload and keys the
	// completion sweep.
	ServiceDate *time.Time `json:"service_date,omitempty" gorm:"index"`

	CreatedAt  time.Time  `json:"created_at"`
	ExpiresAt  time.Time  `json:"expires_at" gorm:"not null;index"`
	ModifiedAt *time.Time `json:"modified_at,omitempty"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (Booking) TableName() string {
	return "bookings"
}

// IsExpired reports whether the pending hold has lapsed.
func (b *Booking) IsExpired(now time.Time) bool {
	return b.Status == StatusPending && now.After(b.ExpiresAt)
}

// WithinChangeWindow reports whether cancellation and modification are
// still allowed. The window is the same 24h hold window set at creation.
func (b *Booking) WithinChangeWindow(now time.Time) bool {
	return now.Before(b.ExpiresAt)
}

// PaymentStatus is the lifecycle of a payment attempt row.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentCompleted PaymentStatus = "COMPLETED"
	PaymentFailed    PaymentStatus = "FAILED"
	PaymentRefunded  PaymentStatus = "REFUNDED"
)

// Payment records one charge attempt against a booking.
type Payment struct {
	ID            uuid.UUID     `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	BookingID     uuid.UUID     `json:"booking_id" gorm:"type:uuid;not null;index"`
	Amount        float64       `json:"amount" gorm:"not null;check:amount > 0"`
	Currency      string        `json:"currency" gorm:"size:3;not null"`
	Status        PaymentStatus `json:"status" gorm:"size:20;not null;default:'PENDING';check:status IN ('PENDING','COMPLETED','FAILED','REFUNDED')"`
	PaymentMethod string        `json:"payment_method"`
	TransactionID string        `json:"transaction_id" gorm:"index"`
	FailureReason string        `json:"failure_reason,omitempty"`
	ProcessedAt   *time.Time    `json:"processed_at,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

func (Payment) TableName() string {
	return "payments"
}

// MarkCompleted records a successful charge.
func (p *Payment) MarkCompleted(transactionID string) {
	now := time.Now().UTC()
	p.Status = PaymentCompleted
	p.TransactionID = transactionID
	p.ProcessedAt = &now
}

// MarkFailed records a declined or errored charge.
func (p *Payment) MarkFailed(reason string) {
	now := time.Now().UTC()
	p.Status = PaymentFailed
	p.FailureReason = reason
	p.ProcessedAt = &now
}

// MarkRefunded records a provider or stub refund.
func (p *Payment) MarkRefunded() {
	now := time.Now().UTC()
	p.Status = PaymentRefunded
	p.ProcessedAt = &now
}
