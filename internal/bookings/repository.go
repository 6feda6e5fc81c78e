package bookings

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, booking *Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	GetByGroupID(ctx context.Context, groupID uuid.UUID) ([]Booking, error)

	// UpdateStatus performs a compare-and-swap on the status column so
	// two concurrent transitions cannot both win.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to Status) error
	UpdateModification(ctx context.Context, id uuid.UUID, details Details, specialRequests StringList, totalAmount float64, serviceDate *time.Time, modifiedAt time.Time) error

	CreatePayment(ctx context.Context, payment *Payment) error
	UpdatePayment(ctx context.Context, payment *Payment) error
	GetPaymentsByBookingID(ctx context.Context, bookingID uuid.UUID) ([]Payment, error)

	// Sweeper queries, used by the background worker.
	ExpirePending(ctx context.Context, now time.Time) (int64, error)
	CompleteElapsed(ctx context.Context, now time.Time) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, booking *Booking) error {
	if err := r.db.WithContext(ctx).Create(booking).Error; err != nil {
		return NewUpstreamError(err, "failed to create booking")
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	var booking Booking
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("booking %s not found", id)
		}
		return nil, NewUpstreamError(err, "failed to fetch booking")
	}
	return &booking, nil
}

func (r *repository) GetByGroupID(ctx context.Context, groupID uuid.UUID) ([]Booking, error) {
	var list []Booking
	err := r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("created_at ASC").
		Find(&list).Error
	if err != nil {
		return nil, NewUpstreamError(err, "failed to list group bookings")
	}
	return list, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to Status) error {
	result := r.db.WithContext(ctx).Model(&Booking{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]interface{}{
			"status":     to,
			"updated_at": time.Now().UTC(),
		})

	if result.Error != nil {
		return NewUpstreamError(result.Error, "failed to update booking status")
	}

	if result.RowsAffected == 0 {
		// Either the row is gone or another caller already moved it.
		return NewStateConflictError("booking %s is no longer %s", id, from)
	}

	return nil
}

func (r *repository) UpdateModification(ctx context.Context, id uuid.UUID, details Details, specialRequests StringList, totalAmount float64, serviceDate *time.Time, modifiedAt time.Time) error {
	result := r.db.WithContext(ctx).Model(&Booking{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"details":          details,
			"special_requests": specialRequests,
			"total_amount":     totalAmount,
			"service_date":     serviceDate,
			"modified_at":      modifiedAt,
			"updated_at":       modifiedAt,
		})

	if result.Error != nil {
		return NewUpstreamError(result.Error, "failed to persist modification")
	}

	if result.RowsAffected == 0 {
		return NewNotFoundError("booking %s not found", id)
	}

	return nil
}

func (r *repository) CreatePayment(ctx context.Context, payment *Payment) error {
	if err := r.db.WithContext(ctx).Create(payment).Error; err != nil {
		return NewUpstreamError(err, "failed to create payment record")
	}
	return nil
}

func (r *repository) UpdatePayment(ctx context.Context, payment *Payment) error {
	if err := r.db.WithContext(ctx).Save(payment).Error; err != nil {
		return NewUpstreamError(err, "failed to update payment record")
	}
	return nil
}

func (r *repository) GetPaymentsByBookingID(ctx context.Context, bookingID uuid.UUID) ([]Payment, error) {
	var list []Payment
	err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("created_at ASC").
		Find(&list).Error
	if err != nil {
		return nil, NewUpstreamError(err, "failed to list payments")
	}
	return list, nil
}

func (r *repository) ExpirePending(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&Booking{}).
		Where("status = ? AND expires_at < ?", StatusPending, now).
		Updates(map[string]interface{}{
			"status":     StatusCancelled,
			"updated_at": now,
		})

	if result.Error != nil {
		return 0, NewUpstreamError(result.Error, "failed to expire pending bookings")
	}

	return result.RowsAffected, nil
}

func (r *repository) CompleteElapsed(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&Booking{}).
		Where("status = ? AND service_date IS NOT NULL AND service_date < ?", StatusConfirmed, now).
		Updates(map[string]interface{}{
			"status":     StatusCompleted,
			"updated_at": now,
		})

	if result.Error != nil {
		return 0, NewUpstreamError(result.Error, "failed to complete elapsed bookings")
	}

	return result.RowsAffected, nil
}
