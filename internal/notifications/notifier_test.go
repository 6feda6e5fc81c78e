package notifications

import (
	"context"
	"errors"
	"testing"

	"tripbook/internal/bookings"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturingProducer struct {
	published []*EmailNotification
	err       error
}

func (p *capturingProducer) PublishNotification(ctx context.Context, notification *EmailNotification) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, notification)
	return nil
}

func (p *capturingProducer) PublishBatchNotifications(ctx context.Context, notifications []*EmailNotification) error {
	p.published = append(p.published, notifications...)
	return nil
}

func (p *capturingProducer) Close() error                          { return nil }
func (p *capturingProducer) HealthCheck(ctx context.Context) error { return nil }

type fixedDirectory struct {
	profile bookings.UserProfile
	err     error
}

func (d *fixedDirectory) GetUser(ctx context.Context, userID uuid.UUID) (*bookings.UserProfile, error) {
	if d.err != nil {
		return nil, d.err
	}
	cp := d.profile
	cp.ID = userID
	return &cp, nil
}

func (d *fixedDirectory) SetPaymentCustomerID(ctx context.Context, userID uuid.UUID, customerID string) error {
	return nil
}

func confirmedBooking() *bookings.Booking {
	return &bookings.Booking{
		ID:                 uuid.New(),
		ConfirmationNumber: "AB123CD4",
		BookingType:        bookings.TypeHotel,
		UserID:             uuid.New(),
		TotalAmount:        114.0,
		Currency:           "usd",
		Status:             bookings.StatusConfirmed,
	}
}

func TestBookingConfirmedPublishesNotification(t *testing.T) {
	producer := &capturingProducer{}
	dir := &fixedDirectory{profile: bookings.UserProfile{Email: "ada@example.com", FirstName: "Ada", LastName: "Lovelace"}}
	notifier := NewBookingNotifier(producer, dir)

	booking := confirmedBooking()
	require.NoError(t, notifier.BookingConfirmed(context.Background(), booking))

	require.Len(t, producer.published, 1)
	notification := producer.published[0]
	assert.Equal(t, NotificationTypeBookingConfirmed, notification.Type)
	assert.Equal(t, "ada@example.com", notification.RecipientEmail)
	assert.Equal(t, booking.ID, *notification.BookingID)
	assert.Equal(t, "AB123CD4", notification.TemplateData["confirmation_number"])
	assert.Contains(t, notification.Subject, "AB123CD4")
}

func TestBookingCancelledIncludesReason(t *testing.T) {
	producer := &capturingProducer{}
	dir := &fixedDirectory{profile: bookings.UserProfile{Email: "ada@example.com"}}
	notifier := NewBookingNotifier(producer, dir)

	require.NoError(t, notifier.BookingCancelled(context.Background(), confirmedBooking(), "change of plans"))

	require.Len(t, producer.published, 1)
	notification := producer.published[0]
	assert.Equal(t, NotificationTypeBookingCancelled, notification.Type)
	assert.Equal(t, "change of plans", notification.TemplateData["reason"])
}

func TestNotifierReportsDirectoryFailure(t *testing.T) {
	producer := &capturingProducer{}
	dir := &fixedDirectory{err: errors.New("directory offline")}
	notifier := NewBookingNotifier(producer, dir)

	err := notifier.BookingConfirmed(context.Background(), confirmedBooking())
	require.Error(t, err)
	assert.Empty(t, producer.published)
}
