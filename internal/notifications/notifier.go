package notifications

import (
	"context"
	"fmt"

	"tripbook/internal/bookings"
	"tripbook/pkg/logger"
)

// BookingNotifier publishes booking lifecycle notifications onto the
// notification topic. It satisfies the booking service's Notifier seam;
// the caller treats every failure as best-effort.
type BookingNotifier struct {
	producer NotificationProducer
	users    bookings.UserDirectory
	log      *logger.Logger
}

func NewBookingNotifier(producer NotificationProducer, users bookings.UserDirectory) *BookingNotifier {
	return &BookingNotifier{
		producer: producer,
		users:    users,
		log:      logger.GetDefault(),
	}
}

var _ bookings.Notifier = (*BookingNotifier)(nil)

func (n *BookingNotifier) BookingConfirmed(ctx context.Context, booking *bookings.Booking) error {
	user, err := n.users.GetUser(ctx, booking.UserID)
	if err != nil {
		return fmt.Errorf("failed to resolve notification recipient: %w", err)
	}

	notification := NewNotificationBuilder().
		WithType(NotificationTypeBookingConfirmed).
		WithRecipient(user.ID, user.Email, user.FullName()).
		WithBookingContext(booking.ID).
		WithSubject(fmt.Sprintf("Booking Confirmed: %s", booking.ConfirmationNumber)).
		WithTemplateData(map[string]interface{}{
			"confirmation_number": booking.ConfirmationNumber,
			"booking_type":        string(booking.BookingType),
			"total_amount":        booking.TotalAmount,
			"currency":            booking.Currency,
		}).
		Build()

	return n.producer.PublishNotification(ctx, notification)
}

func (n *BookingNotifier) BookingCancelled(ctx context.Context, booking *bookings.Booking, reason string) error {
	user, err := n.users.GetUser(ctx, booking.UserID)
	if err != nil {
		return fmt.Errorf("failed to resolve notification recipient: %w", err)
	}

	refundNote := fmt.Sprintf("If a payment was taken, %.2f %s will be refunded within 3-5 business days.",
		booking.TotalAmount, booking.Currency)

	data := map[string]interface{}{
		"confirmation_number": booking.ConfirmationNumber,
		"booking_type":        string(booking.BookingType),
		"refund_note":         refundNote,
	}
	if reason != "" {
		data["reason"] = reason
	}

	notification := NewNotificationBuilder().
		WithType(NotificationTypeBookingCancelled).
		WithRecipient(user.ID, user.Email, user.FullName()).
		WithBookingContext(booking.ID).
		WithSubject(fmt.Sprintf("Booking Cancelled: %s", booking.ConfirmationNumber)).
		WithTemplateData(data).
		Build()

	return n.producer.PublishNotification(ctx, notification)
}
