package bookings

import (
	"context"
	"math"
	"time"

	"tripbook/internal/payments"
	"tripbook/internal/pricing"
	"tripbook/pkg/logger"

	"github.com/google/uuid"
)

type Service interface {
	CreateBooking(ctx context.Context, req *CreateBookingRequest) (*BookingConfirmation, error)
	ProcessPayment(ctx context.Context, bookingID uuid.UUID, req *ProcessPaymentRequest) (*PaymentResult, error)
	CancelBooking(ctx context.Context, bookingID uuid.UUID, req *CancelBookingRequest) (*CancelResult, error)
	ModifyBooking(ctx context.Context, bookingID uuid.UUID, req *ModifyBookingRequest) (*ModifyResult, error)
	GetBooking(ctx context.Context, bookingID uuid.UUID) (*Booking, error)
	GetGroupBookings(ctx context.Context, groupID uuid.UUID) ([]Booking, error)

	// Sweeps, driven by the background worker.
	ExpirePendingBookings(ctx context.Context, now time.Time) (int64, error)
	CompleteElapsedBookings(ctx context.Context, now time.Time) (int64, error)
}

// Config carries the lifecycle knobs the service needs.
type Config struct {
	// HoldWindow bounds both pending-booking expiry and the
	// cancellation/modification window.
	HoldWindow      time.Duration
	DefaultCurrency string
}

type service struct {
	repo       Repository
	calculator pricing.Calculator
	gateway    payments.Gateway
	users      UserDirectory

	availability AvailabilityChecker
	inventory    InventoryAdjuster
	notifier     Notifier
	refunder     Refunder
	costCalc     CostRecalculator

	cfg Config
	log *logger.Logger
	now func() time.Time
}

// Option overrides one of the service's collaborator seams.
type Option func(*service)

func WithAvailabilityChecker(c AvailabilityChecker) Option {
	return func(s *service) { s.availability = c }
}

func WithInventoryAdjuster(a InventoryAdjuster) Option {
	return func(s *service) { s.inventory = a }
}

func WithNotifier(n Notifier) Option {
	return func(s *service) { s.notifier = n }
}

func WithRefunder(r Refunder) Option {
	return func(s *service) { s.refunder = r }
}

func WithCostRecalculator(c CostRecalculator) Option {
	return func(s *service) { s.costCalc = c }
}

func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

func NewService(repo Repository, calculator pricing.Calculator, gateway payments.Gateway, users UserDirectory, cfg Config, opts ...Option) Service {
	if cfg.HoldWindow <= 0 {
		cfg.HoldWindow = 24 * time.Hour
	}
	if cfg.DefaultCurrency == "" {
		cfg.DefaultCurrency = "usd"
	}

	s := &service{
		repo:         repo,
		calculator:   calculator,
		gateway:      gateway,
		users:        users,
		availability: AlwaysAvailable{},
		inventory:    NoOpInventory{},
		notifier:     NoOpNotifier{},
		refunder:     StubRefunder{},
		costCalc:     ZeroCostRecalculator{},
		cfg:          cfg,
		log:          logger.GetDefault(),
		now:          func() time.Time { return time.Now().UTC() },
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

var _ Service = (*service)(nil)

func (s *service) CreateBooking(ctx context.Context, req *CreateBookingRequest) (*BookingConfirmation, error) {
	// Preconditions, checked in order. Nothing is persisted on failure.
	if req.UserID == uuid.Nil {
		return nil, NewValidationError("user_id is required")
	}
	if req.ItemID == "" {
		return nil, NewValidationError("item_id is required")
	}
	if req.TotalAmount <= 0 {
		return nil, NewValidationError("total_amount must be greater than zero")
	}

	bookingType := BookingType(req.BookingType)
	if !bookingType.IsValid() {
		return nil, NewValidationError("unknown booking type %q", req.BookingType)
	}

	if err := req.Details.Validate(bookingType); err != nil {
		return nil, err
	}

	available, err := s.availability.CheckAvailability(ctx, bookingType, req.ItemID, &req.Details)
	if err != nil {
		return nil, NewUpstreamError(err, "availability check failed")
	}
	if !available {
		return nil, NewStateConflictError("%s %s is not available", bookingType, req.ItemID)
	}

	confirmationNumber, err := GenerateConfirmationNumber()
	if err != nil {
		return nil, NewUpstreamError(err, "failed to generate confirmation number")
	}

	quote := s.calculator.Price(string(bookingType), req.TotalAmount)

	currency := req.Currency
	if currency == "" {
		currency = s.cfg.DefaultCurrency
	}

	now := s.now()
	booking := &Booking{
		ID:                 uuid.New(),
		ConfirmationNumber: confirmationNumber,
		BookingType:        bookingType,
		UserID:             req.UserID,
		ItemID:             req.ItemID,
		GroupID:            req.GroupBookingID,
		Details:            req.Details,
		SpecialRequests:    StringList(req.SpecialRequests),
		BaseAmount:         quote.BaseAmount,
		ServiceFee:         quote.ServiceFee,
		TaxAmount:          quote.TaxAmount,
		TotalAmount:        quote.FinalAmount,
		Currency:           currency,
		Status:             StatusPending,
		ServiceDate:        req.Details.ServiceDate(),
		CreatedAt:          now,
		ExpiresAt:          now.Add(s.cfg.HoldWindow),
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.log.LogBookingCreated(ctx, booking.ID.String(), booking.ItemID, booking.UserID.String())

	return &BookingConfirmation{
		BookingID:          booking.ID,
		ConfirmationNumber: booking.ConfirmationNumber,
		BookingType:        string(booking.BookingType),
		Status:             string(booking.Status),
		BaseAmount:         booking.BaseAmount,
		ServiceFee:         booking.ServiceFee,
		TaxAmount:          booking.TaxAmount,
		TotalAmount:        booking.TotalAmount,
		Currency:           booking.Currency,
		ExpiresAt:          booking.ExpiresAt,
	}, nil
}

func (s *service) ProcessPayment(ctx context.Context, bookingID uuid.UUID, req *ProcessPaymentRequest) (*PaymentResult, error) {
	booking, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !booking.Status.CanBePaid() {
		return nil, NewStateConflictError("booking %s has status %s, payment requires pending", bookingID, booking.Status)
	}

	user, err := s.users.GetUser(ctx, booking.UserID)
	if err != nil {
		// Customer resolution failed before the provider was asked.
		// Payment attempts must not leave the booking pending.
		return s.failPayment(ctx, booking, nil, "failed to resolve customer: "+err.Error())
	}

	payment := &Payment{
		ID:            uuid.New(),
		BookingID:     booking.ID,
		Amount:        booking.TotalAmount,
		Currency:      booking.Currency,
		Status:        PaymentPending,
		PaymentMethod: req.PaymentMethodID,
	}
	if err := s.repo.CreatePayment(ctx, payment); err != nil {
		return s.failPayment(ctx, booking, nil, "failed to record payment attempt: "+err.Error())
	}

	charge, err := s.gateway.Charge(ctx, &payments.ChargeRequest{
		AmountMinor:     int64(math.Round(booking.TotalAmount * 100)),
		Currency:        booking.Currency,
		PaymentMethodID: req.PaymentMethodID,
		CustomerEmail:   user.Email,
		CustomerName:    user.FullName(),
		CustomerID:      user.PaymentCustomerID,
		Metadata: map[string]string{
			"booking_id":          booking.ID.String(),
			"confirmation_number": booking.ConfirmationNumber,
			"booking_type":        string(booking.BookingType),
		},
	})
	if err != nil {
		return s.failPayment(ctx, booking, payment, err.Error())
	}

	if user.PaymentCustomerID == "" && charge.CustomerID != "" {
		if err := s.users.SetPaymentCustomerID(ctx, user.ID, charge.CustomerID); err != nil {
			s.log.WithError(err).WarnContext(ctx, "failed to cache payment customer id", "user_id", user.ID)
		}
	}

	if !charge.Success {
		return s.failPayment(ctx, booking, payment, charge.FailureReason)
	}

	if err := s.repo.UpdateStatus(ctx, booking.ID, StatusPending, StatusConfirmed); err != nil {
		// The charge went through but another caller moved the booking
		// first. Surface loudly; reconciliation is manual.
		s.log.ErrorWithContext(ctx, "charged booking lost the status race", err, map[string]interface{}{
			"booking_id":     booking.ID.String(),
			"transaction_id": charge.TransactionID,
		})
		return nil, err
	}
	booking.Status = StatusConfirmed

	payment.MarkCompleted(charge.TransactionID)
	if err := s.repo.UpdatePayment(ctx, payment); err != nil {
		s.log.WithError(err).ErrorContext(ctx, "failed to finalize payment record", "payment_id", payment.ID)
	}

	// Side effects are best-effort. Payment success is authoritative.
	if err := s.inventory.ReserveUnits(ctx, booking); err != nil {
		s.log.WithError(err).WarnContext(ctx, "inventory reservation failed", "booking_id", booking.ID)
	}
	if err := s.notifier.BookingConfirmed(ctx, booking); err != nil {
		s.log.WithError(err).WarnContext(ctx, "confirmation notification failed", "booking_id", booking.ID)
	}

	s.log.LogPaymentProcessed(ctx, booking.ID.String(), booking.TotalAmount, true)

	return &PaymentResult{
		Success:       true,
		BookingStatus: string(StatusConfirmed),
		TransactionID: charge.TransactionID,
	}, nil
}

// failPayment transitions the booking to failed and reports the reason.
// The fail-closed transition is deliberate: a booking must never remain
// ambiguously pending after a payment attempt.
func (s *service) failPayment(ctx context.Context, booking *Booking, payment *Payment, reason string) (*PaymentResult, error) {
	if err := s.repo.UpdateStatus(ctx, booking.ID, StatusPending, StatusFailed); err != nil {
		s.log.WithError(err).ErrorContext(ctx, "failed to mark booking failed", "booking_id", booking.ID)
	}

	if payment != nil {
		payment.MarkFailed(reason)
		if err := s.repo.UpdatePayment(ctx, payment); err != nil {
			s.log.WithError(err).ErrorContext(ctx, "failed to finalize payment record", "payment_id", payment.ID)
		}
	}

	s.log.LogPaymentProcessed(ctx, booking.ID.String(), booking.TotalAmount, false)

	return &PaymentResult{
		Success:       false,
		BookingStatus: string(StatusFailed),
		Error:         reason,
	}, nil
}

func (s *service) CancelBooking(ctx context.Context, bookingID uuid.UUID, req *CancelBookingRequest) (*CancelResult, error) {
	booking, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !booking.Status.CanBeCancelled() {
		return nil, NewStateConflictError("booking %s has status %s and cannot be cancelled", bookingID, booking.Status)
	}

	if !booking.WithinChangeWindow(s.now()) {
		return nil, NewStateConflictError("cancellation window for booking %s has passed", bookingID)
	}

	wasConfirmed := booking.Status == StatusConfirmed

	var refund *RefundResult
	if wasConfirmed {
		refund, err = s.refunder.Refund(ctx, booking)
		if err != nil {
			return nil, NewUpstreamError(err, "refund failed, booking left unchanged")
		}
	}

	if err := s.repo.UpdateStatus(ctx, booking.ID, booking.Status, StatusCancelled); err != nil {
		return nil, err
	}
	booking.Status = StatusCancelled

	reason := req.Reason

	// Best-effort side effects. Units are reserved only on payment
	// success, so only a previously confirmed booking has inventory
	// to give back or a payment row to mark refunded.
	if wasConfirmed {
		s.markPaymentRefunded(ctx, booking)
		if err := s.inventory.RestoreUnits(ctx, booking); err != nil {
			s.log.WithError(err).WarnContext(ctx, "inventory restore failed", "booking_id", booking.ID)
		}
	}
	if err := s.notifier.BookingCancelled(ctx, booking, reason); err != nil {
		s.log.WithError(err).WarnContext(ctx, "cancellation notification failed", "booking_id", booking.ID)
	}

	s.log.LogBookingCancelled(ctx, booking.ID.String(), booking.ItemID, booking.UserID.String())

	return &CancelResult{
		Success:       true,
		BookingStatus: string(StatusCancelled),
		Refund:        refund,
		Message:       "Booking cancelled",
	}, nil
}

// markPaymentRefunded moves the booking's completed payment rows to
// REFUNDED once the refund has been issued.
func (s *service) markPaymentRefunded(ctx context.Context, booking *Booking) {
	records, err := s.repo.GetPaymentsByBookingID(ctx, booking.ID)
	if err != nil {
		s.log.WithError(err).WarnContext(ctx, "failed to load payment records for refund", "booking_id", booking.ID)
		return
	}

	for i := range records {
		if records[i].Status != PaymentCompleted {
			continue
		}
		records[i].MarkRefunded()
		if err := s.repo.UpdatePayment(ctx, &records[i]); err != nil {
			s.log.WithError(err).WarnContext(ctx, "failed to mark payment refunded", "payment_id", records[i].ID)
		}
	}
}

func (s *service) ModifyBooking(ctx context.Context, bookingID uuid.UUID, req *ModifyBookingRequest) (*ModifyResult, error) {
	booking, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !booking.Status.CanBeModified() {
		return nil, NewStateConflictError("booking %s has status %s and cannot be modified", bookingID, booking.Status)
	}

	if !booking.WithinChangeWindow(s.now()) {
		return nil, NewStateConflictError("modification window for booking %s has passed", bookingID)
	}

	priceDifference, err := s.costCalc.PriceDifference(ctx, booking, &req.Modifications)
	if err != nil {
		return nil, NewUpstreamError(err, "failed to price modification")
	}

	merged := booking.Details.Merge(&req.Modifications)
	newTotal := booking.TotalAmount + priceDifference

	specialRequests := booking.SpecialRequests
	if req.SpecialRequests != nil {
		specialRequests = StringList(req.SpecialRequests)
	}

	modifiedAt := s.now()
	if err := s.repo.UpdateModification(ctx, booking.ID, merged, specialRequests, newTotal, merged.ServiceDate(), modifiedAt); err != nil {
		return nil, err
	}

	result := &ModifyResult{
		Success:         true,
		PriceDifference: priceDifference,
		NewTotalAmount:  newTotal,
	}
	if priceDifference > 0 {
		result.AdditionalPaymentRequired = priceDifference
	} else if priceDifference < 0 {
		result.RefundAmount = -priceDifference
	}

	return result, nil
}

func (s *service) GetBooking(ctx context.Context, bookingID uuid.UUID) (*Booking, error) {
	return s.repo.GetByID(ctx, bookingID)
}

func (s *service) GetGroupBookings(ctx context.Context, groupID uuid.UUID) ([]Booking, error) {
	return s.repo.GetByGroupID(ctx, groupID)
}

func (s *service) ExpirePendingBookings(ctx context.Context, now time.Time) (int64, error) {
	count, err := s.repo.ExpirePending(ctx, now)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		s.log.InfoContext(ctx, "expired pending bookings", "count", count)
	}
	return count, nil
}

func (s *service) CompleteElapsedBookings(ctx context.Context, now time.Time) (int64, error) {
	count, err := s.repo.CompleteElapsed(ctx, now)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		s.log.InfoContext(ctx, "completed elapsed bookings", "count", count)
	}
	return count, nil
}
