package bookings

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"tripbook/internal/payments"
	"tripbook/internal/pricing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo is an in-memory Repository with the same compare-and-swap
// semantics as the Postgres implementation.
type fakeRepo struct {
	mu       sync.Mutex
	bookings map[uuid.UUID]*Booking
	payments map[uuid.UUID]*Payment
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		bookings: make(map[uuid.UUID]*Booking),
		payments: make(map[uuid.UUID]*Payment),
	}
}

func (f *fakeRepo) Create(ctx context.Context, booking *Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *booking
	f.bookings[booking.ID] = &cp
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok {
		return nil, NewNotFoundError("booking %s not found", id)
	}
	cp := *b
	return &cp, nil
}

func (f *fakeRepo) GetByGroupID(ctx context.Context, groupID uuid.UUID) ([]Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var list []Booking
	for _, b := range f.bookings {
		if b.GroupID != nil && *b.GroupID == groupID {
			list = append(list, *b)
		}
	}
	for i := 0; i < len(list); i++ {
		for j := i + 1; j < len(list); j++ {
			if list[j].CreatedAt.Before(list[i].CreatedAt) {
				list[i], list[j] = list[j], list[i]
			}
		}
	}
	return list, nil
}

func (f *fakeRepo) UpdateStatus(ctx context.Context, id uuid.UUID, from, to Status) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok || b.Status != from {
		return NewStateConflictError("booking %s is no longer %s", id, from)
	}
	b.Status = to
	b.UpdatedAt = time.Now().UTC()
	return nil
}

func (f *fakeRepo) UpdateModification(ctx context.Context, id uuid.UUID, details Details, specialRequests StringList, totalAmount float64, serviceDate *time.Time, modifiedAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok {
		return NewNotFoundError("booking %s not found", id)
	}
	b.Details = details
	b.SpecialRequests = specialRequests
	b.TotalAmount = totalAmount
	b.ServiceDate = serviceDate
	b.ModifiedAt = &modifiedAt
	b.UpdatedAt = modifiedAt
	return nil
}

func (f *fakeRepo) CreatePayment(ctx context.Context, payment *Payment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *payment
	f.payments[payment.ID] = &cp
	return nil
}

func (f *fakeRepo) UpdatePayment(ctx context.Context, payment *Payment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *payment
	f.payments[payment.ID] = &cp
	return nil
}

func (f *fakeRepo) GetPaymentsByBookingID(ctx context.Context, bookingID uuid.UUID) ([]Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var list []Payment
	for _, p := range f.payments {
		if p.BookingID == bookingID {
			list = append(list, *p)
		}
	}
	return list, nil
}

func (f *fakeRepo) ExpirePending(ctx context.Context, now time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, b := range f.bookings {
		if b.Status == StatusPending && b.ExpiresAt.Before(now) {
			b.Status = StatusCancelled
			count++
		}
	}
	return count, nil
}

func (f *fakeRepo) CompleteElapsed(ctx context.Context, now time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, b := range f.bookings {
		if b.Status == StatusConfirmed && b.ServiceDate != nil && b.ServiceDate.Before(now) {
			b.Status = StatusCompleted
			count++
		}
	}
	return count, nil
}

func (f *fakeRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.bookings)
}

// stubDirectory serves a single fixed user profile.
type stubDirectory struct {
	profile   UserProfile
	cachedIDs []string
	getErr    error
	mu        sync.Mutex
}

func (d *stubDirectory) GetUser(ctx context.Context, userID uuid.UUID) (*UserProfile, error) {
	if d.getErr != nil {
		return nil, d.getErr
	}
	cp := d.profile
	cp.ID = userID
	return &cp, nil
}

func (d *stubDirectory) SetPaymentCustomerID(ctx context.Context, userID uuid.UUID, customerID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cachedIDs = append(d.cachedIDs, customerID)
	return nil
}

// erroringGateway simulates a provider that cannot be reached at all.
type erroringGateway struct{}

func (erroringGateway) Charge(ctx context.Context, req *payments.ChargeRequest) (*payments.ChargeResponse, error) {
	return nil, errors.New("gateway unreachable")
}

func (erroringGateway) Refund(ctx context.Context, transactionID string, amountMinor int64) (*payments.RefundResponse, error) {
	return nil, errors.New("gateway unreachable")
}

func (erroringGateway) Name() string { return "erroring" }

// countingInventory records reserve and restore calls so tests can
// check that the two stay balanced across the lifecycle.
type countingInventory struct {
	mu       sync.Mutex
	reserved int
	restored int
}

func (c *countingInventory) ReserveUnits(ctx context.Context, booking *Booking) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reserved++
	return nil
}

func (c *countingInventory) RestoreUnits(ctx context.Context, booking *Booking) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.restored++
	return nil
}

// fixedDiff recalculates modification cost to a constant difference.
type fixedDiff struct{ diff float64 }

func (f fixedDiff) PriceDifference(ctx context.Context, booking *Booking, mods *Details) (float64, error) {
	return f.diff, nil
}

type testEnv struct {
	repo    *fakeRepo
	gateway *payments.MockGateway
	dir     *stubDirectory
	svc     Service
	now     *time.Time
}

func newTestEnv(t *testing.T, opts ...Option) *testEnv {
	t.Helper()

	repo := newFakeRepo()
	gateway := payments.NewMockGateway(&payments.MockGatewayConfig{SuccessRate: 1.0})
	dir := &stubDirectory{profile: UserProfile{
		Email:     "traveler@example.com",
		FirstName: "Ada",
		LastName:  "Lovelace",
	}}

	start := time.Now().UTC()
	now := &start

	base := []Option{WithClock(func() time.Time { return *now })}
	base = append(base, opts...)

	svc := NewService(repo, pricing.NewCalculator(), gateway, dir, Config{
		HoldWindow:      24 * time.Hour,
		DefaultCurrency: "usd",
	}, base...)

	return &testEnv{repo: repo, gateway: gateway, dir: dir, svc: svc, now: now}
}

func hotelRequest(amount float64) *CreateBookingRequest {
	checkOut := time.Now().UTC().Add(96 * time.Hour)
	return &CreateBookingRequest{
		BookingType: "hotel",
		UserID:      uuid.New(),
		ItemID:      "hotel-grand-001",
		TotalAmount: amount,
		Details:     Details{Hotel: &HotelDetails{Rooms: 1, Guests: 2, CheckOut: &checkOut}},
	}
}

func TestCreateBookingPricesHotel(t *testing.T) {
	env := newTestEnv(t)

	conf, err := env.svc.CreateBooking(context.Background(), hotelRequest(100))
	require.NoError(t, err)

	assert.Equal(t, 114.0, conf.TotalAmount)
	assert.Equal(t, 2.0, conf.ServiceFee)
	assert.Equal(t, 12.0, conf.TaxAmount)
	assert.Equal(t, string(StatusPending), conf.Status)
	assert.Len(t, conf.ConfirmationNumber, 8)

	stored, err := env.svc.GetBooking(context.Background(), conf.BookingID)
	require.NoError(t, err)
	assert.Equal(t, StatusPending, stored.Status)
	assert.Equal(t, 114.0, stored.TotalAmount)
	assert.Equal(t, stored.CreatedAt.Add(24*time.Hour), stored.ExpiresAt)
}

func TestCreateBookingValidationOrder(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	req := hotelRequest(100)
	req.UserID = uuid.Nil
	_, err := env.svc.CreateBooking(ctx, req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user_id")

	req = hotelRequest(100)
	req.ItemID = ""
	_, err = env.svc.CreateBooking(ctx, req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "item_id")

	req = hotelRequest(0)
	_, err = env.svc.CreateBooking(ctx, req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "total_amount")

	req = hotelRequest(100)
	req.BookingType = "cruise"
	_, err = env.svc.CreateBooking(ctx, req)
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))

	// Nothing was persisted by any rejected request.
	assert.Equal(t, 0, env.repo.count())
}

func TestCreateFlightWithoutPassengersRejected(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.CreateBooking(context.Background(), &CreateBookingRequest{
		BookingType: "flight",
		UserID:      uuid.New(),
		ItemID:      "flight-tb-100",
		TotalAmount: 500,
		Details:     Details{},
	})

	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))
	assert.Equal(t, 0, env.repo.count())
}

func TestProcessPaymentConfirmsBooking(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	conf, err := env.svc.CreateBooking(ctx, hotelRequest(100))
	require.NoError(t, err)

	result, err := env.svc.ProcessPayment(ctx, conf.BookingID, &ProcessPaymentRequest{PaymentMethodID: "pm_card_visa"})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.NotEmpty(t, result.TransactionID)
	assert.Equal(t, string(StatusConfirmed), result.BookingStatus)

	stored, err := env.svc.GetBooking(ctx, conf.BookingID)
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, stored.Status)

	// The resolved provider customer is cached on the account.
	assert.NotEmpty(t, env.dir.cachedIDs)
}

func TestProcessPaymentRequiresPendingStatus(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	conf, err := env.svc.CreateBooking(ctx, hotelRequest(100))
	require.NoError(t, err)

	_, err = env.svc.ProcessPayment(ctx, conf.BookingID, &ProcessPaymentRequest{PaymentMethodID: "pm_card_visa"})
	require.NoError(t, err)

	// Second attempt hits a confirmed booking.
	_, err = env.svc.ProcessPayment(ctx, conf.BookingID, &ProcessPaymentRequest{PaymentMethodID: "pm_card_visa"})
	require.Error(t, err)
	assert.Equal(t, KindStateConflict, KindOf(err))

	stored, err := env.svc.GetBooking(ctx, conf.BookingID)
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, stored.Status)
}

func TestProcessPaymentDeclineFailsClosed(t *testing.T) {
	env := newTestEnv(t)
	env.gateway.SetSuccessRate(0)
	ctx := context.Background()

	conf, err := env.svc.CreateBooking(ctx, hotelRequest(100))
	require.NoError(t, err)

	result, err := env.svc.ProcessPayment(ctx, conf.BookingID, &ProcessPaymentRequest{PaymentMethodID: "pm_card_visa"})
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Error)

	stored, err := env.svc.GetBooking(ctx, conf.BookingID)
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, stored.Status)
}

func TestProcessPaymentGatewayErrorFailsClosed(t *testing.T) {
	repo := newFakeRepo()
	dir := &stubDirectory{profile: UserProfile{Email: "traveler@example.com"}}
	svc := NewService(repo, pricing.NewCalculator(), erroringGateway{}, dir, Config{})

	ctx := context.Background()
	conf, err := svc.CreateBooking(ctx, hotelRequest(100))
	require.NoError(t, err)

	result, err := svc.ProcessPayment(ctx, conf.BookingID, &ProcessPaymentRequest{PaymentMethodID: "pm_card_visa"})
	require.NoError(t, err)
	assert.False(t, result.Success)

	stored, err := svc.GetBooking(ctx, conf.BookingID)
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, stored.Status)
}

func TestProcessPaymentCustomerLookupFailureFailsClosed(t *testing.T) {
	env := newTestEnv(t)
	env.dir.getErr = errors.New("directory offline")
	ctx := context.Background()

	conf, err := env.svc.CreateBooking(ctx, hotelRequest(100))
	require.NoError(t, err)

	result, err := env.svc.ProcessPayment(ctx, conf.BookingID, &ProcessPaymentRequest{PaymentMethodID: "pm_card_visa"})
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "directory offline")

	stored, err := env.svc.GetBooking(ctx, conf.BookingID)
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, stored.Status)
}

func TestProcessPaymentUnknownBooking(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.ProcessPayment(context.Background(), uuid.New(), &ProcessPaymentRequest{PaymentMethodID: "pm_card_visa"})
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestCancelConfirmedBookingRefundsFullAmount(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	conf, err := env.svc.CreateBooking(ctx, hotelRequest(100))
	require.NoError(t, err)

	_, err = env.svc.ProcessPayment(ctx, conf.BookingID, &ProcessPaymentRequest{PaymentMethodID: "pm_card_visa"})
	require.NoError(t, err)

	result, err := env.svc.CancelBooking(ctx, conf.BookingID, &CancelBookingRequest{Reason: "change of plans"})
	require.NoError(t, err)
	assert.True(t, result.Success)
	require.NotNil(t, result.Refund)
	assert.Equal(t, 114.0, result.Refund.RefundAmount)
	assert.Equal(t, "3-5 business days", result.Refund.ExpectedWithin)

	stored, err := env.svc.GetBooking(ctx, conf.BookingID)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, stored.Status)
}

func TestCancelPendingBookingSkipsRefund(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	conf, err := env.svc.CreateBooking(ctx, hotelRequest(100))
	require.NoError(t, err)

	result, err := env.svc.CancelBooking(ctx, conf.BookingID, &CancelBookingRequest{})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Nil(t, result.Refund)
}

func TestCancelPendingBookingLeavesInventoryUntouched(t *testing.T) {
	inventory := &countingInventory{}
	env := newTestEnv(t, WithInventoryAdjuster(inventory))
	ctx := context.Background()

	conf, err := env.svc.CreateBooking(ctx, hotelRequest(100))
	require.NoError(t, err)

	// Units are reserved on payment success only. A pending booking
	// never reserved anything, so cancelling it must not restore.
	result, err := env.svc.CancelBooking(ctx, conf.BookingID, &CancelBookingRequest{})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 0, inventory.reserved)
	assert.Equal(t, 0, inventory.restored)
}

func TestCancelConfirmedBookingRestoresReservedUnits(t *testing.T) {
	inventory := &countingInventory{}
	env := newTestEnv(t, WithInventoryAdjuster(inventory))
	ctx := context.Background()

	conf, err := env.svc.CreateBooking(ctx, hotelRequest(100))
	require.NoError(t, err)

	_, err = env.svc.ProcessPayment(ctx, conf.BookingID, &ProcessPaymentRequest{PaymentMethodID: "pm_card_visa"})
	require.NoError(t, err)
	assert.Equal(t, 1, inventory.reserved)

	_, err = env.svc.CancelBooking(ctx, conf.BookingID, &CancelBookingRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, inventory.restored)
}

func TestCancelConfirmedBookingMarksPaymentRefunded(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	conf, err := env.svc.CreateBooking(ctx, hotelRequest(100))
	require.NoError(t, err)

	_, err = env.svc.ProcessPayment(ctx, conf.BookingID, &ProcessPaymentRequest{PaymentMethodID: "pm_card_visa"})
	require.NoError(t, err)

	_, err = env.svc.CancelBooking(ctx, conf.BookingID, &CancelBookingRequest{Reason: "change of plans"})
	require.NoError(t, err)

	records, err := env.repo.GetPaymentsByBookingID(ctx, conf.BookingID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, PaymentRefunded, records[0].Status)
	require.NotNil(t, records[0].ProcessedAt)
}

func TestCancelAfterWindowRejected(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	conf, err := env.svc.CreateBooking(ctx, hotelRequest(100))
	require.NoError(t, err)

	_, err = env.svc.ProcessPayment(ctx, conf.BookingID, &ProcessPaymentRequest{PaymentMethodID: "pm_card_visa"})
	require.NoError(t, err)

	*env.now = env.now.Add(25 * time.Hour)

	_, err = env.svc.CancelBooking(ctx, conf.BookingID, &CancelBookingRequest{})
	require.Error(t, err)
	assert.Equal(t, KindStateConflict, KindOf(err))

	stored, err := env.svc.GetBooking(ctx, conf.BookingID)
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, stored.Status)
}

func TestCancelTerminalBookingRejected(t *testing.T) {
	env := newTestEnv(t)
	env.gateway.SetSuccessRate(0)
	ctx := context.Background()

	conf, err := env.svc.CreateBooking(ctx, hotelRequest(100))
	require.NoError(t, err)

	_, err = env.svc.ProcessPayment(ctx, conf.BookingID, &ProcessPaymentRequest{PaymentMethodID: "pm_card_visa"})
	require.NoError(t, err)

	_, err = env.svc.CancelBooking(ctx, conf.BookingID, &CancelBookingRequest{})
	require.Error(t, err)
	assert.Equal(t, KindStateConflict, KindOf(err))

	stored, err := env.svc.GetBooking(ctx, conf.BookingID)
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, stored.Status)
}

func TestModifyBookingAppliesPriceIncrease(t *testing.T) {
	env := newTestEnv(t, WithCostRecalculator(fixedDiff{diff: 25}))
	ctx := context.Background()

	conf, err := env.svc.CreateBooking(ctx, hotelRequest(100))
	require.NoError(t, err)

	result, err := env.svc.ModifyBooking(ctx, conf.BookingID, &ModifyBookingRequest{
		Modifications: Details{Hotel: &HotelDetails{Rooms: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, 25.0, result.PriceDifference)
	assert.Equal(t, 25.0, result.AdditionalPaymentRequired)
	assert.Equal(t, 0.0, result.RefundAmount)
	assert.Equal(t, 139.0, result.NewTotalAmount)

	stored, err := env.svc.GetBooking(ctx, conf.BookingID)
	require.NoError(t, err)
	assert.Equal(t, 139.0, stored.TotalAmount)
	assert.Equal(t, 2, stored.Details.Hotel.Rooms)
	require.NotNil(t, stored.ModifiedAt)
}

func TestModifyBookingReportsRefundForDecrease(t *testing.T) {
	env := newTestEnv(t, WithCostRecalculator(fixedDiff{diff: -10}))
	ctx := context.Background()

	conf, err := env.svc.CreateBooking(ctx, hotelRequest(100))
	require.NoError(t, err)

	result, err := env.svc.ModifyBooking(ctx, conf.BookingID, &ModifyBookingRequest{
		Modifications: Details{Hotel: &HotelDetails{Rooms: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, -10.0, result.PriceDifference)
	assert.Equal(t, 10.0, result.RefundAmount)
	assert.Equal(t, 0.0, result.AdditionalPaymentRequired)
	assert.Equal(t, 104.0, result.NewTotalAmount)
}

func TestModifyBookingDefaultRecalculatorKeepsTotal(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	conf, err := env.svc.CreateBooking(ctx, hotelRequest(100))
	require.NoError(t, err)

	result, err := env.svc.ModifyBooking(ctx, conf.BookingID, &ModifyBookingRequest{
		Modifications: Details{Hotel: &HotelDetails{Rooms: 3}},
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.PriceDifference)
	assert.Equal(t, 114.0, result.NewTotalAmount)
}

func TestModifyAfterWindowRejected(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	conf, err := env.svc.CreateBooking(ctx, hotelRequest(100))
	require.NoError(t, err)

	*env.now = env.now.Add(25 * time.Hour)

	_, err = env.svc.ModifyBooking(ctx, conf.BookingID, &ModifyBookingRequest{
		Modifications: Details{Hotel: &HotelDetails{Rooms: 2}},
	})
	require.Error(t, err)
	assert.Equal(t, KindStateConflict, KindOf(err))
}

func TestGroupBookingsOrderedByCreation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	groupID := uuid.New()

	first := hotelRequest(100)
	first.GroupBookingID = &groupID
	confA, err := env.svc.CreateBooking(ctx, first)
	require.NoError(t, err)

	*env.now = env.now.Add(time.Minute)

	second := hotelRequest(200)
	second.GroupBookingID = &groupID
	confB, err := env.svc.CreateBooking(ctx, second)
	require.NoError(t, err)

	list, err := env.svc.GetGroupBookings(ctx, groupID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, confA.BookingID, list[0].ID)
	assert.Equal(t, confB.BookingID, list[1].ID)
}

func TestExpirePendingBookings(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	conf, err := env.svc.CreateBooking(ctx, hotelRequest(100))
	require.NoError(t, err)

	count, err := env.svc.ExpirePendingBookings(ctx, env.now.Add(25*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	stored, err := env.svc.GetBooking(ctx, conf.BookingID)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, stored.Status)
}

func TestCompleteElapsedBookings(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	conf, err := env.svc.CreateBooking(ctx, hotelRequest(100))
	require.NoError(t, err)

	_, err = env.svc.ProcessPayment(ctx, conf.BookingID, &ProcessPaymentRequest{PaymentMethodID: "pm_card_visa"})
	require.NoError(t, err)

	count, err := env.svc.CompleteElapsedBookings(ctx, env.now.Add(200*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	stored, err := env.svc.GetBooking(ctx, conf.BookingID)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, stored.Status)
}
