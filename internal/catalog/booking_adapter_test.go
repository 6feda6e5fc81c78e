package catalog

import (
	"context"
	"testing"

	"tripbook/internal/bookings"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInventoryRepo struct {
	Repository
	units map[uuid.UUID]int
}

func newFakeInventoryRepo() *fakeInventoryRepo {
	return &fakeInventoryRepo{units: make(map[uuid.UUID]int)}
}

func (f *fakeInventoryRepo) AvailableUnits(ctx context.Context, itemType ItemType, itemID uuid.UUID) (int, error) {
	units, ok := f.units[itemID]
	if !ok {
		return 0, ErrItemNotFound
	}
	return units, nil
}

func (f *fakeInventoryRepo) AdjustUnits(ctx context.Context, itemType ItemType, itemID uuid.UUID, delta int) error {
	units, ok := f.units[itemID]
	if !ok {
		return ErrItemNotFound
	}
	if units+delta < 0 {
		return ErrInsufficientUnits
	}
	f.units[itemID] = units + delta
	return nil
}

func hotelBooking(itemID uuid.UUID, rooms int) *bookings.Booking {
	return &bookings.Booking{
		ID:          uuid.New(),
		BookingType: bookings.TypeHotel,
		ItemID:      itemID.String(),
		Details:     bookings.Details{Hotel: &bookings.HotelDetails{Rooms: rooms}},
	}
}

func TestCheckAvailabilityHotelUnits(t *testing.T) {
	repo := newFakeInventoryRepo()
	hotelID := uuid.New()
	repo.units[hotelID] = 2
	adapter := NewBookingAdapter(repo, nil)
	ctx := context.Background()

	available, err := adapter.CheckAvailability(ctx, bookings.TypeHotel, hotelID.String(), &bookings.Details{
		Hotel: &bookings.HotelDetails{Rooms: 2},
	})
	require.NoError(t, err)
	assert.True(t, available)

	available, err = adapter.CheckAvailability(ctx, bookings.TypeHotel, hotelID.String(), &bookings.Details{
		Hotel: &bookings.HotelDetails{Rooms: 3},
	})
	require.NoError(t, err)
	assert.False(t, available)
}

func TestCheckAvailabilityUnknownItem(t *testing.T) {
	adapter := NewBookingAdapter(newFakeInventoryRepo(), nil)

	available, err := adapter.CheckAvailability(context.Background(), bookings.TypeHotel, uuid.New().String(), nil)
	require.NoError(t, err)
	assert.False(t, available)
}

func TestCheckAvailabilityExternalTypesAlwaysAvailable(t *testing.T) {
	adapter := NewBookingAdapter(newFakeInventoryRepo(), nil)
	ctx := context.Background()

	for _, bookingType := range []bookings.BookingType{bookings.TypeFlight, bookings.TypeCarRental, bookings.TypePackage} {
		available, err := adapter.CheckAvailability(ctx, bookingType, "external-ref-42", nil)
		require.NoError(t, err)
		assert.True(t, available, "type %s", bookingType)
	}
}

func TestCheckAvailabilityNonUUIDCatalogReference(t *testing.T) {
	adapter := NewBookingAdapter(newFakeInventoryRepo(), nil)

	available, err := adapter.CheckAvailability(context.Background(), bookings.TypeHotel, "hotel-grand-001", nil)
	require.NoError(t, err)
	assert.True(t, available)
}

func TestReserveAndRestoreUnits(t *testing.T) {
	repo := newFakeInventoryRepo()
	hotelID := uuid.New()
	repo.units[hotelID] = 5
	adapter := NewBookingAdapter(repo, nil)
	ctx := context.Background()

	booking := hotelBooking(hotelID, 2)

	require.NoError(t, adapter.ReserveUnits(ctx, booking))
	assert.Equal(t, 3, repo.units[hotelID])

	require.NoError(t, adapter.RestoreUnits(ctx, booking))
	assert.Equal(t, 5, repo.units[hotelID])
}

func TestReserveUnitsInsufficientStock(t *testing.T) {
	repo := newFakeInventoryRepo()
	hotelID := uuid.New()
	repo.units[hotelID] = 1
	adapter := NewBookingAdapter(repo, nil)

	err := adapter.ReserveUnits(context.Background(), hotelBooking(hotelID, 2))
	assert.ErrorIs(t, err, ErrInsufficientUnits)
	assert.Equal(t, 1, repo.units[hotelID])
}

func TestReserveUnitsSkipsExternalTypes(t *testing.T) {
	repo := newFakeInventoryRepo()
	adapter := NewBookingAdapter(repo, nil)

	booking := &bookings.Booking{
		ID:          uuid.New(),
		BookingType: bookings.TypeFlight,
		ItemID:      "flight-tb-100",
	}

	assert.NoError(t, adapter.ReserveUnits(context.Background(), booking))
	assert.NoError(t, adapter.RestoreUnits(context.Background(), booking))
}
