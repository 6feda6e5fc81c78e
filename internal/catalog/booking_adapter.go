package catalog

import (
	"context"
	"errors"

	"tripbook/internal/bookings"
	"tripbook/internal/shared/constants"
	"tripbook/pkg/cache"
	"tripbook/pkg/logger"

	"github.com/google/uuid"
)

// BookingAdapter backs the booking service's availability and inventory
// seams with the catalog tables. Hotels and restaurants are unit-counted;
// flights, car rentals and packages are sourced externally and treated
// as always available.
type BookingAdapter struct {
	repo         Repository
	cacheService cache.Service
	log          *logger.Logger
}

func NewBookingAdapter(repo Repository, cacheService cache.Service) *BookingAdapter {
	return &BookingAdapter{
		repo:         repo,
		cacheService: cacheService,
		log:          logger.GetDefault(),
	}
}

var (
	_ bookings.AvailabilityChecker = (*BookingAdapter)(nil)
	_ bookings.InventoryAdjuster   = (*BookingAdapter)(nil)
)

func (a *BookingAdapter) CheckAvailability(ctx context.Context, bookingType bookings.BookingType, itemID string, details *bookings.Details) (bool, error) {
	itemType, ok := catalogItemType(bookingType)
	if !ok {
		return true, nil
	}

	id, err := uuid.Parse(itemID)
	if err != nil {
		// Catalog-backed items are addressed by UUID. Anything else is
		// an external reference we cannot verify.
		return true, nil
	}

	units, err := a.availableUnits(ctx, itemType, id)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return false, nil
		}
		return false, err
	}

	return units >= unitsRequested(bookingType, details), nil
}

func (a *BookingAdapter) ReserveUnits(ctx context.Context, booking *bookings.Booking) error {
	return a.adjust(ctx, booking, -unitsRequested(booking.BookingType, &booking.Details))
}

func (a *BookingAdapter) RestoreUnits(ctx context.Context, booking *bookings.Booking) error {
	return a.adjust(ctx, booking, unitsRequested(booking.BookingType, &booking.Details))
}

func (a *BookingAdapter) adjust(ctx context.Context, booking *bookings.Booking, delta int) error {
	itemType, ok := catalogItemType(booking.BookingType)
	if !ok {
		return nil
	}

	id, err := uuid.Parse(booking.ItemID)
	if err != nil {
		return nil
	}

	if err := a.repo.AdjustUnits(ctx, itemType, id, delta); err != nil {
		return err
	}

	a.invalidateAvailability(ctx, itemType, id)
	return nil
}

// availableUnits serves the count through the short-TTL availability
// cache so browse-heavy traffic stays off the catalog tables.
func (a *BookingAdapter) availableUnits(ctx context.Context, itemType ItemType, id uuid.UUID) (int, error) {
	if a.cacheService == nil {
		return a.repo.AvailableUnits(ctx, itemType, id)
	}

	cacheKey := constants.BuildUnitAvailabilityKey(string(itemType), id.String())

	var units int
	err := a.cacheService.GetOrSet(ctx, cacheKey, constants.TTL_UNIT_AVAILABILITY, func() (interface{}, error) {
		return a.repo.AvailableUnits(ctx, itemType, id)
	}, &units)
	if err != nil {
		return 0, err
	}
	return units, nil
}

func (a *BookingAdapter) invalidateAvailability(ctx context.Context, itemType ItemType, id uuid.UUID) {
	if a.cacheService == nil {
		return
	}
	cacheKey := constants.BuildUnitAvailabilityKey(string(itemType), id.String())
	if err := a.cacheService.Delete(ctx, cacheKey); err != nil {
		a.log.WithError(err).WarnContext(ctx, "failed to invalidate availability cache", "key", cacheKey)
	}
}

// catalogItemType maps booking types onto catalog tables. The second
// return reports whether the type is catalog-backed at all.
func catalogItemType(bookingType bookings.BookingType) (ItemType, bool) {
	switch bookingType {
	case bookings.TypeHotel:
		return ItemHotel, true
	case bookings.TypeRestaurant:
		return ItemRestaurant, true
	default:
		return "", false
	}
}

// unitsRequested derives how many units a booking consumes. Hotels take
// one unit per room, restaurants one table per booking.
func unitsRequested(bookingType bookings.BookingType, details *bookings.Details) int {
	if bookingType == bookings.TypeHotel && details != nil && details.Hotel != nil && details.Hotel.Rooms > 1 {
		return details.Hotel.Rooms
	}
	return 1
}
