package catalog

import (
	"context"
	"fmt"

	"tripbook/internal/shared/constants"
	"tripbook/pkg/cache"
	"tripbook/pkg/logger"

	"github.com/google/uuid"
)

type Service interface {
	ListDestinations(ctx context.Context, filters DestinationFilters) (*PaginatedDestinations, error)
	GetDestination(ctx context.Context, id uuid.UUID) (*Destination, error)
	GetHotels(ctx context.Context, destinationID uuid.UUID) ([]Hotel, error)
	GetRestaurants(ctx context.Context, destinationID uuid.UUID) ([]Restaurant, error)
	GetActivities(ctx context.Context, destinationID uuid.UUID) ([]Activity, error)
	GetHotel(ctx context.Context, id uuid.UUID) (*Hotel, error)
	GetRestaurant(ctx context.Context, id uuid.UUID) (*Restaurant, error)
	GetActivity(ctx context.Context, id uuid.UUID) (*Activity, error)
}

type service struct {
	repo         Repository
	cacheService cache.Service
	log          *logger.Logger
}

// NewService builds the catalog read API. cacheService may be nil, in
// which case every read goes to the database.
func NewService(repo Repository, cacheService cache.Service) Service {
	return &service{
		repo:         repo,
		cacheService: cacheService,
		log:          logger.GetDefault(),
	}
}

var _ Service = (*service)(nil)

func (s *service) ListDestinations(ctx context.Context, filters DestinationFilters) (*PaginatedDestinations, error) {
	if filters.Page <= 0 {
		filters.Page = 1
	}
	if filters.Limit <= 0 {
		filters.Limit = 10
	}

	// Filtered listings bypass the cache; only the plain pages are hot.
	if s.cacheService == nil || filters.Search != "" || filters.Country != "" {
		return s.repo.GetDestinations(ctx, filters)
	}

	cacheKey := constants.BuildDestinationsListKey(filters.Page, filters.Limit)

	var result PaginatedDestinations
	err := s.cacheService.GetOrSet(ctx, cacheKey, constants.TTL_DESTINATIONS_LIST, func() (interface{}, error) {
		return s.repo.GetDestinations(ctx, filters)
	}, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list destinations: %w", err)
	}
	return &result, nil
}

func (s *service) GetDestination(ctx context.Context, id uuid.UUID) (*Destination, error) {
	if s.cacheService == nil {
		return s.repo.GetDestinationByID(ctx, id)
	}

	cacheKey := constants.BuildDestinationKey(id.String())

	var destination Destination
	err := s.cacheService.GetOrSet(ctx, cacheKey, constants.TTL_DESTINATION, func() (interface{}, error) {
		return s.repo.GetDestinationByID(ctx, id)
	}, &destination)
	if err != nil {
		return nil, err
	}
	return &destination, nil
}

func (s *service) GetHotels(ctx context.Context, destinationID uuid.UUID) ([]Hotel, error) {
	if s.cacheService == nil {
		return s.repo.GetHotelsByDestination(ctx, destinationID)
	}

	cacheKey := constants.CACHE_KEY_HOTELS_BY_DEST + destinationID.String()

	var hotels []Hotel
	err := s.cacheService.GetOrSet(ctx, cacheKey, constants.TTL_ITEMS_BY_DEST, func() (interface{}, error) {
		return s.repo.GetHotelsByDestination(ctx, destinationID)
	}, &hotels)
	if err != nil {
		return nil, err
	}
	return hotels, nil
}

func (s *service) GetRestaurants(ctx context.Context, destinationID uuid.UUID) ([]Restaurant, error) {
	if s.cacheService == nil {
		return s.repo.GetRestaurantsByDestination(ctx, destinationID)
	}

	cacheKey := constants.CACHE_KEY_RESTAURANTS_BY_DEST + destinationID.String()

	var restaurants []Restaurant
	err := s.cacheService.GetOrSet(ctx, cacheKey, constants.TTL_ITEMS_BY_DEST, func() (interface{}, error) {
		return s.repo.GetRestaurantsByDestination(ctx, destinationID)
	}, &restaurants)
	if err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (s *service) GetActivities(ctx context.Context, destinationID uuid.UUID) ([]Activity, error) {
	if s.cacheService == nil {
		return s.repo.GetActivitiesByDestination(ctx, destinationID)
	}

	cacheKey := constants.CACHE_KEY_ACTIVITIES_BY_DEST + destinationID.String()

	var activities []Activity
	err := s.cacheService.GetOrSet(ctx, cacheKey, constants.TTL_ITEMS_BY_DEST, func() (interface{}, error) {
		return s.repo.GetActivitiesByDestination(ctx, destinationID)
	}, &activities)
	if err != nil {
		return nil, err
	}
	return activities, nil
}

func (s *service) GetHotel(ctx context.Context, id uuid.UUID) (*Hotel, error) {
	if s.cacheService == nil {
		return s.repo.GetHotelByID(ctx, id)
	}

	cacheKey := constants.BuildItemDetailKey(string(ItemHotel), id.String())

	var hotel Hotel
	err := s.cacheService.GetOrSet(ctx, cacheKey, constants.TTL_ITEM_DETAIL, func() (interface{}, error) {
		return s.repo.GetHotelByID(ctx, id)
	}, &hotel)
	if err != nil {
		return nil, err
	}
	return &hotel, nil
}

func (s *service) GetRestaurant(ctx context.Context, id uuid.UUID) (*Restaurant, error) {
	if s.cacheService == nil {
		return s.repo.GetRestaurantByID(ctx, id)
	}

	cacheKey := constants.BuildItemDetailKey(string(ItemRestaurant), id.String())

	var restaurant Restaurant
	err := s.cacheService.GetOrSet(ctx, cacheKey, constants.TTL_ITEM_DETAIL, func() (interface{}, error) {
		return s.repo.GetRestaurantByID(ctx, id)
	}, &restaurant)
	if err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (s *service) GetActivity(ctx context.Context, id uuid.UUID) (*Activity, error) {
	if s.cacheService == nil {
		return s.repo.GetActivityByID(ctx, id)
	}

	cacheKey := constants.BuildItemDetailKey(string(ItemActivity), id.String())

	var activity Activity
	err := s.cacheService.GetOrSet(ctx, cacheKey, constants.TTL_ITEM_DETAIL, func() (interface{}, error) {
		return s.repo.GetActivityByID(ctx, id)
	}, &activity)
	if err != nil {
		return nil, err
	}
	return &activity, nil
}
