package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrDestinationNotFound = errors.New("destination not found")
	ErrItemNotFound        = errors.New("catalog item not found")
	ErrInsufficientUnits   = errors.New("insufficient available units")
)

// Repository interface for catalog operations
type Repository interface {
	// Destinations
	GetDestinations(ctx context.Context, filters DestinationFilters) (*PaginatedDestinations, error)
	GetDestinationByID(ctx context.Context, id uuid.UUID) (*Destination, error)

	// Items by destination
	GetHotelsByDestination(ctx context.Context, destinationID uuid.UUID) ([]Hotel, error)
	GetRestaurantsByDestination(ctx context.Context, destinationID uuid.UUID) ([]Restaurant, error)
	GetActivitiesByDestination(ctx context.Context, destinationID uuid.UUID) ([]Activity, error)

	// Item lookups
	GetHotelByID(ctx context.Context, id uuid.UUID) (*Hotel, error)
	GetRestaurantByID(ctx context.Context, id uuid.UUID) (*Restaurant, error)
	GetActivityByID(ctx context.Context, id uuid.UUID) (*Activity, error)

	// Inventory
	AvailableUnits(ctx context.Context, itemType ItemType, itemID uuid.UUID) (int, error)
	AdjustUnits(ctx context.Context, itemType ItemType, itemID uuid.UUID, delta int) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetDestinations(ctx context.Context, filters DestinationFilters) (*PaginatedDestinations, error) {
	var destinations []Destination
	var total int64

	query := r.db.WithContext(ctx).Model(&Destination{})

	if filters.Search != "" {
		searchPattern := fmt.Sprintf("%%%s%%", filters.Search)
		query = query.Where("name ILIKE ? OR country ILIKE ?", searchPattern, searchPattern)
	}
	if filters.Country != "" {
		query = query.Where("country = ?", filters.Country)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (filters.Page - 1) * filters.Limit
	if err := query.Order("name ASC").Offset(offset).Limit(filters.Limit).Find(&destinations).Error; err != nil {
		return nil, err
	}

	totalPages := int((total + int64(filters.Limit) - 1) / int64(filters.Limit))

	return &PaginatedDestinations{
		Destinations: destinations,
		TotalCount:   total,
		Page:         filters.Page,
		Limit:        filters.Limit,
		TotalPages:   totalPages,
	}, nil
}

func (r *repository) GetDestinationByID(ctx context.Context, id uuid.UUID) (*Destination, error) {
	var destination Destination
	err := r.db.WithContext(ctx).First(&destination, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDestinationNotFound
		}
		return nil, err
	}
	return &destination, nil
}

func (r *repository) GetHotelsByDestination(ctx context.Context, destinationID uuid.UUID) ([]Hotel, error) {
	var hotels []Hotel
	err := r.db.WithContext(ctx).
		Where("destination_id = ?", destinationID).
		Order("star_rating DESC, name ASC").
		Find(&hotels).Error
	return hotels, err
}

func (r *repository) GetRestaurantsByDestination(ctx context.Context, destinationID uuid.UUID) ([]Restaurant, error) {
	var restaurants []Restaurant
	err := r.db.WithContext(ctx).
		Where("destination_id = ?", destinationID).
		Order("name ASC").
		Find(&restaurants).Error
	return restaurants, err
}

func (r *repository) GetActivitiesByDestination(ctx context.Context, destinationID uuid.UUID) ([]Activity, error) {
	var activities []Activity
	err := r.db.WithContext(ctx).
		Where("destination_id = ?", destinationID).
		Order("name ASC").
		Find(&activities).Error
	return activities, err
}

func (r *repository) GetHotelByID(ctx context.Context, id uuid.UUID) (*Hotel, error) {
	var hotel Hotel
	if err := r.db.WithContext(ctx).First(&hotel, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return &hotel, nil
}

func (r *repository) GetRestaurantByID(ctx context.Context, id uuid.UUID) (*Restaurant, error) {
	var restaurant Restaurant
	if err := r.db.WithContext(ctx).First(&restaurant, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return &restaurant, nil
}

func (r *repository) GetActivityByID(ctx context.Context, id uuid.UUID) (*Activity, error) {
	var activity Activity
	if err := r.db.WithContext(ctx).First(&activity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return &activity, nil
}

func (r *repository) AvailableUnits(ctx context.Context, itemType ItemType, itemID uuid.UUID) (int, error) {
	model, err := modelFor(itemType)
	if err != nil {
		return 0, err
	}

	var units int
	result := r.db.WithContext(ctx).
		Model(model).
		Select("available_units").
		Where("id = ?", itemID).
		Scan(&units)
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, ErrItemNotFound
	}
	return units, nil
}

// AdjustUnits moves available_units by delta. Decrements are conditional
// on sufficient stock so two concurrent reservations can never drive the
// count negative.
func (r *repository) AdjustUnits(ctx context.Context, itemType ItemType, itemID uuid.UUID, delta int) error {
	model, err := modelFor(itemType)
	if err != nil {
		return err
	}

	query := r.db.WithContext(ctx).Model(model).Where("id = ?", itemID)
	if delta < 0 {
		query = query.Where("available_units >= ?", -delta)
	}

	result := query.Update("available_units", gorm.Expr("available_units + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		if delta < 0 {
			return ErrInsufficientUnits
		}
		return ErrItemNotFound
	}
	return nil
}

func modelFor(itemType ItemType) (interface{}, error) {
	switch itemType {
	case ItemHotel:
		return &Hotel{}, nil
	case ItemRestaurant:
		return &Restaurant{}, nil
	case ItemActivity:
		return &Activity{}, nil
	default:
		return nil, fmt.Errorf("unknown catalog item type %q", itemType)
	}
}

// ============= FILTER STRUCTS =============

type DestinationFilters struct {
	Page    int    `form:"page" binding:"omitempty,min=1"`
	Limit   int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Search  string `form:"search"`
	Country string `form:"country"`
}

type PaginatedDestinations struct {
	Destinations []Destination `json:"destinations"`
	TotalCount   int64         `json:"total_count"`
	Page         int           `json:"page"`
	Limit        int           `json:"limit"`
	TotalPages   int           `json:"total_pages"`
}
