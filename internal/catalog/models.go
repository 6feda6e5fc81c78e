package catalog

import (
	"time"

	"github.com/google/uuid"
)

// Destination groups the bookable content for one travel location.
type Destination struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name        string    `gorm:"uniqueIndex;not null" json:"name"`
	Country     string    `gorm:"not null" json:"country"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Hotel struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	DestinationID  uuid.UUID `gorm:"type:uuid;not null;index" json:"destination_id"`
	Name           string    `gorm:"not null" json:"name"`
	Description    string    `json:"description,omitempty"`
	Address        string    `json:"address,omitempty"`
	StarRating     int       `gorm:"check:star_rating BETWEEN 1 AND 5" json:"star_rating"`
	NightlyRate    float64   `gorm:"not null;check:nightly_rate > 0" json:"nightly_rate"`
	AvailableUnits int       `gorm:"not null;default:0;check:available_units >= 0" json:"available_units"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type Restaurant struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	DestinationID  uuid.UUID `gorm:"type:uuid;not null;index" json:"destination_id"`
	Name           string    `gorm:"not null" json:"name"`
	Cuisine        string    `json:"cuisine,omitempty"`
	PriceRange     string    `json:"price_range,omitempty"` // $, $$, $$$
	AveragePrice   float64   `json:"average_price,omitempty"`
	AvailableUnits int       `gorm:"not null;default:0;check:available_units >= 0" json:"available_units"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type Activity struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	DestinationID  uuid.UUID `gorm:"type:uuid;not null;index" json:"destination_id"`
	Name           string    `gorm:"not null" json:"name"`
	Category       string    `json:"category,omitempty"`
	Description    string    `json:"description,omitempty"`
	Price          float64   `gorm:"not null;check:price >= 0" json:"price"`
	DurationHours  float64   `json:"duration_hours,omitempty"`
	AvailableUnits int       `gorm:"not null;default:0;check:available_units >= 0" json:"available_units"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ItemType identifies which catalog table an item lives in.
type ItemType string

const (
	ItemHotel      ItemType = "hotel"
	ItemRestaurant ItemType = "restaurant"
	ItemActivity   ItemType = "activity"
)

func (t ItemType) IsValid() bool {
	switch t {
	case ItemHotel, ItemRestaurant, ItemActivity:
		return true
	}
	return false
}
