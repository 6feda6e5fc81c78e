package database

import (
	"tripbook/internal/bookings"
	"tripbook/internal/catalog"
	"tripbook/internal/users"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},
		&catalog.Destination{},
		&catalog.Hotel{},
		&catalog.Restaurant{},
		&catalog.Activity{},
		&bookings.Booking{},
		&bookings.Payment{},
	)
}
