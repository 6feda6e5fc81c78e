package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds indexes the sweeper and group listing queries depend on
func MigrateConstraints(db *gorm.DB) error {
	// Index for group listing ordered by creation time
	err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_bookings_group_created
		ON bookings (group_id, created_at);
	`).Error
	if err != nil {
		return err
	}

	// Partial index for the pending-expiry sweep
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_bookings_pending_expiry
		ON bookings (expires_at)
		WHERE status = 'pending';
	`).Error
	if err != nil {
		return err
	}

	// Partial index for the completion sweep over confirmed bookings
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_bookings_confirmed_service_date
		ON bookings (service_date)
		WHERE status = 'confirmed';
	`).Error
	if err != nil {
		return err
	}

	return nil
}
