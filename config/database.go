package config

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() error {
	db, err := gorm.Open(postgres.Open(C.DBURL), &gorm.Config{})
	if err != nil {
		return err
	}
	DB = db
	return nil
}

// EnsureIndexes creates the constraints AutoMigrate cannot express. The
// partial unique index is what actually guarantees slot exclusivity: at most
// one CONFIRMED booking may exist per (technician, date, time), even when
// two requests race past the application-level availability check.
func EnsureIndexes(db *gorm.DB) error {
	return db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_confirmed_slot
		ON bookings (technician_id, appointment_date, appointment_time)
		WHERE status = 'CONFIRMED'`).Error
}
