package repository

import "gorm.io/gorm"

// Migrate creates or updates the tables backing the repositories.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&submissionModel{},
	)
}
