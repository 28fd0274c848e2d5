package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"offistation-service/models"
)

// ConnectPostgres opens the catalog database and runs migrations.
func ConnectPostgres(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&models.Product{}); err != nil {
		return nil, err
	}
	return db, nil
}
