package models

import "time"

// Product is a catalog entry stored in Postgres.
type Product struct {
	ID        string    `gorm:"type:varchar(64);primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Price     float64   `gorm:"not null" json:"price"`
	Image     string    `gorm:"type:varchar(512)" json:"image"`
	Category  string    `gorm:"type:varchar(64);index" json:"category"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
