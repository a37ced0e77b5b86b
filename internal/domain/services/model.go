package services

import "time"

// Service is a marketplace listing.
type Service struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      uint   `gorm:"not null;index"`
	Title       string `gorm:"not null"`
	Description string
	Category    string `gorm:"index"`
	Price       float64
	Location    string
	ImageURL    string

	CreatedAt time.Time
	UpdatedAt time.Time
}
