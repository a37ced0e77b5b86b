package notifications

import "time"

type Notification struct {
	ID      uint   `gorm:"primaryKey"`
	UserID  uint   `gorm:"not null;index"`
	Type    string `gorm:"type:varchar(30);not null"`
	Message string `gorm:"not null"`
	IsRead  bool   `gorm:"not null;default:false"`

	CreatedAt time.Time
}
