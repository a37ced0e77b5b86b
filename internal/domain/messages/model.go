package messages

import "time"

type Message struct {
	ID          uint   `gorm:"primaryKey"`
	SenderID    uint   `gorm:"not null;index:idx_messages_sender"`
	RecipientID uint   `gorm:"not null;index:idx_messages_recipient"`
	Content     string `gorm:"not null"`
	IsRead      bool   `gorm:"not null;default:false"`

	CreatedAt time.Time
}
