package posts

import "time"

type Post struct {
	ID       uint   `gorm:"primaryKey"`
	UserID   uint   `gorm:"not null;index"`
	Content  string `gorm:"not null"`
	ImageURL string

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Comment struct {
	ID      uint   `gorm:"primaryKey"`
	PostID  uint   `gorm:"not null;index"`
	Post    Post   `gorm:"constraint:OnDelete:CASCADE"`
	UserID  uint   `gorm:"not null"`
	Content string `gorm:"not null"`

	CreatedAt time.Time
}

type Like struct {
	ID     uint `gorm:"primaryKey"`
	PostID uint `gorm:"not null;uniqueIndex:idx_likes_post_user"`
	Post   Post `gorm:"constraint:OnDelete:CASCADE"`
	UserID uint `gorm:"not null;uniqueIndex:idx_likes_post_user"`

	CreatedAt time.Time
}
