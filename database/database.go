package database

import (
	"fmt"

	"markezon-backend/internal/domain/messages"
	"markezon-backend/internal/domain/notifications"
	"markezon-backend/internal/domain/posts"
	"markezon-backend/internal/domain/profiles"
	"markezon-backend/internal/domain/promotions"
	"markezon-backend/internal/domain/services"
	"markezon-backend/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the Postgres connection and migrates all domain models.
// The returned handle is passed into every handler; there is no package
// global.
func Connect(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("database DSN is empty")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate runs AutoMigrate for every domain model. Split out so tests can
// reuse it against sqlite.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		// accounts
		&users.User{},
		&users.VerificationToken{},
		&profiles.Profile{},

		// content
		&posts.Post{},
		&posts.Comment{},
		&posts.Like{},
		&services.Service{},

		// messaging
		&messages.Message{},
		&notifications.Notification{},

		// billing
		&promotions.Promotion{},
	); err != nil {
		return fmt.Errorf("AutoMigrate error: %w", err)
	}
	return nil
}
