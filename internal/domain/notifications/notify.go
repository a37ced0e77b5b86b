package notifications

import (
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// Notify inserts a notification for a user. It is best-effort by contract:
// a failed insert is logged and swallowed so the primary operation (a
// promotion write, a new message, a like) never fails or unwinds because of
// it.
func Notify(db *gorm.DB, log zerolog.Logger, userID uint, notifType, message string) {
	n := Notification{
		UserID:  userID,
		Type:    notifType,
		Message: message,
	}
	if err := db.Create(&n).Error; err != nil {
		log.Warn().
			Err(err).
			Uint("user_id", userID).
			Str("type", notifType).
			Msg("failed to store notification")
	}
}
