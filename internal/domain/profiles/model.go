package profiles

import "time"

// Profile is the public half of an account. Auth fields live on users.User;
// everything shown on the marketplace (and the payment routing fields) lives
// here. Created at signup, one row per user.
type Profile struct {
	ID       uint   `gorm:"primaryKey"`
	UserID   uint   `gorm:"not null;uniqueIndex:idx_profiles_user_id"`
	Username string `gorm:"not null;uniqueIndex:idx_profiles_username"`

	FullName  string
	Bio       string
	AvatarURL string

	// Two-letter ISO code, upper-cased on write by the provider selection
	// flow. Optional.
	CountryCode string `gorm:"type:varchar(2)"`

	// "stripe" | "paystack" | "none". Empty until computed or set manually;
	// once set it is treated as an override and never re-derived.
	PreferredPaymentProvider *string `gorm:"column:preferred_payment_provider"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
