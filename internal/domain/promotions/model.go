package promotions

import "time"

// Promotion is created exactly once per completed promotion checkout. The
// webhook is the sole writer; rows are never updated or deleted here.
type Promotion struct {
	ID             uint   `gorm:"primaryKey"`
	PostID         uint   `gorm:"not null;index"`
	UserID         uint   `gorm:"not null;index"`
	PromotionLevel string `gorm:"type:varchar(20);not null"`

	StartsAt time.Time
	EndsAt   time.Time

	// Session amount_total/100; NULL when Stripe reported no amount.
	Budget *float64

	// Stripe checkout session id. The unique index is what makes redelivered
	// webhook events a no-op.
	PaymentID string `gorm:"column:payment_id;not null;uniqueIndex:idx_promotions_payment_id"`

	CreatedAt time.Time
}
