package stripewebhooks

import (
	"fmt"
	"strconv"

	"markezon-backend/internal/domain/notifications"
	"markezon-backend/internal/domain/promotions"

	"github.com/stripe/stripe-go/v75"
)

// handleCheckoutSessionCompleted records the promotion a completed checkout
// paid for. Session metadata is the sole bridge back from Stripe: postId,
// userId and promotionLevel identify a promotion checkout; sessions without
// them belong to other flows (the booking checkout shares this endpoint) and
// are ignored.
func (h *Handler) handleCheckoutSessionCompleted(session *stripe.CheckoutSession) error {
	postIDStr := session.Metadata["postId"]
	userIDStr := session.Metadata["userId"]
	level := session.Metadata["promotionLevel"]
	if postIDStr == "" || userIDStr == "" || level == "" {
		return nil
	}

	// Stripe may redeliver a completed session. payment_id already recorded
	// means this delivery is a duplicate and must not insert again.
	var existing int64
	if err := h.DB.Model(&promotions.Promotion{}).
		Where("payment_id = ?", session.ID).
		Count(&existing).Error; err != nil {
		return fmt.Errorf("failed to check for existing promotion: %w", err)
	}
	if existing > 0 {
		h.Log.Info().Str("session_id", session.ID).Msg("duplicate checkout.session.completed delivery ignored")
		return nil
	}

	postID, err := parseMetadataID("postId", postIDStr)
	if err != nil {
		return err
	}
	userID, err := parseMetadataID("userId", userIDStr)
	if err != nil {
		return err
	}

	startsAt, err := promotions.ParseDate(session.Metadata["startDate"])
	if err != nil {
		return fmt.Errorf("invalid startDate in session metadata: %w", err)
	}
	endsAt, err := promotions.ParseDate(session.Metadata["endDate"])
	if err != nil {
		return fmt.Errorf("invalid endDate in session metadata: %w", err)
	}

	var budget *float64
	if session.AmountTotal > 0 {
		b := float64(session.AmountTotal) / 100
		budget = &b
	}

	promo := promotions.Promotion{
		PostID:         postID,
		UserID:         userID,
		PromotionLevel: level,
		StartsAt:       startsAt,
		EndsAt:         endsAt,
		Budget:         budget,
		PaymentID:      session.ID,
	}
	if err := h.DB.Create(&promo).Error; err != nil {
		return fmt.Errorf("failed to store promotion: %w", err)
	}

	// Best-effort: the promotion exists even if this insert fails.
	notifications.Notify(h.DB, h.Log, userID, "promotion",
		fmt.Sprintf("Your %s promotion is now active.", level))

	return nil
}

func parseMetadataID(field, value string) (uint, error) {
	id, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", field, value, err)
	}
	return uint(id), nil
}
