package billing

import (
	"net/http"

	"markezon-backend/internal/domain/payments"
	"markezon-backend/internal/domain/profiles"

	"github.com/gin-gonic/gin"
)

// GetPaymentProvider decides which processor a user's payments route to.
//
// An explicit preferred_payment_provider on the profile always wins. Else the
// country code classifies the user into a Stripe or Paystack market and the
// result is written back onto the profile; users with no country on file
// default to Stripe.
func (h *Handler) GetPaymentProvider(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing user_id parameter"})
		return
	}

	var profile profiles.Profile
	if err := h.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		h.Log.Error().Err(err).Str("user_id", userID).Msg("failed to load profile for provider selection")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"provider": h.resolveProvider(&profile)})
}

func (h *Handler) resolveProvider(profile *profiles.Profile) string {
	// Manual override wins, no re-derivation.
	if profile.PreferredPaymentProvider != nil && *profile.PreferredPaymentProvider != "" {
		return *profile.PreferredPaymentProvider
	}

	if profile.CountryCode != "" {
		provider := payments.ClassifyCountry(profile.CountryCode)

		// Persist the computed value so the next call short-circuits.
		// Best-effort: a failed write must not fail the request.
		if err := h.DB.Model(&profiles.Profile{}).
			Where("id = ?", profile.ID).
			Update("preferred_payment_provider", provider).Error; err != nil {
			h.Log.Warn().Err(err).Uint("profile_id", profile.ID).Msg("failed to persist computed payment provider")
		}

		return provider
	}

	return payments.ProviderStripe
}
