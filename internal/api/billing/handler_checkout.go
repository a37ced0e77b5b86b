package billing

import (
	"fmt"
	"net/http"
	"time"

	"markezon-backend/internal/domain/profiles"
	"markezon-backend/internal/domain/promotions"
	"markezon-backend/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
)

type promoteRequest struct {
	PromotionLevel string   `json:"promotionLevel" binding:"required"`
	StartDate      string   `json:"startDate" binding:"required"`
	EndDate        string   `json:"endDate" binding:"required"`
	PostID         uint     `json:"postId" binding:"required"`
	UserID         uint     `json:"userId" binding:"required"`
	Budget         *float64 `json:"budget"`
}

// CreatePromotionCheckout builds a hosted Stripe checkout session for a post
// promotion and returns its redirect URL. The session metadata is the only
// carrier of domain data to the webhook, so every input field (plus the
// resolved username) goes into it.
func (h *Handler) CreatePromotionCheckout(c *gin.Context) {
	var req promoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !promotions.ValidLevel(req.PromotionLevel) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid promotionLevel"})
		return
	}

	start, err := promotions.ParseDate(req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid startDate"})
		return
	}
	end, err := promotions.ParseDate(req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid endDate"})
		return
	}

	// Email goes on the session for the receipt, username into metadata.
	// Either lookup failing is fatal to the request, not retried.
	var user users.User
	if err := h.DB.Where("id = ?", req.UserID).First(&user).Error; err != nil {
		h.Log.Error().Err(err).Uint("user_id", req.UserID).Msg("failed to load user for promotion checkout")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user"})
		return
	}
	var profile profiles.Profile
	if err := h.DB.Where("user_id = ?", req.UserID).First(&profile).Error; err != nil {
		h.Log.Error().Err(err).Uint("user_id", req.UserID).Msg("failed to load profile for promotion checkout")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}

	params := buildCheckoutParams(req, start, end, user.Email, profile.Username, h.Cfg.FrontendURL)

	s, err := h.Stripe.CheckoutSessions.New(params)
	if err != nil {
		h.Log.Error().Err(err).Uint("post_id", req.PostID).Msg("failed to create checkout session")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create checkout session", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": s.URL})
}

// buildCheckoutParams is pure so pricing, the line-item description and the
// metadata bridge can be tested without talking to Stripe.
func buildCheckoutParams(req promoteRequest, start, end time.Time, email, username, frontendURL string) *stripe.CheckoutSessionParams {
	amount := promotions.PriceCents(req.PromotionLevel)
	if req.Budget != nil {
		amount = int64(*req.Budget * 100)
	}

	days := promotions.Days(start, end)
	postURL := fmt.Sprintf("%s/posts/%d", frontendURL, req.PostID)

	params := &stripe.CheckoutSessionParams{
		Mode:          stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:    stripe.String(postURL + "?promotion=success"),
		CancelURL:     stripe.String(postURL + "?promotion=canceled"),
		CustomerEmail: stripe.String(email),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Quantity: stripe.Int64(1),
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String("usd"),
					UnitAmount: stripe.Int64(amount),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(fmt.Sprintf("Post promotion (%s)", req.PromotionLevel)),
						Description: stripe.String(fmt.Sprintf("Promote post for %d days at the %s level", days, req.PromotionLevel)),
					},
				},
			},
		},
	}

	params.AddMetadata("postId", fmt.Sprint(req.PostID))
	params.AddMetadata("userId", fmt.Sprint(req.UserID))
	params.AddMetadata("promotionLevel", req.PromotionLevel)
	params.AddMetadata("startDate", req.StartDate)
	params.AddMetadata("endDate", req.EndDate)
	params.AddMetadata("username", username)

	return params
}
