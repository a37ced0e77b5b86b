package billing

import (
	"markezon-backend/config"

	"github.com/rs/zerolog"
	"github.com/stripe/stripe-go/v75/client"
	"gorm.io/gorm"
)

// Handler owns the billing endpoints. The Stripe client is constructed once
// at startup and injected; handlers never touch the global stripe.Key.
type Handler struct {
	DB     *gorm.DB
	Cfg    *config.Config
	Log    zerolog.Logger
	Stripe *client.API
}

func NewHandler(db *gorm.DB, cfg *config.Config, log zerolog.Logger, stripe *client.API) *Handler {
	return &Handler{DB: db, Cfg: cfg, Log: log, Stripe: stripe}
}
