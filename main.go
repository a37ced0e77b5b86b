package main

import (
	"time"

	"markezon-backend/config"
	"markezon-backend/database"
	routes "markezon-backend/internal/app/http"
	"markezon-backend/internal/app/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75/client"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.AppEnv)

	db, err := database.Connect(cfg.DBURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database init failed")
	}
	log.Info().Msg("connected and migrated successfully")

	stripeClient := &client.API{}
	stripeClient.Init(cfg.StripeSecretKey, nil)

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, &routes.App{
		DB:     db,
		Cfg:    cfg,
		Log:    log,
		Stripe: stripeClient,
	})

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
