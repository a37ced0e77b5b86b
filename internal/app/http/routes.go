package routes

import (
	"markezon-backend/config"
	adminapi "markezon-backend/internal/api/admin"
	authapi "markezon-backend/internal/api/auth"
	"markezon-backend/internal/api/billing"
	messagesapi "markezon-backend/internal/api/messages"
	notificationsapi "markezon-backend/internal/api/notifications"
	postsapi "markezon-backend/internal/api/posts"
	profilesapi "markezon-backend/internal/api/profiles"
	servicesapi "markezon-backend/internal/api/services"
	stripewebhooks "markezon-backend/internal/api/stripewebhook"
	"markezon-backend/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/stripe/stripe-go/v75/client"
	"gorm.io/gorm"
)

// App bundles the handles every handler needs. Constructed once in main;
// nothing in here is reachable as package state.
type App struct {
	DB     *gorm.DB
	Cfg    *config.Config
	Log    zerolog.Logger
	Stripe *client.API
}

func RegisterRoutes(r *gin.Engine, app *App) {
	authHandler := authapi.NewHandler(app.DB, app.Cfg, app.Log)
	profilesHandler := profilesapi.NewHandler(app.DB, app.Cfg, app.Log)
	postsHandler := postsapi.NewHandler(app.DB, app.Cfg, app.Log)
	servicesHandler := servicesapi.NewHandler(app.DB, app.Cfg, app.Log)
	messagesHandler := messagesapi.NewHandler(app.DB, app.Cfg, app.Log)
	notificationsHandler := notificationsapi.NewHandler(app.DB, app.Cfg, app.Log)
	billingHandler := billing.NewHandler(app.DB, app.Cfg, app.Log, app.Stripe)
	webhookHandler := stripewebhooks.NewHandler(app.DB, app.Cfg, app.Log)
	adminHandler := adminapi.NewHandler(app.DB, app.Cfg, app.Log)

	r.Use(middleware.Metrics())

	// Raw-body routes stay outside the sanitizer: Stripe signature
	// verification needs the payload untouched.
	r.POST("/webhook", webhookHandler.HandleWebhook)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	public := r.Group("/")
	public.Use(middleware.SanitizeInput())

	public.POST("/register", authHandler.Register)
	public.POST("/login", authHandler.Login)
	public.GET("/verify", authHandler.VerifyEmail)
	public.POST("/resend-verification", authHandler.ResendVerification)
	public.POST("/request-password-reset", authHandler.RequestPasswordReset)
	public.POST("/reset-password", authHandler.ResetPassword)

	public.GET("/auth/google", authHandler.GoogleStart)
	public.GET("/auth/google/callback", authHandler.GoogleCallback)

	public.GET("/profiles/:username", profilesHandler.GetByUsername)
	public.GET("/posts", postsHandler.GetFeed)
	public.GET("/posts/:id", postsHandler.GetPost)
	public.GET("/posts/:id/comments", postsHandler.ListComments)
	public.GET("/users/:id/posts", postsHandler.ListUserPosts)
	public.GET("/services", servicesHandler.ListServices)
	public.GET("/services/:id", servicesHandler.GetService)

	// Billing contracts are keyed by caller-supplied ids, like the webhook.
	public.GET("/billing/provider", billingHandler.GetPaymentProvider)
	public.POST("/billing/promotions/checkout", billingHandler.CreatePromotionCheckout)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware(app.Cfg.JWTSecret), middleware.SanitizeInput())
	auth.GET("/me", profilesHandler.GetCurrentUser)
	auth.PUT("/me/profile", profilesHandler.UpdateMyProfile)
	auth.POST("/change-password", authHandler.ChangePassword)

	auth.POST("/posts", postsHandler.CreatePost)
	auth.DELETE("/posts/:id", postsHandler.DeletePost)
	auth.POST("/posts/:id/like", postsHandler.LikePost)
	auth.DELETE("/posts/:id/like", postsHandler.UnlikePost)
	auth.POST("/posts/:id/comments", postsHandler.CreateComment)

	auth.POST("/services", servicesHandler.CreateService)
	auth.PUT("/services/:id", servicesHandler.UpdateService)
	auth.DELETE("/services/:id", servicesHandler.DeleteService)

	auth.POST("/messages", messagesHandler.SendMessage)
	auth.GET("/conversations", messagesHandler.ListConversations)
	auth.GET("/messages/:id", messagesHandler.GetConversation)
	auth.POST("/messages/:id/read", messagesHandler.MarkConversationRead)

	auth.GET("/notifications", notificationsHandler.ListNotifications)
	auth.GET("/notifications/unread-count", notificationsHandler.GetUnreadCount)
	auth.POST("/notifications/:id/read", notificationsHandler.MarkRead)
	auth.POST("/notifications/read-all", notificationsHandler.MarkAllRead)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(app.Cfg.JWTSecret), middleware.RequireRole("admin"))
	admin.GET("/dashboard", adminHandler.AdminDashboard)
	admin.GET("/users", adminHandler.ListAllUsers)
	admin.GET("/promotions", adminHandler.ListAllPromotions)
}
