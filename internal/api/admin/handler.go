package admin

import (
	"net/http"
	"time"

	"markezon-backend/config"
	"markezon-backend/internal/domain/profiles"
	"markezon-backend/internal/domain/promotions"
	"markezon-backend/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type Handler struct {
	DB  *gorm.DB
	Cfg *config.Config
	Log zerolog.Logger
}

func NewHandler(db *gorm.DB, cfg *config.Config, log zerolog.Logger) *Handler {
	return &Handler{DB: db, Cfg: cfg, Log: log}
}

type AdminUser struct {
	ID          uint   `json:"id"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	IsVerified  bool   `json:"is_verified"`
	Username    string `json:"username,omitempty"`
	CountryCode string `json:"country_code,omitempty"`
}

type AdminStats struct {
	TotalUsers       int            `json:"total_users"`
	TotalPromotions  int            `json:"total_promotions"`
	PromotionRevenue float64        `json:"promotion_revenue"`
	RecentRevenue    float64        `json:"recent_revenue"`
	UsersPerProvider map[string]int `json:"users_per_provider"`
}

func (h *Handler) AdminDashboard(c *gin.Context) {
	var stats AdminStats

	var totalUsers, totalPromotions int64
	h.DB.Model(&users.User{}).Count(&totalUsers)
	h.DB.Model(&promotions.Promotion{}).Count(&totalPromotions)

	h.DB.Model(&promotions.Promotion{}).
		Select("COALESCE(SUM(budget), 0)").
		Scan(&stats.PromotionRevenue)

	thirtyDaysAgo := time.Now().AddDate(0, 0, -30)
	h.DB.Model(&promotions.Promotion{}).
		Where("created_at >= ?", thirtyDaysAgo).
		Select("COALESCE(SUM(budget), 0)").
		Scan(&stats.RecentRevenue)

	stats.TotalUsers = int(totalUsers)
	stats.TotalPromotions = int(totalPromotions)

	type providerCount struct {
		Provider *string
		Count    int
	}
	var counts []providerCount
	h.DB.
		Model(&profiles.Profile{}).
		Select("preferred_payment_provider as provider, COUNT(id) as count").
		Group("preferred_payment_provider").
		Scan(&counts)

	stats.UsersPerProvider = map[string]int{}
	for _, pc := range counts {
		name := "unset"
		if pc.Provider != nil && *pc.Provider != "" {
			name = *pc.Provider
		}
		stats.UsersPerProvider[name] = pc.Count
	}

	c.JSON(http.StatusOK, stats)
}

func (h *Handler) ListAllUsers(c *gin.Context) {
	var allUsers []users.User
	if err := h.DB.Find(&allUsers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}

	profileByUser := map[uint]profiles.Profile{}
	var allProfiles []profiles.Profile
	if err := h.DB.Find(&allProfiles).Error; err == nil {
		for _, p := range allProfiles {
			profileByUser[p.UserID] = p
		}
	}

	var result []AdminUser
	for _, u := range allUsers {
		p := profileByUser[u.ID]
		result = append(result, AdminUser{
			ID:          u.ID,
			Email:       u.Email,
			Role:        u.Role,
			IsVerified:  u.IsVerified,
			Username:    p.Username,
			CountryCode: p.CountryCode,
		})
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) ListAllPromotions(c *gin.Context) {
	var list []promotions.Promotion
	if err := h.DB.Order("created_at DESC").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load promotions"})
		return
	}

	c.JSON(http.StatusOK, list)
}
