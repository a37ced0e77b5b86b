package profiles

import (
	"net/http"

	"markezon-backend/config"
	"markezon-backend/internal/domain/profiles"
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

type ProfileDTO struct {
	UserID                   uint    `json:"user_id"`
	Username                 string  `json:"username"`
	FullName                 string  `json:"full_name"`
	Bio                      string  `json:"bio,omitempty"`
	AvatarURL                string  `json:"avatar_url,omitempty"`
	CountryCode              string  `json:"country_code,omitempty"`
	PreferredPaymentProvider *string `json:"preferred_payment_provider,omitempty"`
}

func buildProfileDTO(p profiles.Profile) ProfileDTO {
	return ProfileDTO{
		UserID:                   p.UserID,
		Username:                 p.Username,
		FullName:                 p.FullName,
		Bio:                      p.Bio,
		AvatarURL:                p.AvatarURL,
		CountryCode:              p.CountryCode,
		PreferredPaymentProvider: p.PreferredPaymentProvider,
	}
}

func (h *Handler) GetCurrentUser(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var user users.User
	if err := h.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var profile profiles.Profile
	if err := h.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":          user.ID,
			"email":       user.Email,
			"role":        user.Role,
			"is_verified": user.IsVerified,
		},
		"profile": buildProfileDTO(profile),
	})
}

func (h *Handler) GetByUsername(c *gin.Context) {
	username := c.Param("username")

	var profile profiles.Profile
	if err := h.DB.Where("username = ?", username).First(&profile).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}

	c.JSON(http.StatusOK, buildProfileDTO(profile))
}

func (h *Handler) UpdateMyProfile(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var body struct {
		FullName    *string `json:"fullName"`
		Bio         *string `json:"bio"`
		AvatarURL   *string `json:"avatarUrl"`
		CountryCode *string `json:"countryCode"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var profile profiles.Profile
	if err := h.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}

	updates := map[string]interface{}{}
	if body.FullName != nil {
		updates["full_name"] = *body.FullName
	}
	if body.Bio != nil {
		updates["bio"] = *body.Bio
	}
	if body.AvatarURL != nil {
		updates["avatar_url"] = *body.AvatarURL
	}
	if body.CountryCode != nil {
		updates["country_code"] = *body.CountryCode
	}

	if len(updates) > 0 {
		if err := h.DB.Model(&profile).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
			return
		}
	}

	if err := h.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}

	c.JSON(http.StatusOK, buildProfileDTO(profile))
}
