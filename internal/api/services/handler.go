package services

import (
	"net/http"

	"markezon-backend/config"
	"markezon-backend/internal/domain/services"

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

type serviceInput struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category" binding:"required"`
	Price       float64 `json:"price"`
	Location    string  `json:"location"`
	ImageURL    string  `json:"imageUrl"`
}

func (h *Handler) CreateService(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var body serviceInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.Service{
		UserID:      userID,
		Title:       body.Title,
		Description: body.Description,
		Category:    body.Category,
		Price:       body.Price,
		Location:    body.Location,
		ImageURL:    body.ImageURL,
	}
	if err := h.DB.Create(&svc).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create service"})
		return
	}

	c.JSON(http.StatusOK, svc)
}

// ListServices supports ?category= and a ?q= search over title/description.
func (h *Handler) ListServices(c *gin.Context) {
	query := h.DB.Order("created_at DESC")

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if q := c.Query("q"); q != "" {
		like := "%" + q + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", like, like)
	}

	var list []services.Service
	if err := query.Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load services"})
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *Handler) GetService(c *gin.Context) {
	var svc services.Service
	if err := h.DB.First(&svc, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		return
	}

	c.JSON(http.StatusOK, svc)
}

func (h *Handler) UpdateService(c *gin.Context) {
	userID := c.GetUint("user_id")

	var svc services.Service
	if err := h.DB.First(&svc, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		return
	}
	if svc.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not your service"})
		return
	}

	var body serviceInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{
		"title":       body.Title,
		"description": body.Description,
		"category":    body.Category,
		"price":       body.Price,
		"location":    body.Location,
		"image_url":   body.ImageURL,
	}
	if err := h.DB.Model(&svc).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update service"})
		return
	}

	c.JSON(http.StatusOK, svc)
}

func (h *Handler) DeleteService(c *gin.Context) {
	userID := c.GetUint("user_id")

	var svc services.Service
	if err := h.DB.First(&svc, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		return
	}
	if svc.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not your service"})
		return
	}

	if err := h.DB.Delete(&svc).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete service"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service deleted"})
}
