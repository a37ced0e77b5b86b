package posts

import (
	"fmt"
	"net/http"
	"strconv"

	"markezon-backend/config"
	"markezon-backend/internal/domain/notifications"
	"markezon-backend/internal/domain/posts"

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

func (h *Handler) CreatePost(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var body struct {
		Content  string `json:"content" binding:"required"`
		ImageURL string `json:"imageUrl"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post := posts.Post{
		UserID:   userID,
		Content:  body.Content,
		ImageURL: body.ImageURL,
	}
	if err := h.DB.Create(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	c.JSON(http.StatusOK, post)
}

// GetFeed returns posts newest first. limit defaults to 20, capped at 100.
func (h *Handler) GetFeed(c *gin.Context) {
	limit := parsePositiveInt(c.Query("limit"), 20)
	if limit > 100 {
		limit = 100
	}
	offset := parsePositiveInt(c.Query("offset"), 0)

	var feed []posts.Post
	if err := h.DB.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&feed).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load posts"})
		return
	}

	c.JSON(http.StatusOK, feed)
}

func (h *Handler) GetPost(c *gin.Context) {
	var post posts.Post
	if err := h.DB.First(&post, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	var likeCount, commentCount int64
	h.DB.Model(&posts.Like{}).Where("post_id = ?", post.ID).Count(&likeCount)
	h.DB.Model(&posts.Comment{}).Where("post_id = ?", post.ID).Count(&commentCount)

	c.JSON(http.StatusOK, gin.H{
		"post":     post,
		"likes":    likeCount,
		"comments": commentCount,
	})
}

func (h *Handler) ListUserPosts(c *gin.Context) {
	var userPosts []posts.Post
	if err := h.DB.
		Where("user_id = ?", c.Param("id")).
		Order("created_at DESC").
		Find(&userPosts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load posts"})
		return
	}

	c.JSON(http.StatusOK, userPosts)
}

func (h *Handler) DeletePost(c *gin.Context) {
	userID := c.GetUint("user_id")

	var post posts.Post
	if err := h.DB.First(&post, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	if post.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not your post"})
		return
	}

	if err := h.DB.Delete(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}

func (h *Handler) LikePost(c *gin.Context) {
	userID := c.GetUint("user_id")

	var post posts.Post
	if err := h.DB.First(&post, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	like := posts.Like{PostID: post.ID, UserID: userID}
	if err := h.DB.Create(&like).Error; err != nil {
		// unique index: already liked
		c.JSON(http.StatusConflict, gin.H{"error": "Already liked"})
		return
	}

	if post.UserID != userID {
		notifications.Notify(h.DB, h.Log, post.UserID, "like",
			fmt.Sprintf("Someone liked your post #%d.", post.ID))
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post liked"})
}

func (h *Handler) UnlikePost(c *gin.Context) {
	userID := c.GetUint("user_id")

	result := h.DB.
		Where("post_id = ? AND user_id = ?", c.Param("id"), userID).
		Delete(&posts.Like{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unlike post"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Like not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Like removed"})
}

func (h *Handler) CreateComment(c *gin.Context) {
	userID := c.GetUint("user_id")

	var body struct {
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var post posts.Post
	if err := h.DB.First(&post, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	comment := posts.Comment{
		PostID:  post.ID,
		UserID:  userID,
		Content: body.Content,
	}
	if err := h.DB.Create(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create comment"})
		return
	}

	if post.UserID != userID {
		notifications.Notify(h.DB, h.Log, post.UserID, "comment",
			fmt.Sprintf("New comment on your post #%d.", post.ID))
	}

	c.JSON(http.StatusOK, comment)
}

func (h *Handler) ListComments(c *gin.Context) {
	var comments []posts.Comment
	if err := h.DB.
		Where("post_id = ?", c.Param("id")).
		Order("created_at ASC").
		Find(&comments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load comments"})
		return
	}

	c.JSON(http.StatusOK, comments)
}

func parsePositiveInt(value string, fallback int) int {
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
