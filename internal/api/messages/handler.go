package messages

import (
	"net/http"
	"strconv"

	"markezon-backend/config"
	"markezon-backend/internal/domain/messages"
	"markezon-backend/internal/domain/notifications"
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

func (h *Handler) SendMessage(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var body struct {
		RecipientID uint   `json:"recipientId" binding:"required"`
		Content     string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if body.RecipientID == userID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot message yourself"})
		return
	}

	var recipient users.User
	if err := h.DB.First(&recipient, body.RecipientID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipient not found"})
		return
	}

	msg := messages.Message{
		SenderID:    userID,
		RecipientID: body.RecipientID,
		Content:     body.Content,
	}
	if err := h.DB.Create(&msg).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		return
	}

	notifications.Notify(h.DB, h.Log, body.RecipientID, "message", "You have a new message.")

	c.JSON(http.StatusOK, msg)
}

// GetConversation returns the message history with one user, oldest first.
func (h *Handler) GetConversation(c *gin.Context) {
	userID := c.GetUint("user_id")

	otherID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	var conversation []messages.Message
	if err := h.DB.
		Where("(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
			userID, otherID, otherID, userID).
		Order("created_at ASC").
		Find(&conversation).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load conversation"})
		return
	}

	c.JSON(http.StatusOK, conversation)
}

// ListConversations returns the most recent message per conversation
// partner, newest conversation first.
func (h *Handler) ListConversations(c *gin.Context) {
	userID := c.GetUint("user_id")

	var recent []messages.Message
	if err := h.DB.
		Where("sender_id = ? OR recipient_id = ?", userID, userID).
		Order("created_at DESC").
		Limit(200).
		Find(&recent).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load conversations"})
		return
	}

	type conversation struct {
		PartnerID   uint             `json:"partner_id"`
		LastMessage messages.Message `json:"last_message"`
	}

	seen := map[uint]bool{}
	var conversations []conversation
	for _, m := range recent {
		partner := m.SenderID
		if partner == userID {
			partner = m.RecipientID
		}
		if seen[partner] {
			continue
		}
		seen[partner] = true
		conversations = append(conversations, conversation{PartnerID: partner, LastMessage: m})
	}

	c.JSON(http.StatusOK, conversations)
}

// MarkConversationRead flags everything the other user sent as read.
func (h *Handler) MarkConversationRead(c *gin.Context) {
	userID := c.GetUint("user_id")

	otherID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	if err := h.DB.Model(&messages.Message{}).
		Where("sender_id = ? AND recipient_id = ? AND is_read = ?", otherID, userID, false).
		Update("is_read", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark conversation read"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Conversation marked read"})
}
