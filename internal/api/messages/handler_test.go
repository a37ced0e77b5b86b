package messages

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"markezon-backend/config"
	"markezon-backend/database"
	"markezon-backend/internal/domain/messages"
	"markezon-backend/internal/domain/notifications"
	"markezon-backend/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func newRouter(t *testing.T, db *gorm.DB, userID uint) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	h := NewHandler(db, &config.Config{}, zerolog.Nop())
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if userID != 0 {
			c.Set("user_id", userID)
		}
	})
	r.POST("/messages", h.SendMessage)
	r.GET("/conversations", h.ListConversations)
	r.GET("/messages/:id", h.GetConversation)
	r.POST("/messages/:id/read", h.MarkConversationRead)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, url, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, url, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func seedUser(t *testing.T, db *gorm.DB, email string) users.User {
	t.Helper()
	u := users.User{Email: email, AuthProvider: "local", Role: "user", IsVerified: true}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func TestSendMessage(t *testing.T) {
	db := newTestDB(t)
	sender := seedUser(t, db, "sender@example.com")
	recipient := seedUser(t, db, "recipient@example.com")

	r := newRouter(t, db, sender.ID)
	rec := doJSON(t, r, http.MethodPost, "/messages",
		fmt.Sprintf(`{"recipientId":%d,"content":"hey there"}`, recipient.ID))
	require.Equal(t, http.StatusOK, rec.Code)

	var stored messages.Message
	require.NoError(t, db.First(&stored).Error)
	assert.Equal(t, sender.ID, stored.SenderID)
	assert.Equal(t, recipient.ID, stored.RecipientID)
	assert.False(t, stored.IsRead)

	var notif notifications.Notification
	require.NoError(t, db.Where("user_id = ? AND type = ?", recipient.ID, "message").First(&notif).Error)
}

func TestSendMessage_SelfRejected(t *testing.T) {
	db := newTestDB(t)
	u := seedUser(t, db, "solo@example.com")

	r := newRouter(t, db, u.ID)
	rec := doJSON(t, r, http.MethodPost, "/messages",
		fmt.Sprintf(`{"recipientId":%d,"content":"hi me"}`, u.ID))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSendMessage_UnknownRecipient(t *testing.T) {
	db := newTestDB(t)
	u := seedUser(t, db, "lonely@example.com")

	r := newRouter(t, db, u.ID)
	rec := doJSON(t, r, http.MethodPost, "/messages", `{"recipientId":999,"content":"anyone?"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetConversation_BothDirections(t *testing.T) {
	db := newTestDB(t)
	a := seedUser(t, db, "a@example.com")
	b := seedUser(t, db, "b@example.com")
	c := seedUser(t, db, "c@example.com")

	require.NoError(t, db.Create(&messages.Message{SenderID: a.ID, RecipientID: b.ID, Content: "hi b"}).Error)
	require.NoError(t, db.Create(&messages.Message{SenderID: b.ID, RecipientID: a.ID, Content: "hi a"}).Error)
	require.NoError(t, db.Create(&messages.Message{SenderID: a.ID, RecipientID: c.ID, Content: "hi c"}).Error)

	r := newRouter(t, db, a.ID)
	rec := doJSON(t, r, http.MethodGet, fmt.Sprintf("/messages/%d", b.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var conversation []messages.Message
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &conversation))
	require.Len(t, conversation, 2)
	assert.Equal(t, "hi b", conversation[0].Content)
	assert.Equal(t, "hi a", conversation[1].Content)
}

func TestListConversations_OnePartnerEach(t *testing.T) {
	db := newTestDB(t)
	a := seedUser(t, db, "a@example.com")
	b := seedUser(t, db, "b@example.com")
	c := seedUser(t, db, "c@example.com")

	require.NoError(t, db.Create(&messages.Message{SenderID: a.ID, RecipientID: b.ID, Content: "one"}).Error)
	require.NoError(t, db.Create(&messages.Message{SenderID: b.ID, RecipientID: a.ID, Content: "two"}).Error)
	require.NoError(t, db.Create(&messages.Message{SenderID: c.ID, RecipientID: a.ID, Content: "three"}).Error)

	r := newRouter(t, db, a.ID)
	rec := doJSON(t, r, http.MethodGet, "/conversations", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var conversations []struct {
		PartnerID uint `json:"partner_id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &conversations))
	assert.Len(t, conversations, 2)
}

func TestMarkConversationRead(t *testing.T) {
	db := newTestDB(t)
	a := seedUser(t, db, "a@example.com")
	b := seedUser(t, db, "b@example.com")

	require.NoError(t, db.Create(&messages.Message{SenderID: b.ID, RecipientID: a.ID, Content: "unread"}).Error)
	require.NoError(t, db.Create(&messages.Message{SenderID: a.ID, RecipientID: b.ID, Content: "mine"}).Error)

	r := newRouter(t, db, a.ID)
	rec := doJSON(t, r, http.MethodPost, fmt.Sprintf("/messages/%d/read", b.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var inbound messages.Message
	require.NoError(t, db.Where("sender_id = ?", b.ID).First(&inbound).Error)
	assert.True(t, inbound.IsRead)

	// Messages a sent stay untouched.
	var outbound messages.Message
	require.NoError(t, db.Where("sender_id = ?", a.ID).First(&outbound).Error)
	assert.False(t, outbound.IsRead)
}
