package admin

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"markezon-backend/config"
	"markezon-backend/database"
	"markezon-backend/internal/domain/profiles"
	"markezon-backend/internal/domain/promotions"
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

func newRouter(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	h := NewHandler(db, &config.Config{}, zerolog.Nop())
	r := gin.New()
	r.GET("/admin/dashboard", h.AdminDashboard)
	r.GET("/admin/users", h.ListAllUsers)
	r.GET("/admin/promotions", h.ListAllPromotions)
	return r
}

func get(t *testing.T, r *gin.Engine, url string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func seedPromotion(t *testing.T, db *gorm.DB, paymentID string, budget float64) {
	t.Helper()
	require.NoError(t, db.Create(&promotions.Promotion{
		PostID:         1,
		UserID:         1,
		PromotionLevel: "basic",
		StartsAt:       time.Now(),
		EndsAt:         time.Now().AddDate(0, 0, 3),
		Budget:         &budget,
		PaymentID:      paymentID,
	}).Error)
}

func TestAdminDashboard(t *testing.T) {
	db := newTestDB(t)

	stripe := "stripe"
	paystack := "paystack"
	require.NoError(t, db.Create(&users.User{Email: "a@example.com", Role: "user"}).Error)
	require.NoError(t, db.Create(&users.User{Email: "b@example.com", Role: "user"}).Error)
	require.NoError(t, db.Create(&profiles.Profile{UserID: 1, Username: "a-1", PreferredPaymentProvider: &stripe}).Error)
	require.NoError(t, db.Create(&profiles.Profile{UserID: 2, Username: "b-2", PreferredPaymentProvider: &paystack}).Error)

	seedPromotion(t, db, "cs_1", 5)
	seedPromotion(t, db, "cs_2", 15)

	rec := get(t, newRouter(t, db), "/admin/dashboard")
	require.Equal(t, http.StatusOK, rec.Code)

	var stats AdminStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 2, stats.TotalUsers)
	assert.Equal(t, 2, stats.TotalPromotions)
	assert.Equal(t, 20.0, stats.PromotionRevenue)
	assert.Equal(t, 20.0, stats.RecentRevenue)
	assert.Equal(t, map[string]int{"stripe": 1, "paystack": 1}, stats.UsersPerProvider)
}

func TestListAllUsers_IncludesProfileFields(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&users.User{Email: "a@example.com", Role: "admin", IsVerified: true}).Error)
	require.NoError(t, db.Create(&profiles.Profile{UserID: 1, Username: "a-1", CountryCode: "US"}).Error)

	rec := get(t, newRouter(t, db), "/admin/users")
	require.Equal(t, http.StatusOK, rec.Code)

	var list []AdminUser
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "a@example.com", list[0].Email)
	assert.Equal(t, "a-1", list[0].Username)
	assert.Equal(t, "US", list[0].CountryCode)
}

func TestListAllPromotions(t *testing.T) {
	db := newTestDB(t)
	seedPromotion(t, db, "cs_1", 5)
	seedPromotion(t, db, "cs_2", 30)

	rec := get(t, newRouter(t, db), "/admin/promotions")
	require.Equal(t, http.StatusOK, rec.Code)

	var list []promotions.Promotion
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, 2)
}
