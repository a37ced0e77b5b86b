package profiles

import (
	"fmt"
	"strings"
	"testing"

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
	require.NoError(t, db.AutoMigrate(&Profile{}))
	return db
}

func TestMakeUsername(t *testing.T) {
	assert.Equal(t, "john-doe", MakeUsername("John Doe"))
	assert.Equal(t, "anna-lena-m", MakeUsername("Anna-Lena M."))
	assert.Equal(t, "user", MakeUsername("!!!"))
	assert.Equal(t, "user", MakeUsername(""))
}

func TestEnsureUsername(t *testing.T) {
	db := newTestDB(t)

	profile := Profile{UserID: 1, FullName: "John Doe"}
	require.NoError(t, db.Create(&profile).Error)

	username, err := EnsureUsername(db, &profile)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("john-doe-%d", profile.ID), username)

	var stored Profile
	require.NoError(t, db.First(&stored, profile.ID).Error)
	assert.Equal(t, username, stored.Username)

	// Idempotent: an existing username is returned untouched.
	again, err := EnsureUsername(db, &stored)
	require.NoError(t, err)
	assert.Equal(t, username, again)
}

func TestEnsureUsernameRequiresID(t *testing.T) {
	db := newTestDB(t)

	profile := Profile{UserID: 2, FullName: "No ID Yet"}
	_, err := EnsureUsername(db, &profile)
	assert.Error(t, err)
}
