package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/campuscache/campuscache/internal/database/testutil"
	"github.com/campuscache/campuscache/internal/models"
	"github.com/campuscache/campuscache/pkg/crypto"
)

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	if username == "" {
		username = "user-" + uuid.NewString()[:8]
	}

	hashed, err := crypto.HashPassword("password")
	require.NoError(t, err)

	user := &models.User{
		Username:    username,
		Password:    hashed,
		DisplayName: username,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestCache(t *testing.T, db *gorm.DB, creatorID uint, title string) *models.Cache {
	t.Helper()

	cache := &models.Cache{
		Title:      title,
		Latitude:   40.1081,
		Longitude:  -88.2272,
		Difficulty: 2,
		Category:   models.DefaultCategory,
		CreatorID:  creatorID,
	}
	require.NoError(t, db.Create(cache).Error)
	return cache
}

func openServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	return testutil.MustOpenTestDB(t)
}
