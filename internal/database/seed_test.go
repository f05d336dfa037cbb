package database

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/campuscache/campuscache/internal/models"
	"github.com/campuscache/campuscache/pkg/crypto"
)

func openSeedTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := Open(Config{Driver: "sqlite"})
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db
}

func TestSeedDemoAccountsCreates(t *testing.T) {
	db := openSeedTestDB(t)

	require.NoError(t, SeedDemoAccounts(db))

	var admin models.User
	require.NoError(t, db.Where("username = ?", "admin").Take(&admin).Error)
	require.Equal(t, "Admin", admin.DisplayName)
	require.True(t, crypto.VerifyPassword(admin.Password, "password"))

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	require.EqualValues(t, 2, count)
}

func TestSeedDemoAccountsRewritesCorruptedHash(t *testing.T) {
	db := openSeedTestDB(t)

	require.NoError(t, db.Create(&models.User{
		Username:    "admin",
		Password:    "corrupted-hash",
		DisplayName: "Someone Else",
	}).Error)

	require.NoError(t, SeedDemoAccounts(db))

	var admin models.User
	require.NoError(t, db.Where("username = ?", "admin").Take(&admin).Error)
	require.Equal(t, "Admin", admin.DisplayName)
	require.True(t, crypto.VerifyPassword(admin.Password, "password"))

	// Reconciliation updates in place rather than duplicating the row.
	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("username = ?", "admin").Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestSeedCampusCachesIsIdempotent(t *testing.T) {
	db := openSeedTestDB(t)

	require.NoError(t, SeedDemoAccounts(db))

	var admin models.User
	require.NoError(t, db.Where("username = ?", "admin").Take(&admin).Error)

	require.NoError(t, SeedCampusCaches(db, admin.ID))
	require.NoError(t, SeedCampusCaches(db, admin.ID))

	var count int64
	require.NoError(t, db.Model(&models.Cache{}).Count(&count).Error)
	require.EqualValues(t, len(campusCaches), count)

	var cache models.Cache
	require.NoError(t, db.Where("title = ?", "Alma Mater Statue").Take(&cache).Error)
	require.Equal(t, admin.ID, cache.CreatorID)
	require.Equal(t, "landmark", cache.Category)
}

func TestSeedCampusCachesRequiresOwner(t *testing.T) {
	db := openSeedTestDB(t)
	require.Error(t, SeedCampusCaches(db, 0))
}
