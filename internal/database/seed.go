package database

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/campuscache/campuscache/internal/models"
	"github.com/campuscache/campuscache/pkg/crypto"
)

// DemoAccount describes a fixed account reconciled by SeedDemoAccounts.
type DemoAccount struct {
	Username    string
	Password    string
	DisplayName string
}

// DemoAccounts are the fixed demo identities. Their password hashes are
// rewritten on every reconciliation so "admin"/"password" always works,
// even if a prior run corrupted the stored hash.
var DemoAccounts = []DemoAccount{
	{Username: "admin", Password: "password", DisplayName: "Admin"},
	{Username: "alex", Password: "password", DisplayName: "Alex"},
}

// SeedDemoAccounts creates the demo accounts or rewrites their credentials
// when they already exist. It runs in a single transaction.
func SeedDemoAccounts(db *gorm.DB) error {
	if db == nil {
		return errors.New("nil database handle")
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, account := range DemoAccounts {
			hashed, err := crypto.HashPassword(account.Password)
			if err != nil {
				return fmt.Errorf("hash password for %s: %w", account.Username, err)
			}

			var user models.User
			err = tx.Where("username = ?", account.Username).Take(&user).Error
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				user = models.User{
					Username:    account.Username,
					Password:    hashed,
					DisplayName: account.DisplayName,
				}
				if err := tx.Create(&user).Error; err != nil {
					return fmt.Errorf("create %s: %w", account.Username, err)
				}
			case err != nil:
				return fmt.Errorf("lookup %s: %w", account.Username, err)
			default:
				updates := map[string]any{
					"password":     hashed,
					"display_name": account.DisplayName,
				}
				if err := tx.Model(&user).Updates(updates).Error; err != nil {
					return fmt.Errorf("reconcile %s: %w", account.Username, err)
				}
			}
		}
		return nil
	})
}

// SeedCampusCaches loads the campus landmark fixtures, owned by ownerID.
// Fixtures already present (matched by title) are left untouched.
func SeedCampusCaches(db *gorm.DB, ownerID uint) error {
	if db == nil {
		return errors.New("nil database handle")
	}
	if ownerID == 0 {
		return errors.New("owner id is required")
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, fixture := range campusCaches {
			var count int64
			if err := tx.Model(&models.Cache{}).Where("title = ?", fixture.Title).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				continue
			}

			cache := fixture
			cache.CreatorID = ownerID
			if err := tx.Create(&cache).Error; err != nil {
				return fmt.Errorf("seed cache %q: %w", fixture.Title, err)
			}
		}
		return nil
	})
}
