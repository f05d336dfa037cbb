package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/campuscache/campuscache/internal/models"
)

// LikeService manages the liked-caches association. Both operations are
// idempotent: liking an already liked cache and unliking an absent like
// are no-ops.
type LikeService struct {
	db *gorm.DB
}

// NewLikeService constructs a like service once a database handle is supplied.
func NewLikeService(db *gorm.DB) (*LikeService, error) {
	if db == nil {
		return nil, errors.New("like service: db is required")
	}
	return &LikeService{db: db}, nil
}

// Like marks the cache as liked by userID. A missing cache yields ErrCacheNotFound.
func (s *LikeService) Like(ctx context.Context, userID, cacheID uint) error {
	ctx = ensureContext(ctx)

	if userID == 0 {
		return errors.New("like service: user id is required")
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Cache{}).Where("id = ?", cacheID).Count(&count).Error; err != nil {
		return fmt.Errorf("like service: check cache: %w", err)
	}
	if count == 0 {
		return ErrCacheNotFound
	}

	like := &models.CacheLike{UserID: userID, CacheID: cacheID}
	if err := s.db.WithContext(ctx).Create(like).Error; err != nil {
		if isUniqueConstraintError(err) {
			// Already liked.
			return nil
		}
		return fmt.Errorf("like service: create like: %w", err)
	}
	return nil
}

// Unlike removes the like if present.
func (s *LikeService) Unlike(ctx context.Context, userID, cacheID uint) error {
	ctx = ensureContext(ctx)

	err := s.db.WithContext(ctx).
		Where("user_id = ? AND cache_id = ?", userID, cacheID).
		Delete(&models.CacheLike{}).Error
	if err != nil {
		return fmt.Errorf("like service: delete like: %w", err)
	}
	return nil
}

// ListLiked returns the caches a user has liked, most recently liked first.
func (s *LikeService) ListLiked(ctx context.Context, userID uint) ([]models.Cache, error) {
	ctx = ensureContext(ctx)

	var caches []models.Cache
	err := s.db.WithContext(ctx).
		Joins("JOIN cache_likes ON cache_likes.cache_id = caches.id").
		Where("cache_likes.user_id = ?", userID).
		Order("cache_likes.created_at DESC, caches.id DESC").
		Find(&caches).Error
	if err != nil {
		return nil, fmt.Errorf("like service: list liked: %w", err)
	}
	return caches, nil
}
