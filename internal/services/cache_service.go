package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"gorm.io/gorm"

	"github.com/campuscache/campuscache/internal/models"
	apperrors "github.com/campuscache/campuscache/pkg/errors"
)

var (
	// ErrCacheNotFound indicates the requested cache does not exist.
	ErrCacheNotFound = apperrors.New("CACHE_NOT_FOUND", "Cache not found", http.StatusNotFound)
	// ErrNotCacheOwner rejects mutations by anyone other than the creator.
	ErrNotCacheOwner = apperrors.New("NOT_CACHE_OWNER", "Only the cache creator may modify it", http.StatusForbidden)
	// ErrInvalidDifficulty rejects difficulties outside the accepted range
	// before anything touches storage.
	ErrInvalidDifficulty = apperrors.New("INVALID_DIFFICULTY", "Difficulty must be between 1 and 5", http.StatusBadRequest)
)

// CreateCacheInput captures required fields when creating a cache.
type CreateCacheInput struct {
	Title       string
	Description string
	Latitude    float64
	Longitude   float64
	Difficulty  int
	Category    string
}

// UpdateCacheInput describes mutable cache fields. A nil pointer means the
// field is absent from the request and stays untouched.
type UpdateCacheInput struct {
	Title       *string
	Description *string
	Latitude    *float64
	Longitude   *float64
	Difficulty  *int
	Category    *string
}

// CacheFilters narrows the cache listing. All provided filters combine
// with logical AND.
type CacheFilters struct {
	Query      string // case-insensitive substring match on title
	Difficulty *int
	Category   string
}

// CacheService manages the cache lifecycle and enforces creator ownership.
type CacheService struct {
	db *gorm.DB
}

// NewCacheService constructs a cache service once a database handle is supplied.
func NewCacheService(db *gorm.DB) (*CacheService, error) {
	if db == nil {
		return nil, errors.New("cache service: db is required")
	}
	return &CacheService{db: db}, nil
}

// Create persists a new cache owned by creatorID.
func (s *CacheService) Create(ctx context.Context, creatorID uint, input CreateCacheInput) (*models.Cache, error) {
	ctx = ensureContext(ctx)

	if creatorID == 0 {
		return nil, errors.New("cache service: creator id is required")
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, apperrors.NewBadRequest("title is required")
	}

	if !models.ValidDifficulty(input.Difficulty) {
		return nil, ErrInvalidDifficulty
	}

	category := strings.TrimSpace(input.Category)
	if category == "" {
		category = models.DefaultCategory
	}

	cache := &models.Cache{
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		Difficulty:  input.Difficulty,
		Category:    category,
		CreatorID:   creatorID,
	}

	if err := s.db.WithContext(ctx).Create(cache).Error; err != nil {
		return nil, fmt.Errorf("cache service: create cache: %w", err)
	}
	return cache, nil
}

// Get fetches a single cache by id.
func (s *CacheService) Get(ctx context.Context, id uint) (*models.Cache, error) {
	ctx = ensureContext(ctx)

	var cache models.Cache
	if err := s.db.WithContext(ctx).Take(&cache, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCacheNotFound
		}
		return nil, fmt.Errorf("cache service: get cache: %w", err)
	}
	return &cache, nil
}

// List retrieves caches matching the supplied filters, newest first.
func (s *CacheService) List(ctx context.Context, filters CacheFilters) ([]models.Cache, error) {
	ctx = ensureContext(ctx)

	q := s.db.WithContext(ctx).Model(&models.Cache{})

	if query := strings.TrimSpace(filters.Query); query != "" {
		q = q.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(query)+"%")
	}
	if filters.Difficulty != nil {
		q = q.Where("difficulty = ?", *filters.Difficulty)
	}
	if category := strings.TrimSpace(filters.Category); category != "" {
		q = q.Where("category = ?", category)
	}

	var caches []models.Cache
	if err := q.Order("created_at DESC, id DESC").Find(&caches).Error; err != nil {
		return nil, fmt.Errorf("cache service: list caches: %w", err)
	}
	return caches, nil
}

// ListByCreator retrieves the caches created by a user, newest first.
func (s *CacheService) ListByCreator(ctx context.Context, creatorID uint) ([]models.Cache, error) {
	ctx = ensureContext(ctx)

	var caches []models.Cache
	err := s.db.WithContext(ctx).
		Where("creator_id = ?", creatorID).
		Order("created_at DESC, id DESC").
		Find(&caches).Error
	if err != nil {
		return nil, fmt.Errorf("cache service: list by creator: %w", err)
	}
	return caches, nil
}

// Update applies the provided changes to a cache after the ownership check.
// Existence is checked before ownership so a non-owner only sees "not found"
// when the cache truly does not exist. Absent fields stay untouched.
func (s *CacheService) Update(ctx context.Context, id, callerID uint, input UpdateCacheInput) (*models.Cache, error) {
	ctx = ensureContext(ctx)

	cache, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if cache.CreatorID != callerID {
		return nil, ErrNotCacheOwner
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, apperrors.NewBadRequest("title must not be empty")
		}
		cache.Title = title
	}
	if input.Description != nil {
		cache.Description = strings.TrimSpace(*input.Description)
	}
	if input.Latitude != nil {
		cache.Latitude = *input.Latitude
	}
	if input.Longitude != nil {
		cache.Longitude = *input.Longitude
	}
	if input.Difficulty != nil {
		if !models.ValidDifficulty(*input.Difficulty) {
			return nil, ErrInvalidDifficulty
		}
		cache.Difficulty = *input.Difficulty
	}
	if input.Category != nil {
		category := strings.TrimSpace(*input.Category)
		if category == "" {
			category = models.DefaultCategory
		}
		cache.Category = category
	}

	if err := s.db.WithContext(ctx).Save(cache).Error; err != nil {
		return nil, fmt.Errorf("cache service: update cache: %w", err)
	}
	return cache, nil
}

// Delete removes a cache and cascades its log entries and likes in one
// transaction. The same existence-before-ownership ordering as Update applies.
func (s *CacheService) Delete(ctx context.Context, id, callerID uint) error {
	ctx = ensureContext(ctx)

	cache, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if cache.CreatorID != callerID {
		return ErrNotCacheOwner
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cache_id = ?", cache.ID).Delete(&models.LogEntry{}).Error; err != nil {
			return err
		}
		if err := tx.Where("cache_id = ?", cache.ID).Delete(&models.CacheLike{}).Error; err != nil {
			return err
		}
		return tx.Delete(cache).Error
	})
	if err != nil {
		return fmt.Errorf("cache service: delete cache: %w", err)
	}
	return nil
}
