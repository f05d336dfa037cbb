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

// ErrFindAlreadyLogged reports a second find for the same (user, cache) pair.
var ErrFindAlreadyLogged = apperrors.New("FIND_ALREADY_LOGGED", "You have already logged this cache", http.StatusConflict)

// LogFindInput captures the fields accepted when logging a find.
type LogFindInput struct {
	CacheID uint
	Note    string
}

// LogService records cache finds. Uniqueness of the (user, cache) pair is
// the storage engine's job: the insert either fully applies or rolls back,
// so concurrent duplicates resolve to exactly one success.
type LogService struct {
	db *gorm.DB
}

// NewLogService constructs a log service once a database handle is supplied.
func NewLogService(db *gorm.DB) (*LogService, error) {
	if db == nil {
		return nil, errors.New("log service: db is required")
	}
	return &LogService{db: db}, nil
}

// Create records that userID found the cache. A missing cache yields
// ErrCacheNotFound; a duplicate pair yields ErrFindAlreadyLogged.
func (s *LogService) Create(ctx context.Context, userID uint, input LogFindInput) (*models.LogEntry, error) {
	ctx = ensureContext(ctx)

	if userID == 0 {
		return nil, errors.New("log service: user id is required")
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Cache{}).Where("id = ?", input.CacheID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("log service: check cache: %w", err)
	}
	if count == 0 {
		return nil, ErrCacheNotFound
	}

	entry := &models.LogEntry{
		UserID:  userID,
		CacheID: input.CacheID,
		Note:    strings.TrimSpace(input.Note),
	}

	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		if isUniqueConstraintError(err) {
			return nil, ErrFindAlreadyLogged
		}
		return nil, fmt.Errorf("log service: create log: %w", err)
	}

	return entry, nil
}

// ListByUser returns a user's finds, most recent first.
func (s *LogService) ListByUser(ctx context.Context, userID uint) ([]models.LogEntry, error) {
	ctx = ensureContext(ctx)

	var entries []models.LogEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("found_at DESC, id DESC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("log service: list logs: %w", err)
	}
	return entries, nil
}
