package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuscache/campuscache/internal/services"
	apperrors "github.com/campuscache/campuscache/pkg/errors"
	"github.com/campuscache/campuscache/pkg/metrics"
	"github.com/campuscache/campuscache/pkg/response"
)

// CacheHandler exposes the cache CRUD APIs.
type CacheHandler struct {
	svc *services.CacheService
}

// NewCacheHandler constructs a handler using the provided service.
func NewCacheHandler(svc *services.CacheService) *CacheHandler {
	return &CacheHandler{svc: svc}
}

type createCachePayload struct {
	Title       string   `json:"title" validate:"required,max=120"`
	Description string   `json:"description"`
	Latitude    *float64 `json:"latitude" validate:"required"`
	Longitude   *float64 `json:"longitude" validate:"required"`
	Difficulty  int      `json:"difficulty" validate:"required"`
	Category    string   `json:"category" validate:"max=50"`
}

type updateCachePayload struct {
	Title       *string  `json:"title" validate:"omitempty,max=120"`
	Description *string  `json:"description"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Difficulty  *int     `json:"difficulty"`
	Category    *string  `json:"category" validate:"omitempty,max=50"`
}

// List returns caches matching the optional query-string filters.
func (h *CacheHandler) List(c *gin.Context) {
	difficulty, err := parseOptionalIntQuery(c, "difficulty")
	if err != nil {
		response.Error(c, err)
		return
	}

	caches, err := h.svc.List(requestContext(c), services.CacheFilters{
		Query:      c.Query("q"),
		Difficulty: difficulty,
		Category:   c.Query("category"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, caches)
}

// Get fetches a single cache by id.
func (h *CacheHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	cache, err := h.svc.Get(requestContext(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, cache)
}

// Create registers a new cache owned by the authenticated user.
func (h *CacheHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		response.Error(c, apperrors.ErrUnauthorized)
		return
	}

	var payload createCachePayload
	if !bindAndValidate(c, &payload) {
		return
	}

	cache, err := h.svc.Create(requestContext(c), user.ID, services.CreateCacheInput{
		Title:       payload.Title,
		Description: payload.Description,
		Latitude:    *payload.Latitude,
		Longitude:   *payload.Longitude,
		Difficulty:  payload.Difficulty,
		Category:    payload.Category,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	metrics.CachesCreated.Inc()

	response.Success(c, http.StatusCreated, cache)
}

// Update applies a partial update to a cache owned by the caller.
func (h *CacheHandler) Update(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		response.Error(c, apperrors.ErrUnauthorized)
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var payload updateCachePayload
	if !bindAndValidate(c, &payload) {
		return
	}

	cache, err := h.svc.Update(requestContext(c), id, user.ID, services.UpdateCacheInput{
		Title:       payload.Title,
		Description: payload.Description,
		Latitude:    payload.Latitude,
		Longitude:   payload.Longitude,
		Difficulty:  payload.Difficulty,
		Category:    payload.Category,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, cache)
}

// Delete removes a cache owned by the caller.
func (h *CacheHandler) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		response.Error(c, apperrors.ErrUnauthorized)
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(requestContext(c), id, user.ID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// Mine lists the caches created by the authenticated user.
func (h *CacheHandler) Mine(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		response.Error(c, apperrors.ErrUnauthorized)
		return
	}

	caches, err := h.svc.ListByCreator(requestContext(c), user.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, caches)
}
