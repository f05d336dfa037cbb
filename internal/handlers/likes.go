package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuscache/campuscache/internal/services"
	apperrors "github.com/campuscache/campuscache/pkg/errors"
	"github.com/campuscache/campuscache/pkg/response"
)

// LikeHandler exposes the liked-caches APIs. Like and Unlike are idempotent.
type LikeHandler struct {
	svc *services.LikeService
}

// NewLikeHandler constructs a handler using the provided service.
func NewLikeHandler(svc *services.LikeService) *LikeHandler {
	return &LikeHandler{svc: svc}
}

// Like marks a cache as liked by the authenticated user.
func (h *LikeHandler) Like(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		response.Error(c, apperrors.ErrUnauthorized)
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.svc.Like(requestContext(c), user.ID, id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"liked": true})
}

// Unlike removes the authenticated user's like from a cache.
func (h *LikeHandler) Unlike(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		response.Error(c, apperrors.ErrUnauthorized)
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.svc.Unlike(requestContext(c), user.ID, id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"liked": false})
}

// Liked lists the caches the authenticated user has liked.
func (h *LikeHandler) Liked(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		response.Error(c, apperrors.ErrUnauthorized)
		return
	}

	caches, err := h.svc.ListLiked(requestContext(c), user.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, caches)
}
