package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuscache/campuscache/internal/services"
	apperrors "github.com/campuscache/campuscache/pkg/errors"
	"github.com/campuscache/campuscache/pkg/metrics"
	"github.com/campuscache/campuscache/pkg/response"
)

// LogHandler exposes the find-logging APIs.
type LogHandler struct {
	svc *services.LogService
}

// NewLogHandler constructs a handler using the provided service.
func NewLogHandler(svc *services.LogService) *LogHandler {
	return &LogHandler{svc: svc}
}

type logFindPayload struct {
	CacheID uint   `json:"cache_id" validate:"required"`
	Note    string `json:"note" validate:"max=500"`
}

// Create records that the authenticated user found a cache.
func (h *LogHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		response.Error(c, apperrors.ErrUnauthorized)
		return
	}

	var payload logFindPayload
	if !bindAndValidate(c, &payload) {
		return
	}

	entry, err := h.svc.Create(requestContext(c), user.ID, services.LogFindInput{
		CacheID: payload.CacheID,
		Note:    payload.Note,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	metrics.FindsLogged.Inc()

	response.Success(c, http.StatusCreated, entry)
}

// Mine lists the authenticated user's finds, most recent first.
func (h *LogHandler) Mine(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		response.Error(c, apperrors.ErrUnauthorized)
		return
	}

	entries, err := h.svc.ListByUser(requestContext(c), user.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, entries)
}
