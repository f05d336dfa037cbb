package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuscache/campuscache/internal/services"
	"github.com/campuscache/campuscache/pkg/response"
)

// LeaderboardHandler exposes the find-count ranking.
type LeaderboardHandler struct {
	svc *services.LeaderboardService
}

// NewLeaderboardHandler constructs a handler using the provided service.
func NewLeaderboardHandler(svc *services.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{svc: svc}
}

// Top returns up to the top 20 users ordered by find count.
func (h *LeaderboardHandler) Top(c *gin.Context) {
	entries, err := h.svc.Top(requestContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, entries)
}
