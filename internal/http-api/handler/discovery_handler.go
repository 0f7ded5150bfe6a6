package handler

import (
	"log/slog"
	"net/http"

	"mediareview/internal/http-api/dto"
	"mediareview/internal/http-api/models"
	"mediareview/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type DiscoveryHandler struct {
	svc    service.DiscoveryService
	logger *slog.Logger
}

func NewDiscoveryHandler(svc service.DiscoveryService, logger *slog.Logger) *DiscoveryHandler {
	return &DiscoveryHandler{svc: svc, logger: logger}
}

// Recommendations returns the user's best-rated items
// GET /api/recommendations/:user_id
func (h *DiscoveryHandler) Recommendations(c *gin.Context) {
	userID, ok := parseID(c, "user_id")
	if !ok {
		return
	}

	items, err := h.svc.Recommend(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.RecommendationsResponse{Recommendations: items})
}

// Ranking returns the global ranking, optionally for one media type
// GET /api/ranking?media_type=
func (h *DiscoveryHandler) Ranking(c *gin.Context) {
	mediaType := models.MediaType(c.Query("media_type"))

	ranking, err := h.svc.Rank(c.Request.Context(), mediaType)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.RankingResponse{Ranking: ranking})
}
