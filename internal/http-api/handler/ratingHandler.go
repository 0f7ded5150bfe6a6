package handler

import (
	"log/slog"
	"net/http"

	"mediareview/internal/http-api/dto"
	"mediareview/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type RatingHandler struct {
	ratingService service.RatingService
	logger        *slog.Logger
}

func NewRatingHandler(ratingService service.RatingService, logger *slog.Logger) *RatingHandler {
	return &RatingHandler{
		ratingService: ratingService,
		logger:        logger,
	}
}

// RegisterRoutes registers rating-related routes
func (h *RatingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/:user_id", h.Create)
	rg.GET("/:user_id", h.List)
	rg.GET("/media/:media_id", h.GetForMedia)
	rg.DELETE("/:rating_id", h.Delete)
}

// Create rates a media item for a user
// POST /api/ratings/:user_id
func (h *RatingHandler) Create(c *gin.Context) {
	userID, ok := parseID(c, "user_id")
	if !ok {
		return
	}

	var req dto.CreateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	id, err := h.ratingService.Create(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.CreatedResponse{Message: "rating created", ID: id})
}

// List returns a user's ratings, newest first
// GET /api/ratings/:user_id
func (h *RatingHandler) List(c *gin.Context) {
	userID, ok := parseID(c, "user_id")
	if !ok {
		return
	}

	ratings, err := h.ratingService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewRatingListResponse(ratings))
}

// GetForMedia returns the user's rating of one media item
// GET /api/ratings/media/:media_id?user_id=
func (h *RatingHandler) GetForMedia(c *gin.Context) {
	userID, ok := queryUserID(c)
	if !ok {
		return
	}

	rating, err := h.ratingService.GetByUserAndMedia(c.Request.Context(), userID, c.Param("media_id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromModelToRatingResponse(rating))
}

// Delete removes a rating owned by the user
// DELETE /api/ratings/:rating_id?user_id=
func (h *RatingHandler) Delete(c *gin.Context) {
	ratingID, ok := parseID(c, "rating_id")
	if !ok {
		return
	}
	userID, ok := queryUserID(c)
	if !ok {
		return
	}

	if err := h.ratingService.Delete(c.Request.Context(), ratingID, userID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "rating deleted"})
}
