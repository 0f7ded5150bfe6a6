package handler

import (
	"log/slog"
	"net/http"

	"mediareview/internal/http-api/dto"
	"mediareview/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	svc    service.FavoriteService
	logger *slog.Logger
}

func NewFavoriteHandler(svc service.FavoriteService, logger *slog.Logger) *FavoriteHandler {
	return &FavoriteHandler{svc: svc, logger: logger}
}

func (h *FavoriteHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/:user_id", h.Add)
	rg.GET("/:user_id", h.List)
	rg.DELETE("/:favorite_id", h.Remove)
}

// Add media to the user's favorites
func (h *FavoriteHandler) Add(c *gin.Context) {
	userID, ok := parseID(c, "user_id")
	if !ok {
		return
	}

	var req dto.AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	id, err := h.svc.Add(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.CreatedResponse{Message: "favorite added", ID: id})
}

// List the user's favorites
func (h *FavoriteHandler) List(c *gin.Context) {
	userID, ok := parseID(c, "user_id")
	if !ok {
		return
	}

	favorites, err := h.svc.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewFavoriteListResponse(favorites))
}

// Remove a favorite owned by the user
func (h *FavoriteHandler) Remove(c *gin.Context) {
	favoriteID, ok := parseID(c, "favorite_id")
	if !ok {
		return
	}
	userID, ok := queryUserID(c)
	if !ok {
		return
	}

	if err := h.svc.Remove(c.Request.Context(), favoriteID, userID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "favorite removed"})
}
