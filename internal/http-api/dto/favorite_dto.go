package dto

import (
	"time"

	"mediareview/internal/http-api/models"
	"mediareview/internal/http-api/service"
)

// AddFavoriteRequest: payload to add a media item to the user's favorites
type AddFavoriteRequest struct {
	MediaID    string  `json:"media_id" binding:"required"`
	MediaType  string  `json:"media_type" binding:"required,oneof=movie tv book"`
	MediaTitle string  `json:"media_title" binding:"required"`
	PosterPath *string `json:"poster_path"`
}

func (r AddFavoriteRequest) ToInput() service.FavoriteInput {
	return service.FavoriteInput{
		MediaID:    r.MediaID,
		MediaType:  models.MediaType(r.MediaType),
		MediaTitle: r.MediaTitle,
		PosterPath: r.PosterPath,
	}
}

// FavoriteResponse: response for a favorites entry
type FavoriteResponse struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	MediaID    string    `json:"media_id"`
	MediaType  string    `json:"media_type"`
	MediaTitle string    `json:"media_title"`
	PosterPath *string   `json:"poster_path"`
	CreatedAt  time.Time `json:"created_at"`
}

// FavoriteListResponse: list of favorites entries
type FavoriteListResponse struct {
	Favorites []FavoriteResponse `json:"favorites"`
}

func NewFavoriteListResponse(favorites []models.Favorite) FavoriteListResponse {
	items := make([]FavoriteResponse, 0, len(favorites))
	for _, f := range favorites {
		items = append(items, FavoriteResponse{
			ID:         f.ID,
			UserID:     f.UserID,
			MediaID:    f.MediaID,
			MediaType:  string(f.MediaType),
			MediaTitle: f.MediaTitle,
			PosterPath: f.PosterPath,
			CreatedAt:  f.CreatedAt,
		})
	}
	return FavoriteListResponse{Favorites: items}
}
