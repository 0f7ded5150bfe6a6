package dto

import (
	"time"

	"mediareview/internal/http-api/models"
	"mediareview/internal/http-api/service"
)

// CreateRatingRequest for rating a media item. Score is a pointer so that an
// explicit 0 is told apart from a missing field.
type CreateRatingRequest struct {
	MediaID    string   `json:"media_id" binding:"required"`
	MediaType  string   `json:"media_type" binding:"required,oneof=movie tv book"`
	Score      *float64 `json:"score" binding:"required"`
	ReviewText *string  `json:"review_text"`
	MediaTitle string   `json:"media_title" binding:"required"`
	PosterPath *string  `json:"poster_path"`
}

func (r CreateRatingRequest) ToInput() service.RatingInput {
	return service.RatingInput{
		MediaID:    r.MediaID,
		MediaType:  models.MediaType(r.MediaType),
		MediaTitle: r.MediaTitle,
		PosterPath: r.PosterPath,
		Score:      *r.Score,
		ReviewText: r.ReviewText,
	}
}

// RatingResponse for returning rating information
type RatingResponse struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	MediaID    string    `json:"media_id"`
	MediaType  string    `json:"media_type"`
	MediaTitle string    `json:"media_title"`
	PosterPath *string   `json:"poster_path"`
	Score      float64   `json:"score"`
	ReviewText *string   `json:"review_text"`
	CreatedAt  time.Time `json:"created_at"`
}

// FromModelToRatingResponse converts a Rating model to RatingResponse DTO
func FromModelToRatingResponse(rating *models.Rating) RatingResponse {
	return RatingResponse{
		ID:         rating.ID,
		UserID:     rating.UserID,
		MediaID:    rating.MediaID,
		MediaType:  string(rating.MediaType),
		MediaTitle: rating.MediaTitle,
		PosterPath: rating.PosterPath,
		Score:      rating.Score,
		ReviewText: rating.ReviewText,
		CreatedAt:  rating.CreatedAt,
	}
}

// RatingListResponse wraps a user's ratings
type RatingListResponse struct {
	Ratings []RatingResponse `json:"ratings"`
}

func NewRatingListResponse(ratings []models.Rating) RatingListResponse {
	items := make([]RatingResponse, 0, len(ratings))
	for i := range ratings {
		items = append(items, FromModelToRatingResponse(&ratings[i]))
	}
	return RatingListResponse{Ratings: items}
}
