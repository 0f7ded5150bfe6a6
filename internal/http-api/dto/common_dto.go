package dto

import "mediareview/internal/http-api/models"

// CreatedResponse: returned after a rating or favorite is stored
type CreatedResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type RecommendationsResponse struct {
	Recommendations []models.MediaSummary `json:"recommendations"`
}

type RankingResponse struct {
	Ranking []models.RankedMedia `json:"ranking"`
}
