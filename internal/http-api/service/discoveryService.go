package service

import (
	"context"

	"mediareview/internal/http-api/models"
	"mediareview/internal/http-api/repository"
)

const (
	RecommendMinScore = 8.0
	RecommendLimit    = 10
	RankingLimit      = 50
	RankingMinCount   = 1
)

// DiscoveryService serves the read-only views built from ratings: a user's
// recommendations and the global ranking.
type DiscoveryService interface {
	Recommend(ctx context.Context, userID int64) ([]models.MediaSummary, error)
	Rank(ctx context.Context, mediaType models.MediaType) ([]models.RankedMedia, error)
}

type discoveryService struct {
	ratingRepo  repository.RatingRepository
	rankingRepo repository.RankingRepository
}

func NewDiscoveryService(ratingRepo repository.RatingRepository, rankingRepo repository.RankingRepository) DiscoveryService {
	return &discoveryService{
		ratingRepo:  ratingRepo,
		rankingRepo: rankingRepo,
	}
}

// Recommend returns the user's own highest ratings.
func (s *discoveryService) Recommend(ctx context.Context, userID int64) ([]models.MediaSummary, error) {
	return s.ratingRepo.TopByUser(ctx, userID, RecommendMinScore, RecommendLimit)
}

// Rank aggregates every user's ratings. An empty mediaType ranks all types.
func (s *discoveryService) Rank(ctx context.Context, mediaType models.MediaType) ([]models.RankedMedia, error) {
	if mediaType != "" && !mediaType.Valid() {
		return nil, invalid("media_type", "must be one of movie, tv, book")
	}
	return s.rankingRepo.Rank(ctx, repository.RankingQuery{
		MediaType: mediaType,
		MinCount:  RankingMinCount,
		Limit:     RankingLimit,
	})
}
