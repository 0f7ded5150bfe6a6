package service

import (
	"context"
	"testing"

	"mediareview/internal/http-api/models"
	"mediareview/internal/http-api/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRecommend_UsesThresholdAndLimit(t *testing.T) {
	ratings := new(MockRatingRepository)
	svc := NewDiscoveryService(ratings, new(MockRankingRepository))
	ctx := context.Background()

	want := []models.MediaSummary{
		{MediaID: "a", Score: 9},
		{MediaID: "b", Score: 8},
		{MediaID: "c", Score: 8},
	}
	ratings.On("TopByUser", ctx, int64(1), 8.0, 10).Return(want, nil)

	got, err := svc.Recommend(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	ratings.AssertExpectations(t)
}

func TestRank_PassesFilterAsQuery(t *testing.T) {
	ranking := new(MockRankingRepository)
	svc := NewDiscoveryService(new(MockRatingRepository), ranking)
	ctx := context.Background()

	rows := []models.RankedMedia{
		{MediaID: "m2", AverageScore: 9.5, RatingCount: 1},
		{MediaID: "m1", AverageScore: 8.0, RatingCount: 2},
	}
	ranking.On("Rank", ctx, repository.RankingQuery{MediaType: models.MediaTV, MinCount: 1, Limit: 50}).Return(rows, nil)
	ranking.On("Rank", ctx, repository.RankingQuery{MinCount: 1, Limit: 50}).Return([]models.RankedMedia{}, nil)

	got, err := svc.Rank(ctx, models.MediaTV)
	require.NoError(t, err)
	assert.Equal(t, rows, got)

	all, err := svc.Rank(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, all)

	ranking.AssertExpectations(t)
}

func TestRank_RejectsUnknownType(t *testing.T) {
	ranking := new(MockRankingRepository)
	svc := NewDiscoveryService(new(MockRatingRepository), ranking)

	_, err := svc.Rank(context.Background(), "movie' OR '1'='1")
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "media_type", ve.Field)
	ranking.AssertNotCalled(t, "Rank", mock.Anything, mock.Anything)
}
