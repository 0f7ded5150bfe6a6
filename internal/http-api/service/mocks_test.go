package service

import (
	"context"
	"io"
	"log/slog"

	"mediareview/internal/http-api/models"
	"mediareview/internal/http-api/repository"

	"github.com/stretchr/testify/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockRatingRepository struct {
	mock.Mock
}

func (m *MockRatingRepository) Create(ctx context.Context, rating *models.Rating) error {
	args := m.Called(ctx, rating)
	return args.Error(0)
}

func (m *MockRatingRepository) ListByUser(ctx context.Context, userID int64) ([]models.Rating, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Rating), args.Error(1)
}

func (m *MockRatingRepository) GetByUserAndMedia(ctx context.Context, userID int64, mediaID string) (*models.Rating, error) {
	args := m.Called(ctx, userID, mediaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rating), args.Error(1)
}

func (m *MockRatingRepository) Delete(ctx context.Context, ratingID, userID int64) error {
	args := m.Called(ctx, ratingID, userID)
	return args.Error(0)
}

func (m *MockRatingRepository) TopByUser(ctx context.Context, userID int64, minScore float64, limit int) ([]models.MediaSummary, error) {
	args := m.Called(ctx, userID, minScore, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MediaSummary), args.Error(1)
}

type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) Add(ctx context.Context, favorite *models.Favorite) error {
	args := m.Called(ctx, favorite)
	return args.Error(0)
}

func (m *MockFavoriteRepository) List(ctx context.Context, userID int64) ([]models.Favorite, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Favorite), args.Error(1)
}

func (m *MockFavoriteRepository) Remove(ctx context.Context, favoriteID, userID int64) error {
	args := m.Called(ctx, favoriteID, userID)
	return args.Error(0)
}

type MockRankingRepository struct {
	mock.Mock
}

func (m *MockRankingRepository) Rank(ctx context.Context, q repository.RankingQuery) ([]models.RankedMedia, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RankedMedia), args.Error(1)
}
