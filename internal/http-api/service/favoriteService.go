package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"mediareview/internal/http-api/models"
	"mediareview/internal/http-api/repository"
)

// FavoriteInput describes the media item being favorited.
type FavoriteInput struct {
	MediaID    string
	MediaType  models.MediaType
	MediaTitle string
	PosterPath *string
}

type FavoriteService interface {
	Add(ctx context.Context, userID int64, in FavoriteInput) (int64, error)
	List(ctx context.Context, userID int64) ([]models.Favorite, error)
	Remove(ctx context.Context, favoriteID, userID int64) error
}

type favoriteService struct {
	repo   repository.FavoriteRepository
	logger *slog.Logger
}

func NewFavoriteService(repo repository.FavoriteRepository, logger *slog.Logger) FavoriteService {
	return &favoriteService{
		repo:   repo,
		logger: logger,
	}
}

func (s *favoriteService) Add(ctx context.Context, userID int64, in FavoriteInput) (int64, error) {
	if err := validateMedia(in.MediaID, in.MediaType, in.MediaTitle); err != nil {
		return 0, err
	}

	favorite := &models.Favorite{
		UserID:     userID,
		MediaID:    in.MediaID,
		MediaType:  in.MediaType,
		MediaTitle: in.MediaTitle,
		PosterPath: in.PosterPath,
	}

	if err := s.repo.Add(ctx, favorite); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateKey):
			return 0, ErrAlreadyFavorited
		case errors.Is(err, repository.ErrForeignKey):
			return 0, invalid("user_id", "unknown user")
		}
		return 0, err
	}

	s.logger.Info("favorite added", "favorite_id", favorite.ID, "user_id", userID, "media_id", in.MediaID)
	return favorite.ID, nil
}

func (s *favoriteService) List(ctx context.Context, userID int64) ([]models.Favorite, error) {
	return s.repo.List(ctx, userID)
}

func (s *favoriteService) Remove(ctx context.Context, favoriteID, userID int64) error {
	if err := s.repo.Remove(ctx, favoriteID, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("favorite %w", ErrNotFound)
		}
		return err
	}

	s.logger.Info("favorite removed", "favorite_id", favoriteID, "user_id", userID)
	return nil
}
