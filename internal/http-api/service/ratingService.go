package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"mediareview/internal/http-api/models"
	"mediareview/internal/http-api/repository"
)

// RatingInput is everything needed to create a rating besides its owner.
type RatingInput struct {
	MediaID    string
	MediaType  models.MediaType
	MediaTitle string
	PosterPath *string
	Score      float64
	ReviewText *string
}

// ScoreBounds optionally limits rating scores. A nil side is unbounded.
type ScoreBounds struct {
	Min *float64
	Max *float64
}

func (b ScoreBounds) check(score float64) error {
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return invalid("score", "must be a finite number")
	}
	if b.Min != nil && score < *b.Min {
		return invalid("score", "must be at least %g", *b.Min)
	}
	if b.Max != nil && score > *b.Max {
		return invalid("score", "must be at most %g", *b.Max)
	}
	return nil
}

type RatingService interface {
	Create(ctx context.Context, userID int64, in RatingInput) (int64, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Rating, error)
	GetByUserAndMedia(ctx context.Context, userID int64, mediaID string) (*models.Rating, error)
	Delete(ctx context.Context, ratingID, userID int64) error
}

type ratingService struct {
	ratingRepo repository.RatingRepository
	bounds     ScoreBounds
	logger     *slog.Logger
}

func NewRatingService(ratingRepo repository.RatingRepository, bounds ScoreBounds, logger *slog.Logger) RatingService {
	return &ratingService{
		ratingRepo: ratingRepo,
		bounds:     bounds,
		logger:     logger,
	}
}

// validateMedia checks the fields shared by ratings and favorites.
func validateMedia(mediaID string, mediaType models.MediaType, title string) error {
	if strings.TrimSpace(mediaID) == "" {
		return invalid("media_id", "is required")
	}
	if !mediaType.Valid() {
		return invalid("media_type", "must be one of movie, tv, book")
	}
	if strings.TrimSpace(title) == "" {
		return invalid("media_title", "is required")
	}
	return nil
}

// Create stores a new rating and returns its id. Rating the same media twice
// fails with ErrAlreadyRated; existing ratings are never overwritten.
func (s *ratingService) Create(ctx context.Context, userID int64, in RatingInput) (int64, error) {
	if err := validateMedia(in.MediaID, in.MediaType, in.MediaTitle); err != nil {
		return 0, err
	}
	if err := s.bounds.check(in.Score); err != nil {
		return 0, err
	}

	rating := &models.Rating{
		UserID:     userID,
		MediaID:    in.MediaID,
		MediaType:  in.MediaType,
		MediaTitle: in.MediaTitle,
		PosterPath: in.PosterPath,
		Score:      in.Score,
		ReviewText: in.ReviewText,
	}

	if err := s.ratingRepo.Create(ctx, rating); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateKey):
			return 0, ErrAlreadyRated
		case errors.Is(err, repository.ErrForeignKey):
			return 0, invalid("user_id", "unknown user")
		}
		return 0, err
	}

	s.logger.Info("rating created", "rating_id", rating.ID, "user_id", userID, "media_id", in.MediaID)
	return rating.ID, nil
}

// ListByUser returns the user's ratings newest first, empty when there are none.
func (s *ratingService) ListByUser(ctx context.Context, userID int64) ([]models.Rating, error) {
	return s.ratingRepo.ListByUser(ctx, userID)
}

func (s *ratingService) GetByUserAndMedia(ctx context.Context, userID int64, mediaID string) (*models.Rating, error) {
	rating, err := s.ratingRepo.GetByUserAndMedia(ctx, userID, mediaID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("rating %w", ErrNotFound)
		}
		return nil, err
	}
	return rating, nil
}

// Delete removes a rating owned by userID.
func (s *ratingService) Delete(ctx context.Context, ratingID, userID int64) error {
	if err := s.ratingRepo.Delete(ctx, ratingID, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("rating %w", ErrNotFound)
		}
		return err
	}

	s.logger.Info("rating deleted", "rating_id", ratingID, "user_id", userID)
	return nil
}
