package repository

import (
	"context"
	"fmt"

	"mediareview/internal/http-api/models"

	"gorm.io/gorm"
)

type RatingRepository interface {
	Create(ctx context.Context, rating *models.Rating) error
	ListByUser(ctx context.Context, userID int64) ([]models.Rating, error)
	GetByUserAndMedia(ctx context.Context, userID int64, mediaID string) (*models.Rating, error)
	Delete(ctx context.Context, ratingID, userID int64) error
	TopByUser(ctx context.Context, userID int64, minScore float64, limit int) ([]models.MediaSummary, error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

// Create a new rating. The (user_id, media_id) unique index rejects a second
// rating for the same item with ErrDuplicateKey; nothing is upserted.
func (r *ratingRepository) Create(ctx context.Context, rating *models.Rating) error {
	if err := r.db.WithContext(ctx).Create(rating).Error; err != nil {
		return fmt.Errorf("create rating: %w", translate(err))
	}
	return nil
}

// ListByUser returns the user's ratings, newest first.
func (r *ratingRepository) ListByUser(ctx context.Context, userID int64) ([]models.Rating, error) {
	ratings := make([]models.Rating, 0)
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&ratings).Error
	if err != nil {
		return nil, fmt.Errorf("list ratings: %w", err)
	}
	return ratings, nil
}

// GetByUserAndMedia retrieves a user's rating for a specific media item
func (r *ratingRepository) GetByUserAndMedia(ctx context.Context, userID int64, mediaID string) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND media_id = ?", userID, mediaID).
		First(&rating).Error
	if err != nil {
		return nil, translate(err)
	}
	return &rating, nil
}

// Delete removes the rating only when it belongs to userID. A missing id and
// someone else's id both report ErrNotFound.
func (r *ratingRepository) Delete(ctx context.Context, ratingID, userID int64) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", ratingID, userID).
		Delete(&models.Rating{})
	if result.Error != nil {
		return fmt.Errorf("delete rating: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// TopByUser returns the user's own ratings at or above minScore, best first.
func (r *ratingRepository) TopByUser(ctx context.Context, userID int64, minScore float64, limit int) ([]models.MediaSummary, error) {
	top := make([]models.MediaSummary, 0)
	err := r.db.WithContext(ctx).
		Model(&models.Rating{}).
		Select("media_id, media_type, media_title, poster_path, score").
		Where("user_id = ? AND score >= ?", userID, minScore).
		Order("score DESC").
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Scan(&top).Error
	if err != nil {
		return nil, fmt.Errorf("top ratings: %w", err)
	}
	return top, nil
}
