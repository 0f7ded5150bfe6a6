package repository

import (
	"context"
	"fmt"

	"mediareview/internal/http-api/models"

	"gorm.io/gorm"
)

type FavoriteRepository interface {
	Add(ctx context.Context, favorite *models.Favorite) error
	List(ctx context.Context, userID int64) ([]models.Favorite, error)
	Remove(ctx context.Context, favoriteID, userID int64) error
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Add(ctx context.Context, favorite *models.Favorite) error {
	if err := r.db.WithContext(ctx).Create(favorite).Error; err != nil {
		return fmt.Errorf("add favorite: %w", translate(err))
	}
	return nil
}

func (r *favoriteRepository) List(ctx context.Context, userID int64) ([]models.Favorite, error) {
	favorites := make([]models.Favorite, 0)

	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&favorites).Error; err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}

	return favorites, nil
}

func (r *favoriteRepository) Remove(ctx context.Context, favoriteID, userID int64) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", favoriteID, userID).
		Delete(&models.Favorite{})

	if result.Error != nil {
		return fmt.Errorf("remove favorite: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
