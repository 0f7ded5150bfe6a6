package repository

import (
	"context"
	"database/sql"
	"fmt"

	"mediareview/internal/http-api/models"

	"gorm.io/gorm"
)

// RankingQuery selects which groups of ratings the ranking aggregates.
// An empty MediaType ranks every type.
type RankingQuery struct {
	MediaType models.MediaType
	MinCount  int
	Limit     int
}

type RankingRepository interface {
	Rank(ctx context.Context, q RankingQuery) ([]models.RankedMedia, error)
}

type rankingRepository struct {
	db *gorm.DB
}

func NewRankingRepository(db *gorm.DB) RankingRepository {
	return &rankingRepository{db: db}
}

// snapshot is the transaction the ranking aggregate runs in, one consistent
// view of the ratings table for the whole query.
var snapshot = &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}

// Rank groups all ratings by media_id and orders them by average score, then
// by number of ratings. The media type filter is applied before grouping and
// is always a bound parameter.
func (r *rankingRepository) Rank(ctx context.Context, q RankingQuery) ([]models.RankedMedia, error) {
	ranking := make([]models.RankedMedia, 0)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		query := tx.Model(&models.Rating{}).
			Select(`media_id,
				MAX(media_type) AS media_type,
				MAX(media_title) AS media_title,
				MAX(poster_path) AS poster_path,
				AVG(score) AS average_score,
				COUNT(*) AS rating_count`)

		if q.MediaType != "" {
			query = query.Where("media_type = ?", q.MediaType)
		}

		return query.
			Group("media_id").
			Having("COUNT(*) >= ?", q.MinCount).
			Order("average_score DESC").
			Order("rating_count DESC").
			Order("media_id ASC").
			Limit(q.Limit).
			Scan(&ranking).Error
	}, snapshot)
	if err != nil {
		return nil, fmt.Errorf("rank media: %w", err)
	}

	return ranking, nil
}
