package models

import "time"

// Rating is one user's score and optional review for one media item.
// (user_id, media_id) is unique.
type Rating struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID     int64     `json:"user_id" gorm:"not null;uniqueIndex:idx_ratings_user_media,priority:1;index"`
	MediaID    string    `json:"media_id" gorm:"not null;uniqueIndex:idx_ratings_user_media,priority:2"`
	MediaType  MediaType `json:"media_type" gorm:"type:text;not null;index;check:media_type IN ('movie','tv','book')"`
	MediaTitle string    `json:"media_title" gorm:"not null"`
	PosterPath *string   `json:"poster_path"`
	Score      float64   `json:"score" gorm:"not null;index"`
	ReviewText *string   `json:"review_text"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime;index"`

	// Associations
	User *User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
}

func (Rating) TableName() string {
	return "ratings"
}
