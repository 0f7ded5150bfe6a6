package models

import "time"

// Favorite marks a media item in a user's favorites list. (user_id, media_id) is unique.
type Favorite struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     int64     `gorm:"not null;uniqueIndex:idx_favorites_user_media,priority:1;index" json:"user_id"`
	MediaID    string    `gorm:"not null;uniqueIndex:idx_favorites_user_media,priority:2" json:"media_id"`
	MediaType  MediaType `gorm:"type:text;not null;check:media_type IN ('movie','tv','book')" json:"media_type"`
	MediaTitle string    `gorm:"not null" json:"media_title"`
	PosterPath *string   `json:"poster_path"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"-"`
}

func (Favorite) TableName() string {
	return "favorites"
}
