package models

// MediaSummary is a rated item as returned by recommendations.
type MediaSummary struct {
	MediaID    string    `json:"media_id"`
	MediaType  MediaType `json:"media_type"`
	MediaTitle string    `json:"media_title"`
	PosterPath *string   `json:"poster_path"`
	Score      float64   `json:"score"`
}

// RankedMedia is one aggregated row of the global ranking.
type RankedMedia struct {
	MediaID      string    `json:"media_id"`
	MediaType    MediaType `json:"media_type"`
	MediaTitle   string    `json:"media_title"`
	PosterPath   *string   `json:"poster_path"`
	AverageScore float64   `json:"average_score"`
	RatingCount  int64     `json:"rating_count"`
}
