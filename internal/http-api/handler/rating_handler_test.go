package handler_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"mediareview/internal/http-api/models"
	"mediareview/internal/http-api/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func stringPtr(s string) *string { return &s }

func TestCreateRating_Success(t *testing.T) {
	r, m := setupRouter()

	want := service.RatingInput{
		MediaID:    "603",
		MediaType:  models.MediaMovie,
		MediaTitle: "The Matrix",
		PosterPath: stringPtr("/matrix.jpg"),
		Score:      9.5,
		ReviewText: stringPtr("whoa"),
	}
	m.ratings.On("Create", mock.Anything, int64(1), want).Return(int64(11), nil)

	w := doRequest(r, http.MethodPost, "/api/ratings/1", map[string]any{
		"media_id":    "603",
		"media_type":  "movie",
		"media_title": "The Matrix",
		"poster_path": "/matrix.jpg",
		"score":       9.5,
		"review_text": "whoa",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(11), decode(t, w)["id"])
	m.ratings.AssertExpectations(t)
}

func TestCreateRating_ZeroScoreIsAccepted(t *testing.T) {
	r, m := setupRouter()
	m.ratings.On("Create", mock.Anything, int64(1), mock.MatchedBy(func(in service.RatingInput) bool {
		return in.Score == 0 && in.PosterPath == nil && in.ReviewText == nil
	})).Return(int64(12), nil)

	w := doRequest(r, http.MethodPost, "/api/ratings/1", map[string]any{
		"media_id": "b9", "media_type": "book", "media_title": "Ulysses", "score": 0,
	})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateRating_AlreadyRated(t *testing.T) {
	r, m := setupRouter()
	m.ratings.On("Create", mock.Anything, int64(1), mock.Anything).Return(int64(0), service.ErrAlreadyRated)

	w := doRequest(r, http.MethodPost, "/api/ratings/1", map[string]any{
		"media_id": "m1", "media_type": "tv", "media_title": "Lost", "score": 7,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, service.ErrAlreadyRated.Error(), decode(t, w)["error"])
}

func TestCreateRating_BadInput(t *testing.T) {
	tests := []struct {
		name string
		path string
		body map[string]any
		want string
	}{
		{"bad user id", "/api/ratings/abc", map[string]any{"media_id": "m1", "media_type": "tv", "media_title": "t", "score": 1}, "user_id"},
		{"missing score", "/api/ratings/1", map[string]any{"media_id": "m1", "media_type": "tv", "media_title": "t"}, "score"},
		{"bad media type", "/api/ratings/1", map[string]any{"media_id": "m1", "media_type": "game", "media_title": "t", "score": 1}, "media_type"},
		{"score not numeric", "/api/ratings/1", map[string]any{"media_id": "m1", "media_type": "tv", "media_title": "t", "score": "ten"}, "malformed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, m := setupRouter()
			w := doRequest(r, http.MethodPost, tt.path, tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, decode(t, w)["error"], tt.want)
			m.ratings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestCreateRating_ValidationFromService(t *testing.T) {
	r, m := setupRouter()
	m.ratings.On("Create", mock.Anything, int64(1), mock.Anything).
		Return(int64(0), &service.ValidationError{Field: "score", Message: "must be at most 10"})

	w := doRequest(r, http.MethodPost, "/api/ratings/1", map[string]any{
		"media_id": "m1", "media_type": "tv", "media_title": "t", "score": 11,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "score: must be at most 10", decode(t, w)["error"])
}

func TestListRatings(t *testing.T) {
	r, m := setupRouter()
	now := time.Now()
	m.ratings.On("ListByUser", mock.Anything, int64(3)).Return([]models.Rating{
		{ID: 2, UserID: 3, MediaID: "b", MediaType: models.MediaTV, Score: 6, CreatedAt: now},
		{ID: 1, UserID: 3, MediaID: "a", MediaType: models.MediaMovie, Score: 8, CreatedAt: now.Add(-time.Hour)},
	}, nil)
	m.ratings.On("ListByUser", mock.Anything, int64(4)).Return([]models.Rating{}, nil)

	w := doRequest(r, http.MethodGet, "/api/ratings/3", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	ratings := decode(t, w)["ratings"].([]any)
	assert.Len(t, ratings, 2)
	assert.Equal(t, "b", ratings[0].(map[string]any)["media_id"])

	w = doRequest(r, http.MethodGet, "/api/ratings/4", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ratings":[]}`, w.Body.String())
}

func TestGetRatingForMedia(t *testing.T) {
	r, m := setupRouter()
	m.ratings.On("GetByUserAndMedia", mock.Anything, int64(1), "m1").
		Return(&models.Rating{ID: 5, UserID: 1, MediaID: "m1", MediaType: models.MediaBook, Score: 7.5}, nil)
	m.ratings.On("GetByUserAndMedia", mock.Anything, int64(1), "m2").
		Return(nil, fmt.Errorf("rating %w", service.ErrNotFound))

	w := doRequest(r, http.MethodGet, "/api/ratings/media/m1?user_id=1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, float64(5), body["id"])
	assert.Equal(t, "book", body["media_type"])

	w = doRequest(r, http.MethodGet, "/api/ratings/media/m2?user_id=1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "rating not found", decode(t, w)["error"])

	w = doRequest(r, http.MethodGet, "/api/ratings/media/m1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteRating(t *testing.T) {
	r, m := setupRouter()
	m.ratings.On("Delete", mock.Anything, int64(9), int64(2)).Return(nil)
	m.ratings.On("Delete", mock.Anything, int64(9), int64(1)).Return(fmt.Errorf("rating %w", service.ErrNotFound))

	w := doRequest(r, http.MethodDelete, "/api/ratings/9?user_id=2", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// someone else's rating looks exactly like a missing one
	w = doRequest(r, http.MethodDelete, "/api/ratings/9?user_id=1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(r, http.MethodDelete, "/api/ratings/9?user_id=zero", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	m.ratings.AssertExpectations(t)
}
