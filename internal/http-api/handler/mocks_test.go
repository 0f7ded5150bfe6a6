package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"mediareview/internal/http-api/handler"
	"mediareview/internal/http-api/models"
	"mediareview/internal/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- MOCK SERVICES ---

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	args := m.Called(ctx, name, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockRatingService struct {
	mock.Mock
}

func (m *MockRatingService) Create(ctx context.Context, userID int64, in service.RatingInput) (int64, error) {
	args := m.Called(ctx, userID, in)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRatingService) ListByUser(ctx context.Context, userID int64) ([]models.Rating, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Rating), args.Error(1)
}

func (m *MockRatingService) GetByUserAndMedia(ctx context.Context, userID int64, mediaID string) (*models.Rating, error) {
	args := m.Called(ctx, userID, mediaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rating), args.Error(1)
}

func (m *MockRatingService) Delete(ctx context.Context, ratingID, userID int64) error {
	args := m.Called(ctx, ratingID, userID)
	return args.Error(0)
}

type MockFavoriteService struct {
	mock.Mock
}

func (m *MockFavoriteService) Add(ctx context.Context, userID int64, in service.FavoriteInput) (int64, error) {
	args := m.Called(ctx, userID, in)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFavoriteService) List(ctx context.Context, userID int64) ([]models.Favorite, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Favorite), args.Error(1)
}

func (m *MockFavoriteService) Remove(ctx context.Context, favoriteID, userID int64) error {
	args := m.Called(ctx, favoriteID, userID)
	return args.Error(0)
}

type MockDiscoveryService struct {
	mock.Mock
}

func (m *MockDiscoveryService) Recommend(ctx context.Context, userID int64) ([]models.MediaSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MediaSummary), args.Error(1)
}

func (m *MockDiscoveryService) Rank(ctx context.Context, mediaType models.MediaType) ([]models.RankedMedia, error) {
	args := m.Called(ctx, mediaType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RankedMedia), args.Error(1)
}

// --- SETUP ---

type mocks struct {
	auth      *MockAuthService
	ratings   *MockRatingService
	favorites *MockFavoriteService
	discovery *MockDiscoveryService
}

func setupRouter() (*gin.Engine, *mocks) {
	gin.SetMode(gin.TestMode)
	m := &mocks{
		auth:      new(MockAuthService),
		ratings:   new(MockRatingService),
		favorites: new(MockFavoriteService),
		discovery: new(MockDiscoveryService),
	}
	r := handler.NewRouter(handler.RouterConfig{
		Auth:      m.auth,
		Ratings:   m.ratings,
		Favorites: m.favorites,
		Discovery: m.discovery,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	return r, m
}

func doRequest(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

