package handler_test

import (
	"context"

	"cinehub/internal/httpapi/models"
	"cinehub/internal/httpapi/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

func stringPtr(s string) *string  { return &s }
func int64Ptr(i int64) *int64     { return &i }
func floatPtr(f float64) *float64 { return &f }

// --- MOCK SERVICES ---

type MockMovieService struct {
	mock.Mock
}

func (m *MockMovieService) List(ctx context.Context) ([]models.Movie, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Movie), args.Error(1)
}

func (m *MockMovieService) GetByTitle(ctx context.Context, title string) (*models.Movie, error) {
	args := m.Called(ctx, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Movie), args.Error(1)
}

func (m *MockMovieService) ListByGenre(ctx context.Context, genreID int64) ([]models.Movie, error) {
	args := m.Called(ctx, genreID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Movie), args.Error(1)
}

func (m *MockMovieService) ListOrdered(ctx context.Context, direction string) ([]models.Movie, error) {
	args := m.Called(ctx, direction)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Movie), args.Error(1)
}

func (m *MockMovieService) Create(ctx context.Context, movie *models.Movie, image *service.ImageUpload) error {
	args := m.Called(ctx, movie, image)
	return args.Error(0)
}

func (m *MockMovieService) Update(ctx context.Context, id int64, in service.MovieUpdate) (*models.Movie, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Movie), args.Error(1)
}

func (m *MockMovieService) Delete(ctx context.Context, id int64) (*models.Movie, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Movie), args.Error(1)
}

type MockCharacterService struct {
	mock.Mock
}

func (m *MockCharacterService) List(ctx context.Context) ([]models.Character, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Character), args.Error(1)
}

func (m *MockCharacterService) GetByName(ctx context.Context, name string) (*models.Character, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Character), args.Error(1)
}

func (m *MockCharacterService) ListByAge(ctx context.Context, age int) ([]models.Character, error) {
	args := m.Called(ctx, age)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Character), args.Error(1)
}

func (m *MockCharacterService) NamesByMovieTitle(ctx context.Context, title string) ([]string, error) {
	args := m.Called(ctx, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCharacterService) Create(ctx context.Context, c *models.Character, movieID *int64, image *service.ImageUpload) error {
	args := m.Called(ctx, c, movieID, image)
	return args.Error(0)
}

func (m *MockCharacterService) Update(ctx context.Context, id int64, in service.CharacterUpdate) (*models.Character, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Character), args.Error(1)
}

func (m *MockCharacterService) Delete(ctx context.Context, id int64) (*models.Character, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Character), args.Error(1)
}

type MockLinkService struct {
	mock.Mock
}

func (m *MockLinkService) Link(ctx context.Context, characterID, movieID int64) (*models.CharacterInMovie, error) {
	args := m.Called(ctx, characterID, movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CharacterInMovie), args.Error(1)
}

func (m *MockLinkService) ListAll(ctx context.Context) ([]models.CharacterInMovie, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CharacterInMovie), args.Error(1)
}

type MockGenreService struct {
	mock.Mock
}

func (m *MockGenreService) GetAll(ctx context.Context) ([]models.Genre, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Genre), args.Error(1)
}

func (m *MockGenreService) Create(ctx context.Context, g *models.Genre) error {
	args := m.Called(ctx, g)
	return args.Error(0)
}

func (m *MockGenreService) Delete(ctx context.Context, id int64) (*models.Genre, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Genre), args.Error(1)
}

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}
