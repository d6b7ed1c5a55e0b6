package service

import (
	"context"

	"cinehub/internal/httpapi/models"

	"github.com/stretchr/testify/mock"
)

// --- repository mocks shared by the service tests ---

type mockMovieRepo struct {
	mock.Mock
}

func (m *mockMovieRepo) GetAll(ctx context.Context) ([]models.Movie, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Movie), args.Error(1)
}

func (m *mockMovieRepo) GetByID(ctx context.Context, id int64) (*models.Movie, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Movie), args.Error(1)
}

func (m *mockMovieRepo) GetByTitle(ctx context.Context, title string) (*models.Movie, error) {
	args := m.Called(ctx, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Movie), args.Error(1)
}

func (m *mockMovieRepo) GetByGenre(ctx context.Context, genreID int64) ([]models.Movie, error) {
	args := m.Called(ctx, genreID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Movie), args.Error(1)
}

func (m *mockMovieRepo) GetAllOrdered(ctx context.Context, direction string) ([]models.Movie, error) {
	args := m.Called(ctx, direction)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Movie), args.Error(1)
}

func (m *mockMovieRepo) Create(ctx context.Context, movie *models.Movie) error {
	args := m.Called(ctx, movie)
	return args.Error(0)
}

func (m *mockMovieRepo) Update(ctx context.Context, id int64, movie *models.Movie) error {
	args := m.Called(ctx, id, movie)
	return args.Error(0)
}

func (m *mockMovieRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockGenreRepo struct {
	mock.Mock
}

func (m *mockGenreRepo) GetAll(ctx context.Context) ([]models.Genre, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Genre), args.Error(1)
}

func (m *mockGenreRepo) GetByID(ctx context.Context, id int64) (*models.Genre, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Genre), args.Error(1)
}

func (m *mockGenreRepo) Create(ctx context.Context, g *models.Genre) error {
	args := m.Called(ctx, g)
	return args.Error(0)
}

func (m *mockGenreRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockGenreRepo) CountMovies(ctx context.Context, genreID int64) (int64, error) {
	args := m.Called(ctx, genreID)
	return args.Get(0).(int64), args.Error(1)
}

type mockCharacterRepo struct {
	mock.Mock
}

func (m *mockCharacterRepo) GetAll(ctx context.Context) ([]models.Character, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Character), args.Error(1)
}

func (m *mockCharacterRepo) GetByID(ctx context.Context, id int64) (*models.Character, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Character), args.Error(1)
}

func (m *mockCharacterRepo) GetByName(ctx context.Context, name string) (*models.Character, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Character), args.Error(1)
}

func (m *mockCharacterRepo) GetByAge(ctx context.Context, age int) ([]models.Character, error) {
	args := m.Called(ctx, age)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Character), args.Error(1)
}

func (m *mockCharacterRepo) Create(ctx context.Context, c *models.Character, initialMovieID *int64) error {
	args := m.Called(ctx, c, initialMovieID)
	return args.Error(0)
}

func (m *mockCharacterRepo) Update(ctx context.Context, id int64, c *models.Character) error {
	args := m.Called(ctx, id, c)
	return args.Error(0)
}

func (m *mockCharacterRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockLinkRepo struct {
	mock.Mock
}

func (m *mockLinkRepo) Create(ctx context.Context, link *models.CharacterInMovie) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

func (m *mockLinkRepo) GetAll(ctx context.Context) ([]models.CharacterInMovie, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CharacterInMovie), args.Error(1)
}

func (m *mockLinkRepo) Exists(ctx context.Context, characterID, movieID int64) (bool, error) {
	args := m.Called(ctx, characterID, movieID)
	return args.Bool(0), args.Error(1)
}

type mockAssetStore struct {
	mock.Mock
}

func (m *mockAssetStore) Save(ctx context.Context, prefix, filename string, data []byte) (string, error) {
	args := m.Called(ctx, prefix, filename, data)
	return args.String(0), args.Error(1)
}
