package service

import (
	"context"
	"errors"
	"strings"

	"cinehub/internal/httpapi/models"
	"cinehub/internal/httpapi/repository"

	"gorm.io/gorm"
)

type GenreService interface {
	GetAll(ctx context.Context) ([]models.Genre, error)
	Create(ctx context.Context, g *models.Genre) error
	Delete(ctx context.Context, id int64) (*models.Genre, error)
}

type genreService struct {
	repo repository.GenreRepository
}

func NewGenreService(r repository.GenreRepository) GenreService {
	return &genreService{repo: r}
}

func (s *genreService) GetAll(ctx context.Context) ([]models.Genre, error) {
	return s.repo.GetAll(ctx)
}

func (s *genreService) Create(ctx context.Context, g *models.Genre) error {
	if strings.TrimSpace(g.Name) == "" {
		return errors.New("genre name required")
	}
	g.Name = strings.TrimSpace(g.Name)
	return s.repo.Create(ctx, g)
}

// Delete is restricted: a genre that still has movies cannot be removed.
func (s *genreService) Delete(ctx context.Context, id int64) (*models.Genre, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGenreNotFound
		}
		return nil, err
	}

	count, err := s.repo.CountMovies(ctx, id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrGenreHasMovies
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return existing, nil
}
