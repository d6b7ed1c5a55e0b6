package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"cinehub/internal/httpapi/models"
	"cinehub/internal/httpapi/repository"
	"cinehub/internal/storage"

	"gorm.io/gorm"
)

// ImageUpload carries the raw bytes of an image attached to a creation
// request. A nil *ImageUpload means no image was attached.
type ImageUpload struct {
	Filename string
	Data     []byte
}

// MovieUpdate lists the fields a partial movie update may touch. Nil means
// "leave unchanged".
type MovieUpdate struct {
	Title        *string
	CreationDate *time.Time
	Score        *float64
	GenreID      *int64
}

type MovieService interface {
	List(ctx context.Context) ([]models.Movie, error)
	GetByTitle(ctx context.Context, title string) (*models.Movie, error)
	ListByGenre(ctx context.Context, genreID int64) ([]models.Movie, error)
	ListOrdered(ctx context.Context, direction string) ([]models.Movie, error)
	Create(ctx context.Context, m *models.Movie, image *ImageUpload) error
	Update(ctx context.Context, id int64, in MovieUpdate) (*models.Movie, error)
	Delete(ctx context.Context, id int64) (*models.Movie, error)
}

type movieService struct {
	repo      repository.MovieRepository
	genreRepo repository.GenreRepository
	assets    storage.Store
}

func NewMovieService(repo repository.MovieRepository, genreRepo repository.GenreRepository, assets storage.Store) MovieService {
	return &movieService{repo: repo, genreRepo: genreRepo, assets: assets}
}

func (s *movieService) List(ctx context.Context) ([]models.Movie, error) {
	return s.repo.GetAll(ctx)
}

// GetByTitle returns (nil, nil) when no movie carries the title; a miss is
// not an error on this lookup.
func (s *movieService) GetByTitle(ctx context.Context, title string) (*models.Movie, error) {
	m, err := s.repo.GetByTitle(ctx, title)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return m, nil
}

// ListByGenre requires the genre itself to exist; a genre with zero movies
// yields an empty list, not an error.
func (s *movieService) ListByGenre(ctx context.Context, genreID int64) ([]models.Movie, error) {
	if _, err := s.genreRepo.GetByID(ctx, genreID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGenreNotFound
		}
		return nil, err
	}
	return s.repo.GetByGenre(ctx, genreID)
}

func (s *movieService) ListOrdered(ctx context.Context, direction string) ([]models.Movie, error) {
	if direction != "asc" && direction != "desc" {
		return nil, ErrOrderNotDefined
	}
	return s.repo.GetAllOrdered(ctx, direction)
}

// Create validates before it mutates: score range and genre existence are
// checked first, then the image is stored, then the row is written. A
// storage failure therefore aborts the whole operation with no record
// created; a write failure after a successful store leaves an orphaned
// asset, which is accepted.
func (s *movieService) Create(ctx context.Context, m *models.Movie, image *ImageUpload) error {
	if strings.TrimSpace(m.Title) == "" {
		return errors.New("title is required")
	}
	if m.Score <= 0 || m.Score > 5 {
		return ErrScoreOutOfRange
	}
	if m.GenreID != nil {
		if _, err := s.genreRepo.GetByID(ctx, *m.GenreID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrGenreNotFound
			}
			return err
		}
	}

	if image != nil {
		ref, err := s.assets.Save(ctx, "movies", image.Filename, image.Data)
		if err != nil {
			return err
		}
		m.Image = &ref
	}

	return s.repo.Create(ctx, m)
}

// Update merges the provided fields into the existing record and re-applies
// the creation-time domain checks on whatever changed.
func (s *movieService) Update(ctx context.Context, id int64, in MovieUpdate) (*models.Movie, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	if in.Title != nil && strings.TrimSpace(*in.Title) != "" {
		existing.Title = *in.Title
	}
	if in.CreationDate != nil {
		existing.CreationDate = *in.CreationDate
	}
	if in.Score != nil {
		if *in.Score <= 0 || *in.Score > 5 {
			return nil, ErrScoreOutOfRange
		}
		existing.Score = *in.Score
	}
	if in.GenreID != nil {
		if _, err := s.genreRepo.GetByID(ctx, *in.GenreID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrGenreNotFound
			}
			return nil, err
		}
		existing.GenreID = in.GenreID
	}

	if err := s.repo.Update(ctx, id, existing); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// Delete removes the movie and returns its pre-deletion snapshot.
func (s *movieService) Delete(ctx context.Context, id int64) (*models.Movie, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return existing, nil
}
