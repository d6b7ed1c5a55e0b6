package service

import (
	"context"
	"errors"
	"strings"

	"cinehub/internal/httpapi/models"
	"cinehub/internal/httpapi/repository"
	"cinehub/internal/storage"

	"gorm.io/gorm"
)

// CharacterUpdate lists the fields a partial character update may touch.
// Nil means "leave unchanged".
type CharacterUpdate struct {
	Name    *string
	Age     *int
	Weight  *float64
	History *string
}

type CharacterService interface {
	List(ctx context.Context) ([]models.Character, error)
	GetByName(ctx context.Context, name string) (*models.Character, error)
	ListByAge(ctx context.Context, age int) ([]models.Character, error)
	NamesByMovieTitle(ctx context.Context, title string) ([]string, error)
	Create(ctx context.Context, c *models.Character, movieID *int64, image *ImageUpload) error
	Update(ctx context.Context, id int64, in CharacterUpdate) (*models.Character, error)
	Delete(ctx context.Context, id int64) (*models.Character, error)
}

type characterService struct {
	repo      repository.CharacterRepository
	movieRepo repository.MovieRepository
	assets    storage.Store
}

func NewCharacterService(repo repository.CharacterRepository, movieRepo repository.MovieRepository, assets storage.Store) CharacterService {
	return &characterService{repo: repo, movieRepo: movieRepo, assets: assets}
}

func (s *characterService) List(ctx context.Context) ([]models.Character, error) {
	return s.repo.GetAll(ctx)
}

// GetByName returns (nil, nil) on a miss; this lookup never fails on an
// absent name.
func (s *characterService) GetByName(ctx context.Context, name string) (*models.Character, error) {
	c, err := s.repo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

func (s *characterService) ListByAge(ctx context.Context, age int) ([]models.Character, error) {
	return s.repo.GetByAge(ctx, age)
}

// NamesByMovieTitle resolves the movie by exact title and returns the names
// of its characters in storage order. A missing movie is an explicit
// not-found, never a dereference on an absent record.
func (s *characterService) NamesByMovieTitle(ctx context.Context, title string) ([]string, error) {
	movie, err := s.movieRepo.GetByTitle(ctx, title)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	names := make([]string, 0, len(movie.Characters))
	for _, c := range movie.Characters {
		names = append(names, c.Name)
	}
	return names, nil
}

// Create validates the optional initial movie before anything is written,
// stores the image, then inserts the character together with its first
// participation row.
func (s *characterService) Create(ctx context.Context, c *models.Character, movieID *int64, image *ImageUpload) error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("name is required")
	}
	if movieID != nil {
		if _, err := s.movieRepo.GetByID(ctx, *movieID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMovieNotFound
			}
			return err
		}
	}

	if image != nil {
		ref, err := s.assets.Save(ctx, "characters", image.Filename, image.Data)
		if err != nil {
			return err
		}
		c.Image = &ref
	}

	return s.repo.Create(ctx, c, movieID)
}

func (s *characterService) Update(ctx context.Context, id int64, in CharacterUpdate) (*models.Character, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCharacterNotFound
		}
		return nil, err
	}

	if in.Name != nil && strings.TrimSpace(*in.Name) != "" {
		existing.Name = *in.Name
	}
	if in.Age != nil {
		existing.Age = *in.Age
	}
	if in.Weight != nil {
		existing.Weight = *in.Weight
	}
	if in.History != nil {
		existing.History = *in.History
	}

	if err := s.repo.Update(ctx, id, existing); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// Delete removes the character and returns its pre-deletion snapshot.
func (s *characterService) Delete(ctx context.Context, id int64) (*models.Character, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCharacterNotFound
		}
		return nil, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return existing, nil
}
