package service

import (
	"context"
	"errors"

	"cinehub/internal/httpapi/models"
	"cinehub/internal/httpapi/repository"

	"gorm.io/gorm"
)

// LinkService manages character-in-movie participation facts.
type LinkService interface {
	Link(ctx context.Context, characterID, movieID int64) (*models.CharacterInMovie, error)
	ListAll(ctx context.Context) ([]models.CharacterInMovie, error)
}

type linkService struct {
	repo          repository.LinkRepository
	characterRepo repository.CharacterRepository
	movieRepo     repository.MovieRepository
}

func NewLinkService(repo repository.LinkRepository, characterRepo repository.CharacterRepository, movieRepo repository.MovieRepository) LinkService {
	return &linkService{repo: repo, characterRepo: characterRepo, movieRepo: movieRepo}
}

// Link verifies both ends exist before writing the participation row. A
// missing end surfaces as one combined not-found, without telling the
// caller which side failed. A pair may only be linked once.
func (s *linkService) Link(ctx context.Context, characterID, movieID int64) (*models.CharacterInMovie, error) {
	if _, err := s.characterRepo.GetByID(ctx, characterID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCharacterOrMovieNotFound
		}
		return nil, err
	}
	if _, err := s.movieRepo.GetByID(ctx, movieID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCharacterOrMovieNotFound
		}
		return nil, err
	}

	exists, err := s.repo.Exists(ctx, characterID, movieID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrLinkExists
	}

	link := &models.CharacterInMovie{CharacterID: characterID, MovieID: movieID}
	if err := s.repo.Create(ctx, link); err != nil {
		return nil, err
	}
	return link, nil
}

func (s *linkService) ListAll(ctx context.Context) ([]models.CharacterInMovie, error) {
	return s.repo.GetAll(ctx)
}
