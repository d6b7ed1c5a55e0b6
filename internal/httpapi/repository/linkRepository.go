package repository

import (
	"context"
	"fmt"

	"cinehub/internal/httpapi/models"

	"gorm.io/gorm"
)

type LinkRepository interface {
	Create(ctx context.Context, link *models.CharacterInMovie) error
	GetAll(ctx context.Context) ([]models.CharacterInMovie, error)
	Exists(ctx context.Context, characterID, movieID int64) (bool, error)
}

type linkRepository struct {
	db *gorm.DB
}

func NewLinkRepository(db *gorm.DB) LinkRepository {
	return &linkRepository{db: db}
}

func (r *linkRepository) Create(ctx context.Context, link *models.CharacterInMovie) error {
	if err := r.db.WithContext(ctx).Create(link).Error; err != nil {
		return fmt.Errorf("create link: %w", err)
	}
	return nil
}

// GetAll returns every participation row, unfiltered.
func (r *linkRepository) GetAll(ctx context.Context) ([]models.CharacterInMovie, error) {
	var list []models.CharacterInMovie
	if err := r.db.WithContext(ctx).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get links: %w", err)
	}
	return list, nil
}

func (r *linkRepository) Exists(ctx context.Context, characterID, movieID int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.CharacterInMovie{}).
		Where("character_id = ? AND movie_id = ?", characterID, movieID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("check link: %w", err)
	}
	return count > 0, nil
}
