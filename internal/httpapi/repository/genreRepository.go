package repository

import (
	"context"
	"fmt"

	"cinehub/internal/httpapi/models"

	"gorm.io/gorm"
)

type GenreRepository interface {
	GetAll(ctx context.Context) ([]models.Genre, error)
	GetByID(ctx context.Context, id int64) (*models.Genre, error)
	Create(ctx context.Context, g *models.Genre) error
	Delete(ctx context.Context, id int64) error
	CountMovies(ctx context.Context, genreID int64) (int64, error)
}

type genreRepository struct {
	db *gorm.DB
}

func NewGenreRepository(db *gorm.DB) GenreRepository {
	return &genreRepository{db: db}
}

func (r *genreRepository) GetAll(ctx context.Context) ([]models.Genre, error) {
	var list []models.Genre
	if err := r.db.WithContext(ctx).Order("name asc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get genres: %w", err)
	}
	return list, nil
}

func (r *genreRepository) GetByID(ctx context.Context, id int64) (*models.Genre, error) {
	var g models.Genre
	if err := r.db.WithContext(ctx).First(&g, id).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *genreRepository) Create(ctx context.Context, g *models.Genre) error {
	if err := r.db.WithContext(ctx).Create(g).Error; err != nil {
		return fmt.Errorf("create genre: %w", err)
	}
	return nil
}

func (r *genreRepository) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&models.Genre{}, id).Error; err != nil {
		return fmt.Errorf("delete genre: %w", err)
	}
	return nil
}

// CountMovies reports how many movies reference the genre. Used by the
// restrict-delete policy.
func (r *genreRepository) CountMovies(ctx context.Context, genreID int64) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Movie{}).
		Where("genre_id = ?", genreID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count movies by genre: %w", err)
	}
	return count, nil
}
