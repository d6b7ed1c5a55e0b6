package repository

import (
	"context"
	"fmt"

	"cinehub/internal/httpapi/models"

	"gorm.io/gorm"
)

type MovieRepository interface {
	GetAll(ctx context.Context) ([]models.Movie, error)
	GetByID(ctx context.Context, id int64) (*models.Movie, error)
	GetByTitle(ctx context.Context, title string) (*models.Movie, error)
	GetByGenre(ctx context.Context, genreID int64) ([]models.Movie, error)
	GetAllOrdered(ctx context.Context, direction string) ([]models.Movie, error)
	Create(ctx context.Context, m *models.Movie) error
	Update(ctx context.Context, id int64, m *models.Movie) error
	Delete(ctx context.Context, id int64) error
}

type movieRepository struct {
	db *gorm.DB
}

func NewMovieRepository(db *gorm.DB) MovieRepository {
	return &movieRepository{db: db}
}

func (r *movieRepository) GetAll(ctx context.Context) ([]models.Movie, error) {
	var list []models.Movie
	if err := r.db.WithContext(ctx).
		Preload("Characters").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get movies: %w", err)
	}
	return list, nil
}

func (r *movieRepository) GetByID(ctx context.Context, id int64) (*models.Movie, error) {
	var m models.Movie
	if err := r.db.WithContext(ctx).
		Preload("Characters").
		Preload("Genre").
		First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *movieRepository) GetByTitle(ctx context.Context, title string) (*models.Movie, error) {
	var m models.Movie
	if err := r.db.WithContext(ctx).
		Preload("Characters").
		Where("title = ?", title).
		First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// GetByGenre returns movies referencing the genre, each with its genre
// summary and character list preloaded.
func (r *movieRepository) GetByGenre(ctx context.Context, genreID int64) ([]models.Movie, error) {
	var list []models.Movie
	if err := r.db.WithContext(ctx).
		Preload("Genre").
		Preload("Characters").
		Where("genre_id = ?", genreID).
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get movies by genre: %w", err)
	}
	return list, nil
}

// GetAllOrdered sorts by creation date with id as tie-breaker, so equal
// dates keep insertion order. direction must already be validated to
// "asc" or "desc".
func (r *movieRepository) GetAllOrdered(ctx context.Context, direction string) ([]models.Movie, error) {
	var list []models.Movie
	if err := r.db.WithContext(ctx).
		Order(fmt.Sprintf("creation_date %s, id asc", direction)).
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get movies ordered: %w", err)
	}
	return list, nil
}

func (r *movieRepository) Create(ctx context.Context, m *models.Movie) error {
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("create movie: %w", err)
	}
	// GORM populates m.ID and m.CreatedAt
	return nil
}

func (r *movieRepository) Update(ctx context.Context, id int64, m *models.Movie) error {
	m.ID = id
	if err := r.db.WithContext(ctx).Omit("Characters", "Genre").Save(m).Error; err != nil {
		return fmt.Errorf("update movie: %w", err)
	}
	return nil
}

// Delete removes the movie and its participation rows in one transaction.
func (r *movieRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("movie_id = ?", id).Delete(&models.CharacterInMovie{}).Error; err != nil {
			return fmt.Errorf("delete movie links: %w", err)
		}
		if err := tx.Delete(&models.Movie{}, id).Error; err != nil {
			return fmt.Errorf("delete movie: %w", err)
		}
		return nil
	})
}
