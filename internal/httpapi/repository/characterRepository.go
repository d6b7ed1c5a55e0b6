package repository

import (
	"context"
	"fmt"

	"cinehub/internal/httpapi/models"

	"gorm.io/gorm"
)

type CharacterRepository interface {
	GetAll(ctx context.Context) ([]models.Character, error)
	GetByID(ctx context.Context, id int64) (*models.Character, error)
	GetByName(ctx context.Context, name string) (*models.Character, error)
	GetByAge(ctx context.Context, age int) ([]models.Character, error)
	Create(ctx context.Context, c *models.Character, initialMovieID *int64) error
	Update(ctx context.Context, id int64, c *models.Character) error
	Delete(ctx context.Context, id int64) error
}

type characterRepository struct {
	db *gorm.DB
}

func NewCharacterRepository(db *gorm.DB) CharacterRepository {
	return &characterRepository{db: db}
}

func (r *characterRepository) GetAll(ctx context.Context) ([]models.Character, error) {
	var list []models.Character
	if err := r.db.WithContext(ctx).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get characters: %w", err)
	}
	return list, nil
}

func (r *characterRepository) GetByID(ctx context.Context, id int64) (*models.Character, error) {
	var c models.Character
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *characterRepository) GetByName(ctx context.Context, name string) (*models.Character, error) {
	var c models.Character
	if err := r.db.WithContext(ctx).
		Preload("Movies").
		Where("name = ?", name).
		First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *characterRepository) GetByAge(ctx context.Context, age int) ([]models.Character, error) {
	var list []models.Character
	if err := r.db.WithContext(ctx).
		Preload("Movies").
		Where("age = ?", age).
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get characters by age: %w", err)
	}
	return list, nil
}

// Create inserts the character and, when initialMovieID is set, its first
// participation row in the same transaction. The movie's existence is the
// caller's responsibility.
func (r *characterRepository) Create(ctx context.Context, c *models.Character, initialMovieID *int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(c).Error; err != nil {
			return fmt.Errorf("create character: %w", err)
		}
		if initialMovieID != nil {
			link := models.CharacterInMovie{CharacterID: c.ID, MovieID: *initialMovieID}
			if err := tx.Create(&link).Error; err != nil {
				return fmt.Errorf("create initial link: %w", err)
			}
		}
		return nil
	})
}

func (r *characterRepository) Update(ctx context.Context, id int64, c *models.Character) error {
	c.ID = id
	if err := r.db.WithContext(ctx).Omit("Movies").Save(c).Error; err != nil {
		return fmt.Errorf("update character: %w", err)
	}
	return nil
}

// Delete removes the character and its participation rows in one transaction.
func (r *characterRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("character_id = ?", id).Delete(&models.CharacterInMovie{}).Error; err != nil {
			return fmt.Errorf("delete character links: %w", err)
		}
		if err := tx.Delete(&models.Character{}, id).Error; err != nil {
			return fmt.Errorf("delete character: %w", err)
		}
		return nil
	})
}
