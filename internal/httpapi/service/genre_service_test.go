package service

import (
	"context"
	"testing"

	"cinehub/internal/httpapi/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestGenreService_Create_RequiresName(t *testing.T) {
	repo := new(mockGenreRepo)
	svc := NewGenreService(repo)

	err := svc.Create(context.Background(), &models.Genre{Name: "   "})

	assert.Error(t, err)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGenreService_Delete(t *testing.T) {
	t.Run("RestrictedWhileMoviesExist", func(t *testing.T) {
		repo := new(mockGenreRepo)
		svc := NewGenreService(repo)
		repo.On("GetByID", mock.Anything, int64(1)).Return(&models.Genre{ID: 1, Name: "Action"}, nil)
		repo.On("CountMovies", mock.Anything, int64(1)).Return(int64(3), nil)

		_, err := svc.Delete(context.Background(), 1)

		assert.ErrorIs(t, err, ErrGenreHasMovies)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("EmptyGenreIsRemoved", func(t *testing.T) {
		repo := new(mockGenreRepo)
		svc := NewGenreService(repo)
		snapshot := &models.Genre{ID: 2, Name: "Drama"}
		repo.On("GetByID", mock.Anything, int64(2)).Return(snapshot, nil)
		repo.On("CountMovies", mock.Anything, int64(2)).Return(int64(0), nil)
		repo.On("Delete", mock.Anything, int64(2)).Return(nil)

		deleted, err := svc.Delete(context.Background(), 2)

		assert.NoError(t, err)
		assert.Equal(t, snapshot, deleted)
	})

	t.Run("NotFound", func(t *testing.T) {
		repo := new(mockGenreRepo)
		svc := NewGenreService(repo)
		repo.On("GetByID", mock.Anything, int64(9)).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Delete(context.Background(), 9)

		assert.ErrorIs(t, err, ErrGenreNotFound)
	})
}
