package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cinehub/internal/httpapi/dto"
	"cinehub/internal/httpapi/handler"
	"cinehub/internal/httpapi/models"
	"cinehub/internal/httpapi/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupGenreRouter(mockService *MockGenreService, mockMovies *MockMovieService) *gin.Engine {
	r := newTestEngine()
	h := handler.NewGenreHandler(mockService, mockMovies)
	h.RegisterRoutes(r.Group("/api/v1/genres"))
	return r
}

func TestGenreHandler_List(t *testing.T) {
	mockService := new(MockGenreService)
	r := setupGenreRouter(mockService, new(MockMovieService))

	mockService.On("GetAll", mock.Anything).Return([]models.Genre{
		{ID: 1, Name: "Action"},
		{ID: 2, Name: "Drama", Image: stringPtr("genres/drama.png")},
	}, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/genres", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []dto.GenreResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Len(t, response, 2)
	assert.Equal(t, "Action", response[0].Name)
	assert.Equal(t, "genres/drama.png", *response[1].Image)
}

func TestGenreHandler_Create(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockGenreService)
		r := setupGenreRouter(mockService, new(MockMovieService))

		mockService.On("Create", mock.Anything, mock.MatchedBy(func(g *models.Genre) bool {
			return g.Name == "Action"
		})).Return(nil).Once()

		body, _ := json.Marshal(dto.CreateGenreDTO{Name: "Action"})
		req, _ := http.NewRequest(http.MethodPost, "/api/v1/genres", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("NameRequired", func(t *testing.T) {
		mockService := new(MockGenreService)
		r := setupGenreRouter(mockService, new(MockMovieService))

		req, _ := http.NewRequest(http.MethodPost, "/api/v1/genres", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestGenreHandler_ListMovies(t *testing.T) {
	t.Run("GenreMissingIs404", func(t *testing.T) {
		mockMovies := new(MockMovieService)
		r := setupGenreRouter(new(MockGenreService), mockMovies)
		mockMovies.On("ListByGenre", mock.Anything, int64(9)).Return(nil, service.ErrGenreNotFound).Once()

		req, _ := http.NewRequest(http.MethodGet, "/api/v1/genres/9/movies", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("EmptyGenreIs200", func(t *testing.T) {
		mockMovies := new(MockMovieService)
		r := setupGenreRouter(new(MockGenreService), mockMovies)
		mockMovies.On("ListByGenre", mock.Anything, int64(1)).Return([]models.Movie{}, nil).Once()

		req, _ := http.NewRequest(http.MethodGet, "/api/v1/genres/1/movies", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"data": []}`, w.Body.String())
	})

	t.Run("MoviesCarryGenreAndCharacters", func(t *testing.T) {
		mockMovies := new(MockMovieService)
		r := setupGenreRouter(new(MockGenreService), mockMovies)

		date, _ := time.Parse("2006-01-02", "1988-07-15")
		mockMovies.On("ListByGenre", mock.Anything, int64(1)).Return([]models.Movie{
			{
				ID: 1, Title: "Die Hard", Score: 4.5, CreationDate: date,
				GenreID:    int64Ptr(1),
				Genre:      &models.Genre{ID: 1, Name: "Action"},
				Characters: []models.Character{{ID: 1, Name: "John McClane"}},
			},
		}, nil).Once()

		req, _ := http.NewRequest(http.MethodGet, "/api/v1/genres/1/movies", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string][]dto.MovieResponse
		json.Unmarshal(w.Body.Bytes(), &response)
		data := response["data"]
		assert.Len(t, data, 1)
		assert.Equal(t, "Action", data[0].Genre.Name)
		assert.Len(t, data[0].Characters, 1)
	})
}

func TestGenreHandler_Delete(t *testing.T) {
	t.Run("RestrictedWhileMoviesExist", func(t *testing.T) {
		mockService := new(MockGenreService)
		r := setupGenreRouter(mockService, new(MockMovieService))
		mockService.On("Delete", mock.Anything, int64(1)).Return(nil, service.ErrGenreHasMovies).Once()

		req, _ := http.NewRequest(http.MethodDelete, "/api/v1/genres/1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "genre still has movies")
	})

	t.Run("EmptyGenreIsRemoved", func(t *testing.T) {
		mockService := new(MockGenreService)
		r := setupGenreRouter(mockService, new(MockMovieService))
		mockService.On("Delete", mock.Anything, int64(2)).Return(&models.Genre{ID: 2, Name: "Drama"}, nil).Once()

		req, _ := http.NewRequest(http.MethodDelete, "/api/v1/genres/2", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var response dto.GenreResponse
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.Equal(t, "Drama", response.Name)
	})
}
