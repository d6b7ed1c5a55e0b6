package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"cinehub/internal/httpapi/dto"
	"cinehub/internal/httpapi/models"
	"cinehub/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

type GenreHandler struct {
	svc      service.GenreService
	movieSvc service.MovieService
}

func NewGenreHandler(svc service.GenreService, movieSvc service.MovieService) *GenreHandler {
	return &GenreHandler{svc: svc, movieSvc: movieSvc}
}

func (h *GenreHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/:id/movies", h.ListMovies)
	rg.DELETE("/:id", h.Delete)
}

func (h *GenreHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	list, err := h.svc.GetAll(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.GenreResponse, 0, len(list))
	for _, g := range list {
		resp = append(resp, dto.GenreFromModel(g))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *GenreHandler) Create(c *gin.Context) {
	var in dto.CreateGenreDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := models.Genre{Name: in.Name, Image: in.Image}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.Create(ctx, &model); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, dto.GenreFromModel(model))
}

// ListMovies handles GET /api/v1/genres/:id/movies; each movie comes with
// its genre summary and character list.
func (h *GenreHandler) ListMovies(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid genre id"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	list, err := h.movieSvc.ListByGenre(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.MovieResponse, 0, len(list))
	for _, m := range list {
		resp = append(resp, dto.FromModelToResponse(m))
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// Delete refuses to remove a genre that still has movies.
func (h *GenreHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	deleted, err := h.svc.Delete(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.GenreFromModel(*deleted))
}
