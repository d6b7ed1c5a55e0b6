package handler

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"time"

	"cinehub/internal/httpapi/dto"
	"cinehub/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

type MovieHandler struct {
	svc service.MovieService
}

func NewMovieHandler(svc service.MovieService) *MovieHandler {
	return &MovieHandler{svc: svc}
}

func (h *MovieHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/name/:title", h.GetByTitle)
	rg.GET("/genre/:id", h.ListByGenre)
	rg.GET("/order/:order", h.ListOrdered)
	rg.POST("", h.Create)
	rg.PATCH("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

func (h *MovieHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	list, err := h.svc.List(ctx)
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

// GetByTitle keeps the lookup's non-error miss: an absent title answers
// 200 with a null movie.
func (h *MovieHandler) GetByTitle(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	m, err := h.svc.GetByTitle(ctx, c.Param("title"))
	if err != nil {
		respondError(c, err)
		return
	}
	if m == nil {
		c.JSON(http.StatusOK, gin.H{"movie": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"movie": dto.FromModelToResponse(*m)})
}

func (h *MovieHandler) ListByGenre(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid genre id"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	list, err := h.svc.ListByGenre(ctx, id)
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

func (h *MovieHandler) ListOrdered(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	list, err := h.svc.ListOrdered(ctx, c.Param("order"))
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

func (h *MovieHandler) Create(c *gin.Context) {
	var in dto.CreateMovieForm
	if err := c.ShouldBind(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model, err := in.ToModel()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	image, err := readImageFile(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.Create(ctx, &model, image); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromModelToResponse(model))
}

func (h *MovieHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var in dto.UpdateMovieDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := in.ParseCreationDate()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	updated, err := h.svc.Update(ctx, id, service.MovieUpdate{
		Title:        in.Title,
		CreationDate: date,
		Score:        in.Score,
		GenreID:      in.GenreID,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModelToResponse(*updated))
}

// Delete answers with the record as it existed before deletion.
func (h *MovieHandler) Delete(c *gin.Context) {
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
	c.JSON(http.StatusOK, dto.FromModelToResponse(*deleted))
}

// readImageFile pulls the optional "image" part off a multipart request.
func readImageFile(c *gin.Context) (*service.ImageUpload, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		// no image attached
		return nil, nil
	}

	f, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return &service.ImageUpload{Filename: fileHeader.Filename, Data: data}, nil
}
