package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"cinehub/internal/httpapi/dto"
	"cinehub/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

type CharacterHandler struct {
	svc     service.CharacterService
	linkSvc service.LinkService
}

func NewCharacterHandler(svc service.CharacterService, linkSvc service.LinkService) *CharacterHandler {
	return &CharacterHandler{svc: svc, linkSvc: linkSvc}
}

func (h *CharacterHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/name/:name", h.GetByName)
	rg.GET("/age/:age", h.ListByAge)
	rg.GET("/movies/:title", h.NamesByMovie)
	rg.POST("", h.Create)
	rg.PATCH("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)

	// participation facts
	rg.POST("/assignCharacterToMovie", h.AssignToMovie)
	rg.GET("/assignCharacterToMovie", h.ListLinks)
}

// List answers the reduced shape (id, name, image) for every character.
func (h *CharacterHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	list, err := h.svc.List(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.CharacterSummary, 0, len(list))
	for _, ch := range list {
		resp = append(resp, dto.CharacterSummaryFromModel(ch))
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// GetByName keeps the lookup's non-error miss: an absent name answers 200
// with a null character.
func (h *CharacterHandler) GetByName(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	ch, err := h.svc.GetByName(ctx, c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	if ch == nil {
		c.JSON(http.StatusOK, gin.H{"character": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"character": dto.CharacterFromModel(*ch)})
}

func (h *CharacterHandler) ListByAge(c *gin.Context) {
	age, err := strconv.Atoi(c.Param("age"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid age"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	list, err := h.svc.ListByAge(ctx, age)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.CharacterResponse, 0, len(list))
	for _, ch := range list {
		resp = append(resp, dto.CharacterFromModel(ch))
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// NamesByMovie answers only the character names of the titled movie, in
// storage order.
func (h *CharacterHandler) NamesByMovie(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	names, err := h.svc.NamesByMovieTitle(ctx, c.Param("title"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"characters": names})
}

func (h *CharacterHandler) Create(c *gin.Context) {
	var in dto.CreateCharacterForm
	if err := c.ShouldBind(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	image, err := readImageFile(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := in.ToModel()

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.Create(ctx, &model, in.MovieID, image); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.CharacterFromModel(model))
}

func (h *CharacterHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var in dto.UpdateCharacterDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	updated, err := h.svc.Update(ctx, id, service.CharacterUpdate{
		Name:    in.Name,
		Age:     in.Age,
		Weight:  in.Weight,
		History: in.History,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CharacterFromModel(*updated))
}

// Delete answers with the record as it existed before deletion.
func (h *CharacterHandler) Delete(c *gin.Context) {
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
	c.JSON(http.StatusOK, dto.CharacterFromModel(*deleted))
}

func (h *CharacterHandler) AssignToMovie(c *gin.Context) {
	var in dto.CreateLinkDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	link, err := h.linkSvc.Link(ctx, in.CharacterID, in.MovieID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.LinkFromModel(*link))
}

// ListLinks dumps every participation row; an administrative view.
func (h *CharacterHandler) ListLinks(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	list, err := h.linkSvc.ListAll(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.LinkResponse, 0, len(list))
	for _, l := range list {
		resp = append(resp, dto.LinkFromModel(l))
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}
