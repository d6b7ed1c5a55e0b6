package dto

import "cinehub/internal/httpapi/models"

// CreateGenreDTO for POST /api/v1/genres
type CreateGenreDTO struct {
	Name  string  `json:"name" binding:"required"`
	Image *string `json:"image,omitempty"`
}

type GenreResponse struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Image *string `json:"image,omitempty"`
}

func GenreFromModel(g models.Genre) GenreResponse {
	return GenreResponse{
		ID:    g.ID,
		Name:  g.Name,
		Image: g.Image,
	}
}
