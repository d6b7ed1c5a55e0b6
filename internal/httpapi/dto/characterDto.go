package dto

import (
	"cinehub/internal/httpapi/models"
)

// CreateCharacterForm binds the multipart form of POST /api/v1/characters.
// movie_id is optional; when present the character is linked to that movie
// as part of the creation.
type CreateCharacterForm struct {
	Name    string  `form:"name" binding:"required"`
	Age     int     `form:"age" binding:"required"`
	Weight  float64 `form:"weight" binding:"required"`
	History string  `form:"history" binding:"required"`
	MovieID *int64  `form:"movie_id"`
}

func (d CreateCharacterForm) ToModel() models.Character {
	return models.Character{
		Name:    d.Name,
		Age:     d.Age,
		Weight:  d.Weight,
		History: d.History,
	}
}

// UpdateCharacterDTO is the JSON body of PATCH /api/v1/characters/:id.
type UpdateCharacterDTO struct {
	Name    *string  `json:"name,omitempty"`
	Age     *int     `json:"age,omitempty"`
	Weight  *float64 `json:"weight,omitempty"`
	History *string  `json:"history,omitempty"`
}

// CharacterResponse is the full character shape with embedded movie
// summaries when they were loaded.
type CharacterResponse struct {
	ID      int64          `json:"id"`
	Image   *string        `json:"image,omitempty"`
	Name    string         `json:"name"`
	Age     int            `json:"age"`
	Weight  float64        `json:"weight"`
	History string         `json:"history"`
	Movies  []MovieSummary `json:"movies,omitempty"`
}

// CharacterSummary is the reduced shape embedded in movie responses.
type CharacterSummary struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Image *string `json:"image,omitempty"`
}

func CharacterFromModel(c models.Character) CharacterResponse {
	resp := CharacterResponse{
		ID:      c.ID,
		Image:   c.Image,
		Name:    c.Name,
		Age:     c.Age,
		Weight:  c.Weight,
		History: c.History,
	}
	if len(c.Movies) > 0 {
		resp.Movies = make([]MovieSummary, 0, len(c.Movies))
		for _, m := range c.Movies {
			resp.Movies = append(resp.Movies, MovieSummaryFromModel(m))
		}
	}
	return resp
}

func CharacterSummaryFromModel(c models.Character) CharacterSummary {
	return CharacterSummary{
		ID:    c.ID,
		Name:  c.Name,
		Image: c.Image,
	}
}
