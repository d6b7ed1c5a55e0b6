package dto

import (
	"fmt"
	"time"

	"cinehub/internal/httpapi/models"
)

const dateLayout = "2006-01-02"

// CreateMovieForm binds the multipart form of POST /api/v1/movies. The
// image file itself is read separately by the handler.
type CreateMovieForm struct {
	Title        string  `form:"title" binding:"required"`
	CreationDate string  `form:"creation_date" binding:"required"`
	Score        float64 `form:"score" binding:"required"`
	GenreID      *int64  `form:"genre_id"`
}

// ToModel parses the creation date and builds the movie record.
func (d CreateMovieForm) ToModel() (models.Movie, error) {
	date, err := time.Parse(dateLayout, d.CreationDate)
	if err != nil {
		return models.Movie{}, fmt.Errorf("creation_date must be formatted as %s", dateLayout)
	}
	return models.Movie{
		Title:        d.Title,
		CreationDate: date,
		Score:        d.Score,
		GenreID:      d.GenreID,
	}, nil
}

// UpdateMovieDTO is the JSON body of PATCH /api/v1/movies/:id. Absent
// fields are left unchanged.
type UpdateMovieDTO struct {
	Title        *string  `json:"title,omitempty"`
	CreationDate *string  `json:"creation_date,omitempty"`
	Score        *float64 `json:"score,omitempty"`
	GenreID      *int64   `json:"genre_id,omitempty"`
}

// ParseCreationDate returns the parsed date when one was supplied.
func (d UpdateMovieDTO) ParseCreationDate() (*time.Time, error) {
	if d.CreationDate == nil {
		return nil, nil
	}
	date, err := time.Parse(dateLayout, *d.CreationDate)
	if err != nil {
		return nil, fmt.Errorf("creation_date must be formatted as %s", dateLayout)
	}
	return &date, nil
}

// MovieResponse is the full movie shape, with eager character and genre
// summaries when they were loaded.
type MovieResponse struct {
	ID           int64              `json:"id"`
	Title        string             `json:"title"`
	Image        *string            `json:"image,omitempty"`
	Score        float64            `json:"score"`
	CreationDate string             `json:"creation_date"`
	GenreID      *int64             `json:"genre_id,omitempty"`
	Genre        *GenreResponse     `json:"genre,omitempty"`
	Characters   []CharacterSummary `json:"characters,omitempty"`
	CreatedAt    *time.Time         `json:"created_at,omitempty"`
}

// MovieSummary is the reduced shape embedded in character responses.
type MovieSummary struct {
	ID           int64   `json:"id"`
	Image        *string `json:"image,omitempty"`
	Title        string  `json:"title"`
	CreationDate string  `json:"creation_date"`
}

func FromModelToResponse(m models.Movie) MovieResponse {
	resp := MovieResponse{
		ID:           m.ID,
		Title:        m.Title,
		Image:        m.Image,
		Score:        m.Score,
		CreationDate: m.CreationDate.Format(dateLayout),
		GenreID:      m.GenreID,
		CreatedAt:    m.CreatedAt,
	}
	if m.Genre != nil {
		g := GenreFromModel(*m.Genre)
		resp.Genre = &g
	}
	if len(m.Characters) > 0 {
		resp.Characters = make([]CharacterSummary, 0, len(m.Characters))
		for _, c := range m.Characters {
			resp.Characters = append(resp.Characters, CharacterSummaryFromModel(c))
		}
	}
	return resp
}

func MovieSummaryFromModel(m models.Movie) MovieSummary {
	return MovieSummary{
		ID:           m.ID,
		Image:        m.Image,
		Title:        m.Title,
		CreationDate: m.CreationDate.Format(dateLayout),
	}
}
