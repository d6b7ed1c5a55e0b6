package dto

import "cinehub/internal/httpapi/models"

// CreateLinkDTO for POST /api/v1/characters/assignCharacterToMovie
type CreateLinkDTO struct {
	CharacterID int64 `json:"character_id" binding:"required"`
	MovieID     int64 `json:"movie_id" binding:"required"`
}

type LinkResponse struct {
	ID          int64 `json:"id"`
	CharacterID int64 `json:"character_id"`
	MovieID     int64 `json:"movie_id"`
}

func LinkFromModel(l models.CharacterInMovie) LinkResponse {
	return LinkResponse{
		ID:          l.ID,
		CharacterID: l.CharacterID,
		MovieID:     l.MovieID,
	}
}
