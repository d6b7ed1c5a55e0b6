package models

// explicit join model so each participation fact has its own id
type CharacterInMovie struct {
	ID          int64 `json:"id" gorm:"primaryKey;autoIncrement"`
	CharacterID int64 `json:"character_id" gorm:"not null;uniqueIndex:idx_character_movie"`
	MovieID     int64 `json:"movie_id" gorm:"not null;uniqueIndex:idx_character_movie"`
}

func (CharacterInMovie) TableName() string {
	return "character_in_movies"
}
