package models

import "time"

type Movie struct {
	ID           int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	Title        string     `json:"title" gorm:"not null"`
	Image        *string    `json:"image,omitempty"`
	Score        float64    `json:"score" gorm:"type:decimal(3,2);not null;check:score > 0 AND score <= 5"`
	CreationDate time.Time  `json:"creation_date" gorm:"type:date;not null"`
	GenreID      *int64     `json:"genre_id,omitempty" gorm:"index"`
	CreatedAt    *time.Time `json:"created_at,omitempty" gorm:"autoCreateTime"`

	// associations
	Genre      *Genre      `json:"genre,omitempty" gorm:"foreignKey:GenreID"`
	Characters []Character `json:"characters,omitempty" gorm:"many2many:character_in_movies;"`
}

func (Movie) TableName() string {
	return "movies"
}
