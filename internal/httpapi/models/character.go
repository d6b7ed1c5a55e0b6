package models

import "time"

type Character struct {
	ID        int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string     `json:"name" gorm:"not null"`
	Age       int        `json:"age"`
	Weight    float64    `json:"weight" gorm:"type:decimal(5,2)"`
	History   string     `json:"history" gorm:"type:text"`
	Image     *string    `json:"image,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty" gorm:"autoCreateTime"`

	// association
	Movies []Movie `json:"movies,omitempty" gorm:"many2many:character_in_movies;"`
}

func (Character) TableName() string {
	return "characters"
}
