package models

type Genre struct {
	ID    int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name  string  `json:"name" gorm:"unique;not null"`
	Image *string `json:"image,omitempty"`

	// association
	Movies []Movie `json:"movies,omitempty" gorm:"foreignKey:GenreID"`
}

func (Genre) TableName() string {
	return "genres"
}
