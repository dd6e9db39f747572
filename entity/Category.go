package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Name string `gorm:"not null" json:"name"`

	// Deleting a category keeps its products, their category_id is nulled.
	Products []Product `json:"-"`
}

func (Category) TableName() string { return "categories" }
