package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	Name           string           `gorm:"uniqueIndex;not null" json:"name"`
	Description    string           `json:"description"`
	Price          decimal.Decimal  `gorm:"type:decimal(10,2);not null" json:"price"`
	SpecialPrice   *decimal.Decimal `gorm:"type:decimal(10,2)" json:"specialPrice,omitempty"`
	Stock          int              `gorm:"default:0" json:"stock"`
	AllowBackorder bool             `gorm:"default:false" json:"allowBackorder"`
	IsOnSpecial    bool             `gorm:"default:false" json:"isOnSpecial"`
	IsHidden       bool             `gorm:"default:false" json:"isHidden"`
	ImageURL       string           `json:"imageUrl"`

	CategoryID *uint     `json:"categoryId,omitempty"`
	Category   *Category `json:"-"`
}

func (Product) TableName() string { return "products" }
