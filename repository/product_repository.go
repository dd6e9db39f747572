package repository

import (
	"errors"

	"giftshop/entity"

	"gorm.io/gorm"
)

var ErrProductNotFound = errors.New("product not found")

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{DB: db}
}

func (r *ProductRepository) FindAll() ([]entity.Product, error) {
	var products []entity.Product
	if err := r.DB.Order("name asc").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindVisible is what the storefront will eventually list.
func (r *ProductRepository) FindVisible() ([]entity.Product, error) {
	var products []entity.Product
	if err := r.DB.Where("is_hidden = ?", false).Order("name asc").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepository) FindOnSpecial() ([]entity.Product, error) {
	var products []entity.Product
	if err := r.DB.Where("is_on_special = ?", true).Order("name asc").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepository) FindByID(id uint) (*entity.Product, error) {
	var product entity.Product
	if err := r.DB.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) Create(product *entity.Product) error {
	return r.DB.Create(product).Error
}
