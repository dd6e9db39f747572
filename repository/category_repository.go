package repository

import (
	"errors"

	"giftshop/entity"

	"gorm.io/gorm"
)

var ErrCategoryNotFound = errors.New("category not found")

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) FindAll() ([]entity.Category, error) {
	var categories []entity.Category
	if err := r.DB.Order("name asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoryRepository) FindByID(id uint) (*entity.Category, error) {
	var category entity.Category
	if err := r.DB.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) Create(category *entity.Category) error {
	return r.DB.Create(category).Error
}

// Delete removes a category but keeps its products, clearing their
// category_id in the same transaction.
func (r *CategoryRepository) Delete(id uint) error {
	category, err := r.FindByID(id)
	if err != nil {
		return err
	}

	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entity.Product{}).
			Where("category_id = ?", category.ID).
			Update("category_id", nil).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(category).Error
	})
}
