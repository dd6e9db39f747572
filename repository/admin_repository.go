package repository

import (
	"errors"
	"time"

	"giftshop/entity"

	"gorm.io/gorm"
)

// ErrAdminNotFound is returned when an admin lookup misses.
var ErrAdminNotFound = errors.New("admin not found")

// AdminRepository owns all access to the admins table.
type AdminRepository struct {
	DB *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{DB: db}
}

// ListOrdered returns every admin, most privileged role first, then by
// username within a role.
func (r *AdminRepository) ListOrdered() ([]entity.AdminUser, error) {
	var admins []entity.AdminUser
	if err := r.DB.Order("permission_level asc, username asc").Find(&admins).Error; err != nil {
		return nil, err
	}
	return admins, nil
}

func (r *AdminRepository) FindByID(id uint) (*entity.AdminUser, error) {
	var admin entity.AdminUser
	if err := r.DB.First(&admin, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return &admin, nil
}

func (r *AdminRepository) FindByUsername(username string) (*entity.AdminUser, error) {
	var admin entity.AdminUser
	if err := r.DB.Where("username = ?", username).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return &admin, nil
}

func (r *AdminRepository) Create(admin *entity.AdminUser) error {
	return r.DB.Create(admin).Error
}

// Delete removes the row for good, the admin list has no trash bin.
func (r *AdminRepository) Delete(admin *entity.AdminUser) error {
	return r.DB.Unscoped().Delete(admin).Error
}

func (r *AdminRepository) CountByPermissionLevel(level int) (int64, error) {
	var count int64
	if err := r.DB.Model(&entity.AdminUser{}).Where("permission_level = ?", level).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// TouchLastLoggedIn stamps a successful login.
func (r *AdminRepository) TouchLastLoggedIn(id uint, at time.Time) error {
	return r.DB.Model(&entity.AdminUser{}).Where("id = ?", id).
		Update("last_logged_in", at).Error
}
