package services

import (
	"database/sql"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"giftshop/entity"
	"giftshop/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Business-rule rejections. The controller turns these into redirects
// with an alert, never into hard errors.
var (
	ErrOwnerCreateForbidden = errors.New("cannot create another owner-level admin")
	ErrRoleLimitReached     = errors.New("maximum number of admins reached for this role")
	ErrOwnerDeleteForbidden = errors.New("cannot delete the owner-level admin")
)

// ValidationErrors maps a form field to its message. The creation form
// re-renders with these instead of redirecting.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(v))
}

type CreateAdminInput struct {
	Name                 string
	Username             string
	Email                string
	Password             string
	PasswordConfirmation string
	PermissionLevel      int
}

// AdminService enforces the admin-management rules on top of the repository.
type AdminService struct {
	Repo *repository.AdminRepository
}

func NewAdminService(repo *repository.AdminRepository) *AdminService {
	return &AdminService{Repo: repo}
}

// List returns every admin ordered by permission level, then username.
func (s *AdminService) List() ([]entity.AdminUser, error) {
	return s.Repo.ListOrdered()
}

// Create runs the business rules in order: owner level is unreachable
// through this path, then the per-role headcount cap, then field
// validation, then the insert. The cap counts rows that exist at the
// requested level before the insert, so a cap of 3 rejects the 4th
// admin only once 3 are already there. Count and insert share one
// transaction so two near-simultaneous creates cannot both squeeze in
// under the cap.
func (s *AdminService) Create(in CreateAdminInput) (*entity.AdminUser, error) {
	if in.PermissionLevel == entity.PermissionOwner {
		return nil, ErrOwnerCreateForbidden
	}

	var created *entity.AdminUser
	err := s.Repo.DB.Transaction(func(tx *gorm.DB) error {
		if limit, capped := entity.RoleLimits[in.PermissionLevel]; capped {
			var count int64
			if err := tx.Model(&entity.AdminUser{}).
				Where("permission_level = ?", in.PermissionLevel).
				Count(&count).Error; err != nil {
				return err
			}
			if count >= limit {
				return ErrRoleLimitReached
			}
		}

		if verrs := s.validate(tx, in); len(verrs) > 0 {
			return verrs
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		admin := entity.AdminUser{
			Name:            strings.TrimSpace(in.Name),
			Username:        strings.TrimSpace(in.Username),
			Email:           strings.ToLower(strings.TrimSpace(in.Email)),
			PasswordDigest:  string(hash),
			PermissionLevel: in.PermissionLevel,
		}
		if err := tx.Create(&admin).Error; err != nil {
			return err
		}
		created = &admin
		return nil
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})

	if err != nil {
		return nil, err
	}
	return created, nil
}

// Destroy deletes an admin. Unknown ids surface as not-found before any
// business rule runs; the owner row is never deletable.
func (s *AdminService) Destroy(id uint) (*entity.AdminUser, error) {
	admin, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if admin.IsOwner() {
		return nil, ErrOwnerDeleteForbidden
	}
	if err := s.Repo.Delete(admin); err != nil {
		return nil, err
	}
	return admin, nil
}

func (s *AdminService) validate(tx *gorm.DB, in CreateAdminInput) ValidationErrors {
	verrs := ValidationErrors{}

	name := strings.TrimSpace(in.Name)
	username := strings.TrimSpace(in.Username)
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if name == "" {
		verrs["name"] = "Name can't be blank"
	}

	if username == "" {
		verrs["username"] = "Username can't be blank"
	} else {
		var count int64
		tx.Model(&entity.AdminUser{}).Where("username = ?", username).Count(&count)
		if count > 0 {
			verrs["username"] = "Username has already been taken"
		}
	}

	if email == "" {
		verrs["email"] = "Email can't be blank"
	} else if _, err := mail.ParseAddress(email); err != nil {
		verrs["email"] = "Email is invalid"
	} else {
		var count int64
		tx.Model(&entity.AdminUser{}).Where("email = ?", email).Count(&count)
		if count > 0 {
			verrs["email"] = "Email has already been taken"
		}
	}

	if in.Password == "" {
		verrs["password"] = "Password can't be blank"
	} else if len(in.Password) < 8 {
		verrs["password"] = "Password is too short (minimum is 8 characters)"
	} else if in.Password != in.PasswordConfirmation {
		verrs["password_confirmation"] = "Password confirmation doesn't match Password"
	}

	if !entity.ValidPermissionLevel(in.PermissionLevel) {
		verrs["permission_level"] = "Permission level is not included in the list"
	}

	return verrs
}
