package services

import (
	"errors"
	"strings"
	"time"

	"giftshop/entity"
	"giftshop/repository"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials covers both unknown username and wrong
// password; callers must not reveal which one it was.
var ErrInvalidCredentials = errors.New("invalid username or password")

// AuthService checks admin credentials for the session login.
type AuthService struct {
	Repo *repository.AdminRepository
}

func NewAuthService(repo *repository.AdminRepository) *AuthService {
	return &AuthService{Repo: repo}
}

// Login verifies username + password and stamps last_logged_in.
func (s *AuthService) Login(username, password string) (*entity.AdminUser, error) {
	admin, err := s.Repo.FindByUsername(strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordDigest), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	if err := s.Repo.TouchLastLoggedIn(admin.ID, now); err != nil {
		return nil, err
	}
	admin.LastLoggedIn = &now

	return admin, nil
}
