package services

import (
	"errors"

	"github.com/Hariom8799/nutrisnap/apperrors"
	"github.com/Hariom8799/nutrisnap/models"
	"github.com/Hariom8799/nutrisnap/utils"
	"gorm.io/gorm"
)

// AuthService owns registration and credential verification.
type AuthService struct {
	db        *gorm.DB
	jwtSecret string
}

func NewAuthService(db *gorm.DB, jwtSecret string) *AuthService {
	return &AuthService{db: db, jwtSecret: jwtSecret}
}

// Register creates a new user with a bcrypt-hashed password. A duplicate
// email yields a Conflict and no new record.
func (s *AuthService) Register(name, email, password string) (*models.User, error) {
	var existing models.User
	err := s.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, apperrors.Conflict("user already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Internal("failed to look up user", err)
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, apperrors.Internal("failed to hash password", err)
	}

	user := models.User{Name: name, Email: email, Password: hashed}
	if err := s.db.Create(&user).Error; err != nil {
		// The unique index may still fire under concurrent registration.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict("user already exists")
		}
		return nil, apperrors.Internal("failed to create user", err)
	}
	return &user, nil
}

// Authenticate verifies credentials and issues a session token. The bcrypt
// compare runs even when the email is unknown to keep response time constant.
func (s *AuthService) Authenticate(email, password string) (string, *models.User, error) {
	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.BurnPasswordCheck(password)
		return "", nil, apperrors.NotFound("user not found")
	}
	if err != nil {
		return "", nil, apperrors.Internal("failed to look up user", err)
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", nil, apperrors.Auth("invalid password")
	}

	token, err := utils.GenerateToken(user.ID, s.jwtSecret)
	if err != nil {
		return "", nil, apperrors.Internal("could not generate token", err)
	}
	return token, &user, nil
}
