package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/technikait/bokser-dashboard-backend/internal/model"
)

// AdminStore is the slice of the repository the auth service needs.
type AdminStore interface {
	GetAdminByUsername(ctx context.Context, username string) (*model.Admin, error)
}

type AuthService struct {
	store  AdminStore
	jwtKey []byte
}

func NewAuthService(store AdminStore, jwtKey string) *AuthService {
	return &AuthService{store: store, jwtKey: []byte(jwtKey)}
}

var ErrInvalidCredentials = errors.New("invalid credentials")

func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	admin, err := s.store.GetAdminByUsername(ctx, username)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": admin.ID,
		"jti": uuid.NewString(),
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(12 * time.Hour).Unix(),
	})

	return token.SignedString(s.jwtKey)
}
