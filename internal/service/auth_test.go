package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/technikait/bokser-dashboard-backend/internal/model"
)

type fakeAdminStore struct {
	admin *model.Admin
}

func (f *fakeAdminStore) GetAdminByUsername(ctx context.Context, username string) (*model.Admin, error) {
	if f.admin == nil || f.admin.Username != username {
		return nil, sql.ErrNoRows
	}
	return f.admin, nil
}

func storeWith(t *testing.T, username, password string) *fakeAdminStore {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	return &fakeAdminStore{admin: &model.Admin{
		ID:           "a1b2",
		Username:     username,
		PasswordHash: string(hash),
	}}
}

func TestLogin(t *testing.T) {
	svc := NewAuthService(storeWith(t, "admin", "sekret"), "test-key")

	tokenString, err := svc.Login(context.Background(), "admin", "sekret")
	if err != nil {
		t.Fatal(err)
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-key"), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("returned token does not verify: %v", err)
	}
	claims := token.Claims.(jwt.MapClaims)
	if claims["sub"] != "a1b2" {
		t.Fatalf("sub = %v", claims["sub"])
	}
	if claims["jti"] == "" || claims["exp"] == nil {
		t.Fatalf("claims incomplete: %v", claims)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := NewAuthService(storeWith(t, "admin", "sekret"), "test-key")
	if _, err := svc.Login(context.Background(), "admin", "zle-haslo"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v", err)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	svc := NewAuthService(storeWith(t, "admin", "sekret"), "test-key")
	if _, err := svc.Login(context.Background(), "ghost", "sekret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v", err)
	}
}
