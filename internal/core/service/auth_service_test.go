package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/dscommerce/commerce-api/internal/core/domain"
)

const testSecret = "test-secret"

func newAuthService(users *stubUserRepo) *AuthService {
	return NewAuthService(users, testSecret, time.Hour)
}

func TestAuthService_Register_Success(t *testing.T) {
	users := newStubUserRepo()
	svc := newAuthService(users)

	created, err := svc.Register(context.Background(), "Maria Brown", "maria@gmail.com", "123456", domain.RoleClient)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == 0 {
		t.Error("expected assigned id")
	}
	if len(created.Roles) != 1 || created.Roles[0] != domain.RoleClient {
		t.Errorf("unexpected roles: %v", created.Roles)
	}
	if created.PasswordHash == "123456" {
		t.Error("password stored in the clear")
	}
	if bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("123456")) != nil {
		t.Error("stored hash does not match the password")
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	users := newStubUserRepo()
	svc := newAuthService(users)

	if _, err := svc.Register(context.Background(), "Maria Brown", "maria@gmail.com", "123456", domain.RoleClient); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := svc.Register(context.Background(), "Other Maria", "maria@gmail.com", "654321", domain.RoleClient)
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Register_RejectsUnknownRole(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	_, err := svc.Register(context.Background(), "Maria Brown", "maria@gmail.com", "123456", "superuser")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Register_RejectsBlankFields(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	cases := [][3]string{
		{"", "maria@gmail.com", "123456"},
		{"Maria Brown", "", "123456"},
		{"Maria Brown", "maria@gmail.com", ""},
	}
	for _, c := range cases {
		if _, err := svc.Register(context.Background(), c[0], c[1], c[2], domain.RoleClient); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Errorf("register(%q,%q,%q): expected ErrInvalidCredentials, got %v", c[0], c[1], c[2], err)
		}
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	users := newStubUserRepo()
	svc := newAuthService(users)

	created, err := svc.Register(context.Background(), "Alex Green", "alex@gmail.com", "123456", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "alex@gmail.com", "123456")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != created.ID {
		t.Errorf("unexpected user: %+v", user)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if int64(claims["sub"].(float64)) != created.ID {
		t.Errorf("unexpected sub claim: %v", claims["sub"])
	}
	if claims["email"] != "alex@gmail.com" || claims["name"] != "Alex Green" {
		t.Errorf("identity claims missing: %v", claims)
	}
	roles, ok := claims["roles"].([]interface{})
	if !ok || len(roles) != 1 || roles[0] != domain.RoleAdmin {
		t.Errorf("unexpected roles claim: %v", claims["roles"])
	}
	exp, ok := claims["exp"].(float64)
	if !ok || time.Unix(int64(exp), 0).Before(time.Now()) {
		t.Errorf("token already expired: %v", claims["exp"])
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	users := newStubUserRepo()
	svc := newAuthService(users)

	if _, err := svc.Register(context.Background(), "Alex Green", "alex@gmail.com", "123456", domain.RoleAdmin); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, _, err := svc.Login(context.Background(), "alex@gmail.com", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	_, _, err := svc.Login(context.Background(), "nobody@gmail.com", "123456")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_Login_BlankCredentials(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	if _, _, err := svc.Login(context.Background(), "", "123456"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("blank email: expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "alex@gmail.com", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("blank password: expected ErrInvalidCredentials, got %v", err)
	}
}
