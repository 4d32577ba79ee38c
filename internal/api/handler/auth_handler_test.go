package handler_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/dscommerce/commerce-api/internal/api"
	"github.com/dscommerce/commerce-api/internal/api/handler"
	"github.com/dscommerce/commerce-api/internal/core/authz"
	"github.com/dscommerce/commerce-api/internal/core/domain"
	"github.com/dscommerce/commerce-api/internal/core/ports"
)

func newAuthServer(auth ports.AuthService, users ports.UserService, p *authz.Principal) *echo.Echo {
	e := echo.New()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(zerolog.Nop())

	if auth != nil {
		h := handler.NewAuthHandler(auth)
		e.POST("/auth/register", h.Register)
		e.POST("/auth/login", h.Login)
	}
	if users != nil {
		h := handler.NewUserHandler(users)
		e.GET("/users/me", h.Me, injectPrincipal(p))
	}
	return e
}

func mariaBrown() *domain.User {
	return &domain.User{ID: 1, Name: "Maria Brown", Email: "maria@gmail.com", Roles: []string{domain.RoleClient}}
}

func TestRegister_Created(t *testing.T) {
	svc := &stubAuthService{
		register: func(_ context.Context, name, email, password, role string) (*domain.User, error) {
			if name != "Maria Brown" || email != "maria@gmail.com" || password != "123456" || role != "client" {
				t.Errorf("payload not forwarded: %s %s %s", name, email, role)
			}
			return mariaBrown(), nil
		},
	}
	body := `{"name":"Maria Brown","email":"maria@gmail.com","password":"123456","role":"client"}`
	rec := doJSON(newAuthServer(svc, nil, nil), http.MethodPost, "/auth/register", body)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	resp := decodeBody(t, rec)
	user, _ := resp["user"].(map[string]interface{})
	if user["email"] != "maria@gmail.com" {
		t.Errorf("unexpected user: %v", resp)
	}
	if _, leaked := user["password_hash"]; leaked {
		t.Error("password hash must not be serialized")
	}
}

func TestRegister_DuplicateEmailConflict(t *testing.T) {
	svc := &stubAuthService{
		register: func(context.Context, string, string, string, string) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}
	body := `{"name":"Maria Brown","email":"maria@gmail.com","password":"123456","role":"client"}`
	rec := doJSON(newAuthServer(svc, nil, nil), http.MethodPost, "/auth/register", body)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestRegister_BadShapeRejectedBeforeService(t *testing.T) {
	svc := &stubAuthService{
		register: func(context.Context, string, string, string, string) (*domain.User, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	}

	cases := []struct {
		name string
		body string
	}{
		{"missing password", `{"name":"Maria Brown","email":"maria@gmail.com","role":"client"}`},
		{"bad email", `{"name":"Maria Brown","email":"not-an-email","password":"123456","role":"client"}`},
		{"unknown role", `{"name":"Maria Brown","email":"maria@gmail.com","password":"123456","role":"superuser"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doJSON(newAuthServer(svc, nil, nil), http.MethodPost, "/auth/register", tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestLogin_OK(t *testing.T) {
	svc := &stubAuthService{
		login: func(_ context.Context, email, password string) (string, *domain.User, error) {
			return "signed-token", mariaBrown(), nil
		},
	}
	body := `{"email":"maria@gmail.com","password":"123456"}`
	rec := doJSON(newAuthServer(svc, nil, nil), http.MethodPost, "/auth/login", body)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if resp := decodeBody(t, rec); resp["token"] != "signed-token" {
		t.Errorf("token missing from response: %v", resp)
	}
}

func TestLogin_WrongPasswordUnauthorized(t *testing.T) {
	svc := &stubAuthService{
		login: func(context.Context, string, string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	body := `{"email":"maria@gmail.com","password":"wrong"}`
	rec := doJSON(newAuthServer(svc, nil, nil), http.MethodPost, "/auth/login", body)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestLogin_UnknownEmailReadsAsInvalidCredentials(t *testing.T) {
	svc := &stubAuthService{
		login: func(context.Context, string, string) (string, *domain.User, error) {
			return "", nil, domain.ErrUserNotFound
		},
	}
	body := `{"email":"nobody@gmail.com","password":"123456"}`
	rec := doJSON(newAuthServer(svc, nil, nil), http.MethodPost, "/auth/login", body)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if resp := decodeBody(t, rec); resp["error"] != domain.ErrInvalidCredentials.Error() {
		t.Errorf("unknown email must not be distinguishable: %v", resp)
	}
}

type stubUserService struct {
	getMe func(ctx context.Context, p *authz.Principal) (*ports.UserDetail, error)
}

func (s *stubUserService) GetMe(ctx context.Context, p *authz.Principal) (*ports.UserDetail, error) {
	return s.getMe(ctx, p)
}

func TestUsersMe_OK(t *testing.T) {
	svc := &stubUserService{
		getMe: func(_ context.Context, p *authz.Principal) (*ports.UserDetail, error) {
			return &ports.UserDetail{ID: p.UserID, Name: p.Name, Email: p.Email, Roles: []string{domain.RoleClient}}, nil
		},
	}
	rec := doJSON(newAuthServer(nil, svc, clientPrincipal()), http.MethodGet, "/users/me", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	resp := decodeBody(t, rec)
	if resp["id"] != 1.0 || resp["name"] != "Maria Brown" {
		t.Errorf("unexpected body: %v", resp)
	}
}

func TestUsersMe_NoTokenUnauthorized(t *testing.T) {
	svc := &stubUserService{
		getMe: func(context.Context, *authz.Principal) (*ports.UserDetail, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	}
	rec := doJSON(newAuthServer(nil, svc, nil), http.MethodGet, "/users/me", "")

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
