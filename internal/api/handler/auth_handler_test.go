package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/zamreal/property-system/internal/core/domain"
)

type stubAuthService struct {
	token     string
	principal *domain.Principal
	err       error

	gotEmail    string
	gotPassword string
	gotRole     domain.Role
}

func (s *stubAuthService) Authenticate(_ context.Context, email, secret string) (string, *domain.Principal, error) {
	s.gotEmail = email
	s.gotPassword = secret
	if s.err != nil {
		return "", nil, s.err
	}
	return s.token, s.principal, nil
}

func (s *stubAuthService) Register(_ context.Context, name, email, password string, role domain.Role) (*domain.Principal, error) {
	s.gotEmail = email
	s.gotRole = role
	if s.err != nil {
		return nil, s.err
	}
	return s.principal, nil
}

func newAuthContext(t *testing.T, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestLogin_Success(t *testing.T) {
	svc := &stubAuthService{
		token: "signed.jwt.token",
		principal: &domain.Principal{
			ID: "admin-1", Name: "Chanda Admin",
			Email: "admin@zamreal.co", Role: domain.RoleAdmin,
		},
	}
	h := NewAuthHandler(svc)

	c, rec := newAuthContext(t, "/auth/login", `{"email":"admin@zamreal.co","password":"admin123"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.gotEmail != "admin@zamreal.co" || svc.gotPassword != "admin123" {
		t.Fatalf("credentials not forwarded: %q / %q", svc.gotEmail, svc.gotPassword)
	}

	var resp authResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token != "signed.jwt.token" {
		t.Fatalf("unexpected token %q", resp.Token)
	}
	if resp.Principal == nil || resp.Principal.Role != "admin" {
		t.Fatalf("unexpected principal: %+v", resp.Principal)
	}
	if resp.Principal.RoleDescription != "Full system access" {
		t.Fatalf("unexpected role description %q", resp.Principal.RoleDescription)
	}
}

func TestLogin_InvalidCredentialsPropagate(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{err: domain.ErrInvalidCredentials})

	c, _ := newAuthContext(t, "/auth/login", `{"email":"admin@zamreal.co","password":"wrong"}`)
	if err := h.Login(c); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_ValidationRejectsBadEmail(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newAuthContext(t, "/auth/login", `{"email":"not-an-email","password":"admin123"}`)
	err := h.Login(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestLogin_MissingPassword(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newAuthContext(t, "/auth/login", `{"email":"admin@zamreal.co"}`)
	err := h.Login(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestRegister_Created(t *testing.T) {
	svc := &stubAuthService{
		principal: &domain.Principal{
			ID: "hope-1", Name: "Hope Banda",
			Email: "hope@zamreal.co", Role: domain.RoleTenant,
		},
	}
	h := NewAuthHandler(svc)

	c, rec := newAuthContext(t, "/auth/register",
		`{"name":"Hope Banda","email":"hope@zamreal.co","password":"longenough"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if svc.gotRole != "" {
		t.Fatalf("role should be forwarded empty for the service default, got %q", svc.gotRole)
	}

	var resp authResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token != "" {
		t.Fatalf("registration must not mint a token, got %q", resp.Token)
	}
	if resp.Principal == nil || resp.Principal.Role != "tenant" {
		t.Fatalf("unexpected principal: %+v", resp.Principal)
	}
}

func TestRegister_ShortPassword(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newAuthContext(t, "/auth/register",
		`{"name":"Hope","email":"hope@zamreal.co","password":"short"}`)
	err := h.Register(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestRegister_UnknownRole(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newAuthContext(t, "/auth/register",
		`{"name":"Hope","email":"hope@zamreal.co","password":"longenough","role":"superuser"}`)
	err := h.Register(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestRegister_DuplicatePropagates(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{err: domain.ErrUserExists})

	c, _ := newAuthContext(t, "/auth/register",
		`{"name":"Hope","email":"hope@zamreal.co","password":"longenough"}`)
	if err := h.Register(c); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}
