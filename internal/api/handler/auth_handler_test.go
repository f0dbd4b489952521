package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/inkwell/showcase-api/internal/core/domain"
	"github.com/inkwell/showcase-api/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, username, password, email string) (*domain.Principal, error)
	loginFn    func(ctx context.Context, email, password string) (string, *domain.Principal, error)
}

func (s *stubAuthService) Register(ctx context.Context, username, password, email string) (*domain.Principal, error) {
	return s.registerFn(ctx, username, password, email)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.Principal, error) {
	return s.loginFn(ctx, email, password)
}

// stubIdentityService resolves any non-empty credential to the fixed user.
type stubIdentityService struct {
	user *domain.Principal
}

func (s *stubIdentityService) ResolveSession(_ context.Context, credential string) ports.SessionResult {
	if credential == "" || s.user == nil {
		return ports.SessionResult{}
	}
	return ports.SessionResult{Session: &domain.Session{User: s.user}, User: s.user}
}

func (s *stubIdentityService) CheckAuthenticated(_ context.Context, credential string) ports.AuthnResult {
	if credential == "" || s.user == nil {
		return ports.AuthnResult{}
	}
	return ports.AuthnResult{Authenticated: true, User: s.user}
}

func (s *stubIdentityService) CheckAuthorized(_ context.Context, credential, targetID string) ports.AuthzResult {
	if credential == "" || s.user == nil {
		return ports.AuthzResult{}
	}
	return ports.AuthzResult{Authorized: s.user.ID == targetID, User: s.user}
}

func newAuthTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(_ context.Context, username, password, email string) (*domain.Principal, error) {
			if username != "alice" || email != "a@example.com" {
				t.Fatalf("unexpected args: %s %s", username, email)
			}
			return &domain.Principal{ID: "u1", Username: username, Email: email, Role: domain.RoleUser}, nil
		},
	}
	handler := NewAuthHandler(stub, &stubIdentityService{})

	c, rec := newAuthTestContext(t, http.MethodPost, "/v1/auth/register",
		`{"username":"alice","password":"secret123","email":"a@example.com"}`)

	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user in response")
	}
	if user["username"] != "alice" || user["role"] != domain.RoleUser {
		t.Fatalf("unexpected user payload: %+v", user)
	}
}

func TestAuthHandler_Register_UserExists(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(_ context.Context, _, _, _ string) (*domain.Principal, error) {
			return nil, domain.ErrUserExists
		},
	}
	handler := NewAuthHandler(stub, &stubIdentityService{})

	c, _ := newAuthTestContext(t, http.MethodPost, "/v1/auth/register",
		`{"username":"bob","password":"secret123","email":"b@example.com"}`)

	if err := handler.Register(c); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists to propagate to the error handler, got %v", err)
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(_ context.Context, _, _, _ string) (*domain.Principal, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub, &stubIdentityService{})

	c, _ := newAuthTestContext(t, http.MethodPost, "/v1/auth/register", "not-json")

	err := handler.Register(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Register_ValidationFailure(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(_ context.Context, _, _, _ string) (*domain.Principal, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub, &stubIdentityService{})

	// Password below minimum length.
	c, _ := newAuthTestContext(t, http.MethodPost, "/v1/auth/register",
		`{"username":"alice","password":"short","email":"a@example.com"}`)

	err := handler.Register(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(_ context.Context, email, password string) (string, *domain.Principal, error) {
			if email != "alice@example.com" || password != "secret" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return "token123", &domain.Principal{ID: "u1", Username: "alice", Role: domain.RoleAdmin}, nil
		},
	}
	handler := NewAuthHandler(stub, &stubIdentityService{})

	c, rec := newAuthTestContext(t, http.MethodPost, "/v1/auth/login",
		`{"email":"alice@example.com","password":"secret"}`)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["username"] != "alice" || user["role"] != domain.RoleAdmin {
		t.Fatalf("unexpected user payload: %+v", user)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(_ context.Context, _, _ string) (string, *domain.Principal, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub, &stubIdentityService{})

	c, _ := newAuthTestContext(t, http.MethodPost, "/v1/auth/login",
		`{"email":"alice@example.com","password":"bad"}`)

	if err := handler.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Session_Anonymous(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{}, &stubIdentityService{})

	c, rec := newAuthTestContext(t, http.MethodGet, "/v1/session", "")

	if err := handler.Session(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("anonymous session lookup is still 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["session"] != nil || resp["user"] != nil {
		t.Fatalf("expected null session and user, got %+v", resp)
	}
}

func TestAuthHandler_Session_Authenticated(t *testing.T) {
	ids := &stubIdentityService{user: &domain.Principal{ID: "u1", Username: "alice"}}
	handler := NewAuthHandler(&stubAuthService{}, ids)

	c, rec := newAuthTestContext(t, http.MethodGet, "/v1/session", "")
	c.Set("credential", "tok")

	if err := handler.Session(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	session, ok := resp["session"].(map[string]any)
	if !ok {
		t.Fatalf("expected session object, got %+v", resp)
	}
	user, ok := session["user"].(map[string]any)
	if !ok || user["id"] != "u1" {
		t.Fatalf("session must wrap the principal, got %+v", session)
	}
}
