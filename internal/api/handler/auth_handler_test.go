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

	"github.com/gigstm/gigs-platform/internal/core/domain"
	"github.com/gigstm/gigs-platform/internal/core/ports"
)

func jsonContext(e *echo.Echo, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func httpCode(err error) int {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	return 0
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, in ports.RegisterInput) (*domain.Account, error) {
			if in.Email != "alice@example.com" || in.Role != domain.RoleUser {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.Account{Name: in.Name, Email: in.Email, Role: in.Role, ExternalID: "GIG1234567", PasswordHash: "hash"}, nil
		},
	}
	handler := NewAuthHandler(stub, "https://app.example.com/reset")

	c, rec := jsonContext(e, http.MethodPost, "/auth/register", `{"name":"Alice","email":"alice@example.com","password":"s3cretpass","role":"admin"}`)
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
	if user["role"] != "user" || user["external_id"] != "GIG1234567" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
	if strings.Contains(rec.Body.String(), "hash") {
		t.Fatal("password hash leaked")
	}
}

func TestAuthHandler_Register_ValidationAndConflict(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, in ports.RegisterInput) (*domain.Account, error) {
			return nil, domain.ErrAccountExists
		},
	}
	handler := NewAuthHandler(stub, "")

	c, _ := jsonContext(e, http.MethodPost, "/auth/register", `{"name":"","email":"nope","password":"short"}`)
	err := handler.Register(c)
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	for _, f := range []string{"name", "email", "password"} {
		if !verr.Has(f) {
			t.Errorf("expected %s violation, got %+v", f, verr.Fields)
		}
	}

	c, _ = jsonContext(e, http.MethodPost, "/auth/register", `{"name":"Bob","email":"bob@example.com","password":"s3cretpass"}`)
	if err := handler.Register(c); !errors.Is(err, domain.ErrAccountExists) {
		t.Fatalf("expected ErrAccountExists, got %v", err)
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, in ports.RegisterInput) (*domain.Account, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub, "")

	c, _ := jsonContext(e, http.MethodPost, "/auth/register", "not-json")
	if code := httpCode(handler.Register(c)); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*ports.LoginResult, error) {
			if email != "alice@example.com" || password != "secret" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return &ports.LoginResult{Token: "token123", Account: &domain.Account{Name: "Alice", Role: "user"}, OTPSent: true}, nil
		},
	}
	handler := NewAuthHandler(stub, "")

	c, rec := jsonContext(e, http.MethodPost, "/auth/login", `{"email":"alice@example.com","password":"secret"}`)
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
	if resp["token"] != "token123" || resp["otpSent"] != true {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestAuthHandler_Login_Errors(t *testing.T) {
	for _, want := range []error{domain.ErrInvalidCredentials, domain.ErrAccountNotVerified} {
		e := newEcho()
		stub := &stubAuthService{
			loginFn: func(ctx context.Context, email, password string) (*ports.LoginResult, error) {
				return nil, want
			},
		}
		c, _ := jsonContext(e, http.MethodPost, "/auth/login", `{"email":"alice@example.com","password":"bad"}`)
		if err := NewAuthHandler(stub, "").Login(c); !errors.Is(err, want) {
			t.Fatalf("expected %v, got %v", want, err)
		}
	}
}

func TestAuthHandler_ForgotPassword_UsesResetURL(t *testing.T) {
	e := newEcho()
	var gotURL string
	stub := &stubAuthService{
		forgotFn: func(ctx context.Context, email, resetBaseURL string) error {
			gotURL = resetBaseURL
			return nil
		},
	}
	c, rec := jsonContext(e, http.MethodPost, "/auth/forgot-password", `{"email":"ghost@example.com"}`)
	if err := NewAuthHandler(stub, "https://app.example.com/reset").ForgotPassword(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusOK || gotURL != "https://app.example.com/reset" {
		t.Fatalf("unexpected result %d %q", rec.Code, gotURL)
	}
}

func TestAuthHandler_ChangePassword_RequiresAccount(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		changeFn: func(ctx context.Context, accountID, current, next, confirm string) error {
			if accountID != "acc-1" || next != confirm {
				t.Fatalf("unexpected args %s %s %s", accountID, next, confirm)
			}
			return nil
		},
	}
	handler := NewAuthHandler(stub, "")
	body := `{"currentPassword":"old-pass-1","newPassword":"new-pass-1","confirmPassword":"new-pass-1"}`

	c, _ := jsonContext(e, http.MethodPost, "/auth/change-password", body)
	if err := handler.ChangePassword(c); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized without claims, got %v", err)
	}

	c, rec := jsonContext(e, http.MethodPost, "/auth/change-password", body)
	authenticate(c, "acc-1", domain.RoleUser)
	if err := handler.ChangePassword(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
