package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/gigstm/gigs-platform/internal/core/domain"
)

func runRBAC(t *testing.T, role string, allowed ...string) (bool, error) {
	t.Helper()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/v1/admin/gigs", nil), httptest.NewRecorder())
	if role != "" {
		c.Set(KeyRole, role)
	}
	called := false
	err := RBAC(allowed...)(func(echo.Context) error {
		called = true
		return nil
	})(c)
	return called, err
}

func TestRBAC(t *testing.T) {
	tests := []struct {
		name    string
		role    string
		allowed []string
		wantErr error
	}{
		{"admin allowed", domain.RoleAdmin, []string{domain.RoleAdmin}, nil},
		{"one of several", domain.RoleUser, []string{domain.RoleAdmin, domain.RoleUser}, nil},
		{"user on admin route", domain.RoleUser, []string{domain.RoleAdmin}, domain.ErrForbidden},
		{"no role in context", "", []string{domain.RoleAdmin}, domain.ErrUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called, err := runRBAC(t, tt.role, tt.allowed...)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if called != (tt.wantErr == nil) {
				t.Fatalf("next called = %v", called)
			}
		})
	}
}
