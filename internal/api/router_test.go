package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/gigstm/gigs-platform/internal/api/handler"
	"github.com/gigstm/gigs-platform/internal/core/domain"
	"github.com/gigstm/gigs-platform/internal/core/ports"
)

type fakeAdmin struct{ calls int }

func (f *fakeAdmin) ListCombined(_ context.Context, page, limit int, _ string) (*domain.CombinedPage, error) {
	f.calls++
	return &domain.CombinedPage{Page: page, Limit: limit}, nil
}
func (f *fakeAdmin) SetStatus(context.Context, string, string, string) (*domain.Account, error) {
	return nil, domain.ErrAccountNotFound
}
func (f *fakeAdmin) DeleteAccount(context.Context, string) error        { return nil }
func (f *fakeAdmin) ExportCSV(context.Context, string, io.Writer) error { return nil }

func token(t *testing.T, role string) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "65f1c0ffee0000000000beef",
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestRouter_AdminRoutes(t *testing.T) {
	reg := prometheus.NewRegistry()
	admin := &fakeAdmin{}
	e := NewRouter(Deps{
		Admin:      admin,
		Checks:     map[string]handler.Check{},
		JWTSecret:  "secret",
		Logger:     zerolog.Nop(),
		Registerer: reg,
		Gatherer:   reg,
	})

	tests := []struct {
		name   string
		method string
		path   string
		auth   string
		body   string
		want   int
	}{
		{"no token", http.MethodGet, "/v1/admin/accounts", "", "", http.StatusUnauthorized},
		{"user token", http.MethodGet, "/v1/admin/accounts", token(t, domain.RoleUser), "", http.StatusForbidden},
		{"admin token", http.MethodGet, "/v1/admin/accounts?page=1", token(t, domain.RoleAdmin), "", http.StatusOK},
		{"unknown account", http.MethodPatch, "/v1/admin/accounts/GIG0000001", token(t, domain.RoleAdmin), `{"status":"approved"}`, http.StatusNotFound},
		{"liveness", http.MethodGet, "/health", "", "", http.StatusOK},
		{"readiness", http.MethodGet, "/health/ready", "", "", http.StatusOK},
		{"unknown route", http.MethodGet, "/nope", "", "", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			if tt.auth != "" {
				req.Header.Set("Authorization", "Bearer "+tt.auth)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Fatalf("expected %d, got %d: %s", tt.want, rec.Code, rec.Body.String())
			}
		})
	}
	if admin.calls != 1 {
		t.Fatalf("expected one list call, got %d", admin.calls)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "requests_total") {
		t.Fatalf("expected http metrics to be exposed, got %d", rec.Code)
	}
}

var _ ports.AdminService = (*fakeAdmin)(nil)
