package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/learnhub/learnhub/internal/domain/model"
	testhelpers "github.com/learnhub/learnhub/internal/test"
)

func newTestRouter(facade Facade) http.Handler {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return Setup(facade, logger)
}

func serve(handler http.Handler, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func TestRouterMountsPublicRoutes(t *testing.T) {
	router := newTestRouter(testhelpers.PlatformFacadeStub{})

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/auth/signup"},
		{http.MethodPost, "/api/auth/login"},
		{http.MethodGet, "/api/programs"},
		{http.MethodGet, "/api/prefs/theme"},
	}

	for _, tc := range tests {
		resp := serve(router, tc.method, tc.path, nil)
		if resp.Code == http.StatusNotFound {
			t.Errorf("%s %s is not mounted", tc.method, tc.path)
		}
	}
}

func TestRouterSessionGatedRoutes(t *testing.T) {
	// Anonymous facade: ParseToken succeeds but no session exists.
	router := newTestRouter(testhelpers.PlatformFacadeStub{})

	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/auth/logout"},
		{http.MethodGet, "/api/auth/me"},
		{http.MethodGet, "/api/admin/users"},
	} {
		resp := serve(router, tc.method, tc.path, nil)
		if resp.Code != http.StatusUnauthorized {
			t.Errorf("%s %s should be gated, got %d", tc.method, tc.path, resp.Code)
		}
	}
}

func TestRouterAdminGate(t *testing.T) {
	// Authenticated but not admin.
	facade := testhelpers.PlatformFacadeStub{
		AuthFacadeStub: testhelpers.AuthFacadeStub{UserVal: &model.PublicUser{ID: 1, Role: model.RoleMember}},
	}
	router := newTestRouter(facade)

	resp := serve(router, http.MethodGet, "/api/admin/users", map[string]string{"Authorization": "Bearer token"})
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin, got %d", resp.Code)
	}
}

func TestRouterAdminAccess(t *testing.T) {
	facade := testhelpers.PlatformFacadeStub{
		AuthFacadeStub: testhelpers.AuthFacadeStub{UserVal: &model.PublicUser{ID: 1, IsAdmin: true}},
		AdminVal:       true,
	}
	router := newTestRouter(facade)

	resp := serve(router, http.MethodGet, "/api/admin/users", map[string]string{"Authorization": "Bearer token"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d", resp.Code)
	}
}

func TestRouterSessionRoutesWithToken(t *testing.T) {
	facade := testhelpers.PlatformFacadeStub{
		AuthFacadeStub: testhelpers.AuthFacadeStub{UserVal: &model.PublicUser{ID: 1, Email: "a@x.io"}},
	}
	router := newTestRouter(facade)

	resp := serve(router, http.MethodGet, "/api/auth/me", map[string]string{"Authorization": "Bearer token"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 with a valid token, got %d", resp.Code)
	}
}
