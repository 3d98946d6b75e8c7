package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/seo-bandwagon/SEOBW-home-sub001/pkg/auth"
)

// fakeResolver returns a fixed session, or absent when session is nil.
type fakeResolver struct {
	session *auth.Session
}

func (f *fakeResolver) Resolve(r *http.Request) (*auth.Session, bool) {
	if f.session == nil {
		return nil, false
	}
	return f.session, true
}

// panicResolver simulates a broken resolver.
type panicResolver struct{}

func (panicResolver) Resolve(r *http.Request) (*auth.Session, bool) {
	panic("session store exploded")
}

func serveGate(t *testing.T, resolver auth.SessionResolver, path string) (*httptest.ResponseRecorder, *http.Request) {
	t.Helper()

	var captured *http.Request
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r
		w.WriteHeader(http.StatusOK)
	})

	handler := RouteGate(resolver, "/signin", zap.NewNop())(next)

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return rec, captured
}

func TestIsProtected(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/dashboard", true},
		{"/dashboard/keywords", true},
		{"/history", true},
		{"/history/2026-08", true},
		{"/saved-searches", true},
		{"/saved-searches/abc", true},
		{"/", false},
		{"/pricing", false},
		{"/dashboards", false}, // prefix match is segment-aware
		{"/historyx", false},
		{"/signin", false},
	}

	for _, tt := range tests {
		if got := IsProtected(tt.path); got != tt.want {
			t.Errorf("IsProtected(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestRouteGate_RedirectsUnauthenticated(t *testing.T) {
	for _, path := range []string{"/dashboard", "/dashboard/keywords", "/history", "/saved-searches"} {
		rec, _ := serveGate(t, &fakeResolver{}, path)

		if rec.Code != http.StatusFound {
			t.Errorf("%s: expected %d, got %d", path, http.StatusFound, rec.Code)
			continue
		}

		loc, err := rec.Result().Location()
		if err != nil {
			t.Fatalf("%s: missing Location header: %v", path, err)
		}
		if loc.Path != "/signin" {
			t.Errorf("%s: expected redirect to /signin, got %q", path, loc.Path)
		}
		if got := loc.Query().Get("callbackUrl"); got != path {
			t.Errorf("%s: expected callbackUrl=%q, got %q", path, path, got)
		}
	}
}

func TestRouteGate_PassesAuthenticated(t *testing.T) {
	session := &auth.Session{UserID: "user-1", Email: "u@example.com"}
	rec, captured := serveGate(t, &fakeResolver{session: session}, "/dashboard")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
	}

	got, ok := auth.GetSession(captured.Context())
	if !ok {
		t.Fatal("expected session in downstream request context")
	}
	if got.UserID != "user-1" {
		t.Errorf("expected user-1 in context, got %q", got.UserID)
	}
}

func TestRouteGate_NeverInterceptsExcludedPaths(t *testing.T) {
	// No session at all: these must still pass through untouched.
	paths := []string{
		"/api/rank-track/history",
		"/api/gsc/status",
		"/static/app.css",
		"/assets/chunk-1a2b.js",
		"/favicon.ico",
		"/sitemap.xml",
		"/robots.txt",
		"/dashboard/logo.png", // protected prefix, but asset extension wins
		"/images/hero.webp",
		"/fonts/inter.woff2",
	}

	for _, path := range paths {
		rec, _ := serveGate(t, &fakeResolver{}, path)
		if rec.Code != http.StatusOK {
			t.Errorf("%s: expected pass-through %d, got %d", path, http.StatusOK, rec.Code)
		}
	}
}

func TestRouteGate_PublicPagesPassWithoutSession(t *testing.T) {
	for _, path := range []string{"/", "/pricing", "/signin"} {
		rec, _ := serveGate(t, &fakeResolver{}, path)
		if rec.Code != http.StatusOK {
			t.Errorf("%s: expected %d, got %d", path, http.StatusOK, rec.Code)
		}
	}
}

func TestRouteGate_FailsClosedOnResolverPanic(t *testing.T) {
	rec, _ := serveGate(t, panicResolver{}, "/dashboard")

	if rec.Code != http.StatusFound {
		t.Fatalf("expected fail-closed redirect %d, got %d", http.StatusFound, rec.Code)
	}
	loc, err := rec.Result().Location()
	if err != nil {
		t.Fatalf("missing Location header: %v", err)
	}
	if loc.Path != "/signin" {
		t.Errorf("expected redirect to /signin, got %q", loc.Path)
	}
}

func TestRouteGate_ResolverPanicOnPublicPagePasses(t *testing.T) {
	rec, _ := serveGate(t, panicResolver{}, "/pricing")
	if rec.Code != http.StatusOK {
		t.Errorf("expected %d, got %d", http.StatusOK, rec.Code)
	}
}
