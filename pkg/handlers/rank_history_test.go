package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/seo-bandwagon/SEOBW-home-sub001/pkg/audit"
	"github.com/seo-bandwagon/SEOBW-home-sub001/pkg/models"
)

// newRankHistoryHandler wires a handler with a nop auditor. A nil repo
// models the unprovisioned store.
func newRankHistoryHandler(repo *fakeSerpRepo) *RankHistoryHandler {
	auditor := audit.NewSecurityAuditor(zap.NewNop())
	if repo == nil {
		return NewRankHistoryHandler(nil, auditor, zap.NewNop())
	}
	return NewRankHistoryHandler(repo, auditor, zap.NewNop())
}

func TestRankHistory_MissingKeyword(t *testing.T) {
	repo := &fakeSerpRepo{}
	handler := newRankHistoryHandler(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/rank-track/history?domain=example.com", nil)
	rec := httptest.NewRecorder()
	handler.History(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
	if repo.calls != 0 {
		t.Error("store must not be queried when validation fails")
	}
}

func TestRankHistory_MissingDomain(t *testing.T) {
	repo := &fakeSerpRepo{}
	handler := newRankHistoryHandler(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/rank-track/history?keyword=best+pizza", nil)
	rec := httptest.NewRecorder()
	handler.History(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
	if repo.calls != 0 {
		t.Error("store must not be queried when validation fails")
	}

	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	if body["error"] == "" {
		t.Error("expected structured error field")
	}
}

func TestRankHistory_NormalizesInputs(t *testing.T) {
	repo := &fakeSerpRepo{}
	handler := newRankHistoryHandler(repo)

	req := httptest.NewRequest(http.MethodGet,
		"/api/rank-track/history?keyword=+Best+Pizza+&domain=https%3A%2F%2Fwww.Example.com%2F&days=30", nil)
	rec := httptest.NewRecorder()
	handler.History(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
	}
	if repo.lastKeyword != "best pizza" {
		t.Errorf("expected normalized keyword, got %q", repo.lastKeyword)
	}
	if repo.lastDomain != "example.com" {
		t.Errorf("expected normalized domain, got %q", repo.lastDomain)
	}
	if repo.lastWindow != 30 {
		t.Errorf("expected window 30, got %d", repo.lastWindow)
	}
}

func TestRankHistory_InvalidDaysFallsBack(t *testing.T) {
	repo := &fakeSerpRepo{}
	handler := newRankHistoryHandler(repo)

	for _, days := range []string{"abc", "-5", "0", "9999"} {
		req := httptest.NewRequest(http.MethodGet,
			"/api/rank-track/history?keyword=pizza&domain=example.com&days="+days, nil)
		rec := httptest.NewRecorder()
		handler.History(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("days=%s: expected %d, got %d", days, http.StatusOK, rec.Code)
		}
		if repo.lastWindow != 90 {
			t.Errorf("days=%s: expected default window 90, got %d", days, repo.lastWindow)
		}
	}
}

func TestRankHistory_StoreUnconfigured(t *testing.T) {
	handler := newRankHistoryHandler(nil)

	req := httptest.NewRequest(http.MethodGet,
		"/api/rank-track/history?keyword=pizza&domain=example.com", nil)
	rec := httptest.NewRecorder()
	handler.History(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected degraded %d, got %d", http.StatusOK, rec.Code)
	}

	var response RankHistoryResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.History == nil || len(response.History) != 0 {
		t.Errorf("expected empty history list, got %v", response.History)
	}
	if response.Message == "" {
		t.Error("expected explanatory message in degraded mode")
	}
}

func TestRankHistory_Success(t *testing.T) {
	pos := 3
	repo := &fakeSerpRepo{
		points: []*models.RankHistoryPoint{
			{Keyword: "pizza", Domain: "example.com", Position: &pos, URL: "https://example.com/menu", CheckedAt: time.Now().Add(-48 * time.Hour)},
			{Keyword: "pizza", Domain: "example.com", Position: nil, URL: "", CheckedAt: time.Now()},
		},
	}
	handler := newRankHistoryHandler(repo)

	req := httptest.NewRequest(http.MethodGet,
		"/api/rank-track/history?keyword=pizza&domain=example.com", nil)
	rec := httptest.NewRecorder()
	handler.History(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
	}

	var response RankHistoryResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(response.History) != 2 {
		t.Fatalf("expected 2 points, got %d", len(response.History))
	}
	if response.History[0].Position == nil || *response.History[0].Position != 3 {
		t.Error("expected first point position 3")
	}
	if response.History[1].Position != nil {
		t.Error("expected unranked point to carry null position")
	}
	if response.Days != 90 {
		t.Errorf("expected default days 90, got %d", response.Days)
	}
}

func TestRankHistory_StoreFailure(t *testing.T) {
	repo := &fakeSerpRepo{err: errBoom}
	handler := newRankHistoryHandler(repo)

	req := httptest.NewRequest(http.MethodGet,
		"/api/rank-track/history?keyword=pizza&domain=example.com", nil)
	rec := httptest.NewRecorder()
	handler.History(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected %d, got %d", http.StatusInternalServerError, rec.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	if body["message"] == "boom" {
		t.Error("internal error detail must not leak to the caller")
	}
}
