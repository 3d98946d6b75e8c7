package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/seo-bandwagon/SEOBW-home-sub001/pkg/auth"
	"github.com/seo-bandwagon/SEOBW-home-sub001/pkg/models"
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

// fakeSerpRepo records calls and serves canned history.
type fakeSerpRepo struct {
	points []*models.RankHistoryPoint
	err    error

	calls       int
	lastKeyword string
	lastDomain  string
	lastWindow  int
}

func (f *fakeSerpRepo) History(ctx context.Context, keyword, domain string, windowDays int) ([]*models.RankHistoryPoint, error) {
	f.calls++
	f.lastKeyword = keyword
	f.lastDomain = domain
	f.lastWindow = windowDays
	if f.err != nil {
		return nil, f.err
	}
	return f.points, nil
}

// fakeSearchRepo serves canned search listings.
type fakeSearchRepo struct {
	searches []*models.Search
	saved    []*models.SavedSearch
	err      error

	lastUserID string
	lastLimit  int
	lastOffset int
}

func (f *fakeSearchRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*models.Search, error) {
	f.lastUserID = userID
	f.lastLimit = limit
	f.lastOffset = offset
	if f.err != nil {
		return nil, f.err
	}
	return f.searches, nil
}

func (f *fakeSearchRepo) ListSavedByUser(ctx context.Context, userID string, limit int) ([]*models.SavedSearch, error) {
	f.lastUserID = userID
	f.lastLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	return f.saved, nil
}

// fakeWikiRepo serves canned wiki analysis data, with per-method errors.
type fakeWikiRepo struct {
	pages      []*models.WikiPage
	aggregates *models.WikiAggregates
	topDomains []*models.DomainFrequency

	listErr error
	aggErr  error
	topErr  error
}

func (f *fakeWikiRepo) ListPages(ctx context.Context) ([]*models.WikiPage, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.pages, nil
}

func (f *fakeWikiRepo) Aggregates(ctx context.Context) (*models.WikiAggregates, error) {
	if f.aggErr != nil {
		return nil, f.aggErr
	}
	return f.aggregates, nil
}

func (f *fakeWikiRepo) TopLinkDomains(ctx context.Context, limit int) ([]*models.DomainFrequency, error) {
	if f.topErr != nil {
		return nil, f.topErr
	}
	return f.topDomains, nil
}

// fakeGSCClient serves a canned status payload.
type fakeGSCClient struct {
	payload   json.RawMessage
	err       error
	lastEmail string
}

func (f *fakeGSCClient) GSCStatus(ctx context.Context, email string) (json.RawMessage, error) {
	f.lastEmail = email
	if f.err != nil {
		return nil, f.err
	}
	return f.payload, nil
}

var errBoom = errors.New("boom")
