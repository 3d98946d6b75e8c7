package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/seo-bandwagon/SEOBW-home-sub001/pkg/database"
	"github.com/seo-bandwagon/SEOBW-home-sub001/pkg/models"
)

// WikiRepository provides read-only aggregate access to the pre-populated
// wiki-analysis cache table. The crawler owns the table and its schema.
type WikiRepository interface {
	// ListPages returns all analysis rows ordered by monthly capture count
	// descending.
	ListPages(ctx context.Context) ([]*models.WikiPage, error)
	// Aggregates computes scalar aggregates over rows with a nonzero
	// capture count.
	Aggregates(ctx context.Context) (*models.WikiAggregates, error)
	// TopLinkDomains unpacks the per-row external-link lists and returns
	// the most frequent link domains, ordered by frequency descending.
	TopLinkDomains(ctx context.Context, limit int) ([]*models.DomainFrequency, error)
}

type wikiRepository struct {
	db *database.DB
}

// NewWikiRepository creates a WikiRepository backed by the SEO store.
func NewWikiRepository(db *database.DB) WikiRepository {
	return &wikiRepository{db: db}
}

var _ WikiRepository = (*wikiRepository)(nil)

func (r *wikiRepository) ListPages(ctx context.Context) ([]*models.WikiPage, error) {
	query := `
		SELECT slug, title, external_links, external_link_count, keyword_count,
		       monthly_captures, first_capture, last_capture, captures_by_year
		FROM wiki_page_analysis
		ORDER BY monthly_captures DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list wiki pages: %w", err)
	}
	defer rows.Close()

	pages := make([]*models.WikiPage, 0)
	for rows.Next() {
		var page models.WikiPage
		var linksJSON, capturesJSON []byte

		err := rows.Scan(
			&page.Slug,
			&page.Title,
			&linksJSON,
			&page.ExternalLinkCount,
			&page.KeywordCount,
			&page.MonthlyCaptures,
			&page.FirstCapture,
			&page.LastCapture,
			&capturesJSON,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan wiki page: %w", err)
		}

		page.ExternalLinks = make([]models.WikiExternalLink, 0)
		if len(linksJSON) > 0 && string(linksJSON) != "null" {
			if err := json.Unmarshal(linksJSON, &page.ExternalLinks); err != nil {
				return nil, fmt.Errorf("failed to parse external links for %q: %w", page.Slug, err)
			}
		}
		if len(capturesJSON) > 0 && string(capturesJSON) != "null" {
			if err := json.Unmarshal(capturesJSON, &page.CapturesByYear); err != nil {
				return nil, fmt.Errorf("failed to parse captures by year for %q: %w", page.Slug, err)
			}
		}

		pages = append(pages, &page)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating wiki pages: %w", err)
	}

	return pages, nil
}

func (r *wikiRepository) Aggregates(ctx context.Context) (*models.WikiAggregates, error) {
	query := `
		SELECT COUNT(*),
		       COALESCE(SUM(monthly_captures), 0),
		       COALESCE(SUM(external_link_count), 0),
		       MIN(first_capture),
		       COALESCE(AVG(monthly_captures), 0)
		FROM wiki_page_analysis
		WHERE monthly_captures > 0`

	var agg models.WikiAggregates
	err := r.db.QueryRow(ctx, query).Scan(
		&agg.PageCount,
		&agg.TotalCaptures,
		&agg.TotalExternalLinks,
		&agg.FirstCapture,
		&agg.AvgCaptures,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compute wiki aggregates: %w", err)
	}

	return &agg, nil
}

func (r *wikiRepository) TopLinkDomains(ctx context.Context, limit int) ([]*models.DomainFrequency, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT link->>'domain' AS domain, COUNT(*) AS cnt
		FROM wiki_page_analysis,
		     jsonb_array_elements(external_links) AS link
		WHERE COALESCE(link->>'domain', '') <> ''
		GROUP BY link->>'domain'
		ORDER BY cnt DESC, domain ASC
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to count link domains: %w", err)
	}
	defer rows.Close()

	domains := make([]*models.DomainFrequency, 0)
	for rows.Next() {
		var d models.DomainFrequency
		if err := rows.Scan(&d.Domain, &d.Count); err != nil {
			return nil, fmt.Errorf("failed to scan link domain count: %w", err)
		}
		domains = append(domains, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating link domain counts: %w", err)
	}

	return domains, nil
}
