package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/seo-bandwagon/SEOBW-home-sub001/pkg/database"
	"github.com/seo-bandwagon/SEOBW-home-sub001/pkg/models"
)

// DefaultHistoryWindowDays bounds a rank history query when the caller
// passes no usable window.
const DefaultHistoryWindowDays = 90

// SerpRepository provides read-only access to observed ranking positions.
type SerpRepository interface {
	// History returns rank history points for a (keyword, domain) pair
	// within the trailing windowDays, ascending by check time. Keyword and
	// domain must already be normalized (pkg/normalize); rows are stored
	// in normalized form.
	History(ctx context.Context, keyword, domain string, windowDays int) ([]*models.RankHistoryPoint, error)
}

type serpRepository struct {
	db *database.DB
}

// NewSerpRepository creates a SerpRepository backed by the SEO store.
func NewSerpRepository(db *database.DB) SerpRepository {
	return &serpRepository{db: db}
}

var _ SerpRepository = (*serpRepository)(nil)

func (r *serpRepository) History(ctx context.Context, keyword, domain string, windowDays int) ([]*models.RankHistoryPoint, error) {
	if windowDays <= 0 {
		windowDays = DefaultHistoryWindowDays
	}
	cutoff := time.Now().AddDate(0, 0, -windowDays)

	query := `
		SELECT keyword, domain, position, url, checked_at
		FROM serp_history
		WHERE keyword = $1 AND domain = $2 AND checked_at >= $3
		ORDER BY checked_at ASC`

	rows, err := r.db.Query(ctx, query, keyword, domain, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to query serp history: %w", err)
	}
	defer rows.Close()

	points := make([]*models.RankHistoryPoint, 0)
	for rows.Next() {
		var p models.RankHistoryPoint
		if err := rows.Scan(&p.Keyword, &p.Domain, &p.Position, &p.URL, &p.CheckedAt); err != nil {
			return nil, fmt.Errorf("failed to scan serp history point: %w", err)
		}
		points = append(points, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating serp history: %w", err)
	}

	return points, nil
}
