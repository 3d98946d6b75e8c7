package repositories

import (
	"context"
	"fmt"

	"github.com/seo-bandwagon/SEOBW-home-sub001/pkg/database"
	"github.com/seo-bandwagon/SEOBW-home-sub001/pkg/models"
)

// SearchRepository provides read-only access to a user's search history and
// saved searches. Writes happen in the search submission service, not here.
type SearchRepository interface {
	// ListByUser returns the user's searches, newest first.
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*models.Search, error)
	// ListSavedByUser returns the user's saved searches, newest first,
	// each embedding its referenced search.
	ListSavedByUser(ctx context.Context, userID string, limit int) ([]*models.SavedSearch, error)
}

type searchRepository struct {
	db *database.DB
}

// NewSearchRepository creates a SearchRepository backed by the SEO store.
func NewSearchRepository(db *database.DB) SearchRepository {
	return &searchRepository{db: db}
}

var _ SearchRepository = (*searchRepository)(nil)

func (r *searchRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*models.Search, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT id, user_id, type, value, created_at
		FROM searches
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list searches: %w", err)
	}
	defer rows.Close()

	searches := make([]*models.Search, 0)
	for rows.Next() {
		var s models.Search
		if err := rows.Scan(&s.ID, &s.UserID, &s.Type, &s.Value, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan search: %w", err)
		}
		searches = append(searches, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating searches: %w", err)
	}

	return searches, nil
}

func (r *searchRepository) ListSavedByUser(ctx context.Context, userID string, limit int) ([]*models.SavedSearch, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	query := `
		SELECT ss.id, ss.user_id, ss.name, ss.created_at,
		       s.id, s.user_id, s.type, s.value, s.created_at
		FROM saved_searches ss
		JOIN searches s ON s.id = ss.search_id
		WHERE ss.user_id = $1
		ORDER BY ss.created_at DESC
		LIMIT $2`

	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list saved searches: %w", err)
	}
	defer rows.Close()

	saved := make([]*models.SavedSearch, 0)
	for rows.Next() {
		var ss models.SavedSearch
		err := rows.Scan(
			&ss.ID,
			&ss.UserID,
			&ss.Name,
			&ss.CreatedAt,
			&ss.Search.ID,
			&ss.Search.UserID,
			&ss.Search.Type,
			&ss.Search.Value,
			&ss.Search.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan saved search: %w", err)
		}
		saved = append(saved, &ss)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating saved searches: %w", err)
	}

	return saved, nil
}
