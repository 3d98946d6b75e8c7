package models

import (
	"time"

	"github.com/google/uuid"
)

// SearchType enumerates what kind of input a search was run against.
type SearchType string

const (
	SearchTypeDomain  SearchType = "domain"
	SearchTypeKeyword SearchType = "keyword"
	SearchTypeURL     SearchType = "url"
)

// Valid reports whether the search type is one of the known values.
func (t SearchType) Valid() bool {
	switch t {
	case SearchTypeDomain, SearchTypeKeyword, SearchTypeURL:
		return true
	}
	return false
}

// Search is a past query made by a user. Rows are created by the search
// submission service; this service only reads them.
type Search struct {
	ID        uuid.UUID  `json:"id"`
	UserID    string     `json:"userId"`
	Type      SearchType `json:"type"`
	Value     string     `json:"value"`
	CreatedAt time.Time  `json:"createdAt"`
}

// SavedSearch is a named bookmark referencing exactly one Search.
// The referenced Search always exists (FK integrity in the store).
type SavedSearch struct {
	ID        uuid.UUID `json:"id"`
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	Search    Search    `json:"search"`
}
