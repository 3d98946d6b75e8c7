package models

import "time"

// RankHistoryPoint is one observed ranking position for a (keyword, domain)
// pair. Position is nil when the domain was not ranked at check time.
// Keyword and domain are stored pre-normalized (see pkg/normalize).
type RankHistoryPoint struct {
	Keyword   string    `json:"keyword"`
	Domain    string    `json:"domain"`
	Position  *int      `json:"position"`
	URL       string    `json:"url"`
	CheckedAt time.Time `json:"checkedAt"`
}
