package models

import "time"

// WikiExternalLink is one outbound link recorded in a wiki-analysis row's
// JSONB link list.
type WikiExternalLink struct {
	URL    string `json:"url"`
	Domain string `json:"domain"`
	Anchor string `json:"anchor,omitempty"`
}

// WikiPage is a cached snapshot-derived analysis row keyed by slug,
// including Wayback Machine capture statistics. Populated by the crawler;
// read-only here.
type WikiPage struct {
	Slug              string             `json:"slug"`
	Title             string             `json:"title"`
	ExternalLinks     []WikiExternalLink `json:"externalLinks"`
	ExternalLinkCount int                `json:"externalLinkCount"`
	KeywordCount      int                `json:"keywordCount"`
	MonthlyCaptures   int                `json:"monthlyCaptures"`
	FirstCapture      *time.Time         `json:"firstCapture"`
	LastCapture       *time.Time         `json:"lastCapture"`
	CapturesByYear    map[string]int     `json:"capturesByYear"`
}

// WikiAggregates are scalar aggregates over wiki-analysis rows with a
// nonzero capture count.
type WikiAggregates struct {
	PageCount          int        `json:"pageCount"`
	TotalCaptures      int64      `json:"totalCaptures"`
	TotalExternalLinks int64      `json:"totalExternalLinks"`
	FirstCapture       *time.Time `json:"firstCapture"`
	AvgCaptures        float64    `json:"avgCaptures"`
}

// DomainFrequency is one entry of the external-link domain leaderboard.
type DomainFrequency struct {
	Domain string `json:"domain"`
	Count  int64  `json:"count"`
}
