package model

import "time"

const (
	DefaultFeedPage     = 1
	DefaultFeedPageSize = 20
	MaxFeedPageSize     = 100
)

/*

FeedQueryOptions carries the query parameters of the card feed

DomainID: when set, only cards filed under this domain
Status: when non-empty, only cards in this exact status
Search: when non-empty, case-insensitive substring match against title or
		description
Page: 1-based page number
PageSize: items per page

*/

type FeedQueryOptions struct {
	DomainID *int32 `form:"domain_id" json:"domain_id"`
	Status   string `form:"status" json:"status"`
	Search   string `form:"search" json:"search"`
	Page     int    `form:"page,default=1" json:"page"`
	PageSize int    `form:"page_size,default=20" json:"page_size"`
}

// Sanitize clamps paging values into their valid ranges instead of rejecting
// them: page is at least 1, page_size within [1, MaxFeedPageSize].
func (o *FeedQueryOptions) Sanitize() {
	if o.Page < 1 {
		o.Page = DefaultFeedPage
	}
	if o.PageSize < 1 {
		o.PageSize = DefaultFeedPageSize
	}
	if o.PageSize > MaxFeedPageSize {
		o.PageSize = MaxFeedPageSize
	}
}

type CardFeedItem struct {
	Id          int32       `json:"id"`
	Title       string      `json:"title"`
	Status      string      `json:"status"`
	Domain      DomainShort `json:"domain"`
	Owner       UserShort   `json:"owner"`
	SourceCount int64       `json:"source_count"`
	LastEventAt *time.Time  `json:"last_event_at"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

type CardFeedResponse struct {
	Items    []CardFeedItem `json:"items"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}
