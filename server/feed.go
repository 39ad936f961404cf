package server

import (
	"net/http"
	"time"

	"github.com/avolkov/cardbase/model"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// feedRow is the flat scan target of the aggregated feed query, remapped
// into the nested response shape afterwards.
type feedRow struct {
	Id          int32
	Title       string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DomainID    int32
	DomainCode  string
	DomainName  string
	OwnerID     int32
	OwnerName   string
	SourceCount int64
	LastEventAt *time.Time
}

// queryCardFeed builds the paginated card feed: cards inner-joined to their
// domain and owner (cards missing either stay out of the feed), left-joined
// to source links and events so cards without any still appear, aggregated
// per card with a distinct source count and the latest event timestamp.
// Ordered by updated_at descending with id descending as the tie-break.
func queryCardFeed(db *gorm.DB, opts model.FeedQueryOptions) (*model.CardFeedResponse, error) {
	base := func() *gorm.DB {
		q := db.Model(&model.Card{}).
			Joins("JOIN domains ON domains.id = cards.domain_id").
			Joins("JOIN users ON users.id = cards.owner_id")
		if opts.DomainID != nil {
			q = q.Where("cards.domain_id = ?", *opts.DomainID)
		}
		if opts.Status != "" {
			q = q.Where("cards.status = ?", opts.Status)
		}
		if opts.Search != "" {
			pattern := "%" + opts.Search + "%"
			q = q.Where("cards.title ILIKE ? OR cards.description ILIKE ?", pattern, pattern)
		}
		return q
	}

	// Count each card exactly once. The count query stays off the one-to-many
	// joins, so source/event fan-out can never inflate the total.
	var total int64
	if err := base().Distinct("cards.id").Count(&total).Error; err != nil {
		return nil, errors.Wrap(err, "fail to count feed cards")
	}

	rows := []feedRow{}
	err := base().
		Joins("LEFT JOIN card_sources ON card_sources.card_id = cards.id").
		Joins("LEFT JOIN events ON events.card_id = cards.id").
		Select(`cards.id AS id, cards.title AS title, cards.status AS status,
			cards.created_at AS created_at, cards.updated_at AS updated_at,
			domains.id AS domain_id, domains.code AS domain_code, domains.name AS domain_name,
			users.id AS owner_id, users.name AS owner_name,
			COUNT(DISTINCT card_sources.source_id) AS source_count,
			MAX(events.created_at) AS last_event_at`).
		Group("cards.id, cards.title, cards.status, cards.created_at, cards.updated_at, domains.id, domains.code, domains.name, users.id, users.name").
		Order("cards.updated_at DESC, cards.id DESC").
		Offset((opts.Page - 1) * opts.PageSize).
		Limit(opts.PageSize).
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "fail to query feed cards")
	}

	items := make([]model.CardFeedItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, model.CardFeedItem{
			Id:          row.Id,
			Title:       row.Title,
			Status:      row.Status,
			Domain:      model.DomainShort{Id: row.DomainID, Code: row.DomainCode, Name: row.DomainName},
			Owner:       model.UserShort{Id: row.OwnerID, Name: row.OwnerName},
			SourceCount: row.SourceCount,
			LastEventAt: row.LastEventAt,
			CreatedAt:   row.CreatedAt,
			UpdatedAt:   row.UpdatedAt,
		})
	}

	return &model.CardFeedResponse{
		Items:    items,
		Total:    total,
		Page:     opts.Page,
		PageSize: opts.PageSize,
	}, nil
}

func (s *Server) cardFeed(c *gin.Context) {
	var opts model.FeedQueryOptions
	if err := c.ShouldBindQuery(&opts); err != nil {
		validationError(c, err)
		return
	}
	opts.Sanitize()

	resp, err := queryCardFeed(s.db, opts)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
