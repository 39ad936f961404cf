package server

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/avolkov/cardbase/model"
	"github.com/avolkov/cardbase/utils"
	"github.com/stretchr/testify/require"
)

// feedFixture seeds two domains, one owner and three feed-visible cards:
//   - "Alpha intro":      domain go, draft, no sources, no events
//   - "Process handbook": domain go, published, description mentions beta,
//     1 source, 1 event
//   - "Kernel map":       domain os, draft, 3 sources, 3 events
//
// plus two cards invisible to the feed (one without domain, one without
// owner).
type feedFixture struct {
	owner   model.User
	domGo   model.Domain
	domOs   model.Domain
	card1   model.Card
	card2   model.Card
	card3   model.Card
	lastEvt model.Event
}

func seedFeed(t *testing.T, router http.Handler) feedFixture {
	t.Helper()

	f := feedFixture{}
	f.owner = utils.TestCreateUserAndValidate(t, router, "grace@example.com", "Grace", "editor")
	f.domGo = utils.TestCreateDomainAndValidate(t, router, "go", "Go")
	f.domOs = utils.TestCreateDomainAndValidate(t, router, "os", "Operating Systems")

	f.card1 = utils.TestCreateCardAndValidate(t, router, map[string]interface{}{
		"domain_id": f.domGo.Id,
		"owner_id":  f.owner.Id,
		"title":     "Alpha intro",
	})
	time.Sleep(20 * time.Millisecond)
	f.card2 = utils.TestCreateCardAndValidate(t, router, map[string]interface{}{
		"domain_id":   f.domGo.Id,
		"owner_id":    f.owner.Id,
		"title":       "Process handbook",
		"description": "handy beta notes for the team",
		"status":      "published",
	})
	time.Sleep(20 * time.Millisecond)
	f.card3 = utils.TestCreateCardAndValidate(t, router, map[string]interface{}{
		"domain_id": f.domOs.Id,
		"owner_id":  f.owner.Id,
		"title":     "Kernel map",
	})

	// invisible to the feed: missing domain or owner
	utils.TestCreateCardAndValidate(t, router, map[string]interface{}{
		"owner_id": f.owner.Id,
		"title":    "Domainless card",
	})
	utils.TestCreateCardAndValidate(t, router, map[string]interface{}{
		"domain_id": f.domGo.Id,
		"title":     "Ownerless card",
	})

	src1 := utils.TestCreateSourceAndValidate(t, router, f.domGo.Id, "Beta process doc")
	utils.TestLinkCardSourceAndValidate(t, router, f.card2.Id, src1.Id)
	utils.TestCreateEventAndValidate(t, router, f.card2.Id, f.owner.Id, "created")

	for i := 0; i < 3; i++ {
		src := utils.TestCreateSourceAndValidate(t, router, f.domOs.Id, fmt.Sprintf("Kernel source %d", i))
		utils.TestLinkCardSourceAndValidate(t, router, f.card3.Id, src.Id)
	}
	utils.TestCreateEventAndValidate(t, router, f.card3.Id, f.owner.Id, "created")
	utils.TestCreateEventAndValidate(t, router, f.card3.Id, f.owner.Id, "reviewed")
	f.lastEvt = utils.TestCreateEventAndValidate(t, router, f.card3.Id, f.owner.Id, "approved")

	return f
}

func getFeed(t *testing.T, router http.Handler, query string) model.CardFeedResponse {
	t.Helper()
	w := utils.PerformRequest(router, "GET", "/cards/feed"+query, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp model.CardFeedResponse
	utils.DecodeResponse(t, w, &resp)
	return resp
}

func TestFeedAggregation(t *testing.T) {
	router, _ := newTestRouter(t)
	f := seedFeed(t, router)

	resp := getFeed(t, router, "")
	// fan-out from sources and events never inflates the total, and cards
	// without domain or owner stay out
	require.EqualValues(t, 3, resp.Total)
	require.Len(t, resp.Items, 3)
	require.Equal(t, 1, resp.Page)
	require.Equal(t, 20, resp.PageSize)

	for i := 1; i < len(resp.Items); i++ {
		require.False(t, resp.Items[i-1].UpdatedAt.Before(resp.Items[i].UpdatedAt))
	}

	byId := map[int32]model.CardFeedItem{}
	for _, item := range resp.Items {
		byId[item.Id] = item
	}

	item1 := byId[f.card1.Id]
	require.EqualValues(t, 0, item1.SourceCount)
	require.Nil(t, item1.LastEventAt)
	require.Equal(t, "go", item1.Domain.Code)
	require.Equal(t, "Grace", item1.Owner.Name)

	item2 := byId[f.card2.Id]
	require.EqualValues(t, 1, item2.SourceCount)
	require.NotNil(t, item2.LastEventAt)

	item3 := byId[f.card3.Id]
	require.EqualValues(t, 3, item3.SourceCount)
	require.NotNil(t, item3.LastEventAt)
	require.WithinDuration(t, f.lastEvt.CreatedAt, *item3.LastEventAt, time.Second)
}

func TestFeedOrderFollowsUpdates(t *testing.T) {
	router, _ := newTestRouter(t)
	f := seedFeed(t, router)

	time.Sleep(20 * time.Millisecond)
	w := utils.PerformRequest(router, "PUT", fmt.Sprintf("/cards/%d", f.card1.Id), map[string]interface{}{
		"status": "published",
	})
	require.Equal(t, http.StatusOK, w.Code)

	resp := getFeed(t, router, "")
	require.Len(t, resp.Items, 3)
	// the freshly touched card moves to the top, the rest keep creation order
	require.Equal(t, f.card1.Id, resp.Items[0].Id)
	require.Equal(t, f.card3.Id, resp.Items[1].Id)
	require.Equal(t, f.card2.Id, resp.Items[2].Id)
}

func TestFeedFiltersCompose(t *testing.T) {
	router, _ := newTestRouter(t)
	f := seedFeed(t, router)

	resp := getFeed(t, router, fmt.Sprintf("?domain_id=%d", f.domGo.Id))
	require.EqualValues(t, 2, resp.Total)

	resp = getFeed(t, router, fmt.Sprintf("?domain_id=%d&status=published", f.domGo.Id))
	require.EqualValues(t, 1, resp.Total)
	require.Equal(t, f.card2.Id, resp.Items[0].Id)

	resp = getFeed(t, router, fmt.Sprintf("?domain_id=%d&status=archived", f.domGo.Id))
	require.EqualValues(t, 0, resp.Total)
	require.Empty(t, resp.Items)
}

func TestFeedSearchIsCaseInsensitive(t *testing.T) {
	router, _ := newTestRouter(t)
	f := seedFeed(t, router)

	// title match
	resp := getFeed(t, router, "?search=ALPHA")
	require.EqualValues(t, 1, resp.Total)
	require.Equal(t, f.card1.Id, resp.Items[0].Id)

	// description match
	resp = getFeed(t, router, "?search=beta")
	require.EqualValues(t, 1, resp.Total)
	require.Equal(t, f.card2.Id, resp.Items[0].Id)

	resp = getFeed(t, router, "?search=nothing-like-this")
	require.EqualValues(t, 0, resp.Total)
}

func TestFeedPagination(t *testing.T) {
	router, _ := newTestRouter(t)
	seedFeed(t, router)

	resp := getFeed(t, router, "?page_size=2")
	require.EqualValues(t, 3, resp.Total)
	require.Len(t, resp.Items, 2)
	require.Equal(t, 2, resp.PageSize)

	resp = getFeed(t, router, "?page=2&page_size=2")
	require.EqualValues(t, 3, resp.Total)
	require.Len(t, resp.Items, 1)
	require.Equal(t, 2, resp.Page)

	// out-of-range values are clamped, never rejected
	resp = getFeed(t, router, "?page=0&page_size=1000")
	require.Equal(t, 1, resp.Page)
	require.Equal(t, 100, resp.PageSize)
	require.Len(t, resp.Items, 3)
}
