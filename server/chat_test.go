package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/avolkov/cardbase/model"
	"github.com/avolkov/cardbase/utils"
	"github.com/stretchr/testify/require"
)

func postChat(t *testing.T, router http.Handler, message string) model.ChatMockResponse {
	t.Helper()
	w := utils.PerformRequest(router, "POST", "/chat/mock", map[string]interface{}{
		"message": message,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp model.ChatMockResponse
	utils.DecodeResponse(t, w, &resp)
	return resp
}

func TestChatMockNoKeywords(t *testing.T) {
	router, _ := newTestRouter(t)

	utils.TestCreateCardAndValidate(t, router, map[string]interface{}{
		"title": "Kubernetes basics",
	})

	// every token is 2 characters or shorter, so nothing matches
	resp := postChat(t, router, "hi ok go")
	require.Empty(t, resp.UsedCards)
	require.Equal(t, noMatchAnswer, resp.Answer)

	resp = postChat(t, router, "")
	require.Empty(t, resp.UsedCards)
	require.Equal(t, noMatchAnswer, resp.Answer)
}

func TestChatMockMatchesKeywords(t *testing.T) {
	router, _ := newTestRouter(t)

	domain := utils.TestCreateDomainAndValidate(t, router, "k8s", "Kubernetes")
	card := utils.TestCreateCardAndValidate(t, router, map[string]interface{}{
		"domain_id": domain.Id,
		"title":     "Kubernetes basics",
	})
	described := utils.TestCreateCardAndValidate(t, router, map[string]interface{}{
		"title":       "Unrelated title",
		"description": "covers scheduling internals",
	})

	t.Run("case-insensitive title match", func(t *testing.T) {
		resp := postChat(t, router, "tell me about KUBERNETES please")
		require.Len(t, resp.UsedCards, 1)
		require.Equal(t, card.Id, resp.UsedCards[0].Id)
		require.NotNil(t, resp.UsedCards[0].DomainName)
		require.Equal(t, "Kubernetes", *resp.UsedCards[0].DomainName)
		require.Contains(t, resp.Answer, "Kubernetes basics")
	})

	t.Run("description match without domain", func(t *testing.T) {
		resp := postChat(t, router, "how does scheduling work")
		require.Len(t, resp.UsedCards, 1)
		require.Equal(t, described.Id, resp.UsedCards[0].Id)
		require.Nil(t, resp.UsedCards[0].DomainName)
	})
}

func TestChatMockCapsMatches(t *testing.T) {
	router, _ := newTestRouter(t)

	for i := 0; i < chatMatchLimit+3; i++ {
		utils.TestCreateCardAndValidate(t, router, map[string]interface{}{
			"title": fmt.Sprintf("golang tip %d", i),
		})
	}

	resp := postChat(t, router, "golang")
	require.Len(t, resp.UsedCards, chatMatchLimit)
	require.Contains(t, resp.Answer, fmt.Sprintf("%d", chatMatchLimit))
}
