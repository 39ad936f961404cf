package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avolkov/cardbase/model"
	"github.com/stretchr/testify/require"
)

// PerformRequest runs a single request against the handler under test and
// records the result. A non-nil body is serialized as JSON.
func PerformRequest(handler http.Handler, method string, path string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

// DecodeResponse unmarshals the recorded response body into out.
func DecodeResponse(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

// create user through the API, do sanity checks and return it
func TestCreateUserAndValidate(t *testing.T, handler http.Handler, email string, name string, role string) model.User {
	t.Helper()
	w := PerformRequest(handler, "POST", "/users", map[string]interface{}{
		"email": email,
		"name":  name,
		"role":  role,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var user model.User
	DecodeResponse(t, w, &user)
	require.NotZero(t, user.Id)
	require.Equal(t, email, user.Email)
	require.Equal(t, name, user.Name)
	return user
}

// create domain through the API, do sanity checks and return it
func TestCreateDomainAndValidate(t *testing.T, handler http.Handler, code string, name string) model.Domain {
	t.Helper()
	w := PerformRequest(handler, "POST", "/domains", map[string]interface{}{
		"code": code,
		"name": name,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var domain model.Domain
	DecodeResponse(t, w, &domain)
	require.NotZero(t, domain.Id)
	require.Equal(t, code, domain.Code)
	return domain
}

// create source through the API, do sanity checks and return it
func TestCreateSourceAndValidate(t *testing.T, handler http.Handler, domainId int32, title string) model.Source {
	t.Helper()
	w := PerformRequest(handler, "POST", "/sources", map[string]interface{}{
		"domain_id": domainId,
		"title":     title,
		"type":      "article",
		"uri":       "https://example.com/" + title,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var source model.Source
	DecodeResponse(t, w, &source)
	require.NotZero(t, source.Id)
	require.True(t, source.IsActive)
	return source
}

// create card through the API with an arbitrary body, do sanity checks and
// return it
func TestCreateCardAndValidate(t *testing.T, handler http.Handler, body map[string]interface{}) model.Card {
	t.Helper()
	w := PerformRequest(handler, "POST", "/cards", body)
	require.Equal(t, http.StatusCreated, w.Code)

	var card model.Card
	DecodeResponse(t, w, &card)
	require.NotZero(t, card.Id)
	return card
}

// create event through the API, do sanity checks and return it
func TestCreateEventAndValidate(t *testing.T, handler http.Handler, cardId int32, userId int32, eventType string) model.Event {
	t.Helper()
	w := PerformRequest(handler, "POST", "/events", map[string]interface{}{
		"card_id":    cardId,
		"user_id":    userId,
		"event_type": eventType,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var event model.Event
	DecodeResponse(t, w, &event)
	require.NotZero(t, event.Id)
	require.Equal(t, cardId, event.CardID)
	return event
}

// create expert through the API, do sanity checks and return it
func TestCreateExpertAndValidate(t *testing.T, handler http.Handler, userId int32, domainId int32, level string) model.Expert {
	t.Helper()
	w := PerformRequest(handler, "POST", "/experts", map[string]interface{}{
		"user_id":   userId,
		"domain_id": domainId,
		"level":     level,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var expert model.Expert
	DecodeResponse(t, w, &expert)
	require.NotZero(t, expert.Id)
	return expert
}

// link source to card through the API and do sanity checks
func TestLinkCardSourceAndValidate(t *testing.T, handler http.Handler, cardId int32, sourceId int32) model.CardSource {
	t.Helper()
	path := fmt.Sprintf("/cards/%d/sources/%d", cardId, sourceId)
	w := PerformRequest(handler, "POST", path, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var link model.CardSource
	DecodeResponse(t, w, &link)
	require.Equal(t, cardId, link.CardID)
	require.Equal(t, sourceId, link.SourceID)
	return link
}
