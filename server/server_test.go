package server

import (
	"fmt"
	"net/http"
	"os"
	"testing"

	"github.com/avolkov/cardbase/app_setting"
	"github.com/avolkov/cardbase/utils"
	"github.com/avolkov/cardbase/utils/dotenv"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	dotenv.LoadDotEnvsInTests()
	os.Exit(m.Run())
}

// newTestRouter assembles a router backed by a temp database. No static
// mount, tests exercise the API surface only.
func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db, _ := utils.CreateTempDB(t)
	router := NewRouter(db, app_setting.ServerAppSetting{})
	return router, db
}

func TestHealthCheck(t *testing.T) {
	router, _ := newTestRouter(t)

	w := utils.PerformRequest(router, "GET", "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"status": "ok"}`, w.Body.String())
}

func TestNotFoundOnMissingIdentifiers(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, resource := range []string{"users", "domains", "sources", "cards", "experts", "events"} {
		path := fmt.Sprintf("/%s/424242", resource)

		w := utils.PerformRequest(router, "GET", path, nil)
		require.Equal(t, http.StatusNotFound, w.Code, "GET "+path)

		w = utils.PerformRequest(router, "PUT", path, map[string]interface{}{})
		require.Equal(t, http.StatusNotFound, w.Code, "PUT "+path)

		w = utils.PerformRequest(router, "DELETE", path, nil)
		require.Equal(t, http.StatusNotFound, w.Code, "DELETE "+path)
	}

	w := utils.PerformRequest(router, "GET", "/cards/424242/full", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestValidationRejectsBadBodies(t *testing.T) {
	router, _ := newTestRouter(t)

	// missing required fields
	w := utils.PerformRequest(router, "POST", "/users", map[string]interface{}{"email": "a@b.c"})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// garbage path id
	w = utils.PerformRequest(router, "GET", "/users/abc", nil)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
