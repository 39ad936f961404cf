package server

import (
	"net/http"
	"strconv"

	. "github.com/avolkov/cardbase/utils/log"
	"github.com/gin-gonic/gin"
)

// notFound writes the standard 404 body for an unresolved identifier.
func notFound(c *gin.Context, entity string) {
	c.JSON(http.StatusNotFound, gin.H{"detail": entity + " not found"})
}

// validationError writes the 422 body produced by the binding layer.
func validationError(c *gin.Context, err error) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
}

// internalError logs the store failure once and hides it behind a generic
// body. No retry, the error already reached the caller.
func internalError(c *gin.Context, err error) {
	Log.Error("request failed: ", err)
	c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal error"})
}

// pathID parses an integer path parameter, writing a 422 on garbage input.
func pathID(c *gin.Context, name string) (int32, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "invalid id: " + raw})
		return 0, false
	}
	return int32(id), true
}
