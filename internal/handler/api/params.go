package api

import (
	"net/http"

	"lifepass-admin/internal/handler/httperr"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// uuidParam parses a path parameter and aborts with 400 when it is not a UUID.
func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}
