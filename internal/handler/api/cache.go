package api

import (
	"net/http"

	reqdto "lifepass-admin/internal/handler/dto/request"
	"lifepass-admin/internal/handler/httperr"
	"lifepass-admin/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type CacheHandler struct {
	invalidator shared.CacheInvalidator
}

func NewCacheHandler(invalidator shared.CacheInvalidator) *CacheHandler {
	return &CacheHandler{invalidator: invalidator}
}

// @Summary Invalidate cache tags
// @Description Drop every cached entry under the given tags on this and peer instances. Unknown tags are a no-op.
// @Tags cache
// @Accept json
// @Param request body reqdto.InvalidateCacheRequest true "Tags"
// @Success 204
// @Failure 400 {object} map[string]string
// @Router /cache/invalidate [post]
func (h *CacheHandler) Invalidate(c *gin.Context) {
	var req reqdto.InvalidateCacheRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	h.invalidator.Invalidate(c.Request.Context(), req.Tags...)
	c.Status(http.StatusNoContent)
}
