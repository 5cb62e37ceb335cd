package api

import (
	"net/http"

	resdto "lifepass-admin/internal/handler/dto/response"
	"lifepass-admin/internal/handler/httperr"
	"lifepass-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type KioskHandler struct {
	q queries.KioskQueries
}

func NewKioskHandler(q queries.KioskQueries) *KioskHandler {
	return &KioskHandler{q: q}
}

// @Summary Kiosk slot search
// @Description Live slot states from the device-status authority, with slots held by open allocations reported occupied.
// @Tags kiosks
// @Produce json
// @Param resortId path string true "Resort ID"
// @Param kioskId path string true "Kiosk ID"
// @Success 200 {array} resdto.KioskSlotResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /resorts/{resortId}/kiosks/{kioskId}/slots [get]
func (h *KioskHandler) Slots(c *gin.Context) {
	resortID, ok := uuidParam(c, "resortId")
	if !ok {
		return
	}
	kioskID, ok := uuidParam(c, "kioskId")
	if !ok {
		return
	}
	slots, err := h.q.Slots(c.Request.Context(), resortID, kioskID)
	if err != nil {
		httperr.Abort(c, err, "Slot search failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromKioskSlots(slots))
}
