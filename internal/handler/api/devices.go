package api

import (
	"net/http"

	reqdto "lifepass-admin/internal/handler/dto/request"
	resdto "lifepass-admin/internal/handler/dto/response"
	"lifepass-admin/internal/handler/httperr"
	"lifepass-admin/internal/usecase/commands"
	"lifepass-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DeviceHandler struct {
	cmds commands.DeviceCommands
	q    queries.DeviceQueries
}

func NewDeviceHandler(cmds commands.DeviceCommands, q queries.DeviceQueries) *DeviceHandler {
	return &DeviceHandler{cmds: cmds, q: q}
}

// @Summary Provision device
// @Description Register a LifePass device. The printed code must carry a valid Luhn check digit.
// @Tags devices
// @Accept json
// @Produce json
// @Param request body reqdto.ProvisionDeviceRequest true "Device"
// @Success 201 {object} resdto.DeviceResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /devices [post]
func (h *DeviceHandler) Provision(c *gin.Context) {
	var req reqdto.ProvisionDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	d, err := h.cmds.Provision(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.Abort(c, err, "Provision failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromDevice(d))
}

// @Summary Device lookup
// @Description Find a device by serial, chip id or printed code. live is omitted when the status authority is unreachable.
// @Tags devices
// @Produce json
// @Param code path string true "Serial, chip id or printed code"
// @Success 200 {object} resdto.DeviceResponse
// @Failure 404 {object} map[string]string
// @Router /devices/{code} [get]
func (h *DeviceHandler) Lookup(c *gin.Context) {
	v, err := h.q.Lookup(c.Request.Context(), c.Param("code"))
	if err != nil {
		httperr.Abort(c, err, "Device not found")
		return
	}
	c.JSON(http.StatusOK, resdto.FromDeviceWithStatus(v))
}
