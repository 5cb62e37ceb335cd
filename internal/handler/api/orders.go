package api

import (
	"net/http"

	"lifepass-admin/internal/domain/order"
	reqdto "lifepass-admin/internal/handler/dto/request"
	resdto "lifepass-admin/internal/handler/dto/response"
	"lifepass-admin/internal/handler/httperr"
	"lifepass-admin/internal/usecase/commands"
	"lifepass-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const defaultOrderPageSize = 50

type OrderHandler struct {
	cmds commands.OrderCommands
	q    queries.OrderQueries
}

func NewOrderHandler(cmds commands.OrderCommands, q queries.OrderQueries) *OrderHandler {
	return &OrderHandler{cmds: cmds, q: q}
}

// @Summary Checkout
// @Description Price every line, allocate devices and persist the order. A partially failed order is still created.
// @Tags orders
// @Accept json
// @Produce json
// @Param resortId path string true "Resort ID"
// @Param request body reqdto.CheckoutRequest true "Checkout request"
// @Success 201 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /resorts/{resortId}/orders [post]
func (h *OrderHandler) Checkout(c *gin.Context) {
	resortID, ok := uuidParam(c, "resortId")
	if !ok {
		return
	}
	var req reqdto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.Checkout(c.Request.Context(), req.ToCommand(resortID))
	if err != nil {
		httperr.Abort(c, err, "Checkout failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromOrderView(view))
}

// @Summary Get order
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	view, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err, "Order not found")
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

// @Summary List orders
// @Description Newest first, keyset paginated through next_cursor.
// @Tags orders
// @Produce json
// @Param resortId path string true "Resort ID"
// @Param status query string false "Order status"
// @Param test query bool false "Test orders only / real orders only"
// @Param limit query int false "Page size (1-200)"
// @Param after query string false "Cursor from a previous page"
// @Success 200 {object} resdto.OrderListResponse
// @Failure 400 {object} map[string]string
// @Router /resorts/{resortId}/orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	resortID, ok := uuidParam(c, "resortId")
	if !ok {
		return
	}
	var query reqdto.ListOrdersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	filters := queries.OrderFilters{TestOrder: query.Test}
	if query.Status != "" {
		status := order.Status(query.Status)
		filters.Status = &status
	}
	limit := defaultOrderPageSize
	if query.Limit != nil {
		limit = *query.Limit
	}

	page, err := h.q.List(c.Request.Context(), resortID, filters, query.After, limit)
	if err != nil {
		httperr.Abort(c, err, "List orders failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderPage(page))
}

// @Summary Flag test order
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body reqdto.SetTestOrderRequest true "Test order flag"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders/{id}/test-order [patch]
func (h *OrderHandler) SetTestOrder(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.SetTestOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.SetTestOrder(c.Request.Context(), id, *req.TestOrder)
	if err != nil {
		httperr.Abort(c, err, "Update failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

// @Summary Release devices
// @Description Release every device allocation the order still holds. Repeating the call releases nothing.
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.ReleaseResponse
// @Failure 404 {object} map[string]string
// @Router /orders/{id}/release [post]
func (h *OrderHandler) Release(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	n, err := h.cmds.ReleaseDevices(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err, "Release failed")
		return
	}
	c.JSON(http.StatusOK, resdto.ReleaseResponse{OrderID: id.String(), Released: n})
}
