package api

import (
	"net/http"

	reqdto "lifepass-admin/internal/handler/dto/request"
	resdto "lifepass-admin/internal/handler/dto/response"
	"lifepass-admin/internal/handler/httperr"
	"lifepass-admin/internal/usecase/commands"
	"lifepass-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	cmds   commands.CatalogCommands
	q      queries.CatalogQueries
	kiosks queries.KioskQueries
}

func NewCatalogHandler(cmds commands.CatalogCommands, q queries.CatalogQueries, kiosks queries.KioskQueries) *CatalogHandler {
	return &CatalogHandler{cmds: cmds, q: q, kiosks: kiosks}
}

// respondList writes a catalog read. A degraded read is still a 200 with degraded=true.
func respondList[V, R any](c *gin.Context, list queries.CatalogList[V]) {
	res, err := resdto.FromCatalogList[V, R](list)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary List products
// @Tags catalog
// @Produce json
// @Param resortId path string true "Resort ID"
// @Success 200 {object} resdto.CatalogListResponse[resdto.ProductResponse]
// @Router /resorts/{resortId}/catalog/products [get]
func (h *CatalogHandler) Products(c *gin.Context) {
	resortID, ok := uuidParam(c, "resortId")
	if !ok {
		return
	}
	respondList[queries.ProductView, resdto.ProductResponse](c, h.q.Products(c.Request.Context(), resortID))
}

// @Summary List consumer categories
// @Tags catalog
// @Produce json
// @Param resortId path string true "Resort ID"
// @Success 200 {object} resdto.CatalogListResponse[resdto.ConsumerCategoryResponse]
// @Router /resorts/{resortId}/catalog/consumer-categories [get]
func (h *CatalogHandler) ConsumerCategories(c *gin.Context) {
	resortID, ok := uuidParam(c, "resortId")
	if !ok {
		return
	}
	respondList[queries.ConsumerCategoryView, resdto.ConsumerCategoryResponse](c, h.q.ConsumerCategories(c.Request.Context(), resortID))
}

// @Summary List validity categories
// @Tags catalog
// @Produce json
// @Param resortId path string true "Resort ID"
// @Success 200 {object} resdto.CatalogListResponse[resdto.ValidityCategoryResponse]
// @Router /resorts/{resortId}/catalog/validity-categories [get]
func (h *CatalogHandler) ValidityCategories(c *gin.Context) {
	resortID, ok := uuidParam(c, "resortId")
	if !ok {
		return
	}
	respondList[queries.ValidityCategoryView, resdto.ValidityCategoryResponse](c, h.q.ValidityCategories(c.Request.Context(), resortID))
}

// @Summary List sales channels
// @Tags catalog
// @Produce json
// @Param resortId path string true "Resort ID"
// @Success 200 {object} resdto.CatalogListResponse[resdto.SalesChannelResponse]
// @Router /resorts/{resortId}/catalog/sales-channels [get]
func (h *CatalogHandler) SalesChannels(c *gin.Context) {
	resortID, ok := uuidParam(c, "resortId")
	if !ok {
		return
	}
	respondList[queries.SalesChannelView, resdto.SalesChannelResponse](c, h.q.SalesChannels(c.Request.Context(), resortID))
}

// @Summary List kiosks
// @Tags catalog
// @Produce json
// @Param resortId path string true "Resort ID"
// @Success 200 {object} resdto.CatalogListResponse[resdto.KioskResponse]
// @Router /resorts/{resortId}/catalog/kiosks [get]
func (h *CatalogHandler) Kiosks(c *gin.Context) {
	resortID, ok := uuidParam(c, "resortId")
	if !ok {
		return
	}
	respondList[queries.KioskView, resdto.KioskResponse](c, h.kiosks.List(c.Request.Context(), resortID))
}

// @Summary Create product
// @Tags catalog
// @Accept json
// @Produce json
// @Param resortId path string true "Resort ID"
// @Param request body reqdto.ProductRequest true "Product"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /resorts/{resortId}/products [post]
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	resortID, ok := uuidParam(c, "resortId")
	if !ok {
		return
	}
	var req reqdto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	res, err := h.cmds.CreateProduct(c.Request.Context(), req.ToParams(resortID))
	if err != nil {
		httperr.Abort(c, err, "Create product failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: res.ID.String()})
}

// @Summary Update product
// @Tags catalog
// @Accept json
// @Param id path string true "Product ID"
// @Param request body reqdto.ProductRequest true "Product"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /products/{id} [put]
func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.UpdateProduct(c.Request.Context(), id, req.ToParams(uuid.Nil)); err != nil {
		httperr.Abort(c, err, "Update product failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Create consumer category
// @Tags catalog
// @Accept json
// @Produce json
// @Param resortId path string true "Resort ID"
// @Param request body reqdto.ConsumerCategoryRequest true "Consumer category"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /resorts/{resortId}/consumer-categories [post]
func (h *CatalogHandler) CreateConsumerCategory(c *gin.Context) {
	resortID, ok := uuidParam(c, "resortId")
	if !ok {
		return
	}
	var req reqdto.ConsumerCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	res, err := h.cmds.CreateConsumerCategory(c.Request.Context(), req.ToParams(resortID))
	if err != nil {
		httperr.Abort(c, err, "Create consumer category failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: res.ID.String()})
}

// @Summary Update consumer category
// @Tags catalog
// @Accept json
// @Param id path string true "Consumer category ID"
// @Param request body reqdto.ConsumerCategoryRequest true "Consumer category"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /consumer-categories/{id} [put]
func (h *CatalogHandler) UpdateConsumerCategory(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.ConsumerCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.UpdateConsumerCategory(c.Request.Context(), id, req.ToParams(uuid.Nil)); err != nil {
		httperr.Abort(c, err, "Update consumer category failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Create validity category
// @Tags catalog
// @Accept json
// @Produce json
// @Param resortId path string true "Resort ID"
// @Param request body reqdto.ValidityCategoryRequest true "Validity category"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Router /resorts/{resortId}/validity-categories [post]
func (h *CatalogHandler) CreateValidityCategory(c *gin.Context) {
	resortID, ok := uuidParam(c, "resortId")
	if !ok {
		return
	}
	var req reqdto.ValidityCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	res, err := h.cmds.CreateValidityCategory(c.Request.Context(), req.ToCommand(resortID))
	if err != nil {
		httperr.Abort(c, err, "Create validity category failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: res.ID.String()})
}

// @Summary Create sales channel
// @Tags catalog
// @Accept json
// @Produce json
// @Param resortId path string true "Resort ID"
// @Param request body reqdto.SalesChannelRequest true "Sales channel"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Router /resorts/{resortId}/sales-channels [post]
func (h *CatalogHandler) CreateSalesChannel(c *gin.Context) {
	resortID, ok := uuidParam(c, "resortId")
	if !ok {
		return
	}
	var req reqdto.SalesChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	res, err := h.cmds.CreateSalesChannel(c.Request.Context(), req.ToParams(resortID))
	if err != nil {
		httperr.Abort(c, err, "Create sales channel failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: res.ID.String()})
}

// @Summary Create kiosk
// @Tags catalog
// @Accept json
// @Produce json
// @Param resortId path string true "Resort ID"
// @Param request body reqdto.KioskRequest true "Kiosk"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Router /resorts/{resortId}/kiosks [post]
func (h *CatalogHandler) CreateKiosk(c *gin.Context) {
	resortID, ok := uuidParam(c, "resortId")
	if !ok {
		return
	}
	var req reqdto.KioskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	res, err := h.cmds.CreateKiosk(c.Request.Context(), req.ToCommand(resortID))
	if err != nil {
		httperr.Abort(c, err, "Create kiosk failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: res.ID.String()})
}
