package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"lifepass-admin/internal/handler/api"
	"lifepass-admin/internal/handler/middleware"
	"lifepass-admin/internal/handler/validation"
	"lifepass-admin/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Orders  *api.OrderHandler
	Catalog *api.CatalogHandler
	Kiosks  *api.KioskHandler
	Devices *api.DeviceHandler
	Cache   *api.CacheHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers) error {
	if err := validation.Register(); err != nil {
		return err
	}
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h)
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(logger.GetSlogLogger()))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, logger.GetSlogLogger()))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	live := []gin.HandlerFunc{middleware.NoStore()}

	apiGroup := engine.Group("/api")
	{
		resorts := apiGroup.Group("/resorts/:resortId")
		addRoutes(resorts, []route{
			{Method: http.MethodPost, Path: "/orders", Handler: h.Orders.Checkout},
			{Method: http.MethodGet, Path: "/orders", Handler: h.Orders.List},

			{Method: http.MethodGet, Path: "/catalog/products", Handler: h.Catalog.Products},
			{Method: http.MethodGet, Path: "/catalog/consumer-categories", Handler: h.Catalog.ConsumerCategories},
			{Method: http.MethodGet, Path: "/catalog/validity-categories", Handler: h.Catalog.ValidityCategories},
			{Method: http.MethodGet, Path: "/catalog/sales-channels", Handler: h.Catalog.SalesChannels},
			{Method: http.MethodGet, Path: "/catalog/kiosks", Handler: h.Catalog.Kiosks},

			{Method: http.MethodPost, Path: "/products", Handler: h.Catalog.CreateProduct},
			{Method: http.MethodPost, Path: "/consumer-categories", Handler: h.Catalog.CreateConsumerCategory},
			{Method: http.MethodPost, Path: "/validity-categories", Handler: h.Catalog.CreateValidityCategory},
			{Method: http.MethodPost, Path: "/sales-channels", Handler: h.Catalog.CreateSalesChannel},
			{Method: http.MethodPost, Path: "/kiosks", Handler: h.Catalog.CreateKiosk},
			{Method: http.MethodGet, Path: "/kiosks/:kioskId/slots", Handler: h.Kiosks.Slots, Mw: live},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/orders/:id", Handler: h.Orders.Get},
			{Method: http.MethodPatch, Path: "/orders/:id/test-order", Handler: h.Orders.SetTestOrder},
			{Method: http.MethodPost, Path: "/orders/:id/release", Handler: h.Orders.Release},

			{Method: http.MethodPut, Path: "/products/:id", Handler: h.Catalog.UpdateProduct},
			{Method: http.MethodPut, Path: "/consumer-categories/:id", Handler: h.Catalog.UpdateConsumerCategory},

			{Method: http.MethodPost, Path: "/devices", Handler: h.Devices.Provision},
			{Method: http.MethodGet, Path: "/devices/:code", Handler: h.Devices.Lookup, Mw: live},

			{Method: http.MethodPost, Path: "/cache/invalidate", Handler: h.Cache.Invalidate},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
