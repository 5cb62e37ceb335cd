package components

import (
	"lifepass-admin/internal/handler"
	"lifepass-admin/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewOrderHandler,
		api.NewCatalogHandler,
		api.NewKioskHandler,
		api.NewDeviceHandler,
		api.NewCacheHandler,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	orders *api.OrderHandler,
	catalog *api.CatalogHandler,
	kiosks *api.KioskHandler,
	devices *api.DeviceHandler,
	cache *api.CacheHandler,
) handler.Handlers {
	return handler.Handlers{Orders: orders, Catalog: catalog, Kiosks: kiosks, Devices: devices, Cache: cache}
}
