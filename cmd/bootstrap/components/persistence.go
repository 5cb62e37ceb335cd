package components

import (
	"lifepass-admin/internal/infra/readstore"
	"lifepass-admin/internal/infra/uow"
	"lifepass-admin/internal/usecase/queries"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	readstoreModule,
	unitOfWorkModule,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewCatalogReadStore,
			fx.As(new(queries.CatalogReadStore)),
		),
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderReadStore)),
		),
		fx.Annotate(
			readstore.NewKioskReadStore,
			fx.As(new(queries.KioskReadStore)),
		),
		fx.Annotate(
			readstore.NewDeviceReadStore,
			fx.As(new(queries.DeviceReadStore)),
		),
	),
)

// Repositories are stateless and built by the unit of work around each transaction.
var unitOfWorkModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)
