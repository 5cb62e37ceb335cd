package bootstrap

import (
	"lifepass-admin/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	TelemetryModule,
	DBModule,
	JWTModule,
	CacheModule,
	BrokerModule,
	components.PersistenceModule,
	components.AuthorityModule,
	components.UseCaseModule,
	components.HandlerModule,
	SchedulerModule,
)
