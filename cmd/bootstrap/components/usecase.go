package components

import (
	"log/slog"

	dompricing "lifepass-admin/internal/domain/pricing"
	"lifepass-admin/internal/pkg/clock"
	"lifepass-admin/internal/pkg/config"
	"lifepass-admin/internal/usecase/allocation"
	"lifepass-admin/internal/usecase/commands"
	"lifepass-admin/internal/usecase/pricing"
	"lifepass-admin/internal/usecase/queries"
	"lifepass-admin/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecasePricingModule,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecasePricingModule = fx.Module("usecase/pricing",
	fx.Provide(
		NewPricingConfig,
		queries.NewCatalogSource,
		pricing.NewAggregator,
		allocation.NewAllocator,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCatalogQueries,
		queries.NewOrderQueries,
		queries.NewKioskQueries,
		queries.NewDeviceQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewOrderUseCase,
		commands.NewCatalogUseCase,
		commands.NewDeviceUseCase,
		NewAllocationSweeper,
	),
)

// NewPricingConfig builds the VAT rule applied to locally priced insurance and rental.
func NewPricingConfig(cfg config.Config) (pricing.Config, error) {
	pc := cfg.Pricing
	tax, err := dompricing.NewTaxRule(pc.VATName, pc.VATShortName, pc.VATRate, 0)
	if err != nil {
		return pricing.Config{}, err
	}
	return pricing.Config{
		MaxConcurrency: pc.MaxConcurrency,
		Retry: pricing.RetryPolicy{
			MaxAttempts: pc.MaxAttempts,
			Backoff:     pricing.ExponentialBackoff(pc.BaseBackoff, pc.MaxBackoff),
		},
		Currency: pc.Currency,
		Tax:      tax,
	}, nil
}

func NewAllocationSweeper(
	cfg config.Config,
	uow shared.UnitOfWork,
	allocator allocation.Allocator,
	invalidator shared.CacheInvalidator,
	clk clock.Clock,
	logger *slog.Logger,
) commands.AllocationSweeper {
	return commands.NewAllocationSweeper(uow, allocator, invalidator, clk, cfg.Scheduler.AllocationTTL, logger)
}
