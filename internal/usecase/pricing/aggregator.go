package pricing

import (
	"context"
	"fmt"
	"log/slog"

	"lifepass-admin/internal/domain/catalog"
	"lifepass-admin/internal/domain/order"
	dompricing "lifepass-admin/internal/domain/pricing"
	"lifepass-admin/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidDateRange    = errs.New("date range is required")
	ErrSalesChannelMissing = errs.New("sales channel not found")
)

type Config struct {
	MaxConcurrency int
	Retry          RetryPolicy
	Currency       string
	// Tax applied to insurance and lifepass rental, which are priced locally
	Tax dompricing.TaxRule
}

type Input struct {
	ResortID       uuid.UUID
	SalesChannelID *uuid.UUID
	DateRange      dompricing.DateRange
	Lines          []dompricing.LineRequest
}

func (in Input) Validate() error {
	if err := order.ValidateLines(in.ResortID, in.Lines); err != nil {
		return errs.Mark(err, errs.ErrValidation)
	}
	if in.DateRange.Start().IsZero() {
		return errs.Mark(ErrInvalidDateRange, errs.ErrValidation)
	}
	return nil
}

type Aggregator interface {
	Aggregate(ctx context.Context, in Input) (*dompricing.OrderPrice, error)
}

type aggregator struct {
	client  Client
	catalog CatalogSource
	cfg     Config
	logger  *slog.Logger
	tracer  trace.Tracer
}

func NewAggregator(client Client, source CatalogSource, cfg Config, logger *slog.Logger) Aggregator {
	return &aggregator{
		client:  client,
		catalog: source,
		cfg:     cfg,
		logger:  logger,
		tracer:  otel.Tracer("lifepass-admin/usecase/pricing"),
	}
}

// Aggregate prices every line concurrently and keeps the caller's line order.
// Calls already in flight when ctx is cancelled run to completion on a detached
// context, after which the whole result is discarded.
func (a *aggregator) Aggregate(ctx context.Context, in Input) (*dompricing.OrderPrice, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	ctx, span := a.tracer.Start(ctx, "pricing.Aggregate", trace.WithAttributes(
		attribute.String("resort.id", in.ResortID.String()),
		attribute.Int("order.lines", len(in.Lines)),
	))
	defer span.End()

	snap, err := a.catalog.Snapshot(ctx, in.ResortID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	var channel *catalog.SalesChannel
	if in.SalesChannelID != nil {
		channel = snap.SalesChannels[*in.SalesChannelID]
		if channel == nil && !snap.Degraded {
			return nil, errs.Mark(errs.Wrapf(ErrSalesChannelMissing, "sales channel %s", *in.SalesChannelID), errs.ErrNotFound)
		}
	}

	results := make([]dompricing.LineResult, len(in.Lines))
	callCtx := context.WithoutCancel(ctx)

	var g errgroup.Group
	g.SetLimit(max(a.cfg.MaxConcurrency, 1))
	for i, line := range in.Lines {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			results[i] = a.priceLine(ctx, callCtx, snap, channel, in, i, line)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		span.SetStatus(codes.Error, "cancelled")
		return nil, err
	}

	price := dompricing.NewOrderPrice(a.cfg.Currency, in.DateRange.DaysValidity(), results)
	span.SetAttributes(attribute.Int("order.failed_lines", len(price.FailedLines())))
	return price, nil
}

func (a *aggregator) priceLine(
	ctx, callCtx context.Context,
	snap *CatalogSnapshot,
	channel *catalog.SalesChannel,
	in Input,
	index int,
	line dompricing.LineRequest,
) dompricing.LineResult {
	callCtx, span := a.tracer.Start(callCtx, "pricing.Line", trace.WithAttributes(
		attribute.Int("line.index", index),
		attribute.String("product.id", line.ProductID.String()),
	))
	defer span.End()

	result := a.evaluate(ctx, callCtx, snap, channel, in, line)
	if perr := result.Err(); perr != nil {
		span.SetStatus(codes.Error, perr.Error())
		a.logger.Warn("order line failed pricing",
			"resort_id", in.ResortID.String(),
			"line", index,
			"kind", string(perr.Kind),
			"reason", perr.Message)
	}
	return result
}

func (a *aggregator) evaluate(
	ctx, callCtx context.Context,
	snap *CatalogSnapshot,
	channel *catalog.SalesChannel,
	in Input,
	line dompricing.LineRequest,
) dompricing.LineResult {
	category, perr := a.checkEligibility(snap, channel, line)
	if perr != nil {
		return dompricing.Failed(line, perr)
	}

	var product *dompricing.CalculatedPrice
	err := a.cfg.Retry.Do(ctx, func() error {
		p, err := a.client.Price(callCtx, PriceRequest{
			ResortID:           in.ResortID,
			ProductID:          line.ProductID,
			ConsumerCategoryID: line.ConsumerCategoryID,
			Date:               in.DateRange.Start(),
		})
		if err != nil {
			return err
		}
		product = p
		return nil
	})
	if err != nil {
		return dompricing.Failed(line, dompricing.Unavailable(err.Error()))
	}
	if !product.Success {
		msg := product.Message
		if msg == "" {
			msg = "rejected by pricing authority"
		}
		return dompricing.Failed(line, dompricing.Ineligible(msg))
	}
	if err := product.Validate(); err != nil {
		return dompricing.Failed(line, dompricing.Unavailable(err.Error()))
	}
	if product.Currency != a.cfg.Currency {
		return dompricing.Failed(line, dompricing.Ineligible(
			fmt.Sprintf("price currency %s differs from order currency %s", product.Currency, a.cfg.Currency)))
	}

	days := decimal.NewFromInt(int64(in.DateRange.DaysValidity()))
	lp := dompricing.LinePrice{ProductPrice: *product}
	if line.WithInsurance {
		gross := category.InsurancePricePerDay().Mul(days)
		if channel != nil && channel.InsurancePrice() != nil {
			gross = *channel.InsurancePrice()
		}
		p := a.cfg.Tax.FromGross(gross, a.cfg.Currency)
		lp.InsurancePrice = &p
	}
	if line.NeedsDevice() {
		gross := category.RentalPricePerDay().Mul(days)
		if channel != nil && channel.LifepassPrice() != nil {
			gross = *channel.LifepassPrice()
		}
		p := a.cfg.Tax.FromGross(gross, a.cfg.Currency)
		lp.LifepassRentalPrice = &p
	}
	return dompricing.Priced(line, lp)
}

func (a *aggregator) checkEligibility(snap *CatalogSnapshot, channel *catalog.SalesChannel, line dompricing.LineRequest) (*catalog.ConsumerCategory, *dompricing.PricingError) {
	product, ok := snap.Products[line.ProductID]
	if !ok {
		if snap.Degraded {
			return nil, dompricing.Unavailable("catalog unavailable")
		}
		return nil, dompricing.Ineligible("product not found in resort")
	}
	if !product.Active() {
		return nil, dompricing.Ineligible("product is inactive")
	}
	category, ok := snap.ConsumerCategories[line.ConsumerCategoryID]
	if !ok {
		if snap.Degraded {
			return nil, dompricing.Unavailable("catalog unavailable")
		}
		return nil, dompricing.Ineligible("consumer category not found in resort")
	}
	if channel != nil {
		if !channel.OffersProduct(line.ProductID) {
			return nil, dompricing.Ineligible("product not offered on sales channel")
		}
		if !channel.OffersConsumerCategory(line.ConsumerCategoryID) {
			return nil, dompricing.Ineligible("consumer category not offered on sales channel")
		}
	}
	if line.Age != nil && !category.Ages().Contains(*line.Age) {
		return nil, dompricing.Ineligible(fmt.Sprintf("age %d outside consumer category range", *line.Age))
	}
	return category, nil
}
