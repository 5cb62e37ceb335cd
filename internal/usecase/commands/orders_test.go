//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"lifepass-admin/internal/domain/device"
	"lifepass-admin/internal/domain/order"
	dompricing "lifepass-admin/internal/domain/pricing"
	"lifepass-admin/internal/infra"
	"lifepass-admin/internal/infra/cache"
	"lifepass-admin/internal/infra/db"
	"lifepass-admin/internal/pkg/clock"
	"lifepass-admin/internal/pkg/errs"
	"lifepass-admin/internal/usecase/allocation"
	"lifepass-admin/internal/usecase/commands"
	"lifepass-admin/internal/usecase/pricing"
	"lifepass-admin/internal/usecase/shared"
	allocationmock "lifepass-admin/tests/mock/allocation"
	pricingmock "lifepass-admin/tests/mock/pricing"
	sharedmock "lifepass-admin/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var (
	now     = time.Date(2026, 12, 20, 8, 30, 0, 0, time.UTC)
	discard = slog.New(slog.NewTextHandler(io.Discard, nil))
)

type OrderCommandsTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	uow         *sharedmock.MockUnitOfWork
	tx          *sharedmock.MockTx
	reads       *sharedmock.MockCommandReads
	orders      *sharedmock.MockOrderRepository
	invalidator *sharedmock.MockCacheInvalidator
	aggregator  *pricingmock.MockAggregator
	allocator   *allocationmock.MockAllocator
	uc          commands.OrderCommands

	resortID uuid.UUID
}

func TestOrderCommandsSuite(t *testing.T) {
	suite.Run(t, new(OrderCommandsTestSuite))
}

func (s *OrderCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.reads = sharedmock.NewMockCommandReads(s.ctrl)
	s.orders = sharedmock.NewMockOrderRepository(s.ctrl)
	s.invalidator = sharedmock.NewMockCacheInvalidator(s.ctrl)
	s.aggregator = pricingmock.NewMockAggregator(s.ctrl)
	s.allocator = allocationmock.NewMockAllocator(s.ctrl)

	s.uow.EXPECT().CommandReads().Return(s.reads).AnyTimes()
	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		}).AnyTimes()
	s.tx.EXPECT().Orders().Return(s.orders).AnyTimes()
	s.tx.EXPECT().Reads().Return(s.reads).AnyTimes()
	s.tx.EXPECT().DB().Return(nil).AnyTimes()

	s.uc = commands.NewOrderUseCase(s.uow, s.aggregator, s.allocator, s.invalidator, clock.NewMockClock(now), discard)
	s.resortID = uuid.New()
}

func (s *OrderCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func price(gross string) dompricing.CalculatedPrice {
	amount := decimal.RequireFromString(gross)
	return dompricing.CalculatedPrice{
		AmountNet:   amount,
		AmountGross: amount,
		Currency:    "CHF",
		TaxDetails:  []dompricing.TaxDetail{},
		Success:     true,
	}
}

func (s *OrderCommandsTestSuite) expectResort() {
	s.reads.EXPECT().ResortByID(gomock.Any(), s.resortID).Return(&shared.ResortSnapshot{ID: s.resortID, Name: "Alpine"}, nil)
}

func (s *OrderCommandsTestSuite) expectInvalidations(n int) {
	s.invalidator.EXPECT().Invalidate(gomock.Any(), cache.OrderTags(s.resortID)).Times(n)
}

func (s *OrderCommandsTestSuite) lines() []dompricing.LineRequest {
	return []dompricing.LineRequest{
		{ProductID: uuid.New(), ConsumerCategoryID: uuid.New(), Device: &dompricing.DeviceRequest{Code: "DTA-001"}},
		{ProductID: uuid.New(), ConsumerCategoryID: uuid.New()},
	}
}

func (s *OrderCommandsTestSuite) TestCheckout_PartialPricingFailure() {
	lines := s.lines()
	s.expectResort()
	s.orders.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.orders.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.expectInvalidations(2)

	s.aggregator.EXPECT().Aggregate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, in pricing.Input) (*dompricing.OrderPrice, error) {
			s.Equal(s.resortID, in.ResortID)
			s.Len(in.Lines, 2)
			return dompricing.NewOrderPrice("CHF", 1, []dompricing.LineResult{
				dompricing.Priced(in.Lines[0], dompricing.LinePrice{ProductPrice: price("100")}),
				dompricing.Failed(in.Lines[1], dompricing.Unavailable("authority timeout")),
			}), nil
		})
	s.allocator.EXPECT().Allocate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req allocation.Request) (*device.Allocation, error) {
			s.Equal(0, req.LineIndex)
			s.Equal("DTA-001", req.DeviceCode)
			return &device.Allocation{ID: uuid.New(), OrderID: req.OrderID, LineIndex: 0, DeviceCode: "DTA-001", AllocatedAt: now}, nil
		})

	view, err := s.uc.Checkout(context.Background(), commands.CheckoutRequest{
		ResortID:  s.resortID,
		StartDate: now,
		Lines:     lines,
	})

	s.Require().NoError(err)
	s.Equal(order.StatusPartiallyFailed, view.Status)
	s.Require().NotNil(view.Price)
	s.True(view.Price.CumulatedPrice.AmountGross.Equal(decimal.RequireFromString("100")))
	s.Equal([]int{1}, view.Price.FailedLines())
	s.Require().Len(view.Fulfillment, 1)
	s.Equal("DTA-001", view.Fulfillment[0].DeviceCode)
}

func (s *OrderCommandsTestSuite) TestCheckout_Fulfilled() {
	lines := s.lines()
	s.expectResort()
	s.orders.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.orders.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.expectInvalidations(2)
	s.aggregator.EXPECT().Aggregate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, in pricing.Input) (*dompricing.OrderPrice, error) {
			return dompricing.NewOrderPrice("CHF", 1, []dompricing.LineResult{
				dompricing.Priced(in.Lines[0], dompricing.LinePrice{ProductPrice: price("60")}),
				dompricing.Priced(in.Lines[1], dompricing.LinePrice{ProductPrice: price("40")}),
			}), nil
		})
	s.allocator.EXPECT().Allocate(gomock.Any(), gomock.Any()).
		Return(&device.Allocation{ID: uuid.New(), DeviceCode: "DTA-001"}, nil)

	view, err := s.uc.Checkout(context.Background(), commands.CheckoutRequest{ResortID: s.resortID, StartDate: now, Lines: lines})

	s.Require().NoError(err)
	s.Equal(order.StatusFulfilled, view.Status)
	s.True(view.Price.CumulatedPrice.AmountGross.Equal(decimal.RequireFromString("100")))
}

func (s *OrderCommandsTestSuite) TestCheckout_AllocationFailureMarksLine() {
	lines := s.lines()
	s.expectResort()
	s.orders.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.orders.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.expectInvalidations(2)
	s.aggregator.EXPECT().Aggregate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, in pricing.Input) (*dompricing.OrderPrice, error) {
			return dompricing.NewOrderPrice("CHF", 1, []dompricing.LineResult{
				dompricing.Priced(in.Lines[0], dompricing.LinePrice{ProductPrice: price("60")}),
				dompricing.Priced(in.Lines[1], dompricing.LinePrice{ProductPrice: price("40")}),
			}), nil
		})
	s.allocator.EXPECT().Allocate(gomock.Any(), gomock.Any()).
		Return(nil, errs.Mark(allocation.ErrDeviceOccupied, errs.ErrDeviceUnavailable))

	view, err := s.uc.Checkout(context.Background(), commands.CheckoutRequest{ResortID: s.resortID, StartDate: now, Lines: lines})

	s.Require().NoError(err)
	s.Equal(order.StatusPartiallyFailed, view.Status)
	s.Require().Len(view.Fulfillment, 1)
	s.True(view.Fulfillment[0].Failed())
}

func (s *OrderCommandsTestSuite) TestCheckout_UnknownResort() {
	s.reads.EXPECT().ResortByID(gomock.Any(), s.resortID).Return(nil, infra.RepositoryError{Kind: infra.KindNotFound})
	s.orders.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := s.uc.Checkout(context.Background(), commands.CheckoutRequest{ResortID: s.resortID, StartDate: now, Lines: s.lines()})

	s.True(errs.Is(err, errs.ErrNotFound))
}

func (s *OrderCommandsTestSuite) TestCheckout_ValidationBeforeAnyCall() {
	end := now.AddDate(0, 0, -1)
	_, err := s.uc.Checkout(context.Background(), commands.CheckoutRequest{ResortID: s.resortID, StartDate: now, EndDate: &end, Lines: s.lines()})
	s.True(errs.Is(err, errs.ErrValidation))

	_, err = s.uc.Checkout(context.Background(), commands.CheckoutRequest{ResortID: s.resortID, StartDate: now})
	s.True(errs.Is(err, errs.ErrValidation))
}

func (s *OrderCommandsTestSuite) TestCheckout_CancelledDuringAllocationReleases() {
	ctx, cancel := context.WithCancel(context.Background())
	lines := []dompricing.LineRequest{
		{ProductID: uuid.New(), ConsumerCategoryID: uuid.New(), Device: &dompricing.DeviceRequest{Code: "DTA-001"}},
		{ProductID: uuid.New(), ConsumerCategoryID: uuid.New(), Device: &dompricing.DeviceRequest{Code: "DTA-002"}},
	}
	s.expectResort()
	s.orders.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ db.DBTX, o *order.Order) error {
			s.Equal(order.StatusPriced, o.Status())
			return nil
		})
	s.orders.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	s.expectInvalidations(1)
	s.aggregator.EXPECT().Aggregate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, in pricing.Input) (*dompricing.OrderPrice, error) {
			return dompricing.NewOrderPrice("CHF", 1, []dompricing.LineResult{
				dompricing.Priced(in.Lines[0], dompricing.LinePrice{ProductPrice: price("60")}),
				dompricing.Priced(in.Lines[1], dompricing.LinePrice{ProductPrice: price("40")}),
			}), nil
		})
	s.allocator.EXPECT().Allocate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req allocation.Request) (*device.Allocation, error) {
			cancel()
			return &device.Allocation{ID: uuid.New(), OrderID: req.OrderID, DeviceCode: req.DeviceCode}, nil
		})
	s.allocator.EXPECT().Release(gomock.Any(), gomock.Any()).DoAndReturn(
		func(rctx context.Context, _ uuid.UUID) (int, error) {
			s.NoError(rctx.Err())
			return 1, nil
		})

	_, err := s.uc.Checkout(ctx, commands.CheckoutRequest{ResortID: s.resortID, StartDate: now, Lines: lines})

	s.ErrorIs(err, context.Canceled)
}

func (s *OrderCommandsTestSuite) expectSingleDevicePriced() []dompricing.LineRequest {
	lines := []dompricing.LineRequest{
		{ProductID: uuid.New(), ConsumerCategoryID: uuid.New(), Device: &dompricing.DeviceRequest{Code: "DTA-001"}},
	}
	s.expectResort()
	s.aggregator.EXPECT().Aggregate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, in pricing.Input) (*dompricing.OrderPrice, error) {
			return dompricing.NewOrderPrice("CHF", 1, []dompricing.LineResult{
				dompricing.Priced(in.Lines[0], dompricing.LinePrice{ProductPrice: price("60")}),
			}), nil
		})
	return lines
}

func (s *OrderCommandsTestSuite) TestCheckout_CancelledAfterLastAllocationReleases() {
	ctx, cancel := context.WithCancel(context.Background())
	lines := s.expectSingleDevicePriced()
	s.orders.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.orders.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ db.DBTX, _ *order.Order) error {
			return ctx.Err()
		}).AnyTimes()
	s.invalidator.EXPECT().Invalidate(gomock.Any(), cache.OrderTags(s.resortID)).AnyTimes()
	s.allocator.EXPECT().Allocate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req allocation.Request) (*device.Allocation, error) {
			cancel()
			return &device.Allocation{ID: uuid.New(), OrderID: req.OrderID, DeviceCode: req.DeviceCode}, nil
		})
	s.allocator.EXPECT().Release(gomock.Any(), gomock.Any()).DoAndReturn(
		func(rctx context.Context, _ uuid.UUID) (int, error) {
			s.NoError(rctx.Err())
			return 1, nil
		}).Times(1)

	_, err := s.uc.Checkout(ctx, commands.CheckoutRequest{ResortID: s.resortID, StartDate: now, Lines: lines})

	s.ErrorIs(err, context.Canceled)
}

func (s *OrderCommandsTestSuite) TestCheckout_FinalPersistFailureReleases() {
	lines := s.expectSingleDevicePriced()
	var created uuid.UUID
	s.orders.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ db.DBTX, o *order.Order) error {
			created = o.ID()
			return nil
		})
	s.orders.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(infra.RepositoryError{Kind: infra.KindDBFailure})
	s.expectInvalidations(1)
	s.allocator.EXPECT().Allocate(gomock.Any(), gomock.Any()).
		Return(&device.Allocation{ID: uuid.New(), DeviceCode: "DTA-001"}, nil)
	s.allocator.EXPECT().Release(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, id uuid.UUID) (int, error) {
			s.Equal(created, id)
			return 1, nil
		})

	_, err := s.uc.Checkout(context.Background(), commands.CheckoutRequest{ResortID: s.resortID, StartDate: now, Lines: lines})

	s.True(infra.IsKind(err, infra.KindDBFailure))
}

func (s *OrderCommandsTestSuite) TestCheckout_AggregationFailureWritesNothing() {
	s.expectResort()
	s.aggregator.EXPECT().Aggregate(gomock.Any(), gomock.Any()).Return(nil, context.DeadlineExceeded)
	s.orders.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	s.allocator.EXPECT().Allocate(gomock.Any(), gomock.Any()).Times(0)

	_, err := s.uc.Checkout(context.Background(), commands.CheckoutRequest{ResortID: s.resortID, StartDate: now, Lines: s.lines()})

	s.ErrorIs(err, context.DeadlineExceeded)
}

func (s *OrderCommandsTestSuite) existing(testOrder bool) *order.Order {
	dr, _ := dompricing.NewDateRange(now, nil)
	return order.ReconstructOrder(uuid.New(), s.resortID, nil, dr, s.lines(), nil, nil, order.StatusDraft, testOrder, now, now)
}

func (s *OrderCommandsTestSuite) TestSetTestOrder() {
	s.Run("flips the flag and invalidates", func() {
		o := s.existing(false)
		s.reads.EXPECT().OrderByID(gomock.Any(), o.ID()).Return(o, nil)
		s.orders.EXPECT().Update(gomock.Any(), gomock.Any(), o).Return(nil)
		s.expectInvalidations(1)

		view, err := s.uc.SetTestOrder(context.Background(), o.ID(), true)
		s.Require().NoError(err)
		s.True(view.TestOrder)
		s.Equal(order.StatusDraft, view.Status)
	})

	s.Run("same value writes nothing", func() {
		o := s.existing(true)
		s.reads.EXPECT().OrderByID(gomock.Any(), o.ID()).Return(o, nil)

		view, err := s.uc.SetTestOrder(context.Background(), o.ID(), true)
		s.Require().NoError(err)
		s.True(view.TestOrder)
	})

	s.Run("unknown order", func() {
		id := uuid.New()
		s.reads.EXPECT().OrderByID(gomock.Any(), id).Return(nil, infra.RepositoryError{Kind: infra.KindNotFound})

		_, err := s.uc.SetTestOrder(context.Background(), id, true)
		s.True(errs.Is(err, errs.ErrNotFound))
	})
}

func (s *OrderCommandsTestSuite) TestReleaseDevices() {
	o := s.existing(false)
	s.reads.EXPECT().OrderByID(gomock.Any(), o.ID()).Return(o, nil).Times(2)
	s.allocator.EXPECT().Release(gomock.Any(), o.ID()).Return(2, nil)
	s.allocator.EXPECT().Release(gomock.Any(), o.ID()).Return(0, nil)
	s.expectInvalidations(1)

	n, err := s.uc.ReleaseDevices(context.Background(), o.ID())
	s.Require().NoError(err)
	s.Equal(2, n)

	n, err = s.uc.ReleaseDevices(context.Background(), o.ID())
	s.Require().NoError(err)
	s.Zero(n)
}

func (s *OrderCommandsTestSuite) TestSweep() {
	stale := []uuid.UUID{uuid.New(), uuid.New()}
	allocations := sharedmock.NewMockAllocationRepository(s.ctrl)
	s.tx.EXPECT().Allocations().Return(allocations).AnyTimes()
	allocations.EXPECT().StaleOrders(gomock.Any(), gomock.Any(), now.Add(-30*time.Minute), gomock.Any()).Return(stale, nil)
	s.allocator.EXPECT().Release(gomock.Any(), stale[0]).Return(0, errors.New("deadlock"))
	s.allocator.EXPECT().Release(gomock.Any(), stale[1]).Return(2, nil)
	s.invalidator.EXPECT().Invalidate(gomock.Any(), cache.TagOrders)

	sweeper := commands.NewAllocationSweeper(s.uow, s.allocator, s.invalidator, clock.NewMockClock(now), 30*time.Minute, discard)
	n, err := sweeper.Sweep(context.Background())

	s.Require().NoError(err)
	s.Equal(2, n)
}
