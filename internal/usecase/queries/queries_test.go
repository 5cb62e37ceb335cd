//go:build unit

package queries_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"lifepass-admin/internal/domain/catalog"
	"lifepass-admin/internal/domain/device"
	"lifepass-admin/internal/domain/order"
	"lifepass-admin/internal/infra"
	"lifepass-admin/internal/infra/cache"
	"lifepass-admin/internal/pkg/clock"
	"lifepass-admin/internal/pkg/errs"
	"lifepass-admin/internal/usecase/queries"
	queriesmock "lifepass-admin/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

type QueriesTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	catalog   *queriesmock.MockCatalogReadStore
	orders    *queriesmock.MockOrderReadStore
	kiosks    *queriesmock.MockKioskReadStore
	devices   *queriesmock.MockDeviceReadStore
	authority *queriesmock.MockSlotAuthority
	cache     *cache.Service
	resortID  uuid.UUID
}

func TestQueriesSuite(t *testing.T) {
	suite.Run(t, new(QueriesTestSuite))
}

func (s *QueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.catalog = queriesmock.NewMockCatalogReadStore(s.ctrl)
	s.orders = queriesmock.NewMockOrderReadStore(s.ctrl)
	s.kiosks = queriesmock.NewMockKioskReadStore(s.ctrl)
	s.devices = queriesmock.NewMockDeviceReadStore(s.ctrl)
	s.authority = queriesmock.NewMockSlotAuthority(s.ctrl)
	backend := cache.NewMemoryBackend(clock.NewMockClock(time.Date(2026, 12, 1, 9, 0, 0, 0, time.UTC)))
	s.cache = cache.NewService(backend, cache.Config{TTL: time.Hour}, discard)
	s.resortID = uuid.New()
}

func (s *QueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *QueriesTestSuite) TestProducts_CachedUntilInvalidated() {
	ctx := context.Background()
	q := queries.NewCatalogQueries(s.catalog, s.cache)
	view := queries.ProductView{ID: uuid.New(), ResortID: s.resortID, Active: true, Title: map[string]string{"en": "Day pass"}}

	s.catalog.EXPECT().ProductsByResort(gomock.Any(), s.resortID).Return([]queries.ProductView{view}, nil).Times(2)

	first := q.Products(ctx, s.resortID)
	second := q.Products(ctx, s.resortID)
	s.Require().False(first.Degraded)
	s.Require().Len(second.Items, 1)
	s.Equal(view.ID, second.Items[0].ID)

	s.Require().NoError(s.cache.Invalidate(ctx, cache.ResortTag(catalog.EntityProducts.String(), s.resortID)))
	third := q.Products(ctx, s.resortID)
	s.Len(third.Items, 1)
}

func (s *QueriesTestSuite) TestProducts_EmptyResortIsNotDegraded() {
	q := queries.NewCatalogQueries(s.catalog, s.cache)
	s.catalog.EXPECT().ProductsByResort(gomock.Any(), s.resortID).Return(nil, nil)

	res := q.Products(context.Background(), s.resortID)
	s.False(res.Degraded)
	s.NotNil(res.Items)
	s.Empty(res.Items)
}

func (s *QueriesTestSuite) TestCatalogSource_DegradedSnapshot() {
	q := queries.NewCatalogQueries(s.catalog, s.cache)
	src := queries.NewCatalogSource(q)
	categoryID := uuid.New()

	s.catalog.EXPECT().ProductsByResort(gomock.Any(), s.resortID).Return(nil, errors.New("connection reset"))
	s.catalog.EXPECT().ConsumerCategoriesByResort(gomock.Any(), s.resortID).Return([]queries.ConsumerCategoryView{{
		ID:                   categoryID,
		ResortID:             s.resortID,
		RentalPricePerDay:    decimal.RequireFromString("5"),
		InsurancePricePerDay: decimal.RequireFromString("3.5"),
	}}, nil)
	s.catalog.EXPECT().SalesChannelsByResort(gomock.Any(), s.resortID).Return(nil, nil)

	snap, err := src.Snapshot(context.Background(), s.resortID)
	s.Require().NoError(err)
	s.True(snap.Degraded)
	s.Empty(snap.Products)
	s.Require().Contains(snap.ConsumerCategories, categoryID)
	s.True(snap.ConsumerCategories[categoryID].InsurancePricePerDay().Equal(decimal.RequireFromString("3.5")))
}

func (s *QueriesTestSuite) TestOrderGet_NotFound() {
	q := queries.NewOrderQueries(s.orders, s.cache)
	id := uuid.New()
	s.orders.EXPECT().FindByID(gomock.Any(), id).Return(nil, infra.WrapRepoErr(discard, infra.KindNotFound, "find order", errors.New("no rows")))

	_, err := q.Get(context.Background(), id)
	s.Require().Error(err)
	s.True(errs.Is(err, errs.ErrNotFound))
	s.True(errs.Is(err, queries.ErrOrderNotFound))
}

func (s *QueriesTestSuite) TestOrderList_PagesAndCaches() {
	ctx := context.Background()
	q := queries.NewOrderQueries(s.orders, s.cache)
	base := time.Date(2026, 12, 1, 9, 0, 0, 0, time.UTC)
	rows := []queries.OrderView{
		{ID: uuid.New(), ResortID: s.resortID, Status: order.StatusFulfilled, CreatedAt: base.Add(2 * time.Minute)},
		{ID: uuid.New(), ResortID: s.resortID, Status: order.StatusFulfilled, CreatedAt: base.Add(time.Minute)},
		{ID: uuid.New(), ResortID: s.resortID, Status: order.StatusFulfilled, CreatedAt: base},
	}
	status := order.StatusFulfilled
	filters := queries.OrderFilters{Status: &status}

	s.orders.EXPECT().
		ListByResort(gomock.Any(), s.resortID, filters, queries.OrderKeyset{Limit: 2}).
		Return(rows, nil).
		Times(1)

	page, err := q.List(ctx, s.resortID, filters, "", 2)
	s.Require().NoError(err)
	s.Len(page.Items, 2)
	s.Require().NotEmpty(page.NextCursor)

	ts, id, err := queries.DecodeAfterCursor(page.NextCursor)
	s.Require().NoError(err)
	s.Equal(rows[1].ID, id)
	s.True(rows[1].CreatedAt.Equal(ts))

	cached, err := q.List(ctx, s.resortID, filters, "", 2)
	s.Require().NoError(err)
	s.Len(cached.Items, 2)

	s.orders.EXPECT().
		ListByResort(gomock.Any(), s.resortID, filters, queries.OrderKeyset{Limit: 2}).
		Return(rows[2:], nil)
	s.Require().NoError(s.cache.Invalidate(ctx, cache.OrderTags(s.resortID)...))
	fresh, err := q.List(ctx, s.resortID, filters, "", 2)
	s.Require().NoError(err)
	s.Len(fresh.Items, 1)
	s.Empty(fresh.NextCursor)
}

func (s *QueriesTestSuite) TestOrderList_InvalidCursor() {
	q := queries.NewOrderQueries(s.orders, s.cache)
	_, err := q.List(context.Background(), s.resortID, queries.OrderFilters{}, "not-a-cursor", 10)
	s.Require().Error(err)
	s.True(errs.Is(err, errs.ErrValidation))
	s.True(errs.Is(err, queries.ErrInvalidCursor))
}

func (s *QueriesTestSuite) TestKioskSlots_OverlaysHeldSlots() {
	q := queries.NewKioskQueries(s.kiosks, s.authority, s.cache)
	kioskID := uuid.New()
	now := time.Date(2026, 12, 1, 9, 0, 0, 0, time.UTC)

	s.kiosks.EXPECT().FindKiosk(gomock.Any(), kioskID).Return(&queries.KioskView{ID: kioskID, ResortID: s.resortID}, nil)
	s.authority.EXPECT().KioskSlots(gomock.Any(), s.resortID, kioskID).Return([]device.KioskSlot{
		{KioskID: kioskID, SlotNumber: 1, Status: device.SlotEmpty, LastUpdated: now, DeviceCode: "A1"},
		{KioskID: kioskID, SlotNumber: 2, Status: device.SlotEmpty, LastUpdated: now, DeviceCode: "A2"},
		{KioskID: kioskID, SlotNumber: 3, Status: device.SlotFault, LastUpdated: now},
	}, nil)
	s.kiosks.EXPECT().HeldSlots(gomock.Any(), kioskID).Return([]int{2, 3}, nil)

	slots, err := q.Slots(context.Background(), s.resortID, kioskID)
	s.Require().NoError(err)
	s.Require().Len(slots, 3)
	s.Equal(device.SlotEmpty, slots[0].Status)
	s.Equal(device.SlotOccupied, slots[1].Status)
	s.Equal(device.SlotFault, slots[2].Status)
}

func (s *QueriesTestSuite) TestKioskSlots_OtherResortIsNotFound() {
	q := queries.NewKioskQueries(s.kiosks, s.authority, s.cache)
	kioskID := uuid.New()
	s.kiosks.EXPECT().FindKiosk(gomock.Any(), kioskID).Return(&queries.KioskView{ID: kioskID, ResortID: uuid.New()}, nil)

	_, err := q.Slots(context.Background(), s.resortID, kioskID)
	s.Require().Error(err)
	s.True(errs.Is(err, errs.ErrNotFound))
}

func (s *QueriesTestSuite) TestDeviceLookup() {
	q := queries.NewDeviceQueries(s.devices, s.authority, discard)
	view := &queries.DeviceView{ID: uuid.New(), Serial: "LP-0001", ChipID: "123456"}

	s.Run("live status attached", func() {
		s.devices.EXPECT().FindByCode(gomock.Any(), "LP-0001").Return(view, nil)
		s.authority.EXPECT().DeviceStatus(gomock.Any(), "LP-0001").Return(device.LiveStatus{DeviceCode: "LP-0001", Connected: true, Battery: 80}, nil)

		got, err := q.Lookup(context.Background(), " lp-0001 ")
		s.Require().NoError(err)
		s.Require().NotNil(got.Live)
		s.Equal(device.SlotEmpty, got.Live.Status)
		s.Equal(80, got.Live.Battery)
	})

	s.Run("authority down still returns the device", func() {
		s.devices.EXPECT().FindByCode(gomock.Any(), "LP-0001").Return(view, nil)
		s.authority.EXPECT().DeviceStatus(gomock.Any(), "LP-0001").Return(device.LiveStatus{}, errors.New("timeout"))

		got, err := q.Lookup(context.Background(), "LP-0001")
		s.Require().NoError(err)
		s.Nil(got.Live)
		s.Equal(view.ID, got.ID)
	})
}

func TestCursorRoundTrip(t *testing.T) {
	ts := time.Date(2026, 12, 24, 8, 30, 0, 123456000, time.UTC)
	id := uuid.New()

	gotTS, gotID, err := queries.DecodeAfterCursor(queries.EncodeAfterCursor(ts, id))
	require.NoError(t, err)
	assert.True(t, ts.Equal(gotTS))
	assert.Equal(t, id, gotID)

	_, _, err = queries.DecodeAfterCursor("")
	assert.ErrorIs(t, err, queries.ErrInvalidCursor)
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(0))
	assert.Equal(t, 5, queries.ValidateLimit(5))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(10_000))
}
