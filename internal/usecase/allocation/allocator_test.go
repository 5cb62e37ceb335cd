//go:build unit

package allocation_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"lifepass-admin/internal/domain/device"
	"lifepass-admin/internal/infra"
	"lifepass-admin/internal/infra/db"
	"lifepass-admin/internal/pkg/clock"
	"lifepass-admin/internal/pkg/errs"
	"lifepass-admin/internal/usecase/allocation"
	"lifepass-admin/internal/usecase/shared"
	allocationmock "lifepass-admin/tests/mock/allocation"
	sharedmock "lifepass-admin/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2026, 12, 20, 8, 30, 0, 0, time.UTC)

type AllocatorTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	uow         *sharedmock.MockUnitOfWork
	tx          *sharedmock.MockTx
	reads       *sharedmock.MockCommandReads
	allocations *sharedmock.MockAllocationRepository
	authority   *allocationmock.MockStatusAuthority
	allocator   allocation.Allocator

	resortID uuid.UUID
	orderID  uuid.UUID
	dev      *device.Device
	kiosk    *device.Kiosk
}

func TestAllocatorSuite(t *testing.T) {
	suite.Run(t, new(AllocatorTestSuite))
}

func (s *AllocatorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.reads = sharedmock.NewMockCommandReads(s.ctrl)
	s.allocations = sharedmock.NewMockAllocationRepository(s.ctrl)
	s.authority = allocationmock.NewMockStatusAuthority(s.ctrl)

	s.uow.EXPECT().CommandReads().Return(s.reads).AnyTimes()
	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		}).AnyTimes()
	s.tx.EXPECT().Allocations().Return(s.allocations).AnyTimes()
	s.tx.EXPECT().DB().Return(nil).AnyTimes()

	s.allocator = allocation.NewAllocator(s.uow, s.authority, clock.NewMockClock(now), slog.New(slog.NewTextHandler(io.Discard, nil)))

	s.resortID = uuid.New()
	s.orderID = uuid.New()
	s.dev = device.ReconstructDevice(uuid.New(), "DTA-001", "7992739871", 3, "1DC67881F", now, now)
	s.kiosk = device.ReconstructKiosk(uuid.New(), s.resortID, "Valley station", "locker", nil, device.Location{}, 4, now, now)
}

func (s *AllocatorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AllocatorTestSuite) byDevice(code string) allocation.Request {
	return allocation.Request{ResortID: s.resortID, OrderID: s.orderID, LineIndex: 0, DeviceCode: code}
}

func (s *AllocatorTestSuite) TestOccupiedDeviceIsUnavailableAndNothingIsWritten() {
	s.reads.EXPECT().DeviceByCode(gomock.Any(), "DTA-001").Return(s.dev, nil)
	s.authority.EXPECT().DeviceStatus(gomock.Any(), "DTA-001").
		Return(device.LiveStatus{DeviceCode: "DTA-001", Connected: true, Allocated: true}, nil)
	s.allocations.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	s.allocations.EXPECT().ClaimSlot(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	got, err := s.allocator.Allocate(context.Background(), s.byDevice("dta-001"))

	s.Nil(got)
	s.True(errs.Is(err, errs.ErrDeviceUnavailable))
	s.ErrorIs(err, allocation.ErrDeviceOccupied)
}

func (s *AllocatorTestSuite) TestFaultedDeviceIsUnavailable() {
	s.reads.EXPECT().DeviceByCode(gomock.Any(), "DTA-001").Return(s.dev, nil)
	s.authority.EXPECT().DeviceStatus(gomock.Any(), "DTA-001").Return(device.LiveStatus{Connected: false}, nil)

	_, err := s.allocator.Allocate(context.Background(), s.byDevice("DTA-001"))

	s.True(errs.Is(err, errs.ErrDeviceUnavailable))
	s.ErrorIs(err, allocation.ErrDeviceFaulted)
}

func (s *AllocatorTestSuite) TestUnknownDeviceIsNotFound() {
	s.reads.EXPECT().DeviceByCode(gomock.Any(), "NOPE").
		Return(nil, infra.RepositoryError{Kind: infra.KindNotFound})

	_, err := s.allocator.Allocate(context.Background(), s.byDevice("nope"))

	s.True(errs.Is(err, errs.ErrNotFound))
}

func (s *AllocatorTestSuite) TestEmptyDeviceIsClaimed() {
	s.reads.EXPECT().DeviceByCode(gomock.Any(), "DTA-001").Return(s.dev, nil)
	s.authority.EXPECT().DeviceStatus(gomock.Any(), "DTA-001").Return(device.LiveStatus{Connected: true}, nil)
	s.allocations.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ db.DBTX, a device.Allocation) (bool, error) {
			s.Equal(s.orderID, a.OrderID)
			s.Equal("DTA-001", a.DeviceCode)
			s.Nil(a.KioskID)
			return true, nil
		})

	got, err := s.allocator.Allocate(context.Background(), s.byDevice("DTA-001"))

	s.Require().NoError(err)
	s.Equal(now, got.AllocatedAt)
	s.True(got.Active())
}

func (s *AllocatorTestSuite) TestConcurrentClaimOnSameDeviceLoses() {
	s.reads.EXPECT().DeviceByCode(gomock.Any(), "DTA-001").Return(s.dev, nil)
	s.authority.EXPECT().DeviceStatus(gomock.Any(), "DTA-001").Return(device.LiveStatus{Connected: true}, nil)
	s.allocations.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)

	_, err := s.allocator.Allocate(context.Background(), s.byDevice("DTA-001"))

	s.True(errs.Is(err, errs.ErrDeviceUnavailable))
}

func (s *AllocatorTestSuite) TestReallocationFallsBackToKiosk() {
	kioskID := s.kiosk.ID()
	req := s.byDevice("DTA-001")
	req.KioskID = &kioskID
	req.AllowReallocation = true

	s.reads.EXPECT().DeviceByCode(gomock.Any(), "DTA-001").Return(s.dev, nil)
	s.authority.EXPECT().DeviceStatus(gomock.Any(), "DTA-001").Return(device.LiveStatus{Connected: true, Allocated: true}, nil)
	s.reads.EXPECT().KioskByID(gomock.Any(), kioskID).Return(s.kiosk, nil)
	s.authority.EXPECT().KioskSlots(gomock.Any(), s.resortID, kioskID).Return([]device.KioskSlot{
		{KioskID: kioskID, SlotNumber: 3, Status: device.SlotEmpty, DeviceCode: "DTA-030"},
		{KioskID: kioskID, SlotNumber: 1, Status: device.SlotFault},
		{KioskID: kioskID, SlotNumber: 2, Status: device.SlotEmpty, DeviceCode: "DTA-020"},
	}, nil)
	s.allocations.EXPECT().ClaimSlot(gomock.Any(), gomock.Any(), kioskID, 2, s.orderID, "DTA-020", now).Return(true, nil)
	s.allocations.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)

	got, err := s.allocator.Allocate(context.Background(), req)

	s.Require().NoError(err)
	s.Equal(2, *got.SlotNumber)
	s.Equal("DTA-020", got.DeviceCode)
}

func (s *AllocatorTestSuite) TestOccupiedWithoutOptInIsNotReallocated() {
	kioskID := s.kiosk.ID()
	req := s.byDevice("DTA-001")
	req.KioskID = &kioskID

	s.reads.EXPECT().DeviceByCode(gomock.Any(), "DTA-001").Return(s.dev, nil)
	s.authority.EXPECT().DeviceStatus(gomock.Any(), "DTA-001").Return(device.LiveStatus{Connected: true, Allocated: true}, nil)
	s.authority.EXPECT().KioskSlots(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := s.allocator.Allocate(context.Background(), req)

	s.True(errs.Is(err, errs.ErrDeviceUnavailable))
}

func (s *AllocatorTestSuite) TestKioskSkipsSlotLostToConcurrentClaim() {
	kioskID := s.kiosk.ID()
	req := allocation.Request{ResortID: s.resortID, OrderID: s.orderID, LineIndex: 1, KioskID: &kioskID}

	s.reads.EXPECT().KioskByID(gomock.Any(), kioskID).Return(s.kiosk, nil)
	s.authority.EXPECT().KioskSlots(gomock.Any(), s.resortID, kioskID).Return([]device.KioskSlot{
		{KioskID: kioskID, SlotNumber: 1, Status: device.SlotEmpty},
		{KioskID: kioskID, SlotNumber: 2, Status: device.SlotEmpty},
	}, nil)
	gomock.InOrder(
		s.allocations.EXPECT().ClaimSlot(gomock.Any(), gomock.Any(), kioskID, 1, s.orderID, "", now).Return(false, nil),
		s.allocations.EXPECT().ClaimSlot(gomock.Any(), gomock.Any(), kioskID, 2, s.orderID, "", now).Return(true, nil),
	)
	s.allocations.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)

	got, err := s.allocator.Allocate(context.Background(), req)

	s.Require().NoError(err)
	s.Equal(2, *got.SlotNumber)
	s.Equal(1, got.LineIndex)
}

func (s *AllocatorTestSuite) TestKioskWithoutEmptySlots() {
	kioskID := s.kiosk.ID()
	req := allocation.Request{ResortID: s.resortID, OrderID: s.orderID, KioskID: &kioskID}

	s.reads.EXPECT().KioskByID(gomock.Any(), kioskID).Return(s.kiosk, nil)
	s.authority.EXPECT().KioskSlots(gomock.Any(), s.resortID, kioskID).Return([]device.KioskSlot{
		{KioskID: kioskID, SlotNumber: 1, Status: device.SlotOccupied},
	}, nil)

	_, err := s.allocator.Allocate(context.Background(), req)

	s.True(errs.Is(err, errs.ErrDeviceUnavailable))
	s.ErrorIs(err, allocation.ErrNoEmptySlot)
}

func (s *AllocatorTestSuite) TestKioskOfAnotherResortIsNotFound() {
	kioskID := s.kiosk.ID()
	req := allocation.Request{ResortID: uuid.New(), OrderID: s.orderID, KioskID: &kioskID}
	s.reads.EXPECT().KioskByID(gomock.Any(), kioskID).Return(s.kiosk, nil)

	_, err := s.allocator.Allocate(context.Background(), req)

	s.True(errs.Is(err, errs.ErrNotFound))
}

func (s *AllocatorTestSuite) TestAuthorityFailureIsUnavailable() {
	s.reads.EXPECT().DeviceByCode(gomock.Any(), "DTA-001").Return(s.dev, nil)
	s.authority.EXPECT().DeviceStatus(gomock.Any(), "DTA-001").Return(device.LiveStatus{}, errors.New("dial tcp: timeout"))

	_, err := s.allocator.Allocate(context.Background(), s.byDevice("DTA-001"))

	s.True(errs.Is(err, errs.ErrDeviceUnavailable))
}

func (s *AllocatorTestSuite) TestValidation() {
	_, err := s.allocator.Allocate(context.Background(), allocation.Request{ResortID: s.resortID, OrderID: s.orderID})
	s.True(errs.Is(err, errs.ErrValidation))

	_, err = s.allocator.Allocate(context.Background(), allocation.Request{DeviceCode: "DTA-001"})
	s.True(errs.Is(err, errs.ErrValidation))
}

func (s *AllocatorTestSuite) TestReleaseIsIdempotent() {
	gomock.InOrder(
		s.allocations.EXPECT().ReleaseByOrder(gomock.Any(), gomock.Any(), s.orderID, now).Return(2, nil),
		s.allocations.EXPECT().ReleaseByOrder(gomock.Any(), gomock.Any(), s.orderID, now).Return(0, nil),
	)

	first, err := s.allocator.Release(context.Background(), s.orderID)
	s.Require().NoError(err)
	second, err := s.allocator.Release(context.Background(), s.orderID)
	s.Require().NoError(err)

	s.Equal(2, first)
	s.Equal(0, second)
}
