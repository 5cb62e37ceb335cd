//go:build unit

package commands_test

import (
	"context"
	"testing"

	"lifepass-admin/internal/domain/catalog"
	"lifepass-admin/internal/domain/device"
	"lifepass-admin/internal/infra"
	"lifepass-admin/internal/infra/cache"
	"lifepass-admin/internal/pkg/clock"
	"lifepass-admin/internal/pkg/errs"
	"lifepass-admin/internal/usecase/commands"
	"lifepass-admin/internal/usecase/shared"
	sharedmock "lifepass-admin/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogCommandsTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	uow         *sharedmock.MockUnitOfWork
	tx          *sharedmock.MockTx
	reads       *sharedmock.MockCommandReads
	repo        *sharedmock.MockCatalogRepository
	devices     *sharedmock.MockDeviceRepository
	invalidator *sharedmock.MockCacheInvalidator
	uc          commands.CatalogCommands
	deviceUC    commands.DeviceCommands

	resortID uuid.UUID
}

func TestCatalogCommandsSuite(t *testing.T) {
	suite.Run(t, new(CatalogCommandsTestSuite))
}

func (s *CatalogCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.reads = sharedmock.NewMockCommandReads(s.ctrl)
	s.repo = sharedmock.NewMockCatalogRepository(s.ctrl)
	s.devices = sharedmock.NewMockDeviceRepository(s.ctrl)
	s.invalidator = sharedmock.NewMockCacheInvalidator(s.ctrl)

	s.uow.EXPECT().CommandReads().Return(s.reads).AnyTimes()
	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		}).AnyTimes()
	s.tx.EXPECT().Catalog().Return(s.repo).AnyTimes()
	s.tx.EXPECT().Devices().Return(s.devices).AnyTimes()
	s.tx.EXPECT().Reads().Return(s.reads).AnyTimes()
	s.tx.EXPECT().DB().Return(nil).AnyTimes()

	clk := clock.NewMockClock(now)
	s.uc = commands.NewCatalogUseCase(s.uow, s.invalidator, clk)
	s.deviceUC = commands.NewDeviceUseCase(s.uow, clk)
	s.resortID = uuid.New()
}

func (s *CatalogCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CatalogCommandsTestSuite) productParams() catalog.ProductParams {
	return catalog.ProductParams{
		ResortID:  s.resortID,
		Active:    true,
		Title:     map[string]string{"en": "Day pass", "de": "Tageskarte"},
		Authority: catalog.ProductAuthority{ExternalID: "SKI-DAY", Name: "Day pass"},
	}
}

func (s *CatalogCommandsTestSuite) TestCreateProduct_InvalidatesResortProducts() {
	s.reads.EXPECT().ResortByID(gomock.Any(), s.resortID).Return(&shared.ResortSnapshot{ID: s.resortID}, nil)
	s.repo.EXPECT().CreateProduct(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.invalidator.EXPECT().Invalidate(gomock.Any(), cache.ResortTag(catalog.EntityProducts.String(), s.resortID))

	res, err := s.uc.CreateProduct(context.Background(), s.productParams())

	s.Require().NoError(err)
	s.NotEqual(uuid.Nil, res.ID)
}

func (s *CatalogCommandsTestSuite) TestCreateProduct_InvalidTitle() {
	params := s.productParams()
	params.Title = map[string]string{"english": "Day pass"}
	s.reads.EXPECT().ResortByID(gomock.Any(), s.resortID).Return(&shared.ResortSnapshot{ID: s.resortID}, nil)

	_, err := s.uc.CreateProduct(context.Background(), params)

	s.True(errs.Is(err, errs.ErrValidation))
}

func (s *CatalogCommandsTestSuite) TestUpdateProduct_NotFound() {
	id := uuid.New()
	s.reads.EXPECT().ProductByID(gomock.Any(), id).Return(nil, infra.RepositoryError{Kind: infra.KindNotFound})

	err := s.uc.UpdateProduct(context.Background(), id, s.productParams())

	s.True(errs.Is(err, errs.ErrNotFound))
}

func (s *CatalogCommandsTestSuite) TestUpdateConsumerCategory_KeepsResort() {
	id := uuid.New()
	existing := catalog.ReconstructConsumerCategory(id, s.resortID, catalog.LocalizedText{"en": "Adult"}, nil,
		catalog.AgeRange{}, decimal.Zero, decimal.Zero, now, now)
	s.reads.EXPECT().ConsumerCategoryByID(gomock.Any(), id).Return(existing, nil)
	s.repo.EXPECT().UpdateConsumerCategory(gomock.Any(), gomock.Any(), existing).Return(nil)
	s.invalidator.EXPECT().Invalidate(gomock.Any(), cache.ResortTag(catalog.EntityConsumerCategories.String(), s.resortID))

	minAge, maxAge := 16, 64
	err := s.uc.UpdateConsumerCategory(context.Background(), id, catalog.ConsumerCategoryParams{
		ResortID:             uuid.New(),
		Title:                map[string]string{"en": "Adult"},
		AgeMin:               &minAge,
		AgeMax:               &maxAge,
		RentalPricePerDay:    decimal.RequireFromString("5"),
		InsurancePricePerDay: decimal.RequireFromString("3.5"),
	})

	s.Require().NoError(err)
	s.Equal(s.resortID, existing.ResortID())
	s.True(existing.Ages().Contains(30))
}

func (s *CatalogCommandsTestSuite) TestCreateKiosk_BadLocation() {
	s.reads.EXPECT().ResortByID(gomock.Any(), s.resortID).Return(&shared.ResortSnapshot{ID: s.resortID}, nil)

	_, err := s.uc.CreateKiosk(context.Background(), commands.KioskRequest{
		ResortID: s.resortID, Name: "Valley", SlotCount: 4, Latitude: 123,
	})

	s.True(errs.Is(err, errs.ErrValidation))
	s.ErrorIs(err, device.ErrInvalidLocation)
}

func (s *CatalogCommandsTestSuite) TestCreateSalesChannel_UnknownResort() {
	s.reads.EXPECT().ResortByID(gomock.Any(), s.resortID).Return(nil, infra.RepositoryError{Kind: infra.KindNotFound})

	_, err := s.uc.CreateSalesChannel(context.Background(), catalog.SalesChannelParams{ResortID: s.resortID, Name: "Web", Type: "web"})

	s.True(errs.Is(err, errs.ErrNotFound))
}

func (s *CatalogCommandsTestSuite) TestProvisionDevice() {
	s.Run("valid luhn", func() {
		s.devices.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		d, err := s.deviceUC.Provision(context.Background(), commands.ProvisionDeviceRequest{Serial: "dta-002", ChipID: "7992739871", LuhnCode: 3})
		s.Require().NoError(err)
		s.Equal("DTA-002", d.Serial())
	})

	s.Run("duplicate serial", func() {
		s.devices.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(infra.RepositoryError{Kind: infra.KindDuplicateKey})

		_, err := s.deviceUC.Provision(context.Background(), commands.ProvisionDeviceRequest{Serial: "DTA-002", ChipID: "7992739871", LuhnCode: 3})
		s.True(errs.Is(err, errs.ErrConflict))
	})

	s.Run("bad check digit", func() {
		_, err := s.deviceUC.Provision(context.Background(), commands.ProvisionDeviceRequest{Serial: "DTA-003", ChipID: "7992739871", LuhnCode: 4})
		s.True(errs.Is(err, errs.ErrValidation))
	})
}
