//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"lifepass-admin/internal/domain/device"
	"lifepass-admin/internal/handler/api"
	resdto "lifepass-admin/internal/handler/dto/response"
	"lifepass-admin/internal/handler/middleware"
	"lifepass-admin/internal/handler/validation"
	"lifepass-admin/internal/pkg/errs"
	"lifepass-admin/internal/usecase/commands"
	"lifepass-admin/internal/usecase/queries"
	"lifepass-admin/tests/common/httptest"
	commandsmock "lifepass-admin/tests/mock/commands"
	queriesmock "lifepass-admin/tests/mock/queries"
	sharedmock "lifepass-admin/tests/mock/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DeviceHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockCtrl        *gomock.Controller
	mockCommands    *commandsmock.MockDeviceCommands
	mockQueries     *queriesmock.MockDeviceQueries
	mockKiosks      *queriesmock.MockKioskQueries
	mockInvalidator *sharedmock.MockCacheInvalidator
}

func (s *DeviceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(validation.Register())
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockDeviceCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockDeviceQueries(s.mockCtrl)
	s.mockKiosks = queriesmock.NewMockKioskQueries(s.mockCtrl)
	s.mockInvalidator = sharedmock.NewMockCacheInvalidator(s.mockCtrl)

	devices := api.NewDeviceHandler(s.mockCommands, s.mockQueries)
	kiosks := api.NewKioskHandler(s.mockKiosks)
	cache := api.NewCacheHandler(s.mockInvalidator)

	s.router.POST("/devices", devices.Provision)
	s.router.GET("/devices/:code", middleware.NoStore(), devices.Lookup)
	s.router.GET("/resorts/:resortId/kiosks/:kioskId/slots", middleware.NoStore(), kiosks.Slots)
	s.router.POST("/cache/invalidate", cache.Invalidate)
}

func (s *DeviceHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDeviceHandlerSuite(t *testing.T) {
	suite.Run(t, new(DeviceHandlerTestSuite))
}

func (s *DeviceHandlerTestSuite) TestProvision() {
	luhn := 3
	body := map[string]any{"serial": "LP-0001", "chip_id": "123456789", "luhn_code": luhn}

	s.Run("success: 201 with the printed code", func() {
		now := time.Now().UTC()
		d := device.ReconstructDevice(uuid.New(), "LP-0001", "123456789", luhn, "75BCD15", now, now)
		s.mockCommands.EXPECT().
			Provision(gomock.Any(), commands.ProvisionDeviceRequest{Serial: "LP-0001", ChipID: "123456789", LuhnCode: luhn}).
			Return(d, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/devices", body)

		var res resdto.DeviceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal("1234567893", res.PrintedCode)
		s.Equal("75BCD15", res.Hex)
		s.Nil(res.Live)
	})

	s.Run("success: luhn code zero is accepted", func() {
		now := time.Now().UTC()
		d := device.ReconstructDevice(uuid.New(), "LP-0002", "100", 0, "64", now, now)
		s.mockCommands.EXPECT().Provision(gomock.Any(), gomock.Any()).Return(d, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/devices",
			map[string]any{"serial": "LP-0002", "chip_id": "100", "luhn_code": 0})
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 on validation errors", func() {
		for name, b := range map[string]map[string]any{
			"missing serial":   {"chip_id": "123", "luhn_code": 1},
			"non numeric chip": {"serial": "LP", "chip_id": "12A", "luhn_code": 1},
			"missing luhn":     {"serial": "LP", "chip_id": "123"},
			"luhn above nine":  {"serial": "LP", "chip_id": "123", "luhn_code": 10},
		} {
			s.Run(name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/devices", b)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: duplicate serial is 409", func() {
		s.mockCommands.EXPECT().Provision(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(commands.ErrDuplicateDevice, errs.ErrConflict))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/devices", body)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Provision failed")
	})

	s.Run("error: bad check digit is 400", func() {
		s.mockCommands.EXPECT().Provision(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(device.ErrInvalidLuhnCode, errs.ErrValidation))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/devices", body)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *DeviceHandlerTestSuite) TestLookup() {
	view := queries.DeviceView{
		ID:        uuid.New(),
		Serial:    "LP-0001",
		ChipID:    "123456789",
		LuhnCode:  3,
		Hex:       "75BCD15",
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	s.Run("success: live status is attached and never cached", func() {
		s.mockQueries.EXPECT().Lookup(gomock.Any(), "1234567893").Return(&queries.DeviceWithStatus{
			DeviceView: view,
			Live:       &queries.LiveStatusView{Connected: true, Battery: 80, Allocated: true, Status: device.SlotOccupied},
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/devices/1234567893", nil)

		var res resdto.DeviceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Cache-Control": "no-store"})
		s.Require().NotNil(res.Live)
		s.Equal("occupied", res.Live.Status)
		s.Equal(80, res.Live.Battery)
	})

	s.Run("success: authority outage leaves live empty", func() {
		s.mockQueries.EXPECT().Lookup(gomock.Any(), "LP-0001").
			Return(&queries.DeviceWithStatus{DeviceView: view}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/devices/LP-0001", nil)

		var res resdto.DeviceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Nil(res.Live)
		s.Equal("LP-0001", res.Serial)
	})

	s.Run("error: unknown code is 404", func() {
		s.mockQueries.EXPECT().Lookup(gomock.Any(), "nope").
			Return(nil, errs.Mark(queries.ErrDeviceNotFound, errs.ErrNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/devices/nope", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Device not found")
	})
}

func (s *DeviceHandlerTestSuite) TestKioskSlots() {
	resortID, kioskID := uuid.New(), uuid.New()
	url := "/resorts/" + resortID.String() + "/kiosks/" + kioskID.String() + "/slots"

	s.Run("success: slots in order with no-store", func() {
		updated := time.Date(2026, 12, 24, 9, 0, 0, 0, time.UTC)
		s.mockKiosks.EXPECT().Slots(gomock.Any(), resortID, kioskID).Return([]queries.KioskSlotView{
			{KioskID: kioskID, SlotNumber: 1, Status: device.SlotEmpty, LastUpdated: updated},
			{KioskID: kioskID, SlotNumber: 2, Status: device.SlotOccupied, LastUpdated: updated, DeviceCode: "DTA-001"},
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var res []resdto.KioskSlotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Cache-Control": "no-store"})
		s.Require().Len(res, 2)
		s.Equal("empty", res[0].Status)
		s.Equal("DTA-001", res[1].DeviceCode)
		s.Equal(updated.Unix(), res[1].LastUpdated)
	})

	s.Run("error: kiosk of another resort is 404", func() {
		s.mockKiosks.EXPECT().Slots(gomock.Any(), resortID, kioskID).
			Return(nil, errs.Mark(queries.ErrKioskNotFound, errs.ErrNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})

	s.Run("error: authority down is 500 without details", func() {
		s.mockKiosks.EXPECT().Slots(gomock.Any(), resortID, kioskID).
			Return(nil, errs.New("dial tcp: connection refused"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
		s.NotContains(rec.Body.String(), "connection refused")
	})

	s.Run("error: invalid kiosk id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/resorts/"+resortID.String()+"/kiosks/abc/slots", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid kioskId")
	})
}

func (s *DeviceHandlerTestSuite) TestInvalidateCache() {
	s.Run("success: tags are forwarded", func() {
		s.mockInvalidator.EXPECT().Invalidate(gomock.Any(), "resort:r1", "orders:r1")

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cache/invalidate",
			map[string]any{"tags": []string{"resort:r1", "orders:r1"}})
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: empty tags are rejected", func() {
		for _, body := range []map[string]any{{}, {"tags": []string{}}, {"tags": []string{""}}} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cache/invalidate", body)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		}
	})
}
