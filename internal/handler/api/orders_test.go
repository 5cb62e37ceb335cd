//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"lifepass-admin/internal/domain/order"
	"lifepass-admin/internal/handler/api"
	resdto "lifepass-admin/internal/handler/dto/response"
	"lifepass-admin/internal/handler/validation"
	"lifepass-admin/internal/pkg/errs"
	"lifepass-admin/internal/usecase/commands"
	"lifepass-admin/internal/usecase/queries"
	"lifepass-admin/tests/common/builder"
	"lifepass-admin/tests/common/httptest"
	"lifepass-admin/tests/common/testutil"
	commandsmock "lifepass-admin/tests/mock/commands"
	queriesmock "lifepass-admin/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockOrderCommands
	mockQueries  *queriesmock.MockOrderQueries
}

func (s *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(validation.Register())
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockOrderCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOrderQueries(s.mockCtrl)
	h := api.NewOrderHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/resorts/:resortId/orders", h.Checkout)
	s.router.GET("/resorts/:resortId/orders", h.List)
	s.router.GET("/orders/:id", h.Get)
	s.router.PATCH("/orders/:id/test-order", h.SetTestOrder)
	s.router.POST("/orders/:id/release", h.Release)
}

func (s *OrderHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

type testCaseOrder struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *OrderHandlerTestSuite) TestCheckout() {
	b := builder.NewCheckoutBuilder()
	url := "/resorts/" + b.ResortID.String() + "/orders"
	reqBody := b.BuildDTO()

	s.Run("success: 201 Created with the priced order", func() {
		view := b.BuildView(order.StatusFulfilled)
		s.mockCommands.EXPECT().
			Checkout(gomock.Any(), reqBody.ToCommand(b.ResortID)).
			Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var res resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal(view.ID.String(), res.ID)
		s.Equal("fulfilled", res.Status)
		s.Equal("2026-12-24", res.StartDate)
		s.NotNil(res.Fulfillment)
	})

	s.Run("success: partially failed order is still 201", func() {
		view := b.BuildView(order.StatusPartiallyFailed)
		view.Fulfillment = []order.LineFulfillment{{LineIndex: 0, Error: "device DTA-001 is occupied"}}
		s.mockCommands.EXPECT().Checkout(gomock.Any(), gomock.Any()).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var res resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal("partially_failed", res.Status)
		s.Require().Len(res.Fulfillment, 1)
		s.Equal("device DTA-001 is occupied", res.Fulfillment[0].Error)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseOrder{
			{name: "missing start_date", mutate: testutil.Field("start_date", nil), expectCode: http.StatusBadRequest},
			{name: "malformed start_date", mutate: testutil.Field("start_date", "24.12.2026"), expectCode: http.StatusBadRequest},
			{name: "end before start", mutate: testutil.Field("end_date", "2026-12-23"), expectCode: http.StatusBadRequest},
			{name: "empty lines", mutate: testutil.Field("lines", []any{}), expectCode: http.StatusBadRequest},
			{name: "missing lines", mutate: testutil.Field("lines", nil), expectCode: http.StatusBadRequest},
			{name: "line without product", mutate: testutil.Field("lines", []any{map[string]any{"consumer_category_id": uuid.NewString()}}), expectCode: http.StatusBadRequest},
			{name: "negative age", mutate: testutil.Field("lines", []any{map[string]any{
				"product_id": uuid.NewString(), "consumer_category_id": uuid.NewString(), "age": -1,
			}}), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: invalid resort id is 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/resorts/not-a-uuid/orders", reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid resortId")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{name: "validation", err: errs.Mark(errs.New("resort mismatch"), errs.ErrValidation), expectCode: http.StatusBadRequest},
			{name: "not found", err: errs.Mark(errs.New("resort missing"), errs.ErrNotFound), expectCode: http.StatusNotFound},
			{name: "device unavailable wins over not found", err: errs.Mark(errs.Mark(errs.New("kiosk"), errs.ErrNotFound), errs.ErrDeviceUnavailable), expectCode: http.StatusConflict},
			{name: "pricing unavailable", err: errs.Mark(errs.New("authority down"), errs.ErrPricingUnavailable), expectCode: http.StatusInternalServerError},
			{name: "unexpected", err: errs.New("boom"), expectCode: http.StatusInternalServerError},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Checkout(gomock.Any(), gomock.Any()).Return(nil, tc.err)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})
}

func (s *OrderHandlerTestSuite) TestList() {
	resortID := uuid.New()
	base := "/resorts/" + resortID.String() + "/orders"

	s.Run("success: defaults to 50 newest first", func() {
		s.mockQueries.EXPECT().
			List(gomock.Any(), resortID, queries.OrderFilters{}, "", 50).
			Return(&queries.OrderPage{Items: []queries.OrderView{}}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base, nil)

		var res resdto.OrderListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Empty(res.Items)
		s.Empty(res.NextCursor)
	})

	s.Run("success: passes filters and cursor", func() {
		status := order.StatusPartiallyFailed
		test := true
		view := builder.NewCheckoutBuilder().BuildView(status)
		s.mockQueries.EXPECT().
			List(gomock.Any(), resortID, queries.OrderFilters{Status: &status, TestOrder: &test}, "abc", 10).
			Return(&queries.OrderPage{Items: []queries.OrderView{*view}, NextCursor: "next"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?status=partially_failed&test=true&limit=10&after=abc", nil)

		var res resdto.OrderListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Require().Len(res.Items, 1)
		s.Equal("next", res.NextCursor)
	})

	s.Run("error: 400 on invalid query", func() {
		for _, q := range []string{"?status=shipped", "?limit=0", "?limit=201", "?test=maybe"} {
			s.Run(q, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+q, nil)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: malformed cursor is 400", func() {
		s.mockQueries.EXPECT().
			List(gomock.Any(), resortID, gomock.Any(), "!!", 50).
			Return(nil, errs.Mark(errs.New("bad cursor"), errs.ErrValidation))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?after=!!", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *OrderHandlerTestSuite) TestGet() {
	s.Run("success: 200 OK", func() {
		view := builder.NewCheckoutBuilder().BuildView(order.StatusFulfilled)
		s.mockQueries.EXPECT().Get(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/"+view.ID.String(), nil)

		var res resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(view.ResortID.String(), res.ResortID)
	})

	s.Run("error: 404 when missing", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().Get(gomock.Any(), id).
			Return(nil, errs.Mark(queries.ErrOrderNotFound, errs.ErrNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/"+id.String(), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Order not found")
	})
}

func (s *OrderHandlerTestSuite) TestSetTestOrder() {
	id := uuid.New()
	url := "/orders/" + id.String() + "/test-order"

	s.Run("success: flag is forwarded", func() {
		view := builder.NewCheckoutBuilder().AsTestOrder().BuildView(order.StatusFulfilled)
		s.mockCommands.EXPECT().SetTestOrder(gomock.Any(), id, true).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"test_order": true})

		var res resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.True(res.TestOrder)
	})

	s.Run("success: false is not treated as missing", func() {
		view := builder.NewCheckoutBuilder().BuildView(order.StatusFulfilled)
		s.mockCommands.EXPECT().SetTestOrder(gomock.Any(), id, false).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"test_order": false})
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: missing flag is 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *OrderHandlerTestSuite) TestRelease() {
	id := uuid.New()
	url := "/orders/" + id.String() + "/release"

	s.Run("success: reports released count", func() {
		s.mockCommands.EXPECT().ReleaseDevices(gomock.Any(), id).Return(2, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)

		var res resdto.ReleaseResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(2, res.Released)
		s.Equal(id.String(), res.OrderID)
	})

	s.Run("success: repeated release reports zero", func() {
		s.mockCommands.EXPECT().ReleaseDevices(gomock.Any(), id).Return(0, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)

		var res resdto.ReleaseResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Zero(res.Released)
	})

	s.Run("error: unknown order is 404", func() {
		s.mockCommands.EXPECT().ReleaseDevices(gomock.Any(), id).
			Return(0, errs.Mark(commands.ErrOrderNotFoundWrite, errs.ErrNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}
