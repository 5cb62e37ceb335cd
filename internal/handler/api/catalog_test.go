//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"lifepass-admin/internal/domain/catalog"
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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCatalogCommands
	mockQueries  *queriesmock.MockCatalogQueries
	mockKiosks   *queriesmock.MockKioskQueries
	resortID     uuid.UUID
}

func (s *CatalogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(validation.Register())
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCatalogCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	s.mockKiosks = queriesmock.NewMockKioskQueries(s.mockCtrl)
	s.resortID = uuid.New()
	h := api.NewCatalogHandler(s.mockCommands, s.mockQueries, s.mockKiosks)

	r := s.router.Group("/resorts/:resortId")
	r.GET("/catalog/products", h.Products)
	r.GET("/catalog/consumer-categories", h.ConsumerCategories)
	r.GET("/catalog/sales-channels", h.SalesChannels)
	r.GET("/catalog/kiosks", h.Kiosks)
	r.POST("/products", h.CreateProduct)
	r.POST("/consumer-categories", h.CreateConsumerCategory)
	r.POST("/validity-categories", h.CreateValidityCategory)
	r.POST("/sales-channels", h.CreateSalesChannel)
	r.POST("/kiosks", h.CreateKiosk)
	s.router.PUT("/products/:id", h.UpdateProduct)
	s.router.PUT("/consumer-categories/:id", h.UpdateConsumerCategory)
}

func (s *CatalogHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogHandlerSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

func (s *CatalogHandlerTestSuite) url(path string) string {
	return "/resorts/" + s.resortID.String() + path
}

func (s *CatalogHandlerTestSuite) TestProducts() {
	s.Run("success: items with unix timestamps", func() {
		created := time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)
		view := queries.ProductView{
			ID:        uuid.New(),
			ResortID:  s.resortID,
			Active:    true,
			Title:     map[string]string{"en": "Day pass"},
			Authority: catalog.ProductAuthority{ExternalID: "SKI-DAY-1"},
			CreatedAt: created,
			UpdatedAt: created,
		}
		s.mockQueries.EXPECT().Products(gomock.Any(), s.resortID).
			Return(queries.CatalogList[queries.ProductView]{Items: []queries.ProductView{view}})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.url("/catalog/products"), nil)

		var res resdto.CatalogListResponse[resdto.ProductResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.False(res.Degraded)
		s.Require().Len(res.Items, 1)
		s.Equal(view.ID, res.Items[0].ID)
		s.Equal("SKI-DAY-1", res.Items[0].Authority.ExternalID)
		s.Equal(created.Unix(), res.Items[0].CreatedAt)
	})

	s.Run("success: degraded read is 200 with an empty list", func() {
		s.mockQueries.EXPECT().Products(gomock.Any(), s.resortID).
			Return(queries.CatalogList[queries.ProductView]{Degraded: true})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.url("/catalog/products"), nil)

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"items":[],"degraded":true}`, rec.Body.String())
	})

	s.Run("error: invalid resort id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/resorts/xyz/catalog/products", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid resortId")
	})
}

func (s *CatalogHandlerTestSuite) TestConsumerCategories() {
	s.Run("success: decimal prices survive the mapping", func() {
		minAge := 6
		view := queries.ConsumerCategoryView{
			ID:                   uuid.New(),
			ResortID:             s.resortID,
			Title:                map[string]string{"en": "Child"},
			AgeMin:               &minAge,
			RentalPricePerDay:    decimal.RequireFromString("3.50"),
			InsurancePricePerDay: decimal.RequireFromString("2.25"),
		}
		s.mockQueries.EXPECT().ConsumerCategories(gomock.Any(), s.resortID).
			Return(queries.CatalogList[queries.ConsumerCategoryView]{Items: []queries.ConsumerCategoryView{view}})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.url("/catalog/consumer-categories"), nil)

		var res resdto.CatalogListResponse[resdto.ConsumerCategoryResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Require().Len(res.Items, 1)
		s.True(res.Items[0].RentalPricePerDay.Equal(view.RentalPricePerDay))
		s.True(res.Items[0].InsurancePricePerDay.Equal(view.InsurancePricePerDay))
		s.Require().NotNil(res.Items[0].AgeMin)
		s.Equal(6, *res.Items[0].AgeMin)
		s.Nil(res.Items[0].AgeMax)
	})
}

func (s *CatalogHandlerTestSuite) TestKiosks() {
	s.Run("success: degraded kiosk list", func() {
		s.mockKiosks.EXPECT().List(gomock.Any(), s.resortID).
			Return(queries.CatalogList[queries.KioskView]{Degraded: true})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.url("/catalog/kiosks"), nil)

		var res resdto.CatalogListResponse[resdto.KioskResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.True(res.Degraded)
		s.NotNil(res.Items)
		s.Empty(res.Items)
	})
}

func (s *CatalogHandlerTestSuite) TestCreateProduct() {
	reqBody := builder.NewProductBuilder().BuildDTO()

	s.Run("success: 201 with the new id, active by default", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().
			CreateProduct(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, p catalog.ProductParams) (*commands.CreateResult, error) {
				s.Equal(s.resortID, p.ResortID)
				s.True(p.Active)
				s.Equal("SKI-DAY-1", p.Authority.ExternalID)
				return &commands.CreateResult{ID: id}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url("/products"), reqBody)

		var res resdto.CreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal(id.String(), res.ID)
	})

	s.Run("success: inactive flag is kept", func() {
		body := builder.NewProductBuilder().Inactive().BuildDTO()
		s.mockCommands.EXPECT().
			CreateProduct(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, p catalog.ProductParams) (*commands.CreateResult, error) {
				s.False(p.Active)
				return &commands.CreateResult{ID: uuid.New()}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url("/products"), body)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 on validation errors", func() {
		for name, mut := range map[string]func(map[string]any){
			"missing title":       testutil.Field("title", nil),
			"empty title":         testutil.Field("title", map[string]any{}),
			"missing external id": testutil.Field("authority", map[string]any{"name": "x"}),
		} {
			s.Run(name, func() {
				body := testutil.DtoMap(s.T(), reqBody, mut)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url("/products"), body)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: unknown validity category is 404", func() {
		s.mockCommands.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("validity category missing"), errs.ErrNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url("/products"), reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Create product failed")
	})
}

func (s *CatalogHandlerTestSuite) TestUpdateProduct() {
	id := uuid.New()
	reqBody := builder.NewProductBuilder().BuildDTO()

	s.Run("success: 204 and the stored resort is kept", func() {
		s.mockCommands.EXPECT().
			UpdateProduct(gomock.Any(), id, gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, p catalog.ProductParams) error {
				s.Equal(uuid.Nil, p.ResortID)
				return nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/products/"+id.String(), reqBody)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: missing product is 404", func() {
		s.mockCommands.EXPECT().UpdateProduct(gomock.Any(), id, gomock.Any()).
			Return(errs.Mark(errs.New("product missing"), errs.ErrNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/products/"+id.String(), reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

func (s *CatalogHandlerTestSuite) TestConsumerCategoryWrites() {
	reqBody := builder.NewConsumerCategoryBuilder().BuildDTO()

	s.Run("success: create forwards ages and prices", func() {
		s.mockCommands.EXPECT().
			CreateConsumerCategory(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, p catalog.ConsumerCategoryParams) (*commands.CreateResult, error) {
				s.Require().NotNil(p.AgeMin)
				s.Equal(18, *p.AgeMin)
				s.True(p.RentalPricePerDay.Equal(decimal.RequireFromString("5")))
				return &commands.CreateResult{ID: uuid.New()}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url("/consumer-categories"), reqBody)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: inverted age range is rejected by the use case", func() {
		body := builder.NewConsumerCategoryBuilder().WithAges(65, 18).BuildDTO()
		s.mockCommands.EXPECT().CreateConsumerCategory(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(catalog.ErrInvalidAgeRange, errs.ErrValidation))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url("/consumer-categories"), body)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: negative age is 400", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("age_min", -1))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url("/consumer-categories"), body)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("success: update is 204", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().UpdateConsumerCategory(gomock.Any(), id, gomock.Any()).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/consumer-categories/"+id.String(), reqBody)
		s.Equal(http.StatusNoContent, rec.Code)
	})
}

func (s *CatalogHandlerTestSuite) TestCreateValidityCategory() {
	s.Run("success: 201", func() {
		s.mockCommands.EXPECT().
			CreateValidityCategory(gomock.Any(), commands.ValidityCategoryRequest{ResortID: s.resortID, Value: 3, Unit: "days"}).
			Return(&commands.CreateResult{ID: uuid.New()}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url("/validity-categories"),
			map[string]any{"value": 3, "unit": "days"})
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: zero value is 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url("/validity-categories"),
			map[string]any{"value": 0, "unit": "days"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *CatalogHandlerTestSuite) TestCreateSalesChannel() {
	s.Run("success: web and kiosk channels", func() {
		for _, typ := range []string{"web", "kiosk"} {
			s.Run(typ, func() {
				s.mockCommands.EXPECT().CreateSalesChannel(gomock.Any(), gomock.Any()).
					Return(&commands.CreateResult{ID: uuid.New()}, nil)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url("/sales-channels"),
					builder.NewSalesChannelDTO("Main", typ))
				httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
			})
		}
	})

	s.Run("error: unknown channel type is 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url("/sales-channels"),
			builder.NewSalesChannelDTO("Main", "phone"))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *CatalogHandlerTestSuite) TestCreateKiosk() {
	s.Run("success: 201", func() {
		s.mockCommands.EXPECT().
			CreateKiosk(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req commands.KioskRequest) (*commands.CreateResult, error) {
				s.Equal(s.resortID, req.ResortID)
				s.Equal(12, req.SlotCount)
				s.Equal("Valley station", req.LocationLabel)
				return &commands.CreateResult{ID: uuid.New()}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url("/kiosks"), builder.NewKioskDTO("Valley", 12))
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: slot count out of range", func() {
		for _, n := range []int{0, 501} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url("/kiosks"), builder.NewKioskDTO("Valley", n))
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
		}
	})

	s.Run("error: latitude out of range", func() {
		body := builder.NewKioskDTO("Valley", 4)
		body.Location.Latitude = 91
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url("/kiosks"), body)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}
