//go:build e2e

package e2e

import (
	"fmt"
	"net/http"

	resdto "lifepass-admin/internal/handler/dto/response"
	"lifepass-admin/tests/common/builder"
	"lifepass-admin/tests/common/dbtest"
	"lifepass-admin/tests/common/httptest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Resort returns the seeded resort of the current subtest.
func (s *SharedSuite) Resort() uuid.UUID {
	return dbtest.ResortID(s.T(), s.DB, dbtest.DefaultResortName)
}

func (s *SharedSuite) create(path string, body any) uuid.UUID {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, path, body)
	require.Equal(t, http.StatusCreated, w.Code, "create %s: %s", path, w.Body.String())

	var res resdto.CreatedResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	id, err := uuid.Parse(res.ID)
	require.NoError(t, err)
	return id
}

func (s *SharedSuite) CreateProduct(resortID uuid.UUID, b *builder.ProductBuilder) uuid.UUID {
	return s.create(fmt.Sprintf("/api/resorts/%s/products", resortID), b.BuildDTO())
}

func (s *SharedSuite) CreateConsumerCategory(resortID uuid.UUID, b *builder.ConsumerCategoryBuilder) uuid.UUID {
	return s.create(fmt.Sprintf("/api/resorts/%s/consumer-categories", resortID), b.BuildDTO())
}

func (s *SharedSuite) CreateSalesChannel(resortID uuid.UUID, name, channelType string) uuid.UUID {
	return s.create(fmt.Sprintf("/api/resorts/%s/sales-channels", resortID), builder.NewSalesChannelDTO(name, channelType))
}

func (s *SharedSuite) CreateKiosk(resortID uuid.UUID, name string, slots int) uuid.UUID {
	return s.create(fmt.Sprintf("/api/resorts/%s/kiosks", resortID), builder.NewKioskDTO(name, slots))
}

// ProvisionDevice registers a device through the API and returns its serial.
func (s *SharedSuite) ProvisionDevice(serial, chipID string, luhnCode int) string {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/devices", map[string]any{
		"serial": serial, "chip_id": chipID, "luhn_code": luhnCode,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var res resdto.DeviceResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	return res.Serial
}

// Checkout posts the order and decodes the response whatever the status.
func (s *SharedSuite) Checkout(resortID uuid.UUID, b *builder.CheckoutBuilder) (int, *resdto.OrderResponse) {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf("/api/resorts/%s/orders", resortID), b.BuildDTO())
	if w.Code != http.StatusCreated {
		return w.Code, nil
	}
	var res resdto.OrderResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	return w.Code, &res
}
