package response

import (
	"time"

	"lifepass-admin/internal/domain/catalog"
	"lifepass-admin/internal/domain/device"
	"lifepass-admin/internal/pkg/errs"
	"lifepass-admin/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

// timestamps leave the API as unix seconds
var copyOpts = copier.Option{
	Converters: []copier.TypeConverter{{
		SrcType: time.Time{},
		DstType: int64(0),
		Fn: func(src any) (any, error) {
			t, ok := src.(time.Time)
			if !ok {
				return nil, errs.New("expected time.Time")
			}
			return t.Unix(), nil
		},
	}},
}

type CatalogListResponse[T any] struct {
	Items []T `json:"items"`
	// Degraded means the catalog store was unreachable; Items is empty for that reason.
	Degraded bool `json:"degraded"`
}

func FromCatalogList[V, R any](list queries.CatalogList[V]) (*CatalogListResponse[R], error) {
	items := make([]R, 0, len(list.Items))
	if len(list.Items) > 0 {
		if err := copier.CopyWithOption(&items, &list.Items, copyOpts); err != nil {
			return nil, errs.Wrap(err, "map catalog list")
		}
	}
	return &CatalogListResponse[R]{Items: items, Degraded: list.Degraded}, nil
}

type ProductResponse struct {
	ID                 uuid.UUID                `json:"id"`
	ResortID           uuid.UUID                `json:"resort_id"`
	Active             bool                     `json:"active"`
	Title              map[string]string        `json:"title"`
	Description        map[string]string        `json:"description"`
	Authority          catalog.ProductAuthority `json:"authority"`
	ValidityCategoryID *uuid.UUID               `json:"validity_category_id,omitempty"`
	CreatedAt          int64                    `json:"created_at"`
	UpdatedAt          int64                    `json:"updated_at"`
}

type ConsumerCategoryResponse struct {
	ID                   uuid.UUID         `json:"id"`
	ResortID             uuid.UUID         `json:"resort_id"`
	Title                map[string]string `json:"title"`
	Description          map[string]string `json:"description"`
	AgeMin               *int              `json:"age_min,omitempty"`
	AgeMax               *int              `json:"age_max,omitempty"`
	RentalPricePerDay    decimal.Decimal   `json:"rental_price_per_day"`
	InsurancePricePerDay decimal.Decimal   `json:"insurance_price_per_day"`
	CreatedAt            int64             `json:"created_at"`
	UpdatedAt            int64             `json:"updated_at"`
}

type ValidityCategoryResponse struct {
	ID        uuid.UUID            `json:"id"`
	ResortID  uuid.UUID            `json:"resort_id"`
	UnitLabel map[string]string    `json:"unit_label"`
	Validity  catalog.ValidityRule `json:"validity"`
	CreatedAt int64                `json:"created_at"`
	UpdatedAt int64                `json:"updated_at"`
}

type SalesChannelResponse struct {
	ID                        uuid.UUID        `json:"id"`
	ResortID                  uuid.UUID        `json:"resort_id"`
	Name                      string           `json:"name"`
	Type                      string           `json:"type"`
	ActiveProductIDs          []uuid.UUID      `json:"active_product_ids"`
	ActiveConsumerCategoryIDs []uuid.UUID      `json:"active_consumer_category_ids"`
	LifepassPrice             *decimal.Decimal `json:"lifepass_price,omitempty"`
	InsurancePrice            *decimal.Decimal `json:"insurance_price,omitempty"`
	DepotTicket               bool             `json:"depot_ticket"`
	CreatedAt                 int64            `json:"created_at"`
	UpdatedAt                 int64            `json:"updated_at"`
}

type KioskResponse struct {
	ID              uuid.UUID       `json:"id"`
	ResortID        uuid.UUID       `json:"resort_id"`
	Name            string          `json:"name"`
	Type            string          `json:"type"`
	ContentBlockIDs []uuid.UUID     `json:"content_block_ids"`
	Location        device.Location `json:"location"`
	SlotCount       int             `json:"slot_count"`
	CreatedAt       int64           `json:"created_at"`
	UpdatedAt       int64           `json:"updated_at"`
}

type KioskSlotResponse struct {
	KioskID     uuid.UUID `json:"kiosk_id"`
	SlotNumber  int       `json:"slot_number"`
	Location    string    `json:"location"`
	Status      string    `json:"status"`
	LastUpdated int64     `json:"last_updated"`
	DeviceCode  string    `json:"device_code,omitempty"`
}

func FromKioskSlots(slots []queries.KioskSlotView) []KioskSlotResponse {
	res := make([]KioskSlotResponse, len(slots))
	for i, s := range slots {
		res[i] = KioskSlotResponse{
			KioskID:     s.KioskID,
			SlotNumber:  s.SlotNumber,
			Location:    s.Location,
			Status:      s.Status.String(),
			LastUpdated: s.LastUpdated.Unix(),
			DeviceCode:  s.DeviceCode,
		}
	}
	return res
}

type CreatedResponse struct {
	ID string `json:"id"`
}
