package shared

import (
	"context"
	"time"

	"lifepass-admin/internal/domain/catalog"
	"lifepass-admin/internal/domain/device"
	"lifepass-admin/internal/domain/order"
	"lifepass-admin/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Orders() OrderRepository
	Allocations() AllocationRepository
	Catalog() CatalogRepository
	Devices() DeviceRepository
	Reads() CommandReads
	DB() db.DBTX
}

// CommandReads load write-side aggregates. Missing rows surface as infra KindNotFound.
type CommandReads interface {
	ResortByID(ctx context.Context, id uuid.UUID) (*ResortSnapshot, error)
	OrderByID(ctx context.Context, id uuid.UUID) (*order.Order, error)
	ProductByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error)
	ConsumerCategoryByID(ctx context.Context, id uuid.UUID) (*catalog.ConsumerCategory, error)
	DeviceByCode(ctx context.Context, code string) (*device.Device, error)
	KioskByID(ctx context.Context, id uuid.UUID) (*device.Kiosk, error)
}

type ResortSnapshot struct {
	ID   uuid.UUID
	Name string
}

type OrderRepository interface {
	Create(ctx context.Context, tx db.DBTX, o *order.Order) error
	Update(ctx context.Context, tx db.DBTX, o *order.Order) error
}

type AllocationRepository interface {
	// ClaimSlot flips an empty slot to occupied. False means another order won it.
	ClaimSlot(ctx context.Context, tx db.DBTX, kioskID uuid.UUID, slotNumber int, orderID uuid.UUID, deviceCode string, now time.Time) (bool, error)
	// Record inserts the allocation row. False means the device is already held.
	Record(ctx context.Context, tx db.DBTX, a device.Allocation) (bool, error)
	ReleaseByOrder(ctx context.Context, tx db.DBTX, orderID uuid.UUID, now time.Time) (int, error)
	ActiveByOrder(ctx context.Context, tx db.DBTX, orderID uuid.UUID) ([]device.Allocation, error)
	// StaleOrders lists orders stuck in priced with unreleased allocations older than before.
	StaleOrders(ctx context.Context, tx db.DBTX, before time.Time, limit int) ([]uuid.UUID, error)
}

type CatalogRepository interface {
	CreateProduct(ctx context.Context, tx db.DBTX, p *catalog.Product) error
	UpdateProduct(ctx context.Context, tx db.DBTX, p *catalog.Product) error
	CreateConsumerCategory(ctx context.Context, tx db.DBTX, c *catalog.ConsumerCategory) error
	UpdateConsumerCategory(ctx context.Context, tx db.DBTX, c *catalog.ConsumerCategory) error
	CreateValidityCategory(ctx context.Context, tx db.DBTX, v *catalog.ValidityCategory) error
	CreateSalesChannel(ctx context.Context, tx db.DBTX, s *catalog.SalesChannel) error
	// CreateKiosk also seeds one empty slot row per slot number.
	CreateKiosk(ctx context.Context, tx db.DBTX, k *device.Kiosk) error
}

type DeviceRepository interface {
	Create(ctx context.Context, tx db.DBTX, d *device.Device) error
}

// CacheInvalidator drops cached reads for the given tags. Fire-and-forget.
type CacheInvalidator interface {
	Invalidate(ctx context.Context, tags ...string)
}
