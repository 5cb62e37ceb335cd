package commands

import (
	"context"

	"lifepass-admin/internal/domain/catalog"
	"lifepass-admin/internal/domain/device"
	"lifepass-admin/internal/infra"
	"lifepass-admin/internal/infra/cache"
	"lifepass-admin/internal/pkg/clock"
	"lifepass-admin/internal/pkg/errs"
	"lifepass-admin/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound          = errs.New("product not found")
	ErrConsumerCategoryNotFound = errs.New("consumer category not found")
)

type CreateResult struct {
	ID uuid.UUID
}

type ValidityCategoryRequest struct {
	ResortID  uuid.UUID
	UnitLabel map[string]string
	Value     int
	Unit      string
	Variable  bool
}

type KioskRequest struct {
	ResortID        uuid.UUID
	Name            string
	Type            string
	ContentBlockIDs []uuid.UUID
	Latitude        float64
	Longitude       float64
	LocationLabel   string
	SlotCount       int
}

type CatalogCommands interface {
	CreateProduct(ctx context.Context, params catalog.ProductParams) (*CreateResult, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, params catalog.ProductParams) error
	CreateConsumerCategory(ctx context.Context, params catalog.ConsumerCategoryParams) (*CreateResult, error)
	UpdateConsumerCategory(ctx context.Context, id uuid.UUID, params catalog.ConsumerCategoryParams) error
	CreateValidityCategory(ctx context.Context, req ValidityCategoryRequest) (*CreateResult, error)
	CreateSalesChannel(ctx context.Context, params catalog.SalesChannelParams) (*CreateResult, error)
	CreateKiosk(ctx context.Context, req KioskRequest) (*CreateResult, error)
}

type catalogUseCaseImpl struct {
	uow         shared.UnitOfWork
	invalidator shared.CacheInvalidator
	clock       clock.Clock
}

func NewCatalogUseCase(uow shared.UnitOfWork, invalidator shared.CacheInvalidator, clk clock.Clock) CatalogCommands {
	return &catalogUseCaseImpl{uow: uow, invalidator: invalidator, clock: clk}
}

func (uc *catalogUseCaseImpl) requireResort(ctx context.Context, resortID uuid.UUID) error {
	if resortID == uuid.Nil {
		return errs.Mark(catalog.ErrMissingResort, errs.ErrValidation)
	}
	if _, err := uc.uow.CommandReads().ResortByID(ctx, resortID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(errs.Wrapf(ErrResortNotFound, "resort %s", resortID), errs.ErrNotFound)
		}
		return err
	}
	return nil
}

func (uc *catalogUseCaseImpl) invalidate(ctx context.Context, entity catalog.EntityType, resortID uuid.UUID) {
	uc.invalidator.Invalidate(ctx, cache.ResortTag(entity.String(), resortID))
}

func (uc *catalogUseCaseImpl) CreateProduct(ctx context.Context, params catalog.ProductParams) (*CreateResult, error) {
	if err := uc.requireResort(ctx, params.ResortID); err != nil {
		return nil, err
	}
	p, err := catalog.NewProduct(params, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Catalog().CreateProduct(ctx, tx.DB(), p)
	})
	if err != nil {
		return nil, infra.Classify(err)
	}
	uc.invalidate(ctx, catalog.EntityProducts, p.ResortID())
	return &CreateResult{ID: p.ID()}, nil
}

func (uc *catalogUseCaseImpl) UpdateProduct(ctx context.Context, id uuid.UUID, params catalog.ProductParams) error {
	var resortID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Reads().ProductByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(errs.Wrapf(ErrProductNotFound, "product %s", id), errs.ErrNotFound)
			}
			return err
		}
		if err := p.Update(params, uc.clock.Now()); err != nil {
			return errs.Mark(err, errs.ErrValidation)
		}
		resortID = p.ResortID()
		return tx.Catalog().UpdateProduct(ctx, tx.DB(), p)
	})
	if err != nil {
		return infra.Classify(err)
	}
	uc.invalidate(ctx, catalog.EntityProducts, resortID)
	return nil
}

func (uc *catalogUseCaseImpl) CreateConsumerCategory(ctx context.Context, params catalog.ConsumerCategoryParams) (*CreateResult, error) {
	if err := uc.requireResort(ctx, params.ResortID); err != nil {
		return nil, err
	}
	c, err := catalog.NewConsumerCategory(params, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Catalog().CreateConsumerCategory(ctx, tx.DB(), c)
	})
	if err != nil {
		return nil, infra.Classify(err)
	}
	uc.invalidate(ctx, catalog.EntityConsumerCategories, c.ResortID())
	return &CreateResult{ID: c.ID()}, nil
}

func (uc *catalogUseCaseImpl) UpdateConsumerCategory(ctx context.Context, id uuid.UUID, params catalog.ConsumerCategoryParams) error {
	var resortID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := tx.Reads().ConsumerCategoryByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(errs.Wrapf(ErrConsumerCategoryNotFound, "consumer category %s", id), errs.ErrNotFound)
			}
			return err
		}
		if err := c.Update(params, uc.clock.Now()); err != nil {
			return errs.Mark(err, errs.ErrValidation)
		}
		resortID = c.ResortID()
		return tx.Catalog().UpdateConsumerCategory(ctx, tx.DB(), c)
	})
	if err != nil {
		return infra.Classify(err)
	}
	uc.invalidate(ctx, catalog.EntityConsumerCategories, resortID)
	return nil
}

func (uc *catalogUseCaseImpl) CreateValidityCategory(ctx context.Context, req ValidityCategoryRequest) (*CreateResult, error) {
	if err := uc.requireResort(ctx, req.ResortID); err != nil {
		return nil, err
	}
	rule, err := catalog.NewValidityRule(req.Value, req.Unit, req.Variable)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	v, err := catalog.NewValidityCategory(req.ResortID, req.UnitLabel, rule, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Catalog().CreateValidityCategory(ctx, tx.DB(), v)
	})
	if err != nil {
		return nil, infra.Classify(err)
	}
	uc.invalidate(ctx, catalog.EntityValidityCategories, v.ResortID())
	return &CreateResult{ID: v.ID()}, nil
}

func (uc *catalogUseCaseImpl) CreateSalesChannel(ctx context.Context, params catalog.SalesChannelParams) (*CreateResult, error) {
	if err := uc.requireResort(ctx, params.ResortID); err != nil {
		return nil, err
	}
	s, err := catalog.NewSalesChannel(params, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Catalog().CreateSalesChannel(ctx, tx.DB(), s)
	})
	if err != nil {
		return nil, infra.Classify(err)
	}
	uc.invalidate(ctx, catalog.EntitySalesChannels, s.ResortID())
	return &CreateResult{ID: s.ID()}, nil
}

func (uc *catalogUseCaseImpl) CreateKiosk(ctx context.Context, req KioskRequest) (*CreateResult, error) {
	if err := uc.requireResort(ctx, req.ResortID); err != nil {
		return nil, err
	}
	loc, err := device.NewLocation(req.Latitude, req.Longitude, req.LocationLabel)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	k, err := device.NewKiosk(req.ResortID, req.Name, req.Type, req.ContentBlockIDs, loc, req.SlotCount, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Catalog().CreateKiosk(ctx, tx.DB(), k)
	})
	if err != nil {
		return nil, infra.Classify(err)
	}
	uc.invalidate(ctx, catalog.EntityKiosks, k.ResortID())
	return &CreateResult{ID: k.ID()}, nil
}
