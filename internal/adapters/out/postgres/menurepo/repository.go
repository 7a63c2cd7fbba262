package menurepo

import (
	"context"
	"errors"

	"catering/internal/adapters/out/postgres/pgerr"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/menu"
	"catering/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormMenuRepository implements ports.MenuRepository using GORM.
type GormMenuRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormMenuRepository(db *gorm.DB, tracker aggregateTracker) *GormMenuRepository {
	return &GormMenuRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a menu. Used for seeding; the catalog owns menu creation.
func (r *GormMenuRepository) Add(ctx context.Context, aggregate *menu.Menu) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes stock and active flag. A negative stock trips the CHECK
// constraint and is reported as menu.ErrOutOfStock.
func (r *GormMenuRepository) Update(ctx context.Context, aggregate *menu.Menu) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&MenuDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"stock":  dto.Stock,
			"active": dto.Active,
		})
	if result.Error != nil {
		if pgerr.IsCheckViolation(result.Error) {
			return menu.ErrOutOfStock
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("menu", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormMenuRepository) Get(ctx context.Context, id kernel.UUID) (*menu.Menu, error) {
	return r.get(ctx, r.db, id)
}

// GetForUpdate takes a row lock held until the surrounding transaction ends.
func (r *GormMenuRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*menu.Menu, error) {
	return r.get(ctx, r.db.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), id)
}

func (r *GormMenuRepository) get(ctx context.Context, db *gorm.DB, id kernel.UUID) (*menu.Menu, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MenuDTO
	if err := db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("menu", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
