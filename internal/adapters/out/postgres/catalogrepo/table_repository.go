package catalogrepo

import (
	"context"
	"errors"

	"tableside/internal/core/domain/model/catalog"
	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// uniqueViolation is the Postgres SQLSTATE for a unique constraint violation.
const uniqueViolation = "23505"

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormTableRepository implements TableRepository using GORM.
type GormTableRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormTableRepository creates a new GORM table repository.
func NewGormTableRepository(db *gorm.DB, tracker aggregateTracker) *GormTableRepository {
	return &GormTableRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new table. A code already used by another table returns
// catalog.ErrTableCodeIsTaken.
func (r *GormTableRepository) Add(ctx context.Context, table *catalog.Table) error {
	if err := table.Validate(); err != nil {
		return err
	}

	dto := tableFromDomain(table)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return catalog.ErrTableCodeIsTaken
		}
		return err
	}

	r.tracker.TrackAggregate(table.ID(), table)
	return nil
}

// Get retrieves a table by ID.
func (r *GormTableRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Table, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TableDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("table", id.String())
		}
		return nil, err
	}

	return tableToDomain(dto)
}

// GetByCode retrieves a table by code, case-insensitively.
func (r *GormTableRepository) GetByCode(ctx context.Context, code string) (*catalog.Table, error) {
	normalized := catalog.NormalizeCode(code)
	if normalized == "" {
		return nil, errs.NewValueIsRequiredError("table code")
	}

	var dto TableDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", normalized).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("table", normalized)
		}
		return nil, err
	}

	return tableToDomain(dto)
}

// List retrieves every table ordered by code.
func (r *GormTableRepository) List(ctx context.Context) ([]*catalog.Table, error) {
	var dtos []TableDTO
	if err := r.db.WithContext(ctx).Order("code").Find(&dtos).Error; err != nil {
		return nil, err
	}

	tables := make([]*catalog.Table, 0, len(dtos))
	for _, dto := range dtos {
		t, err := tableToDomain(dto)
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}

	return tables, nil
}

// Delete removes a table. Referencing orders are checked by the caller.
func (r *GormTableRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&TableDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("table", id.String())
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
