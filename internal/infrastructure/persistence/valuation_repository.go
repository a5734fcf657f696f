package persistence

import (
	"context"

	"github.com/rentals/backend/internal/domain/shared"
	"github.com/rentals/backend/internal/domain/valuation"
	"github.com/rentals/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormValuationRepository implements ValuationRepository using GORM
type GormValuationRepository struct {
	db *gorm.DB
}

// NewGormValuationRepository creates a new GormValuationRepository
func NewGormValuationRepository(db *gorm.DB) *GormValuationRepository {
	return &GormValuationRepository{db: db}
}

// FindByID finds a valuation by its ID
func (r *GormValuationRepository) FindByID(ctx context.Context, id int64) (*valuation.Valuation, error) {
	var model models.ValuationModel
	if err := r.db.WithContext(ctx).First(&model, "id_valoracion = ?", id).Error; err != nil {
		return nil, translate(err, "Valuation not found", "find valuation")
	}
	return model.ToDomain(), nil
}

// FindAll finds all valuations matching the filter
func (r *GormValuationRepository) FindAll(ctx context.Context, filter shared.Filter) ([]valuation.Valuation, error) {
	query := r.applySearch(r.db.WithContext(ctx).Model(&models.ValuationModel{}), filter)
	query = query.Order(orderClause(filter.OrderBy, filter.OrderDir, ValuationSortFields, "id_valoracion"))
	return r.find(paginate(query, filter), "list valuations")
}

// Count counts valuations matching the filter
func (r *GormValuationRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applySearch(r.db.WithContext(ctx).Model(&models.ValuationModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, translate(err, "", "count valuations")
	}
	return count, nil
}

// FindByReservation returns every valuation left for a reservation
func (r *GormValuationRepository) FindByReservation(ctx context.Context, reservationID int64) ([]valuation.Valuation, error) {
	query := r.db.WithContext(ctx).Where("id_reserva = ?", reservationID).Order("id_valoracion ASC")
	return r.find(query, "list reservation valuations")
}

// Save creates the valuation when it has no ID yet and updates it otherwise
func (r *GormValuationRepository) Save(ctx context.Context, v *valuation.Valuation) error {
	model := models.ValuationModelFromDomain(v)
	if v.IsNew() {
		if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
			return translate(err, "", "create valuation")
		}
		v.ID = model.ID
		return nil
	}

	result := r.db.WithContext(ctx).
		Model(&models.ValuationModel{ID: v.ID}).
		Select("*").
		Omit("id_valoracion", "created_at").
		Updates(model)
	if result.Error != nil {
		return translate(result.Error, "", "update valuation")
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError("Valuation not found")
	}
	return nil
}

// Delete deletes a valuation
func (r *GormValuationRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.ValuationModel{}, "id_valoracion = ?", id)
	if result.Error != nil {
		return translate(result.Error, "", "delete valuation")
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError("Valuation not found")
	}
	return nil
}

func (r *GormValuationRepository) find(query *gorm.DB, op string) ([]valuation.Valuation, error) {
	var valuationModels []models.ValuationModel
	if err := query.Find(&valuationModels).Error; err != nil {
		return nil, translate(err, "", op)
	}
	valuations := make([]valuation.Valuation, len(valuationModels))
	for i, model := range valuationModels {
		valuations[i] = *model.ToDomain()
	}
	return valuations, nil
}

func (r *GormValuationRepository) applySearch(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if pattern := searchPattern(filter.Search); pattern != "" {
		query = query.Where("LOWER(comentario) LIKE ?", pattern)
	}
	return query
}

var _ valuation.ValuationRepository = (*GormValuationRepository)(nil)
