package persistence

import (
	"context"
	"strings"

	"github.com/rentals/backend/internal/domain/property"
	"github.com/rentals/backend/internal/domain/shared"
	"github.com/rentals/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormPropertyRepository implements PropertyRepository using GORM
type GormPropertyRepository struct {
	db *gorm.DB
}

// NewGormPropertyRepository creates a new GormPropertyRepository
func NewGormPropertyRepository(db *gorm.DB) *GormPropertyRepository {
	return &GormPropertyRepository{db: db}
}

// FindByID finds a property by its ID
func (r *GormPropertyRepository) FindByID(ctx context.Context, id int64) (*property.Property, error) {
	var model models.PropertyModel
	if err := r.db.WithContext(ctx).First(&model, "id_propiedad = ?", id).Error; err != nil {
		return nil, translate(err, "Property not found", "find property")
	}
	return model.ToDomain(), nil
}

// FindAll finds all properties matching the filter
func (r *GormPropertyRepository) FindAll(ctx context.Context, filter shared.Filter) ([]property.Property, error) {
	var propertyModels []models.PropertyModel
	query := r.applySearch(r.db.WithContext(ctx).Model(&models.PropertyModel{}), filter)
	query = query.Order(orderClause(filter.OrderBy, filter.OrderDir, PropertySortFields, "id_propiedad"))
	if err := paginate(query, filter).Find(&propertyModels).Error; err != nil {
		return nil, translate(err, "", "list properties")
	}
	properties := make([]property.Property, len(propertyModels))
	for i, model := range propertyModels {
		properties[i] = *model.ToDomain()
	}
	return properties, nil
}

// Count counts properties matching the filter
func (r *GormPropertyRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applySearch(r.db.WithContext(ctx).Model(&models.PropertyModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, translate(err, "", "count properties")
	}
	return count, nil
}

// FindIDByName resolves the ID of the property with the given name
func (r *GormPropertyRepository) FindIDByName(ctx context.Context, name string) (int64, error) {
	var ids []int64
	if err := r.db.WithContext(ctx).
		Model(&models.PropertyModel{}).
		Where("nombre = ?", strings.TrimSpace(name)).
		Limit(1).
		Pluck("id_propiedad", &ids).Error; err != nil {
		return 0, translate(err, "", "find property by name")
	}
	if len(ids) == 0 {
		return 0, shared.NewNotFoundError("No property named " + name)
	}
	return ids[0], nil
}

// ExistsByName checks if a property with the given name exists
func (r *GormPropertyRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.PropertyModel{}).
		Where("nombre = ?", strings.TrimSpace(name)).
		Count(&count).Error; err != nil {
		return false, translate(err, "", "check property name")
	}
	return count > 0, nil
}

// ListIDs returns every property ID in ascending order
func (r *GormPropertyRepository) ListIDs(ctx context.Context) ([]int64, error) {
	ids := []int64{}
	if err := r.db.WithContext(ctx).
		Model(&models.PropertyModel{}).
		Order("id_propiedad ASC").
		Pluck("id_propiedad", &ids).Error; err != nil {
		return nil, translate(err, "", "list property ids")
	}
	return ids, nil
}

// Save creates the property when it has no ID yet and updates it otherwise
func (r *GormPropertyRepository) Save(ctx context.Context, p *property.Property) error {
	model := models.PropertyModelFromDomain(p)
	if p.IsNew() {
		if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
			return translate(err, "", "create property")
		}
		p.ID = model.ID
		return nil
	}

	result := r.db.WithContext(ctx).
		Model(&models.PropertyModel{ID: p.ID}).
		Select("*").
		Omit("id_propiedad", "created_at").
		Updates(model)
	if result.Error != nil {
		return translate(result.Error, "", "update property")
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError("Property not found")
	}
	return nil
}

// Delete deletes a property
func (r *GormPropertyRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.PropertyModel{}, "id_propiedad = ?", id)
	if result.Error != nil {
		return translate(result.Error, "", "delete property")
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError("Property not found")
	}
	return nil
}

func (r *GormPropertyRepository) applySearch(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if pattern := searchPattern(filter.Search); pattern != "" {
		query = query.Where("LOWER(nombre) LIKE ? OR LOWER(ciudad) LIKE ? OR LOWER(pais) LIKE ?",
			pattern, pattern, pattern)
	}
	return query
}

var _ property.PropertyRepository = (*GormPropertyRepository)(nil)
