package persistence

import (
	"context"
	"strings"

	"github.com/rentals/backend/internal/domain/client"
	"github.com/rentals/backend/internal/domain/shared"
	"github.com/rentals/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormClientRepository implements ClientRepository using GORM
type GormClientRepository struct {
	db *gorm.DB
}

// NewGormClientRepository creates a new GormClientRepository
func NewGormClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{db: db}
}

// FindByID finds a client by its ID
func (r *GormClientRepository) FindByID(ctx context.Context, id int64) (*client.Client, error) {
	var model models.ClientModel
	if err := r.db.WithContext(ctx).First(&model, "id_cliente = ?", id).Error; err != nil {
		return nil, translate(err, "Client not found", "find client")
	}
	return model.ToDomain(), nil
}

// FindAll finds all clients matching the filter
func (r *GormClientRepository) FindAll(ctx context.Context, filter shared.Filter) ([]client.Client, error) {
	var clientModels []models.ClientModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.ClientModel{}), filter)
	if err := query.Find(&clientModels).Error; err != nil {
		return nil, translate(err, "", "list clients")
	}
	clients := make([]client.Client, len(clientModels))
	for i, model := range clientModels {
		clients[i] = *model.ToDomain()
	}
	return clients, nil
}

// Count counts clients matching the filter
func (r *GormClientRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applySearch(r.db.WithContext(ctx).Model(&models.ClientModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, translate(err, "", "count clients")
	}
	return count, nil
}

// FindIDByEmail resolves the ID of the client with the given email
func (r *GormClientRepository) FindIDByEmail(ctx context.Context, email string) (int64, error) {
	var ids []int64
	if err := r.db.WithContext(ctx).
		Model(&models.ClientModel{}).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		Limit(1).
		Pluck("id_cliente", &ids).Error; err != nil {
		return 0, translate(err, "", "find client by email")
	}
	if len(ids) == 0 {
		return 0, shared.NewNotFoundError("No client with email " + email)
	}
	return ids[0], nil
}

// ExistsByEmail checks if any client uses the given email
func (r *GormClientRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if email == "" {
		return false, nil
	}
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ClientModel{}).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		Count(&count).Error; err != nil {
		return false, translate(err, "", "check client email")
	}
	return count > 0, nil
}

// Save creates the client when it has no ID yet and updates it otherwise
func (r *GormClientRepository) Save(ctx context.Context, c *client.Client) error {
	model := models.ClientModelFromDomain(c)
	if c.IsNew() {
		if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
			return translate(err, "", "create client")
		}
		c.ID = model.ID
		return nil
	}

	result := r.db.WithContext(ctx).
		Model(&models.ClientModel{ID: c.ID}).
		Select("*").
		Omit("id_cliente", "created_at", "fecha_registro").
		Updates(model)
	if result.Error != nil {
		return translate(result.Error, "", "update client")
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError("Client not found")
	}
	return nil
}

// Delete deletes a client
func (r *GormClientRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.ClientModel{}, "id_cliente = ?", id)
	if result.Error != nil {
		return translate(result.Error, "", "delete client")
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError("Client not found")
	}
	return nil
}

// applyFilter applies search, ordering and pagination
func (r *GormClientRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applySearch(query, filter)
	query = query.Order(orderClause(filter.OrderBy, filter.OrderDir, ClientSortFields, "id_cliente"))
	return paginate(query, filter)
}

func (r *GormClientRepository) applySearch(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if pattern := searchPattern(filter.Search); pattern != "" {
		query = query.Where("LOWER(nombre) LIKE ? OR LOWER(apellidos) LIKE ? OR LOWER(email) LIKE ?",
			pattern, pattern, pattern)
	}
	return query
}

// Ensure GormClientRepository implements ClientRepository
var _ client.ClientRepository = (*GormClientRepository)(nil)
