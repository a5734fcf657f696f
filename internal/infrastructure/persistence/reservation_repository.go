package persistence

import (
	"context"

	"github.com/rentals/backend/internal/domain/reservation"
	"github.com/rentals/backend/internal/domain/shared"
	"github.com/rentals/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormReservationRepository implements ReservationRepository using GORM
type GormReservationRepository struct {
	db *gorm.DB
}

// NewGormReservationRepository creates a new GormReservationRepository
func NewGormReservationRepository(db *gorm.DB) *GormReservationRepository {
	return &GormReservationRepository{db: db}
}

// FindByID finds a reservation by its ID
func (r *GormReservationRepository) FindByID(ctx context.Context, id int64) (*reservation.Reservation, error) {
	var model models.ReservationModel
	if err := r.db.WithContext(ctx).First(&model, "id_reserva = ?", id).Error; err != nil {
		return nil, translate(err, "Reservation not found", "find reservation")
	}
	return model.ToDomain(), nil
}

// FindAll finds all reservations matching the filter.
// Search matches the stored status exactly.
func (r *GormReservationRepository) FindAll(ctx context.Context, filter shared.Filter) ([]reservation.Reservation, error) {
	query := r.applySearch(r.db.WithContext(ctx).Model(&models.ReservationModel{}), filter)
	query = query.Order(orderClause(filter.OrderBy, filter.OrderDir, ReservationSortFields, "id_reserva"))
	return r.find(paginate(query, filter), "list reservations")
}

// Count counts reservations matching the filter
func (r *GormReservationRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applySearch(r.db.WithContext(ctx).Model(&models.ReservationModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, translate(err, "", "count reservations")
	}
	return count, nil
}

// FindByClient finds the reservations of a client
func (r *GormReservationRepository) FindByClient(ctx context.Context, clientID int64) ([]reservation.Reservation, error) {
	query := r.db.WithContext(ctx).Where("id_cliente = ?", clientID).Order("fecha_inicio ASC, id_reserva ASC")
	return r.find(query, "list client reservations")
}

// FindByProperty finds the reservations of a property
func (r *GormReservationRepository) FindByProperty(ctx context.Context, propertyID int64) ([]reservation.Reservation, error) {
	query := r.db.WithContext(ctx).Where("id_propiedad = ?", propertyID).Order("fecha_inicio ASC, id_reserva ASC")
	return r.find(query, "list property reservations")
}

// ListIDs returns every reservation ID in ascending order
func (r *GormReservationRepository) ListIDs(ctx context.Context) ([]int64, error) {
	ids := []int64{}
	if err := r.db.WithContext(ctx).
		Model(&models.ReservationModel{}).
		Order("id_reserva ASC").
		Pluck("id_reserva", &ids).Error; err != nil {
		return nil, translate(err, "", "list reservation ids")
	}
	return ids, nil
}

// Create inserts a new reservation and assigns its ID
func (r *GormReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	model := models.ReservationModelFromDomain(res)
	model.ID = 0
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translate(err, "", "create reservation")
	}
	res.ID = model.ID
	return nil
}

// Update writes every field of the reservation and returns the affected row count
func (r *GormReservationRepository) Update(ctx context.Context, res *reservation.Reservation) (int64, error) {
	model := models.ReservationModelFromDomain(res)
	result := r.db.WithContext(ctx).
		Model(&models.ReservationModel{ID: res.ID}).
		Select("*").
		Omit("id_reserva", "created_at").
		Updates(model)
	if result.Error != nil {
		return 0, translate(result.Error, "", "update reservation")
	}
	return result.RowsAffected, nil
}

// Delete removes a reservation and returns the affected row count
func (r *GormReservationRepository) Delete(ctx context.Context, id int64) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.ReservationModel{}, "id_reserva = ?", id)
	if result.Error != nil {
		return 0, translate(result.Error, "", "delete reservation")
	}
	return result.RowsAffected, nil
}

func (r *GormReservationRepository) find(query *gorm.DB, op string) ([]reservation.Reservation, error) {
	var reservationModels []models.ReservationModel
	if err := query.Find(&reservationModels).Error; err != nil {
		return nil, translate(err, "", op)
	}
	reservations := make([]reservation.Reservation, len(reservationModels))
	for i, model := range reservationModels {
		reservations[i] = *model.ToDomain()
	}
	return reservations, nil
}

func (r *GormReservationRepository) applySearch(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search == "" {
		return query
	}
	if st, err := reservation.ParseStatus(filter.Search); err == nil {
		return query.Where("estado = ?", st.Storage())
	}
	return query.Where("LOWER(motivo_cancelacion) LIKE ?", searchPattern(filter.Search))
}

var _ reservation.ReservationRepository = (*GormReservationRepository)(nil)
