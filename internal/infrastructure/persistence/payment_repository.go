package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rentals/backend/internal/domain/payment"
	"github.com/rentals/backend/internal/domain/shared"
	"github.com/rentals/backend/internal/infrastructure/logger"
	"github.com/rentals/backend/internal/infrastructure/persistence/models"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultReferenceMaxAttempts bounds the reference allocation retries of Create
const DefaultReferenceMaxAttempts = 5

// GormPaymentRepository implements PaymentRepository using GORM.
// Every mutation and its historico_pagos row commit or roll back together.
type GormPaymentRepository struct {
	db          *gorm.DB
	logger      *zap.Logger
	maxAttempts int
	collisions  metric.Int64Counter
}

// PaymentRepositoryOption configures a GormPaymentRepository
type PaymentRepositoryOption func(*GormPaymentRepository)

// WithReferenceMaxAttempts sets how many times Create retries after a
// reference collision
func WithReferenceMaxAttempts(n int) PaymentRepositoryOption {
	return func(r *GormPaymentRepository) {
		if n > 0 {
			r.maxAttempts = n
		}
	}
}

// WithPaymentLogger sets the logger used to report reference collisions
func WithPaymentLogger(l *zap.Logger) PaymentRepositoryOption {
	return func(r *GormPaymentRepository) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithPaymentMeter sets the meter that counts reference collisions.
// The global meter provider is used otherwise.
func WithPaymentMeter(m metric.Meter) PaymentRepositoryOption {
	return func(r *GormPaymentRepository) {
		if m != nil {
			r.collisions = newCollisionCounter(m)
		}
	}
}

// NewGormPaymentRepository creates a new GormPaymentRepository
func NewGormPaymentRepository(db *gorm.DB, opts ...PaymentRepositoryOption) *GormPaymentRepository {
	r := &GormPaymentRepository{
		db:          db,
		logger:      zap.NewNop(),
		maxAttempts: DefaultReferenceMaxAttempts,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.collisions == nil {
		r.collisions = newCollisionCounter(otel.Meter("github.com/rentals/backend/persistence"))
	}
	return r
}

// newCollisionCounter never fails: an invalid instrument falls back to a
// counter that records nothing.
func newCollisionCounter(m metric.Meter) metric.Int64Counter {
	c, _ := m.Int64Counter(
		"payment_reference_collisions_total",
		metric.WithDescription("Payment inserts retried because the allocated reference was taken"),
		metric.WithUnit("{collision}"),
	)
	return c
}

// FindByID finds a payment by its ID
func (r *GormPaymentRepository) FindByID(ctx context.Context, id int64) (*payment.Payment, error) {
	var model models.PaymentModel
	if err := r.db.WithContext(ctx).First(&model, "id_pago = ?", id).Error; err != nil {
		return nil, translate(err, "Payment not found", "find payment")
	}
	return model.ToDomain(), nil
}

// FindAll finds all payments matching the filter.
// Search matches a status exactly or the reference by substring.
func (r *GormPaymentRepository) FindAll(ctx context.Context, filter shared.Filter) ([]payment.Payment, error) {
	query := r.applySearch(r.db.WithContext(ctx).Model(&models.PaymentModel{}), filter)
	query = query.Order(orderClause(filter.OrderBy, filter.OrderDir, PaymentSortFields, "id_pago"))
	return r.find(paginate(query, filter), "list payments")
}

// Count counts payments matching the filter
func (r *GormPaymentRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applySearch(r.db.WithContext(ctx).Model(&models.PaymentModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, translate(err, "", "count payments")
	}
	return count, nil
}

// FindByReservation finds the payments of a reservation
func (r *GormPaymentRepository) FindByReservation(ctx context.Context, reservationID int64) ([]payment.Payment, error) {
	query := r.db.WithContext(ctx).Where("id_reserva = ?", reservationID).Order("id_pago ASC")
	return r.find(query, "list reservation payments")
}

// LastReference returns the reference of the payment with the highest ID
func (r *GormPaymentRepository) LastReference(ctx context.Context) (string, error) {
	ref, err := lastReference(r.db.WithContext(ctx))
	if err != nil {
		return "", translate(err, "", "read last payment reference")
	}
	return ref, nil
}

// Create allocates the next reference and inserts the payment together with
// its INSERT history row. A reference taken by a concurrent writer surfaces as
// a unique violation; the transaction is rolled back and allocation retried.
func (r *GormPaymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		var model *models.PaymentModel
		err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			last, err := lastReference(tx)
			if err != nil {
				return err
			}

			model = models.PaymentModelFromDomain(p)
			model.ID = 0
			model.Reference = payment.NextReference(last)
			if err := tx.Create(model).Error; err != nil {
				return err
			}

			stored := model.ToDomain()
			return tx.Create(models.PaymentHistoryModelFromDomain(payment.NewInsertRecord(stored))).Error
		})
		if err == nil {
			p.ID = model.ID
			p.Reference = model.Reference
			p.CreatedAt = model.CreatedAt
			p.UpdatedAt = model.UpdatedAt
			return nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return translate(err, "", "create payment")
		}
		r.collisions.Add(ctx, 1)
		logger.WithLogger(ctx, r.logger).Warn("Payment reference collision, retrying",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", r.maxAttempts),
			zap.String("reference", model.Reference),
		)
	}
	return &shared.DomainError{
		Code:    shared.ErrConcurrencyConflict.Code,
		Message: fmt.Sprintf("Could not allocate a unique payment reference after %d attempts", r.maxAttempts),
		Kind:    shared.KindConflict,
	}
}

// Update stores the method and status of p and records the change.
// Amount, reservation and payment date are never rewritten.
func (r *GormPaymentRepository) Update(ctx context.Context, p *payment.Payment) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		previous, err := r.lockPayment(tx, p.ID)
		if err != nil {
			return err
		}

		now := time.Now()
		if err := tx.Model(&models.PaymentModel{ID: p.ID}).Updates(map[string]any{
			"metodo_pago": p.Method.Storage(),
			"estado_pago": p.Status.Storage(),
			"updated_at":  now,
		}).Error; err != nil {
			return translate(err, "", "update payment")
		}

		before := previous.ToDomain()
		after := *before
		after.Method = p.Method
		after.Status = p.Status
		if err := tx.Create(models.PaymentHistoryModelFromDomain(payment.NewUpdateRecord(before, &after))).Error; err != nil {
			return translate(err, "", "record payment update")
		}

		p.ReservationID = before.ReservationID
		p.Amount = before.Amount
		p.PaidAt = before.PaidAt
		p.Reference = before.Reference
		p.CreatedAt = before.CreatedAt
		p.UpdatedAt = now
		return nil
	})
	return translate(err, "", "update payment")
}

// Delete records a DELETE history row and removes the payment. A failed
// delete rolls the history row back with it.
func (r *GormPaymentRepository) Delete(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		previous, err := r.lockPayment(tx, id)
		if err != nil {
			return err
		}

		if err := tx.Create(models.PaymentHistoryModelFromDomain(payment.NewDeleteRecord(previous.ToDomain()))).Error; err != nil {
			return translate(err, "", "record payment deletion")
		}

		result := tx.Delete(&models.PaymentModel{}, "id_pago = ?", id)
		if result.Error != nil {
			return translate(result.Error, "", "delete payment")
		}
		if result.RowsAffected == 0 {
			return shared.NewNotFoundError("Payment not found")
		}
		return nil
	})
	return translate(err, "", "delete payment")
}

// History returns the audit entries of a payment, oldest first
func (r *GormPaymentRepository) History(ctx context.Context, paymentID int64) ([]payment.HistoryRecord, error) {
	var rows []models.PaymentHistoryModel
	if err := r.db.WithContext(ctx).
		Where("id_pago = ?", paymentID).
		Order(clause.OrderBy{Columns: []clause.OrderByColumn{
			{Column: clause.Column{Name: "timestamp"}},
			{Column: clause.Column{Name: "id_historico"}},
		}}).
		Find(&rows).Error; err != nil {
		return nil, translate(err, "", "read payment history")
	}
	records := make([]payment.HistoryRecord, len(rows))
	for i := range rows {
		records[i] = rows[i].ToDomain()
	}
	return records, nil
}

// lockPayment loads a payment inside tx, taking a row lock on PostgreSQL
func (r *GormPaymentRepository) lockPayment(tx *gorm.DB, id int64) (*models.PaymentModel, error) {
	query := tx
	if isPostgres(tx) {
		query = query.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
	}
	var model models.PaymentModel
	if err := query.First(&model, "id_pago = ?", id).Error; err != nil {
		return nil, translate(err, "Payment not found", "load payment")
	}
	return &model, nil
}

func (r *GormPaymentRepository) find(query *gorm.DB, op string) ([]payment.Payment, error) {
	var paymentModels []models.PaymentModel
	if err := query.Find(&paymentModels).Error; err != nil {
		return nil, translate(err, "", op)
	}
	payments := make([]payment.Payment, len(paymentModels))
	for i, model := range paymentModels {
		payments[i] = *model.ToDomain()
	}
	return payments, nil
}

func (r *GormPaymentRepository) applySearch(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search == "" {
		return query
	}
	if st, err := payment.ParseStatus(filter.Search); err == nil {
		return query.Where("estado_pago = ?", st.Storage())
	}
	return query.Where("LOWER(referencia_transaccion) LIKE ?", searchPattern(filter.Search))
}

// lastReference reads the reference of the most recently inserted payment
func lastReference(db *gorm.DB) (string, error) {
	var refs []string
	if err := db.Model(&models.PaymentModel{}).
		Order("id_pago DESC").
		Limit(1).
		Pluck("referencia_transaccion", &refs).Error; err != nil {
		return "", err
	}
	if len(refs) == 0 {
		return "", nil
	}
	return refs[0], nil
}

var _ payment.PaymentRepository = (*GormPaymentRepository)(nil)
