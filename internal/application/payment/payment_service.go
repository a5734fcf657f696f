package payment

import (
	"context"
	"strings"
	"time"

	"github.com/rentals/backend/internal/domain/payment"
	"github.com/rentals/backend/internal/domain/reservation"
	"github.com/rentals/backend/internal/domain/shared"
	"github.com/rentals/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// PaymentService records payments against reservations.
// Reference assignment and the audit trail are handled by the repository
// inside the same transaction as each mutation.
type PaymentService struct {
	paymentRepo     payment.PaymentRepository
	reservationRepo reservation.ReservationRepository
	logger          *zap.Logger
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(
	paymentRepo payment.PaymentRepository,
	reservationRepo reservation.ReservationRepository,
	logger *zap.Logger,
) *PaymentService {
	return &PaymentService{
		paymentRepo:     paymentRepo,
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// Create records a new payment for an existing reservation
func (s *PaymentService) Create(ctx context.Context, req CreatePaymentRequest) (*PaymentResponse, error) {
	res, err := s.reservationRepo.FindByID(ctx, req.ReservationID)
	if err != nil {
		return nil, err
	}

	amount := res.TotalPrice
	if strings.TrimSpace(req.Amount) != "" {
		if amount, err = valueobject.ParseAmount(req.Amount); err != nil {
			return nil, err
		}
	}

	var paidAt time.Time
	if req.PaidAt != nil {
		paidAt = *req.PaidAt
	}

	p, err := payment.NewPayment(res.ID, amount, req.Method, req.Status, paidAt)
	if err != nil {
		return nil, err
	}

	if err := s.paymentRepo.Create(ctx, p); err != nil {
		s.logger.Error("Failed to create payment",
			zap.Int64("reservation_id", res.ID),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("Payment created",
		zap.Int64("payment_id", p.ID),
		zap.String("reference", p.Reference),
		zap.Int64("reservation_id", p.ReservationID),
		zap.String("amount", p.Amount.StringFixed(valueobject.MoneyPlaces)),
	)
	response := ToPaymentResponse(p)
	return &response, nil
}

// AmountForReservation returns the total price of a reservation, used to
// pre-fill the payment amount
func (s *PaymentService) AmountForReservation(ctx context.Context, reservationID int64) (*ReservationAmountResponse, error) {
	res, err := s.reservationRepo.FindByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	paid, err := s.TotalPaid(ctx, res.ID)
	if err != nil {
		return nil, err
	}
	return &ReservationAmountResponse{
		ReservationID: res.ID,
		Amount:        res.TotalPrice,
		Paid:          paid,
		Outstanding:   res.TotalPrice.Sub(paid),
	}, nil
}

// GetByID retrieves a payment by ID
func (s *PaymentService) GetByID(ctx context.Context, id int64) (*PaymentResponse, error) {
	p, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToPaymentResponse(p)
	return &response, nil
}

// List retrieves payments with pagination
func (s *PaymentService) List(ctx context.Context, filter PaymentListFilter) ([]PaymentResponse, int64, error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.OrderBy != "" {
		domainFilter.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		domainFilter.OrderDir = filter.OrderDir
	}

	payments, err := s.paymentRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.paymentRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToPaymentResponses(payments), total, nil
}

// ListByReservation returns the payments of a reservation
func (s *PaymentService) ListByReservation(ctx context.Context, reservationID int64) ([]PaymentResponse, error) {
	payments, err := s.paymentRepo.FindByReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	return ToPaymentResponses(payments), nil
}

// Update changes the method and status of a payment
func (s *PaymentService) Update(ctx context.Context, id int64, req UpdatePaymentRequest) (*PaymentResponse, error) {
	p, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	previous := p.Status
	if err := p.Modify(req.Method, req.Status); err != nil {
		return nil, err
	}

	if err := s.paymentRepo.Update(ctx, p); err != nil {
		s.logger.Error("Failed to update payment", zap.Int64("payment_id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("Payment updated",
		zap.Int64("payment_id", id),
		zap.String("previous_status", string(previous)),
		zap.String("status", string(p.Status)),
	)
	response := ToPaymentResponse(p)
	return &response, nil
}

// Delete removes a payment. The audit entry is kept.
func (s *PaymentService) Delete(ctx context.Context, id int64) error {
	if err := s.paymentRepo.Delete(ctx, id); err != nil {
		if !shared.IsNotFound(err) {
			s.logger.Error("Failed to delete payment", zap.Int64("payment_id", id), zap.Error(err))
		}
		return err
	}

	s.logger.Info("Payment deleted", zap.Int64("payment_id", id))
	return nil
}

// History returns the audit trail of a payment, oldest first
func (s *PaymentService) History(ctx context.Context, paymentID int64) ([]HistoryRecordResponse, error) {
	records, err := s.paymentRepo.History(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	return ToHistoryRecordResponses(records), nil
}

// NextReference previews the reference the next payment would receive.
// The actual reference is assigned when the payment is stored.
func (s *PaymentService) NextReference(ctx context.Context) (*NextReferenceResponse, error) {
	last, err := s.paymentRepo.LastReference(ctx)
	if err != nil {
		return nil, err
	}
	return &NextReferenceResponse{Reference: payment.NextReference(last)}, nil
}

// TotalPaid sums the completed payments of a reservation
func (s *PaymentService) TotalPaid(ctx context.Context, reservationID int64) (decimal.Decimal, error) {
	payments, err := s.paymentRepo.FindByReservation(ctx, reservationID)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for i := range payments {
		if payments[i].IsCompleted() {
			total = total.Add(payments[i].Amount)
		}
	}
	return total, nil
}
