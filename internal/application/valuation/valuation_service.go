package valuation

import (
	"context"
	"time"

	"github.com/rentals/backend/internal/domain/reservation"
	"github.com/rentals/backend/internal/domain/shared"
	"github.com/rentals/backend/internal/domain/valuation"
)

// ValuationService handles guest reviews
type ValuationService struct {
	valuationRepo   valuation.ValuationRepository
	reservationRepo reservation.ReservationRepository
}

// NewValuationService creates a new ValuationService
func NewValuationService(valuationRepo valuation.ValuationRepository, reservationRepo reservation.ReservationRepository) *ValuationService {
	return &ValuationService{
		valuationRepo:   valuationRepo,
		reservationRepo: reservationRepo,
	}
}

// Create records a review for an existing reservation
func (s *ValuationService) Create(ctx context.Context, req CreateValuationRequest) (*ValuationResponse, error) {
	if _, err := s.reservationRepo.FindByID(ctx, req.ReservationID); err != nil {
		return nil, err
	}

	var valuedAt time.Time
	if req.ValuedAt != nil {
		valuedAt = *req.ValuedAt
	}
	v, err := valuation.NewValuation(valuation.Review{
		ReservationID: req.ReservationID,
		Score:         req.Score,
		Comment:       req.Comment,
		Anonymous:     req.Anonymous,
		ValuedAt:      valuedAt,
	})
	if err != nil {
		return nil, err
	}

	if err := s.valuationRepo.Save(ctx, v); err != nil {
		return nil, err
	}

	response := ToValuationResponse(v)
	return &response, nil
}

// GetByID retrieves a valuation by ID
func (s *ValuationService) GetByID(ctx context.Context, id int64) (*ValuationResponse, error) {
	v, err := s.valuationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToValuationResponse(v)
	return &response, nil
}

// List retrieves valuations with pagination
func (s *ValuationService) List(ctx context.Context, filter ValuationListFilter) ([]ValuationResponse, int64, error) {
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

	valuations, err := s.valuationRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.valuationRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToValuationResponses(valuations), total, nil
}

// ListByReservation returns every review of a reservation
func (s *ValuationService) ListByReservation(ctx context.Context, reservationID int64) ([]ValuationResponse, error) {
	valuations, err := s.valuationRepo.FindByReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	return ToValuationResponses(valuations), nil
}

// Update edits a valuation by ID
func (s *ValuationService) Update(ctx context.Context, id int64, req UpdateValuationRequest) (*ValuationResponse, error) {
	v, err := s.valuationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	r := valuation.Review{
		ReservationID: v.ReservationID,
		Score:         v.Score,
		Comment:       v.Comment,
		Anonymous:     v.Anonymous,
	}
	if req.ReservationID != nil && *req.ReservationID != v.ReservationID {
		if _, err := s.reservationRepo.FindByID(ctx, *req.ReservationID); err != nil {
			return nil, err
		}
		r.ReservationID = *req.ReservationID
	}
	if req.Score != nil {
		r.Score = *req.Score
	}
	if req.Comment != nil {
		r.Comment = *req.Comment
	}
	if req.Anonymous != nil {
		r.Anonymous = *req.Anonymous
	}

	if err := v.Update(r); err != nil {
		return nil, err
	}
	if err := s.valuationRepo.Save(ctx, v); err != nil {
		return nil, err
	}

	response := ToValuationResponse(v)
	return &response, nil
}

// Delete deletes a valuation by ID
func (s *ValuationService) Delete(ctx context.Context, id int64) error {
	return s.valuationRepo.Delete(ctx, id)
}
