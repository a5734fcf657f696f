package reservation

import (
	"context"
	"time"

	"github.com/rentals/backend/internal/domain/client"
	"github.com/rentals/backend/internal/domain/property"
	"github.com/rentals/backend/internal/domain/reservation"
	"github.com/rentals/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ReservationService handles the reservation lifecycle
type ReservationService struct {
	reservationRepo reservation.ReservationRepository
	clientRepo      client.ClientRepository
	propertyRepo    property.PropertyRepository
	logger          *zap.Logger
}

// NewReservationService creates a new ReservationService
func NewReservationService(
	reservationRepo reservation.ReservationRepository,
	clientRepo client.ClientRepository,
	propertyRepo property.PropertyRepository,
	logger *zap.Logger,
) *ReservationService {
	return &ReservationService{
		reservationRepo: reservationRepo,
		clientRepo:      clientRepo,
		propertyRepo:    propertyRepo,
		logger:          logger,
	}
}

// Create books a property for a client
func (s *ReservationService) Create(ctx context.Context, req CreateReservationRequest) (*ReservationResponse, error) {
	start, end, err := parseDates(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	if _, err := s.clientRepo.FindByID(ctx, req.ClientID); err != nil {
		return nil, err
	}
	prop, err := s.propertyRepo.FindByID(ctx, req.PropertyID)
	if err != nil {
		return nil, err
	}
	if !prop.CanHost(req.Guests) {
		return nil, shared.NewValidationError("INVALID_GUESTS", "Number of guests exceeds the property capacity")
	}

	total := reservation.QuoteTotal(start, end, prop.NightlyPrice)
	if req.TotalPrice != nil {
		total = *req.TotalPrice
	}

	r, err := reservation.NewReservation(reservation.Booking{
		ClientID:   req.ClientID,
		PropertyID: req.PropertyID,
		StartDate:  start,
		EndDate:    end,
		Guests:     req.Guests,
		Status:     req.Status,
		TotalPrice: total,
	})
	if err != nil {
		return nil, err
	}

	if err := s.reservationRepo.Create(ctx, r); err != nil {
		s.logger.Error("Failed to create reservation", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Reservation created",
		zap.Int64("reservation_id", r.ID),
		zap.Int64("client_id", r.ClientID),
		zap.Int64("property_id", r.PropertyID),
	)
	response := ToReservationResponse(r)
	return &response, nil
}

// GetByID retrieves a reservation by ID
func (s *ReservationService) GetByID(ctx context.Context, id int64) (*ReservationResponse, error) {
	r, err := s.reservationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToReservationResponse(r)
	return &response, nil
}

// List retrieves reservations with pagination
func (s *ReservationService) List(ctx context.Context, filter ReservationListFilter) ([]ReservationResponse, int64, error) {
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

	reservations, err := s.reservationRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.reservationRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToReservationResponses(reservations), total, nil
}

// ListByClient returns the reservations of a client
func (s *ReservationService) ListByClient(ctx context.Context, clientID int64) ([]ReservationResponse, error) {
	reservations, err := s.reservationRepo.FindByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return ToReservationResponses(reservations), nil
}

// ListByProperty returns the reservations of a property
func (s *ReservationService) ListByProperty(ctx context.Context, propertyID int64) ([]ReservationResponse, error) {
	reservations, err := s.reservationRepo.FindByProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	return ToReservationResponses(reservations), nil
}

// ListIDs returns the IDs of every reservation
func (s *ReservationService) ListIDs(ctx context.Context) ([]int64, error) {
	return s.reservationRepo.ListIDs(ctx)
}

// Update edits any field of a reservation
func (s *ReservationService) Update(ctx context.Context, id int64, req UpdateReservationRequest) (*ReservationResponse, error) {
	r, err := s.reservationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	b := reservation.Booking{
		ClientID:   r.ClientID,
		PropertyID: r.PropertyID,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		Guests:     r.Guests,
		TotalPrice: r.TotalPrice,
	}
	if req.ClientID != nil && *req.ClientID != r.ClientID {
		if _, err := s.clientRepo.FindByID(ctx, *req.ClientID); err != nil {
			return nil, err
		}
		b.ClientID = *req.ClientID
	}
	if req.PropertyID != nil {
		b.PropertyID = *req.PropertyID
	}
	if req.StartDate != nil {
		if b.StartDate, err = parseDate(*req.StartDate, "Start date"); err != nil {
			return nil, err
		}
	}
	if req.EndDate != nil {
		if b.EndDate, err = parseDate(*req.EndDate, "End date"); err != nil {
			return nil, err
		}
	}
	if req.Guests != nil {
		b.Guests = *req.Guests
	}
	if req.Status != nil {
		b.Status = *req.Status
	}
	if req.TotalPrice != nil {
		b.TotalPrice = *req.TotalPrice
	}
	if req.CancellationReason != nil {
		b.CancellationReason = *req.CancellationReason
	}

	if b.PropertyID != r.PropertyID || b.Guests != r.Guests {
		prop, err := s.propertyRepo.FindByID(ctx, b.PropertyID)
		if err != nil {
			return nil, err
		}
		if !prop.CanHost(b.Guests) {
			return nil, shared.NewValidationError("INVALID_GUESTS", "Number of guests exceeds the property capacity")
		}
	}

	if err := r.Edit(b); err != nil {
		return nil, err
	}
	if err := s.save(ctx, r); err != nil {
		return nil, err
	}

	response := ToReservationResponse(r)
	return &response, nil
}

// Confirm confirms a pending reservation
func (s *ReservationService) Confirm(ctx context.Context, id int64) (*ReservationResponse, error) {
	r, err := s.reservationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.Confirm(); err != nil {
		return nil, err
	}
	if err := s.save(ctx, r); err != nil {
		return nil, err
	}

	s.logger.Info("Reservation confirmed", zap.Int64("reservation_id", id))
	response := ToReservationResponse(r)
	return &response, nil
}

// Cancel cancels a reservation with an optional reason
func (s *ReservationService) Cancel(ctx context.Context, id int64, req CancelReservationRequest) (*ReservationResponse, error) {
	r, err := s.reservationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.Cancel(req.Reason); err != nil {
		return nil, err
	}
	if err := s.save(ctx, r); err != nil {
		return nil, err
	}

	s.logger.Info("Reservation cancelled", zap.Int64("reservation_id", id))
	response := ToReservationResponse(r)
	return &response, nil
}

// Delete removes a reservation and returns the number of rows deleted.
// Deleting an unknown reservation returns 0.
func (s *ReservationService) Delete(ctx context.Context, id int64) (int64, error) {
	affected, err := s.reservationRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("Failed to delete reservation", zap.Int64("reservation_id", id), zap.Error(err))
		return 0, err
	}
	if affected > 0 {
		s.logger.Info("Reservation deleted", zap.Int64("reservation_id", id))
	}
	return affected, nil
}

func (s *ReservationService) save(ctx context.Context, r *reservation.Reservation) error {
	affected, err := s.reservationRepo.Update(ctx, r)
	if err != nil {
		s.logger.Error("Failed to update reservation", zap.Int64("reservation_id", r.ID), zap.Error(err))
		return err
	}
	if affected == 0 {
		return shared.NewNotFoundError("Reservation not found")
	}
	return nil
}

func parseDates(start, end string) (time.Time, time.Time, error) {
	s, err := parseDate(start, "Start date")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	e, err := parseDate(end, "End date")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return s, e, nil
}

func parseDate(value, field string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, shared.NewValidationError("INVALID_DATES", field+" must be a date in YYYY-MM-DD format")
	}
	return t, nil
}
